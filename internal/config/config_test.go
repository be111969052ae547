package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// isolate points every config source at fresh temp directories.
func isolate(t *testing.T) (home, dir string) {
	t.Helper()
	home = t.TempDir()
	dir = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TODO_CONFIG_DIR", dir)
	t.Setenv("TODO_FILE", "")
	t.Setenv("TODO_DEBUG", "")
	t.Setenv("TODO_GTASKS_LIST", "")
	t.Setenv("NO_COLOR", "")
	return home, dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("HOME does not drive os.UserHomeDir on windows")
	}
	home, dir := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Dir != dir {
		t.Errorf("expected Dir %q, got %q", dir, cfg.Dir)
	}
	if want := filepath.Join(home, ".todo"); cfg.StorePath != want {
		t.Errorf("expected StorePath %q, got %q", want, cfg.StorePath)
	}
	if !cfg.Color {
		t.Error("expected Color to default to true")
	}
	if cfg.Debug {
		t.Error("expected Debug to default to false")
	}
	if cfg.GTasksList != "" {
		t.Errorf("expected empty GTasksList, got %q", cfg.GTasksList)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("HOME does not drive os.UserHomeDir on windows")
	}
	home, dir := isolate(t)
	writeConfig(t, dir, `
store = "~/lists/todo.json"
color = false
debug = true

[gtasks]
list = "Groceries"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if want := filepath.Join(home, "lists", "todo.json"); cfg.StorePath != want {
		t.Errorf("expected StorePath %q, got %q", want, cfg.StorePath)
	}
	if cfg.Color {
		t.Error("expected Color false from config file")
	}
	if !cfg.Debug {
		t.Error("expected Debug true from config file")
	}
	if cfg.GTasksList != "Groceries" {
		t.Errorf("expected GTasksList %q, got %q", "Groceries", cfg.GTasksList)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	_, dir := isolate(t)
	writeConfig(t, dir, `
store = "/from/file"
debug = true
`)
	override := filepath.Join(t.TempDir(), "env.todo")
	t.Setenv("TODO_FILE", override)
	t.Setenv("TODO_DEBUG", "false")
	t.Setenv("TODO_GTASKS_LIST", "Work")
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StorePath != override {
		t.Errorf("expected StorePath %q, got %q", override, cfg.StorePath)
	}
	if cfg.Debug {
		t.Error("expected TODO_DEBUG=false to win over config file")
	}
	if cfg.Color {
		t.Error("expected NO_COLOR to disable color")
	}
	if cfg.GTasksList != "Work" {
		t.Errorf("expected GTasksList %q, got %q", "Work", cfg.GTasksList)
	}
}

func TestLoad_InvalidDebugEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TODO_DEBUG", "sometimes")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid TODO_DEBUG")
	}
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	_, dir := isolate(t)
	writeConfig(t, dir, `store = [unterminated`)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoad_NoHome(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("relies on $HOME being the only home source")
	}
	isolate(t)
	t.Setenv("HOME", "")

	_, err := Load()
	if !errors.Is(err, ErrNoHome) {
		t.Fatalf("expected ErrNoHome, got %v", err)
	}
}

func TestLoad_NoHomeWithExplicitStore(t *testing.T) {
	isolate(t)
	t.Setenv("HOME", "")
	t.Setenv("TODO_FILE", "/tmp/explicit.todo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StorePath != "/tmp/explicit.todo" {
		t.Errorf("expected explicit store path, got %q", cfg.StorePath)
	}
}

func TestConfigPaths(t *testing.T) {
	cfg := New("/cfg")

	if got := cfg.OAuthClientPath(); got != filepath.Join("/cfg", "oauth_client.json") {
		t.Errorf("unexpected OAuthClientPath %q", got)
	}
	if got := cfg.TokenPath(); got != filepath.Join("/cfg", "token.json") {
		t.Errorf("unexpected TokenPath %q", got)
	}
	if got := cfg.FilePath(); got != filepath.Join("/cfg", "config.toml") {
		t.Errorf("unexpected FilePath %q", got)
	}
}

func TestTokenLifecycle(t *testing.T) {
	cfg := New(filepath.Join(t.TempDir(), "nested"))

	if cfg.HasToken() {
		t.Fatal("expected no token in fresh dir")
	}
	if err := cfg.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if err := os.WriteFile(cfg.TokenPath(), []byte("{}"), 0600); err != nil {
		t.Fatal(err)
	}
	if !cfg.HasToken() {
		t.Fatal("expected token to exist")
	}
	if err := cfg.RemoveToken(); err != nil {
		t.Fatalf("RemoveToken failed: %v", err)
	}
	if cfg.HasToken() {
		t.Error("expected token to be removed")
	}
}

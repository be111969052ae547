// Package config resolves the store path, settings and credential file locations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// StoreFile is the store filename inside the home directory.
	StoreFile = ".todo"

	// ConfigFile is the optional settings filename inside the config directory.
	ConfigFile = "config.toml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// ErrNoHome indicates the home directory could not be determined.
var ErrNoHome = errors.New("can't find home dir")

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// StorePath is the todo list file.
	StorePath string

	// Color enables styled terminal output.
	Color bool

	// Debug enables debug logging.
	Debug bool

	// GTasksList is the default Google Tasks list for push and pull.
	// Empty means the account's default list.
	GTasksList string
}

// New creates a Config with defaults for the given config directory.
// If configDir is empty, uses DefaultConfigDir. StorePath is left empty.
func New(configDir string) *Config {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir, Color: true}
}

// DefaultConfigDir returns the default configuration directory.
// Uses TODO_CONFIG_DIR, then XDG_CONFIG_HOME/todo, then $HOME/.config/todo.
func DefaultConfigDir() string {
	if dir := os.Getenv("TODO_CONFIG_DIR"); dir != "" {
		return expandPath(dir)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultStorePath returns <home>/.todo.
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHome, err)
	}
	if home == "" {
		return "", ErrNoHome
	}
	return filepath.Join(home, StoreFile), nil
}

// FilePath returns the path to the settings file.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}

package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/testutil"
	"todo/internal/todo"
)

func strPtr(s string) *string { return &s }

// newEnv builds a command environment around items with color disabled.
func newEnv(t *testing.T, items ...todo.Item) *commands.Env {
	t.Helper()
	cfg := config.New(t.TempDir())
	cfg.Color = false
	return &commands.Env{
		Config: cfg,
		List:   todo.NewList(items),
		Usage:  commands.DefaultRegistry.UsageText(),
	}
}

// withService makes env connect to svc.
func withService(env *commands.Env, svc *testutil.FakeService) *commands.Env {
	env.Connect = func(ctx context.Context) (service.Service, error) {
		return svc, nil
	}
	return env
}

// runCommand is a helper to run a command against env.
func runCommand(t *testing.T, cmd commands.Command, env *commands.Env, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	code = cmd.Run(context.Background(), env, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func findCommand(t *testing.T, name string) commands.Command {
	t.Helper()
	cmd, ok := commands.DefaultRegistry.Find(name)
	if !ok {
		t.Fatalf("command %q not registered", name)
	}
	return cmd
}

func buyItems() []todo.Item {
	return []todo.Item{{Title: "Buy milk"}, {Title: "Buy bread"}}
}

// Tests for list command
func TestListCommand(t *testing.T) {
	env := newEnv(t, todo.Item{Title: "Milk", Done: true}, todo.Item{Title: "Eggs"})

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, env)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	expected := "0. [x] Milk\n1. [ ] Eggs\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_Empty(t *testing.T) {
	stdout, _, _ := runCommand(t, &commands.ListCmd{}, newEnv(t))

	expected := "Nothing to do\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

// Tests for add command
func TestAddCommand_JoinsWords(t *testing.T) {
	env := newEnv(t, todo.Item{Title: "Milk"})

	stdout, stderr, code := runCommand(t, findCommand(t, "add"), env, "Call", "mom", "tonight")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	want := []todo.Item{{Title: "Milk"}, {Title: "Call mom tonight"}}
	if diff := cmp.Diff(want, env.List.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	expected := "0. [ ] Milk\n1. [ ] Call mom tonight\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

// Tests for edit command
func TestEditCommand(t *testing.T) {
	env := newEnv(t, todo.Item{Title: "Milk", Due: strPtr("today")}, todo.Item{Title: "Eggs"})

	stdout, stderr, code := runCommand(t, findCommand(t, "edit"), env, "0", "Oat", "milk")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	want := []todo.Item{{Title: "Oat milk"}, {Title: "Eggs"}}
	if diff := cmp.Diff(want, env.List.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	expected := "0. [ ] Oat milk\n1. [ ] Eggs\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestEditCommand_OutOfRange(t *testing.T) {
	env := newEnv(t, buyItems()...)

	stdout, stderr, code := runCommand(t, findCommand(t, "edit"), env, "2", "x")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "Edit what?!\n" {
		t.Errorf("expected %q, got %q", "Edit what?!\n", stdout)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if diff := cmp.Diff(buyItems(), env.List.Items); diff != "" {
		t.Errorf("list changed (-want +got):\n%s", diff)
	}
}

func TestEditCommand_BadIndexIsFatal(t *testing.T) {
	env := newEnv(t, buyItems()...)

	stdout, stderr, code := runCommand(t, findCommand(t, "edit"), env, "buy", "x")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if !bytes.Contains([]byte(stderr), []byte("USAGE")) {
		t.Errorf("expected usage text on stderr, got %q", stderr)
	}
	if diff := cmp.Diff(buyItems(), env.List.Items); diff != "" {
		t.Errorf("list changed (-want +got):\n%s", diff)
	}
}

// Tests for done and undone commands
func TestDoneCommand_PrefixTogglesLastMatch(t *testing.T) {
	env := newEnv(t, buyItems()...)

	stdout, _, code := runCommand(t, findCommand(t, "done"), env, "buy")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	want := []todo.Item{{Title: "Buy milk"}, {Title: "Buy bread", Done: true}}
	if diff := cmp.Diff(want, env.List.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	expected := "0. [ ] Buy milk\n1. [x] Buy bread\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestUndoneCommand_ByIndex(t *testing.T) {
	env := newEnv(t, todo.Item{Title: "Milk", Done: true})

	_, _, code := runCommand(t, findCommand(t, "undone"), env, "0")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if env.List.Items[0].Done {
		t.Error("expected item to be undone")
	}
}

func TestDoneCommand_Unresolved(t *testing.T) {
	for _, name := range []string{"done", "undone"} {
		for _, sel := range []string{"5", "walk"} {
			env := newEnv(t, buyItems()...)

			stdout, stderr, code := runCommand(t, findCommand(t, name), env, sel)

			if code != exitcode.Success {
				t.Errorf("%s %s: expected exit code %d, got %d", name, sel, exitcode.Success, code)
			}
			if stdout != "Done what?!\n" {
				t.Errorf("%s %s: expected %q, got %q", name, sel, "Done what?!\n", stdout)
			}
			if stderr != "" {
				t.Errorf("%s %s: expected no stderr, got %q", name, sel, stderr)
			}
			if diff := cmp.Diff(buyItems(), env.List.Items); diff != "" {
				t.Errorf("%s %s: list changed (-want +got):\n%s", name, sel, diff)
			}
		}
	}
}

// Tests for delete command
func TestDeleteCommand_PrefixRemovesFirstMatch(t *testing.T) {
	env := newEnv(t, buyItems()...)

	stdout, stderr, code := runCommand(t, findCommand(t, "delete"), env, "buy")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	want := []todo.Item{{Title: "Buy bread"}}
	if diff := cmp.Diff(want, env.List.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	expected := "[ ] Buy milk\n0. [ ] Buy bread\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestDeleteCommand_Unresolved(t *testing.T) {
	env := newEnv(t, buyItems()...)

	stdout, stderr, code := runCommand(t, findCommand(t, "delete"), env, "2")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "Delete what?!\n" {
		t.Errorf("expected %q, got %q", "Delete what?!\n", stdout)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
}

func TestDeleteCommand_Done(t *testing.T) {
	env := newEnv(t,
		todo.Item{Title: "a", Done: true},
		todo.Item{Title: "b"},
		todo.Item{Title: "c", Done: true},
	)

	stdout, _, code := runCommand(t, findCommand(t, "delete"), env, "done")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if diff := cmp.Diff([]todo.Item{{Title: "b"}}, env.List.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	expected := "[x] a\n[x] c\n0. [ ] b\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestDeleteCommand_DoneWithNothingDone(t *testing.T) {
	env := newEnv(t, buyItems()...)

	stdout, _, _ := runCommand(t, findCommand(t, "delete"), env, "done")

	expected := "0. [ ] Buy milk\n1. [ ] Buy bread\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

// Tests for the registry
func TestRegistry_DuplicateName(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.AddCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := r.Register(&commands.AddCmd{})
	if err == nil {
		t.Fatal("expected error for duplicate registration")
	}
	expectedMsg := "command already registered: add"
	if err.Error() != expectedMsg {
		t.Errorf("expected %q, got %q", expectedMsg, err.Error())
	}
}

func TestRegistry_DefaultCommands(t *testing.T) {
	var names []string
	for _, cmd := range commands.DefaultRegistry.All() {
		names = append(names, cmd.Name())
	}
	want := []string{"add", "delete", "done", "edit", "gtasks", "undone"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("registered commands mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageText(t *testing.T) {
	testutil.GoldenString(t, "usage", commands.DefaultRegistry.UsageText())
}

func TestUsageText_UnlistedCommandsFollow(t *testing.T) {
	r := commands.NewRegistry()
	for _, cmd := range []commands.Command{&commands.ListCmd{}, &commands.DeleteCmd{}, &commands.AddCmd{}} {
		if err := r.Register(cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	text := r.UsageText()

	add := strings.Index(text, "todo add ")
	del := strings.Index(text, "todo delete ")
	list := strings.LastIndex(text, "prints todo list")
	if add < 0 || del < 0 || list < 0 {
		t.Fatalf("missing usage rows in %q", text)
	}
	if !(add < del && del < list) {
		t.Errorf("expected add, delete, then unlisted commands; got %q", text)
	}
}

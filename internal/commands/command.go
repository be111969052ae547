// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/todo"
)

// Env is the per-run state handed to every command.
type Env struct {
	// Config is always provided.
	Config *config.Config

	// List is the loaded todo list. Commands mutate it in place;
	// the dispatcher saves it after a successful run.
	List *todo.List

	// Usage is the usage text printed on malformed input.
	Usage string

	// Connect opens the remote task service. Only gtasks push/pull call it.
	Connect func(ctx context.Context) (service.Service, error)
}

// printer returns a list printer for w honoring the color setting.
func (e *Env) printer(w io.Writer) *output.Printer {
	return output.NewPrinter(w, e.Config.Color)
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the command word.
	Name() string

	// Usage returns the usage lines shown in the usage text.
	Usage() string

	// Run executes the command.
	// args are the arguments after the command word; the dispatcher
	// guarantees at least one.
	// Returns exit code. Only exitcode.Success lets the dispatcher save the list.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}

// usageLine formats one "syntax  synopsis" usage row.
func usageLine(syntax, synopsis string) string {
	return fmt.Sprintf("%-36s%s\n", syntax, synopsis)
}

package commands

import (
	"context"
	"io"

	"todo/internal/exitcode"
	"todo/internal/output"
)

// ListCmd prints the whole list. The dispatcher runs it when no arguments are
// given; it is not registered because "list" is not a command word.
type ListCmd struct{}

func (c *ListCmd) Name() string  { return "list" }
func (c *ListCmd) Usage() string { return usageLine("todo", "prints todo list") }

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	env.printer(out).List(env.List.Items, output.NoHighlight)
	return exitcode.Success
}

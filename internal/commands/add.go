package commands

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todo/internal/exitcode"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string  { return "add" }
func (c *AddCmd) Usage() string { return usageLine("todo add <title>", "add new item to todo list") }

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	// Join args to form title
	title := strings.Join(args, " ")

	i := env.List.Add(title, nil)
	log.FromContext(ctx).Debug("added item", "index", i, "title", title)

	env.printer(out).List(env.List.Items, i)
	return exitcode.Success
}

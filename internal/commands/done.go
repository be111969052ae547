package commands

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"todo/internal/exitcode"
	"todo/internal/todo"
)

func init() {
	Register(NewDoneCmd(true))
	Register(NewDoneCmd(false))
}

// DoneCmd implements the done and undone commands.
// A title prefix matching several items selects the last of them.
type DoneCmd struct {
	name string
	done bool
}

// NewDoneCmd creates a command that sets the done flag to done.
func NewDoneCmd(done bool) *DoneCmd {
	if done {
		return &DoneCmd{name: "done", done: true}
	}
	return &DoneCmd{name: "undone"}
}

func (c *DoneCmd) Name() string { return c.name }

func (c *DoneCmd) Usage() string {
	if c.done {
		return usageLine("todo done <title_or_item_id>", "marks an item as done")
	}
	return usageLine("todo undone <title_or_item_id>", "marks an item as undone")
}

func (c *DoneCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		env.printer(out).Alert("Done what?!")
		return exitcode.Success
	}

	i, ok := env.List.SetDone(todo.ParseSelector(args[0]), c.done)
	if !ok {
		env.printer(out).Alert("Done what?!")
		return exitcode.Success
	}

	log.FromContext(ctx).Debug("toggled item", "index", i, "done", c.done)
	env.printer(out).List(env.List.Items, i)
	return exitcode.Success
}

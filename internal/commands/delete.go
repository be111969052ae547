package commands

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/todo"
)

// deleteDoneWord makes "delete done" remove every done item.
const deleteDoneWord = "done"

func init() {
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
// A title prefix matching several items selects the first of them.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string { return "delete" }

func (c *DeleteCmd) Usage() string {
	return usageLine("todo delete <title_or_item_id>", "deletes an item") +
		usageLine("todo delete done", "deletes all items marked done")
}

func (c *DeleteCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		env.printer(out).Alert("Delete what?!")
		return exitcode.Success
	}

	p := env.printer(out)
	logger := log.FromContext(ctx)

	if args[0] == deleteDoneWord {
		removed := env.List.DeleteDone()
		for _, it := range removed {
			p.Removed(it)
		}
		logger.Debug("deleted done items", "count", len(removed))
		p.List(env.List.Items, output.NoHighlight)
		return exitcode.Success
	}

	removed, ok := env.List.Delete(todo.ParseSelector(args[0]))
	if !ok {
		env.printer(out).Alert("Delete what?!")
		return exitcode.Success
	}

	logger.Debug("deleted item", "title", removed.Title)
	p.Removed(removed)
	p.List(env.List.Items, output.NoHighlight)
	return exitcode.Success
}

package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todo/internal/exitcode"
	"todo/internal/todo"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string { return "edit" }
func (c *EditCmd) Usage() string {
	return usageLine("todo edit <item_id> <new_title>", "edits an item title")
}

func (c *EditCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: item id required")
		fmt.Fprint(errOut, env.Usage)
		return exitcode.UserError
	}

	// The index is literal; title prefixes are not accepted here
	index, err := todo.ParseIndex(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		fmt.Fprint(errOut, env.Usage)
		return exitcode.UserError
	}

	title := strings.Join(args[1:], " ")
	if !env.List.Edit(index, title, nil) {
		env.printer(out).Alert("Edit what?!")
		return exitcode.Success
	}

	log.FromContext(ctx).Debug("edited item", "index", index)
	env.printer(out).List(env.List.Items, index)
	return exitcode.Success
}

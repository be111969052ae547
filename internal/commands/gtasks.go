package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&GTasksCmd{})
}

// GTasksCmd implements push/pull of the todo list to a Google Tasks list,
// plus the login and logout steps they depend on.
type GTasksCmd struct{}

func (c *GTasksCmd) Name() string { return "gtasks" }

func (c *GTasksCmd) Usage() string {
	return usageLine("todo gtasks login", "authenticates with Google Tasks") +
		usageLine("todo gtasks logout", "removes stored credentials") +
		usageLine("todo gtasks push [list_name]", "uploads items to a Google Tasks list") +
		usageLine("todo gtasks pull [list_name]", "imports open tasks from a Google Tasks list")
}

func (c *GTasksCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(out, env.Usage)
		return exitcode.Success
	}

	listName := strings.Join(args[1:], " ")

	switch args[0] {
	case "login":
		return runLogin(ctx, env.Config, out, errOut)
	case "logout":
		return runLogout(env.Config, out, errOut)
	case "push":
		return c.push(ctx, env, listName, out, errOut)
	case "pull":
		return c.pull(ctx, env, listName, out, errOut)
	default:
		fmt.Fprint(out, env.Usage)
		return exitcode.Success
	}
}

func (c *GTasksCmd) push(ctx context.Context, env *Env, listName string, out, errOut io.Writer) int {
	svc, list, code := connectList(ctx, env, listName, errOut)
	if code != exitcode.Success {
		return code
	}

	res, err := pushItems(ctx, svc, list.ID, env.List.Items)
	if err != nil {
		return reportRemoteError(errOut, err)
	}

	fmt.Fprintf(out, "pushed %d, completed %d\n", res.Created, res.Completed)
	return exitcode.Success
}

func (c *GTasksCmd) pull(ctx context.Context, env *Env, listName string, out, errOut io.Writer) int {
	svc, list, code := connectList(ctx, env, listName, errOut)
	if code != exitcode.Success {
		return code
	}

	added, err := pullTasks(ctx, svc, list.ID, env.List)
	if err != nil {
		return reportRemoteError(errOut, err)
	}

	log.FromContext(ctx).Debug("pulled tasks", "list", list.Title, "added", added)
	env.printer(out).List(env.List.Items, output.NoHighlight)
	return exitcode.Success
}

// connectList opens the remote service and resolves the target list.
// An empty name falls back to the configured list, then to the default list.
func connectList(ctx context.Context, env *Env, name string, errOut io.Writer) (service.Service, service.TaskList, int) {
	if env.Connect == nil {
		fmt.Fprintln(errOut, "error: backend error: remote sync unavailable")
		return nil, service.TaskList{}, exitcode.BackendError
	}

	svc, err := env.Connect(ctx)
	if err != nil {
		return nil, service.TaskList{}, reportRemoteError(errOut, err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = strings.TrimSpace(env.Config.GTasksList)
	}

	var list service.TaskList
	if name != "" {
		list, err = svc.ResolveList(ctx, name)
	} else {
		list, err = svc.DefaultList(ctx)
	}
	if err != nil {
		return nil, service.TaskList{}, reportRemoteError(errOut, err)
	}

	log.FromContext(ctx).Debug("resolved remote list", "id", list.ID, "title", list.Title)
	return svc, list, exitcode.Success
}

// reportRemoteError prints err and maps it to an exit code.
func reportRemoteError(errOut io.Writer, err error) int {
	switch {
	case errors.Is(err, service.ErrListNotFound), errors.Is(err, service.ErrAmbiguousList):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.Is(err, service.ErrUnauthorized):
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}

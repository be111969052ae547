// Package cli classifies command-line arguments and runs one command against the store.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/store"
	"todo/internal/todo"
)

// StoreFactory opens the store for a config.
type StoreFactory func(cfg *config.Config) store.Store

// ServiceFactory creates a Service from config.
// Only called when a command needs the remote backend.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// ConfigLoader resolves the configuration for one run.
type ConfigLoader func() (*config.Config, error)

// Dispatcher loads the list, runs one command and saves the list.
type Dispatcher struct {
	registry   *commands.Registry
	stores     StoreFactory
	services   ServiceFactory
	loadConfig ConfigLoader
}

// NewDispatcher creates a new dispatcher.
// services may be nil, in which case remote sync reports a backend error.
func NewDispatcher(registry *commands.Registry, stores StoreFactory, services ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry:   registry,
		stores:     stores,
		services:   services,
		loadConfig: config.Load,
	}
}

// WithConfigLoader replaces the config source.
func (d *Dispatcher) WithConfigLoader(load ConfigLoader) *Dispatcher {
	d.loadConfig = load
	return d
}

// Run loads the store, dispatches args and saves the store when the command succeeded.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	cfg, err := d.loadConfig()
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	}

	logger := newLogger(errOut, cfg.Debug)
	ctx = log.WithContext(ctx, logger)
	logger.Debug("config", "dir", cfg.Dir, "store", cfg.StorePath, "color", cfg.Color, "gtasks_list", cfg.GTasksList)

	st := d.stores(cfg)
	items, err := st.Load(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	}

	env := &commands.Env{
		Config: cfg,
		List:   todo.NewList(items),
		Usage:  d.registry.UsageText(),
	}
	if d.services != nil {
		env.Connect = func(ctx context.Context) (service.Service, error) {
			return d.services(ctx, cfg)
		}
	}

	code := d.dispatch(ctx, env, args, out, errOut)
	if code != exitcode.Success {
		logger.Debug("not saving", "code", code)
		return code
	}

	if err := st.Save(ctx, env.List.Items); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	}
	logger.Debug("saved store", "items", env.List.Len())
	return exitcode.Success
}

// dispatch classifies args by count and first word.
func (d *Dispatcher) dispatch(ctx context.Context, env *commands.Env, args []string, out, errOut io.Writer) int {
	logger := log.FromContext(ctx)

	switch len(args) {
	case 0:
		logger.Debug("dispatch", "command", "list")
		return (&commands.ListCmd{}).Run(ctx, env, nil, out, errOut)
	case 1:
		// Every command takes an argument, so a lone word is never runnable
		output.NewPrinter(out, env.Config.Color).Alert(args[0] + " what?!")
		fmt.Fprint(out, env.Usage)
		return exitcode.Success
	}

	cmd, ok := d.registry.Find(args[0])
	if !ok {
		logger.Debug("unknown command", "command", args[0])
		fmt.Fprint(out, env.Usage)
		return exitcode.Success
	}

	logger.Debug("dispatch", "command", cmd.Name(), "args", args[1:])
	return cmd.Run(ctx, env, args[1:], out, errOut)
}

// newLogger builds the run logger. Only warnings and errors are shown unless debug is set.
func newLogger(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: config.AppName,
	})
}

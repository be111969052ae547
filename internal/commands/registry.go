package commands

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds registered commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the name is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := c.Name()
	if _, exists := r.cmds[name]; exists {
		return fmt.Errorf("command already registered: %s", name)
	}
	r.cmds[name] = c
	return nil
}

// Find looks up a command by name.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns all commands sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]Command, len(names))
	for i, name := range names {
		result[i] = r.cmds[name]
	}
	return result
}

// usageOrder is the order commands appear in the usage text.
// Commands not listed follow in name order.
var usageOrder = []string{"add", "edit", "done", "undone", "delete", "gtasks"}

// UsageText renders the usage text for every registered command.
func (r *Registry) UsageText() string {
	var b strings.Builder
	b.WriteString("\nUSAGE\ntodo [command] [arguments...]\n\nCOMMANDS\n")
	b.WriteString(usageLine("todo", "prints todo list"))

	listed := make(map[string]bool, len(usageOrder))
	for _, name := range usageOrder {
		if cmd, ok := r.Find(name); ok {
			b.WriteString(cmd.Usage())
			listed[name] = true
		}
	}
	for _, cmd := range r.All() {
		if !listed[cmd.Name()] {
			b.WriteString(cmd.Usage())
		}
	}
	return b.String()
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}

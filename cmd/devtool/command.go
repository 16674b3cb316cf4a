package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

// Command is a devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// errUsage is returned by Dispatch when no usable command was given
var errUsage = errors.New("usage")

// Registry maps command names to commands
type Registry struct {
	commands map[string]Command
}

func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command, len(cmds))}
	for _, cmd := range cmds {
		r.Register(cmd)
	}
	return r
}

// Register adds cmd, replacing any command with the same name
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the registered commands ordered by name
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// Dispatch runs the command named by args[0] with the remaining args. It
// returns errUsage when args is empty or names an unknown command.
func (r *Registry) Dispatch(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := r.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	return cmd.Run(args[1:])
}

// WriteHelp writes the usage text with one aligned line per command
func (r *Registry) WriteHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: devtool <command> [args...]")
	fmt.Fprintln(w, "\nAvailable Commands:")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, cmd := range r.List() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Name(), cmd.Description())
	}
	_ = tw.Flush()
}

package cmd

import (
	"flag"
	"maps"
	"slices"
)

// Command stores information about a sub-command.
type Command struct {
	Name     string // command name as it appears on the command line
	Func     CommandFunc
	SetFlags func(*flag.FlagSet)

	flags *flag.FlagSet
}

// CommandFunc is the function that executes the command. It returns the exit
// code of the process.
type CommandFunc func(*flag.FlagSet) (int, error)

// GetFlags return the flag.FlagSet defined for the command.
func (cmd *Command) GetFlags() *flag.FlagSet { return cmd.flags }

var commands = make(map[string]Command)

// RegisterCommand registers the given command.
func RegisterCommand(cmd Command) {
	if cmd.Name == "" || cmd.Func == nil {
		panic("command registered with no name or function")
	}
	if _, ok := commands[cmd.Name]; ok {
		panic("command already registered: " + cmd.Name)
	}
	cmd.flags = flag.NewFlagSet(cmd.Name, flag.ExitOnError)
	cmd.flags.String("l", "", "log level")
	if cmd.SetFlags != nil {
		cmd.SetFlags(cmd.flags)
	}
	commands[cmd.Name] = cmd
}

// Get returns the command identified by the given name and a bool to signal
// success.
func Get(name string) (Command, bool) {
	cmd, ok := commands[name]
	return cmd, ok
}

// List returns a sorted list of all registered command names.
func List() []string { return slices.Sorted(maps.Keys(commands)) }

package commands

import (
	"flag"
	"io"

	"github.com/Cloud-Foundations/postinst/lib/log"
)

type CommandFunc func([]string, log.DebugLogger) error

type Command struct {
	Command string
	Args    string
	MinArgs int
	MaxArgs int
	CmdFunc CommandFunc
}

// PrintCommands writes the list of commands and their arguments to writer.
func PrintCommands(writer io.Writer, commands []Command) {
	printCommands(writer, commands)
}

// RunCommands will run the command named by the first non-flag argument on
// the command-line, returning the exit code: 0 on success, 1 if the command
// failed and 2 for a usage error.
func RunCommands(commands []Command, printUsage func(),
	logger log.DebugLogger) int {
	return runCommands(commands, flag.Args(), printUsage, logger)
}

// RunCommandsWithArgs is similar to RunCommands, except the arguments are
// specified rather than taken from the command-line.
func RunCommandsWithArgs(commands []Command, args []string, printUsage func(),
	logger log.DebugLogger) int {
	return runCommands(commands, args, printUsage, logger)
}

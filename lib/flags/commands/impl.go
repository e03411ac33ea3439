package commands

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/Cloud-Foundations/postinst/lib/log"
)

func printCommands(writer io.Writer, commands []Command) {
	sorted := make([]Command, 0, len(commands))
	for _, command := range commands {
		if command.CmdFunc != nil {
			sorted = append(sorted, command)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Command < sorted[j].Command
	})
	tw := tabwriter.NewWriter(writer, 0, 8, 2, ' ', 0)
	for _, command := range sorted {
		fmt.Fprintf(tw, "  %s\t%s\n", command.Command, command.Args)
	}
	tw.Flush()
}

func runCommands(commands []Command, args []string, printUsage func(),
	logger log.DebugLogger) int {
	if len(args) < 1 {
		printUsage()
		return 2
	}
	numCommandArgs := len(args) - 1
	for _, command := range commands {
		if command.CmdFunc == nil {
			continue
		}
		if args[0] != command.Command {
			continue
		}
		if numCommandArgs < command.MinArgs ||
			(command.MaxArgs >= 0 && numCommandArgs > command.MaxArgs) {
			printUsage()
			return 2
		}
		if err := command.CmdFunc(args[1:], logger); err != nil {
			logger.Printf("Error running %s: %s\n", command.Command, err)
			return 1
		}
		return 0
	}
	printUsage()
	return 2
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/inventory/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	if err := cmd.LoadEnv(""); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	// Exits when invoked by the shell to complete a command line.
	complete.Complete("inv", completion())

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(run(commander))
}

func run(commander *subcommands.Commander) int {
	defer func() { _ = cmd.Logger().Sync() }()

	// without subcommand, run the interactive menu.
	if flag.NArg() == 0 {
		return int(cmd.RunMenu())
	}

	if name := flag.Arg(0); !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			return code
		}
	}
	return int(commander.Execute(context.Background()))
}

// registered reports whether name is a subcommand of the commander.
func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}

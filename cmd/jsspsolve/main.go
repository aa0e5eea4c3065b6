// Command jsspsolve generates random job-shop scheduling instances
// and solves them with a GRASP-seeded island-model genetic algorithm.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"

	"github.com/r3b0rn/jsspsolve/command"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.BasicUi{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := &cli.CLI{
		Name:     "jsspsolve",
		Version:  "0.1.0",
		Args:     args,
		HelpFunc: cli.BasicHelpFunc("jsspsolve"),
		Commands: map[string]cli.CommandFactory{
			"solve": func() (cli.Command, error) {
				return &command.SolveCommand{UI: ui}, nil
			},
		},
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

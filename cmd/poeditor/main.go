// Command poeditor is an operator CLI for the POEditor API.
package main

import (
	"bufio"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/pricofy/poeditor/internal/command"
)

// version is set at build time.
var version = "dev"

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	cliName := "poeditor"

	log := hclog.New(&hclog.LoggerOptions{
		Name:   cliName,
		Output: os.Stderr,
	})

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := &cli.CLI{
		Name:     cliName,
		Args:     args[1:],
		Version:  version,
		Commands: command.Commands(log, ui, nil),
	}

	exitCode, err := c.Run()
	if err != nil {
		log.Error("error running command", "error", err)
		return 1
	}
	return exitCode
}

package command

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
)

// Commands returns the command table of the poeditor CLI.
func Commands(log hclog.Logger, ui cli.Ui, fs afero.Fs) map[string]cli.CommandFactory {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	meta := &Meta{UI: ui, Log: log, Fs: fs}

	commands := map[string]cli.Command{
		"projects":        projectsCommand(),
		"projects list":   projectsListCommand(meta),
		"projects view":   projectsViewCommand(meta),
		"projects add":    projectsAddCommand(meta),
		"projects update": projectsUpdateCommand(meta),
		"projects delete": projectsDeleteCommand(meta),
		"projects upload": projectsUploadCommand(meta),
		"projects sync":   projectsSyncCommand(meta),
		"projects export": projectsExportCommand(meta),

		"languages":           languagesCommand(),
		"languages available": languagesAvailableCommand(meta),
		"languages list":      languagesListCommand(meta),
		"languages add":       languagesAddCommand(meta),
		"languages update":    languagesUpdateCommand(meta),
		"languages delete":    languagesDeleteCommand(meta),

		"terms":        termsCommand(),
		"terms list":   termsListCommand(meta),
		"terms add":    termsAddCommand(meta),
		"terms delete": termsDeleteCommand(meta),

		"contributors":        contributorsCommand(),
		"contributors list":   contributorsListCommand(meta),
		"contributors add":    contributorsAddCommand(meta),
		"contributors remove": contributorsRemoveCommand(meta),
	}

	factories := make(map[string]cli.CommandFactory, len(commands))
	for name, c := range commands {
		c := c
		factories[name] = func() (cli.Command, error) { return c, nil }
	}
	return factories
}

package command

import (
	"context"
	"flag"

	"github.com/pricofy/poeditor/internal/domain"
	"github.com/pricofy/poeditor/pkg/poeditor"
)

func termsCommand() *groupCommand {
	return &groupCommand{
		synopsis: "Manage project terms",
		help: `Usage: poeditor terms <subcommand> [options]

  This command groups subcommands for the terms of a project. Bulk input is
  read from JSON files.`,
	}
}

func termsListCommand(m *Meta) *opCommand {
	var (
		id       int
		language string
	)
	return &opCommand{
		Meta:     m,
		name:     "terms list",
		synopsis: "List the terms of a project",
		usage:    "Lists the project terms, with their translations when -language is given.",
		required: []string{"id"},
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "(Required) Project ID.")
			f.StringVar(&language, "language", "", "Language code of the translations to include.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			return e.client.ListTerms(ctx, poeditor.ListTermsRequest{ID: id, Language: language})
		},
	}
}

func termsAddCommand(m *Meta) *opCommand {
	var (
		id   int
		file string
	)
	return &opCommand{
		Meta:     m,
		name:     "terms add",
		synopsis: "Add terms to a project",
		usage: `Adds the terms in -file, a JSON array of {"term", "context", ...} objects.
  Large files are sent in several requests.`,
		required: []string{"id", "file"},
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "(Required) Project ID.")
			f.StringVar(&file, "file", "", "(Required) JSON file with the terms.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			var terms []poeditor.TermBase
			if err := m.readJSON(file, &terms); err != nil {
				return nil, err
			}
			return m.routeBatches(ctx, e, domain.Request{
				Action:    domain.ActionAddTerms,
				ProjectID: id,
				Terms:     terms,
			})
		},
	}
}

func termsDeleteCommand(m *Meta) *opCommand {
	var (
		id   int
		file string
	)
	return &opCommand{
		Meta:     m,
		name:     "terms delete",
		synopsis: "Delete terms from a project",
		usage:    `Deletes the terms in -file, a JSON array of {"term", "context"} objects.`,
		required: []string{"id", "file"},
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "(Required) Project ID.")
			f.StringVar(&file, "file", "", "(Required) JSON file with the terms to delete.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			var keys []poeditor.TermKey
			if err := m.readJSON(file, &keys); err != nil {
				return nil, err
			}
			return e.client.DeleteTerms(ctx, poeditor.DeleteTermsRequest{ID: id, Terms: keys})
		},
	}
}

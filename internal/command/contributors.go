package command

import (
	"context"
	"flag"
	"fmt"

	"github.com/pricofy/poeditor/pkg/poeditor"
)

func contributorsCommand() *groupCommand {
	return &groupCommand{
		synopsis: "Manage contributors",
		help: `Usage: poeditor contributors <subcommand> [options]

  This command groups subcommands for project administrators and translators.`,
	}
}

func contributorsListCommand(m *Meta) *opCommand {
	var (
		id       int
		language string
	)
	return &opCommand{
		Meta:     m,
		name:     "contributors list",
		synopsis: "List contributors",
		usage:    "Lists the contributors of every project, or of one project with -id.",
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "Project ID.")
			f.StringVar(&language, "language", "", "Only list translators of this language.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			return e.client.ListContributors(ctx, poeditor.ListContributorsRequest{ID: id, Language: language})
		},
	}
}

func contributorsAddCommand(m *Meta) *opCommand {
	var (
		id                    int
		name, email, language string
		admin                 bool
	)
	return &opCommand{
		Meta:     m,
		name:     "contributors add",
		synopsis: "Add a contributor",
		usage:    "Adds a translator for -language, or an administrator with -admin.",
		required: []string{"id", "name", "email"},
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "(Required) Project ID.")
			f.StringVar(&name, "name", "", "(Required) Contributor name.")
			f.StringVar(&email, "email", "", "(Required) Contributor email.")
			f.StringVar(&language, "language", "", "Language code the translator gets access to.")
			f.BoolVar(&admin, "admin", false, "Add the contributor as project administrator.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			if !admin && language == "" {
				return nil, fmt.Errorf("either -language or -admin is required")
			}

			err := e.client.AddContributor(ctx, poeditor.AddContributorRequest{
				ID:       id,
				Name:     name,
				Email:    email,
				Language: language,
				Admin:    optionalBool(e.set, "admin", admin),
			})
			if err != nil {
				return nil, err
			}
			return message(fmt.Sprintf("Contributor %s added to project %d.", email, id)), nil
		},
	}
}

func contributorsRemoveCommand(m *Meta) *opCommand {
	var (
		id              int
		email, language string
	)
	return &opCommand{
		Meta:     m,
		name:     "contributors remove",
		synopsis: "Remove a contributor",
		usage:    "Removes a translator from -language, or an administrator when -language is not given.",
		required: []string{"id", "email"},
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "(Required) Project ID.")
			f.StringVar(&email, "email", "", "(Required) Contributor email.")
			f.StringVar(&language, "language", "", "Language code to revoke.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			err := e.client.RemoveContributor(ctx, poeditor.RemoveContributorRequest{
				ID:       id,
				Email:    email,
				Language: language,
			})
			if err != nil {
				return nil, err
			}
			return message(fmt.Sprintf("Contributor %s removed from project %d.", email, id)), nil
		},
	}
}

package command

import (
	"context"
	"flag"
	"fmt"

	"github.com/pricofy/poeditor/internal/domain"
	"github.com/pricofy/poeditor/internal/router"
	"github.com/pricofy/poeditor/pkg/poeditor"
)

func languagesCommand() *groupCommand {
	return &groupCommand{
		synopsis: "Manage project languages",
		help: `Usage: poeditor languages <subcommand> [options]

  This command groups subcommands for the languages of a project and their
  translations.`,
	}
}

func languagesAvailableCommand(m *Meta) *opCommand {
	return &opCommand{
		Meta:     m,
		name:     "languages available",
		synopsis: "List the languages POEditor supports",
		usage:    "Lists every language that can be added to a project.",
		run: func(ctx context.Context, e *env) (interface{}, error) {
			return e.client.AvailableLanguages(ctx)
		},
	}
}

func languagesListCommand(m *Meta) *opCommand {
	var id int
	return &opCommand{
		Meta:     m,
		name:     "languages list",
		synopsis: "List the languages of a project",
		usage:    "Lists the project languages with their translation progress.",
		required: []string{"id"},
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "(Required) Project ID.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			return e.client.ProjectLanguages(ctx, poeditor.ListLanguagesRequest{ID: id})
		},
	}
}

func languagesAddCommand(m *Meta) *opCommand {
	var (
		id       int
		language string
	)
	return &opCommand{
		Meta:     m,
		name:     "languages add",
		synopsis: "Add a language to a project",
		usage:    "Adds a language to a project.",
		required: []string{"id", "language"},
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "(Required) Project ID.")
			f.StringVar(&language, "language", "", "(Required) Language code.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			if err := e.client.AddLanguage(ctx, poeditor.AddLanguageRequest{ID: id, Language: language}); err != nil {
				return nil, err
			}
			return message(fmt.Sprintf("Language %s added to project %d.", language, id)), nil
		},
	}
}

func languagesDeleteCommand(m *Meta) *opCommand {
	var (
		id       int
		language string
	)
	return &opCommand{
		Meta:     m,
		name:     "languages delete",
		synopsis: "Remove a language from a project",
		usage:    "Removes a language and all its translations from a project.",
		required: []string{"id", "language"},
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "(Required) Project ID.")
			f.StringVar(&language, "language", "", "(Required) Language code.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			if err := e.client.DeleteLanguage(ctx, poeditor.DeleteLanguageRequest{ID: id, Language: language}); err != nil {
				return nil, err
			}
			return message(fmt.Sprintf("Language %s deleted from project %d.", language, id)), nil
		},
	}
}

func languagesUpdateCommand(m *Meta) *opCommand {
	var (
		id             int
		language, file string
		fuzzyTrigger   bool
	)
	return &opCommand{
		Meta:     m,
		name:     "languages update",
		synopsis: "Write translations",
		usage: `Inserts or overwrites the translations in -file, a JSON array of
  {"term", "context", "translation": {"content"}} objects. Large files are
  sent in several requests.`,
		required: []string{"id", "language", "file"},
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "(Required) Project ID.")
			f.StringVar(&language, "language", "", "(Required) Language code.")
			f.StringVar(&file, "file", "", "(Required) JSON file with the translations.")
			f.BoolVar(&fuzzyTrigger, "fuzzy-trigger", false, "Mark translations in other languages as fuzzy.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			var translations []poeditor.LanguageUpdate
			if err := m.readJSON(file, &translations); err != nil {
				return nil, err
			}
			return m.routeBatches(ctx, e, domain.Request{
				Action:       domain.ActionUpdateLanguage,
				ProjectID:    id,
				Language:     language,
				Translations: translations,
				FuzzyTrigger: fuzzyTrigger,
			})
		},
	}
}

// routeBatches runs a bulk action through the router so that large inputs
// are split the same way the Lambda splits them.
func (m *Meta) routeBatches(ctx context.Context, e *env, req domain.Request) (interface{}, error) {
	resp, err := router.New(e.client, e.cfg.TermBatchTokens, m.Log).Route(ctx, req)
	if resp == nil {
		return nil, err
	}
	return resp, err
}

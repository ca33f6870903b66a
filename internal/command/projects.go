package command

import (
	"context"
	"flag"
	"fmt"

	"github.com/pricofy/poeditor/pkg/poeditor"
)

func projectsCommand() *groupCommand {
	return &groupCommand{
		synopsis: "Manage projects",
		help: `Usage: poeditor projects <subcommand> [options]

  This command groups subcommands for listing, changing, importing into and
  exporting from POEditor projects.`,
	}
}

func projectsListCommand(m *Meta) *opCommand {
	return &opCommand{
		Meta:     m,
		name:     "projects list",
		synopsis: "List the projects you have access to",
		usage:    "Lists every project the API token can see.",
		run: func(ctx context.Context, e *env) (interface{}, error) {
			return e.client.ListProjects(ctx)
		},
	}
}

func projectsViewCommand(m *Meta) *opCommand {
	var id int
	return &opCommand{
		Meta:     m,
		name:     "projects view",
		synopsis: "Show project details",
		usage:    "Shows the details of one project.",
		required: []string{"id"},
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "(Required) Project ID.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			return e.client.ViewProject(ctx, poeditor.ViewProjectRequest{ID: id})
		},
	}
}

func projectsAddCommand(m *Meta) *opCommand {
	var name, description string
	return &opCommand{
		Meta:     m,
		name:     "projects add",
		synopsis: "Create a project",
		usage:    "Creates a project and prints it.",
		required: []string{"name"},
		flags: func(f *flag.FlagSet) {
			f.StringVar(&name, "name", "", "(Required) Project name.")
			f.StringVar(&description, "description", "", "Project description.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			return e.client.AddProject(ctx, poeditor.AddProjectRequest{Name: name, Description: description})
		},
	}
}

func projectsUpdateCommand(m *Meta) *opCommand {
	var (
		id                             int
		name, description, refLanguage string
	)
	return &opCommand{
		Meta:     m,
		name:     "projects update",
		synopsis: "Change project settings",
		usage:    "Changes the settings that are given and prints the project.",
		required: []string{"id"},
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "(Required) Project ID.")
			f.StringVar(&name, "name", "", "New project name.")
			f.StringVar(&description, "description", "", "New project description.")
			f.StringVar(&refLanguage, "reference-language", "", "New reference language code.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			return e.client.UpdateProject(ctx, poeditor.UpdateProjectRequest{
				ID:                id,
				Name:              name,
				Description:       description,
				ReferenceLanguage: refLanguage,
			})
		},
	}
}

func projectsDeleteCommand(m *Meta) *opCommand {
	var id int
	return &opCommand{
		Meta:     m,
		name:     "projects delete",
		synopsis: "Delete a project",
		usage:    "Deletes a project. Only the project owner can do this.",
		required: []string{"id"},
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "(Required) Project ID.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			if err := e.client.DeleteProject(ctx, poeditor.DeleteProjectRequest{ID: id}); err != nil {
				return nil, err
			}
			return message(fmt.Sprintf("Project %d deleted.", id)), nil
		},
	}
}

func projectsUploadCommand(m *Meta) *opCommand {
	var (
		id                                                 int
		file, updating, language, tags                     string
		overwrite, syncTerms, readFromSource, fuzzyTrigger bool
	)
	return &opCommand{
		Meta:     m,
		name:     "projects upload",
		synopsis: "Import a translation file",
		usage: `Imports terms and/or translations from a file. Boolean options are only
  sent when given.`,
		required: []string{"id", "file", "updating"},
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "(Required) Project ID.")
			f.StringVar(&file, "file", "", "(Required) File to import.")
			f.StringVar(&updating, "updating", "",
				"(Required) What to import: terms, terms_translations or translations.")
			f.StringVar(&language, "language", "", "Language code of the translations in the file.")
			f.StringVar(&tags, "tags", "", "Comma separated tags for the imported terms.")
			f.BoolVar(&overwrite, "overwrite", false, "Overwrite existing translations.")
			f.BoolVar(&syncTerms, "sync-terms", false, "Delete terms that are not in the file.")
			f.BoolVar(&readFromSource, "read-from-source", false, "Read translations from the source tags (xliff).")
			f.BoolVar(&fuzzyTrigger, "fuzzy-trigger", false, "Mark translations in other languages as fuzzy.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			req := poeditor.UploadProjectRequest{
				ID:             id,
				Updating:       poeditor.UpdateType(updating),
				File:           file,
				Language:       language,
				Overwrite:      optionalBool(e.set, "overwrite", overwrite),
				SyncTerms:      optionalBool(e.set, "sync-terms", syncTerms),
				ReadFromSource: optionalBool(e.set, "read-from-source", readFromSource),
				FuzzyTrigger:   optionalBool(e.set, "fuzzy-trigger", fuzzyTrigger),
			}
			if e.set["tags"] {
				req.Tags = &poeditor.UploadTags{List: list(tags)}
			}
			return e.client.UploadProject(ctx, req)
		},
	}
}

func projectsSyncCommand(m *Meta) *opCommand {
	var (
		id   int
		file string
	)
	return &opCommand{
		Meta:     m,
		name:     "projects sync",
		synopsis: "Replace the project terms",
		usage: `Replaces the project terms with the JSON array of terms in -file. Terms
  that are not in the file are deleted together with their translations.`,
		required: []string{"id", "file"},
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "(Required) Project ID.")
			f.StringVar(&file, "file", "", "(Required) JSON file with the complete term list.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			var terms []poeditor.TermBase
			if err := m.readJSON(file, &terms); err != nil {
				return nil, err
			}
			if terms == nil {
				return nil, fmt.Errorf("%s does not contain a term list", file)
			}

			return e.client.SyncProject(ctx, poeditor.SyncProjectRequest{ID: id, Terms: terms})
		},
	}
}

func projectsExportCommand(m *Meta) *opCommand {
	var (
		id                                       int
		language, fileType, filters, tags, order string
	)
	return &opCommand{
		Meta:     m,
		name:     "projects export",
		synopsis: "Export a language to a file",
		usage:    "Prints a download link for the exported file. The link expires after 10 minutes.",
		required: []string{"id", "language", "type"},
		flags: func(f *flag.FlagSet) {
			f.IntVar(&id, "id", 0, "(Required) Project ID.")
			f.StringVar(&language, "language", "", "(Required) Language code.")
			f.StringVar(&fileType, "type", "", "(Required) File format, e.g. po, json or key_value_json.")
			f.StringVar(&filters, "filters", "", "Comma separated filters, e.g. translated,not_fuzzy.")
			f.StringVar(&tags, "tags", "", "Comma separated tags.")
			f.StringVar(&order, "order", "", "Set to terms to sort by term.")
		},
		run: func(ctx context.Context, e *env) (interface{}, error) {
			var fs []poeditor.ExportFilter
			for _, s := range list(filters) {
				fs = append(fs, poeditor.ExportFilter(s))
			}

			link, err := e.client.ExportProject(ctx, poeditor.ExportProjectRequest{
				ID:       id,
				Language: language,
				Type:     poeditor.FileType(fileType),
				Filters:  fs,
				Tags:     list(tags),
				Order:    order,
			})
			if err != nil {
				return nil, err
			}
			return message(link), nil
		},
	}
}

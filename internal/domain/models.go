// Package domain contains the event and response types of the POEditor Lambda.
package domain

import "github.com/pricofy/poeditor/pkg/poeditor"

// Actions understood by the Lambda.
const (
	ActionListProjects       = "list_projects"
	ActionViewProject        = "view_project"
	ActionAvailableLanguages = "available_languages"
	ActionListLanguages      = "list_languages"
	ActionListTerms          = "list_terms"
	ActionExport             = "export"
	ActionAddTerms           = "add_terms"
	ActionUpdateLanguage     = "update_language"
	ActionSyncTerms          = "sync_terms"
)

// Request is the input to the POEditor Lambda.
type Request struct {
	Action       string                    `json:"action"`
	ProjectID    int                       `json:"projectId,omitempty"`
	Language     string                    `json:"language,omitempty"`
	Type         poeditor.FileType         `json:"type,omitempty"`
	Filters      []poeditor.ExportFilter   `json:"filters,omitempty"`
	Tags         []string                  `json:"tags,omitempty"`
	Terms        []poeditor.TermBase       `json:"terms,omitempty"`
	Translations []poeditor.LanguageUpdate `json:"translations,omitempty"`
	FuzzyTrigger bool                      `json:"fuzzyTrigger,omitempty"`

	// BatchTokens overrides the configured size of one bulk request.
	BatchTokens int `json:"batchTokens,omitempty"`
}

// Response is the output of the POEditor Lambda.
type Response struct {
	Result           interface{}                      `json:"result,omitempty"`
	Statistics       *poeditor.UpdateStatisticsObject `json:"statistics,omitempty"`
	BatchesProcessed int                              `json:"batchesProcessed,omitempty"`
	Error            string                           `json:"error,omitempty"`
}

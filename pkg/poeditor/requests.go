package poeditor

import (
	"encoding/json"
	"fmt"
)

// Request structs are flattened into form fields by their mapstructure tags.
// Fields tagged "-" are structured payloads that the owning method encodes
// into the single "data" field.

type ViewProjectRequest struct {
	ID int `mapstructure:"id"`
}

type AddProjectRequest struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description,omitempty"`
}

// UpdateProjectRequest changes only the fields that are set.
type UpdateProjectRequest struct {
	ID                int    `mapstructure:"id"`
	Name              string `mapstructure:"name,omitempty"`
	Description       string `mapstructure:"description,omitempty"`
	ReferenceLanguage string `mapstructure:"reference_language,omitempty"`
}

type DeleteProjectRequest struct {
	ID int `mapstructure:"id"`
}

// UploadProjectRequest is sent as multipart, see UploadProject. File is a
// path resolved against the client's file system.
type UploadProjectRequest struct {
	ID             int
	Updating       UpdateType
	File           string
	Language       string
	Overwrite      *Bool
	SyncTerms      *Bool
	Tags           *UploadTags
	ReadFromSource *Bool
	FuzzyTrigger   *Bool
}

// UploadTags is either a plain list applied to all imported terms or a
// list per UpdateTag. Set exactly one of the two.
type UploadTags struct {
	List     []string
	ByUpdate map[UpdateTag][]string
}

func (t UploadTags) MarshalJSON() ([]byte, error) {
	if t.ByUpdate != nil {
		if t.List != nil {
			return nil, fmt.Errorf("upload tags: List and ByUpdate are mutually exclusive")
		}
		return json.Marshal(t.ByUpdate)
	}
	if t.List == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.List)
}

// SyncProjectRequest replaces the project terms with Terms. Terms missing
// from the list are deleted, together with their translations.
type SyncProjectRequest struct {
	ID    int        `mapstructure:"id"`
	Terms []TermBase `mapstructure:"-"`
}

type ExportProjectRequest struct {
	ID       int            `mapstructure:"id"`
	Language string         `mapstructure:"language"`
	Type     FileType       `mapstructure:"type"`
	Filters  []ExportFilter `mapstructure:"filters,omitempty"`
	Tags     []string       `mapstructure:"tags,omitempty"`
	Order    string         `mapstructure:"order,omitempty"`
}

type ListLanguagesRequest struct {
	ID int `mapstructure:"id"`
}

type AddLanguageRequest struct {
	ID       int    `mapstructure:"id"`
	Language string `mapstructure:"language"`
}

// UpdateLanguageRequest inserts or overwrites translations for Language.
type UpdateLanguageRequest struct {
	ID           int              `mapstructure:"id"`
	Language     string           `mapstructure:"language"`
	FuzzyTrigger *Bool            `mapstructure:"fuzzy_trigger,omitempty"`
	Data         []LanguageUpdate `mapstructure:"-"`
}

type DeleteLanguageRequest struct {
	ID       int    `mapstructure:"id"`
	Language string `mapstructure:"language"`
}

// ListTermsRequest lists the project terms, with translations when Language
// is set.
type ListTermsRequest struct {
	ID       int    `mapstructure:"id"`
	Language string `mapstructure:"language,omitempty"`
}

type AddTermsRequest struct {
	ID    int        `mapstructure:"id"`
	Terms []TermBase `mapstructure:"-"`
}

type UpdateTermsRequest struct {
	ID           int          `mapstructure:"id"`
	FuzzyTrigger *Bool        `mapstructure:"fuzzy_trigger,omitempty"`
	Terms        []UpdateTerm `mapstructure:"-"`
}

type DeleteTermsRequest struct {
	ID    int       `mapstructure:"id"`
	Terms []TermKey `mapstructure:"-"`
}

type AddCommentRequest struct {
	ID    int           `mapstructure:"id"`
	Terms []TermComment `mapstructure:"-"`
}

// ListContributorsRequest lists contributors of every project when ID is
// zero, or of one project (optionally one language).
type ListContributorsRequest struct {
	ID       int    `mapstructure:"id,omitempty"`
	Language string `mapstructure:"language,omitempty"`
}

// AddContributorRequest grants Language to a contributor, or the whole
// project when Admin is set.
type AddContributorRequest struct {
	ID       int    `mapstructure:"id"`
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
	Language string `mapstructure:"language,omitempty"`
	Admin    *Bool  `mapstructure:"admin,omitempty"`
}

// RemoveContributorRequest revokes Language from a contributor, or removes
// an administrator when Language is empty.
type RemoveContributorRequest struct {
	ID       int    `mapstructure:"id"`
	Email    string `mapstructure:"email"`
	Language string `mapstructure:"language,omitempty"`
}

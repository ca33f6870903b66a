package poeditor

import (
	"encoding/json"
	"time"

	"github.com/araddon/dateparse"
)

// FileType is an import/export format supported by POEditor.
type FileType string

const (
	FileTypePO             FileType = "po"  // Gettext
	FileTypePOT            FileType = "pot" // Gettext template
	FileTypeMO             FileType = "mo"  // Machine Object
	FileTypeXLS            FileType = "xls"
	FileTypeXLSX           FileType = "xlsx"
	FileTypeCSV            FileType = "csv"
	FileTypeINI            FileType = "ini"
	FileTypeRESW           FileType = "resw"
	FileTypeRESX           FileType = "resx"
	FileTypeAndroidStrings FileType = "android_strings"
	FileTypeAppleStrings   FileType = "apple_strings"
	FileTypeXLIFF          FileType = "xliff" // iOS
	FileTypeProperties     FileType = "properties"
	FileTypeKeyValueJSON   FileType = "key_value_json"
	FileTypeJSON           FileType = "json"
	FileTypeYML            FileType = "yml"
	FileTypeXLF            FileType = "xlf" // Angular
	FileTypeXMB            FileType = "xmb" // Angular
	FileTypeXTB            FileType = "xtb" // Angular
	FileTypeARB            FileType = "arb"
)

// ExportFilter narrows the terms included in an export.
type ExportFilter string

const (
	FilterTranslated   ExportFilter = "translated"
	FilterUntranslated ExportFilter = "untranslated"
	FilterFuzzy        ExportFilter = "fuzzy"
	FilterNotFuzzy     ExportFilter = "not_fuzzy"
	FilterAutomatic    ExportFilter = "automatic"
	FilterNotAutomatic ExportFilter = "not_automatic"
	FilterProofread    ExportFilter = "proofread"
	FilterNotProofread ExportFilter = "not_proofread"
)

// UpdateType selects what an upload writes.
type UpdateType string

const (
	UpdateTerms             UpdateType = "terms"
	UpdateTermsTranslations UpdateType = "terms_translations"
	UpdateTranslations      UpdateType = "translations"
)

// UpdateTag selects which terms an upload tags.
type UpdateTag string

const (
	// TagAll tags every term in the file.
	TagAll UpdateTag = "all"
	// TagNew tags terms created by the upload.
	TagNew UpdateTag = "new"
	// TagObsolete tags project terms missing from the file.
	TagObsolete UpdateTag = "obsolete"
	// TagOverwrittenTranslations tags terms whose translations were overwritten.
	TagOverwrittenTranslations UpdateTag = "overwritten_translations"
)

// ContributorType is the permission level of a contributor on a project.
type ContributorType string

const (
	// ContributorAdmin can manage languages, terms and contributors of the
	// project. Only the owner can delete it.
	ContributorAdmin ContributorType = "administrator"
	// ContributorTranslator can translate the languages it was given.
	ContributorTranslator ContributorType = "contributor"
)

// CompactProject is the project shape returned by /projects/list.
type CompactProject struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Public  Bool   `json:"public"`
	Open    Bool   `json:"open"`
	Created string `json:"created"`
}

// CreatedAt parses Created.
func (p CompactProject) CreatedAt() (time.Time, error) {
	return parseTimestamp(p.Created)
}

// Project is the full project shape.
type Project struct {
	CompactProject
	Description       string `json:"description"`
	ReferenceLanguage string `json:"reference_language"`
	Terms             int    `json:"terms"`
}

type Language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// ProjectLanguage is a language added to a project, with its progress.
type ProjectLanguage struct {
	Language
	Translations int     `json:"translations"`
	Percentage   float64 `json:"percentage"`
	Updated      string  `json:"updated"`
}

// UpdatedAt parses Updated. A language without translations has no timestamp.
func (l ProjectLanguage) UpdatedAt() (time.Time, error) {
	return parseTimestamp(l.Updated)
}

// TermBase holds the fields shared by every term payload. A term is
// identified by Term and Context together.
type TermBase struct {
	Term      string   `json:"term"`
	Context   string   `json:"context"`
	Plural    string   `json:"plural,omitempty"`
	Reference string   `json:"reference,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Comment   string   `json:"comment,omitempty"`
}

// Term is a term as listed by /terms/list. Translation is only set when the
// listing was scoped to a language.
type Term struct {
	TermBase
	Created     string           `json:"created"`
	Updated     string           `json:"updated"`
	Translation *TermTranslation `json:"translation,omitempty"`
}

func (t Term) CreatedAt() (time.Time, error) {
	return parseTimestamp(t.Created)
}

func (t Term) UpdatedAt() (time.Time, error) {
	return parseTimestamp(t.Updated)
}

type TermTranslation struct {
	Content   TranslationContent `json:"content"`
	Fuzzy     Bool               `json:"fuzzy"`
	Proofread Bool               `json:"proofread"`
	Updated   string             `json:"updated"`
}

// UpdateTerm renames a term. Term and Context select the term to change.
type UpdateTerm struct {
	TermBase
	NewTerm    string `json:"new_term"`
	NewContext string `json:"new_context"`
}

// TermKey identifies a term for deletion.
type TermKey struct {
	Term    string `json:"term"`
	Context string `json:"context"`
}

// TermComment is one comment to attach to a term.
type TermComment struct {
	Term    string `json:"term"`
	Context string `json:"context"`
	Comment string `json:"comment"`
}

// LanguageUpdate is one translation written by UpdateLanguage.
type LanguageUpdate struct {
	Term        string            `json:"term"`
	Context     string            `json:"context"`
	Translation TranslationUpdate `json:"translation"`
}

type TranslationUpdate struct {
	Content TranslationContent `json:"content"`
	Fuzzy   *Bool              `json:"fuzzy,omitempty"`
}

// UpdateStatisticsObject counts the effect of a write. Counters the API did
// not report are zero.
type UpdateStatisticsObject struct {
	Parsed  int `json:"parsed,omitempty"`
	Added   int `json:"added,omitempty"`
	Updated int `json:"updated,omitempty"`
	Deleted int `json:"deleted,omitempty"`
}

// Add accumulates other into s.
func (s *UpdateStatisticsObject) Add(other UpdateStatisticsObject) {
	s.Parsed += other.Parsed
	s.Added += other.Added
	s.Updated += other.Updated
	s.Deleted += other.Deleted
}

// UpdateStatistics is returned by upload and sync.
type UpdateStatistics struct {
	Terms        *UpdateStatisticsObject `json:"terms,omitempty"`
	Translations *UpdateStatisticsObject `json:"translations,omitempty"`
}

// ProjectRef names the project a permission applies to.
type ProjectRef struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

// Permission is one grant held by a contributor. Languages is only set for
// ContributorTranslator grants.
type Permission struct {
	Project     ProjectRef      `json:"project"`
	Type        ContributorType `json:"type"`
	Proofreader Bool            `json:"proofreader"`
	Languages   []string        `json:"languages,omitempty"`
}

// IsAdmin reports whether the grant is project-wide.
func (p Permission) IsAdmin() bool {
	return p.Type == ContributorAdmin
}

type Contributor struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Permissions []Permission `json:"permissions"`
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

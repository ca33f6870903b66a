package poeditor

import (
	"bytes"
	"encoding/json"
)

// TranslationContent is either a singular string or a plural pair.
type TranslationContent struct {
	Text   string
	Plural *PluralContent
}

// PluralContent is the content of a term that has a plural form.
type PluralContent struct {
	One   string `json:"one"`
	Other string `json:"other"`
}

// Text returns singular content.
func Text(s string) TranslationContent {
	return TranslationContent{Text: s}
}

// Plural returns plural content.
func Plural(one, other string) TranslationContent {
	return TranslationContent{Plural: &PluralContent{One: one, Other: other}}
}

// IsPlural reports whether the content has a plural form.
func (c TranslationContent) IsPlural() bool {
	return c.Plural != nil
}

func (c TranslationContent) MarshalJSON() ([]byte, error) {
	if c.Plural != nil {
		return json.Marshal(c.Plural)
	}
	return json.Marshal(c.Text)
}

func (c *TranslationContent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var p PluralContent
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*c = TranslationContent{Plural: &p}
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*c = TranslationContent{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = TranslationContent{Text: s}
	return nil
}

package poeditor

import (
	"context"
	"encoding/json"
)

const (
	pathLanguagesAvailable = "/languages/available"
	pathLanguagesList      = "/languages/list"
	pathLanguagesAdd       = "/languages/add"
	pathLanguagesUpdate    = "/languages/update"
	pathLanguagesDelete    = "/languages/delete"
)

type availableLanguagesResult struct {
	Languages []Language `json:"languages"`
}

type projectLanguagesResult struct {
	Languages []ProjectLanguage `json:"languages"`
}

type translationsResult struct {
	Translations UpdateStatisticsObject `json:"translations"`
}

// AvailableLanguages returns every language POEditor supports.
// https://poeditor.com/docs/api#languages_available
func (c *Client) AvailableLanguages(ctx context.Context) ([]Language, error) {
	res, err := callParams[availableLanguagesResult](ctx, c, pathLanguagesAvailable, nil)
	if err != nil {
		return nil, err
	}
	return res.Languages, nil
}

// ProjectLanguages returns the languages of a project with their progress.
// https://poeditor.com/docs/api#languages_list
func (c *Client) ProjectLanguages(ctx context.Context, req ListLanguagesRequest) ([]ProjectLanguage, error) {
	res, err := callParams[projectLanguagesResult](ctx, c, pathLanguagesList, req)
	if err != nil {
		return nil, err
	}
	return res.Languages, nil
}

// AddLanguage adds a language to a project.
// https://poeditor.com/docs/api#languages_add
func (c *Client) AddLanguage(ctx context.Context, req AddLanguageRequest) error {
	_, err := callParams[json.RawMessage](ctx, c, pathLanguagesAdd, req)
	return err
}

// UpdateLanguage inserts or overwrites translations.
// https://poeditor.com/docs/api#languages_update
func (c *Client) UpdateLanguage(ctx context.Context, req UpdateLanguageRequest) (*UpdateStatisticsObject, error) {
	values, err := c.form(req)
	if err != nil {
		return nil, err
	}
	if err := setJSON(values, "data", req.Data); err != nil {
		return nil, err
	}

	res, err := call[translationsResult](ctx, c, pathLanguagesUpdate, values)
	if err != nil {
		return nil, err
	}
	return &res.Translations, nil
}

// DeleteLanguage removes a language and its translations from a project.
// https://poeditor.com/docs/api#languages_delete
func (c *Client) DeleteLanguage(ctx context.Context, req DeleteLanguageRequest) error {
	_, err := callParams[json.RawMessage](ctx, c, pathLanguagesDelete, req)
	return err
}

package poeditor

import (
	"context"
	"encoding/json"
)

const (
	pathContributorsList   = "/contributors/list"
	pathContributorsAdd    = "/contributors/add"
	pathContributorsRemove = "/contributors/remove"
)

type contributorsResult struct {
	Contributors []Contributor `json:"contributors"`
}

// ListContributors lists contributors of all projects, or of one project
// and optionally one language.
// https://poeditor.com/docs/api#contributors_list
func (c *Client) ListContributors(ctx context.Context, req ListContributorsRequest) ([]Contributor, error) {
	res, err := callParams[contributorsResult](ctx, c, pathContributorsList, req)
	if err != nil {
		return nil, err
	}
	return res.Contributors, nil
}

// AddContributor grants a language, or the whole project as administrator.
// https://poeditor.com/docs/api#contributors_add
func (c *Client) AddContributor(ctx context.Context, req AddContributorRequest) error {
	_, err := callParams[json.RawMessage](ctx, c, pathContributorsAdd, req)
	return err
}

// RemoveContributor revokes a language from a contributor, or removes an
// administrator from the project.
// https://poeditor.com/docs/api#contributors_remove
func (c *Client) RemoveContributor(ctx context.Context, req RemoveContributorRequest) error {
	_, err := callParams[json.RawMessage](ctx, c, pathContributorsRemove, req)
	return err
}

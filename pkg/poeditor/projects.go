package poeditor

import (
	"context"
	"encoding/json"
)

const (
	pathProjectsList   = "/projects/list"
	pathProjectsView   = "/projects/view"
	pathProjectsAdd    = "/projects/add"
	pathProjectsUpdate = "/projects/update"
	pathProjectsDelete = "/projects/delete"
	pathProjectsUpload = "/projects/upload"
	pathProjectsSync   = "/projects/sync"
	pathProjectsExport = "/projects/export"
)

type projectsResult struct {
	Projects []CompactProject `json:"projects"`
}

type projectResult struct {
	Project Project `json:"project"`
}

type exportResult struct {
	URL string `json:"url"`
}

// ListProjects returns every project the token can access.
// https://poeditor.com/docs/api#projects_list
func (c *Client) ListProjects(ctx context.Context) ([]CompactProject, error) {
	res, err := callParams[projectsResult](ctx, c, pathProjectsList, nil)
	if err != nil {
		return nil, err
	}
	return res.Projects, nil
}

// ViewProject returns one project.
// https://poeditor.com/docs/api#projects_view
func (c *Client) ViewProject(ctx context.Context, req ViewProjectRequest) (*Project, error) {
	return c.project(ctx, pathProjectsView, req)
}

// AddProject creates a project. POEditor rejects an empty name.
// https://poeditor.com/docs/api#projects_add
func (c *Client) AddProject(ctx context.Context, req AddProjectRequest) (*Project, error) {
	return c.project(ctx, pathProjectsAdd, req)
}

// UpdateProject changes the fields set in req.
// https://poeditor.com/docs/api#projects_update
func (c *Client) UpdateProject(ctx context.Context, req UpdateProjectRequest) (*Project, error) {
	return c.project(ctx, pathProjectsUpdate, req)
}

func (c *Client) project(ctx context.Context, path string, req interface{}) (*Project, error) {
	res, err := callParams[projectResult](ctx, c, path, req)
	if err != nil {
		return nil, err
	}
	return &res.Project, nil
}

// DeleteProject deletes a project. Only the owner may do this.
// https://poeditor.com/docs/api#projects_delete
func (c *Client) DeleteProject(ctx context.Context, req DeleteProjectRequest) error {
	_, err := callParams[json.RawMessage](ctx, c, pathProjectsDelete, req)
	return err
}

// SyncProject makes the project terms match req.Terms exactly. Terms that are
// not listed are deleted with all their translations.
// https://poeditor.com/docs/api#projects_sync
func (c *Client) SyncProject(ctx context.Context, req SyncProjectRequest) (*UpdateStatistics, error) {
	values, err := c.form(req)
	if err != nil {
		return nil, err
	}
	if err := setJSON(values, "data", req.Terms); err != nil {
		return nil, err
	}

	res, err := call[UpdateStatistics](ctx, c, pathProjectsSync, values)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ExportProject returns a download URL for one language of the project.
// The URL expires after 10 minutes.
// https://poeditor.com/docs/api#projects_export
func (c *Client) ExportProject(ctx context.Context, req ExportProjectRequest) (string, error) {
	res, err := callParams[exportResult](ctx, c, pathProjectsExport, req)
	if err != nil {
		return "", err
	}
	return res.URL, nil
}

package poeditor

import "context"

const (
	pathTermsList       = "/terms/list"
	pathTermsAdd        = "/terms/add"
	pathTermsUpdate     = "/terms/update"
	pathTermsDelete     = "/terms/delete"
	pathTermsAddComment = "/terms/add_comment"
)

type termsResult struct {
	Terms []Term `json:"terms"`
}

type termStatisticsResult struct {
	Terms UpdateStatisticsObject `json:"terms"`
}

// ListTerms returns the project terms, with translations when req.Language
// is set.
// https://poeditor.com/docs/api#terms_list
func (c *Client) ListTerms(ctx context.Context, req ListTermsRequest) ([]Term, error) {
	res, err := callParams[termsResult](ctx, c, pathTermsList, req)
	if err != nil {
		return nil, err
	}
	return res.Terms, nil
}

// AddTerms adds terms to a project.
// https://poeditor.com/docs/api#terms_add
func (c *Client) AddTerms(ctx context.Context, req AddTermsRequest) (*UpdateStatisticsObject, error) {
	return c.termData(ctx, pathTermsAdd, req, req.Terms)
}

// UpdateTerms renames or re-contexts terms, matched by term and context.
// https://poeditor.com/docs/api#terms_update
func (c *Client) UpdateTerms(ctx context.Context, req UpdateTermsRequest) (*UpdateStatisticsObject, error) {
	return c.termData(ctx, pathTermsUpdate, req, req.Terms)
}

// DeleteTerms removes terms from a project.
// https://poeditor.com/docs/api#terms_delete
func (c *Client) DeleteTerms(ctx context.Context, req DeleteTermsRequest) (*UpdateStatisticsObject, error) {
	return c.termData(ctx, pathTermsDelete, req, req.Terms)
}

// AddComment attaches comments to terms. A term keeps every comment it is
// given.
// https://poeditor.com/docs/api#terms_add_comment
func (c *Client) AddComment(ctx context.Context, req AddCommentRequest) (*UpdateStatisticsObject, error) {
	return c.termData(ctx, pathTermsAddComment, req, req.Terms)
}

// termData sends req with terms encoded into the data field.
func (c *Client) termData(ctx context.Context, path string, req interface{}, terms interface{}) (*UpdateStatisticsObject, error) {
	values, err := c.form(req)
	if err != nil {
		return nil, err
	}
	if err := setJSON(values, "data", terms); err != nil {
		return nil, err
	}

	res, err := call[termStatisticsResult](ctx, c, path, values)
	if err != nil {
		return nil, err
	}
	return &res.Terms, nil
}

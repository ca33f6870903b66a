// Package handler provides the Lambda handler for the POEditor client.
package handler

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"

	"github.com/pricofy/poeditor/internal/domain"
	"github.com/pricofy/poeditor/internal/router"
)

// Handler validates Lambda requests and hands them to the router.
type Handler struct {
	router *router.Router
	logger hclog.Logger
}

// New creates a Handler.
func New(r *router.Router, logger hclog.Logger) *Handler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Handler{router: r, logger: logger.Named("handler")}
}

// Handle processes one request. Validation and remote failures are reported
// in Response.Error; the returned error is reserved for invocation failures.
func (h *Handler) Handle(ctx context.Context, req domain.Request) (*domain.Response, error) {
	if err := h.validateRequest(req); err != nil {
		return &domain.Response{Error: err.Error()}, nil
	}

	h.logger.Debug("routing request", "action", req.Action, "project", req.ProjectID)

	resp, err := h.router.Route(ctx, req)
	if err != nil {
		h.logger.Error("request failed", "action", req.Action, "error", err)
		if resp == nil {
			resp = &domain.Response{}
		}
		resp.Error = err.Error()
	}
	return resp, nil
}

// validateRequest checks the fields each action needs.
func (h *Handler) validateRequest(req domain.Request) error {
	actions := make([]interface{}, 0)
	for _, a := range h.router.Actions() {
		actions = append(actions, a)
	}

	needsProject := req.Action != domain.ActionListProjects && req.Action != domain.ActionAvailableLanguages
	isExport := req.Action == domain.ActionExport
	isUpdate := req.Action == domain.ActionUpdateLanguage

	return validation.ValidateStruct(&req,
		validation.Field(&req.Action, validation.Required, validation.In(actions...)),
		validation.Field(&req.ProjectID, validation.When(needsProject, validation.Required)),
		validation.Field(&req.Language, validation.When(isExport || isUpdate, validation.Required)),
		validation.Field(&req.Type, validation.When(isExport, validation.Required)),
		validation.Field(&req.Terms,
			validation.When(req.Action == domain.ActionAddTerms, validation.Required),
			// an empty list is a valid sync: it removes every term
			validation.When(req.Action == domain.ActionSyncTerms, validation.NotNil),
		),
		validation.Field(&req.Translations, validation.When(isUpdate, validation.Required)),
		validation.Field(&req.BatchTokens, validation.Min(0)),
	)
}

// Package router dispatches Lambda actions to POEditor operations.
package router

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/pricofy/poeditor/internal/chunker"
	"github.com/pricofy/poeditor/internal/domain"
	"github.com/pricofy/poeditor/pkg/poeditor"
)

// Service is the part of the POEditor client the router needs.
type Service interface {
	ListProjects(ctx context.Context) ([]poeditor.CompactProject, error)
	ViewProject(ctx context.Context, req poeditor.ViewProjectRequest) (*poeditor.Project, error)
	AvailableLanguages(ctx context.Context) ([]poeditor.Language, error)
	ProjectLanguages(ctx context.Context, req poeditor.ListLanguagesRequest) ([]poeditor.ProjectLanguage, error)
	ListTerms(ctx context.Context, req poeditor.ListTermsRequest) ([]poeditor.Term, error)
	ExportProject(ctx context.Context, req poeditor.ExportProjectRequest) (string, error)
	AddTerms(ctx context.Context, req poeditor.AddTermsRequest) (*poeditor.UpdateStatisticsObject, error)
	UpdateLanguage(ctx context.Context, req poeditor.UpdateLanguageRequest) (*poeditor.UpdateStatisticsObject, error)
	SyncProject(ctx context.Context, req poeditor.SyncProjectRequest) (*poeditor.UpdateStatistics, error)
}

var _ Service = (*poeditor.Client)(nil)

type route func(ctx context.Context, req domain.Request) (*domain.Response, error)

// Router routes Lambda requests to the POEditor client.
type Router struct {
	svc         Service
	batchTokens int
	logger      hclog.Logger
	routes      map[string]route
}

// New creates a new Router. batchTokens bounds the estimated size of one
// add_terms or update_language request.
func New(svc Service, batchTokens int, logger hclog.Logger) *Router {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	r := &Router{
		svc:         svc,
		batchTokens: batchTokens,
		logger:      logger.Named("router"),
	}
	r.routes = map[string]route{
		domain.ActionListProjects:       r.listProjects,
		domain.ActionViewProject:        r.viewProject,
		domain.ActionAvailableLanguages: r.availableLanguages,
		domain.ActionListLanguages:      r.listLanguages,
		domain.ActionListTerms:          r.listTerms,
		domain.ActionExport:             r.export,
		domain.ActionAddTerms:           r.addTerms,
		domain.ActionUpdateLanguage:     r.updateLanguage,
		domain.ActionSyncTerms:          r.syncTerms,
	}
	return r
}

// HasAction reports whether action can be routed.
func (r *Router) HasAction(action string) bool {
	_, ok := r.routes[action]
	return ok
}

// Actions returns the routable actions, sorted.
func (r *Router) Actions() []string {
	actions := make([]string, 0, len(r.routes))
	for action := range r.routes {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	return actions
}

// Route executes req. For batched actions the response is returned together
// with the error so that the statistics of the successful batches survive.
func (r *Router) Route(ctx context.Context, req domain.Request) (*domain.Response, error) {
	handle, ok := r.routes[req.Action]
	if !ok {
		return nil, fmt.Errorf("unsupported action: %s", req.Action)
	}
	return handle(ctx, req)
}

func (r *Router) listProjects(ctx context.Context, _ domain.Request) (*domain.Response, error) {
	projects, err := r.svc.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Response{Result: projects}, nil
}

func (r *Router) viewProject(ctx context.Context, req domain.Request) (*domain.Response, error) {
	project, err := r.svc.ViewProject(ctx, poeditor.ViewProjectRequest{ID: req.ProjectID})
	if err != nil {
		return nil, err
	}
	return &domain.Response{Result: project}, nil
}

func (r *Router) availableLanguages(ctx context.Context, _ domain.Request) (*domain.Response, error) {
	languages, err := r.svc.AvailableLanguages(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Response{Result: languages}, nil
}

func (r *Router) listLanguages(ctx context.Context, req domain.Request) (*domain.Response, error) {
	languages, err := r.svc.ProjectLanguages(ctx, poeditor.ListLanguagesRequest{ID: req.ProjectID})
	if err != nil {
		return nil, err
	}
	return &domain.Response{Result: languages}, nil
}

func (r *Router) listTerms(ctx context.Context, req domain.Request) (*domain.Response, error) {
	terms, err := r.svc.ListTerms(ctx, poeditor.ListTermsRequest{ID: req.ProjectID, Language: req.Language})
	if err != nil {
		return nil, err
	}
	return &domain.Response{Result: terms}, nil
}

func (r *Router) export(ctx context.Context, req domain.Request) (*domain.Response, error) {
	link, err := r.svc.ExportProject(ctx, poeditor.ExportProjectRequest{
		ID:       req.ProjectID,
		Language: req.Language,
		Type:     req.Type,
		Filters:  req.Filters,
		Tags:     req.Tags,
	})
	if err != nil {
		return nil, err
	}
	return &domain.Response{Result: map[string]string{"url": link}}, nil
}

// syncTerms is never batched: a sync deletes every term it is not given.
func (r *Router) syncTerms(ctx context.Context, req domain.Request) (*domain.Response, error) {
	stats, err := r.svc.SyncProject(ctx, poeditor.SyncProjectRequest{ID: req.ProjectID, Terms: req.Terms})
	if err != nil {
		return nil, err
	}
	return &domain.Response{Result: stats, BatchesProcessed: 1}, nil
}

func (r *Router) addTerms(ctx context.Context, req domain.Request) (*domain.Response, error) {
	chunks := chunker.ChunkByTokens(req.Terms, r.tokens(req), chunker.TermTokens)
	return r.runBatches(ctx, domain.ActionAddTerms, len(chunks), func(i int) (*poeditor.UpdateStatisticsObject, error) {
		return r.svc.AddTerms(ctx, poeditor.AddTermsRequest{ID: req.ProjectID, Terms: chunks[i]})
	})
}

func (r *Router) updateLanguage(ctx context.Context, req domain.Request) (*domain.Response, error) {
	var fuzzy *poeditor.Bool
	if req.FuzzyTrigger {
		fuzzy = poeditor.BoolPtr(true)
	}

	chunks := chunker.ChunkByTokens(req.Translations, r.tokens(req), chunker.TranslationTokens)
	return r.runBatches(ctx, domain.ActionUpdateLanguage, len(chunks), func(i int) (*poeditor.UpdateStatisticsObject, error) {
		return r.svc.UpdateLanguage(ctx, poeditor.UpdateLanguageRequest{
			ID:           req.ProjectID,
			Language:     req.Language,
			FuzzyTrigger: fuzzy,
			Data:         chunks[i],
		})
	})
}

// runBatches sends each batch in order, summing the statistics of those
// that succeed. A failed batch does not stop the others; a cancelled
// context does.
func (r *Router) runBatches(ctx context.Context, action string, n int, send func(i int) (*poeditor.UpdateStatisticsObject, error)) (*domain.Response, error) {
	total := poeditor.UpdateStatisticsObject{}
	resp := &domain.Response{Statistics: &total}
	var errs *multierror.Error

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("batch %d: %w", i+1, err))
			break
		}

		stats, err := send(i)
		if err != nil {
			r.logger.Warn("batch failed", "action", action, "batch", i+1, "of", n, "error", err)
			errs = multierror.Append(errs, fmt.Errorf("batch %d: %w", i+1, err))
			continue
		}
		total.Add(*stats)
		resp.BatchesProcessed++
	}

	r.logger.Info("batches processed", "action", action, "ok", resp.BatchesProcessed, "total", n)
	return resp, errs.ErrorOrNil()
}

func (r *Router) tokens(req domain.Request) int {
	if req.BatchTokens > 0 {
		return req.BatchTokens
	}
	return r.batchTokens
}

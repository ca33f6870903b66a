package router

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pricofy/poeditor/internal/domain"
	"github.com/pricofy/poeditor/pkg/poeditor"
)

// fakeService answers from fixed data and records the requests it got.
type fakeService struct {
	addTerms       []poeditor.AddTermsRequest
	updateLanguage []poeditor.UpdateLanguageRequest
	sync           []poeditor.SyncProjectRequest
	export         []poeditor.ExportProjectRequest

	failAddBatch int // 1-based batch that fails, 0 for none
}

func (f *fakeService) ListProjects(context.Context) ([]poeditor.CompactProject, error) {
	return []poeditor.CompactProject{{ID: 1, Name: "App"}}, nil
}

func (f *fakeService) ViewProject(_ context.Context, req poeditor.ViewProjectRequest) (*poeditor.Project, error) {
	if req.ID != 1 {
		return nil, &poeditor.OperationFailedError{Message: "Project not found", Code: "4044"}
	}
	return &poeditor.Project{CompactProject: poeditor.CompactProject{ID: 1, Name: "App"}}, nil
}

func (f *fakeService) AvailableLanguages(context.Context) ([]poeditor.Language, error) {
	return []poeditor.Language{{Name: "Swedish", Code: "sv"}}, nil
}

func (f *fakeService) ProjectLanguages(context.Context, poeditor.ListLanguagesRequest) ([]poeditor.ProjectLanguage, error) {
	return []poeditor.ProjectLanguage{{Language: poeditor.Language{Name: "Swedish", Code: "sv"}}}, nil
}

func (f *fakeService) ListTerms(context.Context, poeditor.ListTermsRequest) ([]poeditor.Term, error) {
	return []poeditor.Term{{TermBase: poeditor.TermBase{Term: "app.title"}}}, nil
}

func (f *fakeService) ExportProject(_ context.Context, req poeditor.ExportProjectRequest) (string, error) {
	f.export = append(f.export, req)
	return "https://api.poeditor.com/v2/download/file/abc", nil
}

func (f *fakeService) AddTerms(_ context.Context, req poeditor.AddTermsRequest) (*poeditor.UpdateStatisticsObject, error) {
	f.addTerms = append(f.addTerms, req)
	if len(f.addTerms) == f.failAddBatch {
		return nil, &poeditor.OperationFailedError{Message: "Too many requests", Code: "4290"}
	}
	return &poeditor.UpdateStatisticsObject{Parsed: len(req.Terms), Added: len(req.Terms)}, nil
}

func (f *fakeService) UpdateLanguage(_ context.Context, req poeditor.UpdateLanguageRequest) (*poeditor.UpdateStatisticsObject, error) {
	f.updateLanguage = append(f.updateLanguage, req)
	return &poeditor.UpdateStatisticsObject{Parsed: len(req.Data), Updated: len(req.Data)}, nil
}

func (f *fakeService) SyncProject(_ context.Context, req poeditor.SyncProjectRequest) (*poeditor.UpdateStatistics, error) {
	f.sync = append(f.sync, req)
	return &poeditor.UpdateStatistics{Terms: &poeditor.UpdateStatisticsObject{Parsed: len(req.Terms)}}, nil
}

func terms(n, size int) []poeditor.TermBase {
	out := make([]poeditor.TermBase, n)
	for i := range out {
		out[i] = poeditor.TermBase{Term: strings.Repeat("t", size*4)}
	}
	return out
}

func TestHasAction(t *testing.T) {
	r := New(&fakeService{}, 100, nil)

	tests := []struct {
		action   string
		expected bool
	}{
		{domain.ActionListProjects, true},
		{domain.ActionExport, true},
		{domain.ActionAddTerms, true},
		{domain.ActionSyncTerms, true},
		{"delete_project", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			if got := r.HasAction(tt.action); got != tt.expected {
				t.Errorf("HasAction(%q) = %v, want %v", tt.action, got, tt.expected)
			}
		})
	}

	if got := len(r.Actions()); got != 9 {
		t.Errorf("Actions() returned %d actions, want 9", got)
	}
}

func TestRoute_ReadActions(t *testing.T) {
	r := New(&fakeService{}, 100, nil)
	ctx := context.Background()

	for _, action := range []string{
		domain.ActionListProjects,
		domain.ActionViewProject,
		domain.ActionAvailableLanguages,
		domain.ActionListLanguages,
		domain.ActionListTerms,
	} {
		t.Run(action, func(t *testing.T) {
			resp, err := r.Route(ctx, domain.Request{Action: action, ProjectID: 1})
			if err != nil {
				t.Fatalf("Route() unexpected error: %v", err)
			}
			if resp.Result == nil {
				t.Errorf("Route() returned no result")
			}
		})
	}
}

func TestRoute_UnknownAction(t *testing.T) {
	r := New(&fakeService{}, 100, nil)

	_, err := r.Route(context.Background(), domain.Request{Action: "translate"})
	if err == nil || !strings.Contains(err.Error(), "unsupported action") {
		t.Errorf("Route() error = %v, want unsupported action", err)
	}
}

func TestRoute_RemoteFailurePassesThrough(t *testing.T) {
	r := New(&fakeService{}, 100, nil)

	_, err := r.Route(context.Background(), domain.Request{Action: domain.ActionViewProject, ProjectID: 2})
	if err == nil || err.Error() != "Project not found" {
		t.Errorf("Route() error = %v, want %q", err, "Project not found")
	}
}

func TestRoute_Export(t *testing.T) {
	svc := &fakeService{}
	r := New(svc, 100, nil)

	resp, err := r.Route(context.Background(), domain.Request{
		Action:    domain.ActionExport,
		ProjectID: 1,
		Language:  "sv",
		Type:      poeditor.FileTypeKeyValueJSON,
		Filters:   []poeditor.ExportFilter{poeditor.FilterTranslated},
	})
	if err != nil {
		t.Fatalf("Route() unexpected error: %v", err)
	}

	result, ok := resp.Result.(map[string]string)
	if !ok || result["url"] == "" {
		t.Errorf("Route() result = %#v, want url", resp.Result)
	}
	if len(svc.export) != 1 || svc.export[0].Type != poeditor.FileTypeKeyValueJSON {
		t.Errorf("ExportProject called with %#v", svc.export)
	}
}

func TestRoute_AddTermsBatches(t *testing.T) {
	tests := []struct {
		name            string
		terms           []poeditor.TermBase
		batchTokens     int
		override        int
		expectedBatches int
	}{
		{"fits in one batch", terms(3, 10), 100, 0, 1},
		{"split by configured size", terms(4, 10), 20, 0, 2},
		{"split by request override", terms(4, 10), 100, 10, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			r := New(svc, tt.batchTokens, nil)

			resp, err := r.Route(context.Background(), domain.Request{
				Action:      domain.ActionAddTerms,
				ProjectID:   1,
				Terms:       tt.terms,
				BatchTokens: tt.override,
			})
			if err != nil {
				t.Fatalf("Route() unexpected error: %v", err)
			}

			if len(svc.addTerms) != tt.expectedBatches {
				t.Errorf("AddTerms called %d times, want %d", len(svc.addTerms), tt.expectedBatches)
			}
			if resp.BatchesProcessed != tt.expectedBatches {
				t.Errorf("BatchesProcessed = %d, want %d", resp.BatchesProcessed, tt.expectedBatches)
			}
			if resp.Statistics.Added != len(tt.terms) {
				t.Errorf("Statistics.Added = %d, want %d", resp.Statistics.Added, len(tt.terms))
			}
		})
	}
}

func TestRoute_AddTermsPartialFailure(t *testing.T) {
	svc := &fakeService{failAddBatch: 2}
	r := New(svc, 10, nil)

	resp, err := r.Route(context.Background(), domain.Request{
		Action:    domain.ActionAddTerms,
		ProjectID: 1,
		Terms:     terms(3, 10),
	})
	if err == nil {
		t.Fatal("Route() should report the failed batch")
	}
	if !strings.Contains(err.Error(), "batch 2: Too many requests") {
		t.Errorf("Route() error = %q, want batch 2 failure", err.Error())
	}

	var opErr *poeditor.OperationFailedError
	if !errors.As(err, &opErr) {
		t.Errorf("Route() error should wrap the remote failure")
	}

	if resp == nil || resp.BatchesProcessed != 2 || resp.Statistics.Added != 2 {
		t.Errorf("Route() response = %#v, want 2 successful batches", resp)
	}
}

func TestRoute_CancelledContextStopsBatches(t *testing.T) {
	svc := &fakeService{}
	r := New(svc, 10, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Route(ctx, domain.Request{Action: domain.ActionAddTerms, ProjectID: 1, Terms: terms(3, 10)})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Route() error = %v, want context.Canceled", err)
	}
	if len(svc.addTerms) != 0 {
		t.Errorf("AddTerms called %d times after cancel", len(svc.addTerms))
	}
}

func TestRoute_UpdateLanguage(t *testing.T) {
	svc := &fakeService{}
	r := New(svc, 1000, nil)

	resp, err := r.Route(context.Background(), domain.Request{
		Action:       domain.ActionUpdateLanguage,
		ProjectID:    1,
		Language:     "sv",
		FuzzyTrigger: true,
		Translations: []poeditor.LanguageUpdate{
			{Term: "a", Translation: poeditor.TranslationUpdate{Content: poeditor.Text("A")}},
			{Term: "b", Translation: poeditor.TranslationUpdate{Content: poeditor.Plural("b", "bs")}},
		},
	})
	if err != nil {
		t.Fatalf("Route() unexpected error: %v", err)
	}

	if len(svc.updateLanguage) != 1 {
		t.Fatalf("UpdateLanguage called %d times, want 1", len(svc.updateLanguage))
	}
	got := svc.updateLanguage[0]
	if got.Language != "sv" || got.FuzzyTrigger == nil || !got.FuzzyTrigger.Value() {
		t.Errorf("UpdateLanguage request = %#v", got)
	}
	if resp.Statistics.Updated != 2 {
		t.Errorf("Statistics.Updated = %d, want 2", resp.Statistics.Updated)
	}
}

func TestRoute_SyncIsNeverBatched(t *testing.T) {
	svc := &fakeService{}
	r := New(svc, 10, nil)

	_, err := r.Route(context.Background(), domain.Request{
		Action:    domain.ActionSyncTerms,
		ProjectID: 1,
		Terms:     terms(5, 10),
	})
	if err != nil {
		t.Fatalf("Route() unexpected error: %v", err)
	}

	if len(svc.sync) != 1 || len(svc.sync[0].Terms) != 5 {
		t.Errorf("SyncProject calls = %#v, want one call with all 5 terms", svc.sync)
	}
}

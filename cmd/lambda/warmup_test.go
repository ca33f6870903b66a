package main

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricofy/poeditor/internal/handler"
	"github.com/pricofy/poeditor/internal/router"
	"github.com/pricofy/poeditor/pkg/poeditor"
)

func TestIsWarmupEvent(t *testing.T) {
	tests := []struct {
		name        string
		event       string
		isWarmup    bool
		concurrency int
	}{
		{"warmup with concurrency", `{"source":"warmup","concurrency":3}`, true, 3},
		{"warmup without concurrency", `{"source":"warmup"}`, true, 0},
		{"negative concurrency", `{"source":"warmup","concurrency":-2}`, true, 0},
		{"other source", `{"source":"aws.events"}`, false, 0},
		{"action request", `{"action":"list_projects"}`, false, 0},
		{"not an object", `[1,2]`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warmup, ok := IsWarmupEvent(json.RawMessage(tt.event))
			assert.Equal(t, tt.isWarmup, ok)
			if ok {
				assert.Equal(t, tt.concurrency, warmup.Concurrency)
			}
		})
	}
}

func TestWarmer_Handle(t *testing.T) {
	var calls int32
	var payload []byte
	w := newWarmer(hclog.NewNullLogger(), func(_ context.Context, p []byte) error {
		atomic.AddInt32(&calls, 1)
		payload = p
		return nil
	})
	w.delay = 0

	out, err := w.Handle(context.Background(), &WarmupEvent{Source: WarmupSource, Concurrency: 4})
	require.NoError(t, err)

	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
	assert.JSONEq(t, `{"source":"warmup","concurrency":0}`, string(payload))

	body := out.(map[string]interface{})["body"].(WarmupResponse)
	assert.Equal(t, WarmupResponse{Status: "warm", InstancesWarmed: 5}, body)
}

func TestWarmer_HandleInvokeFailure(t *testing.T) {
	w := newWarmer(hclog.NewNullLogger(), func(context.Context, []byte) error {
		return errors.New("throttled")
	})
	w.delay = 0

	out, err := w.Handle(context.Background(), &WarmupEvent{Source: WarmupSource, Concurrency: 2})
	require.NoError(t, err)

	body := out.(map[string]interface{})["body"].(WarmupResponse)
	assert.Equal(t, 1, body.InstancesWarmed)
}

func TestHandleRequest_InvalidEvent(t *testing.T) {
	client, err := poeditor.New(poeditor.Config{APIToken: "token"})
	require.NoError(t, err)
	h := handler.New(router.New(client, 100, nil), nil)
	w := newWarmer(hclog.NewNullLogger(), func(context.Context, []byte) error { return nil })

	_, err = handleRequest(context.Background(), json.RawMessage(`{"projectId":"seven"}`), w, h)
	assert.ErrorContains(t, err, "invalid request")
}

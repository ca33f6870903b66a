// Package main is the entry point for the POEditor Lambda function.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/hashicorp/go-hclog"

	"github.com/pricofy/poeditor/internal/config"
	"github.com/pricofy/poeditor/internal/domain"
	"github.com/pricofy/poeditor/internal/handler"
	"github.com/pricofy/poeditor/internal/router"
	"github.com/pricofy/poeditor/pkg/poeditor"
)

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:       "poeditor-lambda",
		JSONFormat: true,
	})

	h, err := newHandler(logger)
	if err != nil {
		logger.Error("initialization failed", "error", err)
		os.Exit(1)
	}

	w := newWarmer(logger, nil)
	lambda.Start(func(ctx context.Context, event json.RawMessage) (interface{}, error) {
		return handleRequest(ctx, event, w, h)
	})
}

// newHandler builds the client and handler once per cold start.
func newHandler(logger hclog.Logger) (*handler.Handler, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	logger.SetLevel(cfg.Level())

	client, err := poeditor.New(cfg.ClientConfig(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	r := router.New(client, cfg.TermBatchTokens, logger)
	return handler.New(r, logger), nil
}

func handleRequest(ctx context.Context, event json.RawMessage, w *warmer, h *handler.Handler) (interface{}, error) {
	// Warmup detection must come before anything else.
	if warmup, ok := IsWarmupEvent(event); ok {
		return w.Handle(ctx, warmup)
	}

	var req domain.Request
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	return h.Handle(ctx, req)
}

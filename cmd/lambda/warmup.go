package main

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/hashicorp/go-hclog"
)

const (
	// WarmupSource identifies warmup events from CloudWatch
	WarmupSource = "warmup"

	// WarmupDelay ensures instances overlap to create true concurrency
	WarmupDelay = 75 * time.Millisecond
)

// WarmupEvent represents the CloudWatch Event payload for warmup
type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// WarmupResponse is the response returned by warmup operations
type WarmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// IsWarmupEvent checks if the event is a warmup event
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var eventMap map[string]interface{}
	if err := json.Unmarshal(event, &eventMap); err != nil {
		return nil, false
	}

	source, ok := eventMap["source"].(string)
	if !ok || source != WarmupSource {
		return nil, false
	}

	warmup := &WarmupEvent{Source: source}
	if concurrency, ok := eventMap["concurrency"].(float64); ok && concurrency > 0 {
		warmup.Concurrency = int(concurrency)
	}
	return warmup, true
}

// invokeFunc starts one asynchronous copy of this function with payload.
type invokeFunc func(ctx context.Context, payload []byte) error

// warmer keeps instances of this function warm by invoking copies of it.
type warmer struct {
	invoke invokeFunc
	delay  time.Duration
	logger hclog.Logger
}

// newWarmer returns a warmer. A nil invoke uses the Lambda API.
func newWarmer(logger hclog.Logger, invoke invokeFunc) *warmer {
	if invoke == nil {
		invoke = lambdaInvoker()
	}
	return &warmer{invoke: invoke, delay: WarmupDelay, logger: logger.Named("warmup")}
}

// Handle processes a warmup event and optionally self-invokes to maintain
// multiple warm instances.
func (w *warmer) Handle(ctx context.Context, warmup *WarmupEvent) (interface{}, error) {
	instancesWarmed := 1 // this instance

	if warmup.Concurrency > 0 {
		if err := w.selfInvoke(ctx, warmup.Concurrency); err != nil {
			w.logger.Warn("self invoke failed", "concurrency", warmup.Concurrency, "error", err)
		} else {
			instancesWarmed += warmup.Concurrency
		}
	}

	time.Sleep(w.delay)

	return map[string]interface{}{
		"statusCode": 200,
		"body": WarmupResponse{
			Status:          "warm",
			InstancesWarmed: instancesWarmed,
		},
	}, nil
}

// selfInvoke invokes this function count times in parallel. Children get
// concurrency 0 so they do not invoke further copies.
func (w *warmer) selfInvoke(ctx context.Context, count int) error {
	payload, err := json.Marshal(WarmupEvent{Source: WarmupSource})
	if err != nil {
		return err
	}

	var (
		wg        sync.WaitGroup
		errMu     sync.Mutex
		invokeErr error
	)
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.invoke(ctx, payload); err != nil {
				errMu.Lock()
				if invokeErr == nil {
					invokeErr = err
				}
				errMu.Unlock()
			}
		}()
	}

	wg.Wait()
	return invokeErr
}

func lambdaInvoker() invokeFunc {
	var (
		once   sync.Once
		client *lambdasdk.Client
		err    error
	)
	return func(ctx context.Context, payload []byte) error {
		once.Do(func() {
			var cfg aws.Config
			cfg, err = config.LoadDefaultConfig(ctx)
			if err == nil {
				client = lambdasdk.NewFromConfig(cfg)
			}
		})
		if err != nil {
			return err
		}

		_, invokeErr := client.Invoke(ctx, &lambdasdk.InvokeInput{
			FunctionName:   aws.String(os.Getenv("AWS_LAMBDA_FUNCTION_NAME")),
			InvocationType: types.InvocationTypeEvent,
			Payload:        payload,
		})
		return invokeErr
	}
}

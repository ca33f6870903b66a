package poeditor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

const (
	// DefaultBaseURL is the POEditor API v2 root.
	DefaultBaseURL = "https://api.poeditor.com/v2"

	// DefaultTimeout bounds every form-encoded call.
	DefaultTimeout = 10 * time.Second
)

// Config configures a Client. Only APIToken is required.
type Config struct {
	BaseURL  string // default DefaultBaseURL
	APIToken string

	// Timeout applies to every call except UploadProject. Default DefaultTimeout.
	Timeout time.Duration

	// UploadTimeout applies to UploadProject. Zero leaves the upload bounded
	// only by the caller's context.
	UploadTimeout time.Duration

	HTTPClient *http.Client // default &http.Client{}
	Fs         afero.Fs     // file system for uploads, default the OS
	Logger     hclog.Logger // default null logger
}

// Client calls the POEditor API. It is safe for concurrent use.
type Client struct {
	baseURL       string
	token         string
	timeout       time.Duration
	uploadTimeout time.Duration
	httpClient    *http.Client
	fs            afero.Fs
	logger        hclog.Logger
}

// New creates a Client.
func New(cfg Config) (*Client, error) {
	if cfg.APIToken == "" {
		return nil, fmt.Errorf("POEditor API token is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL must use http or https scheme, got: %q", u.Scheme)
	}

	if cfg.Timeout < 0 || cfg.UploadTimeout < 0 {
		return nil, fmt.Errorf("timeouts must not be negative")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		token:         cfg.APIToken,
		timeout:       cfg.Timeout,
		uploadTimeout: cfg.UploadTimeout,
		httpClient:    cfg.HTTPClient,
		fs:            cfg.Fs,
		logger:        cfg.Logger.Named("poeditor"),
	}, nil
}

// call is the form-encoded path used by every endpoint but the upload.
func call[T any](ctx context.Context, c *Client, path string, values url.Values) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body := strings.NewReader(values.Encode())
	raw, err := c.send(ctx, path, "application/x-www-form-urlencoded", body)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](c, path, raw)
}

// callParams flattens params and performs the call.
func callParams[T any](ctx context.Context, c *Client, path string, params interface{}) (T, error) {
	values, err := c.form(params)
	if err != nil {
		var zero T
		return zero, err
	}
	return call[T](ctx, c, path, values)
}

// send issues one POST and returns the raw body.
func (c *Client) send(ctx context.Context, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, &TransportError{Path: path, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("sending request", "path", path)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Path: path, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Debug("received response",
		"path", path,
		"http_status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// POEditor reports failures inside the envelope; only give up here
		// when there is no envelope to read.
		var probe Envelope[json.RawMessage]
		if json.Unmarshal(raw, &probe) != nil || probe.Response.Status == "" {
			return nil, &TransportError{Path: path, Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(raw, 200))}
		}
	}

	return raw, nil
}

// decode applies the envelope rule and unmarshals the result. The result is
// only parsed after a success status, so failure envelopes with odd result
// shapes still surface as *OperationFailedError.
func decode[T any](c *Client, path string, raw []byte) (T, error) {
	var zero T

	var env Envelope[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, &TransportError{Path: path, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if env.Response.Status == "" {
		return zero, &TransportError{Path: path, Err: fmt.Errorf("response has no status envelope")}
	}

	if err := env.Response.Err(); err != nil {
		c.logger.Debug("operation failed", "path", path, "code", env.Response.Code, "message", env.Response.Message)
		return zero, err
	}

	var result T
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return result, nil
	}
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return zero, &TransportError{Path: path, Err: fmt.Errorf("failed to decode result: %w", err)}
	}
	return result, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

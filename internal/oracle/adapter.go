package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/jobdocs/internal/prompts"
	"github.com/jonathan/jobdocs/internal/registry"
	"github.com/jonathan/jobdocs/internal/types"
)

// ErrUnavailable is wrapped by every adapter failure: missing credentials,
// timeout, transport errors, malformed responses, and category ids outside
// the registry. Callers check it with errors.Is and fall back to the keyword
// classifier.
var ErrUnavailable = errors.New("classification oracle unavailable")

// defaultTimeout bounds the oracle call when the configuration does not.
const defaultTimeout = 30 * time.Second

// Config holds everything the adapter needs at construction time. Nothing is
// read from the environment at call time, so misconfiguration is testable
// without environment manipulation.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Adapter wraps one network call per classification attempt. It performs no
// retries; retry policy belongs to the transport, not here.
type Adapter struct {
	client  Client
	reg     *registry.Registry
	timeout time.Duration
	logger  *zap.Logger
}

// classificationResponse is the wire shape of the oracle's reply.
type classificationResponse struct {
	CategoryID   string   `json:"category_id"`
	Confidence   float64  `json:"confidence"`
	Technologies []string `json:"technologies"`
	Reasoning    string   `json:"reasoning"`
}

// NewAdapter creates an adapter from configuration. A missing API key does
// not fail construction: the adapter is created unconfigured and reports
// ErrUnavailable on every Classify call, which keeps the fallback path alive
// and testable.
func NewAdapter(ctx context.Context, cfg Config, reg *registry.Registry, logger *zap.Logger) (*Adapter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	a := &Adapter{reg: reg, timeout: timeout, logger: logger}

	if cfg.APIKey == "" {
		logger.Info("oracle adapter created without credentials; every call will fall back")
		return a, nil
	}

	client, err := NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create oracle client: %w", err)
	}
	a.client = client

	return a, nil
}

// NewAdapterWithClient creates an adapter over an existing client. Used by
// tests to substitute a fake.
func NewAdapterWithClient(client Client, reg *registry.Registry, timeout time.Duration, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Adapter{client: client, reg: reg, timeout: timeout, logger: logger}
}

// Classify sends the job text to the oracle and returns a validated
// classification, or an error wrapping ErrUnavailable.
func (a *Adapter) Classify(ctx context.Context, text string) (*types.ClassificationResult, error) {
	if a.client == nil {
		return nil, fmt.Errorf("%w: no credentials configured", ErrUnavailable)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty job text", ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := buildClassificationPrompt(text, a.reg.IDs())

	raw, err := a.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := a.parseResponse(raw)
	if err != nil {
		return nil, err
	}

	result := types.ClassificationResult{
		CategoryID:      resp.CategoryID,
		Confidence:      resp.Confidence,
		KeyTechnologies: resp.Technologies,
		Reasoning:       resp.Reasoning,
		Source:          types.SourceAI,
	}
	return &result, nil
}

// Close releases the underlying client, if any.
func (a *Adapter) Close() error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}

// parseResponse validates the raw response against the schema, decodes it,
// and rejects category ids the registry does not know.
func (a *Adapter) parseResponse(raw string) (*classificationResponse, error) {
	if err := validateResponseShape(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var resp classificationResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}

	if !a.reg.Contains(resp.CategoryID) {
		return nil, fmt.Errorf("%w: oracle returned unknown category %q", ErrUnavailable, resp.CategoryID)
	}

	if resp.Technologies == nil {
		resp.Technologies = []string{}
	}

	return &resp, nil
}

// buildClassificationPrompt constructs the fixed classification prompt from
// the embedded template.
func buildClassificationPrompt(jobText string, categoryIDs []string) string {
	template := prompts.MustGet("classify-role")
	return prompts.Format(template, map[string]string{
		"JobText":     jobText,
		"CategoryIDs": strings.Join(categoryIDs, ", "),
	})
}

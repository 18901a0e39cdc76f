package genai

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/slidecoach/api/internal/metrics"
	"go.uber.org/zap"
)

// ErrAllModelsUnavailable is returned when every configured model has been
// tried and none produced usable text.
var ErrAllModelsUnavailable = errors.New("all providers unavailable")

// Options controls sampling for a single generation.
type Options struct {
	Temperature     float64
	MaxOutputTokens int
}

// Attempt outcomes, used for logging and metrics labels.
const (
	outcomeSuccess    = "success"
	outcomeTransport  = "transport_error"
	outcomeQuota      = "quota_or_permission"
	outcomeHTTPError  = "http_error"
	outcomeBadPayload = "bad_payload"
	outcomeEmpty      = "empty_text"
)

// attemptError carries the outcome classification for one model attempt.
type attemptError struct {
	kind string
	err  error
}

func (e *attemptError) Error() string { return e.err.Error() }
func (e *attemptError) Unwrap() error { return e.err }

// Client calls the generative-language API through an ordered list of
// candidate models, falling back to the next model on any soft failure.
// The model list is read-only after construction; order is the sole
// priority policy.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	models     []string
	logger     *zap.Logger
}

// NewClient creates a fallback client over the given ordered model list.
func NewClient(baseURL, apiKey string, models []string, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		models:     models,
		logger:     logger,
	}
}

// Models returns the configured fallback chain in priority order.
func (c *Client) Models() []string {
	return append([]string(nil), c.models...)
}

// Generate tries each configured model in order and returns the first
// non-empty trimmed text. One outbound call per model, no retries, no
// backoff. When every model soft-fails it returns ErrAllModelsUnavailable.
func (c *Client) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	for _, model := range c.models {
		start := time.Now()
		text, err := c.generate(ctx, model, prompt, opts)
		elapsed := time.Since(start)

		if err != nil {
			kind := outcomeHTTPError
			var ae *attemptError
			if errors.As(err, &ae) {
				kind = ae.kind
			}
			metrics.GenerateAttempts.WithLabelValues(model, kind).Inc()
			metrics.GenerateDuration.WithLabelValues(model).Observe(elapsed.Seconds())
			c.logger.Warn("model attempt failed, falling back",
				zap.String("model", model),
				zap.String("outcome", kind),
				zap.Duration("latency", elapsed),
				zap.Error(err),
			)
			continue
		}

		metrics.GenerateAttempts.WithLabelValues(model, outcomeSuccess).Inc()
		metrics.GenerateDuration.WithLabelValues(model).Observe(elapsed.Seconds())
		c.logger.Info("generation succeeded",
			zap.String("model", model),
			zap.Duration("latency", elapsed),
		)
		return text, nil
	}

	c.logger.Error("all models exhausted", zap.Int("models_tried", len(c.models)))
	return "", ErrAllModelsUnavailable
}

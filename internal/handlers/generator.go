package handlers

import (
	"context"

	"github.com/slidecoach/api/internal/genai"
)

// Generator is the model-fallback surface the endpoint handlers need.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts genai.Options) (string, error)
}

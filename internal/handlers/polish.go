package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/slidecoach/api/internal/genai"
	"github.com/slidecoach/api/internal/middleware"
	"go.uber.org/zap"
)

const polishDefaultTemperature = 0.7

// PolishHandler rewrites a sentence into a spoken-friendly register.
// This endpoint must never degrade the caller's experience: if generation
// is unavailable the original sentence is returned unchanged.
type PolishHandler struct {
	gen    Generator
	logger *zap.Logger
}

// NewPolishHandler creates a new polish handler
func NewPolishHandler(gen Generator, logger *zap.Logger) *PolishHandler {
	return &PolishHandler{gen: gen, logger: logger}
}

// PolishRequest is the request body for the polish endpoint
type PolishRequest struct {
	Sentence    string   `json:"sentence"`
	SlideTitle  string   `json:"slideTitle"`
	Temperature *float64 `json:"temperature"`
}

// Polish rewrites the sentence, keeping only the first line of whatever
// the model returns.
func (h *PolishHandler) Polish(c *gin.Context) {
	var req PolishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(c, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Sentence) == "" {
		middleware.BadRequest(c, "sentence is required")
		return
	}

	temperature := polishDefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	raw, err := h.gen.Generate(c.Request.Context(), polishPrompt(req.Sentence, req.SlideTitle), genai.Options{
		Temperature:     temperature,
		MaxOutputTokens: 120,
	})
	if err != nil {
		// Masked on purpose: the caller gets their sentence back untouched.
		h.logger.Warn("polish generation failed, returning original", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"polished": req.Sentence})
		return
	}

	polished := firstLine(raw)
	if polished == "" {
		polished = req.Sentence
	}

	c.JSON(http.StatusOK, gin.H{"polished": polished})
}

// firstLine returns the trimmed first line of s.
func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(line)
}

package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/slidecoach/api/internal/genai"
	"github.com/slidecoach/api/internal/metrics"
	"github.com/slidecoach/api/internal/middleware"
	"go.uber.org/zap"
)

const (
	descriptionMaxWords = 20
	keyPointCount       = 4
	keyPointMaxWords    = 8
)

// SummaryCache is the optional best-effort response cache.
type SummaryCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// SummaryHandler generates a one-line description and four key points
// for a slide. Generated output is never trusted to follow the length
// rules in the prompt; the handler re-enforces them itself.
type SummaryHandler struct {
	gen    Generator
	cache  SummaryCache // may be nil
	logger *zap.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(gen Generator, cache SummaryCache, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{gen: gen, cache: cache, logger: logger}
}

// SummaryRequest is the request body for the summary endpoint
type SummaryRequest struct {
	SlideTitle       string   `json:"slideTitle"`
	SlideDescription string   `json:"slideDescription"`
	SlideKeyPoints   []string `json:"slideKeyPoints"`
}

// SummaryResponse is the constrained output shape
type SummaryResponse struct {
	Description string   `json:"description"`
	KeyPoints   []string `json:"keyPoints"`
}

// Summarize generates the slide summary, extracting and validating the
// JSON object the model was asked for.
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(c, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.SlideTitle) == "" {
		middleware.BadRequest(c, "slideTitle is required")
		return
	}

	cacheKey := summaryCacheKey(&req)
	if h.cache != nil {
		if cached, ok := h.cache.Get(c.Request.Context(), cacheKey); ok {
			metrics.CacheHits.WithLabelValues("hit").Inc()
			var resp SummaryResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
		metrics.CacheHits.WithLabelValues("miss").Inc()
	}

	prompt := summaryPrompt(req.SlideTitle, req.SlideDescription, req.SlideKeyPoints)
	raw, err := h.gen.Generate(c.Request.Context(), prompt, genai.Options{
		Temperature:     0.4,
		MaxOutputTokens: 400,
	})
	if err != nil {
		h.logger.Error("summary generation failed", zap.Error(err))
		middleware.ServiceUnavailable(c, err.Error())
		return
	}

	resp, ok := parseSummary(raw)
	if !ok {
		h.logger.Error("summary output malformed", zap.String("raw", raw))
		middleware.ServiceUnavailable(c, "generated summary was malformed")
		return
	}

	if h.cache != nil {
		if encoded, err := json.Marshal(resp); err == nil {
			h.cache.Set(c.Request.Context(), cacheKey, string(encoded))
		}
	}

	c.JSON(http.StatusOK, resp)
}

// parseSummary extracts the JSON object from raw model output, validates
// its shape, and re-enforces the word and sentence caps. Generators that
// return fewer than four key points fail validation; the response
// contract promises exactly four.
func parseSummary(raw string) (SummaryResponse, bool) {
	obj, ok := extractJSONObject(raw)
	if !ok {
		return SummaryResponse{}, false
	}

	var parsed SummaryResponse
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return SummaryResponse{}, false
	}
	if strings.TrimSpace(parsed.Description) == "" || len(parsed.KeyPoints) < keyPointCount {
		return SummaryResponse{}, false
	}

	resp := SummaryResponse{
		Description: firstSentence(parsed.Description),
		KeyPoints:   make([]string, 0, keyPointCount),
	}
	for _, kp := range parsed.KeyPoints[:keyPointCount] {
		resp.KeyPoints = append(resp.KeyPoints, truncateWords(kp, keyPointMaxWords))
	}
	return resp, true
}

// extractJSONObject returns the first balanced brace-delimited substring,
// tolerating commentary the model may add around it. Braces inside JSON
// strings are not counted.
func extractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// firstSentence truncates to the first sentence terminator and appends
// a period.
func firstSentence(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".!?"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s) + "."
}

// truncateWords caps s at n words and strips trailing punctuation.
func truncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.TrimRight(strings.Join(words, " "), ".,;:!?")
}

func summaryCacheKey(req *SummaryRequest) string {
	h := sha256.New()
	h.Write([]byte(req.SlideTitle))
	h.Write([]byte{0})
	h.Write([]byte(req.SlideDescription))
	for _, p := range req.SlideKeyPoints {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return "summary:" + hex.EncodeToString(h.Sum(nil))
}

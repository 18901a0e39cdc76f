package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/slidecoach/api/internal/genai"
	"github.com/slidecoach/api/internal/middleware"
	"go.uber.org/zap"
)

// ChatHandler answers audience questions about the current slide.
type ChatHandler struct {
	gen    Generator
	logger *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(gen Generator, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{gen: gen, logger: logger}
}

// ChatRequest is the request body for the chat endpoint
type ChatRequest struct {
	Question   string `json:"question"`
	SlideTitle string `json:"slideTitle"`
}

// Chat builds a persona-constrained prompt and returns the raw reply.
// Kept deliberately terse: low temperature, small token ceiling.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(c, "invalid JSON body")
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		middleware.BadRequest(c, "question is required")
		return
	}

	slideTitle := strings.TrimSpace(req.SlideTitle)
	if slideTitle == "" {
		slideTitle = defaultSlideTopic
	}

	reply, err := h.gen.Generate(c.Request.Context(), chatPrompt(question, slideTitle), genai.Options{
		Temperature:     0.2,
		MaxOutputTokens: 160,
	})
	if err != nil {
		h.logger.Error("chat generation failed", zap.Error(err))
		middleware.ServiceUnavailable(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": strings.TrimSpace(reply)})
}

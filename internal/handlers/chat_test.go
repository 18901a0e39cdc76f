package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/slidecoach/api/internal/genai"
)

func TestChatEmptyQuestionRejected(t *testing.T) {
	tests := []struct {
		name     string
		question string
	}{
		{"missing", ""},
		{"whitespace only", "   \t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{text: "should not be called"}
			h := NewChatHandler(gen, testLogger())

			w := postJSON(t, h.Chat, "/api/v1/chat", ChatRequest{Question: tt.question})

			if w.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want %d", w.Code, http.StatusBadRequest)
			}
			if gen.calls != 0 {
				t.Errorf("outbound calls: got %d, want 0", gen.calls)
			}
			if _, ok := decodeBody(t, w)["error"]; !ok {
				t.Error("response missing error field")
			}
		})
	}
}

func TestChatSuccess(t *testing.T) {
	gen := &stubGenerator{text: "  A short polite answer.  "}
	h := NewChatHandler(gen, testLogger())

	w := postJSON(t, h.Chat, "/api/v1/chat", ChatRequest{
		Question:   "What is photosynthesis?",
		SlideTitle: "Plant Biology",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusOK)
	}
	body := decodeBody(t, w)
	if body["reply"] != "A short polite answer." {
		t.Errorf("reply: got %q", body["reply"])
	}
	if gen.calls != 1 {
		t.Errorf("calls: got %d, want 1", gen.calls)
	}
	if !strings.Contains(gen.prompts[0], "What is photosynthesis?") {
		t.Error("prompt missing question")
	}
	if !strings.Contains(gen.prompts[0], "Plant Biology") {
		t.Error("prompt missing slide title")
	}
	if gen.opts[0].Temperature != 0.2 {
		t.Errorf("temperature: got %v, want 0.2", gen.opts[0].Temperature)
	}
	if gen.opts[0].MaxOutputTokens != 160 {
		t.Errorf("maxOutputTokens: got %d, want 160", gen.opts[0].MaxOutputTokens)
	}
}

func TestChatDefaultSlideTopic(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	h := NewChatHandler(gen, testLogger())

	postJSON(t, h.Chat, "/api/v1/chat", ChatRequest{Question: "Why?"})

	if !strings.Contains(gen.prompts[0], defaultSlideTopic) {
		t.Errorf("prompt should fall back to the placeholder topic, got %q", gen.prompts[0])
	}
}

func TestChatExhaustionSurfaces503(t *testing.T) {
	gen := &stubGenerator{err: genai.ErrAllModelsUnavailable}
	h := NewChatHandler(gen, testLogger())

	w := postJSON(t, h.Chat, "/api/v1/chat", ChatRequest{Question: "Why?"})

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
	body := decodeBody(t, w)
	if body["error"] != genai.ErrAllModelsUnavailable.Error() {
		t.Errorf("error: got %q, want %q", body["error"], genai.ErrAllModelsUnavailable.Error())
	}
}

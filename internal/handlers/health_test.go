package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func getPath(t *testing.T, handler gin.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.GET(path, handler)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	h := NewHealthHandler(nil, []string{"model-a"}, true)

	w := getPath(t, h.Health, "/health")

	if w.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusOK)
	}
	body := decodeBody(t, w)
	if body["status"] != "healthy" {
		t.Errorf("status field: got %q", body["status"])
	}
}

func TestDeepHealthMissingCredential(t *testing.T) {
	h := NewHealthHandler(nil, []string{"model-a", "model-b"}, false)

	w := getPath(t, h.DeepHealth, "/health/deep")

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusServiceUnavailable)
	}

	var body struct {
		Status       string            `json:"status"`
		Models       []string          `json:"models"`
		Dependencies map[string]string `json:"dependencies"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "degraded" {
		t.Errorf("status: got %q", body.Status)
	}
	if body.Dependencies["generative_api"] != "missing credential" {
		t.Errorf("generative_api: got %q", body.Dependencies["generative_api"])
	}
	if body.Dependencies["redis"] != "not configured" {
		t.Errorf("redis: got %q", body.Dependencies["redis"])
	}
	if len(body.Models) != 2 {
		t.Errorf("models: got %v", body.Models)
	}
}

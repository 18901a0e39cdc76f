package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Wire types for the generative-language generateContent endpoint.

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

// apiError is the error envelope the API embeds in response bodies,
// sometimes even under a 200 status.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *apiError) quotaOrPermission() bool {
	switch e.Status {
	case "RESOURCE_EXHAUSTED", "PERMISSION_DENIED":
		return true
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "quota") || strings.Contains(msg, "permission")
}

// generate issues exactly one outbound request to a single model and returns
// the extracted text. Every error it returns is a soft failure from the
// fallback loop's point of view.
func (c *Client) generate(ctx context.Context, model, prompt string, opts Options) (string, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxOutputTokens,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimRight(c.baseURL, "/") + "/v1beta/models/" + model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &attemptError{kind: outcomeTransport, err: fmt.Errorf("request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		kind := outcomeHTTPError
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden {
			kind = outcomeQuota
		}
		return "", &attemptError{kind: kind, err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", &attemptError{kind: outcomeBadPayload, err: fmt.Errorf("decode response: %w", err)}
	}

	if genResp.Error != nil {
		kind := outcomeBadPayload
		if genResp.Error.quotaOrPermission() {
			kind = outcomeQuota
		}
		return "", &attemptError{kind: kind, err: fmt.Errorf("API error: %s", genResp.Error.Message)}
	}

	text := extractText(&genResp)
	if text == "" {
		return "", &attemptError{kind: outcomeEmpty, err: fmt.Errorf("empty response text")}
	}
	return text, nil
}

// extractText pulls the first candidate's first non-empty text part.
func extractText(resp *generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	for _, p := range resp.Candidates[0].Content.Parts {
		if t := strings.TrimSpace(p.Text); t != "" {
			return t
		}
	}
	return ""
}

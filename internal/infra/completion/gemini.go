// Package completion implements the remote text-completion collaborator.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"herbwise/config"
	"herbwise/internal/domain/service"
)

const systemPreamble = `You are a knowledgeable medicinal plants expert and wellness assistant. Your responses should be:
- Accurate and evidence-based
- Focused on medicinal plants and natural remedies
- Include safety warnings when appropriate
- Mention consulting healthcare providers for serious conditions
- Provide affordable, accessible alternatives when possible`

// GeminiClient calls a Gemini-style generateContent endpoint.
type GeminiClient struct {
	cfg    config.AssistantConfig
	client *http.Client
}

// NewGeminiClient creates the production completion client.
func NewGeminiClient(cfg *config.Config) service.CompletionService {
	return &GeminiClient{
		cfg: cfg.Assistant,
		client: &http.Client{
			Timeout: cfg.Assistant.RequestTimeout,
		},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Complete sends the prompt to the remote endpoint and returns the generated
// text. Failures map onto the service sentinel errors so the caller can
// apply its retry and fallback policy; HTTP 429 is split into transient rate
// limiting and hard quota exhaustion.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Contents: []content{{
			Parts: []part{{
				Text: systemPreamble + "\n\nUser question: " + prompt,
			}},
		}},
		GenerationConfig: generationConfig{
			Temperature:     c.cfg.Temperature,
			TopK:            c.cfg.TopK,
			TopP:            c.cfg.TopP,
			MaxOutputTokens: c.cfg.MaxOutputTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.Endpoint, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", service.ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", service.ErrNetwork, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", classifyTooManyRequests(raw)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: http status %d", service.ErrUnavailable, resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("%w: %v", service.ErrMalformedResponse, err)
	}

	if decoded.Error != nil {
		return "", fmt.Errorf("%w: %s", service.ErrUnavailable, decoded.Error.Message)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", service.ErrMalformedResponse)
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// classifyTooManyRequests distinguishes hard quota exhaustion from transient
// rate limiting by inspecting the error body.
func classifyTooManyRequests(raw []byte) error {
	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err == nil && decoded.Error != nil {
		if strings.Contains(strings.ToLower(decoded.Error.Message), "quota") {
			return fmt.Errorf("%w: %s", service.ErrQuotaExceeded, decoded.Error.Message)
		}
	}

	return service.ErrRateLimited
}

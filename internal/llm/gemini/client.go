package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"superclaims/internal/config"
)

const (
	apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	// extractionPrompt asks the model for a full text dump of the document.
	extractionPrompt = "Extract ALL text content from this document. Include names, dates, amounts, diagnoses, etc."

	// ExtractionPlaceholder is returned when a PDF yields no text at all.
	ExtractionPlaceholder = "[PDF content could not be extracted]"
)

// Client implements port.LLMClient against Google's Gemini API.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates a Gemini-backed LLM client.
func NewClient(cfg *config.GeminiConfig) *Client {
	return newClient(cfg, "")
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.GeminiConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.GeminiConfig, endpoint string) *Client {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Client{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Complete returns a free-text completion for the prompt.
func (c *Client) Complete(ctx context.Context, prompt, systemPrompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{"text": joinPrompts(systemPrompt, prompt)},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.3,
		},
	}
	return c.generate(ctx, reqBody)
}

// CompleteStructured returns JSON conforming to the given response schema.
func (c *Client) CompleteStructured(ctx context.Context, prompt, systemPrompt string, schema json.RawMessage) (json.RawMessage, error) {
	full := joinPrompts(systemPrompt, prompt) + "\n\nIMPORTANT: Return ONLY valid JSON. No markdown."
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{"text": full},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":      0.0,
			"responseMimeType": "application/json",
			"responseSchema":   schema,
		},
	}

	text, err := c.generate(ctx, reqBody)
	if err != nil {
		return nil, err
	}
	if !json.Valid([]byte(text)) {
		return nil, fmt.Errorf("invalid JSON from model: %s", truncate(text, 500))
	}
	return json.RawMessage(text), nil
}

// ExtractText extracts plain text from the PDF at pdfPath.
func (c *Client) ExtractText(ctx context.Context, pdfPath string) (string, error) {
	if strings.ToLower(filepath.Ext(pdfPath)) != ".pdf" {
		return "", fmt.Errorf("not a PDF file: %s", pdfPath)
	}
	pdfData, err := os.ReadFile(pdfPath)
	if err != nil {
		return "", fmt.Errorf("reading PDF %s: %w", pdfPath, err)
	}

	encoded := base64.StdEncoding.EncodeToString(pdfData)
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{
						"inline_data": map[string]interface{}{
							"mime_type": "application/pdf",
							"data":      encoded,
						},
					},
					{"text": extractionPrompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.0,
		},
	}

	text, err := c.generate(ctx, reqBody)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return ExtractionPlaceholder, nil
	}
	return text, nil
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, reqBody map[string]interface{}) (string, error) {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("empty response from API: no candidates")
	}
	if len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from API: no parts")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func joinPrompts(systemPrompt, prompt string) string {
	if systemPrompt == "" {
		return prompt
	}
	return systemPrompt + "\n\n" + prompt
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

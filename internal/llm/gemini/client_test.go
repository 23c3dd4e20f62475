package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superclaims/internal/config"
	"superclaims/internal/llm/gemini"
)

func testConfig() *config.GeminiConfig {
	return &config.GeminiConfig{APIKey: "test-key", Model: "gemini-2.0-flash", TimeoutSecs: 5}
}

func candidateResponse(text string) string {
	resp := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestComplete_Success(t *testing.T) {
	var gotKey string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(candidateResponse("a completion")))
	}))
	defer srv.Close()

	client := gemini.NewClientWithEndpoint(testConfig(), srv.URL)
	text, err := client.Complete(context.Background(), "classify this", "you are a classifier")

	require.NoError(t, err)
	assert.Equal(t, "a completion", text)
	assert.Equal(t, "test-key", gotKey)

	genCfg := gotBody["generationConfig"].(map[string]interface{})
	assert.Equal(t, 0.3, genCfg["temperature"])
}

func TestCompleteStructured_Success(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(candidateResponse(`{"type": "bill", "total_amount": 100}`)))
	}))
	defer srv.Close()

	client := gemini.NewClientWithEndpoint(testConfig(), srv.URL)
	schema := json.RawMessage(`{"type": "object"}`)
	raw, err := client.CompleteStructured(context.Background(), "extract", "system", schema)

	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "bill", "total_amount": 100}`, string(raw))

	genCfg := gotBody["generationConfig"].(map[string]interface{})
	assert.Equal(t, 0.0, genCfg["temperature"])
	assert.Equal(t, "application/json", genCfg["responseMimeType"])
	assert.NotNil(t, genCfg["responseSchema"])
}

func TestCompleteStructured_InvalidJSONFromModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(candidateResponse("this is not JSON")))
	}))
	defer srv.Close()

	client := gemini.NewClientWithEndpoint(testConfig(), srv.URL)
	_, err := client.CompleteStructured(context.Background(), "extract", "system", json.RawMessage(`{}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestGenerate_APIErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "boom"}`))
	}))
	defer srv.Close()

	client := gemini.NewClientWithEndpoint(testConfig(), srv.URL)
	_, err := client.Complete(context.Background(), "prompt", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGenerate_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	client := gemini.NewClientWithEndpoint(testConfig(), srv.URL)
	_, err := client.Complete(context.Background(), "prompt", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestExtractText_Success(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(candidateResponse("Patient: Ravi Kumar\nAmount: 45000")))
	}))
	defer srv.Close()

	pdfPath := filepath.Join(t.TempDir(), "bill.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4 fake"), 0o644))

	client := gemini.NewClientWithEndpoint(testConfig(), srv.URL)
	text, err := client.ExtractText(context.Background(), pdfPath)

	require.NoError(t, err)
	assert.Equal(t, "Patient: Ravi Kumar\nAmount: 45000", text)

	contents := gotBody["contents"].([]interface{})
	parts := contents[0].(map[string]interface{})["parts"].([]interface{})
	inline := parts[0].(map[string]interface{})["inline_data"].(map[string]interface{})
	assert.Equal(t, "application/pdf", inline["mime_type"])
	assert.NotEmpty(t, inline["data"])
}

func TestExtractText_EmptyModelOutputGetsPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(candidateResponse("   \n")))
	}))
	defer srv.Close()

	pdfPath := filepath.Join(t.TempDir(), "scan.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4"), 0o644))

	client := gemini.NewClientWithEndpoint(testConfig(), srv.URL)
	text, err := client.ExtractText(context.Background(), pdfPath)

	require.NoError(t, err)
	assert.Equal(t, gemini.ExtractionPlaceholder, text)
}

func TestExtractText_RejectsNonPDF(t *testing.T) {
	client := gemini.NewClientWithEndpoint(testConfig(), "http://unused.invalid")
	_, err := client.ExtractText(context.Background(), "notes.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a PDF")
}

// Package extractor turns raw document text into typed claim documents via
// schema-constrained LLM calls. Extraction failure is absorbed, never fatal:
// each extractor substitutes a fixed sentinel record so downstream validation
// can flag the document instead of the whole claim aborting.
package extractor

import (
	"context"

	"superclaims/internal/domain"
)

// maxTextChars caps how much document text is sent to the model.
const maxTextChars = 3000

// DocumentExtractor extracts one document type from raw text.
type DocumentExtractor interface {
	Extract(ctx context.Context, text, filename string) domain.Document
}

func clipText(text string) string {
	if len(text) <= maxTextChars {
		return text
	}
	return text[:maxTextChars]
}

func buildPrompt(kind, text string) string {
	return "Extract data from this " + kind + ":\n\n" + clipText(text) + "\n\nReturn valid JSON only."
}

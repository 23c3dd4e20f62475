package port

import (
	"context"
	"encoding/json"
)

// CompletionClient abstracts free-text LLM completion. Used only by the
// classifier's fallback path.
type CompletionClient interface {
	Complete(ctx context.Context, prompt, systemPrompt string) (string, error)
}

// StructuredClient abstracts schema-constrained LLM extraction: the returned
// JSON conforms to the given response schema.
type StructuredClient interface {
	CompleteStructured(ctx context.Context, prompt, systemPrompt string, schema json.RawMessage) (json.RawMessage, error)
}

// TextExtractor abstracts plain-text extraction from a PDF on disk. It fails
// if the path does not exist or is not a PDF; an unreadable but valid PDF
// yields a placeholder string rather than an error.
type TextExtractor interface {
	ExtractText(ctx context.Context, pdfPath string) (string, error)
}

// LLMClient is the full contract of the external model provider.
type LLMClient interface {
	CompletionClient
	StructuredClient
	TextExtractor
}

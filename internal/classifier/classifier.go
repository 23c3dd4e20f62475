package classifier

import (
	"context"
	"log"
	"strings"

	"superclaims/internal/domain"
	"superclaims/internal/port"
)

const systemPrompt = `You are a document classification expert for medical insurance claims.
Given a filename, classify it into ONE of these types:
- bill: Medical bills, invoices, payment receipts
- discharge_summary: Hospital discharge summaries, medical reports
- id_card: Insurance ID cards, policy documents

Respond ONLY with: bill, discharge_summary, or id_card`

// Keyword sets checked in priority order; the first matching set wins.
var keywordSets = []struct {
	docType  domain.DocumentType
	keywords []string
}{
	{domain.DocumentTypeBill, []string{"bill", "invoice", "payment", "receipt"}},
	{domain.DocumentTypeDischargeSummary, []string{"discharge", "summary", "report"}},
	{domain.DocumentTypeIDCard, []string{"id", "card", "policy", "insurance"}},
}

// Classifier maps filenames to document types, falling back to an LLM
// completion when no keyword matches. It never fails: any unexpected model
// answer or call error defaults to "bill".
type Classifier struct {
	llm port.CompletionClient
}

// New creates a Classifier backed by the given completion client.
func New(llm port.CompletionClient) *Classifier {
	return &Classifier{llm: llm}
}

// Classify returns the document type for a filename.
func (c *Classifier) Classify(ctx context.Context, filename string) domain.DocumentType {
	lower := strings.ToLower(filename)

	for _, set := range keywordSets {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				log.Printf("classifier: %q -> %s (filename-based)", filename, set.docType)
				return set.docType
			}
		}
	}

	answer, err := c.llm.Complete(ctx, "Classify this document: "+filename, systemPrompt)
	if err != nil {
		log.Printf("classifier: LLM classification of %q failed, defaulting to bill: %v", filename, err)
		return domain.DocumentTypeBill
	}

	docType := domain.DocumentType(strings.ToLower(strings.TrimSpace(answer)))
	switch docType {
	case domain.DocumentTypeBill, domain.DocumentTypeDischargeSummary, domain.DocumentTypeIDCard:
		log.Printf("classifier: %q -> %s (LLM-based)", filename, docType)
		return docType
	default:
		log.Printf("classifier: invalid LLM answer %q for %q, defaulting to bill", answer, filename)
		return domain.DocumentTypeBill
	}
}

package extractor

import (
	"context"
	"encoding/json"
	"log"

	"superclaims/internal/domain"
	"superclaims/internal/port"
)

const idCardSystemPrompt = `You are an expert at extracting information from insurance ID cards.
Extract and return ONLY valid JSON (no markdown):
{
    "type": "id_card",
    "patient_name": "full patient name",
    "policy_number": "policy number",
    "member_id": "member/subscriber ID",
    "insurance_provider": "insurance company name or null"
}`

const idCardSchema = `{
  "type": "object",
  "properties": {
    "type": {"type": "string", "enum": ["id_card"]},
    "patient_name": {"type": "string"},
    "policy_number": {"type": "string"},
    "member_id": {"type": "string"},
    "insurance_provider": {"type": "string", "nullable": true}
  },
  "required": ["type", "patient_name", "policy_number", "member_id"]
}`

// IDCardExtractor extracts structured data from insurance ID card text.
type IDCardExtractor struct {
	llm port.StructuredClient
}

// NewIDCardExtractor creates an IDCardExtractor.
func NewIDCardExtractor(llm port.StructuredClient) *IDCardExtractor {
	return &IDCardExtractor{llm: llm}
}

// Extract returns the ID card document for the given text, or the sentinel
// record if the model call or its output cannot be used.
func (e *IDCardExtractor) Extract(ctx context.Context, text, filename string) domain.Document {
	raw, err := e.llm.CompleteStructured(ctx, buildPrompt("insurance ID card", text), idCardSystemPrompt, json.RawMessage(idCardSchema))
	if err == nil {
		var doc domain.IDCardDocument
		if err = json.Unmarshal(raw, &doc); err == nil {
			doc.Type = domain.DocumentTypeIDCard
			log.Printf("extractor.IDCard: extracted ID card data from %s", filename)
			return doc
		}
	}

	log.Printf("extractor.IDCard: extraction failed for %s, using sentinel record: %v", filename, err)
	return domain.IDCardDocument{
		Type:         domain.DocumentTypeIDCard,
		PatientName:  "Unknown",
		PolicyNumber: domain.UnknownValue,
		MemberID:     domain.UnknownValue,
	}
}

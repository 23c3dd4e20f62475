package extractor

import (
	"context"
	"encoding/json"
	"log"

	"superclaims/internal/domain"
	"superclaims/internal/port"
)

const billSystemPrompt = `You are an expert at extracting information from medical bills.
Extract and return ONLY valid JSON (no markdown):
{
    "type": "bill",
    "hospital_name": "hospital name",
    "total_amount": numeric_amount,
    "date_of_service": "YYYY-MM-DD",
    "patient_name": "patient name or null",
    "bill_items": ["item1", "item2"] or null
}`

const billSchema = `{
  "type": "object",
  "properties": {
    "type": {"type": "string", "enum": ["bill"]},
    "hospital_name": {"type": "string"},
    "total_amount": {"type": "number"},
    "date_of_service": {"type": "string"},
    "patient_name": {"type": "string", "nullable": true},
    "bill_items": {"type": "array", "items": {"type": "string"}, "nullable": true}
  },
  "required": ["type", "hospital_name", "total_amount", "date_of_service"]
}`

// BillExtractor extracts structured data from medical bill text.
type BillExtractor struct {
	llm port.StructuredClient
}

// NewBillExtractor creates a BillExtractor.
func NewBillExtractor(llm port.StructuredClient) *BillExtractor {
	return &BillExtractor{llm: llm}
}

// Extract returns the bill document for the given text, or the sentinel
// record if the model call or its output cannot be used.
func (e *BillExtractor) Extract(ctx context.Context, text, filename string) domain.Document {
	raw, err := e.llm.CompleteStructured(ctx, buildPrompt("medical bill", text), billSystemPrompt, json.RawMessage(billSchema))
	if err == nil {
		var doc domain.BillDocument
		if err = json.Unmarshal(raw, &doc); err == nil {
			doc.Type = domain.DocumentTypeBill
			log.Printf("extractor.Bill: extracted bill data from %s", filename)
			return doc
		}
	}

	log.Printf("extractor.Bill: extraction failed for %s, using sentinel record: %v", filename, err)
	return domain.BillDocument{
		Type:          domain.DocumentTypeBill,
		HospitalName:  "Unknown Hospital",
		TotalAmount:   0.0,
		DateOfService: "2024-01-01",
	}
}

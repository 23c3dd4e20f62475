package extractor

import (
	"context"
	"encoding/json"
	"log"

	"superclaims/internal/domain"
	"superclaims/internal/port"
)

const dischargeSystemPrompt = `You are an expert at extracting information from hospital discharge summaries.
Extract and return ONLY valid JSON (no markdown):
{
    "type": "discharge_summary",
    "patient_name": "full patient name",
    "diagnosis": "primary diagnosis",
    "admission_date": "YYYY-MM-DD",
    "discharge_date": "YYYY-MM-DD",
    "treating_doctor": "doctor name or null",
    "procedures": ["procedure1", "procedure2"] or null
}`

const dischargeSchema = `{
  "type": "object",
  "properties": {
    "type": {"type": "string", "enum": ["discharge_summary"]},
    "patient_name": {"type": "string"},
    "diagnosis": {"type": "string"},
    "admission_date": {"type": "string"},
    "discharge_date": {"type": "string"},
    "treating_doctor": {"type": "string", "nullable": true},
    "procedures": {"type": "array", "items": {"type": "string"}, "nullable": true}
  },
  "required": ["type", "patient_name", "diagnosis", "admission_date", "discharge_date"]
}`

// DischargeExtractor extracts structured data from discharge summary text.
type DischargeExtractor struct {
	llm port.StructuredClient
}

// NewDischargeExtractor creates a DischargeExtractor.
func NewDischargeExtractor(llm port.StructuredClient) *DischargeExtractor {
	return &DischargeExtractor{llm: llm}
}

// Extract returns the discharge summary document for the given text, or the
// sentinel record if the model call or its output cannot be used.
func (e *DischargeExtractor) Extract(ctx context.Context, text, filename string) domain.Document {
	raw, err := e.llm.CompleteStructured(ctx, buildPrompt("discharge summary", text), dischargeSystemPrompt, json.RawMessage(dischargeSchema))
	if err == nil {
		var doc domain.DischargeSummaryDocument
		if err = json.Unmarshal(raw, &doc); err == nil {
			doc.Type = domain.DocumentTypeDischargeSummary
			log.Printf("extractor.Discharge: extracted discharge data from %s", filename)
			return doc
		}
	}

	log.Printf("extractor.Discharge: extraction failed for %s, using sentinel record: %v", filename, err)
	return domain.DischargeSummaryDocument{
		Type:          domain.DocumentTypeDischargeSummary,
		PatientName:   "Unknown Patient",
		Diagnosis:     "Unknown",
		AdmissionDate: "2024-01-01",
		DischargeDate: "2024-01-02",
	}
}

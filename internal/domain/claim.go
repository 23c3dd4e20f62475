package domain

// FileEntry identifies one staged upload handed to the orchestrator.
type FileEntry struct {
	Path     string
	Filename string
}

// ValidationResult holds the outcome of cross-document consistency checks.
// It is produced once per claim and read-only afterward.
type ValidationResult struct {
	MissingDocuments []DocumentType `json:"missing_documents"`
	Discrepancies    []string       `json:"discrepancies"`
}

// ClaimStatus is the terminal state of a processed claim.
type ClaimStatus string

const (
	ClaimStatusApproved      ClaimStatus = "approved"
	ClaimStatusRejected      ClaimStatus = "rejected"
	ClaimStatusPendingReview ClaimStatus = "pending_review"
)

// ClaimDecision is the final decision for a claim. ConfidenceScore is
// advisory only and plays no part in further logic.
type ClaimDecision struct {
	Status          ClaimStatus `json:"status"`
	Reason          string      `json:"reason"`
	ConfidenceScore float64     `json:"confidence_score"`
}

// ValidationStatusPassed and ValidationStatusIssuesFound are the values of
// the processing metadata validation flag.
const (
	ValidationStatusPassed      = "passed"
	ValidationStatusIssuesFound = "issues_found"
)

// ProcessingMetadata summarizes one orchestration run.
type ProcessingMetadata struct {
	TotalFilesProcessed int            `json:"total_files_processed"`
	DocumentTypesFound  []DocumentType `json:"document_types_found"`
	ValidationStatus    string         `json:"validation_status"`
}

// ClaimProcessingResponse is the sole externally visible artifact of one
// orchestration run. Nothing in it survives the request that produced it.
type ClaimProcessingResponse struct {
	Documents     []Document         `json:"documents"`
	Validation    ValidationResult   `json:"validation"`
	ClaimDecision ClaimDecision      `json:"claim_decision"`
	Metadata      ProcessingMetadata `json:"processing_metadata"`
}

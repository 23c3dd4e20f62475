// Package decision holds the claim decision policy: a pure, ordered decision
// table over the documents present and the validation result.
package decision

import (
	"strings"

	"superclaims/internal/domain"
)

// maxReasonDiscrepancies caps how many discrepancy strings are quoted in a
// pending-review reason.
const maxReasonDiscrepancies = 2

// Decide evaluates the decision table; the first matching rule wins.
func Decide(docs []domain.Document, validation domain.ValidationResult) domain.ClaimDecision {
	if len(validation.MissingDocuments) > 0 {
		return domain.ClaimDecision{
			Status:          domain.ClaimStatusRejected,
			Reason:          "Missing required documents: " + joinTypes(validation.MissingDocuments),
			ConfidenceScore: 1.0,
		}
	}

	if len(validation.Discrepancies) > 0 {
		quoted := validation.Discrepancies
		if len(quoted) > maxReasonDiscrepancies {
			quoted = quoted[:maxReasonDiscrepancies]
		}
		return domain.ClaimDecision{
			Status:          domain.ClaimStatusPendingReview,
			Reason:          "Data discrepancies found - manual review required: " + strings.Join(quoted, "; "),
			ConfidenceScore: 0.6,
		}
	}

	if hasAllRequiredTypes(docs) {
		return domain.ClaimDecision{
			Status:          domain.ClaimStatusApproved,
			Reason:          "All required documents present and data is consistent",
			ConfidenceScore: 0.95,
		}
	}

	// Unreachable when the validation result came from the validator (an
	// incomplete document set is caught by the first rule), but kept as a
	// defensive terminal branch.
	return domain.ClaimDecision{
		Status:          domain.ClaimStatusRejected,
		Reason:          "Incomplete documentation",
		ConfidenceScore: 0.8,
	}
}

func hasAllRequiredTypes(docs []domain.Document) bool {
	present := make(map[domain.DocumentType]bool, len(docs))
	for _, doc := range docs {
		present[doc.Kind()] = true
	}
	for _, required := range domain.RequiredDocumentTypes {
		if !present[required] {
			return false
		}
	}
	return true
}

func joinTypes(types []domain.DocumentType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

// Package validator runs the fixed battery of cross-document consistency
// checks over the extracted claim documents. Validation is a pure function of
// its input: the same document set always yields the same result, and the
// documents themselves are never mutated.
package validator

import (
	"log"
	"strings"
	"time"

	"superclaims/internal/domain"
)

const dateLayout = "2006-01-02"

// Validator checks a claim's document set for completeness and consistency.
type Validator struct{}

// New creates a Validator.
func New() *Validator {
	return &Validator{}
}

// Validate runs all checks. Completeness populates MissingDocuments; the
// remaining checks append to Discrepancies in a fixed order. No check
// short-circuits another.
func (v *Validator) Validate(docs []domain.Document) domain.ValidationResult {
	result := domain.ValidationResult{
		MissingDocuments: missingDocuments(docs),
		Discrepancies:    []string{},
	}

	result.Discrepancies = append(result.Discrepancies, checkNameConsistency(docs)...)
	result.Discrepancies = append(result.Discrepancies, checkDateOrder(docs)...)
	result.Discrepancies = append(result.Discrepancies, checkBillAmount(docs)...)
	result.Discrepancies = append(result.Discrepancies, checkIDCard(docs)...)

	log.Printf("validator: validation complete - %d missing, %d discrepancies",
		len(result.MissingDocuments), len(result.Discrepancies))
	return result
}

// missingDocuments returns the required types absent from the document set,
// in required-type declaration order.
func missingDocuments(docs []domain.Document) []domain.DocumentType {
	present := make(map[domain.DocumentType]bool, len(docs))
	for _, doc := range docs {
		present[doc.Kind()] = true
	}

	missing := []domain.DocumentType{}
	for _, required := range domain.RequiredDocumentTypes {
		if !present[required] {
			missing = append(missing, required)
		}
	}
	return missing
}

// checkNameConsistency flags the claim when more than one distinct normalized
// patient name appears across the documents that carry one.
func checkNameConsistency(docs []domain.Document) []string {
	names := make(map[string]bool)
	for _, doc := range docs {
		var name string
		switch d := doc.(type) {
		case domain.BillDocument:
			name = d.PatientName
		case domain.DischargeSummaryDocument:
			name = d.PatientName
		case domain.IDCardDocument:
			name = d.PatientName
		}
		if normalized := strings.ToLower(strings.TrimSpace(name)); normalized != "" {
			names[normalized] = true
		}
	}

	if len(names) > 1 {
		return []string{"Patient name mismatch across documents"}
	}
	return nil
}

// checkDateOrder flags a discharge summary whose discharge date precedes its
// admission date. Unparseable dates are silently skipped.
func checkDateOrder(docs []domain.Document) []string {
	discharge, ok := firstDischarge(docs)
	if !ok {
		return nil
	}

	admission, err := time.Parse(dateLayout, discharge.AdmissionDate)
	if err != nil {
		return nil
	}
	dischargeDate, err := time.Parse(dateLayout, discharge.DischargeDate)
	if err != nil {
		return nil
	}

	if dischargeDate.Before(admission) {
		return []string{"Discharge date is before admission date"}
	}
	return nil
}

// checkBillAmount flags a bill whose total amount is not positive.
func checkBillAmount(docs []domain.Document) []string {
	bill, ok := firstBill(docs)
	if !ok {
		return nil
	}
	if bill.TotalAmount <= 0 {
		return []string{"Invalid bill amount (must be positive)"}
	}
	return nil
}

// checkIDCard flags missing or sentinel policy/member identifiers. The two
// conditions are independent and can both fire.
func checkIDCard(docs []domain.Document) []string {
	card, ok := firstIDCard(docs)
	if !ok {
		return nil
	}

	var issues []string
	if card.PolicyNumber == "" || card.PolicyNumber == domain.UnknownValue {
		issues = append(issues, "Missing or invalid policy number")
	}
	if card.MemberID == "" || card.MemberID == domain.UnknownValue {
		issues = append(issues, "Missing or invalid member ID")
	}
	return issues
}

func firstBill(docs []domain.Document) (domain.BillDocument, bool) {
	for _, doc := range docs {
		if d, ok := doc.(domain.BillDocument); ok {
			return d, true
		}
	}
	return domain.BillDocument{}, false
}

func firstDischarge(docs []domain.Document) (domain.DischargeSummaryDocument, bool) {
	for _, doc := range docs {
		if d, ok := doc.(domain.DischargeSummaryDocument); ok {
			return d, true
		}
	}
	return domain.DischargeSummaryDocument{}, false
}

func firstIDCard(docs []domain.Document) (domain.IDCardDocument, bool) {
	for _, doc := range docs {
		if d, ok := doc.(domain.IDCardDocument); ok {
			return d, true
		}
	}
	return domain.IDCardDocument{}, false
}

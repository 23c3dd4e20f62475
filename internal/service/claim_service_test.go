package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"superclaims/internal/classifier"
	"superclaims/internal/domain"
	"superclaims/internal/extractor"
	"superclaims/internal/service"
	"superclaims/internal/validator"
	"superclaims/mocks"
)

// stubExtractor returns a fixed document regardless of input.
type stubExtractor struct {
	doc domain.Document
}

func (s stubExtractor) Extract(_ context.Context, _, _ string) domain.Document {
	return s.doc
}

func consistentExtractors() map[domain.DocumentType]extractor.DocumentExtractor {
	return map[domain.DocumentType]extractor.DocumentExtractor{
		domain.DocumentTypeBill: stubExtractor{doc: domain.BillDocument{
			Type: domain.DocumentTypeBill, HospitalName: "Apollo", TotalAmount: 45000,
			DateOfService: "2024-01-05", PatientName: "Ravi Kumar",
		}},
		domain.DocumentTypeDischargeSummary: stubExtractor{doc: domain.DischargeSummaryDocument{
			Type: domain.DocumentTypeDischargeSummary, PatientName: "Ravi Kumar",
			Diagnosis: "Appendicitis", AdmissionDate: "2024-01-01", DischargeDate: "2024-01-05",
		}},
		domain.DocumentTypeIDCard: stubExtractor{doc: domain.IDCardDocument{
			Type: domain.DocumentTypeIDCard, PatientName: "Ravi Kumar",
			PolicyNumber: "POL-1", MemberID: "MEM-1",
		}},
	}
}

func TestProcessClaim_CompleteClaimApproved(t *testing.T) {
	llm := new(mocks.MockLLMClient)
	llm.On("ExtractText", mock.Anything, mock.Anything).Return("document text", nil)

	svc := service.NewClaimService(llm, classifier.New(llm), consistentExtractors(), validator.New())

	files := []domain.FileEntry{
		{Path: "/tmp/x/bill.pdf", Filename: "bill.pdf"},
		{Path: "/tmp/x/discharge_summary.pdf", Filename: "discharge_summary.pdf"},
		{Path: "/tmp/x/insurance_card.pdf", Filename: "insurance_card.pdf"},
	}

	resp, err := svc.ProcessClaim(context.Background(), files)

	require.NoError(t, err)
	require.Len(t, resp.Documents, 3)
	assert.Equal(t, domain.ClaimStatusApproved, resp.ClaimDecision.Status)
	assert.Equal(t, 0.95, resp.ClaimDecision.ConfidenceScore)
	assert.Empty(t, resp.Validation.MissingDocuments)
	assert.Empty(t, resp.Validation.Discrepancies)

	assert.Equal(t, 3, resp.Metadata.TotalFilesProcessed)
	assert.ElementsMatch(t, []domain.DocumentType{
		domain.DocumentTypeBill,
		domain.DocumentTypeDischargeSummary,
		domain.DocumentTypeIDCard,
	}, resp.Metadata.DocumentTypesFound)
	assert.Equal(t, domain.ValidationStatusPassed, resp.Metadata.ValidationStatus)

	// filename keywords decide every file, so the model is never asked
	llm.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
	llm.AssertNumberOfCalls(t, "ExtractText", 3)
}

func TestProcessClaim_BillOnlyRejected(t *testing.T) {
	llm := new(mocks.MockLLMClient)
	llm.On("ExtractText", mock.Anything, mock.Anything).Return("bill text", nil)

	svc := service.NewClaimService(llm, classifier.New(llm), consistentExtractors(), validator.New())

	resp, err := svc.ProcessClaim(context.Background(), []domain.FileEntry{
		{Path: "/tmp/x/bill.pdf", Filename: "bill.pdf"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusRejected, resp.ClaimDecision.Status)
	assert.Equal(t, []domain.DocumentType{
		domain.DocumentTypeDischargeSummary,
		domain.DocumentTypeIDCard,
	}, resp.Validation.MissingDocuments)
	assert.Equal(t, 1, resp.Metadata.TotalFilesProcessed)
}

func TestProcessClaim_DiscrepanciesFlaggedInMetadata(t *testing.T) {
	llm := new(mocks.MockLLMClient)
	llm.On("ExtractText", mock.Anything, mock.Anything).Return("text", nil)

	extractors := consistentExtractors()
	extractors[domain.DocumentTypeIDCard] = stubExtractor{doc: domain.IDCardDocument{
		Type: domain.DocumentTypeIDCard, PatientName: "Ravi Kumar",
		PolicyNumber: domain.UnknownValue, MemberID: domain.UnknownValue,
	}}

	svc := service.NewClaimService(llm, classifier.New(llm), extractors, validator.New())

	resp, err := svc.ProcessClaim(context.Background(), []domain.FileEntry{
		{Path: "/tmp/x/bill.pdf", Filename: "bill.pdf"},
		{Path: "/tmp/x/discharge_summary.pdf", Filename: "discharge_summary.pdf"},
		{Path: "/tmp/x/insurance_card.pdf", Filename: "insurance_card.pdf"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusPendingReview, resp.ClaimDecision.Status)
	assert.Equal(t, domain.ValidationStatusIssuesFound, resp.Metadata.ValidationStatus)
}

func TestProcessClaim_TextExtractionFailureFailsClaim(t *testing.T) {
	llm := new(mocks.MockLLMClient)
	llm.On("ExtractText", mock.Anything, "/tmp/x/bill.pdf").Return("bill text", nil).Maybe()
	llm.On("ExtractText", mock.Anything, "/tmp/x/insurance_card.pdf").
		Return("", errors.New("api unavailable")).Maybe()

	svc := service.NewClaimService(llm, classifier.New(llm), consistentExtractors(), validator.New())

	_, err := svc.ProcessClaim(context.Background(), []domain.FileEntry{
		{Path: "/tmp/x/bill.pdf", Filename: "bill.pdf"},
		{Path: "/tmp/x/insurance_card.pdf", Filename: "insurance_card.pdf"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insurance_card.pdf")
}

func TestProcessClaim_DocumentOrderFollowsInputOrder(t *testing.T) {
	llm := new(mocks.MockLLMClient)
	llm.On("ExtractText", mock.Anything, mock.Anything).Return("text", nil)

	svc := service.NewClaimService(llm, classifier.New(llm), consistentExtractors(), validator.New())

	resp, err := svc.ProcessClaim(context.Background(), []domain.FileEntry{
		{Path: "/tmp/x/insurance_card.pdf", Filename: "insurance_card.pdf"},
		{Path: "/tmp/x/bill.pdf", Filename: "bill.pdf"},
	})

	require.NoError(t, err)
	require.Len(t, resp.Documents, 2)
	assert.Equal(t, domain.DocumentTypeIDCard, resp.Documents[0].Kind())
	assert.Equal(t, domain.DocumentTypeBill, resp.Documents[1].Kind())
}

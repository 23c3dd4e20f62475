package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"superclaims/internal/classifier"
	"superclaims/internal/decision"
	"superclaims/internal/domain"
	"superclaims/internal/extractor"
	"superclaims/internal/port"
	"superclaims/internal/validator"
)

// ClaimService defines the claim processing contract.
type ClaimService interface {
	ProcessClaim(ctx context.Context, files []domain.FileEntry) (*domain.ClaimProcessingResponse, error)
}

type claimService struct {
	textExtractor port.TextExtractor
	classifier    *classifier.Classifier
	extractors    map[domain.DocumentType]extractor.DocumentExtractor
	validator     *validator.Validator
}

// NewClaimService creates a ClaimService implementation.
func NewClaimService(
	textExtractor port.TextExtractor,
	clf *classifier.Classifier,
	extractors map[domain.DocumentType]extractor.DocumentExtractor,
	v *validator.Validator,
) ClaimService {
	return &claimService{
		textExtractor: textExtractor,
		classifier:    clf,
		extractors:    extractors,
		validator:     v,
	}
}

// NewDefaultExtractors returns the extractor for each recognized document type.
func NewDefaultExtractors(llm port.StructuredClient) map[domain.DocumentType]extractor.DocumentExtractor {
	return map[domain.DocumentType]extractor.DocumentExtractor{
		domain.DocumentTypeBill:             extractor.NewBillExtractor(llm),
		domain.DocumentTypeDischargeSummary: extractor.NewDischargeExtractor(llm),
		domain.DocumentTypeIDCard:           extractor.NewIDCardExtractor(llm),
	}
}

// ProcessClaim runs the end-to-end pipeline over the staged files:
// classification and text extraction fan out per stage and join before the
// next stage begins, with results slotted by input index; field extraction
// then runs per file in input order. A text-extraction failure fails the
// whole claim; classification and field-extraction failures are absorbed by
// their components.
func (s *claimService) ProcessClaim(ctx context.Context, files []domain.FileEntry) (*domain.ClaimProcessingResponse, error) {
	log.Printf("claimService: processing claim with %d files", len(files))

	// Stage 1: classify every file. Classify never fails, so a plain
	// WaitGroup suffices.
	classifications := make([]domain.DocumentType, len(files))
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func() {
			defer wg.Done()
			classifications[i] = s.classifier.Classify(ctx, f.Filename)
		}()
	}
	wg.Wait()

	// Stage 2: extract text from every PDF.
	texts := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			text, err := s.textExtractor.ExtractText(gctx, f.Path)
			if err != nil {
				return fmt.Errorf("extracting text from %s: %w", f.Filename, err)
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stage 3: route each file to its extractor. Extractors absorb their own
	// failures and always produce a document, so the only skip case is an
	// unrecognized type tag.
	documents := make([]domain.Document, 0, len(files))
	for i, f := range files {
		ext, ok := s.extractors[classifications[i]]
		if !ok {
			log.Printf("claimService: unknown document type %q for %s, skipping", classifications[i], f.Filename)
			continue
		}
		documents = append(documents, ext.Extract(ctx, texts[i], f.Filename))
	}
	log.Printf("claimService: produced %d documents", len(documents))

	// Stages 4-5: validate and decide.
	validation := s.validator.Validate(documents)
	claimDecision := decision.Decide(documents, validation)
	log.Printf("claimService: decision=%s", claimDecision.Status)

	// Stage 6: assemble the response.
	typesFound := make([]domain.DocumentType, len(documents))
	for i, doc := range documents {
		typesFound[i] = doc.Kind()
	}
	validationStatus := domain.ValidationStatusPassed
	if len(validation.Discrepancies) > 0 {
		validationStatus = domain.ValidationStatusIssuesFound
	}

	return &domain.ClaimProcessingResponse{
		Documents:     documents,
		Validation:    validation,
		ClaimDecision: claimDecision,
		Metadata: domain.ProcessingMetadata{
			TotalFilesProcessed: len(files),
			DocumentTypesFound:  typesFound,
			ValidationStatus:    validationStatus,
		},
	}, nil
}

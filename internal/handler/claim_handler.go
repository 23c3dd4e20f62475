package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"superclaims/internal/service"
)

// ClaimHandler handles claim processing endpoints.
type ClaimHandler struct {
	claimService  service.ClaimService
	maxFileSizeMB int64
}

// NewClaimHandler creates a new ClaimHandler. claimService may be nil when
// the LLM collaborator could not be initialized; processing is then refused.
func NewClaimHandler(claimService service.ClaimService, maxFileSizeMB int64) *ClaimHandler {
	return &ClaimHandler{claimService: claimService, maxFileSizeMB: maxFileSizeMB}
}

// ProcessClaim handles POST /api/v1/claims/process
// @Summary Process an insurance claim
// @Description Upload claim documents (PDF bill, discharge summary, insurance ID card) and receive a claim decision
// @Tags claims
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "PDF files to process (repeatable)"
// @Success 200 {object} APIResponse{data=domain.ClaimProcessingResponse} "Claim processed"
// @Failure 400 {object} APIResponse "Invalid upload batch"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 503 {object} APIResponse "Claim processing unavailable"
// @Failure 500 {object} APIResponse "Internal error"
// @Router /claims/process [post]
func (h *ClaimHandler) ProcessClaim(c *gin.Context) {
	if h.claimService == nil {
		RespondError(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE",
			"claim processing is not available; check API key configuration")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "multipart form with a files field is required")
		return
	}
	files := form.File["files"]

	// Reject a bad batch before any processing begins.
	if err := service.ValidateClaimFiles(files, h.maxFileSizeMB); err != nil {
		HandleError(c, err)
		return
	}

	// Uploads are staged into request-scoped scratch space and discarded
	// with the request.
	tempDir, err := os.MkdirTemp("", "superclaims-")
	if err != nil {
		HandleError(c, err)
		return
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	entries, err := service.StageClaimFiles(files, tempDir)
	if err != nil {
		HandleError(c, err)
		return
	}

	resp, err := h.claimService.ProcessClaim(c.Request.Context(), entries)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, resp)
}

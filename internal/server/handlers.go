package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/cv-import/internal/extraction"
	"github.com/jonathan/cv-import/internal/schemas"
	"github.com/jonathan/cv-import/internal/types"
)

// maxRequestBytes bounds the request body; CV documents are tens of KB at
// most.
const maxRequestBytes = 1 << 20

// ImportPreviewRequest represents the request body for /api/v1/import/preview
type ImportPreviewRequest struct {
	Text string `json:"text" validate:"required"`
}

// Validate validates the ImportPreviewRequest using the validator.
func (r *ImportPreviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ImportPreviewResponse represents the response for /api/v1/import/preview.
// The preview ID is assigned at this boundary; the engine output itself
// carries no identity.
type ImportPreviewResponse struct {
	PreviewID string                 `json:"preview_id"`
	Preview   *types.CvImportPreview `json:"preview"`
}

// handleImportPreview runs the extraction engine over the posted CV text and
// returns the reviewable preview. The preview is always returned, even if
// entirely empty; warnings are advisory, never blocking.
func (s *Server) handleImportPreview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req ImportPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	preview := extraction.ParsePreviewConcurrent(r.Context(), req.Text)

	if s.schemaPath != "" {
		document, err := json.Marshal(preview)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to serialize preview")
			return
		}
		if err := schemas.ValidatePreview(s.schemaPath, document); err != nil {
			log.Printf("preview failed schema validation: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "preview failed schema validation")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, ImportPreviewResponse{
		PreviewID: uuid.NewString(),
		Preview:   preview,
	})
}

// handleHealth reports server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

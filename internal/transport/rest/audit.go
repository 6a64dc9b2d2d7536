package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
)

type trailService interface {
	History(ctx context.Context, entity domain.EntityName, entityID string, limit int) ([]domain.ChangeRecord, error)
	ReferenceData(ctx context.Context, recordID uuid.UUID) (domain.ReferenceData, error)
}

// AuditHandler serves the read-only audit trail endpoints.
type AuditHandler struct {
	trail trailService
	log   *slog.Logger
}

func NewAuditHandler(log *slog.Logger, trail trailService) *AuditHandler {
	return &AuditHandler{trail: trail, log: log}
}

// historyResponse wraps the change-record list for one entity.
type historyResponse struct {
	Records []domain.ChangeRecord `json:"records"`
}

// History handles GET /api/v1/audit/{entity}/{id}.
func (h *AuditHandler) History(w http.ResponseWriter, r *http.Request) {
	entity := domain.EntityName(r.PathValue("entity"))
	entityID := r.PathValue("id")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = parsed
	}

	records, err := h.trail.History(r.Context(), entity, entityID, limit)
	if err != nil {
		h.logError(r, "history failed", err)
		writeError(w, err)
		return
	}

	if records == nil {
		records = []domain.ChangeRecord{}
	}
	writeJSON(w, http.StatusOK, historyResponse{Records: records})
}

// ReferenceData handles GET /api/v1/audit/records/{id}/reference-data.
func (h *AuditHandler) ReferenceData(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	ref, err := h.trail.ReferenceData(r.Context(), recordID)
	if err != nil {
		h.logError(r, "reference data failed", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ref)
}

func (h *AuditHandler) logError(r *http.Request, msg string, err error) {
	h.log.ErrorContext(r.Context(), msg,
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
}

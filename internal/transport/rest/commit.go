package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/service/capture"
)

type captureService interface {
	OnCommit(ctx context.Context, cs capture.ChangeSet) ([]domain.ChangeRecord, error)
}

// CommitHandler ingests committed change sets from the host application.
// The host invokes it once per committed transaction, after the physical
// write; primary keys are therefore already known and arrive inline.
type CommitHandler struct {
	capture captureService
	log     *slog.Logger
}

func NewCommitHandler(log *slog.Logger, capture captureService) *CommitHandler {
	return &CommitHandler{capture: capture, log: log}
}

// trackedEntityRequest mirrors capture.TrackedEntity on the wire.
type trackedEntityRequest struct {
	Entity   domain.EntityName  `json:"entity"`
	ID       string             `json:"id"`
	Action   domain.AuditAction `json:"action"`
	Original map[string]any     `json:"original,omitempty"`
	Current  map[string]any     `json:"current,omitempty"`
}

type commitRequest struct {
	Entities []trackedEntityRequest `json:"entities"`
}

type commitResponse struct {
	Records []domain.ChangeRecord `json:"records"`
}

// Commit handles POST /api/v1/audit/commits. The actor is read from the
// request context; actor-less commits are accepted and skipped, mirroring
// the capture contract.
func (h *CommitHandler) Commit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("body", "malformed JSON"))
		return
	}

	cs := capture.ChangeSet{Entities: make([]capture.TrackedEntity, 0, len(req.Entities))}
	for _, e := range req.Entities {
		cs.Entities = append(cs.Entities, capture.TrackedEntity{
			Entity:   e.Entity,
			ID:       e.ID,
			Action:   e.Action,
			Original: e.Original,
			Current:  e.Current,
		})
	}

	records, err := h.capture.OnCommit(r.Context(), cs)
	if err != nil {
		h.log.ErrorContext(r.Context(), "commit capture failed",
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	if records == nil {
		records = []domain.ChangeRecord{}
	}
	writeJSON(w, http.StatusCreated, commitResponse{Records: records})
}

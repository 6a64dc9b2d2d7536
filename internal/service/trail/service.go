// Package trail turns raw change records back into human-readable
// descriptions of what an audited action added or changed.
package trail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
)

type recordStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.ChangeRecord, error)
	ListByEntity(ctx context.Context, entityName domain.EntityName, entityID string, limit int) ([]domain.ChangeRecord, error)
	ListByTransaction(ctx context.Context, txID uuid.UUID, entityName domain.EntityName, action domain.AuditAction) ([]domain.ChangeRecord, error)
	ListByWindow(ctx context.Context, entityName domain.EntityName, windowStart time.Time, field, value string, action domain.AuditAction) ([]domain.ChangeRecord, error)
}

type labelResolver interface {
	Resolve(ctx context.Context, entity domain.EntityName, id string) string
	ResolveAll(ctx context.Context, entity domain.EntityName, ids []string) map[string]string
	ResolveBefore(ctx context.Context, entity domain.EntityName, id string, before time.Time) string
}

// Service reads the audit trail: per-entity change history and on-demand
// reference-data reconstruction for a single record.
type Service struct {
	records      recordStore
	registry     *Registry
	historyLimit int
	timeout      time.Duration
	log          *slog.Logger
}

func NewService(log *slog.Logger, records recordStore, registry *Registry, historyLimit int, timeout time.Duration) *Service {
	return &Service{
		records:      records,
		registry:     registry,
		historyLimit: historyLimit,
		timeout:      timeout,
		log:          log.With("service", "trail"),
	}
}

// History returns the change records of one entity, most recent first.
// limit is clamped to the configured maximum; zero means the maximum.
func (s *Service) History(ctx context.Context, entity domain.EntityName, entityID string, limit int) ([]domain.ChangeRecord, error) {
	if !entity.IsValid() {
		return nil, domain.NewValidationError("entity", fmt.Sprintf("unknown entity %q", entity))
	}
	if entityID == "" {
		return nil, domain.NewValidationError("id", "entity id is required")
	}
	if limit <= 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}

	records, err := s.records.ListByEntity(ctx, entity, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("list history for %s %s: %w", entity, entityID, err)
	}
	return records, nil
}

// ReferenceData reconstructs the display-ready description of one change
// record. Deleted anchors and entities without a registered provider yield
// an empty result, not an error: the caller renders the record as-is.
func (s *Service) ReferenceData(ctx context.Context, recordID uuid.UUID) (domain.ReferenceData, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	anchor, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return domain.ReferenceData{}, fmt.Errorf("load anchor record: %w", err)
	}

	if anchor.Action == domain.AuditActionDeleted {
		return domain.ReferenceData{}, nil
	}

	provider, ok := s.registry.Provider(anchor.EntityName)
	if !ok {
		s.log.DebugContext(ctx, "no reconstruction provider for entity",
			slog.String("entity", anchor.EntityName.String()),
		)
		return domain.ReferenceData{}, nil
	}

	return provider.Reconstruct(ctx, anchor), nil
}

package capture

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/pkg/ctxutil"
)

// OnCommit captures all tracked mutations of one committed transaction and
// appends them to the change-record store. It must be called exactly once
// per commit, after the primary write succeeds.
//
// Capture is silently skipped — no error, no records — when the transaction
// has no attributable actor. Individual entities are skipped when they are
// the change-record entity itself or produced zero property changes.
//
// A failed append propagates to the caller: the business data is already
// committed at this point, so the error is a store-availability fault to
// alert on, not something to roll back.
func (s *Service) OnCommit(ctx context.Context, cs ChangeSet) ([]domain.ChangeRecord, error) {
	actorID, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		s.log.DebugContext(ctx, "capture skipped: no attributable actor")
		return nil, nil
	}

	// One timestamp and one transaction id for every record of this commit;
	// correlation keys on both.
	capturedAt := s.now().UTC()
	transactionID := uuid.New()

	records := make([]domain.ChangeRecord, 0, len(cs.Entities))
	for _, e := range cs.Entities {
		if e.Entity == domain.EntityChangeRecords {
			continue
		}
		if !e.Action.IsValid() {
			return nil, fmt.Errorf("entity %s: %w", e.Entity,
				domain.NewValidationError("action", fmt.Sprintf("unknown action %q", e.Action)))
		}

		oldValues, newValues, changed := buildValues(e)
		if !changed {
			continue
		}

		records = append(records, domain.ChangeRecord{
			ID:            uuid.New(),
			TransactionID: transactionID,
			EntityName:    e.Entity,
			EntityID:      e.entityID(),
			Action:        e.Action,
			OldValues:     oldValues,
			NewValues:     newValues,
			ActorID:       actorID,
			CreatedAt:     capturedAt,
		})
	}

	if len(records) == 0 {
		return nil, nil
	}

	if err := s.append(ctx, records); err != nil {
		return nil, fmt.Errorf("append change records: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(records); err != nil {
			// Publishing is best-effort; the audit trail itself is intact.
			s.log.WarnContext(ctx, "publish change records",
				slog.String("transaction_id", transactionID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "captured transaction",
		slog.String("transaction_id", transactionID.String()),
		slog.String("actor_id", actorID),
		slog.Int("records", len(records)),
	)

	return records, nil
}

// append writes the records inside one transaction when a tx manager is
// configured, so a partially captured commit never becomes visible.
func (s *Service) append(ctx context.Context, records []domain.ChangeRecord) error {
	if s.tx == nil {
		return s.records.Append(ctx, records)
	}
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.records.Append(ctx, records)
	})
}

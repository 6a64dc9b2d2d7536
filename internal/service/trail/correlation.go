package trail

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
)

// correlator associates relation-table change records with the anchor
// record of the same logical transaction.
//
// Records written by this engine share the anchor's transaction id, which
// gives an exact correlation. Records from before transaction ids existed
// fall back to the heuristic the data supports: same truncated second plus
// a structured payload field pointing back at the anchor. The fallback is
// best effort; two unrelated edits of the same entity within one second
// will merge.
type correlator struct {
	records recordStore
}

func newCorrelator(records recordStore) *correlator {
	return &correlator{records: records}
}

// FindRelated returns relation-table records belonging to the anchor's
// transaction, scoped to one relation entity and action, in descending
// timestamp order.
func (c *correlator) FindRelated(
	ctx context.Context,
	anchor domain.ChangeRecord,
	relationEntity domain.EntityName,
	anchorKey string,
	action domain.AuditAction,
) ([]domain.ChangeRecord, error) {
	if anchor.TransactionID != uuid.Nil {
		records, err := c.records.ListByTransaction(ctx, anchor.TransactionID, relationEntity, action)
		if err != nil {
			return nil, fmt.Errorf("correlate by transaction: %w", err)
		}
		// The transaction can touch relations of several anchors; keep
		// only the ones that reference this anchor.
		matched := records[:0]
		for _, rec := range records {
			if v, ok := rec.PayloadField(anchorKey); ok && v == anchor.EntityID {
				matched = append(matched, rec)
			}
		}
		return matched, nil
	}

	records, err := c.records.ListByWindow(ctx, relationEntity, anchor.WindowStart(), anchorKey, anchor.EntityID, action)
	if err != nil {
		return nil, fmt.Errorf("correlate by window: %w", err)
	}
	return records, nil
}

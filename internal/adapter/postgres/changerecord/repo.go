// Package changerecord implements the append-only change-record store using
// PostgreSQL. Records are written once, at transaction commit, through a raw
// append path that is itself never captured; there are no update or delete
// operations.
package changerecord

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/adapter/postgres"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
)

// Repo provides change-record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new change-record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const recordColumns = `id, transaction_id, entity_name, entity_id, action, old_values, new_values, actor_id, created_at`

const appendSQL = `
INSERT INTO change_records
    (id, transaction_id, entity_name, entity_id, action, old_values, new_values, actor_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const getByIDSQL = `
SELECT ` + recordColumns + `
FROM change_records
WHERE id = $1`

const listByEntitySQL = `
SELECT ` + recordColumns + `
FROM change_records
WHERE entity_name = $1 AND entity_id = $2
ORDER BY created_at DESC, id
LIMIT $3`

const latestBeforeSQL = `
SELECT ` + recordColumns + `
FROM change_records
WHERE entity_name = $1 AND entity_id = $2 AND created_at < $3
ORDER BY created_at DESC, id
LIMIT 1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts all records in one batch. This is the raw save path used by
// the capture interceptor after the business commit; it bypasses capture by
// construction, so audit writes are never re-audited.
func (r *Repo) Append(ctx context.Context, records []domain.ChangeRecord) error {
	if len(records) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, rec := range records {
		oldJSON, newJSON, err := marshalValues(rec)
		if err != nil {
			return fmt.Errorf("change_record %s: %w", rec.ID, err)
		}
		batch.Queue(appendSQL,
			rec.ID, rec.TransactionID, string(rec.EntityName), rec.EntityID,
			string(rec.Action), oldJSON, newJSON, rec.ActorID, rec.CreatedAt)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for i := range records {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "change_record", records[i].ID.String())
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns one change record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.ChangeRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanRecord(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.ChangeRecord{}, postgres.MapError(err, "change_record", id.String())
	}
	return rec, nil
}

// ListByEntity returns the change history of one entity, most recent first.
func (r *Repo) ListByEntity(ctx context.Context, entityName domain.EntityName, entityID string, limit int) ([]domain.ChangeRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByEntitySQL, string(entityName), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("list change_records by entity: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// LatestBefore returns the most recent record for an entity strictly before
// the given time, or domain.ErrNotFound.
func (r *Repo) LatestBefore(ctx context.Context, entityName domain.EntityName, entityID string, before time.Time) (domain.ChangeRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanRecord(querier.QueryRow(ctx, latestBeforeSQL, string(entityName), entityID, before))
	if err != nil {
		return domain.ChangeRecord{}, postgres.MapError(err, "change_record", entityID)
	}
	return rec, nil
}

// ListByTransaction returns records of one committed transaction for the
// given entity type, most recent first. Action filters the result when
// non-empty.
func (r *Repo) ListByTransaction(ctx context.Context, txID uuid.UUID, entityName domain.EntityName, action domain.AuditAction) ([]domain.ChangeRecord, error) {
	qb := psql.Select(recordColumns).
		From("change_records").
		Where(sq.Eq{"transaction_id": txID, "entity_name": string(entityName)}).
		OrderBy("created_at DESC, id")
	if action != "" {
		qb = qb.Where(sq.Eq{"action": string(action)})
	}

	return r.query(ctx, qb, "list change_records by transaction")
}

// ListByWindow returns records of one entity type whose timestamp falls
// within the whole second beginning at windowStart and whose payload
// (old or new values) contains field = value as an exact structured match.
// Most recent first.
func (r *Repo) ListByWindow(ctx context.Context, entityName domain.EntityName, windowStart time.Time, field, value string, action domain.AuditAction) ([]domain.ChangeRecord, error) {
	match, err := json.Marshal(map[string]string{field: value})
	if err != nil {
		return nil, fmt.Errorf("marshal payload match: %w", err)
	}

	qb := psql.Select(recordColumns).
		From("change_records").
		Where(sq.Eq{"entity_name": string(entityName)}).
		Where(sq.GtOrEq{"created_at": windowStart}).
		Where(sq.Lt{"created_at": windowStart.Add(time.Second)}).
		Where(sq.Or{
			sq.Expr("old_values @> ?", match),
			sq.Expr("new_values @> ?", match),
		}).
		OrderBy("created_at DESC, id")
	if action != "" {
		qb = qb.Where(sq.Eq{"action": string(action)})
	}

	return r.query(ctx, qb, "list change_records by window")
}

func (r *Repo) query(ctx context.Context, qb sq.SelectBuilder, op string) ([]domain.ChangeRecord, error) {
	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ---------------------------------------------------------------------------
// Scanning and mapping
// ---------------------------------------------------------------------------

func scanRecords(rows pgx.Rows) ([]domain.ChangeRecord, error) {
	var records []domain.ChangeRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate change_records: %w", err)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (domain.ChangeRecord, error) {
	var (
		rec              domain.ChangeRecord
		entityName       string
		action           string
		oldJSON, newJSON []byte
	)

	err := row.Scan(&rec.ID, &rec.TransactionID, &entityName, &rec.EntityID,
		&action, &oldJSON, &newJSON, &rec.ActorID, &rec.CreatedAt)
	if err != nil {
		return domain.ChangeRecord{}, err
	}

	rec.EntityName = domain.EntityName(entityName)
	rec.Action = domain.AuditAction(action)

	if rec.OldValues, err = unmarshalValues(oldJSON); err != nil {
		return domain.ChangeRecord{}, fmt.Errorf("change_record %s unmarshal old_values: %w", rec.ID, err)
	}
	if rec.NewValues, err = unmarshalValues(newJSON); err != nil {
		return domain.ChangeRecord{}, fmt.Errorf("change_record %s unmarshal new_values: %w", rec.ID, err)
	}

	return rec, nil
}

func marshalValues(rec domain.ChangeRecord) (oldJSON, newJSON any, err error) {
	if rec.OldValues != nil {
		b, err := json.Marshal(rec.OldValues)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal old_values: %w", err)
		}
		oldJSON = b
	}
	if rec.NewValues != nil {
		b, err := json.Marshal(rec.NewValues)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal new_values: %w", err)
		}
		newJSON = b
	}
	return oldJSON, newJSON, nil
}

func unmarshalValues(b []byte) (map[string]string, error) {
	if len(b) == 0 {
		return nil, nil
	}
	values := make(map[string]string)
	if err := json.Unmarshal(b, &values); err != nil {
		// Historical payloads may carry non-string scalars; fall back to a
		// loose decode and coerce, skipping what cannot be represented.
		var loose map[string]any
		if err2 := json.Unmarshal(b, &loose); err2 != nil {
			return nil, err
		}
		values = make(map[string]string, len(loose))
		for k, v := range loose {
			switch t := v.(type) {
			case string:
				values[k] = t
			case float64, bool:
				values[k] = fmt.Sprint(t)
			case nil:
				values[k] = ""
			}
		}
	}
	return values, nil
}

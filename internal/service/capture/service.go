// Package capture turns the tracked mutations of one committed business
// transaction into persisted change records. It runs synchronously on the
// commit path, after the primary write succeeds; the records it appends all
// share one timestamp and one transaction id.
package capture

import (
	"context"
	"log/slog"
	"time"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
)

type recordStore interface {
	Append(ctx context.Context, records []domain.ChangeRecord) error
}

type eventPublisher interface {
	Publish(records []domain.ChangeRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the capture interceptor.
type Service struct {
	records   recordStore
	publisher eventPublisher // nil when event publishing is disabled
	tx        txManager      // nil when the caller manages its own transaction
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates the capture interceptor. publisher and tx may be nil;
// with a tx manager, all records of one commit are appended atomically.
func NewService(log *slog.Logger, records recordStore, publisher eventPublisher, tx txManager) *Service {
	return &Service{
		records:   records,
		publisher: publisher,
		tx:        tx,
		now:       time.Now,
		log:       log.With("service", "capture"),
	}
}

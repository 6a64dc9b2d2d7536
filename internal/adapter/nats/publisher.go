// Package nats publishes captured change records as JSON events.
// Subjects are <prefix>.<entityName>, one event per record, so downstream
// consumers can subscribe per entity type.
package nats

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/config"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
)

// Publisher publishes change records to NATS.
type Publisher struct {
	conn   *nats.Conn
	prefix string
	log    *slog.Logger
}

// NewPublisher connects to NATS with reconnect handling.
func NewPublisher(cfg config.NATSConfig, log *slog.Logger) (*Publisher, error) {
	log = log.With("component", "nats_publisher")

	opts := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnect),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("nats disconnected", slog.String("error", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("nats reconnected", slog.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			log.Warn("nats connection closed")
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	log.Info("connected to nats", slog.String("url", cfg.URL))

	return &Publisher{conn: conn, prefix: cfg.SubjectPrefix, log: log}, nil
}

// Publish emits one event per record. It stops at the first failure so the
// caller can decide whether to alert; records already published stay
// published (at-least-once semantics downstream).
func (p *Publisher) Publish(records []domain.ChangeRecord) error {
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal change record %s: %w", rec.ID, err)
		}

		subject := fmt.Sprintf("%s.%s", p.prefix, rec.EntityName)
		if err := p.conn.Publish(subject, data); err != nil {
			return fmt.Errorf("publish change record %s to %s: %w", rec.ID, subject, err)
		}

		p.log.Debug("published change record",
			slog.String("subject", subject),
			slog.String("record_id", rec.ID.String()),
			slog.String("action", rec.Action.String()),
		)
	}
	return nil
}

// Close drains and closes the connection.
func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

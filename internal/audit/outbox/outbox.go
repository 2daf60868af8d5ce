// Package outbox publishes case-created events to Kafka so downstream
// enforcement systems can react without polling the case table. Publishing is
// strictly best-effort: the audit pipeline must stay invisible to filers, so
// no failure here ever propagates.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"hesabu/internal/audit"
)

// Event is the JSON payload published per created case.
type Event struct {
	CaseID         string    `json:"case_id"`
	PIN            string    `json:"pin"`
	Score          int       `json:"score"`
	Level          string    `json:"level"`
	DeclaredIncome float64   `json:"declared_income"`
	InferredIncome float64   `json:"inferred_income"`
	CreatedAt      time.Time `json:"created_at"`
}

// Publisher produces case-created events. A nil Publisher is a valid no-op,
// used when no brokers are configured.
type Publisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// New connects a producer to the given brokers. Returns (nil, nil) when
// brokers is empty so callers can wire the optional dependency directly.
func New(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return &Publisher{client: client, topic: topic, logger: logger}, nil
}

// PublishCaseCreated produces one event, keyed by PIN so a taxpayer's cases
// stay ordered within a partition. Errors are logged and dropped.
func (p *Publisher) PublishCaseCreated(ctx context.Context, auditCase *audit.AuditCase) {
	if p == nil || auditCase == nil {
		return
	}
	payload, err := json.Marshal(Event{
		CaseID:         auditCase.ID.String(),
		PIN:            auditCase.PIN.String(),
		Score:          auditCase.Score,
		Level:          string(auditCase.Level),
		DeclaredIncome: auditCase.DeclaredIncome,
		InferredIncome: auditCase.InferredIncome,
		CreatedAt:      auditCase.CreatedAt,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "marshal case-created event", "error", err)
		return
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(auditCase.PIN.String()),
		Value: payload,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.logger.ErrorContext(ctx, "publish case-created event",
				"case_id", auditCase.ID.String(),
				"error", err,
			)
		}
	})
}

// Close flushes and releases the producer.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = p.client.Flush(ctx)
	p.client.Close()
}

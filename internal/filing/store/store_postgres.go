package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	id "hesabu/pkg/domain"
)

// PostgresStore persists the answer trail in PostgreSQL. Each Append is a
// single-statement insert, so a crash mid-section loses at most the answer in
// flight, never a partial row.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed answer store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, record AnswerRecord) error {
	query := `
		INSERT INTO filing_answers (pin, filing_type, section, field, value, session_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		record.PIN.String(),
		string(record.FilingType),
		record.Section,
		record.Field,
		record.Value,
		uuid.UUID(record.SessionID),
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert filing answer: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByPIN(ctx context.Context, pin id.PIN) ([]AnswerRecord, error) {
	query := `
		SELECT pin, filing_type, section, field, value, session_id, created_at
		FROM filing_answers
		WHERE pin = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, pin.String())
	if err != nil {
		return nil, fmt.Errorf("query filing answers: %w", err)
	}
	defer rows.Close()

	records := make([]AnswerRecord, 0)
	for rows.Next() {
		var (
			record     AnswerRecord
			rawPIN     string
			filingType string
			sessionID  uuid.UUID
		)
		if err := rows.Scan(&rawPIN, &filingType, &record.Section, &record.Field, &record.Value, &sessionID, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan filing answer: %w", err)
		}
		record.PIN = id.PIN(rawPIN)
		record.FilingType = id.FilingType(filingType)
		record.SessionID = id.SessionID(sessionID)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate filing answers: %w", err)
	}
	return records, nil
}

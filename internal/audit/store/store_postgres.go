package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"hesabu/internal/audit"
	id "hesabu/pkg/domain"
)

// PostgresStore persists audit cases in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed case store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, auditCase *audit.AuditCase) error {
	if auditCase == nil {
		return fmt.Errorf("audit case is required")
	}
	query := `
		INSERT INTO audit_cases (
			id, pin, score, level, reason,
			declared_income, inferred_income, discrepancy, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(auditCase.ID),
		auditCase.PIN.String(),
		auditCase.Score,
		string(auditCase.Level),
		auditCase.Reason,
		auditCase.DeclaredIncome,
		auditCase.InferredIncome,
		auditCase.Discrepancy,
		string(auditCase.Status),
		auditCase.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit case: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]*audit.AuditCase, error) {
	query := `
		SELECT id, pin, score, level, reason,
			   declared_income, inferred_income, discrepancy, status, created_at
		FROM audit_cases
		ORDER BY score DESC, created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query audit cases: %w", err)
	}
	defer rows.Close()

	return scanCases(rows)
}

func (s *PostgresStore) ListByPIN(ctx context.Context, pin id.PIN, level id.RiskLevel) ([]*audit.AuditCase, error) {
	query := `
		SELECT id, pin, score, level, reason,
			   declared_income, inferred_income, discrepancy, status, created_at
		FROM audit_cases
		WHERE pin = $1 AND ($2 = '' OR level = $2)
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, pin.String(), string(level))
	if err != nil {
		return nil, fmt.Errorf("query audit cases by pin: %w", err)
	}
	defer rows.Close()

	return scanCases(rows)
}

func scanCases(rows *sql.Rows) ([]*audit.AuditCase, error) {
	cases := make([]*audit.AuditCase, 0)
	for rows.Next() {
		var (
			auditCase audit.AuditCase
			caseID    uuid.UUID
			rawPIN    string
			level     string
			status    string
		)
		err := rows.Scan(
			&caseID,
			&rawPIN,
			&auditCase.Score,
			&level,
			&auditCase.Reason,
			&auditCase.DeclaredIncome,
			&auditCase.InferredIncome,
			&auditCase.Discrepancy,
			&status,
			&auditCase.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit case: %w", err)
		}
		auditCase.ID = id.CaseID(caseID)
		auditCase.PIN = id.PIN(rawPIN)
		auditCase.Level = id.RiskLevel(level)
		auditCase.Status = audit.CaseStatus(status)
		cases = append(cases, &auditCase)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit cases: %w", err)
	}
	return cases, nil
}

package truthdata

import (
	"context"
	"database/sql"
	"fmt"

	"hesabu/internal/audit"
	id "hesabu/pkg/domain"
)

// PostgresSource reads truth data from the registry mirror tables. Each
// summary is one aggregate query; a PIN with no rows yields the zero summary
// with HasData=false.
type PostgresSource struct {
	db *sql.DB
}

// NewPostgresSource constructs a PostgreSQL-backed source store.
func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) BankSummary(ctx context.Context, pin id.PIN) (audit.BankSummary, error) {
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'CREDIT'), 0), COUNT(*)
		FROM bank_transactions
		WHERE pin = $1
	`
	var summary audit.BankSummary
	err := s.db.QueryRowContext(ctx, query, pin.String()).Scan(&summary.TotalInflows, &summary.TransactionCount)
	if err != nil {
		return audit.BankSummary{}, fmt.Errorf("bank summary: %w", err)
	}
	summary.HasData = summary.TransactionCount > 0
	return summary, nil
}

func (s *PostgresSource) MpesaSummary(ctx context.Context, pin id.PIN) (audit.MpesaSummary, error) {
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'RECEIVE'), 0), COUNT(*)
		FROM mpesa_transactions
		WHERE pin = $1
	`
	var summary audit.MpesaSummary
	err := s.db.QueryRowContext(ctx, query, pin.String()).Scan(&summary.TotalReceived, &summary.TransactionCount)
	if err != nil {
		return audit.MpesaSummary{}, fmt.Errorf("mpesa summary: %w", err)
	}
	summary.HasData = summary.TransactionCount > 0
	return summary, nil
}

func (s *PostgresSource) VehicleSummary(ctx context.Context, pin id.PIN) (audit.AssetSummary, error) {
	return s.assetSummary(ctx, pin, "vehicle_assets")
}

func (s *PostgresSource) PropertySummary(ctx context.Context, pin id.PIN) (audit.AssetSummary, error) {
	return s.assetSummary(ctx, pin, "property_assets")
}

func (s *PostgresSource) assetSummary(ctx context.Context, pin id.PIN, table string) (audit.AssetSummary, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(estimated_value), 0), COUNT(*)
		FROM %s
		WHERE pin = $1
	`, table)
	var summary audit.AssetSummary
	err := s.db.QueryRowContext(ctx, query, pin.String()).Scan(&summary.TotalValue, &summary.Count)
	if err != nil {
		return audit.AssetSummary{}, fmt.Errorf("%s summary: %w", table, err)
	}
	summary.HasData = summary.Count > 0
	return summary, nil
}

func (s *PostgresSource) ImportSummary(ctx context.Context, pin id.PIN) (audit.ImportSummary, error) {
	query := `
		SELECT COALESCE(SUM(value), 0), COUNT(*)
		FROM import_records
		WHERE pin = $1
	`
	var summary audit.ImportSummary
	err := s.db.QueryRowContext(ctx, query, pin.String()).Scan(&summary.TotalValue, &summary.Count)
	if err != nil {
		return audit.ImportSummary{}, fmt.Errorf("import summary: %w", err)
	}
	summary.HasData = summary.Count > 0
	return summary, nil
}

func (s *PostgresSource) TelcoSummary(ctx context.Context, pin id.PIN) (audit.TelcoSummary, error) {
	query := `
		SELECT COALESCE(SUM(monthly_bill), 0), COUNT(*)
		FROM telco_usage
		WHERE pin = $1
	`
	var summary audit.TelcoSummary
	err := s.db.QueryRowContext(ctx, query, pin.String()).Scan(&summary.TotalBills, &summary.MonthsTracked)
	if err != nil {
		return audit.TelcoSummary{}, fmt.Errorf("telco summary: %w", err)
	}
	summary.HasData = summary.MonthsTracked > 0
	return summary, nil
}

//go:build integration

package truthdata_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"hesabu/internal/audit/truthdata"
	id "hesabu/pkg/domain"
	"hesabu/pkg/testutil/containers"
)

type PostgresSourceSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	source   *truthdata.PostgresSource
}

func TestPostgresSourceSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresSourceSuite))
}

func (s *PostgresSourceSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.source = truthdata.NewPostgresSource(s.postgres.DB)
}

func (s *PostgresSourceSuite) SetupTest() {
	ctx := context.Background()
	err := s.postgres.TruncateTables(ctx,
		"bank_transactions", "mpesa_transactions",
		"vehicle_assets", "property_assets",
		"import_records", "telco_usage",
	)
	s.Require().NoError(err)
}

const pin = id.PIN("A111111111P")

func (s *PostgresSourceSuite) exec(query string, args ...any) {
	_, err := s.postgres.DB.ExecContext(context.Background(), query, args...)
	s.Require().NoError(err)
}

func (s *PostgresSourceSuite) TestBankSummaryCountsOnlyCredits() {
	s.exec(`INSERT INTO bank_transactions (pin, type, amount, date) VALUES
		($1, 'CREDIT', 300000, '2024-01-05'),
		($1, 'CREDIT', 200000, '2024-02-05'),
		($1, 'DEBIT', 150000, '2024-02-10')`, pin.String())

	summary, err := s.source.BankSummary(context.Background(), pin)
	s.Require().NoError(err)
	s.Equal(500000.0, summary.TotalInflows)
	s.Equal(3, summary.TransactionCount)
	s.True(summary.HasData)
}

func (s *PostgresSourceSuite) TestMpesaSummaryCountsOnlyReceived() {
	s.exec(`INSERT INTO mpesa_transactions (pin, transaction_type, amount, date) VALUES
		($1, 'RECEIVE', 80000, '2024-01-05'),
		($1, 'SEND', 30000, '2024-01-06')`, pin.String())

	summary, err := s.source.MpesaSummary(context.Background(), pin)
	s.Require().NoError(err)
	s.Equal(80000.0, summary.TotalReceived)
	s.True(summary.HasData)
}

func (s *PostgresSourceSuite) TestAssetSummaries() {
	s.exec(`INSERT INTO vehicle_assets (pin, make, model, estimated_value) VALUES
		($1, 'Toyota', 'Land Cruiser', 12000000),
		($1, 'Subaru', 'Outback', 4000000)`, pin.String())
	s.exec(`INSERT INTO property_assets (pin, location, property_type, estimated_value) VALUES
		($1, 'Kilimani', 'Apartment', 25000000)`, pin.String())

	vehicles, err := s.source.VehicleSummary(context.Background(), pin)
	s.Require().NoError(err)
	s.Equal(2, vehicles.Count)
	s.Equal(16000000.0, vehicles.TotalValue)

	properties, err := s.source.PropertySummary(context.Background(), pin)
	s.Require().NoError(err)
	s.Equal(1, properties.Count)
	s.Equal(25000000.0, properties.TotalValue)
}

func (s *PostgresSourceSuite) TestImportAndTelcoSummaries() {
	s.exec(`INSERT INTO import_records (pin, value, date) VALUES
		($1, 3000000, '2024-03-01'),
		($1, 4000000, '2024-06-01')`, pin.String())
	s.exec(`INSERT INTO telco_usage (pin, month, monthly_bill) VALUES
		($1, '2024-01', 4500),
		($1, '2024-02', 5200)`, pin.String())

	imports, err := s.source.ImportSummary(context.Background(), pin)
	s.Require().NoError(err)
	s.Equal(7000000.0, imports.TotalValue)
	s.Equal(2, imports.Count)

	telco, err := s.source.TelcoSummary(context.Background(), pin)
	s.Require().NoError(err)
	s.Equal(9700.0, telco.TotalBills)
	s.Equal(2, telco.MonthsTracked)
}

func (s *PostgresSourceSuite) TestUnknownPINHasNoData() {
	ctx := context.Background()

	bank, err := s.source.BankSummary(ctx, "A999999999P")
	s.Require().NoError(err)
	s.False(bank.HasData)
	s.Zero(bank.TotalInflows)

	vehicles, err := s.source.VehicleSummary(ctx, "A999999999P")
	s.Require().NoError(err)
	s.False(vehicles.HasData)
}

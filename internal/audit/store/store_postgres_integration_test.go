//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"hesabu/internal/audit"
	"hesabu/internal/audit/store"
	id "hesabu/pkg/domain"
	"hesabu/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	err := s.postgres.TruncateTables(ctx, "audit_cases")
	s.Require().NoError(err)
}

func newCase(pin id.PIN, score int, level id.RiskLevel, at time.Time) *audit.AuditCase {
	return &audit.AuditCase{
		ID:             id.NewCaseID(),
		PIN:            pin,
		Score:          score,
		Level:          level,
		Reason:         "Income discrepancy of KES 4,000,000",
		DeclaredIncome: 1_000_000,
		InferredIncome: 5_000_000,
		Discrepancy:    4_000_000,
		Status:         audit.CaseOpen,
		CreatedAt:      at,
	}
}

func (s *PostgresStoreSuite) TestCreateAndReadBack() {
	ctx := context.Background()
	created := newCase("A111111111P", 85, id.RiskHigh, time.Now().UTC().Truncate(time.Microsecond))

	s.Require().NoError(s.store.Create(ctx, created))

	cases, err := s.store.ListByPIN(ctx, "A111111111P", "")
	s.Require().NoError(err)
	s.Require().Len(cases, 1)

	got := cases[0]
	s.Equal(created.ID, got.ID)
	s.Equal(created.Score, got.Score)
	s.Equal(created.Level, got.Level)
	s.Equal(created.Reason, got.Reason)
	s.Equal(created.DeclaredIncome, got.DeclaredIncome)
	s.Equal(created.InferredIncome, got.InferredIncome)
	s.Equal(created.Discrepancy, got.Discrepancy)
	s.Equal(audit.CaseOpen, got.Status)
}

func (s *PostgresStoreSuite) TestListAllOrdersByScoreThenRecency() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	s.Require().NoError(s.store.Create(ctx, newCase("A111111111P", 70, id.RiskHigh, base)))
	s.Require().NoError(s.store.Create(ctx, newCase("A222222222P", 90, id.RiskHigh, base.Add(time.Second))))
	s.Require().NoError(s.store.Create(ctx, newCase("A333333333P", 70, id.RiskHigh, base.Add(2*time.Second))))

	cases, err := s.store.ListAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(cases, 3)
	s.Equal(90, cases[0].Score)
	s.Equal(id.PIN("A333333333P"), cases[1].PIN)
	s.Equal(id.PIN("A111111111P"), cases[2].PIN)
}

func (s *PostgresStoreSuite) TestListByPINLevelFilter() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.Require().NoError(s.store.Create(ctx, newCase("A111111111P", 65, id.RiskHigh, now)))
	s.Require().NoError(s.store.Create(ctx, newCase("A111111111P", 45, id.RiskMedium, now)))

	high, err := s.store.ListByPIN(ctx, "A111111111P", id.RiskHigh)
	s.Require().NoError(err)
	s.Require().Len(high, 1)
	s.Equal(id.RiskHigh, high[0].Level)

	all, err := s.store.ListByPIN(ctx, "A111111111P", "")
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *PostgresStoreSuite) TestListByPINEmptyForUnknown() {
	ctx := context.Background()

	cases, err := s.store.ListByPIN(ctx, "A999999999P", "")
	s.Require().NoError(err)
	s.Empty(cases)
}

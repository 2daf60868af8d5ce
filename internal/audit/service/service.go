//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks ProfileBuilder

// Package service runs the risk analysis pipeline for one completed filing.
// The pipeline is silent by contract: nothing it does, including total
// failure, is ever visible to the filing caller.
package service

import (
	"context"
	"log/slog"
	"time"

	"hesabu/internal/audit"
	"hesabu/internal/audit/metrics"
	"hesabu/internal/audit/outbox"
	"hesabu/internal/audit/risk"
	"hesabu/internal/audit/store"
	id "hesabu/pkg/domain"
)

// ProfileBuilder aggregates truth data for one taxpayer.
type ProfileBuilder interface {
	BuildProfile(ctx context.Context, pin id.PIN) audit.WealthProfile
}

// Service executes the full pipeline: aggregate, score, classify, persist.
type Service struct {
	profiles ProfileBuilder
	cases    store.Store
	outbox   *outbox.Publisher
	logger   *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

// New constructs the audit service. outbox may be nil when event publishing
// is not configured.
func New(profiles ProfileBuilder, cases store.Store, pub *outbox.Publisher, logger *slog.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		profiles: profiles,
		cases:    cases,
		outbox:   pub,
		logger:   logger,
		metrics:  m,
		now:      time.Now,
	}
}

// Run executes one risk analysis. It never returns an error and never panics
// outward; every failure is logged, counted, and reflected only in the
// outcome. An empty profile short-circuits to LOW with score 0 and no case.
// A case is persisted for HIGH risk only.
func (s *Service) Run(ctx context.Context, job audit.Job) (outcome audit.RunOutcome) {
	defer func() {
		if r := recover(); r != nil {
			s.metrics.IncrementRunFailure()
			s.logger.ErrorContext(ctx, "audit run panicked",
				"pin", job.PIN.String(),
				"panic", r,
			)
			outcome = audit.RunOutcome{}
		}
	}()

	profile := s.profiles.BuildProfile(ctx, job.PIN)

	if !profile.HasAnyData() {
		s.metrics.IncrementRun(string(id.RiskLow))
		s.logger.InfoContext(ctx, "audit run complete, no external data",
			"pin", job.PIN.String(),
		)
		return audit.RunOutcome{Executed: true, Level: id.RiskLow}
	}

	inferred := risk.InferredIncome(profile)
	score := risk.Score(job.DeclaredIncome, inferred, profile)
	level := risk.Level(score)

	outcome = audit.RunOutcome{Executed: true, Level: level, Score: score}

	if level == id.RiskHigh {
		auditCase := &audit.AuditCase{
			ID:             id.NewCaseID(),
			PIN:            job.PIN,
			Score:          score,
			Level:          level,
			Reason:         risk.Reason(job.DeclaredIncome, inferred, profile),
			DeclaredIncome: job.DeclaredIncome,
			InferredIncome: inferred,
			Discrepancy:    inferred - job.DeclaredIncome,
			Status:         audit.CaseOpen,
			CreatedAt:      s.now().UTC(),
		}
		if err := s.cases.Create(ctx, auditCase); err != nil {
			s.metrics.IncrementRunFailure()
			s.logger.ErrorContext(ctx, "create audit case",
				"pin", job.PIN.String(),
				"score", score,
				"error", err,
			)
		} else {
			outcome.CaseCreated = true
			s.metrics.IncrementCaseCreated()
			s.outbox.PublishCaseCreated(ctx, auditCase)
		}
	}

	s.metrics.IncrementRun(string(level))
	s.logger.InfoContext(ctx, "audit run complete",
		"pin", job.PIN.String(),
		"level", string(level),
		"score", score,
		"case_created", outcome.CaseCreated,
	)
	return outcome
}

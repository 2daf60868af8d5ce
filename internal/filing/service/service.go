// Package service orchestrates the filing workflow: it runs the session
// machine, persists live sessions and the permanent answer trail, and hands
// completed IT1 filings to the audit queue. The audit hand-off is silent; its
// result never reaches the filer.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hesabu/internal/audit"
	"hesabu/internal/audit/worker"
	"hesabu/internal/filing/metrics"
	"hesabu/internal/filing/schema"
	"hesabu/internal/filing/session"
	"hesabu/internal/filing/store"
	"hesabu/pkg/platform/sentinel"
	id "hesabu/pkg/domain"
	dErrors "hesabu/pkg/domain-errors"
)

// StartResult is what a freshly opened session looks like to the transport.
type StartResult struct {
	SessionID id.SessionID    `json:"session_id"`
	Section   string          `json:"section"`
	Question  schema.Question `json:"question"`
}

// Service drives filing sessions end to end.
type Service struct {
	machine  *session.Machine
	sessions session.Store
	answers  store.Store
	audits   *worker.Queue
	logger   *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

// New constructs the filing service. audits may be nil when the audit
// pipeline is not running.
func New(machine *session.Machine, sessions session.Store, answers store.Store, audits *worker.Queue, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		machine:  machine,
		sessions: sessions,
		answers:  answers,
		audits:   audits,
		logger:   logger,
		metrics:  m,
		now:      time.Now,
	}
}

// Start opens a session for the taxpayer and returns the first question.
func (s *Service) Start(ctx context.Context, pin id.PIN, ft id.FilingType) (StartResult, error) {
	sess, question := s.machine.Start(pin, ft, s.now().UTC())
	if err := s.sessions.Put(ctx, sess); err != nil {
		return StartResult{}, dErrors.Wrap(dErrors.CodeInternal, err)
	}

	s.metrics.IncrementSessionStarted(string(ft))
	s.logger.InfoContext(ctx, "filing session started",
		"session_id", sess.ID,
		"filing_type", ft,
	)
	return StartResult{SessionID: sess.ID, Section: sess.CurrentSection, Question: question}, nil
}

// SubmitAnswer applies one answer to the session. Rejected answers leave the
// session untouched; accepted ones are persisted to the answer trail. When
// the final answer completes the workflow the computed return is in the
// outcome, the session is discarded, and an IT1 filing is queued for the
// background audit pipeline.
func (s *Service) SubmitAnswer(ctx context.Context, sessionID id.SessionID, raw string) (session.Outcome, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return session.Outcome{}, dErrors.New(dErrors.CodeNotFound, "session not found")
		}
		return session.Outcome{}, dErrors.Wrap(dErrors.CodeInternal, err)
	}

	section := sess.CurrentSection
	question, asked := s.machine.NextQuestion(sess)

	outcome := s.machine.Apply(sess, raw, s.now().UTC())
	if outcome.Kind == session.OutcomeValidationError {
		s.metrics.IncrementAnswerRejected()
		return outcome, nil
	}

	if asked {
		s.metrics.IncrementAnswerAccepted()
		if err := s.answers.Append(ctx, store.AnswerRecord{
			PIN:        sess.PIN,
			FilingType: sess.Type,
			Section:    section,
			Field:      question.Field,
			Value:      sess.Answers[section][question.Field],
			SessionID:  sess.ID,
			CreatedAt:  s.now().UTC(),
		}); err != nil {
			// The session already moved on; losing one trail row is logged,
			// not surfaced.
			s.logger.ErrorContext(ctx, "failed to append answer record",
				"error", err,
				"session_id", sess.ID,
			)
		}
	}

	if outcome.Kind != session.OutcomeWorkflowComplete {
		if err := s.sessions.Put(ctx, sess); err != nil {
			return session.Outcome{}, dErrors.Wrap(dErrors.CodeInternal, err)
		}
		return outcome, nil
	}

	s.metrics.IncrementFilingCompleted(string(sess.Type))
	s.logger.InfoContext(ctx, "filing complete",
		"session_id", sess.ID,
		"filing_type", sess.Type,
	)

	if sess.Type == id.FilingIT1 && outcome.IT1 != nil && s.audits != nil {
		s.audits.TryEnqueue(audit.Job{
			PIN:            sess.PIN,
			DeclaredIncome: outcome.IT1.TotalIncome,
			SubmittedAt:    s.now().UTC(),
		})
	}

	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		s.logger.WarnContext(ctx, "failed to delete completed session",
			"error", err,
			"session_id", sess.ID,
		)
	}
	return outcome, nil
}

package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hesabu/internal/audit"
	"hesabu/internal/audit/worker"
	"hesabu/internal/filing/schema"
	"hesabu/internal/filing/session"
	"hesabu/internal/filing/store"
	id "hesabu/pkg/domain"
	dErrors "hesabu/pkg/domain-errors"
)

const testPIN = id.PIN("A123456789P")

func newTestService(t *testing.T) (*Service, session.Store, *store.MemoryStore, *worker.Queue) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	machine := session.NewMachine(schema.New())
	sessions := session.NewMemoryStore()
	answers := store.NewMemoryStore()
	queue := worker.NewQueue(8, logger, nil)
	return New(machine, sessions, answers, queue, logger, nil), sessions, answers, queue
}

// validAnswerFor produces an answer that passes validation for the field,
// following the same naming conventions the validator classifies by.
func validAnswerFor(field string) string {
	name := strings.ToLower(field)
	switch {
	case field == "kra_pin":
		return string(testPIN)
	case strings.Contains(name, "pin"):
		return "A000000000P"
	}
	for _, prefix := range []string{"has_", "is_", "paid_", "declare_", "do_you_", "did_you_"} {
		if strings.HasPrefix(name, prefix) {
			return "No"
		}
	}
	for _, keyword := range []string{"amount", "pay", "income", "value", "paid", "relief", "deposit"} {
		if strings.Contains(name, keyword) {
			return "1000"
		}
	}
	if strings.Contains(name, "date") || strings.Contains(name, "from") || strings.Contains(name, "to") {
		return "2024-01-01"
	}
	return "some text"
}

// drive submits valid answers until the workflow completes.
func drive(t *testing.T, svc *Service, start StartResult) session.Outcome {
	t.Helper()
	ctx := context.Background()
	question := start.Question
	for i := 0; i < 300; i++ {
		outcome, err := svc.SubmitAnswer(ctx, start.SessionID, validAnswerFor(question.Field))
		require.NoError(t, err)
		switch outcome.Kind {
		case session.OutcomeWorkflowComplete:
			return outcome
		case session.OutcomeNextQuestion, session.OutcomeSectionComplete:
			require.NotNil(t, outcome.Question)
			question = *outcome.Question
		default:
			t.Fatalf("unexpected outcome %s for field %s", outcome.Kind, question.Field)
		}
	}
	t.Fatal("workflow did not complete")
	return session.Outcome{}
}

func TestStartReturnsFirstQuestion(t *testing.T) {
	svc, sessions, _, _ := newTestService(t)

	result, err := svc.Start(context.Background(), testPIN, id.FilingIT1)
	require.NoError(t, err)
	assert.False(t, result.SessionID.IsNil())
	assert.Equal(t, "A_PART1", result.Section)
	assert.Equal(t, "kra_pin", result.Question.Field)

	sess, err := sessions.Get(context.Background(), result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, testPIN, sess.PIN)
}

func TestSubmitAnswerUnknownSession(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.SubmitAnswer(context.Background(), id.NewSessionID(), "hello")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestRejectedAnswerIsNotPersisted(t *testing.T) {
	svc, sessions, answers, _ := newTestService(t)
	ctx := context.Background()

	result, err := svc.Start(ctx, testPIN, id.FilingIT1)
	require.NoError(t, err)

	outcome, err := svc.SubmitAnswer(ctx, result.SessionID, "not-a-pin")
	require.NoError(t, err)
	require.Equal(t, session.OutcomeValidationError, outcome.Kind)
	require.NotNil(t, outcome.Invalid)
	assert.Equal(t, "kra_pin", outcome.Invalid.Field)

	trail, err := answers.ListByPIN(ctx, testPIN)
	require.NoError(t, err)
	assert.Empty(t, trail)

	sess, err := sessions.Get(ctx, result.SessionID)
	require.NoError(t, err)
	assert.Empty(t, sess.Answers)
}

func TestAcceptedAnswerAppendsTrail(t *testing.T) {
	svc, _, answers, _ := newTestService(t)
	ctx := context.Background()

	result, err := svc.Start(ctx, testPIN, id.FilingIT1)
	require.NoError(t, err)

	outcome, err := svc.SubmitAnswer(ctx, result.SessionID, string(testPIN))
	require.NoError(t, err)
	assert.Equal(t, session.OutcomeNextQuestion, outcome.Kind)

	trail, err := answers.ListByPIN(ctx, testPIN)
	require.NoError(t, err)
	require.Len(t, trail, 1)
	assert.Equal(t, "A_PART1", trail[0].Section)
	assert.Equal(t, "kra_pin", trail[0].Field)
	assert.Equal(t, string(testPIN), trail[0].Value)
	assert.Equal(t, result.SessionID, trail[0].SessionID)
}

func TestCompletedIT1QueuesAuditJobAndDropsSession(t *testing.T) {
	svc, sessions, _, queue := newTestService(t)
	ctx := context.Background()

	received := make(chan audit.Job, 1)
	runner := runnerFunc(func(_ context.Context, job audit.Job) audit.RunOutcome {
		received <- job
		return audit.RunOutcome{Executed: true}
	})
	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() { _ = worker.New(queue, runner).Run(workerCtx) }()

	result, err := svc.Start(ctx, testPIN, id.FilingIT1)
	require.NoError(t, err)

	outcome := drive(t, svc, result)
	require.NotNil(t, outcome.IT1)

	select {
	case job := <-received:
		assert.Equal(t, testPIN, job.PIN)
		assert.Equal(t, outcome.IT1.TotalIncome, job.DeclaredIncome)
		assert.False(t, job.SubmittedAt.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("audit job was not enqueued")
	}

	_, err = sessions.Get(ctx, result.SessionID)
	require.Error(t, err)
}

func TestCompletedVAT3DoesNotQueueAudit(t *testing.T) {
	svc, _, _, queue := newTestService(t)
	ctx := context.Background()

	received := make(chan audit.Job, 1)
	runner := runnerFunc(func(_ context.Context, job audit.Job) audit.RunOutcome {
		received <- job
		return audit.RunOutcome{Executed: true}
	})
	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() { _ = worker.New(queue, runner).Run(workerCtx) }()

	result, err := svc.Start(ctx, testPIN, id.FilingVAT3)
	require.NoError(t, err)

	outcome := drive(t, svc, result)
	require.NotNil(t, outcome.VAT3)

	select {
	case <-received:
		t.Fatal("VAT3 filings must not trigger the audit pipeline")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNilQueueIsTolerated(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := New(session.NewMachine(schema.New()), session.NewMemoryStore(), store.NewMemoryStore(), nil, logger, nil)

	result, err := svc.Start(context.Background(), testPIN, id.FilingIT1)
	require.NoError(t, err)

	outcome := drive(t, svc, result)
	assert.NotNil(t, outcome.IT1)
}

type runnerFunc func(ctx context.Context, job audit.Job) audit.RunOutcome

func (f runnerFunc) Run(ctx context.Context, job audit.Job) audit.RunOutcome {
	return f(ctx, job)
}

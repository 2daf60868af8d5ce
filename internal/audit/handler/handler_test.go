package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hesabu/internal/audit"
	"hesabu/internal/audit/store"
	"hesabu/internal/officer"
	id "hesabu/pkg/domain"
)

func seedCase(t *testing.T, cases store.Store, pin id.PIN, score int, level id.RiskLevel) {
	t.Helper()
	require.NoError(t, cases.Create(context.Background(), &audit.AuditCase{
		ID:             id.NewCaseID(),
		PIN:            pin,
		Score:          score,
		Level:          level,
		Reason:         "Income discrepancy of KES 4,000,000",
		DeclaredIncome: 1_000_000,
		InferredIncome: 5_000_000,
		Discrepancy:    4_000_000,
		Status:         audit.CaseOpen,
		CreatedAt:      time.Now().UTC(),
	}))
}

func newTestRouter(t *testing.T) (chi.Router, store.Store, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := officer.New("test-signing-key", "okello", string(hash))
	token, err := svc.Login(context.Background(), "okello", "pw")
	require.NoError(t, err)

	cases := store.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	New(cases, svc, logger).Register(r)
	return r, cases, token
}

func get(r chi.Router, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestListAllRequiresToken(t *testing.T) {
	r, _, _ := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/audit/cases/", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/audit/cases/", "garbage").Code)
}

func TestListAllOrderedByScore(t *testing.T) {
	r, cases, token := newTestRouter(t)
	seedCase(t, cases, "A111111111P", 65, id.RiskHigh)
	seedCase(t, cases, "A222222222P", 90, id.RiskHigh)

	rec := get(r, "/audit/cases/", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Cases []audit.AuditCase `json:"cases"`
		Count int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, 90, resp.Cases[0].Score)
	assert.Equal(t, 65, resp.Cases[1].Score)
}

func TestListByPINFiltersLevel(t *testing.T) {
	r, cases, token := newTestRouter(t)
	seedCase(t, cases, "A111111111P", 65, id.RiskHigh)
	seedCase(t, cases, "A111111111P", 45, id.RiskMedium)
	seedCase(t, cases, "A222222222P", 80, id.RiskHigh)

	rec := get(r, "/audit/cases/A111111111P?level=HIGH", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Cases []audit.AuditCase `json:"cases"`
		Count int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, id.PIN("A111111111P"), resp.Cases[0].PIN)
	assert.Equal(t, id.RiskHigh, resp.Cases[0].Level)
}

func TestListByPINUnknownPINReturnsEmpty(t *testing.T) {
	r, _, token := newTestRouter(t)

	rec := get(r, "/audit/cases/A999999999P", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":0`)
}

func TestListByPINRejectsBadInput(t *testing.T) {
	r, _, token := newTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, get(r, "/audit/cases/not-a-pin", token).Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/audit/cases/A111111111P?level=EXTREME", token).Code)
}

package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hesabu/internal/officer"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := officer.New("test-signing-key", "okello", string(hash))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	New(svc, logger).Register(r)
	return r
}

func postLogin(t *testing.T, r chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/officer/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoginSuccess(t *testing.T) {
	r := newTestRouter(t)

	rec := postLogin(t, r, `{"username":"okello","password":"correct-horse"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
}

func TestLoginBadCredentials(t *testing.T) {
	r := newTestRouter(t)

	rec := postLogin(t, r, `{"username":"okello","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginMissingFields(t *testing.T) {
	r := newTestRouter(t)

	rec := postLogin(t, r, `{"username":"okello"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginMalformedBody(t *testing.T) {
	r := newTestRouter(t)

	rec := postLogin(t, r, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginRequiresJSONContentType(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/officer/login", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

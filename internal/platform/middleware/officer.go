package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// OfficerClaims represents the claims we expect from the token validator.
type OfficerClaims struct {
	Username string
	Role     string
}

// TokenValidator validates an officer bearer token.
type TokenValidator interface {
	ValidateToken(tokenString string) (*OfficerClaims, error)
}

type contextKeyOfficer struct{}

// ContextKeyOfficer is exported for use in handlers
var ContextKeyOfficer = contextKeyOfficer{}

// GetOfficer retrieves the authenticated officer username from the context.
func GetOfficer(ctx context.Context) string {
	username, ok := ctx.Value(ContextKeyOfficer).(string)
	if !ok {
		return ""
	}
	return username
}

// RequireOfficer guards the audit review endpoints: a valid bearer token with
// the officer role is required.
func RequireOfficer(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", GetRequestID(ctx),
				)
				writeUnauthorized(w, "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil || claims.Role != "officer" {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(ctx),
				)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx = context.WithValue(ctx, ContextKeyOfficer, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}

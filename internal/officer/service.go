// Package officer authenticates revenue officers for the audit review
// surface. Credentials are configured at deploy time; a successful login
// issues a short-lived HS256 token carrying the officer role.
package officer

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hesabu/internal/platform/middleware"
	dErrors "hesabu/pkg/domain-errors"
)

const tokenLifetime = 8 * time.Hour

// Claims represents the JWT claims for officer access tokens.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Service handles officer login and token validation.
type Service struct {
	signingKey   []byte
	username     string
	passwordHash []byte
	now          func() time.Time
}

// New constructs the officer service. passwordHash is a bcrypt hash of the
// officer password.
func New(signingKey, username, passwordHash string) *Service {
	return &Service{
		signingKey:   []byte(signingKey),
		username:     username,
		passwordHash: []byte(passwordHash),
		now:          time.Now,
	}
}

// Login verifies the credentials and issues a signed token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(_ context.Context, username, password string) (string, error) {
	if s.username == "" || username != s.username {
		return "", dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: username,
		Role:     "officer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "hesabu",
			ID:        uuid.NewString(),
		},
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.New(dErrors.CodeInternal, "sign token")
	}
	return signed, nil
}

// ValidateToken checks signature and expiry and returns the officer claims.
func (s *Service) ValidateToken(tokenString string) (*middleware.OfficerClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	if !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	return &middleware.OfficerClaims{Username: claims.Username, Role: claims.Role}, nil
}

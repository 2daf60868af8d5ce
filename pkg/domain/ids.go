package domain

import (
	"regexp"

	"github.com/google/uuid"

	dErrors "hesabu/pkg/domain-errors"
)

// Typed identifiers keep session, case, and taxpayer handles from being mixed
// up at compile time. Parse functions enforce format at trust boundaries.

// PIN is a taxpayer identifier in KRA format: one 'A', nine digits, one 'P'.
type PIN string

var pinPattern = regexp.MustCompile(`^A\d{9}P$`)

// ParsePIN validates the fixed PIN format.
func ParsePIN(raw string) (PIN, error) {
	if !pinPattern.MatchString(raw) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid KRA PIN format, expected A#########P")
	}
	return PIN(raw), nil
}

func (p PIN) String() string { return string(p) }

// SessionID identifies one filing session.
type SessionID uuid.UUID

func NewSessionID() SessionID { return SessionID(uuid.New()) }

func ParseSessionID(raw string) (SessionID, error) {
	u, err := uuid.Parse(raw)
	if err != nil || u == uuid.Nil {
		return SessionID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid session id")
	}
	return SessionID(u), nil
}

func (s SessionID) String() string { return uuid.UUID(s).String() }
func (s SessionID) IsNil() bool    { return uuid.UUID(s) == uuid.Nil }

func (s SessionID) MarshalText() ([]byte, error) { return uuid.UUID(s).MarshalText() }

func (s *SessionID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(s).UnmarshalText(b)
}

// CaseID identifies a persisted audit case.
type CaseID uuid.UUID

func NewCaseID() CaseID { return CaseID(uuid.New()) }

func (c CaseID) String() string { return uuid.UUID(c).String() }
func (c CaseID) IsNil() bool    { return uuid.UUID(c) == uuid.Nil }

func (c CaseID) MarshalText() ([]byte, error) { return uuid.UUID(c).MarshalText() }

func (c *CaseID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(c).UnmarshalText(b)
}

// Package session holds the live state of one filing workflow and the pure
// transition logic that walks it: next-question selection, answer application
// and section advancement, ending in the final computation.
package session

import (
	"time"

	"hesabu/internal/filing/compute"
	"hesabu/internal/filing/schema"
	id "hesabu/pkg/domain"
)

// Session is the mutable state of one in-progress filing. A session is bound
// to a single filing type for its whole lifetime; Answers is keyed by section
// then field and only ever grows.
type Session struct {
	ID             id.SessionID                 `json:"id"`
	PIN            id.PIN                       `json:"pin"`
	Type           id.FilingType                `json:"type"`
	CurrentSection string                       `json:"current_section"`
	Pending        []string                     `json:"pending,omitempty"`
	Answers        map[string]map[string]string `json:"answers"`
	CreatedAt      time.Time                    `json:"created_at"`
	UpdatedAt      time.Time                    `json:"updated_at"`
}

// New opens a session positioned at the first section of the filing type.
func New(pin id.PIN, ft id.FilingType, first string, now time.Time) *Session {
	return &Session{
		ID:             id.NewSessionID(),
		PIN:            pin,
		Type:           ft,
		CurrentSection: first,
		Answers:        make(map[string]map[string]string),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// record stores an accepted answer under the current section.
func (s *Session) record(field, value string) {
	if s.Answers[s.CurrentSection] == nil {
		s.Answers[s.CurrentSection] = make(map[string]string)
	}
	s.Answers[s.CurrentSection][field] = value
}

// collected reports whether a section holds at least one answer.
func (s *Session) collected(sectionID string) bool {
	return len(s.Answers[sectionID]) > 0
}

// OutcomeKind tags which variant of Outcome is populated.
type OutcomeKind string

const (
	// OutcomeValidationError rejects the answer; the session is unchanged
	// and the same question is asked again.
	OutcomeValidationError OutcomeKind = "VALIDATION_ERROR"
	// OutcomeNextQuestion accepted the answer and asks the next question in
	// the same section.
	OutcomeNextQuestion OutcomeKind = "NEXT_QUESTION"
	// OutcomeSectionComplete accepted the answer, finished the section and
	// opens the next one with its first question.
	OutcomeSectionComplete OutcomeKind = "SECTION_COMPLETE"
	// OutcomeWorkflowComplete accepted the final answer and carries the
	// computed return.
	OutcomeWorkflowComplete OutcomeKind = "WORKFLOW_COMPLETE"
)

// ValidationError explains a rejected answer.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Outcome is the tagged result of applying one answer. Exactly the fields for
// its Kind are set.
type Outcome struct {
	Kind     OutcomeKind          `json:"kind"`
	Section  string               `json:"section,omitempty"`
	Question *schema.Question     `json:"question,omitempty"`
	Invalid  *ValidationError     `json:"invalid,omitempty"`
	IT1      *compute.IT1Result   `json:"it1_result,omitempty"`
	VAT3     *compute.VAT3Result  `json:"vat3_result,omitempty"`
}

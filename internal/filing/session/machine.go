package session

import (
	"strings"
	"time"

	"hesabu/internal/filing/compute"
	"hesabu/internal/filing/schema"
	"hesabu/internal/filing/validate"
	id "hesabu/pkg/domain"
)

// Machine applies answers to sessions against the static schema. It holds no
// per-session state and is safe for concurrent use.
type Machine struct {
	registry *schema.Registry
}

func NewMachine(registry *schema.Registry) *Machine {
	return &Machine{registry: registry}
}

// Start opens a session at the first section and returns its opening question.
func (m *Machine) Start(pin id.PIN, ft id.FilingType, now time.Time) (*Session, schema.Question) {
	sess := New(pin, ft, m.registry.First(ft), now)
	question, _ := m.NextQuestion(sess)
	return sess, question
}

// NextQuestion returns the first unanswered question of the current section:
// the unconditional list first, then any conditional group whose trigger
// answer matches. Returns false when the section is fully collected.
func (m *Machine) NextQuestion(sess *Session) (schema.Question, bool) {
	section, ok := m.registry.Get(sess.Type, sess.CurrentSection)
	if !ok {
		return schema.Question{}, false
	}
	collected := sess.Answers[section.ID]

	for _, q := range section.Questions {
		if _, done := collected[q.Field]; !done {
			return q, true
		}
	}
	// Conditional groups, in the order their trigger questions appear.
	for _, trigger := range section.Questions {
		byValue, ok := section.Conditional[trigger.Field]
		if !ok {
			continue
		}
		answer := collected[trigger.Field]
		for value, questions := range byValue {
			if !strings.EqualFold(strings.TrimSpace(answer), value) {
				continue
			}
			for _, q := range questions {
				if _, done := collected[q.Field]; !done {
					return q, true
				}
			}
		}
	}
	return schema.Question{}, false
}

// Apply validates raw against the current question and advances the session.
// A rejected answer leaves the session untouched. An accepted answer is
// recorded; when it closes the section the transition table decides what
// comes next, and a terminal transition yields the computed return.
func (m *Machine) Apply(sess *Session, raw string, now time.Time) Outcome {
	question, ok := m.NextQuestion(sess)
	if !ok {
		// The current section is already complete; resume advancement. This
		// happens only if a previous caller dropped the outcome.
		return m.advance(sess, now)
	}

	result := validate.Validate(question.Field, raw)
	if !result.OK {
		return Outcome{
			Kind:    OutcomeValidationError,
			Section: sess.CurrentSection,
			Invalid: &ValidationError{Field: question.Field, Reason: result.Err},
		}
	}

	sess.record(question.Field, result.Value)
	sess.UpdatedAt = now

	if next, ok := m.NextQuestion(sess); ok {
		return Outcome{Kind: OutcomeNextQuestion, Section: sess.CurrentSection, Question: &next}
	}
	return m.advance(sess, now)
}

// advance walks the transition table from the current section until it lands
// on a section with an open question or the workflow terminates. Sections
// whose answers are already present are passed through without re-asking.
func (m *Machine) advance(sess *Session, now time.Time) Outcome {
	for {
		rule, ok := m.registry.Transition(sess.Type, sess.CurrentSection)
		if !ok {
			return m.complete(sess)
		}

		var target string
		switch rule.Kind {
		case schema.RuleNext:
			target = rule.Next

		case schema.RuleBranch:
			if isYes(sess.Answers[rule.LookupSection][rule.FlagField]) {
				target = rule.IfYes
			} else {
				target = rule.IfNo
			}

		case schema.RuleQueue:
			sess.Pending = sess.Pending[:0]
			for _, entry := range rule.Entries {
				if !isYes(sess.Answers[entry.LookupSection][entry.FlagField]) {
					continue
				}
				if sess.collected(entry.SectionID) {
					continue
				}
				sess.Pending = append(sess.Pending, entry.SectionID)
			}
			next, ok := popPending(sess)
			if !ok {
				return m.complete(sess)
			}
			target = next

		case schema.RulePop:
			next, ok := popPending(sess)
			if !ok {
				return m.complete(sess)
			}
			target = next

		case schema.RuleTerminal:
			return m.complete(sess)
		}

		sess.CurrentSection = target
		sess.UpdatedAt = now
		if question, ok := m.NextQuestion(sess); ok {
			return Outcome{Kind: OutcomeSectionComplete, Section: target, Question: &question}
		}
		// Everything in the target is already collected; keep walking.
	}
}

func (m *Machine) complete(sess *Session) Outcome {
	outcome := Outcome{Kind: OutcomeWorkflowComplete}
	switch sess.Type {
	case id.FilingIT1:
		result := compute.ComputeIT1(sess.Answers)
		outcome.IT1 = &result
	case id.FilingVAT3:
		result := compute.ComputeVAT3(sess.Answers)
		outcome.VAT3 = &result
	}
	return outcome
}

func popPending(sess *Session) (string, bool) {
	if len(sess.Pending) == 0 {
		return "", false
	}
	next := sess.Pending[0]
	sess.Pending = sess.Pending[1:]
	return next, true
}

func isYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

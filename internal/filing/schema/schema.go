// Package schema holds the static form definitions for both filing types and
// the table-driven section-transition rules the state machine walks. All data
// here is immutable and loaded once.
package schema

import id "hesabu/pkg/domain"

// Question is one field prompt within a section.
type Question struct {
	Field string
	Text  string
}

// Section is an ordered group of questions. Conditional maps a previously
// collected field name to trigger values, each unlocking additional questions
// once the trigger answer matches.
type Section struct {
	ID          string
	Questions   []Question
	Conditional map[string]map[string][]Question
}

// RuleKind tags the transition rule applied when a section completes.
type RuleKind int

const (
	// RuleNext moves unconditionally to Next.
	RuleNext RuleKind = iota
	// RuleBranch inspects FlagField in LookupSection: "yes" goes to IfYes,
	// anything else to IfNo.
	RuleBranch
	// RuleQueue builds the pending-section queue from Entries (skipping
	// sections already collected), then pops it; an empty queue terminates.
	RuleQueue
	// RulePop pops the next pending section; an empty queue terminates.
	RulePop
	// RuleTerminal completes the workflow and hands off to computation.
	RuleTerminal
)

// QueueEntry is one optional section with its trigger flag.
type QueueEntry struct {
	SectionID     string
	LookupSection string
	FlagField     string
}

// Rule is one row of the per-filing-type transition table.
type Rule struct {
	Kind          RuleKind
	Next          string
	LookupSection string
	FlagField     string
	IfYes         string
	IfNo          string
	Entries       []QueueEntry
}

// Registry exposes the static schema for both filing types.
type Registry struct {
	sections    map[id.FilingType]map[string]Section
	transitions map[id.FilingType]map[string]Rule
	first       map[id.FilingType]string
}

// New loads the fixed IT1 and VAT3 definitions.
func New() *Registry {
	return &Registry{
		sections: map[id.FilingType]map[string]Section{
			id.FilingIT1:  it1Sections(),
			id.FilingVAT3: vat3Sections(),
		},
		transitions: map[id.FilingType]map[string]Rule{
			id.FilingIT1:  it1Transitions(),
			id.FilingVAT3: vat3Transitions(),
		},
		first: map[id.FilingType]string{
			id.FilingIT1:  "A_PART1",
			id.FilingVAT3: "VAT_A",
		},
	}
}

// Get returns the definition of one section.
func (r *Registry) Get(ft id.FilingType, sectionID string) (Section, bool) {
	s, ok := r.sections[ft][sectionID]
	return s, ok
}

// First returns the opening section for a filing type.
func (r *Registry) First(ft id.FilingType) string {
	return r.first[ft]
}

// Transition returns the rule applied when sectionID completes.
func (r *Registry) Transition(ft id.FilingType, sectionID string) (Rule, bool) {
	rule, ok := r.transitions[ft][sectionID]
	return rule, ok
}

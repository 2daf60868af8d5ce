// Package compute derives the final return figures from a completed answer
// set. All computations are pure functions over the collected answers; missing
// or non-numeric values contribute zero rather than failing the return.
package compute

import (
	"strconv"
	"strings"
)

// Answers is the collected state of a completed workflow, keyed by section
// then field. Values are the normalized strings the validator accepted.
type Answers map[string]map[string]string

// amount reads a numeric field, treating absence, blank values and Yes/No
// flag answers as zero. Unparsable leftovers also read as zero so that one
// stray answer cannot sink the whole computation.
func amount(answers Answers, section, field string) float64 {
	raw, ok := answers[section][field]
	if !ok {
		return 0
	}
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "yes", "no", "y", "n":
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

// Package validate checks one raw answer against a field's semantic type.
// All functions are pure and total over string inputs; classification is
// driven by field naming conventions shared with the schema registry.
package validate

import (
	"regexp"
	"strconv"
	"strings"
)

// Result is the outcome of validating a single raw answer. Either the value is
// accepted (possibly normalized) or rejected with a reason; never both.
type Result struct {
	OK    bool
	Value string
	Err   string
}

func accept(value string) Result  { return Result{OK: true, Value: value} }
func reject(reason string) Result { return Result{Err: reason} }

var (
	pinPattern  = regexp.MustCompile(`^A\d{9}P$`)
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	nonNumeric  = regexp.MustCompile(`[^\d.]`)
)

// Flag fields are collected verbatim; downstream comparisons are
// case-insensitive equality against "yes".
var flagPrefixes = []string{"has_", "is_", "paid_", "declare_", "do_you_", "did_you_"}

var monetaryKeywords = []string{"amount", "pay", "income", "value", "paid", "relief", "deposit"}

// Validate classifies fieldName and checks raw against that class.
// Order matters: the flag check precedes the monetary check so that a field
// like has_other_income is treated as a flag, not an amount.
func Validate(fieldName, raw string) Result {
	name := strings.ToLower(fieldName)

	// Only the primary taxpayer identifier is format-checked; auxiliary PIN
	// fields (employer, landlord, withholder) are captured as given.
	if fieldName == "kra_pin" {
		return validatePIN(raw)
	}
	if strings.Contains(name, "pin") {
		return accept(raw)
	}

	for _, prefix := range flagPrefixes {
		if strings.HasPrefix(name, prefix) {
			return accept(raw)
		}
	}

	for _, keyword := range monetaryKeywords {
		if strings.Contains(name, keyword) {
			return validateAmount(raw)
		}
	}

	if strings.Contains(name, "date") || strings.Contains(name, "from") || strings.Contains(name, "to") {
		return validateDate(raw)
	}

	return accept(raw)
}

func validatePIN(raw string) Result {
	if !pinPattern.MatchString(raw) {
		return reject("Invalid KRA PIN format. Expected format: A#########P")
	}
	return accept(raw)
}

// validateAmount strips currency symbols and separators, then requires a
// non-negative parseable number.
func validateAmount(raw string) Result {
	cleaned := nonNumeric.ReplaceAllString(raw, "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return reject("Invalid amount format")
	}
	if value < 0 {
		return reject("Amount cannot be negative")
	}
	return accept(strconv.FormatFloat(value, 'f', -1, 64))
}

// validateDate requires the exact YYYY-MM-DD shape with bounded components.
// There is deliberately no calendar check: day 31 passes for any month.
func validateDate(raw string) Result {
	if !datePattern.MatchString(raw) {
		return reject("Invalid date format. Expected YYYY-MM-DD")
	}
	year, _ := strconv.Atoi(raw[0:4])
	month, _ := strconv.Atoi(raw[5:7])
	day, _ := strconv.Atoi(raw[8:10])
	switch {
	case year < 1900 || year > 2100:
		return reject("Year must be between 1900 and 2100")
	case month < 1 || month > 12:
		return reject("Month must be between 1 and 12")
	case day < 1 || day > 31:
		return reject("Day must be between 1 and 31")
	}
	return accept(raw)
}

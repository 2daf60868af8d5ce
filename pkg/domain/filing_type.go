package domain

import dErrors "hesabu/pkg/domain-errors"

// FilingType is one of the two supported return kinds.
type FilingType string

const (
	FilingIT1  FilingType = "IT1"  // individual resident income tax return
	FilingVAT3 FilingType = "VAT3" // monthly VAT return
)

// ParseFilingType validates a filing type at the API boundary.
func ParseFilingType(raw string) (FilingType, error) {
	switch FilingType(raw) {
	case FilingIT1, FilingVAT3:
		return FilingType(raw), nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "unknown filing type, expected IT1 or VAT3")
}

// RiskLevel classifies an audit risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// ParseRiskLevel validates an optional level filter; empty means no filter.
func ParseRiskLevel(raw string) (RiskLevel, error) {
	switch RiskLevel(raw) {
	case "", RiskLow, RiskMedium, RiskHigh:
		return RiskLevel(raw), nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "unknown risk level")
}

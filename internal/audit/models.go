// Package audit holds the shared types of the silent risk pipeline: the job
// handed off at filing completion, the aggregated wealth profile, and the
// persisted audit case.
package audit

import (
	"time"

	id "hesabu/pkg/domain"
)

// Job is one risk-analysis request, enqueued when an income tax filing
// completes. DeclaredIncome is the total income the taxpayer declared.
type Job struct {
	PIN            id.PIN
	DeclaredIncome float64
	SubmittedAt    time.Time
}

// BankSummary aggregates a taxpayer's bank activity. TotalInflows counts
// credit transactions only.
type BankSummary struct {
	TotalInflows     float64 `json:"total_inflows"`
	TransactionCount int     `json:"transaction_count"`
	HasData          bool    `json:"has_data"`
}

// MpesaSummary aggregates mobile-money activity; TotalReceived counts
// received transfers only.
type MpesaSummary struct {
	TotalReceived    float64 `json:"total_received"`
	TransactionCount int     `json:"transaction_count"`
	HasData          bool    `json:"has_data"`
}

// AssetSummary aggregates registered assets (vehicles or properties).
type AssetSummary struct {
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
	HasData    bool    `json:"has_data"`
}

// ImportSummary aggregates customs import records.
type ImportSummary struct {
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
	HasData    bool    `json:"has_data"`
}

// TelcoSummary aggregates telco billing. It signals economic activity but
// contributes to neither inferred income nor the score.
type TelcoSummary struct {
	MonthsTracked int     `json:"months_tracked"`
	TotalBills    float64 `json:"total_bills"`
	HasData       bool    `json:"has_data"`
}

// WealthProfile unions all six truth-data sources for one taxpayer.
type WealthProfile struct {
	PIN        id.PIN        `json:"pin"`
	Bank       BankSummary   `json:"bank"`
	Mpesa      MpesaSummary  `json:"mpesa"`
	Vehicles   AssetSummary  `json:"vehicles"`
	Properties AssetSummary  `json:"properties"`
	Imports    ImportSummary `json:"imports"`
	Telco      TelcoSummary  `json:"telco"`
}

// HasAnyData reports whether at least one source held records for the PIN.
// A profile with no data short-circuits the analysis to LOW with score 0.
func (p WealthProfile) HasAnyData() bool {
	return p.Bank.HasData ||
		p.Mpesa.HasData ||
		p.Vehicles.HasData ||
		p.Properties.HasData ||
		p.Imports.HasData ||
		p.Telco.HasData
}

// CaseStatus is the workflow state of an audit case.
type CaseStatus string

// CaseOpen is the only status assigned at creation; officers move cases
// onward outside this system.
const CaseOpen CaseStatus = "OPEN"

// AuditCase is the persisted record of a high-risk finding.
type AuditCase struct {
	ID             id.CaseID    `json:"id"`
	PIN            id.PIN       `json:"pin"`
	Score          int          `json:"score"`
	Level          id.RiskLevel `json:"level"`
	Reason         string       `json:"reason"`
	DeclaredIncome float64      `json:"declared_income"`
	InferredIncome float64      `json:"inferred_income"`
	Discrepancy    float64      `json:"discrepancy"`
	Status         CaseStatus   `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
}

// RunOutcome summarizes one pipeline execution for logging and metrics. It is
// never surfaced to the filing caller.
type RunOutcome struct {
	Executed    bool
	CaseCreated bool
	Level       id.RiskLevel
	Score       int
}

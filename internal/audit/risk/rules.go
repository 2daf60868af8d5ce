// Package risk holds the pure scoring rules of the audit pipeline. Every
// function is deterministic over its inputs; the service layer supplies the
// profile and persists the verdict.
package risk

import (
	"fmt"
	"strings"

	"hesabu/internal/audit"
	id "hesabu/pkg/domain"
)

const maxScore = 100

// InferredIncome estimates income from money movement: bank credit inflows
// plus mobile-money receipts. Asset sources indicate wealth, not income, and
// are scored separately.
func InferredIncome(profile audit.WealthProfile) float64 {
	var inferred float64
	if profile.Bank.HasData {
		inferred += profile.Bank.TotalInflows
	}
	if profile.Mpesa.HasData {
		inferred += profile.Mpesa.TotalReceived
	}
	return inferred
}

// DiscrepancyPct is the gap between inferred and declared income as a
// percentage of declared. A zero declared income with any inferred income
// reads as a 100% discrepancy.
func DiscrepancyPct(declared, inferred float64) float64 {
	if declared <= 0 {
		return 100
	}
	return (inferred - declared) / declared * 100
}

// Score combines the income discrepancy with asset ownership into a 0-100
// risk score. Each factor contributes at most one tier; the total is clamped.
func Score(declared, inferred float64, profile audit.WealthProfile) int {
	score := 0

	switch pct := DiscrepancyPct(declared, inferred); {
	case pct > 200:
		score += 40
	case pct > 100:
		score += 30
	case pct > 50:
		score += 20
	case pct > 20:
		score += 10
	}

	if profile.Vehicles.HasData {
		switch {
		case profile.Vehicles.TotalValue > 20000000:
			score += 25
		case profile.Vehicles.TotalValue > 10000000:
			score += 15
		case profile.Vehicles.Count >= 2:
			score += 10
		}
	}

	if profile.Properties.HasData {
		switch {
		case profile.Properties.TotalValue > 50000000:
			score += 25
		case profile.Properties.TotalValue > 20000000:
			score += 15
		case profile.Properties.Count >= 3:
			score += 10
		}
	}

	if profile.Imports.HasData && profile.Imports.TotalValue > 5000000 {
		score += 15
	}

	if declared == 0 && inferred > 1000000 {
		score += 20
	}

	return min(score, maxScore)
}

// Level maps a score to its band: 61 and above is HIGH, 31 and above MEDIUM.
func Level(score int) id.RiskLevel {
	switch {
	case score >= 61:
		return id.RiskHigh
	case score >= 31:
		return id.RiskMedium
	default:
		return id.RiskLow
	}
}

// Reason renders the findings as a pipe-joined human-readable string for the
// audit case record.
func Reason(declared, inferred float64, profile audit.WealthProfile) string {
	var reasons []string

	if discrepancy := inferred - declared; discrepancy > 0 {
		reasons = append(reasons,
			fmt.Sprintf("Income discrepancy of KES %s", formatAmount(discrepancy)),
			fmt.Sprintf("Declared: KES %s, Inferred from sources: KES %s",
				formatAmount(declared), formatAmount(inferred)),
		)
	}
	if profile.Bank.HasData {
		reasons = append(reasons, fmt.Sprintf("Bank inflows: KES %s", formatAmount(profile.Bank.TotalInflows)))
	}
	if profile.Mpesa.HasData {
		reasons = append(reasons, fmt.Sprintf("M-Pesa receipts: KES %s", formatAmount(profile.Mpesa.TotalReceived)))
	}
	if profile.Vehicles.HasData {
		reasons = append(reasons, fmt.Sprintf("Owns %d vehicle(s) valued at KES %s",
			profile.Vehicles.Count, formatAmount(profile.Vehicles.TotalValue)))
	}
	if profile.Properties.HasData {
		reasons = append(reasons, fmt.Sprintf("Owns %d propert(ies) valued at KES %s",
			profile.Properties.Count, formatAmount(profile.Properties.TotalValue)))
	}
	if profile.Imports.HasData {
		reasons = append(reasons, fmt.Sprintf("Import records totaling KES %s", formatAmount(profile.Imports.TotalValue)))
	}

	return strings.Join(reasons, " | ")
}

// formatAmount renders a KES amount with thousands separators and no decimals.
func formatAmount(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}
	digits := fmt.Sprintf("%.0f", value)

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

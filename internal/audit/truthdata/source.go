// Package truthdata aggregates external records about a taxpayer into a
// wealth profile. Sources are independent registries (bank, mobile money,
// vehicle and land registries, customs, telco); absence of records is a
// normal answer, not an error.
package truthdata

import (
	"context"

	"hesabu/internal/audit"
	id "hesabu/pkg/domain"
)

// Source reads one taxpayer's records from the six truth-data registries.
//
// Error Contract:
// Each method returns the zero summary with HasData=false when the PIN has no
// records; errors are reserved for infrastructure failures.
type Source interface {
	BankSummary(ctx context.Context, pin id.PIN) (audit.BankSummary, error)
	MpesaSummary(ctx context.Context, pin id.PIN) (audit.MpesaSummary, error)
	VehicleSummary(ctx context.Context, pin id.PIN) (audit.AssetSummary, error)
	PropertySummary(ctx context.Context, pin id.PIN) (audit.AssetSummary, error)
	ImportSummary(ctx context.Context, pin id.PIN) (audit.ImportSummary, error)
	TelcoSummary(ctx context.Context, pin id.PIN) (audit.TelcoSummary, error)
}

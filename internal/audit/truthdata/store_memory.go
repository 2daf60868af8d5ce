package truthdata

import (
	"context"
	"sync"

	"hesabu/internal/audit"
	id "hesabu/pkg/domain"
)

// MemorySource serves seeded wealth profiles from memory, for tests/dev.
// Unseeded PINs read as no-data across every source.
type MemorySource struct {
	mu       sync.RWMutex
	profiles map[id.PIN]audit.WealthProfile
}

// NewMemorySource constructs an empty in-memory source store.
func NewMemorySource() *MemorySource {
	return &MemorySource{profiles: make(map[id.PIN]audit.WealthProfile)}
}

// Seed installs the full profile for one PIN, replacing any previous seed.
func (s *MemorySource) Seed(pin id.PIN, profile audit.WealthProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile.PIN = pin
	s.profiles[pin] = profile
}

func (s *MemorySource) BankSummary(_ context.Context, pin id.PIN) (audit.BankSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[pin].Bank, nil
}

func (s *MemorySource) MpesaSummary(_ context.Context, pin id.PIN) (audit.MpesaSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[pin].Mpesa, nil
}

func (s *MemorySource) VehicleSummary(_ context.Context, pin id.PIN) (audit.AssetSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[pin].Vehicles, nil
}

func (s *MemorySource) PropertySummary(_ context.Context, pin id.PIN) (audit.AssetSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[pin].Properties, nil
}

func (s *MemorySource) ImportSummary(_ context.Context, pin id.PIN) (audit.ImportSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[pin].Imports, nil
}

func (s *MemorySource) TelcoSummary(_ context.Context, pin id.PIN) (audit.TelcoSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[pin].Telco, nil
}

package truthdata

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"hesabu/internal/audit"
	"hesabu/internal/audit/metrics"
	id "hesabu/pkg/domain"
)

const fetchTimeout = 10 * time.Second

// Aggregator fans out to all six truth-data sources and unions the results
// into a WealthProfile.
type Aggregator struct {
	source  Source
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewAggregator constructs an aggregator over one source store.
func NewAggregator(source Source, logger *slog.Logger, m *metrics.Metrics) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{source: source, logger: logger, metrics: m}
}

// BuildProfile fetches all six sources concurrently. A failed source degrades
// to an empty summary with HasData=false rather than failing the profile; the
// failure is logged and the remaining sources still contribute. The union is
// order-independent.
func (a *Aggregator) BuildProfile(ctx context.Context, pin id.PIN) audit.WealthProfile {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	profile := audit.WealthProfile{PIN: pin}

	g.Go(a.fetch(ctx, pin, "bank", func() error {
		summary, err := a.source.BankSummary(ctx, pin)
		if err != nil {
			return err
		}
		profile.Bank = summary
		return nil
	}))
	g.Go(a.fetch(ctx, pin, "mpesa", func() error {
		summary, err := a.source.MpesaSummary(ctx, pin)
		if err != nil {
			return err
		}
		profile.Mpesa = summary
		return nil
	}))
	g.Go(a.fetch(ctx, pin, "vehicles", func() error {
		summary, err := a.source.VehicleSummary(ctx, pin)
		if err != nil {
			return err
		}
		profile.Vehicles = summary
		return nil
	}))
	g.Go(a.fetch(ctx, pin, "properties", func() error {
		summary, err := a.source.PropertySummary(ctx, pin)
		if err != nil {
			return err
		}
		profile.Properties = summary
		return nil
	}))
	g.Go(a.fetch(ctx, pin, "imports", func() error {
		summary, err := a.source.ImportSummary(ctx, pin)
		if err != nil {
			return err
		}
		profile.Imports = summary
		return nil
	}))
	g.Go(a.fetch(ctx, pin, "telco", func() error {
		summary, err := a.source.TelcoSummary(ctx, pin)
		if err != nil {
			return err
		}
		profile.Telco = summary
		return nil
	}))

	// Errors never escape the per-source wrappers, so Wait only synchronizes.
	_ = g.Wait()
	return profile
}

// fetch wraps one source call with latency observation and degradation: the
// summary stays at its zero value (HasData=false) when the call fails.
func (a *Aggregator) fetch(ctx context.Context, pin id.PIN, name string, call func() error) func() error {
	return func() error {
		start := time.Now()
		err := call()
		a.metrics.ObserveSourceLatency(name, time.Since(start))
		if err != nil {
			a.logger.WarnContext(ctx, "truth-data source failed, degrading",
				"source", name,
				"pin", pin.String(),
				"error", err,
			)
		}
		return nil
	}
}

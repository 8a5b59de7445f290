package bankdir

import (
	"context"
	"time"

	"fincode/internal/platform/metrics"
	"fincode/pkg/bic"
)

// Instrumented decorates a directory with lookup latency metrics. The
// backend label names the wrapped layer ("memory", "postgres", "redis").
type Instrumented struct {
	inner   bic.Directory
	backend string
	metrics *metrics.Metrics
}

// NewInstrumented wraps inner, recording the duration of every lookup under
// the given backend label. A nil Metrics makes the wrapper a pass-through.
func NewInstrumented(inner bic.Directory, backend string, m *metrics.Metrics) *Instrumented {
	return &Instrumented{inner: inner, backend: backend, metrics: m}
}

func (d *Instrumented) BankEntries(ctx context.Context, countryCode, bankCode string) ([]bic.BankEntry, error) {
	start := time.Now()
	entries, err := d.inner.BankEntries(ctx, countryCode, bankCode)
	d.metrics.ObserveDirectoryLatency(d.backend, time.Since(start))
	return entries, err
}

func (d *Instrumented) EntriesByBIC(ctx context.Context, code string) ([]bic.BankEntry, error) {
	start := time.Now()
	entries, err := d.inner.EntriesByBIC(ctx, code)
	d.metrics.ObserveDirectoryLatency(d.backend, time.Since(start))
	return entries, err
}

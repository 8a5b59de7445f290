package bankdir

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincode/internal/platform/metrics"
)

func TestInstrumentedDirectory(t *testing.T) {
	ctx := context.Background()
	// Registered once for the whole test binary; promauto panics on
	// duplicate registration.
	m := metrics.New()
	dir := NewInstrumented(NewMemory(Seed()), "memory", m)

	t.Run("delegates lookups unchanged", func(t *testing.T) {
		entries, err := dir.BankEntries(ctx, "FR", "30004")
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "BNPAFRPP", entries[0].BIC)

		byBIC, err := dir.EntriesByBIC(ctx, "COBADEFF")
		require.NoError(t, err)
		require.Len(t, byBIC, 1)
		assert.Equal(t, "37040044", byBIC[0].BankCode)
	})

	t.Run("lookups record latency under the backend label", func(t *testing.T) {
		before := testutil.CollectAndCount(m.DirectoryLatency)

		// A fresh label only gains a series once a lookup observes into it.
		wrapped := NewInstrumented(NewMemory(Seed()), "redis", m)
		_, err := wrapped.BankEntries(ctx, "DE", "37040044")
		require.NoError(t, err)

		assert.Equal(t, before+1, testutil.CollectAndCount(m.DirectoryLatency))
	})

	t.Run("nil metrics is a pass-through", func(t *testing.T) {
		bare := NewInstrumented(NewMemory(Seed()), "memory", nil)
		entries, err := bare.BankEntries(ctx, "FR", "30004")
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})
}

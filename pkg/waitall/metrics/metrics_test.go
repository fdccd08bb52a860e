package metrics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/waitall/pkg/waitall/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_CountsOutcomes(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg, "test")
	require.NoError(t, err)

	c.CallFinished(core.Summary{Operations: 3, Collected: 3, Outcome: core.AllDone, Elapsed: 5 * time.Millisecond})
	c.CallFinished(core.Summary{Operations: 3, Collected: 2, Outcome: core.TimedOut, Elapsed: 100 * time.Millisecond})
	c.CallFinished(core.Summary{Outcome: core.TimedOut})
	c.LateCompletion(uuid.New())

	assert.Equal(t, float64(1), testutil.ToFloat64(c.calls.WithLabelValues("all_done")))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.calls.WithLabelValues("timed_out")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.late))
	assert.Equal(t, 2, testutil.CollectAndCount(c.waits))
	assert.Equal(t, 1, testutil.CollectAndCount(c.collected))
}

func TestNewCollector_ReRegisterIsTolerated(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()

	first, err := NewCollector(reg, "dup")
	require.NoError(t, err)
	second, err := NewCollector(reg, "dup")
	require.NoError(t, err)

	second.LateCompletion(uuid.New())
	assert.Equal(t, float64(1), testutil.ToFloat64(first.late), "both collectors share the registered metrics")
}

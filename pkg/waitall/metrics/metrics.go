// Package metrics exports WaitAll call summaries to Prometheus.
package metrics

import (
	"errors"

	"github.com/google/uuid"
	"github.com/ib-77/waitall/pkg/waitall/core"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector is a core.Observer backed by Prometheus metrics.
type Collector struct {
	calls     *prometheus.CounterVec
	waits     *prometheus.HistogramVec
	collected prometheus.Histogram
	late      prometheus.Counter
}

var _ core.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_total",
			Help:      "WaitAll calls by outcome.",
		}, []string{"outcome"}),
		waits: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "wait_seconds",
			Help:      "Time callers spent waiting, by outcome.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"outcome"}),
		collected: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "collected_ratio",
			Help:      "Share of operations whose value reached the caller.",
			Buckets:   prometheus.LinearBuckets(0, 0.25, 5),
		}),
		late: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "late_completions_total",
			Help:      "Operations that finished after their call returned.",
		}),
	}

	var err error
	if c.calls, err = register(reg, c.calls); err != nil {
		return nil, err
	}
	if c.waits, err = register(reg, c.waits); err != nil {
		return nil, err
	}
	if c.collected, err = register(reg, c.collected); err != nil {
		return nil, err
	}
	if c.late, err = register(reg, c.late); err != nil {
		return nil, err
	}
	return c, nil
}

// register adds m to reg, reusing the existing collector when an identical
// one was registered before.
func register[T prometheus.Collector](reg prometheus.Registerer, m T) (T, error) {
	if err := reg.Register(m); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return m, err
	}
	return m, nil
}

func (c *Collector) CallFinished(s core.Summary) {
	outcome := s.Outcome.String()
	c.calls.WithLabelValues(outcome).Inc()
	c.waits.WithLabelValues(outcome).Observe(s.Elapsed.Seconds())
	if s.Operations > 0 {
		c.collected.Observe(float64(s.Collected) / float64(s.Operations))
	}
}

func (c *Collector) LateCompletion(uuid.UUID) {
	c.late.Inc()
}

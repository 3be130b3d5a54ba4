// Package metrics exposes Prometheus collectors for reminder sweeps.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "renewal_manager"

// Reminder outcomes used as the "outcome" label.
const (
	OutcomeSent        = "sent"
	OutcomeFailed      = "failed"
	OutcomeSkipped     = "skipped"
	OutcomeMissingData = "missing_data"
)

// Collector records sweep and reminder telemetry in its own registry.
type Collector struct {
	registry *prometheus.Registry

	sweepsTotal    *prometheus.CounterVec
	sweepDuration  *prometheus.HistogramVec
	lastSweep      prometheus.Gauge
	remindersTotal *prometheus.CounterVec
}

// NewCollector creates a collector with Go runtime and process metrics registered.
func NewCollector() *Collector {
	c := &Collector{registry: prometheus.NewRegistry()}

	c.sweepsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reminder",
			Name:      "sweeps_total",
			Help:      "Total number of reminder sweeps by trigger and result",
		},
		[]string{"trigger", "result"},
	)

	c.sweepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reminder",
			Name:      "sweep_duration_seconds",
			Help:      "Time taken by one reminder sweep",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms to ~100s
		},
		[]string{"trigger"},
	)

	c.lastSweep = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "reminder",
			Name:      "last_sweep_timestamp_seconds",
			Help:      "Unix time of the last completed sweep",
		},
	)

	c.remindersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reminder",
			Name:      "reminders_total",
			Help:      "Due reminders by outcome (sent, failed, skipped, missing_data)",
		},
		[]string{"outcome"},
	)

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.sweepsTotal,
		c.sweepDuration,
		c.lastSweep,
		c.remindersTotal,
	)

	return c
}

// Registry returns the Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// RecordSweep records one finished sweep. A nil Collector records nothing.
func (c *Collector) RecordSweep(trigger string, duration time.Duration, err error) {
	if c == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	c.sweepsTotal.WithLabelValues(trigger, result).Inc()
	c.sweepDuration.WithLabelValues(trigger).Observe(duration.Seconds())
	if err == nil {
		c.lastSweep.SetToCurrentTime()
	}
}

// RecordReminder counts one due reminder by outcome.
func (c *Collector) RecordReminder(outcome string) {
	if c == nil {
		return
	}
	c.remindersTotal.WithLabelValues(outcome).Inc()
}

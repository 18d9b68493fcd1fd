// SPDX-License-Identifier: MIT

// Package metrics instruments temperature estimates with Prometheus.
//
// Estimator implements temperature.Observer, so it is attached with
// temperature.WithObserver (or FastOptions.Observer) and records every
// point estimate, bootstrap run and notice. Batch jobs without a scrape
// endpoint can persist the registry with WriteTextfile for the node
// exporter textfile collector.
//
// All metric operations are safe for concurrent use; bootstrap replicates
// report from several goroutines.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/thermo/temperature"
)

// Default metric name parts.
const (
	DefaultNamespace = "thermo"
	DefaultSubsystem = "estimator"
)

// Config selects metric names and the registry. A nil Registry means a
// fresh private registry, reachable through Estimator.Registry.
type Config struct {
	Namespace string
	Subsystem string
	Registry  *prometheus.Registry
}

// Estimator records estimator events.
type Estimator struct {
	// EstimatesTotal counts point estimates. Labels: method.
	EstimatesTotal *prometheus.CounterVec
	// NoticesTotal counts notices. Labels: kind.
	NoticesTotal *prometheus.CounterVec
	// EstimateDuration measures one point estimate. Labels: method.
	EstimateDuration *prometheus.HistogramVec
	// BootstrapDuration measures a whole bootstrap run.
	BootstrapDuration prometheus.Histogram
	// BootstrapReplicates counts replicates solved.
	BootstrapReplicates prometheus.Counter
	// LastTemperature holds the most recent estimate.
	LastTemperature prometheus.Gauge

	registry *prometheus.Registry
}

var _ temperature.Observer = (*Estimator)(nil)

// NewEstimator creates and registers the estimator metrics. It panics on a
// duplicate registration, as promauto does.
func NewEstimator(cfg Config) *Estimator {
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = DefaultSubsystem
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	f := promauto.With(cfg.Registry)
	return &Estimator{
		EstimatesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "estimates_total",
			Help:      "Point temperature estimates by search method.",
		}, []string{"method"}),
		NoticesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "notices_total",
			Help:      "Estimator diagnostics by kind.",
		}, []string{"kind"}),
		EstimateDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "estimate_duration_seconds",
			Help:      "Wall time of one point estimate.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"method"}),
		BootstrapDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "bootstrap_duration_seconds",
			Help:      "Wall time of a bootstrap run.",
			Buckets:   prometheus.ExponentialBuckets(1e-4, 4, 10),
		}),
		BootstrapReplicates: f.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "bootstrap_replicates_total",
			Help:      "Bootstrap replicates solved.",
		}),
		LastTemperature: f.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "last_temperature",
			Help:      "Most recent point estimate (unitless).",
		}),
		registry: cfg.Registry,
	}
}

// Registry returns the registry the metrics live in.
func (e *Estimator) Registry() *prometheus.Registry { return e.registry }

// ObserveEstimate implements temperature.Observer.
func (e *Estimator) ObserveEstimate(method temperature.Method, T float64, elapsed time.Duration) {
	e.EstimatesTotal.WithLabelValues(method.String()).Inc()
	e.EstimateDuration.WithLabelValues(method.String()).Observe(elapsed.Seconds())
	e.LastTemperature.Set(T)
}

// ObserveBootstrap implements temperature.Observer.
func (e *Estimator) ObserveBootstrap(replicates int, elapsed time.Duration) {
	e.BootstrapReplicates.Add(float64(replicates))
	e.BootstrapDuration.Observe(elapsed.Seconds())
}

// ObserveNotice implements temperature.Observer.
func (e *Estimator) ObserveNotice(n temperature.Notice) {
	e.NoticesTotal.WithLabelValues(n.Kind.String()).Inc()
}

// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus instruments for complex construction.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/grassmann/grassmann"
)

const namespace = "grassmann"

// BuildMetrics implements grassmann.Recorder on a Prometheus registry.
type BuildMetrics struct {
	BuildsTotal       *prometheus.CounterVec
	BuildDuration     *prometheus.HistogramVec
	TuplesScanned     prometheus.Counter
	LevelSize         *prometheus.GaugeVec
	CoveringEdges     prometheus.Gauge
	Coefficient       prometheus.Gauge
	InvariantFailures *prometheus.CounterVec
}

var _ grassmann.Recorder = (*BuildMetrics)(nil)

// NewBuildMetrics creates the instruments and registers them with reg.
func NewBuildMetrics(reg prometheus.Registerer) (*BuildMetrics, error) {
	m := &BuildMetrics{
		BuildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "builds_total",
				Help:      "Total number of completed complex builds",
			},
			[]string{"q"},
		),
		BuildDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "build_duration_seconds",
				Help:      "Complex build duration in seconds",
				Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120},
			},
			[]string{"q"},
		),
		TuplesScanned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tuples_scanned_total",
				Help:      "Generating vector tuples spanned during enumeration",
			},
		),
		LevelSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "level_size",
				Help:      "Number of subspaces per rank level in the last build",
			},
			[]string{"level"},
		),
		CoveringEdges: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "covering_edges",
				Help:      "Covering edges in the last build",
			},
		),
		Coefficient: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "coefficient",
				Help:      "Coboundary coefficient of the last build",
			},
		),
		InvariantFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invariant_failures_total",
				Help:      "Builds aborted by a failed invariant check",
			},
			[]string{"kind"}, // "count" / "chain"
		),
	}

	for _, c := range []prometheus.Collector{
		m.BuildsTotal, m.BuildDuration, m.TuplesScanned, m.LevelSize,
		m.CoveringEdges, m.Coefficient, m.InvariantFailures,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	return m, nil
}

// ObserveBuild records a successful build.
func (m *BuildMetrics) ObserveBuild(s grassmann.BuildStats) {
	q := strconv.Itoa(s.Q)
	m.BuildsTotal.WithLabelValues(q).Inc()
	m.BuildDuration.WithLabelValues(q).Observe(s.Duration.Seconds())
	m.TuplesScanned.Add(float64(s.Tuples))
	m.LevelSize.Reset()
	for i, n := range s.LevelSizes {
		m.LevelSize.WithLabelValues(strconv.Itoa(i)).Set(float64(n))
	}
	m.CoveringEdges.Set(float64(s.CoveringEdges))
	m.Coefficient.Set(float64(s.Coefficient))
}

// ObserveFailure records an aborted build.
func (m *BuildMetrics) ObserveFailure(kind grassmann.InvariantKind) {
	m.InvariantFailures.WithLabelValues(kind.String()).Inc()
}

// WriteTextfile writes every metric gathered by g to path in the Prometheus
// text exposition format, for the node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}

	return nil
}

// SPDX-License-Identifier: MIT

package grassmann

import (
	"time"

	"go.uber.org/zap"
)

// BuildStats summarises one successful construction.
type BuildStats struct {
	N, D, Q       int
	Coefficient   int64
	Tuples        int   // generating tuples spanned
	LevelSizes    []int // |level i| for i in 0..TopRank
	CoveringEdges int
	Duration      time.Duration
}

// Recorder receives construction telemetry. metrics.BuildMetrics implements it.
type Recorder interface {
	ObserveBuild(stats BuildStats)
	ObserveFailure(kind InvariantKind)
}

// Option configures New.
type Option func(*settings)

type settings struct {
	log      *zap.Logger
	rec      Recorder
	policy   CoefficientPolicy
	spanning bool
}

func defaultSettings() settings {
	return settings{
		log:    zap.NewNop(),
		rec:    nopRecorder{},
		policy: DefaultCoefficient,
	}
}

// WithLogger sets the logger for construction stages. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics reports construction telemetry to r. nil disables reporting.
func WithMetrics(r Recorder) Option {
	return func(s *settings) {
		if r != nil {
			s.rec = r
		}
	}
}

// WithCoefficientPolicy overrides DefaultCoefficient. nil is ignored.
func WithCoefficientPolicy(p CoefficientPolicy) Option {
	return func(s *settings) {
		if p != nil {
			s.policy = p
		}
	}
}

// WithSpanningLevel keeps the d-dimensional spans as an extra top level,
// so levels run 0..d and TopRank() == d.
func WithSpanningLevel() Option {
	return func(s *settings) { s.spanning = true }
}

type nopRecorder struct{}

func (nopRecorder) ObserveBuild(BuildStats)       {}
func (nopRecorder) ObserveFailure(InvariantKind) {}

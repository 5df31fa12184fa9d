// SPDX-License-Identifier: MIT

package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grassmann/grassmann"
)

func TestObserveBuild(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewBuildMetrics(reg)
	require.NoError(t, err)

	m.ObserveBuild(grassmann.BuildStats{
		N: 5, D: 3, Q: 2,
		Coefficient:   3,
		Tuples:        32768,
		LevelSizes:    []int{1, 31, 155},
		CoveringEdges: 31 + 155*3,
		Duration:      20 * time.Millisecond,
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BuildsTotal.WithLabelValues("2")))
	assert.Equal(t, 32768.0, testutil.ToFloat64(m.TuplesScanned))
	assert.Equal(t, 155.0, testutil.ToFloat64(m.LevelSize.WithLabelValues("2")))
	assert.Equal(t, 496.0, testutil.ToFloat64(m.CoveringEdges))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Coefficient))
	assert.Equal(t, 3, testutil.CollectAndCount(m.LevelSize))
}

func TestObserveFailure(t *testing.T) {
	m, err := NewBuildMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	m.ObserveFailure(grassmann.KindChain)
	m.ObserveFailure(grassmann.KindChain)
	m.ObserveFailure(grassmann.KindCount)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.InvariantFailures.WithLabelValues("chain")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InvariantFailures.WithLabelValues("count")))
}

func TestNewBuildMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewBuildMetrics(reg)
	require.NoError(t, err)
	_, err = NewBuildMetrics(reg)
	assert.ErrorContains(t, err, "register metrics")
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewBuildMetrics(reg)
	require.NoError(t, err)
	m.Coefficient.Set(5)

	path := filepath.Join(t.TempDir(), "grassmann.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "grassmann_coefficient 5")

	assert.Error(t, WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"), reg))
}

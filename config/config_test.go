// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grassmann.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, ComplexConfig{N: 3, D: 2, Q: 2, Policy: "default"}, c.Complex)
	assert.Equal(t, "local", c.Logging.Env)
	assert.NoError(t, c.Validate())
}

func TestLoad(t *testing.T) {
	t.Setenv("GRASSMANN_Q", "3")
	path := writeConfig(t, `
complex:
  n: 4
  d: 3
  q: ${GRASSMANN_Q}
  policy: legacy
  spanning: true
export:
  path: ${GRASSMANN_OUT:-out.graphml}
metrics:
  textfile: build.prom
logging:
  env: prod
  level: warn
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ComplexConfig{N: 4, D: 3, Q: 3, Policy: "legacy", Spanning: true}, c.Complex)
	assert.Equal(t, "out.graphml", c.Export.Path)
	assert.Equal(t, "build.prom", c.Metrics.Textfile)
	assert.Equal(t, LoggingConfig{Env: "prod", Level: "warn"}, c.Logging)

	p, err := c.CoefficientPolicy()
	require.NoError(t, err)
	assert.Equal(t, int64(2), p(3))
}

func TestLoad_AppliesDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, "complex:\n  n: 5\n  d: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Complex.Q)
	assert.Equal(t, "default", c.Complex.Policy)
	assert.Equal(t, "local", c.Logging.Env)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	_, err = Load(writeConfig(t, "complex: [1, 2"))
	assert.ErrorContains(t, err, "failed to parse config")

	_, err = Load(writeConfig(t, "complex:\n  n: 2\n  d: 3\n"))
	assert.ErrorContains(t, err, "invalid config: complex.d")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"q too small", func(c *Config) { c.Complex.Q = 1 }, "complex.q"},
		{"n zero", func(c *Config) { c.Complex.N = 0 }, "complex.n"},
		{"d above n", func(c *Config) { c.Complex.D = 4 }, "complex.d"},
		{"bad policy", func(c *Config) { c.Complex.Policy = "sometimes" }, "complex.policy"},
		{"zero fixed policy", func(c *Config) { c.Complex.Policy = "0" }, "complex.policy"},
		{"bad export", func(c *Config) { c.Export.Path = "out.json" }, "export.path"},
		{"bad env", func(c *Config) { c.Logging.Env = "staging" }, "logging.env"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			assert.ErrorContains(t, c.Validate(), tc.errMsg)
		})
	}

	c := Default()
	c.Complex.Policy = "7"
	c.Export.Path = "x.yml"
	assert.NoError(t, c.Validate())
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("GRASSMANN_SET", "value")
	got := expandEnvVars([]byte("a: ${GRASSMANN_SET}\nb: ${GRASSMANN_UNSET:-fallback}\nc: ${GRASSMANN_UNSET}\n"))
	assert.Equal(t, "a: value\nb: fallback\nc: \n", string(got))
}

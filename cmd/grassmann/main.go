// SPDX-License-Identifier: MIT

// grassmann builds the subspace poset of F_q^n up to dimension d-1, checks its
// coboundary operators and optionally exports the Hasse diagram.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/grassmann/config"
	"github.com/katalvlaran/grassmann/grassmann"
	"github.com/katalvlaran/grassmann/logger"
	"github.com/katalvlaran/grassmann/metrics"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("grassmann", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath  string
		n, d, q     int
		policy      string
		spanning    bool
		outPath     string
		metricsPath string
		logLevel    string
		env         string
		showVersion bool
	)

	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.IntVar(&n, "n", 0, "ambient dimension")
	fs.IntVar(&d, "d", 0, "max rank bound (subspaces of dimension 0..d-1)")
	fs.IntVar(&q, "q", 0, "field size (prime power)")
	fs.StringVar(&policy, "policy", "", "coefficient policy: default, legacy, or an integer")
	fs.BoolVar(&spanning, "spanning", false, "keep the d-dimensional spans as a top level")
	fs.StringVar(&outPath, "out", "", "export path (.graphml, .xml, .yaml, .yml)")
	fs.StringVar(&metricsPath, "metrics", "", "write Prometheus textfile to this path")
	fs.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&env, "env", "", "logging environment: local, dev, docker, prod")
	fs.BoolVar(&showVersion, "version", false, "show version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if showVersion {
		_, _ = fmt.Fprintf(stdout, "grassmann %s\n", version)
		return nil
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	// Flags set on the command line win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Complex.N = n
		case "d":
			cfg.Complex.D = d
		case "q":
			cfg.Complex.Q = q
		case "policy":
			cfg.Complex.Policy = policy
		case "spanning":
			cfg.Complex.Spanning = spanning
		case "out":
			cfg.Export.Path = outPath
		case "metrics":
			cfg.Metrics.Textfile = metricsPath
		case "log-level":
			cfg.Logging.Level = logLevel
		case "env":
			cfg.Logging.Env = env
		}
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	log, err := logger.New(cfg.Logging.Env, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log = withRunID(log)
	ctx := logger.ContextWithLogger(context.Background(), log)

	reg := prometheus.NewRegistry()
	bm, err := metrics.NewBuildMetrics(reg)
	if err != nil {
		return err
	}

	c, buildErr := buildComplex(ctx, cfg, bm)
	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
			return errors.Join(buildErr, err)
		}
	}
	if buildErr != nil {
		return buildErr
	}

	if err := report(stdout, c); err != nil {
		return err
	}

	if cfg.Export.Path != "" {
		if err := c.Export(cfg.Export.Path); err != nil {
			return fmt.Errorf("exporting: %w", err)
		}
		_, _ = fmt.Fprintf(stdout, "exported: %s\n", cfg.Export.Path)
	}

	return nil
}

// withRunID tags every log line of this invocation with a fresh run ID.
func withRunID(log *zap.Logger) *zap.Logger {
	return log.With(zap.String("run_id", uuid.NewString()))
}

// buildComplex constructs the complex described by cfg.
func buildComplex(ctx context.Context, cfg config.Config, rec grassmann.Recorder) (*grassmann.Complex, error) {
	policy, err := cfg.CoefficientPolicy()
	if err != nil {
		return nil, err
	}
	opts := []grassmann.Option{
		grassmann.WithLogger(logger.FromContext(ctx)),
		grassmann.WithMetrics(rec),
		grassmann.WithCoefficientPolicy(policy),
	}
	if cfg.Complex.Spanning {
		opts = append(opts, grassmann.WithSpanningLevel())
	}

	c, err := grassmann.New(cfg.Complex.N, cfg.Complex.D, cfg.Complex.Q, opts...)
	if err != nil {
		return nil, fmt.Errorf("building complex: %w", err)
	}

	return c, nil
}

// report prints the level sizes, coefficient, incidence ranks and cohomology.
func report(w io.Writer, c *grassmann.Complex) error {
	st := c.Stats()
	_, _ = fmt.Fprintf(w, "complex: n=%d d=%d q=%d top_rank=%d\n", st.N, st.D, st.Q, c.TopRank())
	_, _ = fmt.Fprintf(w, "coefficient: %d\n", st.Coefficient)
	_, _ = fmt.Fprintf(w, "level sizes: %v\n", st.LevelSizes)
	_, _ = fmt.Fprintf(w, "covering edges: %d\n", st.CoveringEdges)

	h, err := c.CohomologyDims()
	if errors.Is(err, grassmann.ErrCompositeModulus) {
		_, _ = fmt.Fprintln(w, "cohomology: n/a (coefficient not prime)")
		return nil
	}
	if err != nil {
		return err
	}
	ranks := make([]int, c.TopRank())
	for i := range ranks {
		if ranks[i], err = c.IncidenceRank(i); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintf(w, "incidence ranks: %v\n", ranks)
	_, _ = fmt.Fprintf(w, "cohomology: %v\n", h)

	return nil
}

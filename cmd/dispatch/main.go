// Command dispatch benchmarks interface dispatch against generic
// (compile-time) dispatch on the same counter workload.
//
// With no arguments it prints one line per case:
//
//	Dynamic (virtual): 5532 msecs
//	Static (CRTP): 2291 msecs
//
// Usage:
//
//	go run ./cmd/dispatch -n 200000 -cases static,dynamic,direct -format table
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/randomizedcoder/dispatch-benchmarks/internal/logging"
	"github.com/randomizedcoder/dispatch-benchmarks/internal/suite"
	"github.com/randomizedcoder/dispatch-benchmarks/internal/timing"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML config file")
	iterations := flag.Uint64("n", suite.Defaults().Iterations, "outer loop iterations (ticks = n*(n-1)/2)")
	cases := flag.String("cases", strings.Join(suite.Defaults().Cases, ","), "comma separated cases: "+strings.Join(suite.Names(), ","))
	unit := flag.String("unit", suite.Defaults().Unit, "reporting unit: ns, us, ms, s")
	clock := flag.String("clock", suite.Defaults().Clock, "clock source: std, nanotime")
	format := flag.String("format", suite.Defaults().Format, "output format: text, table, json")
	verify := flag.Bool("verify", false, "check each final counter value against the closed form")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile into this directory")
	metricsOut := flag.String("metrics-out", "", "write Prometheus metrics to this textfile")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	flag.Parse()

	logger, err := logging.New(*logLevel, os.Stderr)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := suite.Defaults()
	if *configFile != "" {
		cfg, err = suite.Load(*configFile)
		if err != nil {
			logger.Fatal("Failed to load config", zap.String("path", *configFile), zap.Error(err))
		}
	}

	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Iterations = *iterations
		case "cases":
			cfg.Cases = splitList(*cases)
		case "unit":
			cfg.Unit = *unit
		case "clock":
			cfg.Clock = *clock
		case "format":
			cfg.Format = *format
		case "verify":
			cfg.Verify = *verify
		case "metrics-out":
			cfg.MetricsOut = *metricsOut
		}
	})

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	if err := run(cfg, *cpuProfile, os.Stdout, logger); err != nil {
		logger.Error("Benchmark failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg suite.Config, cpuProfile string, out io.Writer, logger *zap.Logger) error {
	selected, err := cfg.Selected()
	if err != nil {
		return err
	}
	u, err := timing.ParseUnit(cfg.Unit)
	if err != nil {
		return err
	}
	reporter, err := suite.NewReporter(out, cfg.Format, u)
	if err != nil {
		return err
	}

	var metrics *suite.Metrics
	if cfg.MetricsOut != "" {
		metrics = suite.NewMetrics()
	}

	runner, err := suite.NewRunner(cfg, logger, metrics)
	if err != nil {
		return err
	}

	logger.Info("Benchmarking counter dispatch",
		zap.Uint64("iterations", cfg.Iterations),
		zap.Strings("cases", cfg.Cases),
		zap.String("clock", cfg.Clock),
		zap.String("arch", runtime.GOOS+"/"+runtime.GOARCH),
	)

	if cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cpuProfile), profile.Quiet).Stop()
	}

	results, runErr := runner.Run(selected)
	if err := reporter.Report(results); err != nil {
		return err
	}

	if metrics != nil {
		if err := metrics.WriteTextfile(cfg.MetricsOut); err != nil {
			return err
		}
		logger.Info("Wrote metrics", zap.String("path", cfg.MetricsOut))
	}
	return runErr
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

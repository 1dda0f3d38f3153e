package suite

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/randomizedcoder/dispatch-benchmarks/internal/timing"
	"github.com/randomizedcoder/dispatch-benchmarks/internal/workload"
)

// ErrMismatch is returned in verify mode when a case's final value differs
// from the closed-form workload total.
var ErrMismatch = errors.New("suite: counter value mismatch")

// Sink variable to prevent compiler from eliminating the timed loops
var sinkValue uint64

// Result is the outcome of one case run.
type Result struct {
	Name       string
	Label      string
	Iterations uint64
	Calls      uint64
	Value      uint64
	Elapsed    time.Duration

	// CPU is process CPU time spent during the run, zero where the
	// platform does not report it.
	CPU time.Duration
}

// PerCall returns the average wall time of one Tick in nanoseconds.
func (r Result) PerCall() float64 {
	if r.Calls == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Calls)
}

// Runner executes cases one after another.
type Runner struct {
	timer      *timing.Timer
	logger     *zap.Logger
	metrics    *Metrics
	iterations uint64
	verify     bool
}

// NewRunner creates a Runner from a validated config. logger may be
// zap.NewNop(); metrics may be nil.
func NewRunner(cfg Config, logger *zap.Logger, metrics *Metrics) (*Runner, error) {
	clock, err := timing.ParseClock(cfg.Clock)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		timer:      timing.NewTimer(clock),
		logger:     logger,
		metrics:    metrics,
		iterations: cfg.Iterations,
		verify:     cfg.Verify,
	}, nil
}

// Run executes cases in order. Each case completes before the next starts.
// In verify mode the first mismatch stops the run and the results gathered
// so far are returned with the error.
func (r *Runner) Run(cases []Case) ([]Result, error) {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		res, err := r.RunCase(c)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// RunCase times a single case.
func (r *Runner) RunCase(c Case) (Result, error) {
	calls := workload.Calls(r.iterations)
	r.logger.Debug("case starting",
		zap.String("case", c.Name),
		zap.Uint64("iterations", r.iterations),
		zap.Uint64("calls", calls),
	)

	cpuBefore, cpuErr := timing.CPUTime()

	var value uint64
	elapsed := r.timer.Measure(func() {
		value = c.Run(r.iterations)
	})

	var cpu time.Duration
	if cpuErr == nil {
		if cpuAfter, err := timing.CPUTime(); err == nil && cpuAfter > cpuBefore {
			cpu = cpuAfter - cpuBefore
		}
	}

	sinkValue = value

	res := Result{
		Name:       c.Name,
		Label:      c.Label,
		Iterations: r.iterations,
		Calls:      calls,
		Value:      value,
		Elapsed:    elapsed,
		CPU:        cpu,
	}

	r.logger.Info("case finished",
		zap.String("case", c.Name),
		zap.Duration("elapsed", elapsed),
		zap.Duration("cpu", cpu),
		zap.Float64("ns_per_call", res.PerCall()),
		zap.Uint64("value", value),
	)

	if r.metrics != nil {
		r.metrics.Observe(res)
	}

	if r.verify {
		if want := workload.Expected(r.iterations); value != want {
			return res, fmt.Errorf("%w: case %s: got %d, want %d", ErrMismatch, c.Name, value, want)
		}
	}
	return res, nil
}

package suite

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/randomizedcoder/dispatch-benchmarks/internal/timing"
)

// ErrUnknownFormat is returned for unrecognised report formats.
var ErrUnknownFormat = errors.New("suite: unknown report format")

// Report formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

func parseFormat(s string) (string, error) {
	switch s {
	case "":
		return FormatText, nil
	case FormatText, FormatTable, FormatJSON:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Reporter writes results to w.
//
//   - text:  one "<label>: <count> <unit>" line per case
//   - table: per-call cost and speed relative to the first case
//   - json:  one zerolog record per case
type Reporter struct {
	w      io.Writer
	format string
	unit   timing.Unit
	log    zerolog.Logger
}

// NewReporter creates a Reporter for the given format and unit.
func NewReporter(w io.Writer, format string, unit timing.Unit) (*Reporter, error) {
	f, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	return &Reporter{
		w:      w,
		format: f,
		unit:   unit,
		log:    zerolog.New(w),
	}, nil
}

// Report writes all results in order.
func (r *Reporter) Report(results []Result) error {
	switch r.format {
	case FormatTable:
		return r.table(results)
	case FormatJSON:
		for _, res := range results {
			r.json(res)
		}
		return nil
	default:
		for _, res := range results {
			if err := r.Line(res); err != nil {
				return err
			}
		}
		return nil
	}
}

// Line writes a single text line for res.
func (r *Reporter) Line(res Result) error {
	_, err := fmt.Fprintf(r.w, "%s: %d %s\n", res.Label, r.unit.Count(res.Elapsed), r.unit.Suffix())
	return err
}

func (r *Reporter) json(res Result) {
	r.log.Log().
		Str("case", res.Name).
		Str("label", res.Label).
		Uint64("iterations", res.Iterations).
		Uint64("calls", res.Calls).
		Uint64("value", res.Value).
		Int64("elapsed", r.unit.Count(res.Elapsed)).
		Str("unit", r.unit.String()).
		Int64("cpu_ns", res.CPU.Nanoseconds()).
		Float64("ns_per_call", res.PerCall()).
		Send()
}

func (r *Reporter) table(results []Result) error {
	if len(results) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(r.w, "Results (%d iterations, %d calls per case):\n",
		results[0].Iterations, results[0].Calls); err != nil {
		return err
	}

	baseline := results[0].PerCall()
	for _, res := range results {
		perCall := res.PerCall()

		speedup := 0.0
		if perCall > 0 {
			speedup = baseline / perCall
		}

		if _, err := fmt.Fprintf(r.w, "  %-20s %12v  %8.3f ns/call  %6.2fx\n",
			res.Label, res.Elapsed, perCall, speedup); err != nil {
			return err
		}
	}
	return nil
}

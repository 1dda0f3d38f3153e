// Package suite runs counter dispatch benchmarks and reports their timings.
//
// A Case pairs a counter realization with the driver that matches its
// dispatch strategy. Every Case.Run builds a fresh zeroed counter, drives
// it through the workload and returns the final value, so repeated runs
// never share state.
//
// Cases are executed strictly one after another on the calling goroutine.
// Nothing here starts a goroutine: concurrent runs would contend for the
// CPU and make timings incomparable.
package suite

import (
	"errors"
	"fmt"

	"github.com/randomizedcoder/dispatch-benchmarks/internal/counter"
	"github.com/randomizedcoder/dispatch-benchmarks/internal/workload"
)

// ErrUnknownCase is returned by Lookup for names not in the catalogue.
var ErrUnknownCase = errors.New("suite: unknown case")

// Case is one benchmark subject.
type Case struct {
	// Name is the short identifier used in config and flags.
	Name string

	// Label is printed in front of the result.
	Label string

	// Run drives a new counter for the given outer iterations and
	// returns its final value.
	Run func(iterations uint64) uint64
}

const (
	Dynamic = "dynamic"
	Static  = "static"
	Direct  = "direct"
)

var catalogue = []Case{
	{
		Name:  Dynamic,
		Label: "Dynamic (virtual)",
		Run: func(iterations uint64) uint64 {
			c := counter.NewDynamic()
			workload.Run(c, iterations)
			return c.Value()
		},
	},
	{
		Name:  Static,
		Label: "Static (CRTP)",
		Run: func(iterations uint64) uint64 {
			c := counter.NewStatic()
			workload.RunStatic(c, iterations)
			return c.Value()
		},
	},
	{
		Name:  Direct,
		Label: "Direct (concrete)",
		Run: func(iterations uint64) uint64 {
			c := counter.NewAccumulator()
			workload.RunDirect(c, iterations)
			return c.Value()
		},
	},
}

// Lookup returns the catalogued case with the given name.
func Lookup(name string) (Case, error) {
	for _, c := range catalogue {
		if c.Name == name {
			return c, nil
		}
	}
	return Case{}, fmt.Errorf("%w: %q", ErrUnknownCase, name)
}

// Names lists catalogued case names in catalogue order.
func Names() []string {
	names := make([]string, len(catalogue))
	for i, c := range catalogue {
		names[i] = c.Name
	}
	return names
}

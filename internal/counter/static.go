package counter

// Impl constrains P to be *C with the counter methods.
//
// This is the Go spelling of a self-referential template: Static is
// parameterized by the concrete type it forwards to, and the pointer
// constraint lets it call pointer-receiver methods on its own embedded
// value without an interface conversion.
type Impl[C any] interface {
	*C
	Tick(n uint64)
	Value() uint64
}

// Static forwards to a concrete counter chosen at compile time.
//
// Go instantiates generics per GC shape, not per type. Calls through P are
// resolved statically when the compiler can see the instantiation, but for
// pointer-shaped type parameters it may fall back to a dictionary lookup.
// Static is therefore a faithful port of the pattern, not a guarantee of
// zero-cost monomorphization.
type Static[C any, P Impl[C]] struct {
	impl C
}

// StaticCounter is Static bound to Accumulator.
type StaticCounter = Static[Accumulator, *Accumulator]

// NewStatic creates a zeroed StaticCounter.
func NewStatic() *StaticCounter {
	return &StaticCounter{}
}

// Tick adds n through the bound implementation.
func (s *Static[C, P]) Tick(n uint64) {
	P(&s.impl).Tick(n)
}

// Value returns the bound implementation's total.
func (s *Static[C, P]) Value() uint64 {
	return P(&s.impl).Value()
}

// Reset zeroes the bound implementation.
func (s *Static[C, P]) Reset() {
	var zero C
	s.impl = zero
}

// Accumulator is the concrete counter. Calls on *Accumulator are direct
// and normally inlined.
type Accumulator struct {
	value uint64
}

// NewAccumulator creates a zeroed Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Tick adds n to the counter.
func (a *Accumulator) Tick(n uint64) {
	a.value += n
}

// Value returns the accumulated total.
func (a *Accumulator) Value() uint64 {
	return a.value
}

// Reset sets the counter back to zero.
func (a *Accumulator) Reset() {
	a.value = 0
}

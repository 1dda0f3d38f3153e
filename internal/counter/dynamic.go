package counter

// Dynamic is the runtime-dispatched counter.
//
// NewDynamic hands it out as a Counter, so every Tick at the call site is
// resolved through the interface table. Typical cost on amd64:
//   - Accumulator.Tick() direct: ~0.3ns (inlined)
//   - Dynamic.Tick() via Counter: ~1.5-2ns
type Dynamic struct {
	value uint64
}

// NewDynamic creates a zeroed Dynamic counter behind the Counter interface.
func NewDynamic() Counter {
	return &Dynamic{}
}

// Tick adds n to the counter.
func (d *Dynamic) Tick(n uint64) {
	d.value += n
}

// Value returns the accumulated total.
func (d *Dynamic) Value() uint64 {
	return d.value
}

// Reset sets the counter back to zero.
func (d *Dynamic) Reset() {
	d.value = 0
}

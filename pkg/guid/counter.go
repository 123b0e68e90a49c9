package guid

import (
	"math/rand/v2"
	"sync/atomic"
)

// CounterMask covers the counter bits that fit in bytes 0-2.
const CounterMask = 0xFFFFFF

// Counter is a process-wide sequence shared by generators.
// It starts at a random value and wraps on overflow.
type Counter struct {
	v atomic.Int32
}

// NewCounter returns a Counter seeded with a random value.
func NewCounter() *Counter {
	return NewCounterAt(int32(rand.Uint32()))
}

// NewCounterAt returns a Counter whose next value is seed+1.
func NewCounterAt(seed int32) *Counter {
	c := &Counter{}
	c.v.Store(seed)
	return c
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() uint32 {
	return uint32(c.v.Add(1))
}

// Load returns the last value handed out.
func (c *Counter) Load() uint32 {
	return uint32(c.v.Load())
}

// packCounter spreads the low 24 bits of c over three bytes, each byte
// holding two consecutive nibbles with the lower nibble first:
//
//	b0 = c[3:0]<<4   | c[7:4]
//	b1 = c[11:8]<<4  | c[15:12]
//	b2 = c[19:16]<<4 | c[23:20]
//
// Consecutive counter values therefore do not sort consecutively.
func packCounter(c uint32) (b0, b1, b2 byte) {
	b0 = byte((c&0xF)<<4 | (c&0xF0)>>4)
	b1 = byte((c&0xF00)>>4 | (c&0xF000)>>12)
	b2 = byte((c&0xF0000)>>12 | (c&0xF00000)>>20)
	return
}

// unpackCounter is the inverse of packCounter.
func unpackCounter(b0, b1, b2 byte) uint32 {
	swap := func(b byte) uint32 { return uint32(b>>4 | b<<4) }
	return swap(b0) | swap(b1)<<8 | swap(b2)<<16
}

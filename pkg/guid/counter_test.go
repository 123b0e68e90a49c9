package guid

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackCounter(t *testing.T) {
	tests := []struct {
		count      uint32
		b0, b1, b2 byte
	}{
		{0x000000, 0x00, 0x00, 0x00},
		{0x000001, 0x10, 0x00, 0x00},
		{0x00000f, 0xf0, 0x00, 0x00},
		{0x000010, 0x01, 0x00, 0x00},
		{0x123456, 0x65, 0x43, 0x21},
		{0x35c9cd, 0xdc, 0x9c, 0x53},
		{0xffffff, 0xff, 0xff, 0xff},
		{0xff123456, 0x65, 0x43, 0x21},
	}

	for _, tt := range tests {
		b0, b1, b2 := packCounter(tt.count)
		assert.Equal(t, [3]byte{tt.b0, tt.b1, tt.b2}, [3]byte{b0, b1, b2}, "packCounter(%#x)", tt.count)
		assert.Equal(t, tt.count&CounterMask, unpackCounter(b0, b1, b2), "unpackCounter(%#x)", tt.count)
	}
}

func TestPackCounterInverse(t *testing.T) {
	for i := 0; i < 10000; i++ {
		c := rand.Uint32()
		b0, b1, b2 := packCounter(c)
		if got := unpackCounter(b0, b1, b2); got != c&CounterMask {
			t.Fatalf("unpackCounter(packCounter(%#x)) = %#x", c, got)
		}
	}
}

func TestPackCounterNotMonotonic(t *testing.T) {
	// 0x0f -> 0x10 carries into the second nibble, which sits in the low
	// half of byte 0, so the leading byte drops.
	a, _, _ := packCounter(0x0f)
	b, _, _ := packCounter(0x10)
	assert.Greater(t, a, b)
}

func TestCounter(t *testing.T) {
	c := NewCounterAt(41)
	assert.Equal(t, uint32(42), c.Next())
	assert.Equal(t, uint32(42), c.Load())

	wrap := NewCounterAt(math.MaxInt32)
	assert.Equal(t, uint32(1)<<31, wrap.Next(), "counter wraps silently")

	neg := NewCounterAt(-2)
	assert.Equal(t, uint32(math.MaxUint32), neg.Next())
	assert.Equal(t, uint32(0), neg.Next())
}

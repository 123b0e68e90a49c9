// Package guid generates and decodes VitamCommon identifiers.
//
// A GUID is an 18-byte, time-bearing identifier laid out as:
//
//	bytes  0-2   counter, each byte holding two counter nibbles in swapped order
//	bytes  3-4   process id (big-endian)
//	byte   5     version nibble (0xd) | high nibble of the machine id
//	bytes  6-10  remaining machine id bytes
//	bytes 11-17  milliseconds since the Unix epoch (big-endian)
//
// The default text form is 24 characters of URL-safe base64; a 36
// character lowercase hex form is also accepted.
//
// Usage:
//
//	gen := guid.NewGenerator(
//	    guid.WithMachineID(mac),
//	    guid.WithProcessID(pid),
//	)
//	id := gen.New()
//	s := id.String()        // e.g. "3JxTEWDQ3vELzswAAUYoYUuJ"
//	back, err := guid.Parse(s)
package guid

import (
	"bytes"
	"encoding/binary"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// Size is the length of the native binary layout.
	Size = 18

	// CompactSize is the length of the 128-bit compact layout.
	CompactSize = 16

	// HexSize is the length of the hex text form.
	HexSize = Size * 2

	// Base64Size is the length of the base64 text form.
	Base64Size = 24

	// MachineIDSize is the length of the machine id.
	MachineIDSize = 6

	// Version is the hex character carried by every identifier of this layout.
	Version = 'd'

	versionBits = 0xd0
)

// GUID is an immutable 18-byte identifier. The zero value is Nil.
type GUID [Size]byte

// Nil is the empty GUID.
var Nil GUID

// FromBytes builds a GUID from its native 18-byte layout or from the
// 16-byte compact layout. The input slice is copied.
func FromBytes(b []byte) (GUID, error) {
	var g GUID
	switch len(b) {
	case Size:
		copy(g[:], b)
	case CompactSize:
		copy(g[:5], b[:5])
		g[5] = versionBits
		copy(g[6:11], b[5:10])
		g[11] = 0
		copy(g[12:], b[10:])
	default:
		return Nil, ErrInvalidFormat.WithMessagef("malformed GUID: (%d) %v", len(b), b)
	}
	return g, nil
}

// Parse decodes the hex or base64 text form. Surrounding whitespace is ignored.
func Parse(s string) (GUID, error) {
	s = strings.TrimSpace(s)

	var (
		b   []byte
		err error
	)
	switch len(s) {
	case HexSize:
		b, err = DecodeHex(s)
	case Base64Size, Base64Size + 1:
		b, err = DecodeBase64(s)
	default:
		return Nil, ErrInvalidFormat.WithMessagef("malformed GUID: (%d) %s", len(s), s)
	}
	if err != nil {
		return Nil, err
	}
	if len(b) != Size {
		return Nil, ErrInvalidFormat.WithMessagef("malformed GUID: %s decodes to %d bytes", s, len(b))
	}
	return GUID(b), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) GUID {
	return Must(Parse(s))
}

// Must panics if err is not nil.
func Must(g GUID, err error) GUID {
	if err != nil {
		panic(err)
	}
	return g
}

// FromBits builds a 128-bit compatible GUID from the two halves of a
// standard UUID.
func FromBits(msb, lsb uint64) GUID {
	var b [CompactSize]byte
	binary.BigEndian.PutUint64(b[:8], msb)
	binary.BigEndian.PutUint64(b[8:], lsb)
	g, _ := FromBytes(b[:])
	return g
}

// FromUUID builds a 128-bit compatible GUID from u.
func FromUUID(u uuid.UUID) GUID {
	g, _ := FromBytes(u[:])
	return g
}

// Bytes returns a copy of the native layout.
func (g GUID) Bytes() []byte {
	return slices.Clone(g[:])
}

// Compact returns the 16-byte layout with the version byte and the
// timestamp's top byte removed.
func (g GUID) Compact() []byte {
	b := make([]byte, 0, CompactSize)
	b = append(b, g[:5]...)
	b = append(b, g[6:11]...)
	return append(b, g[12:]...)
}

// MostSignificantBits returns the high half of the 128-bit form.
func (g GUID) MostSignificantBits() uint64 {
	return binary.BigEndian.Uint64(g.Compact()[:8])
}

// LeastSignificantBits returns the low half of the 128-bit form.
func (g GUID) LeastSignificantBits() uint64 {
	return binary.BigEndian.Uint64(g.Compact()[8:])
}

// UUID returns the 128-bit form as a standard UUID.
func (g GUID) UUID() uuid.UUID {
	return uuid.UUID(g.Compact())
}

// Version returns the hex character of the layout tag.
func (g GUID) Version() byte {
	return hexAlphabet[g[5]>>4]
}

func (g GUID) tagged() bool {
	return g.Version() == Version
}

// ProcessID returns the embedded process id, or -1 for a foreign layout.
func (g GUID) ProcessID() int {
	if !g.tagged() {
		return -1
	}
	return int(g[3])<<8 | int(g[4])
}

// Timestamp returns the embedded Unix time in milliseconds, or -1 for a
// foreign layout.
func (g GUID) Timestamp() int64 {
	if !g.tagged() {
		return -1
	}
	var ts int64
	for _, b := range g[11:] {
		ts = ts<<8 | int64(b)
	}
	return ts
}

// Time returns the embedded timestamp, or the zero time for a foreign layout.
func (g GUID) Time() time.Time {
	ts := g.Timestamp()
	if ts < 0 {
		return time.Time{}
	}
	return time.UnixMilli(ts)
}

// Counter returns the embedded counter value.
func (g GUID) Counter() uint32 {
	return unpackCounter(g[0], g[1], g[2])
}

// MachineID returns the embedded machine id, or nil for a foreign layout.
// The high nibble of the first byte is shared with the version tag and
// always reads as zero.
func (g GUID) MachineID() []byte {
	if !g.tagged() {
		return nil
	}
	mac := make([]byte, MachineIDSize)
	mac[0] = g[5] & 0x0F
	copy(mac[1:], g[6:11])
	return mac
}

// IsNil reports whether g is the zero GUID.
func (g GUID) IsNil() bool {
	return g == Nil
}

// Hex returns the 36-character hex form.
func (g GUID) Hex() string {
	return EncodeHex(g[:])
}

// Base64 returns the 24-character URL-safe base64 form.
func (g GUID) Base64() string {
	return EncodeBase64(g[:])
}

// String returns the base64 form.
func (g GUID) String() string {
	return g.Base64()
}

// Compare orders GUIDs by timestamp, then counter, then raw bytes.
// Raw byte order alone does not follow generation order.
func Compare(a, b GUID) int {
	if ta, tb := a.Timestamp(), b.Timestamp(); ta != tb {
		if ta < tb {
			return -1
		}
		return 1
	}
	if ca, cb := a.Counter(), b.Counter(); ca != cb {
		if ca < cb {
			return -1
		}
		return 1
	}
	return bytes.Compare(a[:], b[:])
}

// SortChronologically sorts ids in place using Compare.
func SortChronologically(ids []GUID) {
	slices.SortFunc(ids, Compare)
}

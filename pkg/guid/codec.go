package guid

import (
	"encoding/base64"
	"strings"
)

const hexAlphabet = "0123456789abcdef"

// EncodeHex renders b as lowercase hex, two characters per byte.
func EncodeHex(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hexAlphabet[c>>4]
		out[i*2+1] = hexAlphabet[c&0x0F]
	}
	return string(out)
}

// DecodeHex is the inverse of EncodeHex. Upper case digits are accepted.
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, ErrInvalidFormat.WithMessagef("odd hex length: (%d) %s", len(s), s)
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		hi, ok := fromHexChar(s[i*2])
		if !ok {
			return nil, ErrInvalidFormat.WithMessagef("invalid hex character %q at %d in %s", s[i*2], i*2, s)
		}
		lo, ok := fromHexChar(s[i*2+1])
		if !ok {
			return nil, ErrInvalidFormat.WithMessagef("invalid hex character %q at %d in %s", s[i*2+1], i*2+1, s)
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// EncodeBase64 renders b with the URL-safe alphabet.
// An 18-byte GUID encodes to exactly 24 characters.
func EncodeBase64(b []byte) string {
	return base64.URLEncoding.EncodeToString(b)
}

// DecodeBase64 decodes URL-safe base64, with or without padding.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, ErrInvalidFormat.WithCause(err).WithMessagef("malformed base64: (%d) %s", len(s), s)
	}
	return b, nil
}

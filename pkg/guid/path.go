package guid

import "strings"

// SharpSeparator joins GUIDs in the separated path form.
const SharpSeparator = '#'

// Assemble concatenates the base64 forms of ids.
func Assemble(ids ...GUID) string {
	var sb strings.Builder
	sb.Grow(len(ids) * Base64Size)
	for _, id := range ids {
		sb.WriteString(id.String())
	}
	return sb.String()
}

// AssembleSharp joins the base64 forms of ids with SharpSeparator.
func AssembleSharp(ids ...GUID) string {
	var sb strings.Builder
	sb.Grow(len(ids) * (Base64Size + 1))
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(SharpSeparator)
		}
		sb.WriteString(id.String())
	}
	return sb.String()
}

// Count returns how many whole segments path holds.
func Count(path string) int {
	return len(strings.TrimSpace(path)) / Base64Size
}

// IsMultiple reports whether path is longer than a single GUID.
func IsMultiple(path string) bool {
	return len(strings.TrimSpace(path)) > Base64Size
}

// FirstString returns the first segment of path without decoding it.
func FirstString(path string) (string, error) {
	p := strings.TrimSpace(path)
	if len(p) < Base64Size {
		return "", ErrInvalidFormat.WithMessagef("path too short: (%d) %s", len(p), p)
	}
	return p[:Base64Size], nil
}

// LastString returns the last whole segment of path without decoding it.
func LastString(path string) (string, error) {
	p := strings.TrimSpace(path)
	n := len(p) / Base64Size
	if n == 0 {
		return "", ErrInvalidFormat.WithMessagef("path too short: (%d) %s", len(p), p)
	}
	pos := (n - 1) * Base64Size
	return p[pos : pos+Base64Size], nil
}

// First decodes the first GUID of path.
func First(path string) (GUID, error) {
	s, err := FirstString(path)
	if err != nil {
		return Nil, err
	}
	return Parse(s)
}

// Last decodes the last GUID of path.
func Last(path string) (GUID, error) {
	s, err := LastString(path)
	if err != nil {
		return Nil, err
	}
	return Parse(s)
}

// All decodes every segment of path in order.
func All(path string) ([]GUID, error) {
	segs := segments(path)
	ids := make([]GUID, len(segs))
	for i, s := range segs {
		id, err := Parse(s)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// AllSharp decodes a path whose segments are joined by SharpSeparator.
func AllSharp(path string) ([]GUID, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		return nil, nil
	}
	if (len(p)+1)%(Base64Size+1) != 0 {
		return nil, ErrInvalidFormat.WithMessagef("malformed separated path: (%d) %s", len(p), p)
	}

	ids := make([]GUID, 0, (len(p)+1)/(Base64Size+1))
	for pos := 0; pos < len(p); pos += Base64Size + 1 {
		if end := pos + Base64Size; end < len(p) && p[end] != SharpSeparator {
			return nil, ErrInvalidFormat.WithMessagef("expected %q at %d in %s", SharpSeparator, end, p)
		}
		id, err := Parse(p[pos : pos+Base64Size])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Contains reports whether id is one of the segments of path.
func Contains(path, id string) bool {
	for _, s := range segments(path) {
		if s == id {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any segment of path is in set.
func ContainsAny(path string, set map[string]struct{}) bool {
	for _, s := range segments(path) {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}

func segments(path string) []string {
	p := strings.TrimSpace(path)
	n := len(p) / Base64Size
	segs := make([]string, n)
	for i := range segs {
		segs[i] = p[i*Base64Size : (i+1)*Base64Size]
	}
	return segs
}

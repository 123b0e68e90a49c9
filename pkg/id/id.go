// Package id puts the identifier schemes guidctl knows about behind one
// interface, so they can be generated and benchmarked side by side.
//
// Supported schemes:
//   - guid:   18-byte VitamCommon GUID (base64)
//   - uuidv7: RFC 9562 time-ordered UUID
//   - uuidv4: random UUID
//   - ulid:   lexicographically sortable identifier, monotonic per generator
//   - ksuid:  K-sortable identifier with a seconds timestamp
//
// Usage:
//
//	gen, err := id.New(id.TypeULID)
//	s := gen.Generate()
package id

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator defines the interface for ID generators.
type Generator interface {
	// Generate creates a new unique ID.
	Generate() string

	// GenerateN creates n unique IDs.
	GenerateN(n int) []string
}

// Type represents the type of ID generator.
type Type string

const (
	TypeGUID   Type = "guid"
	TypeUUIDv7 Type = "uuidv7"
	TypeUUIDv4 Type = "uuidv4"
	TypeULID   Type = "ulid"
	TypeKSUID  Type = "ksuid"
)

// Types lists every supported scheme.
func Types() []Type {
	return []Type{TypeGUID, TypeUUIDv7, TypeUUIDv4, TypeULID, TypeKSUID}
}

// New creates a generator for t. Names are case-insensitive.
func New(t Type) (Generator, error) {
	switch Type(strings.ToLower(string(t))) {
	case TypeGUID:
		return NewGUIDGenerator(), nil
	case TypeUUIDv7:
		return NewUUIDGenerator(WithVersion(7)), nil
	case TypeUUIDv4:
		return NewUUIDGenerator(WithVersion(4)), nil
	case TypeULID:
		return NewULIDGenerator(), nil
	case TypeKSUID:
		return NewKSUIDGenerator(), nil
	default:
		return nil, ErrUnknownType.WithMessagef("unknown id type %q", t)
	}
}

// ParseTypes parses a comma separated list of scheme names.
func ParseTypes(s string) ([]Type, error) {
	var types []Type
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, err := New(Type(name)); err != nil {
			return nil, err
		}
		types = append(types, Type(name))
	}
	if len(types) == 0 {
		return nil, ErrUnknownType.WithMessagef("no id types in %q", s)
	}
	return types, nil
}

// Identify reports which non-GUID scheme s is written in and the time
// embedded in it. UUIDs other than version 4 and 7 are not recognised.
// Version 4 UUIDs carry no time, so the returned time is zero.
func Identify(s string) (Type, time.Time, bool) {
	switch len(s) {
	case 26:
		if ts, err := ParseULIDTime(s); err == nil {
			return TypeULID, ts, true
		}
	case 27:
		if ts, err := ParseKSUIDTime(s); err == nil {
			return TypeKSUID, ts, true
		}
	}

	if !IsValidUUID(s) {
		return "", time.Time{}, false
	}
	u := uuid.MustParse(s)
	switch u.Version() {
	case 7:
		sec, nsec := u.Time().UnixTime()
		return TypeUUIDv7, time.Unix(sec, nsec), true
	case 4:
		return TypeUUIDv4, time.Time{}, true
	}
	return "", time.Time{}, false
}

func generateN(n int, gen func() string) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = gen()
	}
	return ids
}

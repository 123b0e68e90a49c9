package id

import (
	"time"

	"github.com/segmentio/ksuid"
)

// KSUIDGenerator generates KSUIDs.
type KSUIDGenerator struct{}

// NewKSUIDGenerator creates a new KSUID generator.
func NewKSUIDGenerator() *KSUIDGenerator {
	return &KSUIDGenerator{}
}

// Generate creates a new KSUID string.
func (g *KSUIDGenerator) Generate() string {
	return ksuid.New().String()
}

// GenerateN creates n KSUID strings.
func (g *KSUIDGenerator) GenerateN(n int) []string {
	return generateN(n, g.Generate)
}

// ParseKSUIDTime returns the timestamp embedded in s.
func ParseKSUIDTime(s string) (time.Time, error) {
	k, err := ksuid.Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return k.Time(), nil
}

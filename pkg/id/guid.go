package id

import "github.com/VitamPoc/VitamCommon/pkg/guid"

// GUIDGenerator adapts guid.Generator to Generator.
type GUIDGenerator struct {
	gen *guid.Generator
}

// NewGUIDGenerator wraps gen, or the process default when gen is nil.
func NewGUIDGenerator(gen ...*guid.Generator) *GUIDGenerator {
	if len(gen) > 0 && gen[0] != nil {
		return &GUIDGenerator{gen: gen[0]}
	}
	return &GUIDGenerator{gen: guid.Default()}
}

// Generate creates a new base64 GUID.
func (g *GUIDGenerator) Generate() string {
	return g.gen.Generate()
}

// GenerateN creates n base64 GUIDs.
func (g *GUIDGenerator) GenerateN(n int) []string {
	return g.gen.GenerateN(n)
}

// Package json wraps sonic for the JSON input and output of guidctl.
// On architectures sonic does not support it falls back to encoding/json.
package json

import (
	stdjson "encoding/json"
	"io"
	"runtime"

	"github.com/bytedance/sonic"
)

// RawMessage is a raw encoded JSON value.
type RawMessage = stdjson.RawMessage

// Encoder is a JSON encoder interface.
type Encoder interface {
	Encode(v any) error
	SetIndent(prefix, indent string)
}

type api interface {
	Unmarshal(data []byte, v any) error
	NewEncoder(w io.Writer) Encoder
}

var current api = stdAPI{}

func init() {
	if runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64" {
		current = sonicAPI{sonic.ConfigDefault}
	}
}

type sonicAPI struct {
	sonic.API
}

func (a sonicAPI) NewEncoder(w io.Writer) Encoder { return a.API.NewEncoder(w) }

type stdAPI struct{}

func (stdAPI) Unmarshal(data []byte, v any) error { return stdjson.Unmarshal(data, v) }
func (stdAPI) NewEncoder(w io.Writer) Encoder     { return stdjson.NewEncoder(w) }

// Unmarshal decodes JSON bytes into v.
func Unmarshal(data []byte, v any) error {
	return current.Unmarshal(data, v)
}

// NewEncoder creates a new JSON encoder for the writer.
func NewEncoder(w io.Writer) Encoder {
	return current.NewEncoder(w)
}

// IsUsingSonic returns true if sonic is being used for JSON operations.
func IsUsingSonic() bool {
	_, ok := current.(sonicAPI)
	return ok
}

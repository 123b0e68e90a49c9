package errors

import (
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

// ErrnoBuilder provides a fluent API for declaring component error codes.
//
// Example:
//
//	var ErrPathTooShort = errors.NewRequestError(errors.ServiceGUID, 2).
//	    Message("Path too short", "路径过短").
//	    MustBuild()
type ErrnoBuilder struct {
	service   int
	category  int
	sequence  int
	http      int
	grpc      codes.Code
	messageEN string
	messageZH string
}

func newBuilder(service, category, sequence, status int, grpc codes.Code) *ErrnoBuilder {
	return &ErrnoBuilder{
		service:  service,
		category: category,
		sequence: sequence,
		http:     status,
		grpc:     grpc,
	}
}

// Message sets both English and Chinese messages.
func (b *ErrnoBuilder) Message(en, zh string) *ErrnoBuilder {
	b.messageEN = en
	b.messageZH = zh
	return b
}

// Build registers the Errno and returns it.
// Returns an error if the message is empty or the code is taken.
func (b *ErrnoBuilder) Build() (*Errno, error) {
	if b.messageEN == "" {
		return nil, fmt.Errorf("English message is required")
	}

	e := &Errno{
		Code:      MakeCode(b.service, b.category, b.sequence),
		HTTP:      b.http,
		GRPCCode:  b.grpc,
		MessageEN: b.messageEN,
		MessageZH: b.messageZH,
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if existing, ok := errnoRegistry[e.Code]; ok {
		return nil, fmt.Errorf("errno code %d already registered: %s", e.Code, existing.MessageEN)
	}
	errnoRegistry[e.Code] = e

	return e, nil
}

// MustBuild is like Build but panics on error.
func (b *ErrnoBuilder) MustBuild() *Errno {
	e, err := b.Build()
	if err != nil {
		panic(err)
	}
	return e
}

// NewRequestError creates a builder for request validation errors (400).
func NewRequestError(service, sequence int) *ErrnoBuilder {
	return newBuilder(service, CategoryRequest, sequence, http.StatusBadRequest, codes.InvalidArgument)
}

// NewInternalError creates a builder for internal errors (500).
func NewInternalError(service, sequence int) *ErrnoBuilder {
	return newBuilder(service, CategoryInternal, sequence, http.StatusInternalServerError, codes.Internal)
}

// NewRateLimitError creates a builder for capacity errors (429).
func NewRateLimitError(service, sequence int) *ErrnoBuilder {
	return newBuilder(service, CategoryRateLimit, sequence, http.StatusTooManyRequests, codes.ResourceExhausted)
}

// NewConfigError creates a builder for configuration errors (500).
func NewConfigError(service, sequence int) *ErrnoBuilder {
	return newBuilder(service, CategoryConfig, sequence, http.StatusInternalServerError, codes.Internal)
}

package service

import "fmt"

// ErrInvalidServerRecord marks a batch rejected because one of its server
// records failed validation. The boundary maps it to a 400-class response.
type ErrInvalidServerRecord struct {
	error
}

func NewErrInvalidServerRecord(cause error) *ErrInvalidServerRecord {
	return &ErrInvalidServerRecord{fmt.Errorf("invalid server record: %w", cause)}
}

// Unwrap exposes the underlying validation error.
func (e *ErrInvalidServerRecord) Unwrap() error {
	return e.error
}

// ErrMalformedBatch marks a request body that is not a recognizable batch of
// server records. It is raised by the boundary, never by the engine.
type ErrMalformedBatch struct {
	error
}

func NewErrMalformedBatch(reason string) *ErrMalformedBatch {
	return &ErrMalformedBatch{fmt.Errorf("malformed request: %s", reason)}
}

package align

import "errors"

var (
	// ErrEmptySequence indicates one or both input sequences are empty.
	ErrEmptySequence = errors.New("align: input sequences must be non-empty")
	// ErrNilModel indicates Build was called without a scoring model.
	ErrNilModel = errors.New("align: scoring model must not be nil")
	// ErrInvalidTrace indicates an inconsistent trace matrix: a traceback
	// branch reached a cell it cannot legally leave. This is a defensive
	// check; it signals a bug in matrix construction, not bad input.
	ErrInvalidTrace = errors.New("align: trace matrix is inconsistent")
)

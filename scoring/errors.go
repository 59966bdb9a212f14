package scoring

import "errors"

var (
	// ErrUnknownSymbol indicates a substitution score was requested for a
	// symbol pair absent from the table.
	ErrUnknownSymbol = errors.New("scoring: symbol not present in substitution table")
	// ErrEmptyTable indicates a substitution table with no entries.
	ErrEmptyTable = errors.New("scoring: substitution table must not be empty")
	// ErrBadTable indicates a malformed substitution table file.
	ErrBadTable = errors.New("scoring: malformed substitution table")
)

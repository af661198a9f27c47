package searcher

import "errors"

var (
	// ErrNoLegalMove is returned when a search is started on a state without
	// actions. Callers should check for a finished game first.
	ErrNoLegalMove = errors.New("no legal move")

	ErrInvalidDepth = errors.New("invalid search depth")
)

package types

import "errors"

// Domain errors for type validation
var (
	ErrEmptyTitle    = errors.New("symbol title cannot be empty")
	ErrEmptyKind     = errors.New("symbol kind identifier cannot be empty")
	ErrEmptyPath     = errors.New("path cannot be empty")
	ErrNegativeScore = errors.New("score must be >= 0")
)

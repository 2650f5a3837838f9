package lsystem

import "errors"

var (
	// ErrReservedSymbol is returned when the wildcard code is used where a
	// concrete symbol is required.
	ErrReservedSymbol = errors.New("lsystem: reserved wildcard symbol")
	// ErrDuplicateSymbol is returned when a palette already holds the code.
	ErrDuplicateSymbol = errors.New("lsystem: duplicate symbol")
	// ErrUnknownSymbol is returned when a code is not part of the palette.
	ErrUnknownSymbol = errors.New("lsystem: unknown symbol")
	// ErrGridSize is returned for grids that are empty or not square.
	ErrGridSize = errors.New("lsystem: grid must be square and non-empty")
	// ErrReplacementSize is returned for rule replacements that are not Dims×Dims.
	ErrReplacementSize = errors.New("lsystem: replacement grid has wrong size")
	// ErrWildcardInGrid is returned when a seed grid contains the wildcard.
	ErrWildcardInGrid = errors.New("lsystem: wildcard in seed grid")
)

package domain

import "errors"

// Sentinel errors shared across the domain and usecase layers
var (
	// ErrDuplicateSymbol is returned when a snapshot is constructed from a
	// listing that contains the same symbol twice
	ErrDuplicateSymbol = errors.New("duplicate symbol in snapshot")

	// ErrUnknownSymbol is returned when a strategy selects a symbol that is
	// not part of the snapshot it was given
	ErrUnknownSymbol = errors.New("selected symbol not present in snapshot")

	// ErrDuplicateInvestorName is returned by the comparison engine when two
	// investors share a name; overwriting silently would hide a result
	ErrDuplicateInvestorName = errors.New("duplicate investor name")
)

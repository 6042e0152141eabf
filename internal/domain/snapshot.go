package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Snapshot represents the immutable state of the market at one instant.
// It maps symbols to instruments while preserving the insertion order of
// the listing it was built from; strategies rely on that order for stable
// tie-breaks, so plain Go maps are not enough on their own.
type Snapshot struct {
	symbols     []string
	instruments map[string]Instrument
}

// NewSnapshot builds a snapshot from an ordered instrument listing.
// Every instrument is validated and duplicate symbols are rejected; the
// snapshot is read-only once constructed.
func NewSnapshot(listing []Instrument) (*Snapshot, error) {
	snap := &Snapshot{
		symbols:     make([]string, 0, len(listing)),
		instruments: make(map[string]Instrument, len(listing)),
	}

	for _, inst := range listing {
		if err := inst.Validate(); err != nil {
			return nil, fmt.Errorf("invalid instrument %q: %w", inst.Symbol, err)
		}
		if _, exists := snap.instruments[inst.Symbol]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, inst.Symbol)
		}
		snap.symbols = append(snap.symbols, inst.Symbol)
		snap.instruments[inst.Symbol] = inst
	}

	return snap, nil
}

// Symbols returns all symbols in insertion order.
// A copy is returned so callers cannot mutate the snapshot's ordering.
func (s *Snapshot) Symbols() []string {
	symbols := make([]string, len(s.symbols))
	copy(symbols, s.symbols)
	return symbols
}

// Get retrieves the instrument for a symbol.
// The second return value reports whether the symbol is listed.
func (s *Snapshot) Get(symbol string) (Instrument, bool) {
	inst, ok := s.instruments[symbol]
	return inst, ok
}

// Price retrieves the price for a symbol, reporting whether it is listed.
func (s *Snapshot) Price(symbol string) (decimal.Decimal, bool) {
	inst, ok := s.instruments[symbol]
	if !ok {
		return decimal.Zero, false
	}
	return inst.Price, true
}

// Len returns the number of listed instruments.
func (s *Snapshot) Len() int {
	return len(s.symbols)
}

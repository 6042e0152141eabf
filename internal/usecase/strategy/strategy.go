// Package strategy provides the built-in stock-selection strategies.
// Every variant implements domain.SelectionStrategy and caps its result at
// MaxPicks symbols.
package strategy

import (
	"sort"

	"github.com/jtkrd/investment-game/internal/domain"
)

// MaxPicks is the selection cap every built-in strategy enforces
const MaxPicks = 10

// Aggressive buys the dip: symbols sorted by day change ascending, so the
// biggest losers come first. Ties keep the snapshot's insertion order.
type Aggressive struct{}

// NewAggressive creates an Aggressive strategy
func NewAggressive() Aggressive {
	return Aggressive{}
}

// Name implements domain.SelectionStrategy
func (Aggressive) Name() string {
	return "aggressive"
}

// Select implements domain.SelectionStrategy
func (Aggressive) Select(snap *domain.Snapshot) []string {
	symbols := snap.Symbols()
	sort.SliceStable(symbols, func(i, j int) bool {
		a, _ := snap.Get(symbols[i])
		b, _ := snap.Get(symbols[j])
		return a.ChangeOrZero().LessThan(b.ChangeOrZero())
	})
	return capPicks(symbols)
}

// Conservative buys stability: symbols sorted by the absolute value of the
// day change ascending, so the flattest movers come first. Ties keep the
// snapshot's insertion order.
type Conservative struct{}

// NewConservative creates a Conservative strategy
func NewConservative() Conservative {
	return Conservative{}
}

// Name implements domain.SelectionStrategy
func (Conservative) Name() string {
	return "conservative"
}

// Select implements domain.SelectionStrategy
func (Conservative) Select(snap *domain.Snapshot) []string {
	symbols := snap.Symbols()
	sort.SliceStable(symbols, func(i, j int) bool {
		a, _ := snap.Get(symbols[i])
		b, _ := snap.Get(symbols[j])
		return a.ChangeOrZero().Abs().LessThan(b.ChangeOrZero().Abs())
	})
	return capPicks(symbols)
}

// capPicks truncates a selection to the MaxPicks cap
func capPicks(symbols []string) []string {
	if len(symbols) > MaxPicks {
		return symbols[:MaxPicks]
	}
	return symbols
}

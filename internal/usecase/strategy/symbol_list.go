package strategy

import "github.com/jtkrd/investment-game/internal/domain"

// SymbolList is the player-picked strategy: an explicit, ordered list of
// symbols supplied at construction time. Select filters the list down to
// symbols the snapshot actually carries, preserving the caller's order.
// Callers are expected to supply at most MaxPicks symbols, but the cap is
// still applied defensively to honor the shared contract.
type SymbolList struct {
	symbols []string
}

// NewSymbolList creates a SymbolList strategy.
// The input is copied so later mutation by the caller has no effect.
func NewSymbolList(symbols []string) SymbolList {
	owned := make([]string, len(symbols))
	copy(owned, symbols)
	return SymbolList{symbols: owned}
}

// Name implements domain.SelectionStrategy
func (SymbolList) Name() string {
	return "custom picks"
}

// Select implements domain.SelectionStrategy
func (s SymbolList) Select(snap *domain.Snapshot) []string {
	picks := make([]string, 0, len(s.symbols))
	for _, symbol := range s.symbols {
		if _, ok := snap.Get(symbol); ok {
			picks = append(picks, symbol)
		}
	}
	return capPicks(picks)
}

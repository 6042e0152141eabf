package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolList_FiltersToListedSymbolsPreservingOrder(t *testing.T) {
	snap := mustSnapshot(t,
		inst("AAPL", "150", "-0.5"),
		inst("MSFT", "280", "0.2"),
		inst("GOOGL", "2720", "-1.0"),
	)

	picks := NewSymbolList([]string{"MSFT", "GHOST", "AAPL"}).Select(snap)

	assert.Equal(t, []string{"MSFT", "AAPL"}, picks)
}

func TestSymbolList_EmptyResultWhenNothingListed(t *testing.T) {
	snap := mustSnapshot(t, inst("AAPL", "150", "-0.5"))

	picks := NewSymbolList([]string{"GHOST", "PHANTOM"}).Select(snap)

	assert.Empty(t, picks)
}

func TestSymbolList_CapsDefensivelyAtTen(t *testing.T) {
	snap := twelveMovers(t)

	// callers are supposed to cap their list themselves; an oversized one
	// must still be truncated rather than crash
	oversized := snap.Symbols()
	require.Len(t, oversized, 12)

	picks := NewSymbolList(oversized).Select(snap)

	assert.Len(t, picks, MaxPicks)
	assert.Equal(t, oversized[:MaxPicks], picks)
}

func TestSymbolList_CopiesInput(t *testing.T) {
	snap := mustSnapshot(t,
		inst("AAPL", "150", "-0.5"),
		inst("MSFT", "280", "0.2"),
	)

	input := []string{"AAPL", "MSFT"}
	strat := NewSymbolList(input)
	input[0] = "GHOST"

	assert.Equal(t, []string{"AAPL", "MSFT"}, strat.Select(snap))
}

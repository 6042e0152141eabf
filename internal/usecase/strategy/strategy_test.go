package strategy

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtkrd/investment-game/internal/domain"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func inst(symbol, price, change string) domain.Instrument {
	i := domain.Instrument{Symbol: symbol, Price: dec(price)}
	if change != "" {
		c := dec(change)
		i.Change = &c
	}
	return i
}

func mustSnapshot(t *testing.T, listing ...domain.Instrument) *domain.Snapshot {
	t.Helper()
	snap, err := domain.NewSnapshot(listing)
	require.NoError(t, err)
	return snap
}

// twelveMovers builds a 12-instrument market so the 10-cap is exercised
func twelveMovers(t *testing.T) *domain.Snapshot {
	t.Helper()
	return mustSnapshot(t,
		inst("S1", "10", "-2.0"),
		inst("S2", "10", "1.5"),
		inst("S3", "10", "-0.5"),
		inst("S4", "10", "0.1"),
		inst("S5", "10", "-1.2"),
		inst("S6", "10", "0.6"),
		inst("S7", "10", "-0.1"),
		inst("S8", "10", "2.0"),
		inst("S9", "10", "-0.8"),
		inst("S10", "10", "0.3"),
		inst("S11", "10", "-0.3"),
		inst("S12", "10", "0.9"),
	)
}

func TestAggressive_SortsByChangeAscendingCappedAtTen(t *testing.T) {
	snap := twelveMovers(t)

	picks := NewAggressive().Select(snap)

	require.Len(t, picks, MaxPicks)
	assert.Equal(t, "S1", picks[0], "biggest drop first")

	// ascending change, all present, no duplicates
	seen := make(map[string]bool)
	prev := decimal.NewFromInt(-1000)
	for _, symbol := range picks {
		i, ok := snap.Get(symbol)
		require.True(t, ok)
		assert.False(t, seen[symbol], "duplicate pick %s", symbol)
		seen[symbol] = true
		assert.True(t, i.ChangeOrZero().GreaterThanOrEqual(prev))
		prev = i.ChangeOrZero()
	}
}

func TestConservative_SortsByAbsoluteChangeAscending(t *testing.T) {
	snap := twelveMovers(t)

	picks := NewConservative().Select(snap)

	require.Len(t, picks, MaxPicks)
	// |0.1| is the smallest move, |-0.1| ties it and came later in the
	// snapshot, so stable ordering keeps S4 first
	assert.Equal(t, []string{"S4", "S7"}, picks[:2])

	prev := decimal.Zero
	for _, symbol := range picks {
		i, ok := snap.Get(symbol)
		require.True(t, ok)
		abs := i.ChangeOrZero().Abs()
		assert.True(t, abs.GreaterThanOrEqual(prev))
		prev = abs
	}
}

func TestAggressive_TieBreakKeepsSnapshotOrder(t *testing.T) {
	snap := mustSnapshot(t,
		inst("FIRST", "10", "0.5"),
		inst("SECOND", "10", "0.5"),
		inst("THIRD", "10", "-1.0"),
	)

	picks := NewAggressive().Select(snap)

	assert.Equal(t, []string{"THIRD", "FIRST", "SECOND"}, picks)
}

func TestStrategies_MissingChangeSortsAsZero(t *testing.T) {
	snap := mustSnapshot(t,
		inst("UP", "10", "1.0"),
		inst("FLAT", "10", ""), // price-only listing
		inst("DOWN", "10", "-1.0"),
	)

	assert.Equal(t, []string{"DOWN", "FLAT", "UP"}, NewAggressive().Select(snap))
	assert.Equal(t, []string{"FLAT", "UP", "DOWN"}, NewConservative().Select(snap))
}

func TestRandom_FixedSeedIsReproducible(t *testing.T) {
	snap := twelveMovers(t)

	first := NewRandom(rand.New(rand.NewSource(42))).Select(snap)
	second := NewRandom(rand.New(rand.NewSource(42))).Select(snap)

	require.Len(t, first, MaxPicks)
	assert.Equal(t, first, second)

	// every pick is a distinct listed symbol
	seen := make(map[string]bool)
	for _, symbol := range first {
		_, ok := snap.Get(symbol)
		assert.True(t, ok)
		assert.False(t, seen[symbol])
		seen[symbol] = true
	}
}

func TestRandom_SmallMarketReturnsEverything(t *testing.T) {
	snap := mustSnapshot(t, inst("A", "10", ""), inst("B", "10", ""))

	picks := NewRandom(rand.New(rand.NewSource(1))).Select(snap)

	assert.ElementsMatch(t, []string{"A", "B"}, picks)
}

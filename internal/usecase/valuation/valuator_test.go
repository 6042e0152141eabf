package valuation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtkrd/investment-game/internal/domain"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func mustSnapshot(t *testing.T, prices map[string]string, order ...string) *domain.Snapshot {
	t.Helper()
	listing := make([]domain.Instrument, 0, len(order))
	for _, symbol := range order {
		listing = append(listing, domain.Instrument{Symbol: symbol, Price: dec(prices[symbol])})
	}
	snap, err := domain.NewSnapshot(listing)
	require.NoError(t, err)
	return snap
}

func TestValue_SumsSharesTimesPrice(t *testing.T) {
	snap := mustSnapshot(t, map[string]string{"AAPL": "150", "MSFT": "280"}, "AAPL", "MSFT")

	value := NewValuator().Value(map[string]int64{"AAPL": 10, "MSFT": 2}, snap)

	assert.True(t, value.Equal(dec("2060"))) // 10*150 + 2*280
}

func TestValue_AbsentSymbolContributesZero(t *testing.T) {
	snap := mustSnapshot(t, map[string]string{"AAPL": "150"}, "AAPL")

	// DELISTED isn't in the snapshot; it values at zero, not an error
	value := NewValuator().Value(map[string]int64{"AAPL": 2, "DELISTED": 100}, snap)

	assert.True(t, value.Equal(dec("300")))
}

func TestPercentReturn_TwentyPercentGain(t *testing.T) {
	initial := mustSnapshot(t, map[string]string{"X": "100"}, "X")
	final := mustSnapshot(t, map[string]string{"X": "120"}, "X")

	ret := NewValuator().PercentReturn(map[string]int64{"X": 10}, initial, final)

	require.True(t, ret.HasBaseline)
	assert.True(t, ret.Percent.Equal(dec("20")))
}

func TestPercentReturn_Loss(t *testing.T) {
	initial := mustSnapshot(t, map[string]string{"X": "200"}, "X")
	final := mustSnapshot(t, map[string]string{"X": "150"}, "X")

	ret := NewValuator().PercentReturn(map[string]int64{"X": 4}, initial, final)

	require.True(t, ret.HasBaseline)
	assert.True(t, ret.Percent.Equal(dec("-25")))
}

func TestPercentReturn_ZeroBaselineIsSignaledDistinctly(t *testing.T) {
	initial := mustSnapshot(t, map[string]string{"X": "100"}, "X")
	final := mustSnapshot(t, map[string]string{"X": "120"}, "X")

	// empty holdings: no shares were ever bought
	ret := NewValuator().PercentReturn(map[string]int64{}, initial, final)

	assert.False(t, ret.HasBaseline, "zero baseline must be distinguishable from a flat return")
	assert.True(t, ret.Percent.IsZero())
}

func TestPercentReturn_HoldingsAbsentFromBaselineSnapshot(t *testing.T) {
	// all held symbols are unknown to the initial snapshot, so the
	// baseline collapses to zero and the no-baseline signal fires
	initial := mustSnapshot(t, map[string]string{"X": "100"}, "X")
	final := mustSnapshot(t, map[string]string{"Y": "120"}, "Y")

	ret := NewValuator().PercentReturn(map[string]int64{"Y": 5}, initial, final)

	assert.False(t, ret.HasBaseline)
	assert.True(t, ret.Percent.IsZero())
}

package seeder

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialSnapshot_TwentyFullyAttributedInstruments(t *testing.T) {
	snap, err := InitialSnapshot()
	require.NoError(t, err)

	require.Equal(t, 20, snap.Len())
	assert.Equal(t, "AAPL", snap.Symbols()[0])
	assert.Equal(t, "PEP", snap.Symbols()[19])

	for _, symbol := range snap.Symbols() {
		inst, ok := snap.Get(symbol)
		require.True(t, ok)
		assert.NotNil(t, inst.Change, "%s should carry change", symbol)
		assert.NotNil(t, inst.MarketCap, "%s should carry market cap", symbol)
		assert.NotNil(t, inst.Volatility, "%s should carry volatility", symbol)
	}

	aapl, _ := snap.Get("AAPL")
	assert.True(t, aapl.Price.Equal(decimal.NewFromInt(150)))
	assert.True(t, aapl.Change.Equal(decimal.RequireFromString("-0.5")))
}

func TestFinalSnapshot_PriceOnly(t *testing.T) {
	snap, err := FinalSnapshot()
	require.NoError(t, err)

	require.Equal(t, 20, snap.Len())

	for _, symbol := range snap.Symbols() {
		inst, ok := snap.Get(symbol)
		require.True(t, ok)
		assert.Nil(t, inst.Change)
		assert.Nil(t, inst.MarketCap)
		assert.Nil(t, inst.Volatility)
	}

	aapl, _ := snap.Get("AAPL")
	assert.True(t, aapl.Price.Equal(decimal.NewFromInt(165)))
}

func TestSnapshots_CoverTheSameSymbols(t *testing.T) {
	initial, err := InitialSnapshot()
	require.NoError(t, err)
	final, err := FinalSnapshot()
	require.NoError(t, err)

	assert.Equal(t, initial.Symbols(), final.Symbols())
}

// Package seeder provides the built-in market tables the game ships with:
// a full-attribute snapshot for investment day and a price-only snapshot
// one year later.
package seeder

import (
	"github.com/shopspring/decimal"

	"github.com/jtkrd/investment-game/internal/domain"
)

// row is the compact form the seed tables are written in; zero optional
// fields would be ambiguous, so presence is tracked explicitly
type row struct {
	symbol     string
	price      int64
	change     float64
	marketCap  int64
	volatility int64
	priceOnly  bool
}

var initialRows = []row{
	{symbol: "AAPL", price: 150, change: -0.5, marketCap: 2200, volatility: 25},
	{symbol: "GOOGL", price: 2720, change: -1.0, marketCap: 1800, volatility: 30},
	{symbol: "MSFT", price: 280, change: 0.2, marketCap: 2000, volatility: 22},
	{symbol: "AMZN", price: 3100, change: -2.0, marketCap: 1600, volatility: 35},
	{symbol: "FB", price: 275, change: 0.5, marketCap: 900, volatility: 40},
	{symbol: "NFLX", price: 480, change: -0.3, marketCap: 300, volatility: 50},
	{symbol: "TSLA", price: 900, change: 1.5, marketCap: 800, volatility: 60},
	{symbol: "BABA", price: 88, change: -1.2, marketCap: 500, volatility: 45},
	{symbol: "V", price: 210, change: 0.4, marketCap: 500, volatility: 18},
	{symbol: "MA", price: 330, change: 0.1, marketCap: 400, volatility: 20},
	{symbol: "INTC", price: 48, change: -0.8, marketCap: 220, volatility: 30},
	{symbol: "AMD", price: 106, change: 1.0, marketCap: 130, volatility: 55},
	{symbol: "PYPL", price: 104, change: -0.2, marketCap: 250, volatility: 28},
	{symbol: "CSCO", price: 45, change: 0.6, marketCap: 200, volatility: 23},
	{symbol: "IBM", price: 135, change: -0.4, marketCap: 120, volatility: 19},
	{symbol: "NVDA", price: 300, change: 2.0, marketCap: 500, volatility: 50},
	{symbol: "ORCL", price: 88, change: 0.3, marketCap: 250, volatility: 20},
	{symbol: "ACN", price: 310, change: -0.7, marketCap: 180, volatility: 17},
	{symbol: "KO", price: 60, change: 0.1, marketCap: 230, volatility: 12},
	{symbol: "PEP", price: 160, change: -0.1, marketCap: 200, volatility: 15},
}

var finalRows = []row{
	{symbol: "AAPL", price: 165, priceOnly: true},
	{symbol: "GOOGL", price: 2900, priceOnly: true},
	{symbol: "MSFT", price: 300, priceOnly: true},
	{symbol: "AMZN", price: 2800, priceOnly: true},
	{symbol: "FB", price: 295, priceOnly: true},
	{symbol: "NFLX", price: 500, priceOnly: true},
	{symbol: "TSLA", price: 950, priceOnly: true},
	{symbol: "BABA", price: 95, priceOnly: true},
	{symbol: "V", price: 225, priceOnly: true},
	{symbol: "MA", price: 350, priceOnly: true},
	{symbol: "INTC", price: 52, priceOnly: true},
	{symbol: "AMD", price: 116, priceOnly: true},
	{symbol: "PYPL", price: 110, priceOnly: true},
	{symbol: "CSCO", price: 50, priceOnly: true},
	{symbol: "IBM", price: 145, priceOnly: true},
	{symbol: "NVDA", price: 330, priceOnly: true},
	{symbol: "ORCL", price: 95, priceOnly: true},
	{symbol: "ACN", price: 330, priceOnly: true},
	{symbol: "KO", price: 65, priceOnly: true},
	{symbol: "PEP", price: 170, priceOnly: true},
}

// InitialSnapshot builds the investment-day snapshot with full attributes
func InitialSnapshot() (*domain.Snapshot, error) {
	return buildSnapshot(initialRows)
}

// FinalSnapshot builds the one-year-later snapshot, which carries prices
// only
func FinalSnapshot() (*domain.Snapshot, error) {
	return buildSnapshot(finalRows)
}

func buildSnapshot(rows []row) (*domain.Snapshot, error) {
	listing := make([]domain.Instrument, 0, len(rows))
	for _, r := range rows {
		inst := domain.Instrument{
			Symbol: r.symbol,
			Price:  decimal.NewFromInt(r.price),
		}
		if !r.priceOnly {
			change := decimal.NewFromFloat(r.change)
			marketCap := decimal.NewFromInt(r.marketCap)
			volatility := decimal.NewFromInt(r.volatility)
			inst.Change = &change
			inst.MarketCap = &marketCap
			inst.Volatility = &volatility
		}
		listing = append(listing, inst)
	}
	return domain.NewSnapshot(listing)
}

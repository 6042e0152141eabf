package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Instrument represents one listed security at a point in time
// Price is always present; the remaining attributes are optional per
// snapshot (a later snapshot may carry prices only), so they are pointers
// with nil meaning "not observed"
type Instrument struct {
	Symbol     string
	Price      decimal.Decimal
	Change     *decimal.Decimal // signed day-over-day percentage
	MarketCap  *decimal.Decimal // in millions
	Volatility *decimal.Decimal // percentage
}

// Validate ensures the instrument adheres to domain rules
// Returns an error if validation fails
func (i *Instrument) Validate() error {
	if i.Symbol == "" {
		return errors.New("instrument symbol cannot be empty")
	}

	if i.Price.LessThanOrEqual(decimal.Zero) {
		return errors.New("instrument price must be positive")
	}

	if i.MarketCap != nil && i.MarketCap.IsNegative() {
		return errors.New("instrument market cap cannot be negative")
	}

	if i.Volatility != nil && i.Volatility.IsNegative() {
		return errors.New("instrument volatility cannot be negative")
	}

	return nil
}

// ChangeOrZero returns the day-over-day change, treating an absent value
// as a flat 0% move so strategies can sort uniformly
func (i *Instrument) ChangeOrZero() decimal.Decimal {
	if i.Change == nil {
		return decimal.Zero
	}
	return *i.Change
}

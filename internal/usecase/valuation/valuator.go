// Package valuation prices holdings against market snapshots and computes
// percentage returns between two of them.
package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/jtkrd/investment-game/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// Return represents a computed percentage return.
// HasBaseline is false when the initial portfolio value was zero (no
// shares were ever bought, or everything bought was worthless); Percent is
// zero in that case, and callers use the flag to tell "no investment"
// apart from genuinely flat performance.
type Return struct {
	Percent     decimal.Decimal
	HasBaseline bool
}

// Valuator handles portfolio valuation operations
type Valuator struct{}

// NewValuator creates a new Valuator instance
func NewValuator() *Valuator {
	return &Valuator{}
}

// Value computes the worth of the holdings under the given snapshot.
// A held symbol the snapshot does not carry contributes zero, the same as
// a delisted or unknown security would.
func (v *Valuator) Value(holdings map[string]int64, snap *domain.Snapshot) decimal.Decimal {
	total := decimal.Zero
	for symbol, shares := range holdings {
		price, ok := snap.Price(symbol)
		if !ok {
			continue
		}
		total = total.Add(decimal.NewFromInt(shares).Mul(price))
	}
	return total
}

// PercentReturn computes ((final - initial) / initial) * 100 for the
// holdings across the two snapshots. A zero initial value yields a zero
// percent Return with HasBaseline unset.
func (v *Valuator) PercentReturn(holdings map[string]int64, initial, final *domain.Snapshot) Return {
	initialValue := v.Value(holdings, initial)
	if initialValue.IsZero() {
		return Return{Percent: decimal.Zero, HasBaseline: false}
	}

	finalValue := v.Value(holdings, final)
	percent := finalValue.Sub(initialValue).Div(initialValue).Mul(oneHundred)

	return Return{Percent: percent, HasBaseline: true}
}

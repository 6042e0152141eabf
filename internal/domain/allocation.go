package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	errAllocationLineMismatch  = errors.New("allocation line spend does not equal shares times price")
	errAllocationTotalMismatch = errors.New("allocation total does not equal sum of lines")
	errAllocationOverspent     = errors.New("allocation overspent the balance")
)

// AllocationLine represents one purchase made during an allocation pass,
// in the order the strategy returned the symbol. A symbol the investor
// could not afford still produces a line with zero shares.
type AllocationLine struct {
	Symbol string
	Price  decimal.Decimal
	Shares int64
	Spent  decimal.Decimal
}

// AllocationReport represents the outcome of one Invest call.
// Invested is false when the strategy selected nothing; callers must
// surface that case rather than swallow it.
type AllocationReport struct {
	Invested         bool
	AmountPerSymbol  decimal.Decimal
	Lines            []AllocationLine
	TotalSpent       decimal.Decimal
	RemainingBalance decimal.Decimal
}

// Validate ensures the report adheres to the allocation safety rules:
// spending never exceeds what the lines account for and the remaining
// balance is never negative
func (r *AllocationReport) Validate() error {
	total := decimal.Zero
	for _, line := range r.Lines {
		if !line.Spent.Equal(decimal.NewFromInt(line.Shares).Mul(line.Price)) {
			return errAllocationLineMismatch
		}
		total = total.Add(line.Spent)
	}

	if !total.Equal(r.TotalSpent) {
		return errAllocationTotalMismatch
	}

	if r.RemainingBalance.IsNegative() {
		return errAllocationOverspent
	}

	return nil
}

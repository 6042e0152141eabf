package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Investor represents one participant in the game: a name, an owned
// selection strategy, a cash balance, and the holdings produced by a
// single allocation pass. The balance only ever decreases during Invest
// and is never replenished.
type Investor struct {
	Name     string
	Strategy SelectionStrategy
	Balance  decimal.Decimal
	Holdings map[string]int64
}

// NewInvestor creates an investor with an empty portfolio
// Returns an error if the name is empty, the strategy is nil, or the
// starting balance is not positive
func NewInvestor(name string, strategy SelectionStrategy, balance decimal.Decimal) (*Investor, error) {
	if name == "" {
		return nil, errors.New("investor name cannot be empty")
	}
	if strategy == nil {
		return nil, errors.New("investor strategy cannot be nil")
	}
	if balance.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("investor balance must be positive")
	}

	return &Investor{
		Name:     name,
		Strategy: strategy,
		Balance:  balance,
		Holdings: make(map[string]int64),
	}, nil
}

// Invest runs one equal-weight allocation pass against the snapshot.
// Logic:
//  1. Ask the strategy for its ordered symbol picks
//  2. If nothing was picked: no-op, Invested=false on the report
//  3. Split the current balance evenly across the picks
//  4. For each pick, in strategy order, buy floor(amount/price) whole
//     shares and deduct the exact spend from the balance
//
// A pick whose price exceeds the per-symbol amount simply buys zero
// shares; that is an expected outcome, not an error. If the strategy
// repeats a symbol, the last occurrence wins in Holdings while the
// balance is deducted for every occurrence.
func (inv *Investor) Invest(snap *Snapshot) (*AllocationReport, error) {
	picks := inv.Strategy.Select(snap)
	if len(picks) == 0 {
		return &AllocationReport{
			Invested:         false,
			RemainingBalance: inv.Balance,
		}, nil
	}

	amountPerSymbol := inv.Balance.Div(decimal.NewFromInt(int64(len(picks))))

	report := &AllocationReport{
		Invested:        true,
		AmountPerSymbol: amountPerSymbol,
		Lines:           make([]AllocationLine, 0, len(picks)),
	}

	for _, symbol := range picks {
		price, ok := snap.Price(symbol)
		if !ok {
			return nil, fmt.Errorf("%w: %s (strategy %s)", ErrUnknownSymbol, symbol, inv.Strategy.Name())
		}

		shares := amountPerSymbol.Div(price).IntPart()
		spent := decimal.NewFromInt(shares).Mul(price)

		inv.Holdings[symbol] = shares
		inv.Balance = inv.Balance.Sub(spent)

		report.Lines = append(report.Lines, AllocationLine{
			Symbol: symbol,
			Price:  price,
			Shares: shares,
			Spent:  spent,
		})
		report.TotalSpent = report.TotalSpent.Add(spent)
	}

	report.RemainingBalance = inv.Balance

	if err := report.Validate(); err != nil {
		return nil, err
	}

	return report, nil
}

// Package comparison ranks investor performance across two market
// snapshots.
package comparison

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"

	"github.com/jtkrd/investment-game/internal/domain"
	"github.com/jtkrd/investment-game/internal/usecase/valuation"
)

// Standing represents one investor's result, in the order the investors
// were supplied
type Standing struct {
	Name   string
	Return valuation.Return
}

// Summary represents aggregate statistics over all computed returns
type Summary struct {
	MeanReturn   decimal.Decimal
	ReturnStdDev decimal.Decimal
}

// Result represents the outcome of a comparison run
type Result struct {
	// Returns maps investor name to percent return
	Returns map[string]decimal.Decimal

	// Standings preserves the order investors were supplied in
	Standings []Standing

	// Best is the name of the best performer; exact ties go to the
	// first-encountered investor
	Best string

	// BestReturn is the best performer's percent return
	BestReturn decimal.Decimal

	Summary Summary
}

// Engine runs valuation across a collection of investors and determines
// the best performer
type Engine struct {
	valuator *valuation.Valuator
}

// NewEngine creates a new Engine instance
func NewEngine(valuator *valuation.Valuator) *Engine {
	return &Engine{valuator: valuator}
}

// Compare computes each investor's percent return between the two
// snapshots and picks the maximum. Inputs are not mutated. Duplicate
// investor names are rejected: overwriting one result with another would
// silently hide it.
func (e *Engine) Compare(investors []*domain.Investor, initial, final *domain.Snapshot) (*Result, error) {
	if len(investors) == 0 {
		return nil, errors.New("cannot compare an empty investor list")
	}

	result := &Result{
		Returns:   make(map[string]decimal.Decimal, len(investors)),
		Standings: make([]Standing, 0, len(investors)),
	}

	best := decimal.Zero
	haveBest := false

	for _, investor := range investors {
		if _, seen := result.Returns[investor.Name]; seen {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateInvestorName, investor.Name)
		}

		ret := e.valuator.PercentReturn(investor.Holdings, initial, final)
		result.Returns[investor.Name] = ret.Percent
		result.Standings = append(result.Standings, Standing{Name: investor.Name, Return: ret})

		if !haveBest || ret.Percent.GreaterThan(best) {
			best = ret.Percent
			haveBest = true
			result.Best = investor.Name
			result.BestReturn = ret.Percent
		}
	}

	result.Summary = summarize(result.Standings)

	return result, nil
}

// summarize computes mean and sample standard deviation over the returns.
// With fewer than two samples the deviation is reported as zero.
func summarize(standings []Standing) Summary {
	returns := make([]float64, 0, len(standings))
	for _, standing := range standings {
		f, _ := standing.Return.Percent.Float64()
		returns = append(returns, f)
	}

	mean, err := stats.Mean(returns)
	if err != nil {
		mean = 0
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		stdev = 0
	}

	return Summary{
		MeanReturn:   decimal.NewFromFloat(mean),
		ReturnStdDev: decimal.NewFromFloat(stdev),
	}
}

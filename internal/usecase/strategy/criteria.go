package strategy

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jtkrd/investment-game/internal/domain"
)

// Criteria selects symbols whose market cap and volatility both fall
// within closed bounds, in snapshot order, capped at MaxPicks. An
// instrument missing one of the attributes is not excluded on absent
// data: the missing attribute counts as satisfying its bounds. An empty
// result is a valid outcome when nothing qualifies.
type Criteria struct {
	minCap decimal.Decimal
	maxCap decimal.Decimal
	minVol decimal.Decimal
	maxVol decimal.Decimal
}

// NewCriteria creates a Criteria strategy from pre-validated numeric
// bounds. Inverted ranges are rejected; everything else is the boundary
// collaborator's responsibility.
func NewCriteria(minCap, maxCap, minVol, maxVol decimal.Decimal) (Criteria, error) {
	if minCap.GreaterThan(maxCap) {
		return Criteria{}, fmt.Errorf("market cap bounds inverted: %s > %s", minCap, maxCap)
	}
	if minVol.GreaterThan(maxVol) {
		return Criteria{}, fmt.Errorf("volatility bounds inverted: %s > %s", minVol, maxVol)
	}
	if minCap.IsNegative() || minVol.IsNegative() {
		return Criteria{}, errors.New("criteria bounds cannot be negative")
	}

	return Criteria{
		minCap: minCap,
		maxCap: maxCap,
		minVol: minVol,
		maxVol: maxVol,
	}, nil
}

// Name implements domain.SelectionStrategy
func (Criteria) Name() string {
	return "custom criteria"
}

// Select implements domain.SelectionStrategy
func (c Criteria) Select(snap *domain.Snapshot) []string {
	picks := make([]string, 0, MaxPicks)
	for _, symbol := range snap.Symbols() {
		inst, _ := snap.Get(symbol)
		if withinBounds(inst.MarketCap, c.minCap, c.maxCap) &&
			withinBounds(inst.Volatility, c.minVol, c.maxVol) {
			picks = append(picks, symbol)
		}
	}
	return capPicks(picks)
}

// withinBounds reports whether value lies in the closed [min, max] range,
// with a nil value counting as satisfying
func withinBounds(value *decimal.Decimal, min, max decimal.Decimal) bool {
	if value == nil {
		return true
	}
	return value.GreaterThanOrEqual(min) && value.LessThanOrEqual(max)
}

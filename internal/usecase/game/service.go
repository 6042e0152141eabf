// Package game orchestrates one round of the investment game: seed the
// house investors, let everyone invest against the initial snapshot, then
// revalue and rank against the final one.
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jtkrd/investment-game/internal/domain"
	"github.com/jtkrd/investment-game/internal/usecase/comparison"
	"github.com/jtkrd/investment-game/internal/usecase/strategy"
)

// DefaultStartingBalance is the cash every investor begins with unless the
// caller overrides it
var DefaultStartingBalance = decimal.NewFromInt(100000)

// House investor names; the player's name must not collide with them
const (
	houseAggressiveName   = "Alice"
	houseConservativeName = "Bob"
)

// RunInput represents the already-validated player setup for one round
type RunInput struct {
	PlayerName      string
	PlayerStrategy  domain.SelectionStrategy
	StartingBalance decimal.Decimal // zero means DefaultStartingBalance
}

// RunResult represents the full outcome of one round
type RunResult struct {
	RunID      uuid.UUID
	Investors  []*domain.Investor
	Reports    map[string]*domain.AllocationReport
	Comparison *comparison.Result
}

// Service runs the game against an injected snapshot source
type Service struct {
	Source domain.SnapshotSource
	Engine *comparison.Engine
	Log    *zap.SugaredLogger
}

// NewService creates a new game Service instance
func NewService(source domain.SnapshotSource, engine *comparison.Engine, log *zap.SugaredLogger) *Service {
	return &Service{
		Source: source,
		Engine: engine,
		Log:    log,
	}
}

// Run plays one round.
// Logic:
//  1. Load the two snapshots from the source
//  2. Create the house investors (Alice/aggressive, Bob/conservative) and
//     the player with their chosen strategy
//  3. Have every investor run one allocation pass against the initial
//     snapshot; an empty selection is logged, not failed
//  4. Compare all portfolios across the two snapshots
func (s *Service) Run(ctx context.Context, input RunInput) (*RunResult, error) {
	if input.PlayerName == houseAggressiveName || input.PlayerName == houseConservativeName {
		return nil, fmt.Errorf("player name %q is reserved for a house investor", input.PlayerName)
	}
	if input.PlayerStrategy == nil {
		return nil, errors.New("player strategy cannot be nil")
	}

	balance := input.StartingBalance
	if balance.IsZero() {
		balance = DefaultStartingBalance
	}

	initial, err := s.Source.Initial(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial snapshot: %w", err)
	}
	final, err := s.Source.Final(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load final snapshot: %w", err)
	}

	alice, err := domain.NewInvestor(houseAggressiveName, strategy.NewAggressive(), balance)
	if err != nil {
		return nil, err
	}
	bob, err := domain.NewInvestor(houseConservativeName, strategy.NewConservative(), balance)
	if err != nil {
		return nil, err
	}
	player, err := domain.NewInvestor(input.PlayerName, input.PlayerStrategy, balance)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		RunID:     uuid.New(),
		Investors: []*domain.Investor{alice, bob, player},
		Reports:   make(map[string]*domain.AllocationReport, 3),
	}

	for _, investor := range result.Investors {
		report, err := investor.Invest(initial)
		if err != nil {
			return nil, fmt.Errorf("%s failed to invest: %w", investor.Name, err)
		}
		if !report.Invested {
			s.Log.Infow("no valid stocks to invest in",
				"run_id", result.RunID,
				"investor", investor.Name,
				"strategy", investor.Strategy.Name(),
			)
		}
		result.Reports[investor.Name] = report
	}

	cmp, err := s.Engine.Compare(result.Investors, initial, final)
	if err != nil {
		return nil, fmt.Errorf("failed to compare portfolios: %w", err)
	}
	result.Comparison = cmp

	s.Log.Infow("round complete",
		"run_id", result.RunID,
		"best", cmp.Best,
		"best_return", cmp.BestReturn.StringFixed(2),
	)

	return result, nil
}

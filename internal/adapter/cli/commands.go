// Package cli hosts the interactive surface of the game: the cobra
// command, survey prompts, and lipgloss rendering. The core never prompts;
// everything that crosses into it has already been validated here.
package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jtkrd/investment-game/internal/adapter/marketdata"
	"github.com/jtkrd/investment-game/internal/domain"
	"github.com/jtkrd/investment-game/internal/logger"
	"github.com/jtkrd/investment-game/internal/usecase/comparison"
	"github.com/jtkrd/investment-game/internal/usecase/game"
	"github.com/jtkrd/investment-game/internal/usecase/seeder"
	"github.com/jtkrd/investment-game/internal/usecase/strategy"
	"github.com/jtkrd/investment-game/internal/usecase/valuation"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		playerName   string
		balanceFlag  string
		strategyFlag string
		picksFlag    string
		initialCSV   string
		finalCSV     string
	)

	rootCmd := &cobra.Command{
		Use:   "investment-game",
		Short: "A single-round stock investment game",
		Long: `Play one round of the investment game: pick a stock-selection
strategy, allocate your cash across the market, and see how your portfolio
fares against the house investors a year later.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd, gameOptions{
				playerName:   playerName,
				balance:      balanceFlag,
				strategyName: strategyFlag,
				picks:        picksFlag,
				initialCSV:   initialCSV,
				finalCSV:     finalCSV,
			})
		},
	}

	rootCmd.Flags().StringVar(&playerName, "name", "", "player name (prompted when omitted)")
	rootCmd.Flags().StringVar(&balanceFlag, "balance", "100000", "starting cash balance")
	rootCmd.Flags().StringVar(&strategyFlag, "strategy", "", "player strategy: aggressive, conservative, random, or picks (prompted when omitted)")
	rootCmd.Flags().StringVar(&picksFlag, "picks", "", "comma-separated symbols for --strategy=picks")
	rootCmd.Flags().StringVar(&initialCSV, "initial", "", "CSV market table for investment day (built-in table when omitted)")
	rootCmd.Flags().StringVar(&finalCSV, "final", "", "CSV market table for valuation day (built-in table when omitted)")

	return rootCmd
}

type gameOptions struct {
	playerName   string
	balance      string
	strategyName string
	picks        string
	initialCSV   string
	finalCSV     string
}

func runGame(cmd *cobra.Command, opts gameOptions) error {
	log := logger.New()
	defer log.Sync() //nolint:errcheck

	balance, err := decimal.NewFromString(opts.balance)
	if err != nil || balance.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("invalid starting balance %q", opts.balance)
	}

	source, err := buildSource(opts)
	if err != nil {
		return err
	}

	// The initial snapshot is needed up front so interactive picks can be
	// validated against the actual market
	initial, err := source.Initial(cmd.Context())
	if err != nil {
		return err
	}

	name := opts.playerName
	if name == "" {
		if name, err = PromptPlayerName(); err != nil {
			return err
		}
	}

	playerStrategy, err := buildStrategy(opts, initial)
	if err != nil {
		return err
	}

	service := game.NewService(source, comparison.NewEngine(valuation.NewValuator()), log)
	result, err := service.Run(cmd.Context(), game.RunInput{
		PlayerName:      name,
		PlayerStrategy:  playerStrategy,
		StartingBalance: balance,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, investor := range result.Investors {
		fmt.Fprintln(out, RenderPortfolio(investor, result.Reports[investor.Name]))
	}
	fmt.Fprintln(out, RenderLeaderboard(result.Comparison))

	return nil
}

func buildSource(opts gameOptions) (domain.SnapshotSource, error) {
	if opts.initialCSV != "" || opts.finalCSV != "" {
		if opts.initialCSV == "" || opts.finalCSV == "" {
			return nil, fmt.Errorf("--initial and --final must be provided together")
		}
		return marketdata.NewCSVSource(opts.initialCSV, opts.finalCSV), nil
	}

	initial, err := seeder.InitialSnapshot()
	if err != nil {
		return nil, err
	}
	final, err := seeder.FinalSnapshot()
	if err != nil {
		return nil, err
	}
	return marketdata.NewMemorySource(initial, final)
}

func buildStrategy(opts gameOptions, initial *domain.Snapshot) (domain.SelectionStrategy, error) {
	switch strings.ToLower(opts.strategyName) {
	case "":
		return PromptStrategy(initial)
	case "aggressive":
		return strategy.NewAggressive(), nil
	case "conservative":
		return strategy.NewConservative(), nil
	case "random":
		return strategy.NewRandom(rand.New(rand.NewSource(time.Now().UnixNano()))), nil
	case "picks":
		picks := ParsePicks(opts.picks, initial)
		if len(picks) == 0 {
			return nil, fmt.Errorf("--strategy=picks requires --picks with at least one listed symbol")
		}
		return strategy.NewSymbolList(picks), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", opts.strategyName)
	}
}

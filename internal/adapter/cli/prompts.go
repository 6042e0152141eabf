package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/shopspring/decimal"

	"github.com/jtkrd/investment-game/internal/domain"
	"github.com/jtkrd/investment-game/internal/usecase/strategy"
)

const (
	approachPicks      = "Freely choose up to 10 stock symbols"
	approachPredefined = "Choose a predefined strategy"
	approachCriteria   = "Create a strategy from market cap and volatility bounds"
)

// PromptPlayerName asks for the player's name
func PromptPlayerName() (string, error) {
	var name string
	prompt := &survey.Input{
		Message: "Enter your investor name:",
		Default: "Player",
	}

	err := survey.AskOne(prompt, &name, survey.WithValidator(func(val interface{}) error {
		if strings.TrimSpace(val.(string)) == "" {
			return fmt.Errorf("name cannot be empty")
		}
		return nil
	}))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(name), nil
}

// PromptStrategy walks the player through the investment-approach menu and
// returns the fully constructed strategy. Invalid input re-prompts via
// survey validators instead of failing.
func PromptStrategy(snap *domain.Snapshot) (domain.SelectionStrategy, error) {
	var approach string
	prompt := &survey.Select{
		Message: "Choose your investment approach:",
		Options: []string{approachPicks, approachPredefined, approachCriteria},
	}
	if err := survey.AskOne(prompt, &approach); err != nil {
		return nil, err
	}

	switch approach {
	case approachPicks:
		return promptSymbolPicks(snap)
	case approachPredefined:
		return promptPredefined()
	default:
		return promptCriteria()
	}
}

func promptSymbolPicks(snap *domain.Snapshot) (domain.SelectionStrategy, error) {
	var input string
	prompt := &survey.Input{
		Message: "Enter up to 10 stock symbols, separated by commas (e.g. AAPL, GOOGL, MSFT):",
		Help:    "Unknown symbols and duplicates are dropped; anything past the tenth pick is ignored.",
	}

	err := survey.AskOne(prompt, &input, survey.WithValidator(func(val interface{}) error {
		if len(ParsePicks(val.(string), snap)) == 0 {
			return fmt.Errorf("none of those symbols are in the market")
		}
		return nil
	}))
	if err != nil {
		return nil, err
	}

	return strategy.NewSymbolList(ParsePicks(input, snap)), nil
}

// ParsePicks normalizes a comma-separated symbol list: uppercased,
// trimmed, filtered to snapshot membership, deduplicated, and capped at
// the strategy pick limit.
func ParsePicks(input string, snap *domain.Snapshot) []string {
	picks := make([]string, 0, strategy.MaxPicks)
	seen := make(map[string]bool)

	for _, raw := range strings.Split(input, ",") {
		symbol := strings.ToUpper(strings.TrimSpace(raw))
		if symbol == "" || seen[symbol] {
			continue
		}
		if _, ok := snap.Get(symbol); !ok {
			continue
		}
		seen[symbol] = true
		picks = append(picks, symbol)
		if len(picks) == strategy.MaxPicks {
			break
		}
	}

	return picks
}

func promptPredefined() (domain.SelectionStrategy, error) {
	var choice string
	prompt := &survey.Select{
		Message: "Available strategies:",
		Options: []string{"Aggressive (buy the biggest drops)", "Conservative (buy the most stable)", "Random"},
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return nil, err
	}

	switch {
	case strings.HasPrefix(choice, "Aggressive"):
		return strategy.NewAggressive(), nil
	case strings.HasPrefix(choice, "Conservative"):
		return strategy.NewConservative(), nil
	default:
		return strategy.NewRandom(rand.New(rand.NewSource(time.Now().UnixNano()))), nil
	}
}

func promptCriteria() (domain.SelectionStrategy, error) {
	minCap, maxCap, err := promptBounds("Enter minimum and maximum market cap (in millions), separated by a comma (e.g. 100, 500):")
	if err != nil {
		return nil, err
	}
	minVol, maxVol, err := promptBounds("Enter minimum and maximum volatility percentage, separated by a comma (e.g. 10, 50):")
	if err != nil {
		return nil, err
	}

	return strategy.NewCriteria(minCap, maxCap, minVol, maxVol)
}

func promptBounds(message string) (decimal.Decimal, decimal.Decimal, error) {
	var input string
	prompt := &survey.Input{Message: message}

	err := survey.AskOne(prompt, &input, survey.WithValidator(func(val interface{}) error {
		_, _, err := ParseBounds(val.(string))
		return err
	}))
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return ParseBounds(input)
}

// ParseBounds parses a "min, max" pair of numeric bounds
func ParseBounds(input string) (decimal.Decimal, decimal.Decimal, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return decimal.Zero, decimal.Zero, fmt.Errorf("enter exactly two values separated by a comma")
	}

	min, err := decimal.NewFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid minimum %q", strings.TrimSpace(parts[0]))
	}
	max, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("invalid maximum %q", strings.TrimSpace(parts[1]))
	}
	if min.GreaterThan(max) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("minimum %s exceeds maximum %s", min, max)
	}

	return min, max, nil
}

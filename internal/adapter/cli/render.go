package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jtkrd/investment-game/internal/domain"
	"github.com/jtkrd/investment-game/internal/usecase/comparison"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	bestStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	portfolioStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(0, 2)
)

// RenderPortfolio renders one investor's holdings and remaining balance
// after the allocation pass
func RenderPortfolio(investor *domain.Investor, report *domain.AllocationReport) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s's Portfolio (%s)", investor.Name, investor.Strategy.Name())))
	b.WriteString("\n")

	if !report.Invested {
		b.WriteString(mutedStyle.Render("No investment made."))
		b.WriteString("\n")
	} else {
		for _, line := range report.Lines {
			b.WriteString(fmt.Sprintf("%-6s %d shares @ $%s\n", line.Symbol, line.Shares, line.Price.StringFixed(2)))
		}
	}

	b.WriteString(fmt.Sprintf("Remaining balance: $%s", report.RemainingBalance.StringFixed(2)))

	return portfolioStyle.Render(b.String())
}

// RenderLeaderboard renders the comparison result: one line per investor
// in the order they played, the best-performer callout, and summary
// statistics over the field
func RenderLeaderboard(result *comparison.Result) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Results"))
	b.WriteString("\n")

	for _, standing := range result.Standings {
		if !standing.Return.HasBaseline {
			b.WriteString(fmt.Sprintf("%s: no investment to value\n", standing.Name))
			continue
		}
		b.WriteString(fmt.Sprintf("%s's portfolio return: %s%%\n", standing.Name, standing.Return.Percent.StringFixed(2)))
	}

	b.WriteString(bestStyle.Render(fmt.Sprintf(
		"Best performer: %s with a return of %s%%",
		result.Best, result.BestReturn.StringFixed(2),
	)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf(
		"Field average %s%%, spread %s%%",
		result.Summary.MeanReturn.StringFixed(2),
		result.Summary.ReturnStdDev.StringFixed(2),
	)))

	return b.String()
}

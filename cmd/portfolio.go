package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/marketcl/marketcl/renderer"
)

type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "value the current game at market prices" }
func (*portfolioCmd) Usage() string {
	return `mkt portfolio

  Fetches a quote for every held symbol and displays the per-lot valuation,
  cash, fees and taxes paid, total assets and profit.
`
}
func (*portfolioCmd) SetFlags(*flag.FlagSet) {}

func (c *portfolioCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, game, err := loadCurrentGame()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	prices, err := newQuoter().QuoteMany(ctx, game.Symbols())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quotes: %v\n", err)
		return subcommands.ExitFailure
	}

	valuation, err := game.Valuation(prices)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Valuation(game.Name(), valuation))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/marketcl/marketcl/renderer"
)

// --- Buy Command ---

type buyCmd struct {
	symbol   string
	quantity int64
	yes      bool
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy shares at the current market price" }
func (*buyCmd) Usage() string {
	return `mkt buy -s <symbol> [-q <quantity>] [-y]

  Fetches the current price, shows the cost of the purchase including the
  trade fee, and opens a new lot after confirmation. Without -q it only shows
  the quote and how many shares are affordable.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol to buy")
	f.Int64Var(&c.quantity, "q", 0, "Number of shares (0 shows the quote only)")
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.quantity < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	_, game, err := loadCurrentGame()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	symbol := strings.ToUpper(strings.TrimSpace(c.symbol))
	price, err := newQuoter().QuoteOne(ctx, symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quote: %v\n", err)
		return subcommands.ExitFailure
	}

	account := game.Account()
	printMarkdown(renderer.Quote(symbol, price, account.Cash(), account.MaxAffordableShares(price)))

	if c.quantity == 0 {
		return subcommands.ExitSuccess
	}

	proposal, err := game.ProposeBuy(symbol, c.quantity, price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Proposal(proposal))

	if !c.yes && !confirm("Are you sure?") {
		fmt.Println("Close call! Exiting...")
		return subcommands.ExitSuccess
	}

	lot, err := game.Buy(symbol, c.quantity, price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Bought %d shares of %s at %s (lot %d). Cash remaining: %s.\n",
		lot.Quantity, lot.Symbol, lot.CostBasis, lot.ID, game.Account().Cash())
	return subcommands.ExitSuccess
}

// --- Sell Command ---

type sellCmd struct {
	lotID    int
	quantity int64
	yes      bool
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares out of a lot at the current market price" }
func (*sellCmd) Usage() string {
	return `mkt sell -lot <id> [-q <quantity>] [-y]

  Fetches the current price of the lot's symbol, shows the proceeds net of
  capital-gains tax and the trade fee, and sells after confirmation. Without
  -q the whole lot is sold. Lot ids are shown by 'mkt portfolio'.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.lotID, "lot", 0, "Lot id to sell from")
	f.Int64Var(&c.quantity, "q", 0, "Number of shares, if missing the whole lot is sold")
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.lotID <= 0 || c.quantity < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	_, game, err := loadCurrentGame()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	lot, err := game.Lot(c.lotID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	price, err := newQuoter().QuoteOne(ctx, lot.Symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quote: %v\n", err)
		return subcommands.ExitFailure
	}

	proposal, err := game.ProposeSell(c.lotID, c.quantity, price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Proposal(proposal))

	if !c.yes && !confirm("Are you sure?") {
		fmt.Println("Close call! Exiting...")
		return subcommands.ExitSuccess
	}

	if err := game.Sell(c.lotID, c.quantity, price); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Sold %d shares of %s. Cash remaining: %s.\n",
		proposal.Quantity, proposal.Symbol, game.Account().Cash())
	return subcommands.ExitSuccess
}

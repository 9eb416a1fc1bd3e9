package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/marketcl/marketcl"
	"github.com/marketcl/marketcl/renderer"
	"github.com/shopspring/decimal"
)

// --- New Command ---

type newCmd struct {
	name string
	cash float64
	fee  float64
	tax  float64
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "start a new game and make it current" }
func (*newCmd) Usage() string {
	return `mkt new -name <name> [-cash <amount>] [-fee <amount>] [-tax <rate>]

  Starts a new game with the given starting cash, flat trade fee and
  capital-gains tax rate, and switches to it.
`
}

func (c *newCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Game name (lowercase)")
	f.Float64Var(&c.cash, "cash", 10000, "Starting cash")
	f.Float64Var(&c.fee, "fee", 5, "Flat trading fee per buy or sell")
	f.Float64Var(&c.tax, "tax", 0.15, "Capital gains tax rate (fraction, e.g. 0.15)")
}

func (c *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.cash <= 0 || c.fee < 0 || c.tax < 0 || c.tax >= 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	game, err := store.CreateGame(c.name, marketcl.M(c.cash), marketcl.M(c.fee), decimal.NewFromFloat(c.tax))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Started a game for %s with %s!\n", game.Name(), game.Account().InitialCash())
	return subcommands.ExitSuccess
}

// --- Ls Command ---

type lsCmd struct{}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list ongoing games" }
func (*lsCmd) Usage() string {
	return `mkt ls

  Lists all ongoing games, marking the current one.
`
}
func (*lsCmd) SetFlags(*flag.FlagSet) {}

func (c *lsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	names, err := store.ListGames()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	current, err := store.CurrentGame()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Games(names, current))
	return subcommands.ExitSuccess
}

// --- Switch Command ---

type switchCmd struct {
	name string
}

func (*switchCmd) Name() string     { return "switch" }
func (*switchCmd) Synopsis() string { return "switch to another ongoing game" }
func (*switchCmd) Usage() string {
	return `mkt switch -name <name>

  Makes the named game the current one.
`
}

func (c *switchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Game to switch to")
}

func (c *switchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.SetCurrent(c.name); err != nil {
		fmt.Fprintf(os.Stderr, "Error switching game: %v (did you make a typo?)\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Switched to game %s.\n", c.name)
	return subcommands.ExitSuccess
}

// --- Rm Command ---

type rmCmd struct {
	name string
	yes  bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete an ongoing game" }
func (*rmCmd) Usage() string {
	return `mkt rm -name <name> [-y]

  Deletes the named game file. This cannot be undone.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Game to delete")
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !c.yes && !confirm(fmt.Sprintf("Are you sure you want to delete %s's game?", c.name)) {
		fmt.Println("Close call! Exiting...")
		return subcommands.ExitSuccess
	}
	if err := store.DeleteGame(c.name); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting game: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted game %s.\n", c.name)
	return subcommands.ExitSuccess
}

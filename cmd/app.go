// Package cmd implements the CLI application of the fantasy trading game.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/marketcl/marketcl"
	"github.com/marketcl/marketcl/yahoo"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&newCmd{}, "games")
	c.Register(&lsCmd{}, "games")
	c.Register(&switchCmd{}, "games")
	c.Register(&rmCmd{}, "games")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")

	c.Register(&portfolioCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("dir", "", "Path to the game data directory (default ~/.marketcl)")

// openStore opens the game data directory, creating it on first run.
func openStore() (*marketcl.Store, error) {
	dir := *dataDir
	if dir == "" {
		var err error
		dir, err = marketcl.DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	return marketcl.OpenStore(dir)
}

// loadCurrentGame opens the store and loads the current game.
func loadCurrentGame() (*marketcl.Store, *marketcl.Game, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	game, err := store.LoadCurrent()
	if err != nil {
		return nil, nil, fmt.Errorf("%w (run 'mkt new' to start a game)", err)
	}
	return store, game, nil
}

// newQuoter returns the market-data collaborator.
func newQuoter() *yahoo.Client { return yahoo.NewClient() }

// printMarkdown renders markdown to the terminal with glamour, falling back
// to the raw text if rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// confirm asks a Y/n question on stdin. Enter defaults to yes.
func confirm(prompt string) bool {
	fmt.Printf("%s (Y/n) ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	switch strings.TrimSpace(scanner.Text()) {
	case "", "Y", "y", "yes":
		return true
	}
	return false
}

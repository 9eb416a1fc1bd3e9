package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/marketcl/marketcl/chart"
	"github.com/marketcl/marketcl/renderer"
)

type chartCmd struct {
	symbol string
	days   int
	outDir string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render price and MACD charts for a symbol" }
func (*chartCmd) Usage() string {
	return `mkt chart -s <symbol> [-days <n>] [-o <dir>]

  Fetches the daily price history and writes two PNG charts, <SYM>.png (close
  price) and <SYM>-macd.png (MACD study), then prints the MACD trading rules.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol to chart")
	f.IntVar(&c.days, "days", 180, "Number of daily bars to chart")
	f.StringVar(&c.outDir, "o", ".", "Directory to write the PNG files to")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.days <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(strings.TrimSpace(c.symbol))

	bars, err := newQuoter().History(ctx, symbol, c.days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching history: %v\n", err)
		return subcommands.ExitFailure
	}

	pricePNG, err := chart.Price(symbol, bars)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	macdPNG, err := chart.MACD(symbol, bars)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	priceFile := filepath.Join(c.outDir, symbol+".png")
	macdFile := filepath.Join(c.outDir, symbol+"-macd.png")
	if err := os.WriteFile(priceFile, pricePNG, 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(macdFile, macdPNG, 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %s and %s (%d bars).\n", priceFile, macdFile, len(bars))
	printMarkdown(renderer.MACDHelp())
	return subcommands.ExitSuccess
}

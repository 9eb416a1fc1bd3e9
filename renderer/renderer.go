// Package renderer turns ledger reports into markdown for terminal display.
// It only ever receives values, never mutable ledger state.
package renderer

import (
	"fmt"
	"strings"

	"github.com/marketcl/marketcl"
)

// Valuation renders the full game valuation: the per-lot table followed by
// the cash and profit summary.
func Valuation(game string, v marketcl.Valuation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio: %s\n\n", game)

	if v.Portfolio.Empty() {
		fmt.Fprintln(&b, "Your portfolio is currently empty. Buy some stock to get started!")
	} else {
		fmt.Fprintln(&b, "| ID | Symbol | N | Bought At | Price | Tot. Value | % Profit | Net Profit |")
		fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|---:|---:|---:|")
		for _, lot := range v.Portfolio.Lots {
			fmt.Fprintf(&b, "| %d | %s | %d | %s | %s | %s | %s | %s |\n",
				lot.ID,
				lot.Symbol,
				lot.Quantity,
				lot.CostBasis,
				lot.Price,
				lot.MarketValue,
				lot.ProfitPct.SignedString(),
				lot.Profit.SignedString(),
			)
		}
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Cash remaining | %s |\n", v.Cash)
	fmt.Fprintf(&b, "| Total fees paid | %s |\n", v.TotalFees)
	fmt.Fprintf(&b, "| Total tax paid | %s |\n", v.TotalTaxes)
	fmt.Fprintf(&b, "| **Total assets** | %s |\n", v.TotalAssets)
	fmt.Fprintf(&b, "| **Total profit** | %s |\n", v.TotalProfit.SignedString())
	fmt.Fprintf(&b, "| **Percent profit** | %s |\n", v.ProfitPct.SignedString())
	return b.String()
}

// Games renders the list of ongoing games, marking the current one.
func Games(names []string, current string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Ongoing Games\n\n")
	if len(names) == 0 {
		fmt.Fprintln(&b, "No games yet. Start one with `mkt new`.")
		return b.String()
	}
	for _, name := range names {
		if name == current {
			fmt.Fprintf(&b, "- **%s** (current)\n", name)
		} else {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}
	return b.String()
}

// Proposal renders a trade proposal for the confirmation prompt.
func Proposal(p marketcl.TradeProposal) string {
	var b strings.Builder
	switch p.Side {
	case marketcl.SideBuy:
		fmt.Fprintf(&b, "About to **buy %d shares of %s** at %s each.\n\n", p.Quantity, p.Symbol, p.Price)
	case marketcl.SideSell:
		fmt.Fprintf(&b, "About to **sell %d shares of %s** (lot %d) at %s each.\n\n",
			p.Quantity, p.Symbol, p.LotID, p.Price)
	}
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	switch p.Side {
	case marketcl.SideBuy:
		fmt.Fprintf(&b, "| Cost | %s |\n", p.Gross)
	case marketcl.SideSell:
		fmt.Fprintf(&b, "| Proceeds | %s |\n", p.Gross)
		fmt.Fprintf(&b, "| Capital-gains tax | %s |\n", p.Tax)
	}
	fmt.Fprintf(&b, "| Trade fee | %s |\n", p.Fee)
	fmt.Fprintf(&b, "| Cash after | %s |\n", p.CashAfter)
	return b.String()
}

// Quote renders a one-symbol quote with affordability advice.
func Quote(symbol string, price, cash marketcl.Money, maxShares int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s costs %s per share.\n\n", symbol, price)
	fmt.Fprintf(&b, "You currently have %s and can buy up to **%d shares** (trade fee set aside).\n",
		cash, maxShares)
	return b.String()
}

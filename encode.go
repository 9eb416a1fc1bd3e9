package marketcl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// gameRecord is the persisted shape of a game file.
//
// The schema is shared with the original save files, so the field names stay
// short: one JSON object per game, holdings inlined as {sym, n, bought_at}.
type gameRecord struct {
	InitCash    Money           `json:"init_cash"`
	Cash        Money           `json:"cash"`
	CapGainsTax decimal.Decimal `json:"cap_gains_tax"` // fraction, e.g. 0.15
	TradeFee    Money           `json:"trade_fee"`
	TotalTax    Money           `json:"total_tax"`
	TotalFee    Money           `json:"total_fee"`
	Portfolio   []lotRecord     `json:"portfolio"`
}

type lotRecord struct {
	Sym      string `json:"sym"`
	N        int64  `json:"n"`
	BoughtAt Money  `json:"bought_at"`
}

// EncodeGame writes the game state as a single JSON object.
func EncodeGame(w io.Writer, g *Game) error {
	rec := gameRecord{
		InitCash:    g.account.initial,
		Cash:        g.account.cash,
		CapGainsTax: g.account.taxRate,
		TradeFee:    g.account.tradeFee,
		TotalTax:    g.account.totalTaxes,
		TotalFee:    g.account.totalFees,
		Portfolio:   make([]lotRecord, 0, g.portfolio.Len()),
	}
	for _, lot := range g.portfolio.Lots() {
		rec.Portfolio = append(rec.Portfolio, lotRecord{
			Sym:      lot.Symbol,
			N:        lot.Quantity,
			BoughtAt: lot.CostBasis,
		})
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("could not encode game %q: %w", g.name, err)
	}
	return nil
}

// DecodeGame rebuilds a game from its persisted state. Lot ids are assigned
// 1..n in file order; they are stable for the session but not persisted.
func DecodeGame(r io.Reader, name string) (*Game, error) {
	var rec gameRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("could not decode game %q: %w", name, err)
	}

	account := &Account{
		initial:    rec.InitCash,
		cash:       rec.Cash,
		tradeFee:   rec.TradeFee,
		taxRate:    rec.CapGainsTax,
		totalFees:  rec.TotalFee,
		totalTaxes: rec.TotalTax,
	}
	game := NewGame(name, account)
	for _, lr := range rec.Portfolio {
		if lr.N <= 0 {
			return nil, fmt.Errorf("game %q holds %d shares of %s: quantity must be positive", name, lr.N, lr.Sym)
		}
		game.portfolio.Append(NewHolding(lr.Sym, lr.N, lr.BoughtAt))
	}
	return game, nil
}

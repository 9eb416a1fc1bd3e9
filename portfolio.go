package marketcl

import (
	"fmt"
	"slices"
)

// Lot is a Holding with its stable identifier within a Portfolio.
//
// Lot ids are assigned from a monotonically increasing counter and are never
// reused within a session, so removing a lot does not invalidate the ids of
// the remaining ones. Ids are reassigned 1..n when a game is loaded.
type Lot struct {
	ID int
	Holding
}

// Portfolio is an ordered collection of lots. Lots of the same symbol are
// never merged: buying the same ticker twice creates two distinct lots, each
// with its own cost basis.
type Portfolio struct {
	lots   []Lot
	nextID int
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{nextID: 1}
}

// Append adds a new lot at the end of the portfolio and returns it with its
// assigned id.
func (p *Portfolio) Append(h Holding) Lot {
	lot := Lot{ID: p.nextID, Holding: h}
	p.nextID++
	p.lots = append(p.lots, lot)
	return lot
}

// Lot returns the lot with the given id.
func (p *Portfolio) Lot(id int) (Lot, error) {
	for _, lot := range p.lots {
		if lot.ID == id {
			return lot, nil
		}
	}
	return Lot{}, fmt.Errorf("lot %d: %w", id, ErrUnknownLot)
}

// Lots returns the lots in portfolio order. The returned slice is a copy:
// reporting code cannot corrupt the portfolio through it.
func (p *Portfolio) Lots() []Lot {
	return slices.Clone(p.lots)
}

// Len returns the number of lots.
func (p *Portfolio) Len() int { return len(p.lots) }

// Symbols returns the distinct held symbols, sorted.
func (p *Portfolio) Symbols() []string {
	var syms []string
	for _, lot := range p.lots {
		if !slices.Contains(syms, lot.Symbol) {
			syms = append(syms, lot.Symbol)
		}
	}
	slices.Sort(syms)
	return syms
}

// Quantity returns the total number of shares held for a symbol, summed
// across all matching lots.
func (p *Portfolio) Quantity(symbol string) int64 {
	var total int64
	for _, lot := range p.lots {
		if lot.Symbol == symbol {
			total += lot.Quantity
		}
	}
	return total
}

// RemoveOrReduce sells n shares out of the identified lot. Selling the full
// quantity removes the lot entirely; selling less reduces it in place.
//
// It fails with ErrUnknownLot if the id does not exist and with
// ErrInsufficientShares if n exceeds the lot's quantity. On failure the
// portfolio is unchanged.
func (p *Portfolio) RemoveOrReduce(id int, n int64) error {
	for i := range p.lots {
		if p.lots[i].ID != id {
			continue
		}
		if n == p.lots[i].Quantity {
			p.lots = slices.Delete(p.lots, i, i+1)
			return nil
		}
		return p.lots[i].Reduce(n)
	}
	return fmt.Errorf("lot %d: %w", id, ErrUnknownLot)
}

// LotValue is the valuation of a single lot at current prices.
type LotValue struct {
	ID          int
	Symbol      string
	Quantity    int64
	CostBasis   Money   // price per share at acquisition
	Price       Money   // current price per share
	MarketValue Money   // Quantity * Price
	Profit      Money   // Quantity * (Price - CostBasis)
	ProfitPct   Percent // (Price - CostBasis) / CostBasis
}

// PortfolioValue is the valuation of a whole portfolio.
type PortfolioValue struct {
	Lots        []LotValue
	MarketValue Money // sum of lot market values
}

// Empty reports whether the valuation covers no lots at all. An empty
// portfolio is not an error; the display layer special-cases it.
func (v PortfolioValue) Empty() bool { return len(v.Lots) == 0 }

// Valuation computes per-lot and aggregate market value given a mapping from
// symbol to current price. It fails with ErrMissingQuote if any held symbol
// is absent from prices.
func (p *Portfolio) Valuation(prices map[string]Money) (PortfolioValue, error) {
	var v PortfolioValue
	for _, lot := range p.lots {
		price, ok := prices[lot.Symbol]
		if !ok {
			return PortfolioValue{}, fmt.Errorf("no price for %s: %w", lot.Symbol, ErrMissingQuote)
		}
		lv := LotValue{
			ID:          lot.ID,
			Symbol:      lot.Symbol,
			Quantity:    lot.Quantity,
			CostBasis:   lot.CostBasis,
			Price:       price,
			MarketValue: lot.MarketValue(price),
			Profit:      lot.UnrealizedProfit(price),
			ProfitPct:   lot.UnrealizedPercent(price),
		}
		v.Lots = append(v.Lots, lv)
		v.MarketValue = v.MarketValue.Add(lv.MarketValue)
	}
	return v, nil
}

// clone returns an independent copy of the portfolio.
func (p *Portfolio) clone() *Portfolio {
	return &Portfolio{lots: slices.Clone(p.lots), nextID: p.nextID}
}

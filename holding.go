package marketcl

import (
	"fmt"
	"strings"
)

// Holding is a single lot of a security: a discrete purchase of shares at a
// specific cost basis. A Holding with zero quantity must not exist; the
// Portfolio removes a lot instead of keeping it empty.
type Holding struct {
	Symbol    string // ticker, normalized to uppercase
	Quantity  int64  // number of shares, always > 0
	CostBasis Money  // price per share at acquisition
}

// NewHolding creates a lot, normalizing the symbol to uppercase.
func NewHolding(symbol string, quantity int64, costBasis Money) Holding {
	return Holding{
		Symbol:    strings.ToUpper(strings.TrimSpace(symbol)),
		Quantity:  quantity,
		CostBasis: costBasis,
	}
}

// Reduce decrements the lot by n shares. It requires 0 < n <= Quantity.
// Reducing a lot to zero is the caller's cue to remove it from the Portfolio;
// Reduce itself never deletes the lot.
func (h *Holding) Reduce(n int64) error {
	if n <= 0 {
		return fmt.Errorf("cannot reduce %s by %d shares: quantity must be positive", h.Symbol, n)
	}
	if n > h.Quantity {
		return fmt.Errorf("cannot reduce %s by %d shares, only %d held: %w",
			h.Symbol, n, h.Quantity, ErrInsufficientShares)
	}
	h.Quantity -= n
	return nil
}

// MarketValue returns the current worth of the lot at the given price.
func (h Holding) MarketValue(price Money) Money { return price.Mul(h.Quantity) }

// UnrealizedProfit returns the absolute unrealized gain or loss at the given
// price: quantity * (price - cost basis).
func (h Holding) UnrealizedProfit(price Money) Money {
	return price.Sub(h.CostBasis).Mul(h.Quantity)
}

// UnrealizedPercent returns the unrealized gain or loss relative to the cost
// basis.
func (h Holding) UnrealizedPercent(price Money) Percent {
	return price.PctOf(h.CostBasis)
}

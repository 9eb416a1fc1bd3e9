package marketcl

import (
	"errors"
	"testing"
)

func TestPortfolio_AppendKeepsLotsSeparate(t *testing.T) {
	p := NewPortfolio()
	first := p.Append(NewHolding("ABC", 10, USD(50)))
	second := p.Append(NewHolding("ABC", 5, USD(55)))

	if first.ID == second.ID {
		t.Fatalf("two lots share id %d", first.ID)
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2: same-symbol lots must not merge", p.Len())
	}
	if got := p.Quantity("ABC"); got != 15 {
		t.Errorf("Quantity(ABC) = %d, want 15", got)
	}
}

func TestPortfolio_LotIDsSurviveRemoval(t *testing.T) {
	p := NewPortfolio()
	a := p.Append(NewHolding("ABC", 10, USD(50)))
	b := p.Append(NewHolding("DEF", 20, USD(30)))

	// Removing the first lot must not shift the identity of the second.
	if err := p.RemoveOrReduce(a.ID, 10); err != nil {
		t.Fatalf("RemoveOrReduce(%d) failed: %v", a.ID, err)
	}
	lot, err := p.Lot(b.ID)
	if err != nil {
		t.Fatalf("Lot(%d) failed after removal: %v", b.ID, err)
	}
	if lot.Symbol != "DEF" {
		t.Errorf("Lot(%d).Symbol = %q, want %q", b.ID, lot.Symbol, "DEF")
	}

	// A new lot never reuses a released id.
	c := p.Append(NewHolding("GHI", 1, USD(1)))
	if c.ID == a.ID {
		t.Errorf("new lot reused id %d", a.ID)
	}
}

func TestPortfolio_RemoveOrReduce(t *testing.T) {
	t.Run("full quantity removes the lot", func(t *testing.T) {
		p := NewPortfolio()
		lot := p.Append(NewHolding("ABC", 10, USD(50)))
		if err := p.RemoveOrReduce(lot.ID, 10); err != nil {
			t.Fatalf("RemoveOrReduce failed: %v", err)
		}
		if p.Len() != 0 {
			t.Errorf("Len() = %d, want 0", p.Len())
		}
		if _, err := p.Lot(lot.ID); !errors.Is(err, ErrUnknownLot) {
			t.Errorf("Lot(%d) = %v, want ErrUnknownLot", lot.ID, err)
		}
	})

	t.Run("partial quantity reduces in place", func(t *testing.T) {
		p := NewPortfolio()
		lot := p.Append(NewHolding("ABC", 10, USD(50)))
		if err := p.RemoveOrReduce(lot.ID, 4); err != nil {
			t.Fatalf("RemoveOrReduce failed: %v", err)
		}
		got, err := p.Lot(lot.ID)
		if err != nil {
			t.Fatalf("Lot failed: %v", err)
		}
		if got.Quantity != 6 {
			t.Errorf("Quantity = %d, want 6", got.Quantity)
		}
	})

	t.Run("unknown lot", func(t *testing.T) {
		p := NewPortfolio()
		if err := p.RemoveOrReduce(42, 1); !errors.Is(err, ErrUnknownLot) {
			t.Errorf("RemoveOrReduce = %v, want ErrUnknownLot", err)
		}
	})

	t.Run("too many shares leaves the lot unchanged", func(t *testing.T) {
		p := NewPortfolio()
		lot := p.Append(NewHolding("ABC", 10, USD(50)))
		if err := p.RemoveOrReduce(lot.ID, 11); !errors.Is(err, ErrInsufficientShares) {
			t.Fatalf("RemoveOrReduce = %v, want ErrInsufficientShares", err)
		}
		got, _ := p.Lot(lot.ID)
		if got.Quantity != 10 {
			t.Errorf("Quantity = %d, want 10", got.Quantity)
		}
	})
}

func TestPortfolio_Valuation(t *testing.T) {
	p := NewPortfolio()
	p.Append(NewHolding("ABC", 10, USD(50)))
	p.Append(NewHolding("DEF", 2, USD(100)))

	prices := map[string]Money{"ABC": USD(60), "DEF": USD(90)}
	v, err := p.Valuation(prices)
	if err != nil {
		t.Fatalf("Valuation failed: %v", err)
	}
	if v.Empty() {
		t.Fatal("Empty() = true, want false")
	}
	if len(v.Lots) != 2 {
		t.Fatalf("len(Lots) = %d, want 2", len(v.Lots))
	}
	// 10*60 + 2*90 = 780
	if !v.MarketValue.Equal(USD(780)) {
		t.Errorf("MarketValue = %v, want $780.00", v.MarketValue)
	}
	abc := v.Lots[0]
	if !abc.Profit.Equal(USD(100)) || !abc.ProfitPct.Equal(20) {
		t.Errorf("ABC profit = %v (%v), want $100.00 (20%%)", abc.Profit, abc.ProfitPct)
	}
	def := v.Lots[1]
	if !def.Profit.Equal(USD(-20)) || !def.ProfitPct.Equal(-10) {
		t.Errorf("DEF profit = %v (%v), want -$20.00 (-10%%)", def.Profit, def.ProfitPct)
	}
}

func TestPortfolio_ValuationMissingQuote(t *testing.T) {
	p := NewPortfolio()
	p.Append(NewHolding("ABC", 10, USD(50)))
	p.Append(NewHolding("DEF", 2, USD(100)))

	_, err := p.Valuation(map[string]Money{"ABC": USD(60)})
	if !errors.Is(err, ErrMissingQuote) {
		t.Errorf("Valuation = %v, want ErrMissingQuote", err)
	}
}

func TestPortfolio_ValuationEmpty(t *testing.T) {
	v, err := NewPortfolio().Valuation(nil)
	if err != nil {
		t.Fatalf("Valuation failed: %v", err)
	}
	if !v.Empty() {
		t.Error("Empty() = false, want true")
	}
	if !v.MarketValue.IsZero() {
		t.Errorf("MarketValue = %v, want zero", v.MarketValue)
	}
}

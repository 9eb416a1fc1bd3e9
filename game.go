package marketcl

import (
	"fmt"
)

// Saver persists a game. A save captures the whole game state, account and
// portfolio together, and must be durable before it returns nil.
type Saver interface {
	SaveGame(*Game) error
}

// Game is the aggregate root of a single fantasy-trading game: one Account
// and one Portfolio, persisted together as a single atomic unit.
//
// The Game exclusively owns its account and portfolio. A transaction mutates
// a private copy, persists it, and only then swaps it in: a failed save
// leaves the in-memory game exactly as it was.
type Game struct {
	name      string
	account   *Account
	portfolio *Portfolio
	saver     Saver
}

// NewGame creates a fresh game with an empty portfolio.
func NewGame(name string, account *Account) *Game {
	return &Game{name: name, account: account, portfolio: NewPortfolio()}
}

// SetSaver installs the persistence collaborator. A game with no saver keeps
// its state in memory only, which the tests rely on.
func (g *Game) SetSaver(s Saver) { g.saver = s }

func (g *Game) Name() string { return g.name }

// Account returns a read-only view of the cash ledger.
func (g *Game) Account() AccountView { return AccountView{a: g.account} }

// Lots returns the portfolio lots in order.
func (g *Game) Lots() []Lot { return g.portfolio.Lots() }

// Lot returns the lot with the given id.
func (g *Game) Lot(id int) (Lot, error) { return g.portfolio.Lot(id) }

// Symbols returns the distinct held symbols, sorted.
func (g *Game) Symbols() []string { return g.portfolio.Symbols() }

// AccountView exposes account balances without granting mutable access.
type AccountView struct {
	a *Account
}

func (v AccountView) InitialCash() Money         { return v.a.InitialCash() }
func (v AccountView) Cash() Money                { return v.a.Cash() }
func (v AccountView) TradeFee() Money            { return v.a.TradeFee() }
func (v AccountView) TotalFeesPaid() Money       { return v.a.TotalFeesPaid() }
func (v AccountView) TotalTaxesPaid() Money      { return v.a.TotalTaxesPaid() }
func (v AccountView) MaxAffordableShares(price Money) int64 {
	return v.a.MaxAffordableShares(price)
}

// Side distinguishes the two trade directions.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// TradeProposal is the side-effect-free description of a trade at an observed
// price. Proposing never mutates the game; the flow is quote, propose,
// confirm, then commit with Buy or Sell.
type TradeProposal struct {
	Side      Side
	Symbol    string
	LotID     int // sells only
	Quantity  int64
	Price     Money // observed price per share
	Gross     Money // Quantity * Price
	Fee       Money // flat trade fee
	Tax       Money // sells only: capital-gains tax due on a realized gain
	CashAfter Money
}

// ProposeBuy validates a purchase against the current state and returns its
// full cost breakdown. It fails with ErrInsufficientFunds when the total
// cost, fee included, exceeds the available cash.
func (g *Game) ProposeBuy(symbol string, quantity int64, price Money) (TradeProposal, error) {
	if quantity <= 0 {
		return TradeProposal{}, fmt.Errorf("cannot buy %d shares: quantity must be positive", quantity)
	}
	h := NewHolding(symbol, quantity, price)
	gross := price.Mul(quantity)
	total := gross.Add(g.account.TradeFee())
	if !g.account.CanAfford(total) {
		return TradeProposal{}, fmt.Errorf(
			"buying %d %s at %s costs %s but only %s is available: %w",
			quantity, h.Symbol, price, total, g.account.Cash(), ErrInsufficientFunds)
	}
	return TradeProposal{
		Side:      SideBuy,
		Symbol:    h.Symbol,
		Quantity:  quantity,
		Price:     price,
		Gross:     gross,
		Fee:       g.account.TradeFee(),
		CashAfter: g.account.Cash().Sub(total),
	}, nil
}

// ProposeSell validates a sale of n shares out of a lot and returns its
// proceeds breakdown, including the capital-gains tax that a realized gain
// would incur. A quantity of 0 proposes selling the whole lot.
func (g *Game) ProposeSell(lotID int, quantity int64, price Money) (TradeProposal, error) {
	lot, err := g.portfolio.Lot(lotID)
	if err != nil {
		return TradeProposal{}, err
	}
	if quantity == 0 {
		quantity = lot.Quantity
	}
	if quantity < 0 {
		return TradeProposal{}, fmt.Errorf("cannot sell %d shares: quantity must be positive", quantity)
	}
	if quantity > lot.Quantity {
		return TradeProposal{}, fmt.Errorf("cannot sell %d shares of %s, lot %d holds %d: %w",
			quantity, lot.Symbol, lotID, lot.Quantity, ErrInsufficientShares)
	}

	gross := price.Mul(quantity)
	var tax Money
	if gain := price.Sub(lot.CostBasis).Mul(quantity); gain.IsPositive() {
		tax = gain.MulRate(g.account.TaxRate())
	}
	return TradeProposal{
		Side:      SideSell,
		Symbol:    lot.Symbol,
		LotID:     lotID,
		Quantity:  quantity,
		Price:     price,
		Gross:     gross,
		Fee:       g.account.TradeFee(),
		Tax:       tax,
		CashAfter: g.account.Cash().Add(gross).Sub(tax).Sub(g.account.TradeFee()),
	}, nil
}

// Buy purchases quantity shares of symbol at the observed price: it debits
// the cash account (cost plus fee) and appends a new lot to the portfolio.
// The new state is persisted before Buy reports success; on any failure the
// game is unchanged.
func (g *Game) Buy(symbol string, quantity int64, price Money) (Lot, error) {
	p, err := g.ProposeBuy(symbol, quantity, price)
	if err != nil {
		return Lot{}, err
	}

	next := g.clone()
	next.account.DebitPurchase(p.Quantity, p.Price)
	lot := next.portfolio.Append(NewHolding(p.Symbol, p.Quantity, p.Price))
	if err := g.commit(next); err != nil {
		return Lot{}, err
	}
	return lot, nil
}

// Sell sells quantity shares out of the identified lot at the observed price:
// it credits the proceeds net of tax and fee, and removes or reduces the lot.
// A quantity of 0 sells the whole lot. The new state is persisted before Sell
// reports success; on any failure the game is unchanged.
func (g *Game) Sell(lotID int, quantity int64, price Money) error {
	p, err := g.ProposeSell(lotID, quantity, price)
	if err != nil {
		return err
	}

	lot, err := g.portfolio.Lot(lotID)
	if err != nil {
		return err
	}
	next := g.clone()
	next.account.CreditSale(p.Quantity, p.Price, lot.CostBasis)
	if err := next.portfolio.RemoveOrReduce(lotID, p.Quantity); err != nil {
		return err
	}
	return g.commit(next)
}

// Valuation is the read-only summary of the whole game at current prices.
type Valuation struct {
	Portfolio   PortfolioValue
	Cash        Money
	TotalFees   Money
	TotalTaxes  Money
	TotalAssets Money   // cash + aggregate market value
	TotalProfit Money   // total assets - initial cash
	ProfitPct   Percent // 100 * total profit / initial cash
}

// Valuation values the game against the given symbol-to-price mapping.
// It fails with ErrMissingQuote if any held symbol has no price.
func (g *Game) Valuation(prices map[string]Money) (Valuation, error) {
	pv, err := g.portfolio.Valuation(prices)
	if err != nil {
		return Valuation{}, err
	}
	assets := g.account.Cash().Add(pv.MarketValue)
	profit := assets.Sub(g.account.InitialCash())
	return Valuation{
		Portfolio:   pv,
		Cash:        g.account.Cash(),
		TotalFees:   g.account.TotalFeesPaid(),
		TotalTaxes:  g.account.TotalTaxesPaid(),
		TotalAssets: assets,
		TotalProfit: profit,
		ProfitPct:   assets.PctOf(g.account.InitialCash()),
	}, nil
}

// clone returns a deep copy sharing only the saver.
func (g *Game) clone() *Game {
	return &Game{
		name:      g.name,
		account:   g.account.clone(),
		portfolio: g.portfolio.clone(),
		saver:     g.saver,
	}
}

// commit persists next and, only on success, swaps it into g.
func (g *Game) commit(next *Game) error {
	if g.saver != nil {
		if err := g.saver.SaveGame(next); err != nil {
			return fmt.Errorf("game %q not saved: %w", g.name, err)
		}
	}
	*g = *next
	return nil
}

package marketcl

import "github.com/shopspring/decimal"

// Account is the cash, fee and tax ledger of a game.
//
// The fields are unexported on purpose: transactions go through the Game
// engine, and reporting code only ever gets values out, never references in.
type Account struct {
	initial    Money           // starting cash, immutable after game creation
	cash       Money           // current balance
	tradeFee   Money           // flat fee charged per completed buy or sell
	taxRate    decimal.Decimal // capital-gains tax rate, fraction in [0,1)
	totalFees  Money           // running total of fees paid, never decreases
	totalTaxes Money           // running total of taxes paid, never decreases
}

// NewAccount creates an account with the given starting cash, flat trade fee
// and capital-gains tax rate.
func NewAccount(initialCash, tradeFee Money, taxRate decimal.Decimal) *Account {
	return &Account{initial: initialCash, cash: initialCash, tradeFee: tradeFee, taxRate: taxRate}
}

func (a *Account) InitialCash() Money       { return a.initial }
func (a *Account) Cash() Money              { return a.cash }
func (a *Account) TradeFee() Money          { return a.tradeFee }
func (a *Account) TaxRate() decimal.Decimal { return a.taxRate }
func (a *Account) TotalFeesPaid() Money     { return a.totalFees }
func (a *Account) TotalTaxesPaid() Money    { return a.totalTaxes }

// CanAfford reports whether the current cash covers totalCost. The Game
// performs this check, fee included, before any purchase.
func (a *Account) CanAfford(totalCost Money) bool {
	return a.cash.GreaterThanOrEqual(totalCost)
}

// MaxAffordableShares returns the largest number of shares purchasable at the
// given price once the trade fee is set aside. The fee is netted out first so
// the advertised count is never wrong by one fee unit.
func (a *Account) MaxAffordableShares(price Money) int64 {
	return a.cash.Sub(a.tradeFee).Shares(price)
}

// DebitPurchase charges shares*pricePerShare plus the flat trade fee.
//
// It assumes affordability was already validated by the caller and does not
// guard against driving cash negative.
func (a *Account) DebitPurchase(shares int64, pricePerShare Money) {
	a.cash = a.cash.Sub(pricePerShare.Mul(shares))
	a.payFee()
}

// CreditSale credits the gross proceeds of a sale, assesses capital-gains tax
// on a realized gain, and charges the flat trade fee. Realized losses are not
// taxed and do not generate a rebate. It returns the tax assessed.
func (a *Account) CreditSale(shares int64, salePrice, costBasis Money) Money {
	a.cash = a.cash.Add(salePrice.Mul(shares))

	var tax Money
	gain := salePrice.Sub(costBasis).Mul(shares)
	if gain.IsPositive() {
		tax = gain.MulRate(a.taxRate)
		a.cash = a.cash.Sub(tax)
		a.totalTaxes = a.totalTaxes.Add(tax)
	}
	a.payFee()
	return tax
}

// payFee charges the flat trade fee once.
func (a *Account) payFee() {
	a.cash = a.cash.Sub(a.tradeFee)
	a.totalFees = a.totalFees.Add(a.tradeFee)
}

// clone returns an independent copy of the account.
func (a *Account) clone() *Account {
	c := *a
	return &c
}

package marketcl

import "github.com/shopspring/decimal"

// USD is a helper for tests to create money from a const.
func USD(v float64) Money { return M(v) }

// rate is a helper for tests to create a tax rate from a const.
func rate(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// newTestAccount returns the account of the documented reference scenario:
// $10,000 starting cash, $5 flat fee, 15% capital-gains tax.
func newTestAccount() *Account {
	return NewAccount(USD(10000), USD(5), rate(0.15))
}

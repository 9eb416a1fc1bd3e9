package marketcl

import (
	"context"
	"time"
)

// Quoter is the market-data collaborator consumed by the ledger. Rate limits,
// caching and staleness behavior belong to the implementation, not to the
// ledger; the ledger only requires the failure semantics below.
type Quoter interface {
	// QuoteOne returns the current price for one symbol. It fails with an
	// error wrapping ErrQuoteUnavailable when no recent price exists.
	QuoteOne(ctx context.Context, symbol string) (Money, error)

	// QuoteMany returns the current price for every requested symbol.
	// Partial results are not acceptable: missing any symbol is a failure
	// wrapping ErrMissingQuote.
	QuoteMany(ctx context.Context, symbols []string) (map[string]Money, error)
}

// Bar is one period of a historical price series, used for charting only.
// Charting is pure presentation, so bars carry plain floats.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Historian provides historical daily bars for charting.
type Historian interface {
	// History returns up to days daily bars for the symbol, oldest first.
	History(ctx context.Context, symbol string, days int) ([]Bar, error)
}

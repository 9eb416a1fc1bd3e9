package marketcl

import "errors"

// Error taxonomy of the ledger. Validation errors are detected before any
// mutation: an operation that returns one of these leaves the game unchanged.
var (
	// ErrInsufficientFunds reports a buy whose total cost, fee included,
	// exceeds the available cash.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientShares reports a sell of more shares than the lot holds.
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrUnknownLot reports a lot id that does not refer to any holding.
	ErrUnknownLot = errors.New("unknown lot")

	// ErrMissingQuote reports a valuation or trade for which the price of at
	// least one held symbol is absent from the supplied quotes.
	ErrMissingQuote = errors.New("missing quote")

	// ErrQuoteUnavailable reports that the quote provider has no recent price
	// for a symbol. It is retryable when caused by a timeout.
	ErrQuoteUnavailable = errors.New("quote unavailable")

	// ErrPersistence reports a failed read, write or parse of a game file.
	// A transaction whose save fails is not committed.
	ErrPersistence = errors.New("persistence failure")
)

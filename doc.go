// Package marketcl implements the ledger core of a single-player,
// file-persisted fantasy stock-trading game.
//
// A player runs one or more independent games. Each game tracks a cash
// balance, a portfolio of stock lots, and the cumulative trading fees and
// capital-gains taxes paid, against live market prices fetched from an
// external quote provider.
//
// The core functionalities include:
//   - Portfolio Ledger: opening lots with a buy, trimming or closing them
//     with a sell, and charging the flat trade fee and capital-gains tax
//     exactly once per completed transaction.
//   - Valuation: a read-only computation of per-lot and aggregate market
//     value, total assets and profit, given a batch of current prices.
//   - Game Store: one JSON file per game plus a config file naming the
//     current game, with atomic (write-then-rename) saves.
//
// All monetary amounts are exact decimals; rounding happens only at
// display time. This package serves as the foundational logic for the
// `mkt` command-line tool.
package marketcl

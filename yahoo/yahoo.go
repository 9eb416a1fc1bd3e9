// Package yahoo fetches market prices from the Yahoo Finance v8 chart API.
//
// It implements the marketcl.Quoter and marketcl.Historian collaborator
// interfaces. The client carries an explicit HTTP timeout; a timed-out quote
// surfaces as a retryable marketcl.ErrQuoteUnavailable.
package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/marketcl/marketcl"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://query2.finance.yahoo.com"

// Client is a Yahoo Finance chart API client. The zero value is not usable;
// use NewClient.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a client with the default endpoint and an 8 second
// request timeout.
func NewClient() *Client {
	return &Client{
		http:    &http.Client{Timeout: 8 * time.Second},
		baseURL: defaultBaseURL,
	}
}

// NewClientAt creates a client against a custom endpoint. Tests point it at
// an httptest server.
func NewClientAt(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 8 * time.Second}
	}
	return &Client{http: httpClient, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// chartResponse is the subset of the v8 chart payload the game needs.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				RegularMarketTime  int64   `json:"regularMarketTime"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

func (c *Client) chart(ctx context.Context, symbol, rng, interval string) (*chartResponse, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		c.baseURL, url.PathEscape(symbol), interval, rng)

	var payload chartResponse
	if err := jwget(ctx, c.http, addr, &payload); err != nil {
		return nil, fmt.Errorf("could not fetch %s: %v: %w", symbol, err, marketcl.ErrQuoteUnavailable)
	}
	if len(payload.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart data for %s: %w", symbol, marketcl.ErrQuoteUnavailable)
	}
	return &payload, nil
}

// QuoteOne returns the current price for one symbol.
func (c *Client) QuoteOne(ctx context.Context, symbol string) (marketcl.Money, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return marketcl.Money{}, fmt.Errorf("empty symbol: %w", marketcl.ErrQuoteUnavailable)
	}

	payload, err := c.chart(ctx, symbol, "1d", "1m")
	if err != nil {
		return marketcl.Money{}, err
	}

	r := payload.Chart.Result[0]
	price := r.Meta.RegularMarketPrice

	// Fall back to the last non-zero close when the meta price is missing.
	if price <= 0 && len(r.Indicators.Quote) > 0 {
		closes := r.Indicators.Quote[0].Close
		for i := len(closes) - 1; i >= 0; i-- {
			if closes[i] > 0 {
				price = closes[i]
				break
			}
		}
	}
	if price <= 0 {
		return marketcl.Money{}, fmt.Errorf("no recent price for %s: %w", symbol, marketcl.ErrQuoteUnavailable)
	}
	return marketcl.M(decimal.NewFromFloat(price)), nil
}

// QuoteMany returns the current price for every requested symbol. Missing any
// one of them fails the whole batch: the ledger never values a portfolio from
// partial quotes.
func (c *Client) QuoteMany(ctx context.Context, symbols []string) (map[string]marketcl.Money, error) {
	prices := make(map[string]marketcl.Money, len(symbols))
	for _, symbol := range symbols {
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		price, err := c.QuoteOne(ctx, symbol)
		if err != nil {
			if errors.Is(err, marketcl.ErrQuoteUnavailable) {
				return nil, fmt.Errorf("quote batch incomplete at %s: %v: %w", symbol, err, marketcl.ErrMissingQuote)
			}
			return nil, err
		}
		prices[symbol] = price
	}
	return prices, nil
}

// rangeFor maps a number of days to the closest chart API range token.
// The API only accepts a fixed set of ranges.
func rangeFor(days int) string {
	switch {
	case days <= 5:
		return "5d"
	case days <= 30:
		return "1mo"
	case days <= 90:
		return "3mo"
	case days <= 180:
		return "6mo"
	case days <= 365:
		return "1y"
	default:
		return "2y"
	}
}

// History returns up to days daily bars for the symbol, oldest first.
func (c *Client) History(ctx context.Context, symbol string, days int) ([]marketcl.Bar, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if days <= 0 {
		days = 180
	}

	payload, err := c.chart(ctx, symbol, rangeFor(days), "1d")
	if err != nil {
		return nil, err
	}

	r := payload.Chart.Result[0]
	if len(r.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no history for %s: %w", symbol, marketcl.ErrQuoteUnavailable)
	}
	q := r.Indicators.Quote[0]

	var bars []marketcl.Bar
	for i, ts := range r.Timestamp {
		if i >= len(q.Close) || q.Close[i] <= 0 {
			continue // skip gaps in the series
		}
		bar := marketcl.Bar{Date: time.Unix(ts, 0), Close: q.Close[i]}
		if i < len(q.Open) {
			bar.Open = q.Open[i]
		}
		if i < len(q.High) {
			bar.High = q.High[i]
		}
		if i < len(q.Low) {
			bar.Low = q.Low[i]
		}
		if i < len(q.Volume) {
			bar.Volume = q.Volume[i]
		}
		bars = append(bars, bar)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no history for %s: %w", symbol, marketcl.ErrQuoteUnavailable)
	}
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

// Package marketdata bridges the external market-data provider and the
// system's strict asset shape. The provider is an untrusted, best-effort
// dependency: transport and decoding faults surface as errors so callers can
// log them, while a provider that simply has nothing yields an empty result
// with no error.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"

// Client performs lookups against a Yahoo Finance style market-data API.
type Client struct {
	httpClient *http.Client
	searchURL  string // overridable for tests
	quoteURL   string
}

// NewClient creates a market-data client. The URLs point at the provider's
// free-text search and single-ticker quote endpoints.
func NewClient(httpClient *http.Client, searchURL, quoteURL string) *Client {
	return &Client{httpClient: httpClient, searchURL: searchURL, quoteURL: quoteURL}
}

// Search issues a free-text search and returns at most limit normalized
// quote summaries. An empty provider result is ([], nil); only transport or
// decoding faults return an error.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]QuoteSummary, error) {
	reqURL := c.searchURL + "?" + url.Values{
		"q":           {query},
		"quotesCount": {strconv.Itoa(limit)},
	}.Encode()

	var payload searchResponse
	if err := c.getJSON(ctx, reqURL, &payload); err != nil {
		return nil, err
	}

	quotes := payload.Quotes
	if len(quotes) > limit {
		quotes = quotes[:limit]
	}

	results := make([]QuoteSummary, 0, len(quotes))
	for _, q := range quotes {
		results = append(results, normalizeSearchQuote(q))
	}
	return results, nil
}

// Details looks up the full detail record for one ticker. Returns (nil, nil)
// when the provider has no usable data for the symbol, and an error only for
// transport-level failures.
func (c *Client) Details(ctx context.Context, ticker string) (*AssetDetail, error) {
	reqURL := c.quoteURL + "?" + url.Values{
		"symbols": {strings.ToUpper(ticker)},
	}.Encode()

	var payload quoteResponse
	if err := c.getJSON(ctx, reqURL, &payload); err != nil {
		return nil, err
	}

	if len(payload.QuoteResponse.Result) == 0 {
		return nil, nil
	}

	// The fetch time is stamped here; the provider does not reliably supply
	// its own timestamp.
	return normalizeQuoteResult(ticker, payload.QuoteResponse.Result[0], time.Now().UTC()), nil
}

// getJSON issues a GET request and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

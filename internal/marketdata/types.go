package marketdata

import (
	"encoding/json"
	"time"
)

// QuoteSummary is the minimal shape returned by free-text search. It feeds
// autocomplete and intentionally excludes all financial metrics.
type QuoteSummary struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
}

// AssetDetail is the canonical normalized record for a single ticker.
// Numeric metrics are pointers: nil means the provider did not report the
// value, which must stay distinct from a reported zero.
type AssetDetail struct {
	Ticker        string     `json:"ticker"`
	Name          string     `json:"name"`
	Exchange      string     `json:"exchange"`
	Currency      string     `json:"currency"`
	CurrentPrice  *float64   `json:"current_price,omitempty"`
	Sector        string     `json:"sector,omitempty"`
	Industry      string     `json:"industry,omitempty"`
	MarketCap     *int64     `json:"market_cap,omitempty"`
	Volume        *int64     `json:"volume,omitempty"`
	PERatio       *float64   `json:"pe_ratio,omitempty"`
	DividendYield *float64   `json:"dividend_yield,omitempty"`
	LastUpdated   *time.Time `json:"last_updated,omitempty"`
}

// searchResponse is the top-level payload of the free-text search endpoint.
type searchResponse struct {
	Quotes []searchQuote `json:"quotes"`
}

// searchQuote is one loosely-typed quote record from the search endpoint.
// Providers populate these fields inconsistently, hence the fallback chains
// in normalize.go.
type searchQuote struct {
	Symbol    string `json:"symbol"`
	LongName  string `json:"longname"`
	ShortName string `json:"shortname"`
	ExchDisp  string `json:"exchDisp"`
	Exchange  string `json:"exchange"`
}

// quoteResponse is the top-level payload of the single-ticker quote endpoint.
type quoteResponse struct {
	QuoteResponse struct {
		Result []quoteResult    `json:"result"`
		Error  *json.RawMessage `json:"error"`
	} `json:"quoteResponse"`
}

// quoteResult is the loosely-typed detail record for one ticker. Pointer
// fields keep "absent" distinguishable from zero values.
type quoteResult struct {
	Symbol              string   `json:"symbol"`
	LongName            string   `json:"longName"`
	ShortName           string   `json:"shortName"`
	FullExchangeName    string   `json:"fullExchangeName"`
	Exchange            string   `json:"exchange"`
	Currency            string   `json:"currency"`
	CurrentPrice        *float64 `json:"currentPrice"`
	RegularMarketPrice  *float64 `json:"regularMarketPrice"`
	Sector              string   `json:"sector"`
	Industry            string   `json:"industry"`
	MarketCap           *int64   `json:"marketCap"`
	Volume              *int64   `json:"volume"`
	RegularMarketVolume *int64   `json:"regularMarketVolume"`
	TrailingPE          *float64 `json:"trailingPE"`
	DividendYield       *float64 `json:"dividendYield"`
}

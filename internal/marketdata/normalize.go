package marketdata

import (
	"strings"
	"time"
)

// The provider populates fields inconsistently across quote types and
// regions, so every normalized field is produced by an ordered fallback
// chain. These are pure functions so they can be tested without a live
// provider.

// resolveDisplayName picks the asset display name: long-form label, else
// short-form label, else the raw symbol.
func resolveDisplayName(longName, shortName, symbol string) string {
	if longName != "" {
		return longName
	}
	if shortName != "" {
		return shortName
	}
	return symbol
}

// resolveExchange picks the exchange label: display name, else raw exchange
// code, else "Unknown".
func resolveExchange(display, code string) string {
	if display != "" {
		return display
	}
	if code != "" {
		return code
	}
	return "Unknown"
}

// firstFloat returns the first non-nil value, or nil when every candidate is
// absent. A missing metric stays nil rather than becoming zero.
func firstFloat(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// firstInt returns the first non-nil value, or nil when every candidate is absent.
func firstInt(values ...*int64) *int64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// normalizeSearchQuote maps one raw search record to the autocomplete shape.
func normalizeSearchQuote(q searchQuote) QuoteSummary {
	return QuoteSummary{
		Ticker:   strings.ToUpper(q.Symbol),
		Name:     resolveDisplayName(q.LongName, q.ShortName, q.Symbol),
		Exchange: resolveExchange(q.ExchDisp, q.Exchange),
	}
}

// normalizeQuoteResult maps one raw detail record to the canonical record.
// Returns nil when the payload lacks both a long-form and short-form name:
// the provider answers invalid symbols with a mostly-empty stub, and a record
// without any name is treated as "ticker does not exist" even if other fields
// are populated.
func normalizeQuoteResult(ticker string, q quoteResult, fetchedAt time.Time) *AssetDetail {
	if q.LongName == "" && q.ShortName == "" {
		return nil
	}

	return &AssetDetail{
		Ticker:        strings.ToUpper(ticker),
		Name:          resolveDisplayName(q.LongName, q.ShortName, ticker),
		Exchange:      resolveExchange(q.FullExchangeName, q.Exchange),
		Currency:      q.Currency,
		CurrentPrice:  firstFloat(q.CurrentPrice, q.RegularMarketPrice),
		Sector:        q.Sector,
		Industry:      q.Industry,
		MarketCap:     q.MarketCap,
		Volume:        firstInt(q.Volume, q.RegularMarketVolume),
		PERatio:       q.TrailingPE,
		DividendYield: q.DividendYield,
		LastUpdated:   &fetchedAt,
	}
}

package marketdata

import (
	"testing"
	"time"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func TestResolveDisplayName(t *testing.T) {
	cases := []struct {
		name     string
		long     string
		short    string
		symbol   string
		expected string
	}{
		{"long_wins", "Apple Inc.", "Apple", "AAPL", "Apple Inc."},
		{"short_when_no_long", "", "Apple", "AAPL", "Apple"},
		{"symbol_when_no_names", "", "", "AAPL", "AAPL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveDisplayName(tc.long, tc.short, tc.symbol); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestResolveExchange(t *testing.T) {
	if got := resolveExchange("NasdaqGS", "NMS"); got != "NasdaqGS" {
		t.Errorf("expected display name, got %q", got)
	}
	if got := resolveExchange("", "NMS"); got != "NMS" {
		t.Errorf("expected raw code, got %q", got)
	}
	if got := resolveExchange("", ""); got != "Unknown" {
		t.Errorf("expected Unknown, got %q", got)
	}
}

func TestFirstFloat(t *testing.T) {
	if got := firstFloat(nil, f64(178.72)); got == nil || *got != 178.72 {
		t.Errorf("expected 178.72, got %v", got)
	}
	if got := firstFloat(f64(0), f64(178.72)); got == nil || *got != 0 {
		t.Error("expected a reported zero to win over later candidates")
	}
	if got := firstFloat(nil, nil); got != nil {
		t.Errorf("expected nil when every candidate is absent, got %v", got)
	}
}

func TestNormalizeSearchQuote(t *testing.T) {
	got := normalizeSearchQuote(searchQuote{
		Symbol:   "aapl",
		LongName: "Apple Inc.",
		ExchDisp: "NasdaqGS",
	})

	if got.Ticker != "AAPL" {
		t.Errorf("expected upper-cased ticker, got %q", got.Ticker)
	}
	if got.Name != "Apple Inc." {
		t.Errorf("expected long name, got %q", got.Name)
	}
	if got.Exchange != "NasdaqGS" {
		t.Errorf("expected NasdaqGS, got %q", got.Exchange)
	}
}

func TestNormalizeQuoteResult(t *testing.T) {
	fetchedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no_name_means_absent", func(t *testing.T) {
		// Invalid symbols come back as mostly-empty stubs with some numeric
		// fields still populated; those must not produce a record.
		got := normalizeQuoteResult("INVALID_TICKER", quoteResult{
			Symbol:             "INVALID_TICKER",
			RegularMarketPrice: f64(1.23),
			Volume:             i64(100),
		}, fetchedAt)
		if got != nil {
			t.Fatalf("expected nil for nameless stub record, got %+v", got)
		}
	})

	t.Run("price_and_volume_fallbacks", func(t *testing.T) {
		got := normalizeQuoteResult("aapl", quoteResult{
			Symbol:              "AAPL",
			LongName:            "Apple Inc.",
			Currency:            "USD",
			RegularMarketPrice:  f64(178.72),
			RegularMarketVolume: i64(52000000),
		}, fetchedAt)
		if got == nil {
			t.Fatal("expected a detail record")
		}
		if got.Ticker != "AAPL" {
			t.Errorf("expected upper-cased ticker, got %q", got.Ticker)
		}
		if got.CurrentPrice == nil || *got.CurrentPrice != 178.72 {
			t.Errorf("expected regularMarketPrice fallback, got %v", got.CurrentPrice)
		}
		if got.Volume == nil || *got.Volume != 52000000 {
			t.Errorf("expected regularMarketVolume fallback, got %v", got.Volume)
		}
		if got.LastUpdated == nil || !got.LastUpdated.Equal(fetchedAt) {
			t.Errorf("expected fetch-time stamp, got %v", got.LastUpdated)
		}
	})

	t.Run("current_price_wins", func(t *testing.T) {
		got := normalizeQuoteResult("AAPL", quoteResult{
			LongName:           "Apple Inc.",
			CurrentPrice:       f64(180.10),
			RegularMarketPrice: f64(178.72),
		}, fetchedAt)
		if got.CurrentPrice == nil || *got.CurrentPrice != 180.10 {
			t.Errorf("expected currentPrice to win, got %v", got.CurrentPrice)
		}
	})

	t.Run("missing_metrics_stay_nil", func(t *testing.T) {
		got := normalizeQuoteResult("AAPL", quoteResult{ShortName: "Apple"}, fetchedAt)
		if got.CurrentPrice != nil || got.MarketCap != nil || got.Volume != nil ||
			got.PERatio != nil || got.DividendYield != nil {
			t.Errorf("expected absent metrics to stay nil, got %+v", got)
		}
		if got.Exchange != "Unknown" {
			t.Errorf("expected Unknown exchange, got %q", got.Exchange)
		}
	})
}

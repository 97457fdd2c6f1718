package models

import "time"

// Asset represents a tradeable asset keyed by its ticker symbol.
// The market-data metrics are pointers: a missing value means the provider
// never reported one, which is a different fact from a reported zero.
type Asset struct {
	Base
	Ticker        string     `gorm:"uniqueIndex;not null" json:"ticker"`
	Name          string     `gorm:"not null" json:"name"`
	Exchange      string     `json:"exchange,omitempty"`
	Currency      string     `json:"currency,omitempty"`
	CurrentPrice  *float64   `json:"current_price,omitempty"`
	Sector        string     `json:"sector,omitempty"`
	Industry      string     `json:"industry,omitempty"`
	MarketCap     *int64     `gorm:"type:bigint" json:"market_cap,omitempty"`
	Volume        *int64     `gorm:"type:bigint" json:"volume,omitempty"`
	PERatio       *float64   `json:"pe_ratio,omitempty"`
	DividendYield *float64   `json:"dividend_yield,omitempty"`
	LastUpdated   *time.Time `json:"last_updated,omitempty"`

	// Relationships
	Allocations []Allocation `gorm:"foreignKey:AssetID" json:"allocations,omitempty"`
}

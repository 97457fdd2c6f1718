package models

import "time"

// Allocation represents a recorded purchase lot of an asset for a client.
type Allocation struct {
	Base
	ClientID uint      `gorm:"not null" json:"client_id"`
	AssetID  uint      `gorm:"not null" json:"asset_id"`
	Quantity float64   `gorm:"not null" json:"quantity"`
	BuyPrice float64   `gorm:"not null" json:"buy_price"`
	BuyDate  time.Time `gorm:"not null" json:"buy_date"`

	// Relationships
	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Asset  Asset  `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
}

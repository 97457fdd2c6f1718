package models

// Client represents an investment client managed by the back office.
type Client struct {
	Base
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// Relationships
	Allocations  []Allocation  `gorm:"foreignKey:ClientID" json:"allocations,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:ClientID" json:"transactions,omitempty"`
}

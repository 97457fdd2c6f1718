package models

import "time"

// TransactionType represents the kind of cash-flow transaction
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// Transaction represents a client cash-flow movement (deposit or withdrawal).
type Transaction struct {
	Base
	ClientID uint            `gorm:"not null" json:"client_id"`
	Type     TransactionType `gorm:"not null" json:"type"`
	Amount   float64         `gorm:"not null" json:"amount"`
	Date     time.Time       `gorm:"not null" json:"date"`
	Note     string          `json:"note,omitempty"`

	// Relationships
	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

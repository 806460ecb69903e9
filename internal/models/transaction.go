package models

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// Transaction represents a single income (credit) or expense (debit) entry.
// Only the owning user can see or mutate a transaction; the owner and id
// never change after creation.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Date        Date            `gorm:"not null" json:"date"`
	Amount      float64         `gorm:"type:decimal(12,2);not null" json:"amount"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

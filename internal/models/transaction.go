package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a normalized (date, description, amount) record produced by
// ingestion. It is immutable once created; the amount is always strictly
// positive.
type Transaction struct {
	Date        time.Time       `json:"date" yaml:"date"`
	Description string          `json:"description" yaml:"description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
}

// DateISO returns the transaction date as an ISO calendar date (YYYY-MM-DD).
func (t Transaction) DateISO() string {
	return t.Date.Format("2006-01-02")
}

// MonthKey returns the ISO month key (YYYY-MM) the transaction falls in.
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

// Source tags where an expense came from.
type Source string

const (
	SourceManual   Source = "manual"
	SourceImported Source = "imported"
)

// Expense is a Transaction enriched with its assigned category and owning
// user. Expenses belong to the user who created them and are never shared.
type Expense struct {
	Transaction
	CategoryID string    `json:"category_id" yaml:"category_id"`
	UserID     string    `json:"user_id" yaml:"user_id"`
	Source     Source    `json:"source" yaml:"source"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

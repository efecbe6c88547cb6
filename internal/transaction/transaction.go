// Package transaction turns raw records from the transaction API into
// canonical transactions.
package transaction

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Type is the direction of a transaction.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

var ErrInvalidType = errors.New("transaction type must be one of 'income' or 'expense'")

// ParseType parses s case-insensitively.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	}

	return "", ErrInvalidType
}

const (
	DefaultTitle    = "Untitled Transaction"
	DefaultCategory = "Other"
	DefaultTime     = "00:00"

	// DateLayout is the layout of the canonical date.
	DateLayout = "2006-01-02"

	// TimeLayout is the layout of the canonical time of day.
	TimeLayout = "15:04"
)

// RawRecord is a transaction as received from the API, before normalization.
type RawRecord map[string]any

// Transaction is a canonical transaction.
//
// Amount is always a non-negative magnitude, the direction is carried by Type.
type Transaction struct {
	ID       string          `json:"id" example:"b4a3f1c6-7d57-5a8e-9a3b-7b0c5e0a3f11"` // Opaque identifier
	Title    string          `json:"title" example:"Groceries"`
	Category string          `json:"category" example:"Food & Dining"`
	Amount   decimal.Decimal `json:"amount" example:"1250.5" swaggertype:"string"`
	Date     string          `json:"date" example:"2024-03-14"` // Calendar date in YYYY-MM-DD format
	Time     string          `json:"time" example:"18:30"`
	Type     Type            `json:"type" example:"expense" enums:"income,expense"`
}

// IsIncome reports whether the transaction is income.
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

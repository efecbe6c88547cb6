package v1

import (
	"strings"

	"github.com/findash/backend/internal/category"
	"github.com/findash/backend/internal/httputil"
	"github.com/findash/backend/internal/remote"
	"github.com/findash/backend/internal/transaction"
	"github.com/findash/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// Transaction is a transaction with the display style of its category.
type Transaction struct {
	transaction.Transaction
	Icon  string `json:"icon" example:"ShoppingCart"`
	Color string `json:"color" example:"bg-green-500"`
}

func newTransaction(t transaction.Transaction) Transaction {
	style := category.Lookup(t.Category)
	return Transaction{
		Transaction: t,
		Icon:        style.Icon,
		Color:       style.Color,
	}
}

func newTransactions(transactions []transaction.Transaction) []Transaction {
	out := make([]Transaction, len(transactions))
	for i, t := range transactions {
		out[i] = newTransaction(t)
	}
	return out
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                     // List of transactions
	Error *string       `json:"error" example:"the transaction API could not be reached"` // The error, if any occurred
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                 // Data for the transaction
	Error *string      `json:"error" example:"there is no transaction with this ID"` // The error, if any occurred
}

// TransactionEditable are the fields of a transaction that can be set.
type TransactionEditable struct {
	Title    string           `json:"title" binding:"required,max=255" example:"Groceries"`
	Category string           `json:"category" binding:"max=255" example:"Food & Dining"`               // Defaults to "Other"
	Amount   decimal.Decimal  `json:"amount" swaggertype:"string" example:"1250.5"`                     // The sign is only used when no type is set
	Date     string           `json:"date" binding:"required,datetime=2006-01-02" example:"2024-03-14"` // Calendar date in YYYY-MM-DD format
	Time     string           `json:"time" binding:"omitempty,datetime=15:04" example:"18:30"`          // Defaults to "00:00"
	Type     transaction.Type `json:"type" binding:"omitempty,oneof=income expense" example:"expense"`  // Inferred from the sign of the amount when empty
}

func editable(t transaction.Transaction) TransactionEditable {
	return TransactionEditable{
		Title:    t.Title,
		Category: t.Category,
		Amount:   t.Amount,
		Date:     t.Date,
		Time:     t.Time,
		Type:     t.Type,
	}
}

// transaction returns the canonical transaction for the editable fields.
func (e TransactionEditable) transaction(id string) (transaction.Transaction, error) {
	if e.Amount.IsZero() {
		return transaction.Transaction{}, errAmountZero
	}

	t := transaction.Transaction{
		ID:       id,
		Title:    strings.TrimSpace(e.Title),
		Category: strings.TrimSpace(e.Category),
		Amount:   e.Amount.Abs(),
		Date:     e.Date,
		Time:     e.Time,
		Type:     e.Type,
	}

	if t.Category == "" {
		t.Category = transaction.DefaultCategory
	}
	if t.Time == "" {
		t.Time = transaction.DefaultTime
	}
	if t.Type == "" {
		t.Type = transaction.TypeExpense
		if e.Amount.IsPositive() {
			t.Type = transaction.TypeIncome
		}
	}

	return t, nil
}

func (e TransactionEditable) remote() (remote.NewTransaction, transaction.Transaction, error) {
	t, err := e.transaction("")
	if err != nil {
		return remote.NewTransaction{}, t, err
	}

	return remote.NewTransaction{
		Description: t.Title,
		Category:    t.Category,
		Amount:      t.Amount,
		Date:        t.Date,
		Type:        t.Type,
	}, t, nil
}

type TransactionQueryFilter struct {
	Category string `form:"category"` // Exact category, case insensitive
	Type     string `form:"type"`     // income or expense
	Title    string `form:"title"`    // Glob pattern matched against the title, case insensitive. "*" matches any text
	Month    string `form:"month"`    // Year and month in YYYY-MM format
}

// matcher returns a function reporting whether a transaction matches
// the filter.
func (f TransactionQueryFilter) matcher() (func(transaction.Transaction) bool, error) {
	var (
		txType transaction.Type
		month  types.Month
		err    error
	)

	if f.Type != "" {
		if txType, err = transaction.ParseType(f.Type); err != nil {
			return nil, err
		}
	}

	if f.Month != "" {
		if month, err = types.ParseMonth(f.Month); err != nil {
			return nil, httputil.ErrInvalidMonth
		}
	}

	title := strings.ToLower(f.Title)

	return func(t transaction.Transaction) bool {
		if f.Category != "" && !strings.EqualFold(f.Category, t.Category) {
			return false
		}
		if txType != "" && t.Type != txType {
			return false
		}
		if title != "" && !glob.Glob(title, strings.ToLower(t.Title)) {
			return false
		}
		if !month.IsZero() {
			m, err := types.ParseDateToMonth(t.Date)
			if err != nil || !m.Equal(month) {
				return false
			}
		}
		return true
	}, nil
}

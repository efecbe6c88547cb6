package budget

import (
	"errors"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var ErrNegativeLimit = errors.New("the budget limit must not be negative")

// Limits maps category names to their monthly budget limit.
type Limits map[string]decimal.Decimal

// Of returns the limit of a category, zero when none is set.
func (l Limits) Of(category string) decimal.Decimal {
	limit, ok := l[category]
	if !ok {
		return decimal.Zero
	}
	return limit
}

// Total returns the sum of all limits.
func (l Limits) Total() decimal.Decimal {
	total := decimal.Zero
	for _, limit := range l {
		total = total.Add(limit)
	}
	return total
}

// Categories returns the categories with a limit, sorted by name.
func (l Limits) Categories() []string {
	categories := make([]string, 0, len(l))
	for category := range l {
		categories = append(categories, category)
	}
	slices.Sort(categories)
	return categories
}

// ValidateLimit returns ErrNegativeLimit for negative limits.
func ValidateLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return ErrNegativeLimit
	}
	return nil
}

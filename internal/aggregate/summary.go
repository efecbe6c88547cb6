// Package aggregate reduces canonical transactions into totals and breakdowns.
package aggregate

import (
	"time"

	"github.com/findash/backend/internal/transaction"
	"github.com/findash/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// DefaultTrendMonths is the number of months in a spending trend.
const DefaultTrendMonths = 6

var hundred = decimal.NewFromInt(100)

// CategoryTotal is the sum of expenses in one category.
type CategoryTotal struct {
	Category string          `json:"category" example:"Food & Dining"`
	Amount   decimal.Decimal `json:"amount" example:"4520.75" swaggertype:"string"`
}

// MonthTotal is the sum of expenses in one month.
type MonthTotal struct {
	Month  types.Month     `json:"month" example:"2024-03" swaggertype:"string"`
	Label  string          `json:"label" example:"Mar 2024"`
	Amount decimal.Decimal `json:"amount" example:"12800" swaggertype:"string"`
}

// Summary is the aggregate view over a list of transactions.
//
// Categories are in the order they were first encountered,
// Months in chronological order.
type Summary struct {
	Count         int             `json:"count" example:"42"`
	TotalIncome   decimal.Decimal `json:"totalIncome" example:"50000" swaggertype:"string"`
	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"32150.5" swaggertype:"string"`
	NetBalance    decimal.Decimal `json:"netBalance" example:"17849.5" swaggertype:"string"`
	Categories    []CategoryTotal `json:"categories"`
	Months        []MonthTotal    `json:"months"`
}

// Aggregate computes the summary of transactions.
//
// Only expenses contribute to the category and month breakdowns. Expenses with
// a date that cannot be parsed are left out of the month breakdown.
func Aggregate(transactions []transaction.Transaction) Summary {
	s := Summary{
		Count:         len(transactions),
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Categories:    []CategoryTotal{},
		Months:        []MonthTotal{},
	}

	categoryIndex := make(map[string]int)
	monthIndex := make(map[types.Month]int)

	for _, t := range transactions {
		if t.IsIncome() {
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
			continue
		}

		s.TotalExpenses = s.TotalExpenses.Add(t.Amount)

		i, ok := categoryIndex[t.Category]
		if !ok {
			i = len(s.Categories)
			categoryIndex[t.Category] = i
			s.Categories = append(s.Categories, CategoryTotal{Category: t.Category, Amount: decimal.Zero})
		}
		s.Categories[i].Amount = s.Categories[i].Amount.Add(t.Amount)

		month, err := types.ParseDateToMonth(t.Date)
		if err != nil {
			continue
		}

		j, ok := monthIndex[month]
		if !ok {
			j = len(s.Months)
			monthIndex[month] = j
			s.Months = append(s.Months, MonthTotal{Month: month, Label: month.Label(), Amount: decimal.Zero})
		}
		s.Months[j].Amount = s.Months[j].Amount.Add(t.Amount)
	}

	slices.SortFunc(s.Months, func(a, b MonthTotal) int {
		return a.Month.Compare(b.Month)
	})

	s.NetBalance = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}

// CategoryBreakdown returns the expense total per category.
func (s Summary) CategoryBreakdown() map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal, len(s.Categories))
	for _, c := range s.Categories {
		breakdown[c.Category] = c.Amount
	}
	return breakdown
}

// Spent returns the expense total of a category, zero for unknown categories.
func (s Summary) Spent(category string) decimal.Decimal {
	for _, c := range s.Categories {
		if c.Category == category {
			return c.Amount
		}
	}
	return decimal.Zero
}

// CategoryPercentage returns the share of a category in the total expenses
// in percent, rounded to one decimal. It is zero when there are no expenses.
func (s Summary) CategoryPercentage(category string) decimal.Decimal {
	return Percentage(s.Spent(category), s.TotalExpenses)
}

// Percentage returns part / whole * 100 rounded to one decimal, or zero if
// whole is not positive.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}

	return part.Mul(hundred).Div(whole).Round(1)
}

// MonthlyBreakdown returns the expense total per month label, e.g. "Mar 2024".
func (s Summary) MonthlyBreakdown() map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal, len(s.Months))
	for _, m := range s.Months {
		breakdown[m.Label] = m.Amount
	}
	return breakdown
}

// Trend returns the last n months that have expenses, oldest first.
func (s Summary) Trend(n int) []MonthTotal {
	if n < 0 || n > len(s.Months) {
		n = len(s.Months)
	}

	return slices.Clone(s.Months[len(s.Months)-n:])
}

// TopCategories returns up to n categories by descending amount. Categories
// with equal amounts keep their encounter order.
func (s Summary) TopCategories(n int) []CategoryTotal {
	ranked := slices.Clone(s.Categories)
	slices.SortStableFunc(ranked, func(a, b CategoryTotal) int {
		return b.Amount.Cmp(a.Amount)
	})

	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Year returns the expense totals for all twelve months of a year, including
// months without expenses.
func (s Summary) Year(year int) []MonthTotal {
	return s.fill(types.YearMonths(year))
}

// Window returns the expense totals for the n calendar months ending with the
// month of now, oldest first. Months without expenses are included with zero.
func (s Summary) Window(now time.Time, n int) []MonthTotal {
	return s.fill(types.MonthOf(now).LastMonths(n))
}

func (s Summary) fill(months []types.Month) []MonthTotal {
	totals := make(map[types.Month]decimal.Decimal, len(s.Months))
	for _, m := range s.Months {
		totals[m.Month] = m.Amount
	}

	out := make([]MonthTotal, len(months))
	for i, m := range months {
		amount, ok := totals[m]
		if !ok {
			amount = decimal.Zero
		}
		out[i] = MonthTotal{Month: m, Label: m.Label(), Amount: amount}
	}
	return out
}

// Package budget evaluates spending against per-category budget limits.
package budget

import (
	"github.com/findash/backend/internal/aggregate"
	"github.com/shopspring/decimal"
)

// Status classifies spending relative to a limit.
type Status string

const (
	StatusNoBudget   Status = "no-budget"
	StatusGood       Status = "good"
	StatusWarning    Status = "warning"
	StatusDanger     Status = "danger"
	StatusOverBudget Status = "over-budget"
)

var (
	goodThreshold    = decimal.NewFromInt(50)
	warningThreshold = decimal.NewFromInt(80)
	dangerThreshold  = decimal.NewFromInt(100)
)

// Evaluate classifies spent against limit.
//
// Each band includes its upper bound: exactly 50% is good, exactly 80% is a
// warning and exactly 100% is danger.
func Evaluate(spent, limit decimal.Decimal) Status {
	if !limit.IsPositive() {
		return StatusNoBudget
	}

	percentage := spent.Mul(decimal.NewFromInt(100)).Div(limit)
	switch {
	case percentage.LessThanOrEqual(goodThreshold):
		return StatusGood
	case percentage.LessThanOrEqual(warningThreshold):
		return StatusWarning
	case percentage.LessThanOrEqual(dangerThreshold):
		return StatusDanger
	}

	return StatusOverBudget
}

// Alerting reports whether the status needs the attention of the user.
func (s Status) Alerting() bool {
	return s == StatusWarning || s == StatusDanger || s == StatusOverBudget
}

// CategoryAggregate is the spending of a category compared to its limit.
type CategoryAggregate struct {
	Category       string          `json:"category" example:"Food & Dining"`
	TotalSpent     decimal.Decimal `json:"totalSpent" example:"4200" swaggertype:"string"`
	TotalBudget    decimal.Decimal `json:"totalBudget" example:"5000" swaggertype:"string"`
	PercentageUsed decimal.Decimal `json:"percentageUsed" example:"84" swaggertype:"string"` // Rounded to one decimal, 0 without a budget
	Status         Status          `json:"status" example:"danger" enums:"no-budget,good,warning,danger,over-budget"`
}

// Compare evaluates every category of the summary and every category with a
// limit.
//
// Categories with expenses come first in encounter order, followed by
// categories that only have a limit, sorted by name.
func Compare(summary aggregate.Summary, limits Limits) []CategoryAggregate {
	aggregates := make([]CategoryAggregate, 0, len(summary.Categories)+len(limits))
	seen := make(map[string]bool, len(summary.Categories))

	for _, c := range summary.Categories {
		seen[c.Category] = true
		aggregates = append(aggregates, compare(c.Category, c.Amount, limits.Of(c.Category)))
	}

	for _, category := range limits.Categories() {
		if seen[category] {
			continue
		}
		aggregates = append(aggregates, compare(category, decimal.Zero, limits.Of(category)))
	}

	return aggregates
}

// CompareOne evaluates a single category.
func CompareOne(summary aggregate.Summary, category string, limit decimal.Decimal) CategoryAggregate {
	return compare(category, summary.Spent(category), limit)
}

func compare(category string, spent, limit decimal.Decimal) CategoryAggregate {
	return CategoryAggregate{
		Category:       category,
		TotalSpent:     spent,
		TotalBudget:    limit,
		PercentageUsed: aggregate.Percentage(spent, limit),
		Status:         Evaluate(spent, limit),
	}
}

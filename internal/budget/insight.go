package budget

import (
	"fmt"
	"strings"

	"github.com/findash/backend/internal/aggregate"
	"github.com/findash/backend/internal/money"
	"github.com/shopspring/decimal"
)

// InsightKind is the subject of an insight.
type InsightKind string

const (
	InsightOverall       InsightKind = "overall"
	InsightCategory      InsightKind = "category"
	InsightTopCategories InsightKind = "top-categories"
)

// TopCategoryCount is the number of categories in the top spending insight.
const TopCategoryCount = 3

// Insight is a short statement about spending.
type Insight struct {
	Kind     InsightKind `json:"kind" example:"category" enums:"overall,category,top-categories"`
	Status   Status      `json:"status,omitempty" example:"over-budget"` // Empty for the top categories insight
	Title    string      `json:"title" example:"Shopping Over Budget"`
	Message  string      `json:"message" example:"Exceeded budget by ₹1,200.00"`
	Category string      `json:"category,omitempty" example:"Shopping"`
}

// Insights derives insights from the summary and its comparison with the
// budget limits.
//
// The overall insight is only present when a total budget is set. Categories
// only get an insight when their status is alerting. The top categories
// insight is present whenever there are expenses.
func Insights(summary aggregate.Summary, aggregates []CategoryAggregate) []Insight {
	insights := []Insight{}

	totalBudget := decimal.Zero
	for _, a := range aggregates {
		totalBudget = totalBudget.Add(a.TotalBudget)
	}

	if totalBudget.IsPositive() {
		insights = append(insights, Insight{
			Kind:   InsightOverall,
			Status: Evaluate(summary.TotalExpenses, totalBudget),
			Title:  "Overall Budget Status",
			Message: fmt.Sprintf("You've spent %s out of %s (%s)",
				money.Format(summary.TotalExpenses),
				money.Format(totalBudget),
				money.Percent(aggregate.Percentage(summary.TotalExpenses, totalBudget)),
			),
		})
	}

	for _, a := range aggregates {
		if !a.Status.Alerting() {
			continue
		}

		insight := Insight{
			Kind:     InsightCategory,
			Status:   a.Status,
			Title:    a.Category + " Near Limit",
			Message:  money.Percent(a.PercentageUsed) + " of budget used",
			Category: a.Category,
		}

		if a.Status == StatusOverBudget {
			insight.Title = a.Category + " Over Budget"
			insight.Message = "Exceeded budget by " + money.Format(a.TotalSpent.Sub(a.TotalBudget))
		}

		insights = append(insights, insight)
	}

	top := summary.TopCategories(TopCategoryCount)
	if len(top) > 0 {
		parts := make([]string, len(top))
		for i, c := range top {
			parts[i] = c.Category + ": " + money.Format(c.Amount)
		}

		insights = append(insights, Insight{
			Kind:    InsightTopCategories,
			Title:   "Top Spending Categories",
			Message: strings.Join(parts, ", "),
		})
	}

	return insights
}

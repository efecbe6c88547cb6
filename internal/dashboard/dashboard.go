// Package dashboard combines the transaction list and the budget limits into
// the views served by the API.
package dashboard

import (
	"context"
	"time"

	"github.com/findash/backend/internal/aggregate"
	"github.com/findash/backend/internal/budget"
	"github.com/findash/backend/internal/transaction"
	"github.com/findash/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// TopCount is the number of categories in a snapshot's ranking.
const TopCount = 5

// Source provides the canonical transaction list.
type Source interface {
	Fetch(ctx context.Context) ([]transaction.Transaction, error)
}

// Service computes dashboard views.
type Service struct {
	Transactions Source
	Budgets      budget.Store
	Now          func() time.Time
}

// Snapshot is everything the dashboard shows at one point in time.
//
// Summary, Recent and TopCategories cover all transactions. Budget limits are
// monthly, so Budgets and Insights only cover the spending in Month.
type Snapshot struct {
	GeneratedAt   time.Time                  `json:"generatedAt"`
	Month         types.Month                `json:"month" swaggertype:"string" example:"2024-03"`
	Transactions  []transaction.Transaction  `json:"-"`
	Summary       aggregate.Summary          `json:"summary"`
	Limits        budget.Limits              `json:"-"`
	Budgets       []budget.CategoryAggregate `json:"budgets"`
	Insights      []budget.Insight           `json:"insights"`
	Recent        []transaction.Transaction  `json:"recent"`
	TopCategories []aggregate.CategoryTotal  `json:"topCategories"`
}

// BudgetMonth is the spending of one month measured against the total budget.
type BudgetMonth struct {
	aggregate.MonthTotal
	Budget decimal.Decimal `json:"budget" example:"20000" swaggertype:"string"`
	Status budget.Status   `json:"status" example:"warning"`
}

func (s Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// load fetches the transactions and the budget limits concurrently.
func (s Service) load(ctx context.Context) ([]transaction.Transaction, budget.Limits, error) {
	var (
		transactions []transaction.Transaction
		limits       budget.Limits
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		transactions, err = s.Transactions.Fetch(ctx)
		return
	})
	g.Go(func() (err error) {
		limits, err = s.Budgets.All(ctx)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return transactions, limits, nil
}

// Snapshot computes the full dashboard, with budgets evaluated against the
// spending in month. The zero month is the current month. Every call
// recomputes from the current transactions and limits.
func (s Service) Snapshot(ctx context.Context, month types.Month) (Snapshot, error) {
	transactions, limits, err := s.load(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	now := s.now()
	if month.IsZero() {
		month = types.MonthOf(now)
	}

	summary := aggregate.Aggregate(transactions)
	monthly := aggregate.Aggregate(transaction.InMonth(transactions, month))
	aggregates := budget.Compare(monthly, limits)

	return Snapshot{
		GeneratedAt:   now,
		Month:         month,
		Transactions:  transactions,
		Summary:       summary,
		Limits:        limits,
		Budgets:       aggregates,
		Insights:      budget.Insights(monthly, aggregates),
		Recent:        transaction.Recent(transactions, transaction.DefaultRecentCount),
		TopCategories: summary.TopCategories(TopCount),
	}, nil
}

// BudgetTrend returns the expenses of the n calendar months ending with the
// current month, each evaluated against the total budget.
func (s Service) BudgetTrend(ctx context.Context, n int) ([]BudgetMonth, error) {
	transactions, limits, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	total := limits.Total()
	months := aggregate.Aggregate(transactions).Window(s.now(), n)

	trend := make([]BudgetMonth, len(months))
	for i, m := range months {
		trend[i] = BudgetMonth{
			MonthTotal: m,
			Budget:     total,
			Status:     budget.Evaluate(m.Amount, total),
		}
	}
	return trend, nil
}

// Yearly returns the expense totals of all twelve months of year.
func (s Service) Yearly(ctx context.Context, year int) ([]aggregate.MonthTotal, error) {
	transactions, err := s.Transactions.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	return aggregate.Aggregate(transactions).Year(year), nil
}

package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/findash/backend/internal/budget"
	"github.com/findash/backend/internal/dashboard"
	"github.com/findash/backend/internal/transaction"
	"github.com/findash/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	transactions []transaction.Transaction
	err          error
}

func (s staticSource) Fetch(context.Context) ([]transaction.Transaction, error) {
	return s.transactions, s.err
}

var errBroken = errors.New("broken")

type brokenStore struct {
	*budget.MemoryStore
}

func (brokenStore) All(context.Context) (budget.Limits, error) {
	return nil, errBroken
}

func expense(id, category, date string, amount int64) transaction.Transaction {
	return transaction.Transaction{
		ID:       id,
		Title:    id,
		Category: category,
		Amount:   decimal.NewFromInt(amount),
		Date:     date,
		Time:     transaction.DefaultTime,
		Type:     transaction.TypeExpense,
	}
}

func fixture() []transaction.Transaction {
	return []transaction.Transaction{
		{ID: "salary", Title: "Salary", Category: "Income", Amount: decimal.NewFromInt(5000), Date: "2024-03-01", Time: "09:00", Type: transaction.TypeIncome},
		expense("rent", "Housing", "2024-03-02", 1500),
		expense("lunch", "Food", "2024-03-05", 450),
		expense("shoes", "Shopping", "2024-01-20", 1200),
		expense("dinner", "Food", "2024-02-11", 300),
	}
}

func service(t *testing.T, limits budget.Limits) dashboard.Service {
	store := budget.NewMemoryStore()
	for category, limit := range limits {
		require.Nil(t, store.Set(context.Background(), category, limit))
	}

	return dashboard.Service{
		Transactions: staticSource{transactions: fixture()},
		Budgets:      store,
		Now:          func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) },
	}
}

func statuses(aggregates []budget.CategoryAggregate) map[string]budget.Status {
	out := map[string]budget.Status{}
	for _, a := range aggregates {
		out[a.Category] = a.Status
	}
	return out
}

func TestSnapshot(t *testing.T) {
	s := service(t, budget.Limits{
		"Food":     decimal.NewFromInt(800),
		"Shopping": decimal.NewFromInt(1000),
	})

	snapshot, err := s.Snapshot(context.Background(), types.Month{})
	require.Nil(t, err)

	assert.Equal(t, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), snapshot.GeneratedAt)
	assert.Equal(t, types.NewMonth(2024, 3), snapshot.Month)
	assert.Len(t, snapshot.Transactions, 5)
	assert.True(t, decimal.NewFromInt(5000).Equal(snapshot.Summary.TotalIncome))
	assert.True(t, decimal.NewFromInt(3450).Equal(snapshot.Summary.TotalExpenses))

	require.Len(t, snapshot.Recent, 5)
	assert.Equal(t, "lunch", snapshot.Recent[0].ID)

	require.Len(t, snapshot.TopCategories, 3)
	assert.Equal(t, "Housing", snapshot.TopCategories[0].Category)
	assert.Equal(t, "Shopping", snapshot.TopCategories[1].Category)
	assert.Equal(t, "Food", snapshot.TopCategories[2].Category)

	// Budgets only count the March expenses
	require.Len(t, snapshot.Budgets, 3)
	assert.Equal(t, "Housing", snapshot.Budgets[0].Category)
	assert.Equal(t, "Food", snapshot.Budgets[1].Category)
	assert.True(t, decimal.NewFromInt(450).Equal(snapshot.Budgets[1].TotalSpent))
	assert.Equal(t, map[string]budget.Status{
		"Housing":  budget.StatusNoBudget,
		"Food":     budget.StatusWarning,
		"Shopping": budget.StatusGood,
	}, statuses(snapshot.Budgets))

	require.Len(t, snapshot.Insights, 3)
	assert.Equal(t, budget.InsightOverall, snapshot.Insights[0].Kind)
	assert.Equal(t, budget.StatusOverBudget, snapshot.Insights[0].Status, "1950 of 1800")
	assert.Equal(t, "Food", snapshot.Insights[1].Category)
	assert.Equal(t, budget.InsightTopCategories, snapshot.Insights[2].Kind)
	assert.NotContains(t, snapshot.Insights[2].Message, "Shopping")
}

func TestSnapshotMonth(t *testing.T) {
	s := service(t, budget.Limits{
		"Food":     decimal.NewFromInt(800),
		"Shopping": decimal.NewFromInt(1000),
	})

	snapshot, err := s.Snapshot(context.Background(), types.NewMonth(2024, 1))
	require.Nil(t, err)

	assert.Equal(t, types.NewMonth(2024, 1), snapshot.Month)
	assert.True(t, decimal.NewFromInt(3450).Equal(snapshot.Summary.TotalExpenses), "The summary covers all months")
	assert.Equal(t, map[string]budget.Status{
		"Shopping": budget.StatusOverBudget,
		"Food":     budget.StatusGood,
	}, statuses(snapshot.Budgets))
}

// Spending in earlier months does not count against this month's limit.
func TestSnapshotBudgetsAreMonthly(t *testing.T) {
	store := budget.NewMemoryStore()
	require.Nil(t, store.Set(context.Background(), "Food", decimal.NewFromInt(100)))

	s := dashboard.Service{
		Transactions: staticSource{transactions: []transaction.Transaction{
			expense("february", "Food", "2024-02-10", 60),
			expense("march", "Food", "2024-03-10", 60),
		}},
		Budgets: store,
		Now:     func() time.Time { return time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC) },
	}

	snapshot, err := s.Snapshot(context.Background(), types.Month{})
	require.Nil(t, err)

	require.Len(t, snapshot.Budgets, 1)
	food := snapshot.Budgets[0]
	assert.True(t, decimal.NewFromInt(60).Equal(food.TotalSpent), food.TotalSpent.String())
	assert.True(t, decimal.NewFromInt(60).Equal(food.PercentageUsed), food.PercentageUsed.String())
	assert.Equal(t, budget.StatusWarning, food.Status)

	require.NotEmpty(t, snapshot.Insights)
	assert.Equal(t, budget.StatusWarning, snapshot.Insights[0].Status)
	assert.Equal(t, "You've spent ₹60.00 out of ₹100.00 (60.0%)", snapshot.Insights[0].Message)

	previous, err := s.Snapshot(context.Background(), types.NewMonth(2024, 2))
	require.Nil(t, err)
	assert.True(t, decimal.NewFromInt(60).Equal(previous.Budgets[0].TotalSpent))
}

func TestSnapshotFetchError(t *testing.T) {
	s := service(t, nil)
	s.Transactions = staticSource{err: errBroken}

	_, err := s.Snapshot(context.Background(), types.Month{})
	assert.ErrorIs(t, err, errBroken)
}

func TestSnapshotStoreError(t *testing.T) {
	s := service(t, nil)
	s.Budgets = brokenStore{budget.NewMemoryStore()}

	_, err := s.Snapshot(context.Background(), types.Month{})
	assert.ErrorIs(t, err, errBroken)
}

func TestBudgetTrend(t *testing.T) {
	s := service(t, budget.Limits{
		"Food":    decimal.NewFromInt(1000),
		"Housing": decimal.NewFromInt(1000),
	})

	trend, err := s.BudgetTrend(context.Background(), 4)
	require.Nil(t, err)
	require.Len(t, trend, 4)

	assert.Equal(t, types.NewMonth(2023, 12), trend[0].Month)
	assert.True(t, trend[0].Amount.IsZero())
	assert.Equal(t, budget.StatusGood, trend[0].Status)

	assert.Equal(t, types.NewMonth(2024, 3), trend[3].Month)
	assert.True(t, decimal.NewFromInt(1950).Equal(trend[3].Amount))
	assert.True(t, decimal.NewFromInt(2000).Equal(trend[3].Budget))
	assert.Equal(t, budget.StatusDanger, trend[3].Status)
}

func TestBudgetTrendWithoutBudget(t *testing.T) {
	trend, err := service(t, nil).BudgetTrend(context.Background(), 2)
	require.Nil(t, err)

	for _, m := range trend {
		assert.Equal(t, budget.StatusNoBudget, m.Status)
	}
}

func TestYearly(t *testing.T) {
	months, err := service(t, nil).Yearly(context.Background(), 2024)
	require.Nil(t, err)
	require.Len(t, months, 12)

	assert.True(t, decimal.NewFromInt(1200).Equal(months[0].Amount))
	assert.True(t, decimal.NewFromInt(300).Equal(months[1].Amount))
	assert.True(t, decimal.NewFromInt(1950).Equal(months[2].Amount))
	assert.True(t, months[11].Amount.IsZero())
	assert.Equal(t, "Dec 2024", months[11].Label)
}

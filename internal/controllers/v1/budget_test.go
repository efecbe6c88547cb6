package v1_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/findash/backend/internal/budget"
	v1 "github.com/findash/backend/internal/controllers/v1"
	"github.com/findash/backend/internal/models"
	"github.com/findash/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	r := suite.request(http.MethodOptions, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, "http://example.com/v1/budgets/Food", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PUT", r.Header().Get("allow"))
}

type budgetRow struct {
	category string
	spent    int64
	limit    int64
	status   budget.Status
}

func (suite *TestSuiteStandard) assertBudgets(want []budgetRow, got []budget.CategoryAggregate) {
	suite.Require().Len(got, len(want))
	for i, tt := range want {
		a := got[i]
		suite.Assert().Equal(tt.category, a.Category)
		suite.Assert().True(decimal.NewFromInt(tt.spent).Equal(a.TotalSpent), "%s: %s", tt.category, a.TotalSpent)
		suite.Assert().True(decimal.NewFromInt(tt.limit).Equal(a.TotalBudget), "%s: %s", tt.category, a.TotalBudget)
		suite.Assert().Equal(tt.status, a.Status, tt.category)
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetList() {
	suite.Require().Nil(models.BudgetStore{}.Set(context.Background(), "Food", decimal.NewFromInt(400)))
	suite.Require().Nil(models.BudgetStore{}.Set(context.Background(), "Travel", decimal.NewFromInt(300)))

	r := suite.request(http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Only March is counted. Categories with expenses come first, then
	// categories that only have a limit
	suite.assertBudgets([]budgetRow{
		{"Food", 300, 400, budget.StatusWarning},
		{"Transport", 50, 0, budget.StatusNoBudget},
		{"Travel", 0, 300, budget.StatusGood},
	}, response.Data)

	r = suite.request(http.MethodGet, "http://example.com/v1/budgets?month=2024-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.assertBudgets([]budgetRow{
		{"Food", 200, 400, budget.StatusGood},
		{"Rent", 1000, 0, budget.StatusNoBudget},
		{"Travel", 0, 300, budget.StatusGood},
	}, response.Data)

	r = suite.request(http.MethodGet, "http://example.com/v1/budgets?month=2024-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	suite.assertBudgets([]budgetRow{
		{"Food", 0, 400, budget.StatusGood},
		{"Travel", 0, 300, budget.StatusGood},
	}, response.Data)
}

func (suite *TestSuiteStandard) TestBudgetsInvalidMonth() {
	for _, url := range []string{
		"http://example.com/v1/budgets?month=March",
		"http://example.com/v1/budgets/Food?month=2024-13",
		"http://example.com/v1/insights?month=2024-3-01",
	} {
		r := suite.request(http.MethodGet, url, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		suite.Assert().Equal("the month must be formatted as YYYY-MM", test.DecodeError(suite.T(), r.Body.Bytes()), url)
	}
}

func (suite *TestSuiteStandard) TestBudgetsGet() {
	r := suite.request(http.MethodGet, "http://example.com/v1/budgets/Food", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(budget.StatusNoBudget, response.Data.Status)
	suite.Assert().True(decimal.NewFromInt(300).Equal(response.Data.TotalSpent), response.Data.TotalSpent.String())
	suite.Assert().True(response.Data.PercentageUsed.IsZero())

	suite.Require().Nil(models.BudgetStore{}.Set(context.Background(), "Food", decimal.NewFromInt(500)))

	r = suite.request(http.MethodGet, "http://example.com/v1/budgets/Food", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(budget.StatusWarning, response.Data.Status)
	suite.Assert().True(decimal.NewFromInt(60).Equal(response.Data.PercentageUsed), response.Data.PercentageUsed.String())

	// February has 200 in food, the same limit applies
	r = suite.request(http.MethodGet, "http://example.com/v1/budgets/Food?month=2024-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromInt(200).Equal(response.Data.TotalSpent), response.Data.TotalSpent.String())
	suite.Assert().Equal(budget.StatusGood, response.Data.Status)
}

func (suite *TestSuiteStandard) TestBudgetsSet() {
	r := suite.request(http.MethodPut, "http://example.com/v1/budgets/Food", map[string]any{"limit": "250"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// 300 spent on food in March, the 200 of February are not counted
	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Food", response.Data.Category)
	suite.Assert().Equal(budget.StatusOverBudget, response.Data.Status)
	suite.Assert().True(decimal.NewFromInt(120).Equal(response.Data.PercentageUsed), response.Data.PercentageUsed.String())

	limit, ok, err := models.BudgetStore{}.Get(context.Background(), "Food")
	suite.Require().Nil(err)
	suite.Assert().True(ok)
	suite.Assert().True(decimal.NewFromInt(250).Equal(limit))

	events := suite.events.Events()
	suite.Require().Len(events, 1)
	suite.Assert().Equal("Food", events[0].Category)
	suite.Assert().True(decimal.NewFromInt(300).Equal(events[0].Spent), events[0].Spent.String())
	suite.Assert().Equal("budget.over-budget", events[0].RoutingKey())
	suite.Assert().True(now.Equal(events[0].Timestamp))

	// Updating replaces the limit
	r = suite.request(http.MethodPut, "http://example.com/v1/budgets/Food", map[string]any{"limit": 2000})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(budget.StatusGood, response.Data.Status)
	suite.Assert().Len(suite.events.Events(), 2)
}

func (suite *TestSuiteStandard) TestBudgetsSetZeroRemovesBudget() {
	r := suite.request(http.MethodPut, "http://example.com/v1/budgets/Food", map[string]any{"limit": 0})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(budget.StatusNoBudget, response.Data.Status)
}

func (suite *TestSuiteStandard) TestBudgetsSetInvalid() {
	tests := []struct {
		name string
		url  string
		body any
	}{
		{"Negative limit", "http://example.com/v1/budgets/Food", map[string]any{"limit": -1}},
		{"Not a number", "http://example.com/v1/budgets/Food", map[string]any{"limit": "a lot"}},
		{"Empty body", "http://example.com/v1/budgets/Food", ""},
		{"Blank category", "http://example.com/v1/budgets/%20", map[string]any{"limit": 100}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodPut, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.NotEmpty(t, test.DecodeError(t, r.Body.Bytes()))
		})
	}

	suite.Assert().Empty(suite.events.Events())
}

// A limit is stored even when the transaction API is down. Without
// transactions, the spending is zero and no event is sent.
func (suite *TestSuiteStandard) TestBudgetsSetAPIDown() {
	suite.api.Fail(http.StatusBadGateway)

	r := suite.request(http.MethodPut, "http://example.com/v1/budgets/Food", map[string]any{"limit": 400})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.TotalSpent.IsZero())
	suite.Assert().Equal(budget.StatusGood, response.Data.Status)
	suite.Assert().Empty(suite.events.Events())

	_, ok, err := models.BudgetStore{}.Get(context.Background(), "Food")
	suite.Require().Nil(err)
	suite.Assert().True(ok)
}

func (suite *TestSuiteStandard) TestBudgetsDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Equal(models.ErrGeneral.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodPut, "http://example.com/v1/budgets/Food", map[string]any{"limit": 400})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

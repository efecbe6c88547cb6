package v1_test

import (
	"context"
	"net/http"
	"strings"

	"github.com/findash/backend/internal/budget"
	v1 "github.com/findash/backend/internal/controllers/v1"
	"github.com/findash/backend/internal/models"
	"github.com/findash/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSummary() {
	r := suite.request(http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	s := response.Data
	suite.Assert().Equal(5, s.Count)
	suite.Assert().True(decimal.NewFromInt(5000).Equal(s.TotalIncome))
	suite.Assert().True(decimal.NewFromInt(1550).Equal(s.TotalExpenses))
	suite.Assert().True(decimal.NewFromInt(3450).Equal(s.NetBalance))

	suite.Require().Len(s.Categories, 3)
	suite.Assert().Equal("Food", s.Categories[0].Category)
	suite.Assert().True(decimal.NewFromInt(500).Equal(s.Categories[0].Amount))
	suite.Assert().Equal("Transport", s.Categories[1].Category)
	suite.Assert().Equal("Rent", s.Categories[2].Category)

	suite.Require().Len(s.Months, 2)
	suite.Assert().Equal("Feb 2024", s.Months[0].Label)
	suite.Assert().True(decimal.NewFromInt(1200).Equal(s.Months[0].Amount))
	suite.Assert().Equal("Mar 2024", s.Months[1].Label)
}

func (suite *TestSuiteStandard) TestSummaryEmpty() {
	suite.api.mu.Lock()
	suite.api.records = []any{}
	suite.api.mu.Unlock()

	r := suite.request(http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(0, response.Data.Count)
	suite.Assert().True(response.Data.NetBalance.IsZero())
}

func (suite *TestSuiteStandard) TestSummaryAPIError() {
	suite.api.Fail(http.StatusServiceUnavailable)

	r := suite.request(http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadGateway)
}

func (suite *TestSuiteStandard) TestCategories() {
	r := suite.request(http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 3)

	tests := []struct {
		name       string
		percentage string
		icon       string
	}{
		{"Food", "32.3", "Utensils"},
		{"Transport", "3.2", "Car"},
		{"Rent", "64.5", "Home"},
	}

	for i, tt := range tests {
		c := response.Data[i]
		suite.Assert().Equal(tt.name, c.Name)
		suite.Assert().True(decimal.RequireFromString(tt.percentage).Equal(c.Percentage), "%s: %s", tt.name, c.Percentage)
		suite.Assert().Equal(tt.icon, c.Icon)
		suite.Assert().NotEmpty(c.ChartColor)
	}
}

func (suite *TestSuiteStandard) TestCategoryOptions() {
	r := suite.request(http.MethodGet, "http://example.com/v1/categories/options", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryOptionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotEmpty(response.Data)
	suite.Assert().Equal("food", response.Data[0].ID)
	suite.Assert().Equal("Food & Dining", response.Data[0].Name)
	suite.Assert().Equal("Utensils", response.Data[0].Icon)
}

func (suite *TestSuiteStandard) TestInsightsWithoutBudget() {
	r := suite.request(http.MethodGet, "http://example.com/v1/insights", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InsightListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Rent was paid in February and is not among the March categories
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(budget.InsightTopCategories, response.Data[0].Kind)
	suite.Assert().True(strings.HasPrefix(response.Data[0].Message, "Food: "), response.Data[0].Message)
	suite.Assert().NotContains(response.Data[0].Message, "Rent")
}

func (suite *TestSuiteStandard) TestInsights() {
	suite.Require().Nil(models.BudgetStore{}.Set(context.Background(), "Food", decimal.NewFromInt(250)))
	suite.Require().Nil(models.BudgetStore{}.Set(context.Background(), "Rent", decimal.NewFromInt(2000)))

	r := suite.request(http.MethodGet, "http://example.com/v1/insights", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InsightListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// March: 350 of 2250 overall, Food over budget, Rent unused
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal(budget.InsightOverall, response.Data[0].Kind)
	suite.Assert().Equal("Overall Budget Status", response.Data[0].Title)
	suite.Assert().Equal(budget.StatusGood, response.Data[0].Status)

	suite.Assert().Equal(budget.InsightCategory, response.Data[1].Kind)
	suite.Assert().Equal("Food", response.Data[1].Category)
	suite.Assert().Equal(budget.StatusOverBudget, response.Data[1].Status)
	suite.Assert().Equal("Food Over Budget", response.Data[1].Title)

	suite.Assert().Equal(budget.InsightTopCategories, response.Data[2].Kind)
}

func (suite *TestSuiteStandard) TestInsightsMonth() {
	suite.Require().Nil(models.BudgetStore{}.Set(context.Background(), "Food", decimal.NewFromInt(250)))
	suite.Require().Nil(models.BudgetStore{}.Set(context.Background(), "Rent", decimal.NewFromInt(2000)))

	r := suite.request(http.MethodGet, "http://example.com/v1/insights?month=2024-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InsightListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// February: 1200 of 2250 overall, Food at 80%, Rent at 50%
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal(budget.StatusWarning, response.Data[0].Status)
	suite.Assert().Contains(response.Data[0].Message, "(53.3%)")

	suite.Assert().Equal("Food Near Limit", response.Data[1].Title)
	suite.Assert().Equal("80.0% of budget used", response.Data[1].Message)

	suite.Assert().True(strings.HasPrefix(response.Data[2].Message, "Rent: "), response.Data[2].Message)
}

func (suite *TestSuiteStandard) TestInsightsDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodGet, "http://example.com/v1/insights", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

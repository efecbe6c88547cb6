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

func (suite *TestSuiteStandard) TestMonths() {
	r := suite.request(http.MethodGet, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Feb 2024", response.Data[0].Label)
	suite.Assert().True(decimal.NewFromInt(1200).Equal(response.Data[0].Amount))
	suite.Assert().Equal("Mar 2024", response.Data[1].Label)
	suite.Assert().True(decimal.NewFromInt(350).Equal(response.Data[1].Amount))

	r = suite.request(http.MethodGet, "http://example.com/v1/months?count=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Mar 2024", response.Data[0].Label)
}

func (suite *TestSuiteStandard) TestMonthTrend() {
	suite.Require().Nil(models.BudgetStore{}.Set(context.Background(), "Food", decimal.NewFromInt(400)))
	suite.Require().Nil(models.BudgetStore{}.Set(context.Background(), "Rent", decimal.NewFromInt(1000)))

	r := suite.request(http.MethodGet, "http://example.com/v1/months/trend?count=3", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetMonthListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 3)

	tests := []struct {
		label  string
		amount int64
		status budget.Status
	}{
		{"Jan 2024", 0, budget.StatusGood},
		{"Feb 2024", 1200, budget.StatusDanger},
		{"Mar 2024", 350, budget.StatusGood},
	}

	for i, tt := range tests {
		m := response.Data[i]
		suite.Assert().Equal(tt.label, m.Label)
		suite.Assert().True(decimal.NewFromInt(tt.amount).Equal(m.Amount), "%s: %s", tt.label, m.Amount)
		suite.Assert().True(decimal.NewFromInt(1400).Equal(m.Budget))
		suite.Assert().Equal(tt.status, m.Status, tt.label)
	}
}

func (suite *TestSuiteStandard) TestMonthTrendWithoutBudget() {
	r := suite.request(http.MethodGet, "http://example.com/v1/months/trend", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetMonthListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 6)
	suite.Assert().Equal("Oct 2023", response.Data[0].Label)
	suite.Assert().Equal(budget.StatusNoBudget, response.Data[5].Status)
}

func (suite *TestSuiteStandard) TestMonthYearly() {
	r := suite.request(http.MethodGet, "http://example.com/v1/months/yearly", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 12)
	suite.Assert().Equal("Jan 2024", response.Data[0].Label)
	suite.Assert().True(decimal.NewFromInt(1200).Equal(response.Data[1].Amount))
	suite.Assert().True(decimal.NewFromInt(350).Equal(response.Data[2].Amount))
	suite.Assert().True(response.Data[11].Amount.IsZero())

	r = suite.request(http.MethodGet, "http://example.com/v1/months/yearly?year=2023", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 12)
	suite.Assert().Equal("Dec 2023", response.Data[11].Label)
	for _, m := range response.Data {
		suite.Assert().True(m.Amount.IsZero())
	}
}

func (suite *TestSuiteStandard) TestMonthsInvalidQuery() {
	tests := []string{
		"http://example.com/v1/months?count=six",
		"http://example.com/v1/months/trend?count=six",
		"http://example.com/v1/months/yearly?year=last",
		"http://example.com/v1/months/yearly?year=0",
		"http://example.com/v1/months/yearly?year=10000",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, tt, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.NotEmpty(t, test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/findash/backend/internal/controllers/v1"
	"github.com/findash/backend/internal/transaction"
	"github.com/findash/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		path     string
		expected string
	}{
		{"http://example.com/v1/transactions", "OPTIONS, GET, POST"},
		{"http://example.com/v1/transactions/recent", "OPTIONS, GET"},
		{"http://example.com/v1/transactions/2", "OPTIONS, GET, PUT, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.expected, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetList() {
	r := suite.request(http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// The null entry is skipped
	suite.Require().Len(response.Data, 5)

	salary := response.Data[0]
	suite.Assert().Equal("1", salary.ID)
	suite.Assert().Equal("Salary March", salary.Title)
	suite.Assert().Equal(transaction.TypeIncome, salary.Type)
	suite.Assert().True(decimal.NewFromInt(5000).Equal(salary.Amount))
	suite.Assert().Equal("00:00", salary.Time)
	suite.Assert().Equal("Briefcase", salary.Icon)

	bus := response.Data[2]
	suite.Assert().Equal("Transport", bus.Category, "the legacy category key is read")
	suite.Assert().Equal(transaction.TypeExpense, bus.Type)
	suite.Assert().True(decimal.NewFromInt(50).Equal(bus.Amount))

	rent := response.Data[4]
	suite.Assert().Equal(transaction.TypeExpense, rent.Type, "an explicit type wins over the sign")
	suite.Assert().Equal("Home", rent.Icon)
}

func (suite *TestSuiteStandard) TestTransactionsFilter() {
	tests := []struct {
		name  string
		query string
		ids   []string
	}{
		{"Category, case insensitive", "category=food", []string{"2", "4"}},
		{"Type", "type=income", []string{"1"}},
		{"Title glob", "title=*BUS*", []string{"3"}},
		{"Month", "month=2024-02", []string{"4", "5"}},
		{"Combined", "type=expense&month=2024-03", []string{"2", "3"}},
		{"No match", "category=Travel", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			ids := []string{}
			for _, tx := range response.Data {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsFilterInvalid() {
	tests := []struct {
		name  string
		query string
	}{
		{"Type", "type=transfer"},
		{"Month", "month=2024-13"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsRecent() {
	r := suite.request(http.MethodGet, "http://example.com/v1/transactions/recent", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	ids := []string{}
	for _, tx := range response.Data {
		ids = append(ids, tx.ID)
	}
	suite.Assert().Equal([]string{"3", "2", "1", "4", "5"}, ids)

	r = suite.request(http.MethodGet, "http://example.com/v1/transactions/recent?count=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("3", response.Data[0].ID)
	suite.Assert().Equal("2", response.Data[1].ID)

	r = suite.request(http.MethodGet, "http://example.com/v1/transactions/recent?count=many", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsGet() {
	r := suite.request(http.MethodGet, "http://example.com/v1/transactions/2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Groceries", response.Data.Title)
	suite.Assert().Equal("18:30", response.Data.Time)

	r = suite.request(http.MethodGet, "http://example.com/v1/transactions/99", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	r := suite.request(http.MethodPost, "http://example.com/v1/transactions", map[string]any{
		"title":    "Coffee",
		"category": "Coffee & Snacks",
		"amount":   "-4.5",
		"date":     "2024-03-14",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().NotEmpty(response.Data.ID)
	suite.Assert().Equal(transaction.TypeExpense, response.Data.Type)
	suite.Assert().True(decimal.NewFromFloat(4.5).Equal(response.Data.Amount))
	suite.Assert().Equal("00:00", response.Data.Time)

	record := suite.api.Record(response.Data.ID)
	suite.Require().NotNil(record)
	suite.Assert().Equal("Coffee", record["description"])
	suite.Assert().Equal("Coffee & Snacks", record["category"])
	suite.Assert().Equal("Coffee & Snacks", record["cateogry"])

	// The new transaction is part of the list
	r = suite.request(http.MethodGet, "http://example.com/v1/transactions/"+response.Data.ID, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestTransactionsCreateDefaults() {
	r := suite.request(http.MethodPost, "http://example.com/v1/transactions", map[string]any{
		"title":  "Bonus",
		"amount": 250,
		"date":   "2024-03-10",
		"time":   "09:15",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(transaction.TypeIncome, response.Data.Type)
	suite.Assert().Equal("Other", response.Data.Category)
	suite.Assert().Equal("09:15", response.Data.Time)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Broken JSON", `{"title": "Coffee"`},
		{"Missing title", map[string]any{"amount": 5, "date": "2024-03-14"}},
		{"Missing date", map[string]any{"title": "Coffee", "amount": 5}},
		{"Invalid date", map[string]any{"title": "Coffee", "amount": 5, "date": "14.03.2024"}},
		{"Invalid type", map[string]any{"title": "Coffee", "amount": 5, "date": "2024-03-14", "type": "transfer"}},
		{"Zero amount", map[string]any{"title": "Coffee", "amount": 0, "date": "2024-03-14"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.NotEmpty(t, test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	r := suite.request(http.MethodPut, "http://example.com/v1/transactions/2", map[string]any{
		"amount": "350",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Groceries", response.Data.Title, "unset fields are kept")
	suite.Assert().Equal(transaction.TypeExpense, response.Data.Type, "the type is kept")
	suite.Assert().True(decimal.NewFromInt(350).Equal(response.Data.Amount))

	record := suite.api.Record("2")
	suite.Require().NotNil(record)
	suite.Assert().Equal("Groceries", record["title"])
	suite.Assert().Equal("18:30", record["time"])

	r = suite.request(http.MethodGet, "http://example.com/v1/summary", "")
	var summary v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &summary)
	suite.Assert().True(decimal.NewFromInt(1600).Equal(summary.Data.TotalExpenses), summary.Data.TotalExpenses.String())
}

func (suite *TestSuiteStandard) TestTransactionsUpdateInvalid() {
	r := suite.request(http.MethodPut, "http://example.com/v1/transactions/99", map[string]any{"amount": 1})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodPut, "http://example.com/v1/transactions/2", map[string]any{"amount": 0})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodPut, "http://example.com/v1/transactions/2", map[string]any{"date": "yesterday"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	r := suite.request(http.MethodDelete, "http://example.com/v1/transactions/2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.Assert().Nil(suite.api.Record("2"))

	r = suite.request(http.MethodGet, "http://example.com/v1/transactions/2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodDelete, "http://example.com/v1/transactions/2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsAPIErrors() {
	suite.api.Fail(http.StatusInternalServerError)

	r := suite.request(http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadGateway)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "database down")

	r = suite.request(http.MethodPost, "http://example.com/v1/transactions", map[string]any{
		"title": "Coffee", "amount": -4, "date": "2024-03-14",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadGateway)
}

func (suite *TestSuiteStandard) TestTransactionsAPIUnavailable() {
	suite.api.Close()

	r := suite.request(http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadGateway)
}

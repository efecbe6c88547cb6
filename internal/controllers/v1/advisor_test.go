package v1_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/findash/backend/internal/advisor"
	v1 "github.com/findash/backend/internal/controllers/v1"
	"github.com/findash/backend/test"
	"github.com/stretchr/testify/assert"
)

type advisorFunc func(ctx context.Context, question string) (string, error)

func (f advisorFunc) Ask(ctx context.Context, question string) (string, error) {
	return f(ctx, question)
}

func (suite *TestSuiteStandard) TestAdvisorGet() {
	r := suite.request(http.MethodGet, "http://example.com/v1/advisor", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AdvisorResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(advisor.Welcome, response.Data.Welcome)
	suite.Assert().Len(response.Data.Suggestions, 6)
}

func (suite *TestSuiteStandard) TestAdvisorOptions() {
	r := suite.request(http.MethodOptions, "http://example.com/v1/advisor/messages", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestAdvisorAsk() {
	var asked string
	suite.co.Advisor = advisorFunc(func(_ context.Context, q string) (string, error) {
		asked = q
		return "Save 20% of your income.", nil
	})

	r := suite.request(http.MethodPost, "http://example.com/v1/advisor/messages", map[string]any{"message": "  How much should I save?  "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AdvisorAnswerResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("How much should I save?", response.Data.Question)
	suite.Assert().Equal("Save 20% of your income.", response.Data.Answer)
	suite.Assert().Equal("  How much should I save?  ", asked)
}

func (suite *TestSuiteStandard) TestAdvisorErrors() {
	tests := []struct {
		name    string
		advisor advisor.Advisor
		body    any
		status  int
	}{
		{"Not configured", nil, map[string]any{"message": "Hello"}, http.StatusServiceUnavailable},
		{"Blank question", nil, map[string]any{"message": "   "}, http.StatusBadRequest},
		{"Missing message", nil, map[string]any{}, http.StatusBadRequest},
		{"Empty body", nil, "", http.StatusBadRequest},
		{"Provider failure", advisorFunc(func(context.Context, string) (string, error) {
			return "", errors.New("quota exceeded")
		}), map[string]any{"message": "Hello"}, http.StatusBadGateway},
		{"No answer", advisorFunc(func(context.Context, string) (string, error) {
			return "", advisor.ErrNoAnswer
		}), map[string]any{"message": "Hello"}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			co := suite.co
			co.Advisor = tt.advisor

			r := test.Request(co, t, http.MethodPost, "http://example.com/v1/advisor/messages", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.NotEmpty(t, test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

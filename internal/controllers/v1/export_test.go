package v1_test

import (
	"bytes"
	"net/http"

	"github.com/findash/backend/test"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestExportPDF() {
	r := suite.request(http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal("application/pdf", r.Header().Get("Content-Type"))
	suite.Assert().Equal(`attachment; filename="Financial_Report_2024-03-15.pdf"`, r.Header().Get("Content-Disposition"))
	suite.Assert().True(bytes.HasPrefix(r.Body.Bytes(), []byte("%PDF-")))
}

func (suite *TestSuiteStandard) TestExportXLSX() {
	r := suite.request(http.MethodGet, "http://example.com/v1/export?format=xlsx", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal(`attachment; filename="Financial_Report_2024-03-15.xlsx"`, r.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	suite.Require().Nil(err)
	defer f.Close()

	suite.Assert().Equal([]string{"Transactions", "Top Categories"}, f.GetSheetList())
}

func (suite *TestSuiteStandard) TestExportInvalidFormat() {
	r := suite.request(http.MethodGet, "http://example.com/v1/export?format=csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "csv")
}

func (suite *TestSuiteStandard) TestExportAPIError() {
	suite.api.Fail(http.StatusInternalServerError)

	r := suite.request(http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadGateway)
}

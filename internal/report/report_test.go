package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/findash/backend/internal/aggregate"
	"github.com/findash/backend/internal/dashboard"
	"github.com/findash/backend/internal/report"
	"github.com/findash/backend/internal/transaction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func snapshot() dashboard.Snapshot {
	transactions := []transaction.Transaction{
		{ID: "1", Title: "Salary", Category: "Income", Amount: decimal.NewFromInt(5000), Date: "2024-03-01", Time: "09:00", Type: transaction.TypeIncome},
		{ID: "2", Title: "Rent", Category: "Housing", Amount: decimal.NewFromInt(1500), Date: "2024-03-02", Time: "00:00", Type: transaction.TypeExpense},
		{ID: "3", Title: "", Category: "Food", Amount: decimal.NewFromInt(500), Date: "2024-03-05", Time: "12:30", Type: transaction.TypeExpense},
	}

	return dashboard.Snapshot{
		GeneratedAt:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Transactions: transactions,
		Summary:      aggregate.Aggregate(transactions),
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 3, 7, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "Financial_Report_2024-03-07.pdf", report.FileName(now, report.FormatPDF))
	assert.Equal(t, "Financial_Report_2024-03-07.xlsx", report.FileName(now, report.FormatXLSX))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want report.Format
		ok   bool
	}{
		{"", report.FormatPDF, true},
		{"pdf", report.FormatPDF, true},
		{"xlsx", report.FormatXLSX, true},
		{"csv", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := report.ParseFormat(tt.in)
			if !tt.ok {
				assert.NotNil(t, err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", report.FormatPDF.ContentType())
	assert.Contains(t, report.FormatXLSX.ContentType(), "spreadsheetml")
}

func TestPDF(t *testing.T) {
	b, err := report.PDF(snapshot())
	require.Nil(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")), "output must be a PDF document")
}

func TestPDFEmpty(t *testing.T) {
	b, err := report.PDF(dashboard.Snapshot{Summary: aggregate.Aggregate(nil)})
	require.Nil(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}

func TestXLSX(t *testing.T) {
	b, err := report.Render(report.FormatXLSX, snapshot())
	require.Nil(t, err)
	require.True(t, bytes.HasPrefix(b, []byte("PK")), "output must be a zip archive")

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.Nil(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Transactions", "Top Categories"}, f.GetSheetList())

	title, err := f.GetCellValue("Transactions", "A1")
	require.Nil(t, err)
	assert.Equal(t, report.Title, title)

	// Most recent transaction first, missing titles shown as N/A
	first, err := f.GetCellValue("Transactions", "A10")
	require.Nil(t, err)
	assert.Equal(t, "N/A", first)

	category, err := f.GetCellValue("Top Categories", "A2")
	require.Nil(t, err)
	assert.Equal(t, "Housing", category)

	share, err := f.GetCellValue("Top Categories", "C2")
	require.Nil(t, err)
	assert.Equal(t, "75", share)
}

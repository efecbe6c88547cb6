// Package report renders dashboard snapshots as downloadable documents.
package report

import (
	"fmt"
	"time"

	"github.com/findash/backend/internal/aggregate"
	"github.com/findash/backend/internal/dashboard"
	"github.com/findash/backend/internal/transaction"
	"github.com/shopspring/decimal"
)

const (
	Title  = "Financial Dashboard Report"
	Footer = "Generated by Financial Dashboard"

	// TopCount is the number of categories listed in a report.
	TopCount = 5

	dateLayout = "02 Jan 2006"
)

// Format is a document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// ParseFormat parses a format name. The empty string is a PDF.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported export format '%s', must be one of pdf, xlsx", s)
}

// FileName returns the download name of a report generated at now.
func FileName(now time.Time, format Format) string {
	return fmt.Sprintf("Financial_Report_%s.%s", now.Format(time.DateOnly), format)
}

// Render renders the snapshot in the format.
func Render(format Format, snapshot dashboard.Snapshot) ([]byte, error) {
	r := build(snapshot)
	if format == FormatXLSX {
		return r.xlsx()
	}
	return r.pdf()
}

// PDF renders the snapshot as a PDF document.
func PDF(snapshot dashboard.Snapshot) ([]byte, error) {
	return build(snapshot).pdf()
}

// XLSX renders the snapshot as a spreadsheet.
func XLSX(snapshot dashboard.Snapshot) ([]byte, error) {
	return build(snapshot).xlsx()
}

type categoryShare struct {
	aggregate.CategoryTotal
	Percentage decimal.Decimal
}

// report is the content shared by all formats.
type report struct {
	generatedAt  time.Time
	summary      aggregate.Summary
	transactions []transaction.Transaction
	top          []categoryShare
}

func build(snapshot dashboard.Snapshot) report {
	generatedAt := snapshot.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	top := snapshot.Summary.TopCategories(TopCount)
	shares := make([]categoryShare, len(top))
	for i, c := range top {
		shares[i] = categoryShare{
			CategoryTotal: c,
			Percentage:    snapshot.Summary.CategoryPercentage(c.Category),
		}
	}

	return report{
		generatedAt:  generatedAt,
		summary:      snapshot.Summary,
		transactions: transaction.Recent(snapshot.Transactions, -1),
		top:          shares,
	}
}

// displayDate formats a transaction date for humans. Dates that do not parse
// are shown as they are.
func displayDate(date string) string {
	t, err := time.Parse(transaction.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(dateLayout)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

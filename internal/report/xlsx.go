package report

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	sheetTransactions = "Transactions"
	sheetCategories   = "Top Categories"
)

// xlsx writes the summary and the transactions to the first sheet and the
// top categories to the second.
func (r report) xlsx() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetTransactions); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#22C55E"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return nil, err
	}

	w := sheetWriter{f: f, sheet: sheetTransactions}
	w.row(1, Title)
	w.row(2, "Generated on", r.generatedAt.Format(dateLayout))
	w.row(3, "Total Transactions", len(r.transactions))
	w.row(5, "Total Income", r.summary.TotalIncome.InexactFloat64())
	w.row(6, "Total Expenses", r.summary.TotalExpenses.InexactFloat64())
	w.row(7, "Net Balance", r.summary.NetBalance.InexactFloat64())
	w.row(9, "Title", "Amount", "Category", "Type", "Date")
	for i, t := range r.transactions {
		w.row(10+i, orNA(t.Title), t.Amount.InexactFloat64(), orNA(t.Category), strings.ToUpper(string(t.Type)), displayDate(t.Date))
	}
	w.style("A1", "A1", titleStyle)
	w.style("A9", "E9", headerStyle)
	w.width("A", "A", 32)
	w.width("B", "E", 16)
	if w.err != nil {
		return nil, w.err
	}

	if _, err := f.NewSheet(sheetCategories); err != nil {
		return nil, err
	}

	w = sheetWriter{f: f, sheet: sheetCategories}
	w.row(1, "Category", "Amount", "% of Total")
	for i, c := range r.top {
		w.row(2+i, c.Category, c.Amount.InexactFloat64(), c.Percentage.InexactFloat64())
	}
	w.style("A1", "C1", headerStyle)
	w.width("A", "A", 24)
	w.width("B", "C", 16)
	if w.err != nil {
		return nil, w.err
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sheetWriter writes to one sheet and keeps the first error.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) row(number int, values ...any) {
	for i, v := range values {
		if w.err != nil {
			return
		}

		cell, err := excelize.CoordinatesToCellName(i+1, number)
		if err != nil {
			w.err = err
			return
		}
		w.err = w.f.SetCellValue(w.sheet, cell, v)
	}
}

func (w *sheetWriter) style(from, to string, style int) {
	if w.err == nil {
		w.err = w.f.SetCellStyle(w.sheet, from, to, style)
	}
}

func (w *sheetWriter) width(from, to string, width float64) {
	if w.err == nil {
		w.err = w.f.SetColWidth(w.sheet, from, to, width)
	}
}

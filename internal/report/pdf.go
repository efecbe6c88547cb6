package report

import (
	"fmt"
	"strings"

	"github.com/findash/backend/internal/money"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	green = &props.Color{Red: 34, Green: 197, Blue: 94}
	red   = &props.Color{Red: 239, Green: 68, Blue: 68}
	blue  = &props.Color{Red: 59, Green: 130, Blue: 246}
	dark  = &props.Color{Red: 40, Green: 40, Blue: 40}
	grey  = &props.Color{Red: 100, Green: 100, Blue: 100}
	white = &props.Color{Red: 255, Green: 255, Blue: 255}
	light = &props.Color{Red: 245, Green: 245, Blue: 245}
)

func (r report) pdf() ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(14).
		WithTopMargin(15).
		WithRightMargin(14).
		WithBottomMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    8,
			Color:   grey,
		}).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(
		row.New(4).Add(col.New(12).Add(line.New())),
		row.New(6).Add(text.NewCol(12, Footer, props.Text{Size: 9, Color: grey})),
	); err != nil {
		return nil, err
	}

	m.AddRow(12, text.NewCol(12, Title, props.Text{Size: 20, Style: fontstyle.Bold, Color: dark}))
	m.AddRow(7, text.NewCol(12, "Generated on: "+r.generatedAt.Format(dateLayout), props.Text{Size: 11, Color: grey}))
	m.AddRow(7, text.NewCol(12, fmt.Sprintf("Total Transactions: %d", len(r.transactions)), props.Text{Size: 11, Color: grey}))

	m.AddRow(12, text.NewCol(12, "Financial Summary:", props.Text{Top: 4, Size: 14, Style: fontstyle.Bold, Color: dark}))
	netColor := green
	if r.summary.NetBalance.IsNegative() {
		netColor = red
	}
	m.AddRow(7, text.NewCol(12, "Total Income: "+money.Format(r.summary.TotalIncome), props.Text{Size: 11, Color: green}))
	m.AddRow(7, text.NewCol(12, "Total Expenses: "+money.Format(r.summary.TotalExpenses), props.Text{Size: 11, Color: red}))
	m.AddRow(7, text.NewCol(12, "Net Balance: "+money.Format(r.summary.NetBalance), props.Text{Size: 11, Color: netColor}))
	m.AddRow(5)

	sizes := []int{4, 2, 2, 2, 2}
	m.AddRows(headerRow(green, sizes, "Title", "Amount", "Category", "Type", "Date"))
	for i, t := range r.transactions {
		typeColor := red
		if t.IsIncome() {
			typeColor = green
		}

		m.AddRows(bodyRow(i, sizes,
			cell{value: orNA(t.Title)},
			cell{value: money.Format(t.Amount), align: align.Right},
			cell{value: orNA(t.Category)},
			cell{value: strings.ToUpper(string(t.Type)), color: typeColor},
			cell{value: displayDate(t.Date)},
		))
	}

	if len(r.top) > 0 {
		m.AddRow(14, text.NewCol(12, "Top Spending Categories:", props.Text{Top: 6, Size: 14, Style: fontstyle.Bold, Color: dark}))

		sizes := []int{6, 3, 3}
		m.AddRows(headerRow(blue, sizes, "Category", "Amount", "% of Total"))
		for i, c := range r.top {
			m.AddRows(bodyRow(i, sizes,
				cell{value: c.Category},
				cell{value: money.Format(c.Amount), align: align.Right},
				cell{value: money.Percent(c.Percentage), align: align.Right},
			))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return doc.GetBytes(), nil
}

type cell struct {
	value string
	align align.Type
	color *props.Color
}

func headerRow(background *props.Color, sizes []int, titles ...string) core.Row {
	cols := make([]core.Col, len(titles))
	for i, title := range titles {
		cols[i] = text.NewCol(sizes[i], title, props.Text{
			Top:   1.5,
			Left:  1,
			Size:  10,
			Style: fontstyle.Bold,
			Color: white,
		})
	}

	return row.New(7).Add(cols...).WithStyle(&props.Cell{BackgroundColor: background})
}

// bodyRow is a table row, every other row is shaded.
func bodyRow(index int, sizes []int, cells ...cell) core.Row {
	cols := make([]core.Col, len(cells))
	for i, c := range cells {
		color := c.color
		if color == nil {
			color = dark
		}
		a := c.align
		if a == "" {
			a = align.Left
		}

		cols[i] = text.NewCol(sizes[i], c.value, props.Text{
			Top:   1.5,
			Left:  1,
			Right: 1,
			Size:  9,
			Align: a,
			Color: color,
		})
	}

	r := row.New(6).Add(cols...)
	if index%2 == 1 {
		r = r.WithStyle(&props.Cell{BackgroundColor: light})
	}
	return r
}

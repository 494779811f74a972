package tui

import (
	"fmt"
	"strings"

	"customer-dashboard/internal/models"
	"customer-dashboard/internal/viewmodel"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
	"github.com/shopspring/decimal"
)

const (
	barRune         = '█'
	negativeBarRune = '░'
)

var tableHeader = []string{"Customer Name", "Transaction Date", "Transaction Amount"}

// TableRow is one transaction line of the terminal table. Name is set only on
// the first row of each customer group.
type TableRow struct {
	CustomerID models.ID
	Name       string
	Date       string
	Amount     string
}

// TableRows flattens the dashboard groups into one row per transaction
func TableRows(view viewmodel.Dashboard) []TableRow {
	rows := make([]TableRow, 0, view.RowCount())
	for _, group := range view.Groups {
		for i, tx := range group.Transactions {
			row := TableRow{
				CustomerID: group.Customer.ID,
				Date:       tx.Date,
				Amount:     tx.AmountText(),
			}
			if i == 0 {
				row.Name = group.Customer.Name
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// RenderBarChart draws the series as horizontal text bars no wider than width.
// The result uses tview color tags; label and dates are escaped.
func RenderBarChart(series models.ChartSeries, width int) string {
	if series.IsEmpty() {
		return ""
	}

	n := min(len(series.Dates), len(series.Amounts))
	dateWidth, amountWidth := 0, 0
	peak := decimal.Zero
	for i := 0; i < n; i++ {
		dateWidth = max(dateWidth, runewidth.StringWidth(series.Dates[i]))
		amountWidth = max(amountWidth, len(series.Amounts[i].String()))
		if abs := series.Amounts[i].Abs(); abs.GreaterThan(peak) {
			peak = abs
		}
	}

	barWidth := max(width-dateWidth-amountWidth-4, 1)

	var b strings.Builder
	fmt.Fprintf(&b, "[::b]Transactions for %s[::-]\n\n", tview.Escape(series.Label))
	for i := 0; i < n; i++ {
		amount := series.Amounts[i]

		length := 0
		if peak.IsPositive() {
			length = int(amount.Abs().Div(peak).Mul(decimal.NewFromInt(int64(barWidth))).Round(0).IntPart())
		}
		if length == 0 && !amount.IsZero() {
			length = 1
		}

		r := barRune
		if amount.IsNegative() {
			r = negativeBarRune
		}

		date := series.Dates[i]
		fmt.Fprintf(&b, "%s%s │%s %*s\n",
			tview.Escape(date), strings.Repeat(" ", dateWidth-runewidth.StringWidth(date)),
			strings.Repeat(string(r), length)+strings.Repeat(" ", barWidth-length),
			amountWidth, amount.String(),
		)
	}
	fmt.Fprintf(&b, "\n%s ↓  %s →", viewmodel.ChartXAxisLabel, viewmodel.ChartYAxisLabel)
	return b.String()
}

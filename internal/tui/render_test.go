package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"customer-dashboard/internal/models"
	"customer-dashboard/internal/viewmodel"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rivo/tview"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRows_NameOnFirstRowOfGroup(t *testing.T) {
	view := viewmodel.Dashboard{
		Groups: []viewmodel.RowGroup{
			{
				Customer: models.Customer{ID: "1", Name: "Alice"},
				Transactions: []models.Transaction{
					{ID: "10", CustomerID: "1", Date: "2023-01-01", Amount: decimal.NewFromInt(50)},
					{ID: "11", CustomerID: "1", Date: "2023-01-02", Amount: decimal.RequireFromString("15.50")},
				},
			},
			{
				Customer:     models.Customer{ID: "2", Name: "Bob"},
				Transactions: []models.Transaction{{ID: "12", CustomerID: "2", Date: "2023-01-03", Amount: decimal.NewFromInt(7)}},
			},
		},
	}

	rows := TableRows(view)

	require.Len(t, rows, 3)
	assert.Equal(t, TableRow{CustomerID: "1", Name: "Alice", Date: "2023-01-01", Amount: "50"}, rows[0])
	assert.Equal(t, TableRow{CustomerID: "1", Date: "2023-01-02", Amount: "15.5"}, rows[1])
	assert.Equal(t, "Bob", rows[2].Name)
	assert.Equal(t, models.ID("2"), rows[2].CustomerID)
}

func TestTableRows_Empty(t *testing.T) {
	assert.Empty(t, TableRows(viewmodel.Dashboard{}))
}

func TestRenderBarChart(t *testing.T) {
	series := models.ChartSeries{
		Label:   "Alice",
		Dates:   []string{"2023-01-01", "2023-01-02", "2023-01-03"},
		Amounts: []decimal.Decimal{decimal.NewFromInt(100), decimal.NewFromInt(50), decimal.NewFromInt(-25)},
	}

	out := RenderBarChart(series, 40)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, lines[0], "Transactions for Alice")

	full := strings.Count(lines[2], string(barRune))
	half := strings.Count(lines[3], string(barRune))
	negative := strings.Count(lines[4], string(negativeBarRune))

	assert.Greater(t, full, 0)
	assert.InDelta(t, float64(full)/2, float64(half), 1)
	assert.InDelta(t, float64(full)/4, float64(negative), 1)
	assert.True(t, strings.HasSuffix(lines[4], "-25"))
	assert.Contains(t, out, "Transaction Date")
	assert.Contains(t, out, "Transaction Amount")
}

func TestRenderBarChart_EmptySeries(t *testing.T) {
	assert.Empty(t, RenderBarChart(models.ChartSeries{Label: "Nobody"}, 40))
}

func TestRenderBarChart_AllZero(t *testing.T) {
	series := models.ChartSeries{
		Label:   "Zed",
		Dates:   []string{"2023-01-01"},
		Amounts: []decimal.Decimal{decimal.Zero},
	}

	out := RenderBarChart(series, 30)

	assert.NotContains(t, out, string(barRune))
	assert.Contains(t, out, "2023-01-01")
}

func TestRenderBarChart_LinesFitWidth(t *testing.T) {
	const width = 60

	for run := 0; run < 20; run++ {
		n := gofakeit.Number(1, 12)
		series := models.ChartSeries{Label: gofakeit.Name()}
		for i := 0; i < n; i++ {
			series.Dates = append(series.Dates, gofakeit.Date().Format("2006-01-02"))
			series.Amounts = append(series.Amounts, decimal.NewFromFloat(gofakeit.Float64Range(-5000, 5000)).Round(2))
		}

		lines := strings.Split(RenderBarChart(series, width), "\n")

		require.Len(t, lines, n+4)
		for _, line := range lines[2 : 2+n] {
			assert.LessOrEqual(t, utf8.RuneCountInString(line), width, line)
		}
	}
}

func TestRenderBarChart_EscapesTagsAndPadsByDisplayWidth(t *testing.T) {
	series := models.ChartSeries{
		Label:   "[red]Mallory",
		Dates:   []string{"[blue]", "二〇二三年"},
		Amounts: []decimal.Decimal{decimal.NewFromInt(10), decimal.NewFromInt(20)},
	}

	lines := strings.Split(RenderBarChart(series, 40), "\n")

	assert.Contains(t, lines[0], tview.Escape("[red]Mallory"))
	assert.True(t, strings.HasPrefix(lines[2], tview.Escape("[blue]")))

	// "[blue]" is 6 cells wide and the CJK date is 10, so the first date gets 4 pad cells
	assert.True(t, strings.HasPrefix(lines[2], tview.Escape("[blue]")+"     │"))
	assert.True(t, strings.HasPrefix(lines[3], "二〇二三年 │"))
}

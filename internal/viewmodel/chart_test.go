package viewmodel

import (
	"testing"

	"customer-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func series(amounts ...int64) models.ChartSeries {
	s := models.ChartSeries{Label: "Alice"}
	for i, a := range amounts {
		s.Dates = append(s.Dates, "2024-01-0"+string(rune('1'+i)))
		s.Amounts = append(s.Amounts, decimal.NewFromInt(a))
	}
	return s
}

func TestLayoutBars_PositiveAmounts(t *testing.T) {
	layout := LayoutBars(series(100, 50), 400, 300)

	require.Len(t, layout.Bars, 2)
	assert.Equal(t, "Alice", layout.Title)
	assert.Equal(t, ChartXAxisLabel, layout.XLabel)
	assert.Equal(t, ChartYAxisLabel, layout.YLabel)

	tallest, half := layout.Bars[0], layout.Bars[1]
	assert.InDelta(t, layout.PlotHeight, tallest.Height, 1e-9)
	assert.InDelta(t, layout.PlotHeight/2, half.Height, 1e-9)
	assert.InDelta(t, layout.PlotBottom(), layout.BaselineY, 1e-9)
	assert.Less(t, tallest.X, half.X)
	assert.Equal(t, "2024-01-01", tallest.Date)
	assert.Equal(t, "100", tallest.Amount)

	for _, bar := range layout.Bars {
		assert.GreaterOrEqual(t, bar.X, layout.PlotLeft)
		assert.LessOrEqual(t, bar.X+bar.Width, layout.PlotRight())
	}
}

func TestLayoutBars_NegativeAmountBelowBaseline(t *testing.T) {
	layout := LayoutBars(series(100, -100), 400, 300)

	require.Len(t, layout.Bars, 2)
	assert.InDelta(t, layout.PlotTop+layout.PlotHeight/2, layout.BaselineY, 1e-9)
	assert.InDelta(t, layout.BaselineY, layout.Bars[1].Y, 1e-9)
	assert.InDelta(t, layout.Bars[0].Height, layout.Bars[1].Height, 1e-9)
}

func TestLayoutBars_Ticks(t *testing.T) {
	layout := LayoutBars(series(100), 400, 300)

	require.Len(t, layout.Ticks, chartTickCount)
	assert.Equal(t, "0", layout.Ticks[0].Label)
	assert.Equal(t, "100", layout.Ticks[len(layout.Ticks)-1].Label)
	assert.InDelta(t, layout.PlotTop, layout.Ticks[len(layout.Ticks)-1].Y, 1e-9)
}

func TestLayoutBars_AllZero(t *testing.T) {
	layout := LayoutBars(series(0, 0), 400, 300)

	require.Len(t, layout.Bars, 2)
	for _, bar := range layout.Bars {
		assert.Zero(t, bar.Height)
	}
}

func TestLayoutBars_EmptySeries(t *testing.T) {
	layout := LayoutBars(models.ChartSeries{}, 400, 300)

	assert.Empty(t, layout.Bars)
	assert.Empty(t, layout.Ticks)
}

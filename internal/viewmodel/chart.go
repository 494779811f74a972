package viewmodel

import (
	"customer-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

const (
	ChartXAxisLabel = "Transaction Date"
	ChartYAxisLabel = "Transaction Amount"

	chartMarginLeft   = 70.0
	chartMarginRight  = 20.0
	chartMarginTop    = 20.0
	chartMarginBottom = 60.0
	chartBandPadding  = 0.15
	chartTickCount    = 5
)

// Bar is one rectangle of the bar chart in SVG user units
type Bar struct {
	X, Y, Width, Height float64
	Date                string
	Amount              string
}

// Tick is a labelled horizontal grid line on the amount axis
type Tick struct {
	Y     float64
	Label string
}

// ChartLayout is the geometry of a bar chart: a band scale over dates and a
// linear scale over amounts that always includes zero.
type ChartLayout struct {
	Width, Height float64
	PlotLeft      float64
	PlotTop       float64
	PlotWidth     float64
	PlotHeight    float64
	BaselineY     float64
	Title         string
	XLabel        string
	YLabel        string
	Bars          []Bar
	Ticks         []Tick
}

// PlotBottom is the y coordinate of the bottom edge of the plot area
func (l ChartLayout) PlotBottom() float64 {
	return l.PlotTop + l.PlotHeight
}

// PlotRight is the x coordinate of the right edge of the plot area
func (l ChartLayout) PlotRight() float64 {
	return l.PlotLeft + l.PlotWidth
}

// LayoutBars computes bar geometry for series inside a width x height canvas.
// Negative amounts hang below the zero baseline.
func LayoutBars(series models.ChartSeries, width, height float64) ChartLayout {
	layout := ChartLayout{
		Width:      width,
		Height:     height,
		PlotLeft:   chartMarginLeft,
		PlotTop:    chartMarginTop,
		PlotWidth:  max(width-chartMarginLeft-chartMarginRight, 0),
		PlotHeight: max(height-chartMarginTop-chartMarginBottom, 0),
		Title:      series.Label,
		XLabel:     ChartXAxisLabel,
		YLabel:     ChartYAxisLabel,
		Bars:       make([]Bar, 0, series.Len()),
	}

	n := min(len(series.Dates), len(series.Amounts))
	if n == 0 {
		layout.BaselineY = layout.PlotBottom()
		return layout
	}

	lo, hi := 0.0, 0.0
	for _, amount := range series.Amounts[:n] {
		v := amount.InexactFloat64()
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}

	scale := func(v float64) float64 {
		return layout.PlotTop + (hi-v)/(hi-lo)*layout.PlotHeight
	}
	layout.BaselineY = scale(0)

	step := layout.PlotWidth / float64(n)
	for i := 0; i < n; i++ {
		v := series.Amounts[i].InexactFloat64()
		top := scale(max(v, 0))
		bottom := scale(min(v, 0))
		layout.Bars = append(layout.Bars, Bar{
			X:      layout.PlotLeft + float64(i)*step + step*chartBandPadding,
			Y:      top,
			Width:  step * (1 - 2*chartBandPadding),
			Height: bottom - top,
			Date:   series.Dates[i],
			Amount: series.Amounts[i].String(),
		})
	}

	for i := 0; i < chartTickCount; i++ {
		v := lo + (hi-lo)*float64(i)/float64(chartTickCount-1)
		layout.Ticks = append(layout.Ticks, Tick{
			Y:     scale(v),
			Label: decimal.NewFromFloat(v).Round(2).String(),
		})
	}

	return layout
}

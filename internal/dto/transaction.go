package dto

import (
	"customer-dashboard/internal/models"
)

// ChartSeriesResponse is a customer's bar chart series with its axis labels
type ChartSeriesResponse struct {
	models.ChartSeries
	XAxisLabel string `json:"x_axis_label"`
	YAxisLabel string `json:"y_axis_label"`
}

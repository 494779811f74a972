package handlers

import (
	"fmt"
	"strings"

	"customer-dashboard/internal/models"

	"github.com/labstack/echo/v4"
)

// ErrInvalidCustomerID is returned for an empty or oversized customer path parameter
var ErrInvalidCustomerID = fmt.Errorf("invalid customer id")

const maxCustomerIDLength = 128

// getCustomerIDParam reads the :id path parameter as a customer identifier
func getCustomerIDParam(c echo.Context) (models.ID, error) {
	raw := strings.TrimSpace(c.Param("id"))
	if raw == "" || len(raw) > maxCustomerIDLength {
		return "", ErrInvalidCustomerID
	}
	return models.ParseID(raw), nil
}

package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "customer-dashboard/internal/errors"
	"customer-dashboard/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for error handler middleware
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error) (*httptest.ResponseRecorder, apperrors.ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	CustomHTTPErrorHandler(err, c)

	var response apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return rec, response
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_UnknownRoute() {
	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_007")
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_BindError() {
	rec, response := s.handle(echo.NewHTTPError(http.StatusBadRequest, "invalid query parameter"))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{"invalid query parameter"}, response.Error.Details)
	s.Equal("test-trace-id", response.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_ValidationErrors() {
	type query struct {
		Name string `validate:"max=3"`
	}
	err := validator.New().Struct(query{Name: "abcdef"})
	s.Require().Error(err)

	rec, response := s.handle(fmt.Errorf("bind dashboard query: %w", err))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Contains(response.Error.Details, "Name: must be at most 3 characters long")
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_FilterTextError() {
	type query struct {
		Amount string `query:"amount" validate:"filter_text"`
	}
	err := validation.NewValidator().Struct(query{Amount: "\xff"})
	s.Require().Error(err)

	rec, response := s.handle(err)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal([]string{"amount: must be valid UTF-8 text"}, response.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_GenericError() {
	rec, response := s.handle(errors.New("generic error"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(rec.Body.String(), "generic error")
	s.Contains(rec.Header().Get("Content-Type"), "application/json")
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_NoTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	CustomHTTPErrorHandler(errors.New("test error"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "unknown")
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_CommittedResponse() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	CustomHTTPErrorHandler(errors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode_AllStatuses() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusNotFound, "SYSTEM_007"},
		{http.StatusMethodNotAllowed, "VALIDATION_001"},
		{http.StatusTooManyRequests, "SYSTEM_006"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusBadGateway, "DATASOURCE_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{http.StatusUnauthorized, "SYSTEM_005"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			rec, response := s.handle(echo.NewHTTPError(tc.status))

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.expectedCode, response.Error.Code)
		})
	}
}

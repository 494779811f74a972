package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(CustomerNotFound, s.traceID)

	s.NotNil(response)
	s.Equal("CUSTOMER_001", response.Error.Code)
	s.Equal("Customer not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(
		ValidationGeneral,
		s.traceID,
		WithDetails("name: must be at most 256 characters long"),
		WithMessage("Invalid filter"),
	)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Invalid filter", response.Error.Message)
	s.Equal([]string{"name: must be at most 256 characters long"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWithDetails_LastInvocationWins() {
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails("a", "b"), WithDetails("c"))
	s.Equal([]string{"c"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_WithFieldErrors() {
	response := NewValidationError(map[string]string{"amount": "must be at most 256 characters long"}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{"amount: must be at most 256 characters long"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationErrorFromList() {
	response := NewValidationErrorFromList([]string{"x", "y"}, s.traceID)
	s.Equal([]string{"x", "y"}, response.Error.Details)
	s.Equal(s.traceID, response.Error.TraceID)
}

func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	internalErr := errors.New("dial tcp 127.0.0.1:3000: connect: connection refused")

	response, originalErr := WrapSystemError(internalErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "127.0.0.1")
	s.Empty(response.Error.Details)
	s.Equal(internalErr, originalErr)
}

func (s *ResponseTestSuite) TestNewFetchFailureError() {
	response := NewFetchFailureError([]string{"customers", "transactions"}, s.traceID)

	s.Equal("DATASOURCE_001", response.Error.Code)
	s.Equal([]string{"customers: fetch failed", "transactions: fetch failed"}, response.Error.Details)
	s.Equal(http.StatusBadGateway, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestJSON_EmptyDetailsOmitted() {
	response := &ErrorResponse{Error: ErrorDetail{Code: "SYSTEM_001", Message: "m", TraceID: s.traceID}}

	jsonBytes, err := json.Marshal(response)
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(jsonBytes, &decoded))
	_, hasDetails := decoded["error"]["details"]
	s.False(hasDetails, "Empty details should be omitted from JSON")
	s.Equal(s.traceID, decoded["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		code           ErrorCode
		expectedStatus int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{CustomerInvalidID, http.StatusBadRequest},
		{CustomerNotFound, http.StatusNotFound},
		{SystemRouteNotFound, http.StatusNotFound},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{DataSourceFetchFailed, http.StatusBadGateway},
		{DataSourceNotLoaded, http.StatusServiceUnavailable},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemUnexpectedError, http.StatusInternalServerError},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expectedStatus, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestNewValidationError_DetailsSortedByField() {
	response := NewValidationError(map[string]string{
		"name":     "must be valid UTF-8 text",
		"amount":   "must be at most 256 characters long",
		"customer": "must be at most 128 characters long",
	}, s.traceID)

	s.Equal([]string{
		"amount: must be at most 256 characters long",
		"customer: must be at most 128 characters long",
		"name: must be valid UTF-8 text",
	}, response.Error.Details)
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"customer-dashboard/internal/config"
	"customer-dashboard/internal/dto"
	"customer-dashboard/internal/models"
	"customer-dashboard/internal/validation"
)

// ErrFetchFailed covers every way a collection fetch can fail: transport
// errors, non-2xx responses, malformed JSON and records of the wrong shape.
var ErrFetchFailed = errors.New("data source fetch failed")

type AuthTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	return t.base.RoundTrip(req)
}

// DataSourceClient reads the customer and transaction collections over HTTP
type DataSourceClient struct {
	config   *config.DataSourceConfig
	client   *http.Client
	validate *validation.Validator
	logger   *slog.Logger
}

// NewDataSourceClient creates a new data source client
func NewDataSourceClient(
	cfg *config.DataSourceConfig,
	logger *slog.Logger,
) DataSourceInterface {

	transport := &AuthTransport{
		apiKey: cfg.APIKey,
		base:   http.DefaultTransport,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	return &DataSourceClient{
		config:   cfg,
		client:   client,
		validate: validation.GetValidator(),
		logger:   logger,
	}
}

// FetchCustomers fetches GET {base}/customers
func (s *DataSourceClient) FetchCustomers(ctx context.Context) ([]models.Customer, error) {
	return fetchCollection(ctx, s, models.ResourceCustomers, s.config.CustomersPath, dto.CustomerRecord.ToModel)
}

// FetchTransactions fetches GET {base}/transactions
func (s *DataSourceClient) FetchTransactions(ctx context.Context) ([]models.Transaction, error) {
	return fetchCollection(ctx, s, models.ResourceTransactions, s.config.TransactionsPath, dto.TransactionRecord.ToModel)
}

func fetchCollection[R any, M any](
	ctx context.Context,
	s *DataSourceClient,
	resource models.Resource,
	path string,
	convert func(R) M,
) ([]M, error) {

	req, err := s.buildRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, resource, err)
	}

	resp, body, err := s.do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, resource, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf(
			"%w: %s: unexpected status %d: %s",
			ErrFetchFailed,
			resource,
			resp.StatusCode,
			truncate(string(body), 200),
		)
	}

	var records []R
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: decode response: %w", ErrFetchFailed, resource, err)
	}

	items := make([]M, 0, len(records))
	for i, record := range records {
		if err := s.validate.Struct(record); err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %w", ErrFetchFailed, resource, i, err)
		}
		items = append(items, convert(record))
	}

	s.logger.Debug(
		"data source collection decoded",
		"resource", string(resource),
		"count", len(items),
	)

	return items, nil
}

func (s *DataSourceClient) buildRequest(
	ctx context.Context,
	method, path string,
) (*http.Request, error) {

	req, err := http.NewRequestWithContext(
		ctx,
		method,
		s.config.BaseURL+path,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (s *DataSourceClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error(
			"data source request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

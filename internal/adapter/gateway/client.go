package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// TooManyRequestsError represents rate limiting signal from the payment gateway.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// HTTPVerifier implements Verifier via the gateway transaction API.
type HTTPVerifier struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *zap.Logger
}

// response mirrors JSON payload from the gateway.
type response struct {
	TransactionID string `json:"transaction_id"`
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
}

const statusSuccess = "SUCCESS"

const (
	maxResponseBody = 64 << 10
	maxErrorBody    = 4 << 10
)

// NewHTTPVerifier creates HTTP gateway client with default timeout.
func NewHTTPVerifier(baseURL string, logger *zap.Logger) (*HTTPVerifier, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("gateway url must be absolute")
	}
	return &HTTPVerifier{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Verify queries the gateway for transaction status.
func (c *HTTPVerifier) Verify(ctx context.Context, orderRef, transactionID string) (bool, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/transactions/", url.PathEscape(transactionID))
	endpoint.RawQuery = url.Values{"order": []string{orderRef}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody+1))
		if err != nil {
			return false, err
		}
		if len(body) > maxResponseBody {
			return false, fmt.Errorf("gateway response exceeds %d bytes", maxResponseBody)
		}
		var data response
		if err := json.Unmarshal(body, &data); err != nil {
			return false, err
		}
		if data.OrderID != "" && data.OrderID != orderRef {
			return false, nil
		}
		return strings.EqualFold(data.Status, statusSuccess), nil
	case http.StatusNotFound, http.StatusNoContent:
		return false, nil
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return false, TooManyRequestsError{RetryAfter: retryAfter}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("gateway request failed", zap.Int("status", resp.StatusCode), zap.String("body", string(body)))
		return false, fmt.Errorf("gateway error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}

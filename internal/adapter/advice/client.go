// Package advice implements the client for the remote health-analysis
// service.
package advice

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"healthadvisor/internal/domain"
)

// Client calls the remote analysis service over HTTP.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// Ensure interfaces are met.
var _ domain.AdviceClient = (*Client)(nil)

// NewClient creates a client bound to the service base URL. Each analyze
// call is a single attempt; there are no retries.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: c, logger: logger}
}

// analyzeRequest is the wire form of a health-data submission.
type analyzeRequest struct {
	Name    string `json:"name"`
	BP      string `json:"bp"`
	Sugar   string `json:"sugar"`
	Temp    string `json:"temp"`
	Symptom string `json:"symptom"`
}

// Analyze submits the health data to POST /analyze and returns the
// validated advice. The response is checked structurally before it is
// accepted: all four sections must be present and their recommendation
// fields must be arrays.
func (c *Client) Analyze(ctx context.Context, data domain.HealthData) (*domain.Advice, error) {
	req := analyzeRequest{
		Name:    data.Name,
		BP:      data.BloodPressure,
		Sugar:   data.BloodSugar,
		Temp:    data.Temperature,
		Symptom: data.Symptom,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/analyze")
	if err != nil {
		c.logger.Warn("analyze call failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	if resp.IsError() {
		c.logger.Warn("analyze call rejected",
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, fmt.Errorf("%w: %s", domain.ErrServerError, resp.Status())
	}

	result, err := parseAdvice(resp.Body())
	if err != nil {
		c.logger.Warn("analyze response rejected", zap.Error(err))
		return nil, err
	}
	return result, nil
}

// CheckReachable probes GET / on the service. Any transport failure or
// non-success status counts as unreachable. The probe never affects the
// analyze flow.
func (c *Client) CheckReachable(ctx context.Context) bool {
	resp, err := c.http.R().SetContext(ctx).Get("/")
	if err != nil {
		c.logger.Warn("analysis service probe failed", zap.Error(err))
		return false
	}
	return !resp.IsError()
}

package userinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/vncsmyrnk/voteservice/internal/core/ports"
	"go.uber.org/zap"
)

const (
	StatusAbleToVote   = "ABLE_TO_VOTE"
	StatusUnableToVote = "UNABLE_TO_VOTE"

	defaultRetryWaitMin = 200 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second
)

type Options struct {
	Retries      int
	Timeout      time.Duration
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Client asks the user info service whether a document may vote.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	logger  *zap.Logger
}

type statusResponse struct {
	Status string `json:"status"`
}

func NewClient(logger *zap.Logger, baseURL string, opts Options) ports.DocumentValidator {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = opts.Retries
	httpClient.RetryWaitMin = defaultRetryWaitMin
	httpClient.RetryWaitMax = defaultRetryWaitMax
	if opts.RetryWaitMin > 0 {
		httpClient.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		httpClient.RetryWaitMax = opts.RetryWaitMax
	}
	if opts.Timeout > 0 {
		httpClient.HTTPClient.Timeout = opts.Timeout
	}
	// The request path carries the voter document, so retryablehttp's own
	// logging, which prints full URLs, stays off.
	httpClient.Logger = nil
	httpClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		logger.Debug("validating document",
			zap.String("method", req.Method),
			zap.String("host", req.URL.Host),
			zap.Int("attempt", attempt),
		)
	}
	httpClient.ResponseLogHook = func(_ retryablehttp.Logger, resp *http.Response) {
		logger.Debug("document validator responded", zap.Int("status", resp.StatusCode))
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger,
	}
}

// Validate returns true only when the service reports the document as able
// to vote. Unknown documents are not able to vote.
func (c *Client) Validate(ctx context.Context, document string) (bool, error) {
	path := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(document))
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build document validation request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to validate document: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		c.logger.Debug("document not found by validator")
		return false, nil
	default:
		return false, fmt.Errorf("document validator returned status %d", resp.StatusCode)
	}

	var body statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("failed to decode document validation response: %w", err)
	}

	c.logger.Debug("document validated", zap.String("status", body.Status))
	return body.Status == StatusAbleToVote, nil
}

package zoom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

const (
	// BaseURL is the Zoom REST API root.
	BaseURL = "https://api.zoom.us/v2"

	// apiTimeout bounds a single API call; downloadTimeout bounds a
	// recording/transcript file download.
	apiTimeout      = 30 * time.Second
	downloadTimeout = 60 * time.Second

	// maxAttempts is the total number of tries for a rate-limited request.
	maxAttempts = 3

	// defaultRetryAfter is slept between attempts when the server does not
	// supply a Retry-After header.
	defaultRetryAfter = 5 * time.Second

	// defaultPageSize is the fixed page size for list endpoints. Only the
	// first page is fetched.
	defaultPageSize = 30
)

// TokenProvider supplies a bearer token for API requests.
type TokenProvider interface {
	Token(ctx context.Context) (*oauth2.Token, error)
}

// Client issues authenticated requests against the Zoom API.
type Client struct {
	base           string
	tokens         TokenProvider
	httpClient     *http.Client
	downloadClient *http.Client
	logger         *slog.Logger
	sleep          func(time.Duration)
}

// NewClient creates a client that authenticates with the given token
// provider.
func NewClient(tokens TokenProvider) *Client {
	return &Client{
		base:           BaseURL,
		tokens:         tokens,
		httpClient:     &http.Client{Timeout: apiTimeout},
		downloadClient: &http.Client{Timeout: downloadTimeout},
		logger:         slog.Default(),
		sleep:          time.Sleep,
	}
}

// Do performs one authenticated request and returns the raw JSON body.
// Rate-limited requests (429) are retried up to maxAttempts times, sleeping
// for the server-supplied Retry-After between attempts. A 204 response
// yields (nil, nil). Any other non-success status returns an *APIError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		token.SetAuthHeader(req)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if attempt == maxAttempts {
				break
			}
			c.logger.Warn("rate limited, retrying",
				"retry_after", retryAfter.String(),
				"attempt", attempt)
			c.sleep(retryAfter)
			continue
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode == http.StatusNoContent {
			return nil, nil
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, parseAPIError(resp.StatusCode, data)
		}

		return data, nil
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrMaxRetries, maxAttempts)
}

// GetJSON performs a GET and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	data, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// parseAPIError decodes the provider's error body, falling back to the raw
// status and body text when it is not the usual {code, message} shape.
func parseAPIError(status int, body []byte) *APIError {
	var e struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err != nil || e.Message == "" {
		return &APIError{Status: status, Code: status, Message: string(body)}
	}
	if e.Code == 0 {
		e.Code = status
	}
	return &APIError{Status: status, Code: e.Code, Message: e.Message}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return defaultRetryAfter
	}
	secs, err := strconv.Atoi(header)
	if err != nil || secs <= 0 {
		return defaultRetryAfter
	}
	return time.Duration(secs) * time.Second
}

func pageQuery(size int) url.Values {
	return url.Values{"page_size": {strconv.Itoa(size)}}
}

package capture

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/numbersprotocol/capture-go/pkg/log"
)

// apiRequest describes one HTTP exchange. nid annotates not-found errors
// for asset-scoped calls; failureMessage replaces body-derived messages
// for the fixed-message external services (history, merge).
type apiRequest struct {
	method         string
	url            string
	contentType    string
	body           io.Reader
	nid            string
	failureMessage string
}

// do executes an authenticated request and returns the raw response body.
// Transport-level failures (DNS, connect, deadline) classify as network
// errors with status 0; non-2xx responses classify per the error taxonomy
// with a message extracted from the JSON error body unless the request
// pins its own.
func (c *Client) do(ctx context.Context, r apiRequest) ([]byte, error) {
	ctx = log.ContextWithCorrelationID(ctx, uuid.NewString())

	req, err := http.NewRequestWithContext(ctx, r.method, r.url, r.body)
	if err != nil {
		return nil, classifyAPIError(0, fmt.Sprintf("Network error: %v", err), r.nid)
	}
	req.Header.Set("Authorization", "token "+c.token)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	c.logger.Debug(ctx, "Sending API request", "method", r.method, "url", r.url)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "API request failed", "method", r.method, "url", r.url, "error", err)
		return nil, classifyAPIError(0, fmt.Sprintf("Network error: %v", err), r.nid)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error(ctx, "Failed to read API response", "method", r.method, "url", r.url, "error", err)
		return nil, classifyAPIError(0, fmt.Sprintf("Network error: %v", err), r.nid)
	}

	c.logger.Debug(ctx, "API response received",
		"method", r.method,
		"url", r.url,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := r.failureMessage
		if message == "" {
			message = extractErrorMessage(body, resp.StatusCode)
		}
		return nil, classifyAPIError(resp.StatusCode, message, r.nid)
	}

	return body, nil
}

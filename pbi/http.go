package pbi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// HeaderClientRequestID carries a caller-generated ID that the service echoes
// in its diagnostics.
const HeaderClientRequestID = "x-ms-client-request-id"

// Request sends one API call and returns the raw response. A non-nil body is
// JSON encoded. Connection errors, 429 and 5xx responses are retried with
// jittered backoff honoring Retry-After; once retries are exhausted the last
// response is returned unchanged. Status codes are not inspected here: pass
// the result to GenerateResponse, which also closes the body.
func (c *Client) Request(ctx context.Context, method, url string, body any, opts ...CallOption) (*http.Response, error) {
	co := &callOptions{}
	for _, o := range opts {
		o(co)
	}

	var rawBody any
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		rawBody = b
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, rawBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if rawBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	reqID := co.requestID
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set(HeaderClientRequestID, reqID)
	mergeHeaders(req.Header, co.headers)

	tok, err := c.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire token: %w", err)
	}
	if tok != nil {
		tok.SetAuthHeader(req.Request)
	}

	start := time.Now()
	res, err := c.retry.Do(req)
	c.Metrics.observeDuration(method, time.Since(start))
	if err != nil {
		if res != nil {
			res.Body.Close()
		}
		c.Logger.Warn("request failed",
			zap.String("method", method),
			zap.String("url", url),
			zap.String("request_id", reqID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	return res, nil
}

// GenerateResponse normalizes the result of Request. A transport error is
// returned as-is. Otherwise the body is read and closed; non-2xx statuses
// yield both the Response and an *APIError describing it.
func (c *Client) GenerateResponse(res *http.Response, err error) (*Response, error) {
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errors.New("pbi: nil response")
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	out := &Response{StatusCode: res.StatusCode, Header: res.Header, Body: b}
	if !out.OK() {
		apiErr := parseAPIError(res.StatusCode, b)
		apiErr.RequestID = out.RequestID()
		return out, apiErr
	}
	return out, nil
}

// checkRetry records attempts that ended without a response, which the
// response hook never sees, then applies the default retry policy.
func (c *Client) checkRetry(ctx context.Context, res *http.Response, err error) (bool, error) {
	if err != nil {
		c.Metrics.observeFailure(attemptMethod(err))
	}
	return retryablehttp.DefaultRetryPolicy(ctx, res, err)
}

// attemptMethod recovers the HTTP method from a transport error. net/http
// reports it title-cased in url.Error.Op ("Get", "Post").
func attemptMethod(err error) string {
	var ue *neturl.Error
	if errors.As(err, &ue) {
		return strings.ToUpper(ue.Op)
	}
	return ""
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, attempt int) {
	c.Logger.Debug("request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Any("headers", redactHeaders(req.Header)),
		zap.Int("attempt", attempt),
	)
	if attempt > 0 {
		c.Metrics.observeRetry(req.Method)
	}
}

func (c *Client) logResponse(_ retryablehttp.Logger, res *http.Response) {
	var method, url string
	if res.Request != nil {
		method = res.Request.Method
		url = res.Request.URL.String()
	}
	c.Logger.Debug("response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", res.StatusCode),
		zap.String("request_id", res.Header.Get(HeaderRequestID)),
	)
	c.Metrics.observeResponse(method, res.StatusCode)
}

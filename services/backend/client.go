package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// maxResponseBytes caps how much of a backend answer is read.
const maxResponseBytes = 4 << 20

// Client talks to the Darimaids REST backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a Client. timeout bounds every call, including the
// booking submission.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// BaseURL returns the backend root.
func (c *Client) BaseURL() string { return c.baseURL }

// request describes one backend call.
type request struct {
	method string
	path   string
	query  url.Values
	token  string
	body   interface{}
}

// status is the part every backend answer shares.
type status struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// do performs req and decodes the answer into out (if non-nil). Non-2xx
// answers and {"success": false} become *APIError with the backend's message.
func (c *Client) do(ctx context.Context, req request, out interface{}) error {
	apiErr := func(code int, msg string, err error) *APIError {
		return &APIError{StatusCode: code, Message: msg, Method: req.method, Path: req.path, Err: err}
	}

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", req.method, req.path, err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", req.method, req.path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("backend call failed",
			zap.String("method", req.method),
			zap.String("path", req.path),
			zap.Error(err),
		)
		msg := "Unable to reach the booking service. Please try again."
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			msg = "The booking service took too long to respond. Please try again."
		}
		return apiErr(0, msg, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apiErr(resp.StatusCode, "failed to read backend response", err)
	}

	c.logger.Debug("backend call",
		zap.String("method", req.method),
		zap.String("path", req.path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	var st status
	_ = json.Unmarshal(raw, &st)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := st.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return apiErr(resp.StatusCode, msg, nil)
	}
	if st.Success != nil && !*st.Success {
		msg := st.Message
		if msg == "" {
			msg = "request was not successful"
		}
		return apiErr(resp.StatusCode, msg, nil)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apiErr(resp.StatusCode, "unexpected response from the booking service", err)
	}
	return nil
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DefaultTimeout is the canonical per-request timeout. The backend is a
// local/LAN service, so 10s comfortably covers its slowest AI-backed
// endpoints.
const DefaultTimeout = 10 * time.Second

// Client issues JSON requests against the wellness backend. All calls share
// one base URL and one timeout; responses are returned as raw bodies or
// decoded via the JSON helpers.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	log     *log.Logger
}

// New creates a Client for the given base URL. A nil logger disables
// request logging. A non-positive timeout falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		log: logger,
	}
}

// Get issues a GET request and returns the response body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST request with a JSON-encoded body and returns the
// response body.
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// GetJSON issues a GET request and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	data, err := c.Get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("GET %s: decoding response: %w", path, err)
	}
	return nil
}

// PostJSON issues a POST request and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	data, err := c.Post(ctx, path, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("POST %s: decoding response: %w", path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	op := fmt.Sprintf("%s %s", method, path)
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: marshaling request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: creating request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		terr := &TransportError{Op: op, Timeout: ctx.Err() == context.DeadlineExceeded, Err: err}
		c.logRequest(method, path, 0, time.Since(start), terr)
		return nil, terr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		terr := &TransportError{Op: op, Err: err}
		c.logRequest(method, path, resp.StatusCode, time.Since(start), terr)
		return nil, terr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		aerr := &APIError{Op: op, Status: resp.StatusCode, Message: errorMessage(data)}
		c.logRequest(method, path, resp.StatusCode, time.Since(start), aerr)
		return nil, aerr
	}

	c.logRequest(method, path, resp.StatusCode, time.Since(start), nil)
	return data, nil
}

// errorMessage extracts the backend's error string from a failure body.
func errorMessage(data []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Error
}

func (c *Client) logRequest(method, path string, status int, elapsed time.Duration, err error) {
	if c.log == nil {
		return
	}
	if err != nil {
		c.log.Warn("request failed",
			"method", method, "path", path, "status", status,
			"duration_ms", elapsed.Milliseconds(), "error", err)
		return
	}
	c.log.Debug("request",
		"method", method, "path", path, "status", status,
		"duration_ms", elapsed.Milliseconds())
}

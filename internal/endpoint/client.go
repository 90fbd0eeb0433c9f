package endpoint

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

	"github.com/abhisek/bigfive/internal/survey"
)

// DefaultTimeout bounds a single request when no http.Client is supplied.
const DefaultTimeout = 15 * time.Second

// maxErrorBody caps how much of an error reply is kept in a StatusError.
const maxErrorBody = 512

// Client talks to the results service. It implements survey.Submitter.
type Client struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

var _ survey.Submitter = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a Client for the service at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint url %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultTimeout},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Submit posts a finished answer set and returns the assigned result id.
func (c *Client) Submit(ctx context.Context, req survey.SubmitRequest) (*survey.SubmitResponse, error) {
	if req.Answers == nil {
		req.Answers = []survey.Answer{}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}

	var resp survey.SubmitResponse
	if err := c.do(ctx, http.MethodPost, ResultsPath, body, &resp); err != nil {
		return nil, err
	}
	if resp.ID == "" {
		return nil, ErrMissingID
	}
	c.log.Debug("submission accepted", zap.String("result_id", resp.ID))
	return &resp, nil
}

// Fetch returns a stored result by id.
func (c *Client) Fetch(ctx context.Context, id string) (*Result, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	var res Result
	err := c.do(ctx, http.MethodGet, ResultsPath+"/"+url.PathEscape(id), nil, &res)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &res, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	target := c.baseURL + path

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("endpoint request",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(msg),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s reply: %w", path, err)
	}
	return nil
}

// errorMessage extracts {"error": "..."} from a reply, falling back to the
// raw body.
func errorMessage(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}

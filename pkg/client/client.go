// Package client is the typed gateway the frontend talks through. It layers
// header injection, a per-request timeout, content-type validation and a
// fixed-interval retry over the raw HTTP calls. Read methods degrade to the
// bundled mock data instead of failing — a deliberate product decision so
// the UI never hard-fails on a fetch; write methods surface their errors.
package client

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

	"github.com/ecodeclub/ekit/retry"
	"github.com/prepforge/prepforge/pkg/model"
	"go.uber.org/zap"
)

const (
	defaultTimeout       = 10 * time.Second
	defaultRetryInterval = time.Second
	defaultMaxRetries    = 3
)

// ErrNotJSON marks a response whose content type is not JSON — typically an
// HTML SPA fallback page served by a misrouted request. Parsing it would
// hand garbage to the UI, so it is treated as a failure.
var ErrNotJSON = errors.New("response is not JSON")

// StatusError is a non-2xx reply, carrying the server's envelope message.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL       string
	apiKey        string
	httpClient    *http.Client
	timeout       time.Duration
	retryInterval time.Duration
	maxRetries    int32
	log           *zap.SugaredLogger
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRetry controls the fixed delay between attempts and how many retries
// follow the first attempt.
func WithRetry(interval time.Duration, maxRetries int32) Option {
	return func(c *Client) {
		c.retryInterval = interval
		c.maxRetries = maxRetries
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log.Sugar() }
}

func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		apiKey:        apiKey,
		httpClient:    &http.Client{},
		timeout:       defaultTimeout,
		retryInterval: defaultRetryInterval,
		maxRetries:    defaultMaxRetries,
		log:           zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do runs one request with retries. Auth failures (401/403) are never
// retried; everything else is, on a fixed interval, until the strategy is
// exhausted.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	strategy, err := retry.NewFixedIntervalRetryStrategy(c.retryInterval, c.maxRetries)
	if err != nil {
		return err
	}

	for {
		err = c.once(ctx, method, path, body, out)
		if err == nil {
			return nil
		}

		var se *StatusError
		if errors.As(err, &se) && (se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden) {
			return err
		}

		delay, ok := strategy.Next()
		if !ok {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

func (c *Client) once(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		msg := http.StatusText(resp.StatusCode)
		var envelope struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &envelope) == nil && envelope.Error != "" {
			msg = envelope.Error
		}
		return &StatusError{StatusCode: resp.StatusCode, Message: msg}
	}

	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return fmt.Errorf("%w: got %q", ErrNotJSON, ct)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// Reviews fetches reviews, optionally filtered. On any final failure it
// returns the bundled mock reviews.
func (c *Client) Reviews(ctx context.Context, company, role string) []model.Review {
	q := url.Values{}
	if company != "" {
		q.Set("company", company)
	}
	if role != "" {
		q.Set("role", role)
	}
	path := "/api/reviews"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var reviews []model.Review
	if err := c.do(ctx, http.MethodGet, path, nil, &reviews); err != nil {
		c.log.Warnw("reviews fetch failed, serving mock data", "err", err)
		return MockReviews()
	}
	return reviews
}

// Problems fetches coding problems, falling back to mocks on failure.
func (c *Client) Problems(ctx context.Context, category, difficulty string) []model.Problem {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if difficulty != "" {
		q.Set("difficulty", difficulty)
	}
	path := "/api/problems"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var problems []model.Problem
	if err := c.do(ctx, http.MethodGet, path, nil, &problems); err != nil {
		c.log.Warnw("problems fetch failed, serving mock data", "err", err)
		return MockProblems()
	}
	return problems
}

// MCQs fetches multiple-choice questions, falling back to mocks on failure.
func (c *Client) MCQs(ctx context.Context, category, difficulty string) []model.MCQ {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if difficulty != "" {
		q.Set("difficulty", difficulty)
	}
	path := "/api/mcqs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var mcqs []model.MCQ
	if err := c.do(ctx, http.MethodGet, path, nil, &mcqs); err != nil {
		c.log.Warnw("mcqs fetch failed, serving mock data", "err", err)
		return MockMCQs()
	}
	return mcqs
}

// SubmitReview posts a review. Write paths do not fall back: the caller
// shows the error.
func (c *Client) SubmitReview(ctx context.Context, review map[string]any) (*model.SubmitReviewResponse, error) {
	var resp model.SubmitReviewResponse
	if err := c.do(ctx, http.MethodPost, "/api/reviews", review, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health reports whether the API answers its liveness probe.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

// Package clients holds the outbound REST clients for the nutrition and
// generative-text providers.
package clients

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

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/km-arc/diaita/framework/metrics"
)

var (
	// ErrUpstream is wrapped by every non-2xx response.
	ErrUpstream = errors.New("clients: upstream error")
	// ErrUnavailable is returned while a client's breaker is open.
	ErrUnavailable = errors.New("clients: upstream unavailable")
)

// UpstreamError carries the status and a bounded excerpt of the body of a
// failed call.
type UpstreamError struct {
	Client string
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream returned %d: %s", e.Client, e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

const maxErrorBody = 2 << 10

// BreakerSettings tunes the per-client circuit breaker.
type BreakerSettings struct {
	MaxRequests      uint32        // allowed through while half-open
	Interval         time.Duration // window after which closed counts reset
	Timeout          time.Duration // open → half-open
	FailureThreshold float64
	MinRequests      uint32
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:      5,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.8,
		MinRequests:      5,
	}
}

// RestClient sends JSON requests to one upstream, authenticating with an API
// key header. Calls go through a circuit breaker; only transport failures and
// 5xx responses count against it.
type RestClient struct {
	name      string
	baseURL   string
	keyHeader string
	apiKey    string

	http     *http.Client
	settings BreakerSettings
	breaker  *gobreaker.CircuitBreaker
	log      *zap.Logger
	metrics  *metrics.Collector
}

type Option func(*RestClient)

func WithHTTPClient(h *http.Client) Option { return func(c *RestClient) { c.http = h } }

func WithLogger(l *zap.Logger) Option {
	return func(c *RestClient) {
		if l != nil {
			c.log = l
		}
	}
}

func WithMetrics(m *metrics.Collector) Option {
	return func(c *RestClient) { c.metrics = m }
}

// WithBreaker replaces the default breaker settings.
func WithBreaker(s BreakerSettings) Option {
	return func(c *RestClient) { c.settings = s }
}

func NewRestClient(name, baseURL, keyHeader, apiKey string, opts ...Option) *RestClient {
	c := &RestClient{
		name:      name,
		baseURL:   strings.TrimRight(baseURL, "/"),
		keyHeader: keyHeader,
		apiKey:    apiKey,
		http:      &http.Client{Timeout: 480 * time.Second},
		settings:  DefaultBreakerSettings(),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named(name)
	c.breaker = newBreaker(name, c.settings, c.log)
	return c
}

func newBreaker(name string, s BreakerSettings, log *zap.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= s.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			var ue *UpstreamError
			if errors.As(err, &ue) {
				return ue.Status < http.StatusInternalServerError
			}
			return err == nil
		},
	})
}

// Name identifies the client in logs and metrics.
func (c *RestClient) Name() string { return c.name }

// BaseURL is the configured base URL without a trailing slash.
func (c *RestClient) BaseURL() string { return c.baseURL }

// URL joins path and query onto the base URL.
func (c *RestClient) URL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// GetJSON decodes the response of GET path?query into out.
func (c *RestClient) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.Send(ctx, http.MethodGet, c.URL(path, query), nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.decode(resp, out)
}

// PostJSON posts payload to target (an absolute URL) and decodes into out.
func (c *RestClient) PostJSON(ctx context.Context, target string, payload, out any) error {
	resp, err := c.Send(ctx, http.MethodPost, target, payload, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.decode(resp, out)
}

// Send performs one request through the breaker. On success the caller owns
// resp.Body. A non-empty accept overrides the default application/json.
func (c *RestClient) Send(ctx context.Context, method, target string, payload any, accept string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", c.name, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", c.name, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)
	req.Header.Set(c.keyHeader, c.apiKey)

	start := time.Now()
	out, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			defer resp.Body.Close()
			excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			return nil, &UpstreamError{Client: c.name, Status: resp.StatusCode, Body: strings.TrimSpace(string(excerpt))}
		}
		return resp, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%w: %s: %v", ErrUnavailable, c.name, err)
	}
	c.metrics.ObserveUpstream(c.name, err)

	if err != nil {
		c.log.Warn("upstream call failed",
			zap.String("method", method),
			zap.String("path", req.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		var ue *UpstreamError
		if errors.As(err, &ue) || errors.Is(err, ErrUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %s %s: %w", c.name, method, req.URL.Path, err)
	}

	c.log.Debug("upstream call",
		zap.String("method", method),
		zap.String("path", req.URL.Path),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out.(*http.Response), nil
}

func (c *RestClient) decode(resp *http.Response, out any) error {
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", c.name, err)
	}
	return nil
}

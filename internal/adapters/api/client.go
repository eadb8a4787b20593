package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/dstapl/osrs-gph/internal/adapters/metrics"
	"github.com/dstapl/osrs-gph/internal/application/common"
	"github.com/dstapl/osrs-gph/internal/domain/market"
	"github.com/dstapl/osrs-gph/internal/domain/shared"
)

const (
	DefaultBaseURL     = "https://prices.runescape.wiki/api/v1/osrs"
	defaultTimeout     = 30 * time.Second
	defaultMaxRetries  = 5
	defaultBackoffBase = time.Second
)

// ErrMissingUserAgent is returned when no User-Agent is configured.
// The wiki rejects requests carrying a library default agent.
var ErrMissingUserAgent = errors.New("user agent is required by the price API")

// ClientConfig tunes the price API client
type ClientConfig struct {
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	RateLimit   float64 // Requests per second
	Burst       int
	MaxRetries  int
	BackoffBase time.Duration

	BreakerThreshold int
	BreakerTimeout   time.Duration
}

// DefaultClientConfig returns conservative settings for the public wiki API
func DefaultClientConfig(userAgent string) ClientConfig {
	return ClientConfig{
		BaseURL:          DefaultBaseURL,
		UserAgent:        userAgent,
		Timeout:          defaultTimeout,
		RateLimit:        1,
		Burst:            2,
		MaxRetries:       defaultMaxRetries,
		BackoffBase:      defaultBackoffBase,
		BreakerThreshold: 5,
		BreakerTimeout:   time.Minute,
	}
}

// WikiClient reads item mappings and prices from the OSRS wiki real-time prices API
type WikiClient struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	breaker     *CircuitBreaker
	baseURL     string
	userAgent   string
	maxRetries  int
	backoffBase time.Duration
	clock       shared.Clock
}

// NewWikiClient creates a client. If clock is nil, uses RealClock.
func NewWikiClient(cfg ClientConfig, clock shared.Clock) (*WikiClient, error) {
	if cfg.UserAgent == "" {
		return nil, ErrMissingUserAgent
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BreakerThreshold <= 0 {
		cfg.BreakerThreshold = 5
	}

	return &WikiClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		breaker:     NewCircuitBreaker(cfg.BreakerThreshold, cfg.BreakerTimeout, clock),
		baseURL:     cfg.BaseURL,
		userAgent:   cfg.UserAgent,
		maxRetries:  cfg.MaxRetries,
		backoffBase: cfg.BackoffBase,
		clock:       clock,
	}, nil
}

// Breaker exposes the client's circuit breaker
func (c *WikiClient) Breaker() *CircuitBreaker {
	return c.breaker
}

// FetchMapping retrieves static item metadata: ids, names, buy limits and membership
func (c *WikiClient) FetchMapping(ctx context.Context) ([]MappingEntry, error) {
	var entries []MappingEntry
	if err := c.get(ctx, "mapping", "/mapping", &entries); err != nil {
		return nil, fmt.Errorf("failed to get item mapping: %w", err)
	}
	return entries, nil
}

// FetchPrices retrieves the instant buy/sell prices for every traded item, keyed by item id
func (c *WikiClient) FetchPrices(ctx context.Context, timespan market.Timespan) (map[int]PricePoint, error) {
	path, err := pricePath(timespan)
	if err != nil {
		return nil, err
	}

	var response struct {
		Data map[string]rawPrice `json:"data"`
	}
	if err := c.get(ctx, string(timespan), path, &response); err != nil {
		return nil, fmt.Errorf("failed to get %s prices: %w", timespan, err)
	}

	prices := make(map[int]PricePoint, len(response.Data))
	for key, raw := range response.Data {
		id, err := strconv.Atoi(key)
		if err != nil {
			common.LoggerFromContext(ctx).Debug("ignoring price entry with non-numeric id", "id", key)
			continue
		}
		prices[id] = raw.point()
	}
	return prices, nil
}

// FetchSnapshot joins the mapping with a price aggregation into a market snapshot
func (c *WikiClient) FetchSnapshot(ctx context.Context, timespan market.Timespan) (*market.Snapshot, error) {
	mapping, err := c.FetchMapping(ctx)
	if err != nil {
		return nil, err
	}
	prices, err := c.FetchPrices(ctx, timespan)
	if err != nil {
		return nil, err
	}

	items, dropped := ToItems(mapping, prices)
	if dropped > 0 {
		common.LoggerFromContext(ctx).Warn("dropped unusable mapping entries", "count", dropped)
	}
	if len(items) == 0 {
		return nil, market.ErrEmptyCatalogue
	}

	return market.NewSnapshot(items, timespan, c.clock.Now()), nil
}

func pricePath(timespan market.Timespan) (string, error) {
	switch timespan {
	case market.TimespanLatest:
		return "/latest", nil
	case market.TimespanFiveMinute:
		return "/5m", nil
	case market.TimespanOneHour:
		return "/1h", nil
	default:
		return "", fmt.Errorf("%w: %q", market.ErrInvalidTimespan, timespan)
	}
}

// addJitter adds random jitter to a duration to avoid thundering herd
// Returns a duration between 50% and 150% of the original value
func addJitter(d time.Duration) time.Duration {
	jitter := 0.5 + rand.Float64() // 0.5 to 1.5
	return time.Duration(float64(d) * jitter)
}

// get runs a request through the circuit breaker
func (c *WikiClient) get(ctx context.Context, endpoint, path string, result interface{}) error {
	return c.breaker.Call(func() error {
		return c.request(ctx, endpoint, path, result)
	})
}

// request makes a GET request with rate limiting and exponential backoff retries
func (c *WikiClient) request(ctx context.Context, endpoint, path string, result interface{}) error {
	logger := common.LoggerFromContext(ctx)
	url := c.baseURL + path

	var lastErr error

retry:
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)

		start := c.clock.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			metrics.RecordAPIRequest(endpoint, 0, c.clock.Now().Sub(start).Seconds())
			lastErr = &retryableError{
				message: fmt.Errorf("network error: %w", err).Error(),
			}
			if !c.backoff(ctx, endpoint, "network", attempt, 0) {
				break retry
			}
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		metrics.RecordAPIRequest(endpoint, resp.StatusCode, c.clock.Now().Sub(start).Seconds())
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			var retryAfter time.Duration
			if header := resp.Header.Get("Retry-After"); header != "" {
				if seconds, err := strconv.Atoi(header); err == nil {
					retryAfter = time.Duration(seconds) * time.Second
				}
			}
			logger.Debug("rate limited by price API", "endpoint", endpoint, "attempt", attempt, "retry_after", retryAfter)
			lastErr = &retryableError{
				message:    "rate limited (429)",
				retryAfter: retryAfter,
			}
			if !c.backoff(ctx, endpoint, "rate_limited", attempt, retryAfter) {
				break retry
			}
			continue

		case resp.StatusCode >= 500:
			lastErr = &retryableError{
				message: fmt.Sprintf("server error (%d)", resp.StatusCode),
			}
			if !c.backoff(ctx, endpoint, "server_error", attempt, 0) {
				break retry
			}
			continue

		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			// 4xx other than 429 will not succeed on retry
			return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
		}

		if result != nil {
			if err := json.Unmarshal(respBody, result); err != nil {
				return fmt.Errorf("failed to unmarshal response: %w", err)
			}
		}
		return nil
	}

	if ctx.Err() != nil {
		return fmt.Errorf("context cancelled: %w", ctx.Err())
	}
	if lastErr != nil {
		return fmt.Errorf("max retries exceeded: %w", lastErr)
	}
	return fmt.Errorf("max retries exceeded")
}

// backoff sleeps before the next attempt and reports whether one should be made.
// A server-provided Retry-After is used as is; otherwise the delay doubles per
// attempt with jitter.
func (c *WikiClient) backoff(ctx context.Context, endpoint, reason string, attempt int, retryAfter time.Duration) bool {
	if attempt >= c.maxRetries || ctx.Err() != nil {
		return false
	}

	delay := addJitter(c.backoffBase * time.Duration(1<<attempt))
	if retryAfter > 0 {
		delay = retryAfter
	}

	metrics.RecordAPIRetry(endpoint, reason)
	common.LoggerFromContext(ctx).Debug("retrying price API request",
		"endpoint", endpoint, "reason", reason, "attempt", attempt+1, "delay", delay)

	// Sleep using clock (instant in tests with MockClock)
	c.clock.Sleep(delay)
	return true
}

// retryableError represents an error that should trigger a retry
type retryableError struct {
	message    string
	retryAfter time.Duration
}

func (e *retryableError) Error() string {
	return e.message
}

package footballdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	crerr "github.com/cockroachdb/errors"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/match"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/logging"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/resilience"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/usecase"
)

const (
	defaultBaseURL  = "https://api.football-data.org/v4"
	maxResponseSize = 6 << 20

	scheduledStatuses = "SCHEDULED,TIMED"
	finishedStatus    = "FINISHED"
)

var errTransient = crerr.New("football data transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads fixtures from the football-data.org REST API. It implements
// match.Source.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// ListUpcoming fetches scheduled fixtures for the given competitions inside
// the inclusive date range.
func (c *Client) ListUpcoming(ctx context.Context, q match.Query) ([]match.Fixture, error) {
	if len(q.Competitions) == 0 {
		return nil, fmt.Errorf("%w: competitions are required", usecase.ErrInvalidInput)
	}
	if q.DateFrom == "" || q.DateTo == "" {
		return nil, fmt.Errorf("%w: date range is required", usecase.ErrInvalidInput)
	}

	var envelope matchesEnvelope
	err := c.doJSON(ctx, "/matches", map[string]string{
		"competitions": strings.Join(q.Competitions, ","),
		"dateFrom":     q.DateFrom,
		"dateTo":       q.DateTo,
		"status":       scheduledStatuses,
	}, &envelope)
	if err != nil {
		return nil, fmt.Errorf("fetch upcoming matches: %w", err)
	}

	return mapMatches(envelope.Matches), nil
}

// ListResults fetches the most recent finished fixtures for the given
// competitions, newest first, capped at q.Limit.
func (c *Client) ListResults(ctx context.Context, q match.ResultQuery) ([]match.Fixture, error) {
	if len(q.Competitions) == 0 {
		return nil, fmt.Errorf("%w: competitions are required", usecase.ErrInvalidInput)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}

	var envelope matchesEnvelope
	err := c.doJSON(ctx, "/matches", map[string]string{
		"competitions": strings.Join(q.Competitions, ","),
		"status":       finishedStatus,
		"limit":        strconv.Itoa(limit),
	}, &envelope)
	if err != nil {
		return nil, fmt.Errorf("fetch recent results: %w", err)
	}

	fixtures := mapMatches(envelope.Matches)
	// The feed returns results oldest first; the dashboard wants newest first.
	for i, j := 0, len(fixtures)-1; i < j; i, j = i+1, j-1 {
		fixtures[i], fixtures[j] = fixtures[j], fixtures[i]
	}
	if len(fixtures) > limit {
		fixtures = fixtures[:limit]
	}
	return fixtures, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "football data circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: football data feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode feed payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.maxRetries)),
		ctx,
	)

	raw, err := backoff.RetryWithData(func() ([]byte, error) {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if reqErr != nil {
			return nil, backoff.Permanent(fmt.Errorf("build request: %w", reqErr))
		}
		req.Header.Set("Accept", "application/json")
		if c.token != "" {
			req.Header.Set("X-Auth-Token", c.token)
		}

		resp, doErr := c.httpClient.Do(req)
		if doErr != nil {
			return nil, fmt.Errorf("%w: send request: %v", errTransient, doErr)
		}
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		_ = resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("%w: read response body: %v", errTransient, readErr)
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return body, nil
		case isRetryableStatus(resp.StatusCode):
			return nil, fmt.Errorf("%w: feed status=%d body=%s", errTransient, resp.StatusCode, abbreviateBody(body))
		default:
			return nil, backoff.Permanent(fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(body)))
		}
	}, policy)
	if err != nil {
		c.logger.WarnContext(ctx, "football data request failed", "url", fullURL, "error", err)
		return nil, err
	}

	return raw, nil
}

func mapMatches(items []matchItem) []match.Fixture {
	fixtures := make([]match.Fixture, 0, len(items))
	for _, item := range items {
		if item.ID <= 0 {
			continue
		}
		fixtures = append(fixtures, mapMatch(item))
	}
	return fixtures
}

func mapMatch(item matchItem) match.Fixture {
	fixture := match.Fixture{
		ID:              strconv.FormatInt(item.ID, 10),
		CompetitionCode: strings.TrimSpace(item.Competition.Code),
		Competition:     strings.TrimSpace(item.Competition.Name),
		HomeTeam:        match.Team{Name: item.HomeTeam.Name, Logo: item.HomeTeam.Crest},
		AwayTeam:        match.Team{Name: item.AwayTeam.Name, Logo: item.AwayTeam.Crest},
		Venue:           strings.TrimSpace(item.Venue),
	}
	if parsed, err := time.Parse(time.RFC3339, item.UTCDate); err == nil {
		fixture.KickoffAt = parsed
	}
	if item.Score != nil && item.Score.FullTime != nil &&
		item.Score.FullTime.Home != nil && item.Score.FullTime.Away != nil {
		fixture.Score = &match.Score{
			Home: *item.Score.FullTime.Home,
			Away: *item.Score.FullTime.Away,
		}
	}
	return fixture
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func isCircuitFailure(err error) bool {
	return stderrors.Is(err, errTransient)
}

func abbreviateBody(raw []byte) string {
	const maxLen = 200
	body := strings.TrimSpace(string(raw))
	if len(body) > maxLen {
		return body[:maxLen] + "..."
	}
	return body
}

// Package footballapi fetches the raw team and match collections from the
// upstream dashboard API and normalizes them into the canonical domain shape.
// Everything downstream of this package sees exactly one match layout,
// whatever field naming or score encoding the upstream variant uses.
package footballapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/delilt/football-dashboard/internal/domain/match"
	"github.com/delilt/football-dashboard/internal/domain/team"
	"github.com/delilt/football-dashboard/internal/platform/logging"
	"github.com/delilt/football-dashboard/internal/platform/resilience"
	"github.com/delilt/football-dashboard/internal/usecase"
)

const (
	teamsPath        = "/teams/"
	matchesPath      = "/matches/"
	maxResponseBytes = 6 << 20
)

var errUpstreamTransient = crerr.New("football api transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
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
		httpClient.Timeout = 20 * time.Second
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchSnapshot loads both collections in parallel and joins them. Either
// fetch failing fails the whole snapshot; downstream never renders partial
// data.
func (c *Client) FetchSnapshot(ctx context.Context) (usecase.Snapshot, error) {
	var teams []team.Team
	var matches []match.Match
	var dropped int

	p := newFetchPool(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		teams, err = c.fetchTeams(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		matches, dropped, err = c.fetchMatches(ctx)
		return err
	})
	if err := p.Wait(); err != nil {
		return usecase.Snapshot{}, err
	}

	if dropped > 0 {
		c.logger.WarnContext(ctx, "dropped structurally invalid match records", "count", dropped)
	}

	return usecase.Snapshot{
		Teams:          teams,
		Matches:        matches,
		DroppedRecords: dropped,
	}, nil
}

func (c *Client) fetchTeams(ctx context.Context) ([]team.Team, error) {
	var raw []rawTeam
	if err := c.doJSON(ctx, teamsPath, &raw); err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	out := make([]team.Team, 0, len(raw))
	for _, item := range raw {
		t := team.Team{ID: item.ID, Name: strings.TrimSpace(item.Name)}
		if err := t.Validate(); err != nil {
			c.logger.WarnContext(ctx, "skip invalid team record", "team_id", item.ID, "error", err)
			continue
		}
		out = append(out, t)
	}

	return out, nil
}

func (c *Client) fetchMatches(ctx context.Context) ([]match.Match, int, error) {
	var raw []rawMatch
	if err := c.doJSON(ctx, matchesPath, &raw); err != nil {
		return nil, 0, fmt.Errorf("fetch matches: %w", err)
	}

	out := make([]match.Match, 0, len(raw))
	dropped := 0
	for _, item := range raw {
		m := normalizeMatch(item)
		if err := m.Validate(); err != nil {
			dropped++
			continue
		}
		out = append(out, m)
	}

	return out, dropped, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "football api circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: football data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errUpstreamTransient) {
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
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Wrapf(errUpstreamTransient, "send request: %v", err)
		} else {
			raw, readErr := readBody(resp.Body)
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(errUpstreamTransient, "read response body: %v", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Wrapf(errUpstreamTransient, "provider status=%d", resp.StatusCode)
			default:
				return nil, crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviate(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("provider request failed")
	}
	c.logger.WarnContext(ctx, "football api request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func readBody(body io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(body, maxResponseBytes)); err != nil {
		return nil, err
	}

	out := make([]byte, len(buf.B))
	copy(out, buf.B)
	return out, nil
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

func abbreviate(raw []byte) string {
	const limit = 256
	if len(raw) <= limit {
		return string(raw)
	}
	return string(raw[:limit]) + "..."
}

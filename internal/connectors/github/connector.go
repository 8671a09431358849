// Package github implements interfaces.ForgeClient against the GitHub API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v57/github"
	"github.com/ternarybob/arbor"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/ternarybob/scrutor/internal/common"
	"github.com/ternarybob/scrutor/internal/interfaces"
)

const searchPageSize = 100

// Connector implements interfaces.ForgeClient
type Connector struct {
	client  *gh.Client
	limiter *rate.Limiter
	pause   time.Duration
	logger  arbor.ILogger
}

// NewConnector creates a GitHub connector from configuration.
func NewConnector(config *common.GitHubConfig, logger arbor.ILogger) (*Connector, error) {
	if config.Token == "" {
		return nil, fmt.Errorf("github token is required")
	}

	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: config.Token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = config.Timeout

	client := gh.NewClient(tc)
	if config.BaseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(config.BaseURL, config.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github base url: %w", err)
		}
	}

	rps := config.RateLimit
	if rps <= 0 {
		rps = 5
	}

	return &Connector{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
		pause:   config.RateLimitPause,
		logger:  logger,
	}, nil
}

// TestConnection verifies the token works by getting the authenticated user.
// A failure here is fatal to the run; everything later degrades per repository.
func (c *Connector) TestConnection(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	_, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return fmt.Errorf("github connection test failed: %w", err)
	}
	return nil
}

// RateLimit reports the remaining core quota and its reset time.
func (c *Connector) RateLimit(ctx context.Context) (int, time.Time, error) {
	limits, _, err := c.client.RateLimit.Get(ctx)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to get rate limit: %w", err)
	}
	core := limits.GetCore()
	if core == nil {
		return 0, time.Time{}, nil
	}
	return core.Remaining, core.Reset.Time, nil
}

// wait applies the client-side limiter before an API call.
func (c *Connector) wait(ctx context.Context) error {
	return c.limiter.Wait(ctx)
}

// backoff pauses when the server quota is exhausted. Mirrors the 403 +
// X-RateLimit-Remaining=0 handling of the REST API: sleep until the reset
// time when known, otherwise the configured pause.
func (c *Connector) backoff(ctx context.Context, resp *gh.Response) {
	if resp == nil || resp.StatusCode != http.StatusForbidden || resp.Rate.Remaining > 0 {
		return
	}

	wait := c.pause
	if until := time.Until(resp.Rate.Reset.Time); until > 0 && until < wait {
		wait = until
	}
	if wait <= 0 {
		return
	}

	c.logger.Warn().
		Int("reset_in_seconds", int(wait.Seconds())).
		Msg("GitHub rate limit exhausted, pausing")

	select {
	case <-time.After(wait):
	case <-ctx.Done():
	}
}

// Ensure interface compliance
var _ interfaces.ForgeClient = (*Connector)(nil)

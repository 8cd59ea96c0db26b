// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github-tracker/internal/common"
	"github-tracker/internal/domain"
)

const (
	// eventsPerPage is the page size requested from the events endpoint.
	eventsPerPage = 100

	// rateResetBuffer is added to the reset timestamp before resuming, so
	// a request issued right at the boundary is not rejected again.
	rateResetBuffer = 1 * time.Second
)

// Fetcher defines the behavior of a gateway for fetching contribution
// activity from GitHub.
type Fetcher interface {
	FetchContributions(ctx context.Context, user string, days int) ([]domain.Contribution, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client *github.Client
	logger *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// The transport stacks the secondary-rate-limit waiter under the oauth2 token
// source, so every request is authenticated and abuse limits are absorbed
// transparently.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		client: github.NewClient(httpClient),
		logger: logger,
	}, nil
}

// FetchContributions walks the user's public events feed page by page and
// returns every event whose timestamp falls within [now - days, now].
//
// The feed is ordered newest-first, so the first event older than the window
// start ends the walk. When the primary rate limit is exhausted the gateway
// sleeps until the advertised reset and refetches the same page; it never
// abandons the remaining history. Events already seen on an earlier page
// (the feed can shift underneath the pagination) are skipped by ID.
func (g *GitHubGateway) FetchContributions(ctx context.Context, user string, days int) ([]domain.Contribution, error) {
	if days <= 0 {
		return nil, common.NewError(common.ErrCodeInvalidInput,
			fmt.Sprintf("days must be a positive integer, got %d", days))
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)
	g.logger.Printf("Fetching events for %s since %s...", user, start.Format(domain.DateLayout))

	var contributions []domain.Contribution
	seen := make(map[string]struct{})
	opts := &github.ListOptions{Page: 1, PerPage: eventsPerPage}

	for {
		events, resp, err := g.client.Activity.ListEventsPerformedByUser(ctx, user, false, opts)
		if err != nil {
			return nil, common.WrapError(common.ErrCodeNetwork,
				fmt.Sprintf("failed to list events for %s (page %d)", user, opts.Page), err)
		}

		if resp.Rate.Remaining == 0 {
			wait := time.Until(resp.Rate.Reset.Time.Add(rateResetBuffer))
			if wait > 0 {
				g.logger.Printf("Rate limit reached. Waiting %s until reset...", wait.Round(time.Second))
				time.Sleep(wait)
				// Refetch the same page; its payload was served from the
				// exhausted budget and is discarded.
				continue
			}
			// Reset already passed (or the server sent no rate headers), so
			// the page is usable as-is.
		}

		if len(events) == 0 {
			break
		}

		for _, ev := range events {
			created := ev.GetCreatedAt().Time
			if created.Before(start) {
				// Newest-first ordering: everything after this point is
				// older still.
				return contributions, nil
			}
			if created.After(end) {
				continue
			}
			if id := ev.GetID(); id != "" {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
			}
			contributions = append(contributions, domain.Contribution{
				Date: created.UTC().Truncate(24 * time.Hour),
				Type: ev.GetType(),
				Repo: ev.GetRepo().GetName(),
			})
		}

		opts.Page++
		g.logger.Printf("  Fetching next page of events (page %d)...", opts.Page)
	}

	g.logger.Printf("Completed fetching events: %d contributions in window.", len(contributions))
	return contributions, nil
}

package github

import (
	"context"
	"fmt"
	"time"

	gh "github.com/google/go-github/v57/github"

	"github.com/ternarybob/scrutor/internal/models"
)

// recentEventLimit caps how many raw events are kept in the summary.
const recentEventLimit = 10

// GetUserActivity fetches the user's recent public events and summarizes
// them. Events older than the day window are dropped.
func (c *Connector) GetUserActivity(ctx context.Context, username string, days int) (*models.ActivitySummary, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	opts := &gh.ListOptions{PerPage: 100}
	events, resp, err := c.client.Activity.ListEventsPerformedByUser(ctx, username, true, opts)
	c.backoff(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for %s: %w", username, err)
	}

	since := time.Now().AddDate(0, 0, -days)
	return summarizeEvents(events, since), nil
}

// summarizeEvents aggregates raw events into an activity summary: total
// count, per-type counts, activity dates and the most recent events.
func summarizeEvents(events []*gh.Event, since time.Time) *models.ActivitySummary {
	summary := &models.ActivitySummary{
		ContributionTypes: make(map[string]int),
	}

	for _, event := range events {
		createdAt := event.GetCreatedAt().Time
		if createdAt.Before(since) {
			continue
		}

		summary.TotalContributions++
		summary.ContributionTypes[event.GetType()]++
		summary.ActivityDates = append(summary.ActivityDates, createdAt)

		if len(summary.RecentEvents) < recentEventLimit {
			summary.RecentEvents = append(summary.RecentEvents, models.ActivityEvent{
				Type:      event.GetType(),
				Repo:      event.GetRepo().GetName(),
				CreatedAt: createdAt,
			})
		}
	}
	return summary
}

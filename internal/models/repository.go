package models

import "time"

// ActivityEvent is one public event performed by a repository owner.
type ActivityEvent struct {
	Type      string    `json:"type"`
	Repo      string    `json:"repo"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivitySummary summarizes an owner's recent public activity.
type ActivitySummary struct {
	TotalContributions int             `json:"total_contributions"`
	ContributionTypes  map[string]int  `json:"contribution_types"`
	RecentEvents       []ActivityEvent `json:"recent_events"`
	ActivityDates      []time.Time     `json:"activity_dates"`
}

// Owner is the account that owns a scraped repository.
type Owner struct {
	Login          string           `json:"login"`
	AvatarURL      string           `json:"avatar_url,omitempty"`
	HTMLURL        string           `json:"html_url,omitempty"`
	RecentActivity *ActivitySummary `json:"recent_activity,omitempty"`
}

// Repository is one scraped repository record with its enrichment signals.
type Repository struct {
	ID                 int64               `json:"id"`
	Name               string              `json:"name"`
	FullName           string              `json:"full_name"`
	Owner              Owner               `json:"owner"`
	Description        string              `json:"description"`
	HTMLURL            string              `json:"html_url"`
	Stars              int                 `json:"stargazers_count"`
	Forks              int                 `json:"forks_count"`
	OpenIssues         int                 `json:"open_issues_count"`
	Language           string              `json:"language"`
	Topics             []string            `json:"topics"`
	DefaultBranch      string              `json:"default_branch"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
	PushedAt           time.Time           `json:"pushed_at"`
	DocumentationStats *DocumentationStats `json:"documentation_stats,omitempty"`
}

// RateLimitInfo is a snapshot of the forge API quota at the end of a run.
type RateLimitInfo struct {
	Remaining int       `json:"rate_limit_remaining"`
	Reset     time.Time `json:"rate_limit_reset"`
}

// RunSettings is the configuration snapshot recorded with each scrape run.
type RunSettings struct {
	Topics   []string     `json:"topics"`
	StarsMin *int         `json:"stars_min,omitempty"`
	StarsMax *int         `json:"stars_max,omitempty"`
	MaxRepos int          `json:"max_repos"`
	Filter   FilterConfig `json:"filter"`
}

// ScrapeRun is the complete output of one scrape: the admitted repositories
// plus run metadata for reporting.
type ScrapeRun struct {
	ID            string        `json:"id" badgerhold:"key"`
	StartedAt     time.Time     `json:"started_at"`
	CompletedAt   time.Time     `json:"completed_at"`
	Settings      RunSettings   `json:"settings"`
	Repositories  []*Repository `json:"repositories"`
	Processed     int           `json:"processed"`
	Included      int           `json:"included"`
	Degraded      int           `json:"degraded"`
	RateLimitInfo RateLimitInfo `json:"rate_limit_info"`
}

// Package interfaces defines contracts between scrutor components.
package interfaces

import (
	"context"
	"time"

	"github.com/ternarybob/scrutor/internal/models"
)

// TreeEntryTypeBlob marks a file entry in a repository tree listing.
const TreeEntryTypeBlob = "blob"

// TreeEntry is one entry of a recursive repository tree listing.
type TreeEntry struct {
	Path string
	Type string // "blob" or "tree"
	Size int
}

// RepoSearchPage is one page of repository search results.
type RepoSearchPage struct {
	Items    []*models.Repository
	Total    int
	NextPage int // 0 when this is the last page
}

// ForgeClient is the code-forge API surface the scraper and the
// documentation analyzer consume. Implementations handle authentication,
// pagination plumbing and rate-limit backoff; callers see only data or an
// error.
type ForgeClient interface {
	// SearchRepositories runs a search query and returns one result page.
	SearchRepositories(ctx context.Context, query string, page int) (*RepoSearchPage, error)

	// GetRepository fetches full repository metadata.
	GetRepository(ctx context.Context, owner, repo string) (*models.Repository, error)

	// GetTree returns the recursive file tree for a ref.
	GetTree(ctx context.Context, owner, repo, ref string) ([]TreeEntry, error)

	// GetFileContent returns the decoded text content of a file.
	GetFileContent(ctx context.Context, owner, repo, ref, path string) (string, error)

	// GetLanguages returns the language byte-count breakdown.
	GetLanguages(ctx context.Context, owner, repo string) (map[string]int, error)

	// GetUserActivity summarizes the user's public events within the day window.
	GetUserActivity(ctx context.Context, username string, days int) (*models.ActivitySummary, error)

	// RateLimit reports remaining core quota and its reset time.
	RateLimit(ctx context.Context) (remaining int, reset time.Time, err error)
}

// RunStorage persists completed scrape runs.
type RunStorage interface {
	SaveRun(run *models.ScrapeRun) error
	GetRun(id string) (*models.ScrapeRun, error)
	ListRuns(limit int) ([]*models.ScrapeRun, error)
}

// Package scraper drives a full scrape run: search, enrichment, scoring,
// filtering and persistence.
package scraper

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/scrutor/internal/common"
	"github.com/ternarybob/scrutor/internal/interfaces"
	"github.com/ternarybob/scrutor/internal/models"
	"github.com/ternarybob/scrutor/internal/services/docquality"
)

// Service orchestrates one scrape run end to end.
type Service struct {
	client   interfaces.ForgeClient
	analyzer *docquality.Analyzer
	storage  interfaces.RunStorage
	config   *common.Config
	logger   arbor.ILogger
}

// NewService creates a scraper service. Storage may be nil when run history
// persistence is disabled.
func NewService(client interfaces.ForgeClient, analyzer *docquality.Analyzer, storage interfaces.RunStorage, config *common.Config, logger arbor.ILogger) *Service {
	return &Service{
		client:   client,
		analyzer: analyzer,
		storage:  storage,
		config:   config,
		logger:   logger,
	}
}

// Run executes one complete scrape: every configured topic is searched page
// by page, each repository is enriched and scored, and the inclusion filter
// decides admission. The run stops once MaxRepos repositories have been
// admitted. Per-repository failures degrade that repository; only context
// cancellation aborts the run.
func (s *Service) Run(ctx context.Context) (*models.ScrapeRun, error) {
	run := &models.ScrapeRun{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Settings: models.RunSettings{
			Topics:   s.config.Scraper.Topics,
			StarsMin: s.config.Scraper.Stars.Min,
			StarsMax: s.config.Scraper.Stars.Max,
			MaxRepos: s.config.Scraper.MaxRepos,
			Filter:   s.config.Filter,
		},
	}

	s.logger.Info().
		Str("run_id", run.ID).
		Strs("topics", s.config.Scraper.Topics).
		Int("max_repos", s.config.Scraper.MaxRepos).
		Msg("Starting scrape run")

	seen := make(map[string]bool)

topics:
	for _, topic := range s.config.Scraper.Topics {
		query := BuildSearchQuery(topic, s.config.Scraper.Stars)
		s.logger.Info().Str("query", query).Msg("Searching repositories")

		for page := 1; page > 0; {
			if ctx.Err() != nil {
				return run, ctx.Err()
			}

			result, err := s.client.SearchRepositories(ctx, query, page)
			if err != nil {
				s.logger.Warn().Err(err).Str("query", query).Msg("Repository search failed, skipping topic")
				continue topics
			}

			for _, repo := range result.Items {
				if repo == nil || seen[repo.FullName] {
					continue
				}
				seen[repo.FullName] = true

				if ctx.Err() != nil {
					return run, ctx.Err()
				}

				s.processRepository(ctx, run, repo)

				if run.Included >= s.config.Scraper.MaxRepos {
					break topics
				}
			}

			page = result.NextPage
		}
	}

	if remaining, reset, err := s.client.RateLimit(ctx); err == nil {
		run.RateLimitInfo = models.RateLimitInfo{Remaining: remaining, Reset: reset}
	} else {
		s.logger.Warn().Err(err).Msg("Failed to read rate limit snapshot")
	}

	run.CompletedAt = time.Now().UTC()

	if s.storage != nil {
		if err := s.storage.SaveRun(run); err != nil {
			s.logger.Warn().Err(err).Str("run_id", run.ID).Msg("Failed to persist scrape run")
		}
	}

	s.logger.Info().
		Str("run_id", run.ID).
		Int("processed", run.Processed).
		Int("included", run.Included).
		Int("degraded", run.Degraded).
		Msg("Scraped repositories successfully")

	return run, nil
}

// processRepository enriches, scores and filters a single repository.
func (s *Service) processRepository(ctx context.Context, run *models.ScrapeRun, repo *models.Repository) {
	run.Processed++

	log := s.logger.Info().Str("repo", repo.FullName).Int("stars", repo.Stars)

	if days := s.config.GitHub.ActivityDays; days > 0 && repo.Owner.Login != "" {
		activity, err := s.client.GetUserActivity(ctx, repo.Owner.Login, days)
		if err != nil {
			s.logger.Warn().Err(err).Str("owner", repo.Owner.Login).Msg("Failed to fetch owner activity")
		} else {
			repo.Owner.RecentActivity = activity
		}
	}

	stats := s.analyzer.ComputeDocumentationStats(ctx, repo.Owner.Login, repo.Name)
	repo.DocumentationStats = stats

	if docquality.IsDegraded(stats.QualitySummary) {
		run.Degraded++
	}

	if docquality.ShouldInclude(stats, &s.config.Filter) {
		run.Repositories = append(run.Repositories, repo)
		run.Included++
		log.Int("score", stats.QualitySummary.Score).Msg("Repository included")
		return
	}
	log.Int("score", stats.QualitySummary.Score).Msg("Repository filtered out")
}

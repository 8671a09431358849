package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v57/github"

	"github.com/ternarybob/scrutor/internal/interfaces"
	"github.com/ternarybob/scrutor/internal/models"
)

// SearchRepositories runs a repository search query and returns one page of
// results. The query string is built by the scraper (topic plus optional
// star range).
func (c *Connector) SearchRepositories(ctx context.Context, query string, page int) (*interfaces.RepoSearchPage, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	opts := &gh.SearchOptions{
		ListOptions: gh.ListOptions{
			Page:    page,
			PerPage: searchPageSize,
		},
	}

	result, resp, err := c.client.Search.Repositories(ctx, query, opts)
	c.backoff(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("repository search failed for %q: %w", query, err)
	}

	searchPage := &interfaces.RepoSearchPage{
		Total: result.GetTotal(),
	}
	if resp != nil {
		searchPage.NextPage = resp.NextPage
	}
	for _, repo := range result.Repositories {
		searchPage.Items = append(searchPage.Items, mapRepository(repo))
	}
	return searchPage, nil
}

// mapRepository converts a go-github repository to the scrutor model.
func mapRepository(repo *gh.Repository) *models.Repository {
	if repo == nil {
		return nil
	}

	mapped := &models.Repository{
		ID:            repo.GetID(),
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		HTMLURL:       repo.GetHTMLURL(),
		Stars:         repo.GetStargazersCount(),
		Forks:         repo.GetForksCount(),
		OpenIssues:    repo.GetOpenIssuesCount(),
		Language:      repo.GetLanguage(),
		Topics:        repo.Topics,
		DefaultBranch: repo.GetDefaultBranch(),
		CreatedAt:     repo.GetCreatedAt().Time,
		UpdatedAt:     repo.GetUpdatedAt().Time,
		PushedAt:      repo.GetPushedAt().Time,
	}
	if owner := repo.GetOwner(); owner != nil {
		mapped.Owner = models.Owner{
			Login:     owner.GetLogin(),
			AvatarURL: owner.GetAvatarURL(),
			HTMLURL:   owner.GetHTMLURL(),
		}
	}
	return mapped
}

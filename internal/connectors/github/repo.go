package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v57/github"

	"github.com/ternarybob/scrutor/internal/interfaces"
	"github.com/ternarybob/scrutor/internal/models"
)

// GetRepository fetches full repository metadata.
func (c *Connector) GetRepository(ctx context.Context, owner, repo string) (*models.Repository, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	repository, resp, err := c.client.Repositories.Get(ctx, owner, repo)
	c.backoff(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, repo, err)
	}
	return mapRepository(repository), nil
}

// GetTree returns the recursive file tree for a ref.
func (c *Connector) GetTree(ctx context.Context, owner, repo, ref string) ([]interfaces.TreeEntry, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	tree, resp, err := c.client.Git.GetTree(ctx, owner, repo, ref, true)
	c.backoff(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("failed to get tree for %s/%s@%s: %w", owner, repo, ref, err)
	}

	entries := make([]interfaces.TreeEntry, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		entries = append(entries, interfaces.TreeEntry{
			Path: entry.GetPath(),
			Type: entry.GetType(),
			Size: entry.GetSize(),
		})
	}
	return entries, nil
}

// GetFileContent fetches the decoded text content of a single file.
// Base64 decoding is handled by the API client.
func (c *Connector) GetFileContent(ctx context.Context, owner, repo, ref, path string) (string, error) {
	if err := c.wait(ctx); err != nil {
		return "", err
	}

	content, _, resp, err := c.client.Repositories.GetContents(ctx, owner, repo, path, &gh.RepositoryContentGetOptions{
		Ref: ref,
	})
	c.backoff(ctx, resp)
	if err != nil {
		return "", fmt.Errorf("failed to get file content %s/%s:%s: %w", owner, repo, path, err)
	}
	if content == nil {
		return "", fmt.Errorf("file not found: %s", path)
	}

	decoded, err := content.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode content of %s: %w", path, err)
	}
	return decoded, nil
}

// GetLanguages returns the language byte-count breakdown.
func (c *Connector) GetLanguages(ctx context.Context, owner, repo string) (map[string]int, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	languages, resp, err := c.client.Repositories.ListLanguages(ctx, owner, repo)
	c.backoff(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages for %s/%s: %w", owner, repo, err)
	}
	return languages, nil
}

package docquality

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/scrutor/internal/interfaces"
	"github.com/ternarybob/scrutor/internal/models"
)

// fakeForge is a canned-response forge client for analyzer tests.
type fakeForge struct {
	repo      *models.Repository
	repoErr   error
	tree      []interfaces.TreeEntry
	treeErr   error
	contents  map[string]string
	languages map[string]int
}

func (f *fakeForge) SearchRepositories(context.Context, string, int) (*interfaces.RepoSearchPage, error) {
	return nil, fmt.Errorf("not used")
}

func (f *fakeForge) GetRepository(context.Context, string, string) (*models.Repository, error) {
	return f.repo, f.repoErr
}

func (f *fakeForge) GetTree(context.Context, string, string, string) ([]interfaces.TreeEntry, error) {
	return f.tree, f.treeErr
}

func (f *fakeForge) GetFileContent(_ context.Context, _, _, _, path string) (string, error) {
	if content, ok := f.contents[path]; ok {
		return content, nil
	}
	return "", fmt.Errorf("no content for %s", path)
}

func (f *fakeForge) GetLanguages(context.Context, string, string) (map[string]int, error) {
	return f.languages, nil
}

func (f *fakeForge) GetUserActivity(context.Context, string, int) (*models.ActivitySummary, error) {
	return nil, fmt.Errorf("not used")
}

func (f *fakeForge) RateLimit(context.Context) (int, time.Time, error) {
	return 5000, time.Time{}, nil
}

func newTestAnalyzer(forge *fakeForge) *Analyzer {
	cfg := models.NewDefaultFilterConfig()
	return NewAnalyzer(forge, &cfg, arbor.NewLogger())
}

func TestComputeDocumentationStats(t *testing.T) {
	readme := "# About\n" + repeatWords("word", 200) + "\n## Usage\nrun it\n"
	forge := &fakeForge{
		repo: &models.Repository{FullName: "acme/widget", DefaultBranch: "main"},
		tree: []interfaces.TreeEntry{
			{Path: "README.md", Type: interfaces.TreeEntryTypeBlob},
			{Path: "docs", Type: "tree"},
			{Path: "docs/guide.md", Type: interfaces.TreeEntryTypeBlob},
			{Path: "main.go", Type: interfaces.TreeEntryTypeBlob},
			{Path: "util.go", Type: interfaces.TreeEntryTypeBlob},
		},
		contents: map[string]string{
			"README.md":     readme,
			"docs/guide.md": "# FAQ\nquestions answered here\n",
			"main.go":       "// entry point\npackage main\n",
			"util.go":       "package main\nfunc util() {}\n",
		},
		languages: map[string]int{"Go": 9000, "Makefile": 100},
	}

	stats := newTestAnalyzer(forge).ComputeDocumentationStats(context.Background(), "acme", "widget")

	if !stats.HasReadme {
		t.Fatal("HasReadme = false")
	}
	if stats.ReadmeWordCount != CountWords(readme) {
		t.Errorf("ReadmeWordCount = %d, want %d", stats.ReadmeWordCount, CountWords(readme))
	}
	if want := []string{"About", "Usage/Examples"}; !reflect.DeepEqual(stats.ReadmeSections, want) {
		t.Errorf("ReadmeSections = %v, want %v", stats.ReadmeSections, want)
	}
	if want := []string{"docs"}; !reflect.DeepEqual(stats.DocsFolders, want) {
		t.Errorf("DocsFolders = %v, want %v", stats.DocsFolders, want)
	}
	// main.go: 1 of 2 lines; util.go: 0 of 2 lines -> 25%.
	if stats.CodeCommentRatio != 25.0 {
		t.Errorf("CodeCommentRatio = %.1f, want 25.0", stats.CodeCommentRatio)
	}
	if stats.MarkdownFiles.Count != 2 {
		t.Errorf("MarkdownFiles.Count = %d, want 2", stats.MarkdownFiles.Count)
	}
	if IsDegraded(stats.QualitySummary) {
		t.Error("summary unexpectedly degraded")
	}
	if stats.QualitySummary.Score <= 0 {
		t.Errorf("Score = %d, want > 0", stats.QualitySummary.Score)
	}
}

func TestComputeDocumentationStatsDegradesOnMetadataFailure(t *testing.T) {
	forge := &fakeForge{repoErr: fmt.Errorf("boom")}

	stats := newTestAnalyzer(forge).ComputeDocumentationStats(context.Background(), "acme", "widget")

	if !IsDegraded(stats.QualitySummary) {
		t.Fatal("expected degraded summary")
	}
	if stats.QualitySummary.Score != 0 {
		t.Errorf("Score = %d, want 0", stats.QualitySummary.Score)
	}
}

func TestComputeDocumentationStatsDegradesOnTreeFailure(t *testing.T) {
	forge := &fakeForge{
		repo:    &models.Repository{FullName: "acme/widget", DefaultBranch: "main"},
		treeErr: fmt.Errorf("boom"),
	}

	stats := newTestAnalyzer(forge).ComputeDocumentationStats(context.Background(), "acme", "widget")

	if !IsDegraded(stats.QualitySummary) {
		t.Fatal("expected degraded summary")
	}
}

func TestFindReadmePrefersMarkdown(t *testing.T) {
	tree := []interfaces.TreeEntry{
		{Path: "readme.txt", Type: interfaces.TreeEntryTypeBlob},
		{Path: "README.md", Type: interfaces.TreeEntryTypeBlob},
		{Path: "sub/README.md", Type: interfaces.TreeEntryTypeBlob},
	}
	if got := findReadme(tree); got != "README.md" {
		t.Errorf("findReadme = %q, want README.md", got)
	}

	if got := findReadme(nil); got != "" {
		t.Errorf("findReadme(empty) = %q, want empty", got)
	}
}

func TestCollectFolders(t *testing.T) {
	tree := []interfaces.TreeEntry{
		{Path: "README.md", Type: interfaces.TreeEntryTypeBlob},
		{Path: "docs", Type: "tree"},
		{Path: "docs/guide.md", Type: interfaces.TreeEntryTypeBlob},
		{Path: "internal/core", Type: "tree"},
	}
	want := []string{"docs", "internal/core"}
	if got := collectFolders(tree); !reflect.DeepEqual(got, want) {
		t.Errorf("collectFolders = %v, want %v", got, want)
	}
}

func TestMatchDocsFolders(t *testing.T) {
	folders := []string{"Docs", "src", "guides/wiki", "documentation"}
	patterns := []string{"docs", "doc", "documentation", "wiki"}
	want := []string{"Docs", "guides/wiki", "documentation"}
	if got := matchDocsFolders(folders, patterns); !reflect.DeepEqual(got, want) {
		t.Errorf("matchDocsFolders = %v, want %v", got, want)
	}
}

func repeatWords(word string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += word + " "
	}
	return out
}

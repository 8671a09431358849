package docquality

import (
	"context"
	"path"
	"sort"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/scrutor/internal/interfaces"
	"github.com/ternarybob/scrutor/internal/models"
)

// languageExtensions maps lowercase forge language names to the file
// extensions sampled for the comment-ratio estimate.
var languageExtensions = map[string][]string{
	"go":         {".go"},
	"python":     {".py"},
	"javascript": {".js", ".jsx", ".mjs"},
	"typescript": {".ts", ".tsx"},
	"java":       {".java"},
	"c":          {".c", ".h"},
	"c++":        {".cpp", ".cc", ".cxx", ".hpp"},
	"c#":         {".cs"},
	"rust":       {".rs"},
	"ruby":       {".rb"},
	"php":        {".php"},
	"swift":      {".swift"},
	"kotlin":     {".kt", ".kts"},
	"shell":      {".sh", ".bash"},
	"scala":      {".scala"},
	"lua":        {".lua"},
	"perl":       {".pl", ".pm"},
	"r":          {".r"},
	"dart":       {".dart"},
	"elixir":     {".ex", ".exs"},
}

// Analyzer gathers documentation signals for a repository through a forge
// client and scores them.
type Analyzer struct {
	client interfaces.ForgeClient
	config *models.FilterConfig
	logger arbor.ILogger
}

// NewAnalyzer creates a documentation analyzer.
func NewAnalyzer(client interfaces.ForgeClient, config *models.FilterConfig, logger arbor.ILogger) *Analyzer {
	return &Analyzer{
		client: client,
		config: config,
		logger: logger,
	}
}

// ComputeDocumentationStats runs the full documentation pipeline for one
// repository. It never returns an error: a total failure yields the degraded
// zero-value form so one repository can never abort the batch. Partial
// failures (no languages, unreadable files) degrade individual signals
// instead.
func (a *Analyzer) ComputeDocumentationStats(ctx context.Context, owner, repo string) *models.DocumentationStats {
	meta, err := a.client.GetRepository(ctx, owner, repo)
	if err != nil {
		a.logger.Warn().Err(err).Str("repo", owner+"/"+repo).Msg("Failed to fetch repository metadata")
		return degradedStats()
	}

	branch := meta.DefaultBranch
	if branch == "" {
		branch = "main"
	}

	tree, err := a.client.GetTree(ctx, owner, repo, branch)
	if err != nil {
		a.logger.Warn().Err(err).Str("repo", owner+"/"+repo).Msg("Failed to fetch repository tree")
		return degradedStats()
	}

	stats := &models.DocumentationStats{}
	stats.AllFolders = collectFolders(tree)
	stats.DocsFolders = matchDocsFolders(stats.AllFolders, a.config.DocsFolderPatterns)

	fetch := func(ctx context.Context, p string) (string, error) {
		return a.client.GetFileContent(ctx, owner, repo, branch, p)
	}

	// README analysis.
	if readmePath := findReadme(tree); readmePath != "" {
		content, err := fetch(ctx, readmePath)
		if err != nil {
			a.logger.Warn().Err(err).Str("repo", owner+"/"+repo).Str("path", readmePath).Msg("Failed to fetch README")
		} else {
			stats.HasReadme = true
			stats.ReadmeWordCount = CountWords(content)
			stats.ReadmeSections = Classify(ExtractHeaders(content))
		}
	}

	// Comment-ratio sampling for the dominant language.
	language := a.dominantLanguage(ctx, owner, repo)
	if language != "" {
		samples := a.sampleSourceFiles(ctx, tree, language, fetch)
		ratio := EstimateCommentRatio(samples, language)
		stats.CodeCommentRatio = ratio.Ratio
	}

	stats.MarkdownFiles = ScanMarkdown(ctx, tree, fetch)

	input := ScoreInput{
		HasReadme:       stats.HasReadme,
		ReadmeWordCount: stats.ReadmeWordCount,
		ReadmeSections:  stats.ReadmeSections,
		DocsFolders:     stats.DocsFolders,
		CommentRatio:    stats.CodeCommentRatio,
		Markdown:        stats.MarkdownFiles,
	}
	stats.QualitySummary = Score(input, a.config)

	return stats
}

func degradedStats() *models.DocumentationStats {
	return &models.DocumentationStats{
		QualitySummary: DegradedSummary(),
	}
}

// dominantLanguage picks the language with the largest byte count.
// A missing breakdown is signal absence, not an error.
func (a *Analyzer) dominantLanguage(ctx context.Context, owner, repo string) string {
	languages, err := a.client.GetLanguages(ctx, owner, repo)
	if err != nil || len(languages) == 0 {
		return ""
	}

	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	// Sorted iteration keeps byte-count ties deterministic.
	sort.Strings(names)

	dominant := ""
	best := -1
	for _, name := range names {
		if languages[name] > best {
			dominant = name
			best = languages[name]
		}
	}
	return dominant
}

// sampleSourceFiles fetches up to MaxSampledFiles files of the dominant
// language in tree order. Unreadable files are skipped.
func (a *Analyzer) sampleSourceFiles(ctx context.Context, tree []interfaces.TreeEntry, language string, fetch ContentFetcher) []SampledFile {
	extensions := languageExtensions[strings.ToLower(language)]
	if len(extensions) == 0 {
		return nil
	}
	extMap := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extMap[ext] = true
	}

	var samples []SampledFile
	for _, entry := range tree {
		if len(samples) >= MaxSampledFiles {
			break
		}
		if entry.Type != interfaces.TreeEntryTypeBlob {
			continue
		}
		if !extMap[strings.ToLower(path.Ext(entry.Path))] {
			continue
		}
		content, err := fetch(ctx, entry.Path)
		if err != nil {
			continue
		}
		samples = append(samples, SampledFile{Path: entry.Path, Content: content})
	}
	return samples
}

// findReadme locates the root-level README, preferring markdown variants.
func findReadme(tree []interfaces.TreeEntry) string {
	candidates := []string{"readme.md", "readme.markdown", "readme.rst", "readme.txt", "readme"}
	for _, want := range candidates {
		for _, entry := range tree {
			if entry.Type != interfaces.TreeEntryTypeBlob {
				continue
			}
			if !strings.Contains(entry.Path, "/") && strings.ToLower(entry.Path) == want {
				return entry.Path
			}
		}
	}
	return ""
}

// collectFolders returns the unique directory paths referenced by the tree,
// sorted.
func collectFolders(tree []interfaces.TreeEntry) []string {
	seen := make(map[string]bool)
	for _, entry := range tree {
		dir := entry.Path
		if entry.Type == interfaces.TreeEntryTypeBlob {
			dir = path.Dir(entry.Path)
		}
		if dir == "." || dir == "" {
			continue
		}
		seen[dir] = true
	}

	folders := make([]string, 0, len(seen))
	for dir := range seen {
		folders = append(folders, dir)
	}
	sort.Strings(folders)
	return folders
}

// matchDocsFolders returns folders whose base name matches a recognized docs
// folder pattern, case-insensitively.
func matchDocsFolders(folders, patterns []string) []string {
	if len(patterns) == 0 {
		return nil
	}
	patternMap := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		patternMap[strings.ToLower(p)] = true
	}

	var matched []string
	for _, folder := range folders {
		if patternMap[strings.ToLower(path.Base(folder))] {
			matched = append(matched, folder)
		}
	}
	return matched
}

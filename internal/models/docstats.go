package models

// Scoring category names used as keys in ScoringBreakdown.
const (
	CategoryReadme         = "readme"
	CategoryDocsFolder     = "docs_folder"
	CategoryCodeComments   = "code_comments"
	CategoryReadmeSections = "readme_sections"
	CategoryMarkdownFiles  = "markdown_files"
)

// Assessment labels for the overall documentation score.
const (
	AssessmentExcellent = "Excellent documentation"
	AssessmentGood      = "Good documentation"
	AssessmentFair      = "Fair documentation"
	AssessmentNeedsWork = "Needs improvement"
)

// MarkdownInventory aggregates every markdown document found in a repository.
type MarkdownInventory struct {
	Count         int      `json:"count"`
	TotalWords    int      `json:"total_words"`
	SectionsFound []string `json:"sections_found"`
}

// CommentRatioSample is the result of sampling source files for comment density.
type CommentRatioSample struct {
	TotalLines   int     `json:"total_lines"`
	CommentLines int     `json:"comment_lines"`
	Ratio        float64 `json:"ratio"` // percentage, 0-100
}

// CategoryScore holds one scoring category's contribution.
type CategoryScore struct {
	Score    float64  `json:"score"`
	MaxScore float64  `json:"max_score"`
	Criteria []string `json:"criteria"`
}

// ScoringBreakdown maps category name to its score detail.
// The readme_sections category may exceed its MaxScore by up to the
// cross-document bonus; this headroom is intentional.
type ScoringBreakdown map[string]CategoryScore

// QualitySummary is the final documentation quality verdict for one repository.
// Created once per evaluation and never mutated afterwards.
type QualitySummary struct {
	Score            int              `json:"score"`
	Assessment       string           `json:"assessment"`
	Issues           []string         `json:"issues"`
	Suggestions      []string         `json:"suggestions"`
	ScoringBreakdown ScoringBreakdown `json:"scoring_breakdown"`
}

// DocumentationStats holds all documentation signals gathered for a repository.
// Immutable once produced; attached to the repository record before filtering.
type DocumentationStats struct {
	HasReadme        bool              `json:"has_readme"`
	ReadmeWordCount  int               `json:"readme_word_count"`
	ReadmeSections   []string          `json:"readme_sections"`
	DocsFolders      []string          `json:"docs_folders"`
	AllFolders       []string          `json:"all_folders"`
	CodeCommentRatio float64           `json:"code_comment_ratio"`
	MarkdownFiles    MarkdownInventory `json:"markdown_files"`
	QualitySummary   QualitySummary    `json:"quality_summary"`
}

// ScoreThreshold gates inclusion on the overall score when enabled.
// Either bound may be nil (unbounded); both present means an inclusive range.
type ScoreThreshold struct {
	Enabled bool `toml:"enabled" json:"enabled"`
	Min     *int `toml:"min" json:"min,omitempty"`
	Max     *int `toml:"max" json:"max,omitempty"`
}

// MarkdownScoring configures the markdown file inventory category.
type MarkdownScoring struct {
	Enabled  bool    `toml:"enabled" json:"enabled"`
	Weight   float64 `toml:"weight" json:"weight"`
	MinFiles int     `toml:"min_files" json:"min_files"`
}

// FilterConfig controls documentation scoring targets and the inclusion filter.
// Read-only for the duration of a scrape run.
type FilterConfig struct {
	Enabled             bool            `toml:"enabled" json:"enabled"`
	MinReadmeWords      int             `toml:"min_readme_words" json:"min_readme_words" validate:"min=0"`
	MinCodeCommentRatio float64         `toml:"min_code_comment_ratio" json:"min_code_comment_ratio" validate:"min=0"`
	RequireDocsFolder   bool            `toml:"require_docs_folder" json:"require_docs_folder"`
	DocsFolderPatterns  []string        `toml:"docs_folder_patterns" json:"docs_folder_patterns"`
	ScoreThreshold      ScoreThreshold  `toml:"score_threshold" json:"score_threshold"`
	MarkdownScoring     MarkdownScoring `toml:"markdown_scoring" json:"markdown_scoring"`
}

// NewDefaultFilterConfig returns filter defaults matching the documented
// scoring targets.
func NewDefaultFilterConfig() FilterConfig {
	return FilterConfig{
		Enabled:             false,
		MinReadmeWords:      200,
		MinCodeCommentRatio: 5.0,
		RequireDocsFolder:   false,
		DocsFolderPatterns:  []string{"docs", "doc", "documentation", "wiki"},
		ScoreThreshold: ScoreThreshold{
			Enabled: false,
		},
		MarkdownScoring: MarkdownScoring{
			Enabled:  true,
			Weight:   10.0,
			MinFiles: 3,
		},
	}
}

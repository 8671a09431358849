package docquality

import (
	"fmt"
	"math"

	"github.com/ternarybob/scrutor/internal/models"
)

// Fixed weight allocation. Each category is capped at its max before
// summation; the readme_sections category may additionally earn up to
// MaxSectionBonus points AFTER its cap for canonical sections discovered in
// markdown files outside the README.
const (
	WeightReadme          = 40.0
	WeightDocsFolder      = 20.0
	WeightCodeComments    = 20.0
	WeightReadmeSections  = 20.0
	MaxSectionBonus       = 5.0
	DefaultMarkdownWeight = 10.0
)

// Assessment thresholds on the rounded total score.
const (
	ThresholdExcellent = 90
	ThresholdGood      = 75
	ThresholdFair      = 50
)

// ScoreInput carries the raw documentation signals for one repository.
type ScoreInput struct {
	HasReadme       bool
	ReadmeWordCount int
	ReadmeSections  []string
	DocsFolders     []string
	CommentRatio    float64
	Markdown        models.MarkdownInventory
}

// Score combines the gathered signals into a weighted quality summary.
// Deterministic for identical input. The total is the rounded sum of all
// category scores; no final clamp to 100 is applied, matching the documented
// headroom of the section bonus.
func Score(in ScoreInput, cfg *models.FilterConfig) models.QualitySummary {
	breakdown := make(models.ScoringBreakdown)
	var issues, suggestions []string

	readme := scoreReadme(in, cfg, &issues, &suggestions)
	breakdown[models.CategoryReadme] = readme

	docsFolder := scoreDocsFolder(in, &issues, &suggestions)
	breakdown[models.CategoryDocsFolder] = docsFolder

	comments := scoreCodeComments(in, cfg, &issues, &suggestions)
	breakdown[models.CategoryCodeComments] = comments

	sections := scoreReadmeSections(in, &issues, &suggestions)
	breakdown[models.CategoryReadmeSections] = sections

	total := readme.Score + docsFolder.Score + comments.Score + sections.Score

	if cfg.MarkdownScoring.Enabled {
		markdown := scoreMarkdownFiles(in, cfg, &issues, &suggestions)
		breakdown[models.CategoryMarkdownFiles] = markdown
		total += markdown.Score
	}

	score := int(math.Round(total))
	return models.QualitySummary{
		Score:            score,
		Assessment:       assess(score),
		Issues:           issues,
		Suggestions:      suggestions,
		ScoringBreakdown: breakdown,
	}
}

// DegradedSummary is the zero-value result used when signal gathering for a
// repository fails entirely. The scrape continues with the next repository.
func DegradedSummary() models.QualitySummary {
	return models.QualitySummary{
		Score:            0,
		Assessment:       models.AssessmentNeedsWork,
		Issues:           []string{"Failed to analyze documentation"},
		Suggestions:      []string{"Retry the analysis for this repository"},
		ScoringBreakdown: models.ScoringBreakdown{},
	}
}

// IsDegraded reports whether a summary is the zero-value failure form.
// Real scoring always produces a populated breakdown.
func IsDegraded(s models.QualitySummary) bool {
	return len(s.ScoringBreakdown) == 0
}

func assess(score int) string {
	switch {
	case score >= ThresholdExcellent:
		return models.AssessmentExcellent
	case score >= ThresholdGood:
		return models.AssessmentGood
	case score >= ThresholdFair:
		return models.AssessmentFair
	default:
		return models.AssessmentNeedsWork
	}
}

func scoreReadme(in ScoreInput, cfg *models.FilterConfig, issues, suggestions *[]string) models.CategoryScore {
	cat := models.CategoryScore{MaxScore: WeightReadme}

	if !in.HasReadme {
		cat.Criteria = append(cat.Criteria, "No README file found")
		*issues = append(*issues, "No README file found")
		*suggestions = append(*suggestions, "Add a README file describing the project")
		return cat
	}

	target := cfg.MinReadmeWords
	if target <= 0 {
		target = 1
	}
	cat.Score = math.Min(WeightReadme, float64(in.ReadmeWordCount)/float64(target)*WeightReadme)
	cat.Criteria = append(cat.Criteria,
		fmt.Sprintf("README present with %d words (target %d)", in.ReadmeWordCount, target))

	if in.ReadmeWordCount < target {
		*issues = append(*issues, fmt.Sprintf("README is short: %d words (target %d)", in.ReadmeWordCount, target))
		*suggestions = append(*suggestions, "Expand the README with more detail")
	}
	return cat
}

func scoreDocsFolder(in ScoreInput, issues, suggestions *[]string) models.CategoryScore {
	cat := models.CategoryScore{MaxScore: WeightDocsFolder}

	if len(in.DocsFolders) > 0 {
		cat.Score = WeightDocsFolder
		cat.Criteria = append(cat.Criteria,
			fmt.Sprintf("Docs folder found: %v", in.DocsFolders))
		return cat
	}

	cat.Criteria = append(cat.Criteria, "No dedicated docs folder")
	*issues = append(*issues, "No dedicated docs folder")
	*suggestions = append(*suggestions, "Add a docs/ folder with extended documentation")
	return cat
}

func scoreCodeComments(in ScoreInput, cfg *models.FilterConfig, issues, suggestions *[]string) models.CategoryScore {
	cat := models.CategoryScore{MaxScore: WeightCodeComments}

	target := cfg.MinCodeCommentRatio
	if target <= 0 {
		target = 1
	}
	cat.Score = math.Min(WeightCodeComments, in.CommentRatio/target*WeightCodeComments)
	cat.Criteria = append(cat.Criteria,
		fmt.Sprintf("Comment ratio %.1f%% (target %.1f%%)", in.CommentRatio, target))

	if in.CommentRatio < target {
		*issues = append(*issues, fmt.Sprintf("Low code comment ratio: %.1f%% (target %.1f%%)", in.CommentRatio, target))
		*suggestions = append(*suggestions, "Add more comments to the source code")
	}
	return cat
}

func scoreReadmeSections(in ScoreInput, issues, suggestions *[]string) models.CategoryScore {
	cat := models.CategoryScore{MaxScore: WeightReadmeSections}

	found := make(map[string]bool, len(in.ReadmeSections))
	for _, title := range in.ReadmeSections {
		found[title] = true
	}

	cat.Score = math.Min(WeightReadmeSections,
		float64(len(in.ReadmeSections))/float64(TaxonomySize())*WeightReadmeSections)
	cat.Criteria = append(cat.Criteria,
		fmt.Sprintf("%d of %d canonical sections in README", len(in.ReadmeSections), TaxonomySize()))

	// Bonus for sections covered elsewhere in the repository's markdown.
	// Added after the cap: this category's effective ceiling is 25.
	bonus := 0.0
	for _, title := range in.Markdown.SectionsFound {
		if !found[title] {
			bonus++
		}
	}
	if bonus > 0 {
		bonus = math.Min(MaxSectionBonus, bonus)
		cat.Score += bonus
		cat.Criteria = append(cat.Criteria,
			fmt.Sprintf("Bonus %.0f for sections covered in other markdown files", bonus))
	}

	var missing []string
	for _, title := range SectionTitles() {
		if !found[title] {
			missing = append(missing, title)
		}
	}
	if len(missing) > 0 {
		*issues = append(*issues, fmt.Sprintf("README missing %d common sections", len(missing)))
		for _, title := range missing {
			*suggestions = append(*suggestions, fmt.Sprintf("Add a %s section to the README", title))
		}
	}
	return cat
}

func scoreMarkdownFiles(in ScoreInput, cfg *models.FilterConfig, issues, suggestions *[]string) models.CategoryScore {
	weight := cfg.MarkdownScoring.Weight
	if weight <= 0 {
		weight = DefaultMarkdownWeight
	}
	minFiles := cfg.MarkdownScoring.MinFiles
	if minFiles <= 0 {
		minFiles = 1
	}

	cat := models.CategoryScore{MaxScore: weight}
	cat.Score = math.Min(weight, float64(in.Markdown.Count)/float64(minFiles)*weight)
	cat.Criteria = append(cat.Criteria,
		fmt.Sprintf("%d markdown files, %d words total (target %d files)", in.Markdown.Count, in.Markdown.TotalWords, minFiles))

	if in.Markdown.Count < minFiles {
		*issues = append(*issues, fmt.Sprintf("Few markdown files: %d (target %d)", in.Markdown.Count, minFiles))
		*suggestions = append(*suggestions, "Add more markdown documentation files")
	}
	return cat
}

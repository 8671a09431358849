package docquality

import (
	"math"
	"strings"
	"testing"

	"github.com/ternarybob/scrutor/internal/models"
)

func defaultConfig() *models.FilterConfig {
	cfg := models.NewDefaultFilterConfig()
	return &cfg
}

func TestScore(t *testing.T) {
	tests := []struct {
		name           string
		in             ScoreInput
		wantScore      int
		wantAssessment string
	}{
		{
			name: "solid project lands in good band",
			in: ScoreInput{
				HasReadme:       true,
				ReadmeWordCount: 175, // 35 of 40
				DocsFolders:     []string{"docs"},
				CommentRatio:    5.0,
				Markdown:        models.MarkdownInventory{Count: 3, TotalWords: 900},
			},
			wantScore:      85,
			wantAssessment: models.AssessmentGood,
		},
		{
			name: "everything maxed exceeds 100, no clamp",
			in: ScoreInput{
				HasReadme:       true,
				ReadmeWordCount: 400,
				ReadmeSections:  SectionTitles(),
				DocsFolders:     []string{"docs", "wiki"},
				CommentRatio:    10.0,
				Markdown:        models.MarkdownInventory{Count: 5, TotalWords: 2000},
			},
			wantScore:      110,
			wantAssessment: models.AssessmentExcellent,
		},
		{
			name:           "empty repository scores zero",
			in:             ScoreInput{},
			wantScore:      0,
			wantAssessment: models.AssessmentNeedsWork,
		},
		{
			name: "fair band",
			in: ScoreInput{
				HasReadme:       true,
				ReadmeWordCount: 200, // 40
				CommentRatio:    2.5, // 10
				Markdown:        models.MarkdownInventory{Count: 1},
			},
			wantScore:      53, // 40 + 10 + 3.33 rounded
			wantAssessment: models.AssessmentFair,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.in, defaultConfig())
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d (breakdown %+v)", got.Score, tt.wantScore, got.ScoringBreakdown)
			}
			if got.Assessment != tt.wantAssessment {
				t.Errorf("Assessment = %q, want %q", got.Assessment, tt.wantAssessment)
			}
		})
	}
}

func TestScoreWithoutMarkdownCategory(t *testing.T) {
	cfg := defaultConfig()
	cfg.MarkdownScoring.Enabled = false

	// 250 words vs target 200 caps at 40; ratio 6 vs target 5 caps at 20;
	// 3 of 13 sections is ~4.6; with a docs folder the total rounds to 85.
	in := ScoreInput{
		HasReadme:       true,
		ReadmeWordCount: 250,
		ReadmeSections:  []string{"About", "Setup/Installation", "Usage/Examples"},
		DocsFolders:     []string{"docs"},
		CommentRatio:    6.0,
	}
	got := Score(in, cfg)

	if got.Score != 85 {
		t.Errorf("Score = %d, want 85 (breakdown %+v)", got.Score, got.ScoringBreakdown)
	}
	if got.Assessment != models.AssessmentGood {
		t.Errorf("Assessment = %q, want %q", got.Assessment, models.AssessmentGood)
	}
}

func TestReadmeScoreMonotonic(t *testing.T) {
	cfg := defaultConfig()
	prev := -1.0
	for _, words := range []int{0, 1, 50, 100, 199, 200, 201, 1000, 100000} {
		in := ScoreInput{HasReadme: true, ReadmeWordCount: words}
		got := Score(in, cfg).ScoringBreakdown[models.CategoryReadme]
		if got.Score < prev {
			t.Errorf("readme score decreased at %d words: %.2f < %.2f", words, got.Score, prev)
		}
		if got.Score > WeightReadme {
			t.Errorf("readme score %.2f exceeds %v at %d words", got.Score, WeightReadme, words)
		}
		prev = got.Score
	}
}

func TestScoreMissingReadme(t *testing.T) {
	got := Score(ScoreInput{}, defaultConfig())

	readme := got.ScoringBreakdown[models.CategoryReadme]
	if readme.Score != 0 {
		t.Errorf("readme category score = %.1f, want 0", readme.Score)
	}
	if !containsString(got.Issues, "No README file found") {
		t.Errorf("issues missing README finding: %v", got.Issues)
	}
	if !containsString(got.Suggestions, "Add a README file describing the project") {
		t.Errorf("suggestions missing README advice: %v", got.Suggestions)
	}
}

func TestScoreSectionBonus(t *testing.T) {
	in := ScoreInput{
		HasReadme:       true,
		ReadmeWordCount: 400,
		ReadmeSections:  []string{"About"},
		// Seven sections only covered outside the README; bonus caps at 5.
		Markdown: models.MarkdownInventory{
			Count: 3,
			SectionsFound: []string{
				"About", "Features", "Setup/Installation", "Usage/Examples",
				"API Reference", "Configuration", "Contributing", "Testing",
			},
		},
	}
	got := Score(in, defaultConfig())

	sections := got.ScoringBreakdown[models.CategoryReadmeSections]
	want := 1.0/13.0*WeightReadmeSections + MaxSectionBonus
	if math.Abs(sections.Score-want) > 0.01 {
		t.Errorf("readme_sections score = %.2f, want %.2f", sections.Score, want)
	}
}

func TestScoreSectionBonusHeadroom(t *testing.T) {
	in := ScoreInput{
		HasReadme:       true,
		ReadmeWordCount: 400,
		ReadmeSections:  SectionTitles()[:12],
		Markdown: models.MarkdownInventory{
			Count:         3,
			SectionsFound: SectionTitles()[12:],
		},
	}
	got := Score(in, defaultConfig())

	sections := got.ScoringBreakdown[models.CategoryReadmeSections]
	want := 12.0/13.0*WeightReadmeSections + 1
	if math.Abs(sections.Score-want) > 0.01 {
		t.Errorf("readme_sections score = %.2f, want %.2f", sections.Score, want)
	}
}

func TestScoreMarkdownCategoryDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.MarkdownScoring.Enabled = false

	in := ScoreInput{
		HasReadme:       true,
		ReadmeWordCount: 400,
		Markdown:        models.MarkdownInventory{Count: 10},
	}
	got := Score(in, cfg)

	if _, ok := got.ScoringBreakdown[models.CategoryMarkdownFiles]; ok {
		t.Error("markdown_files category present despite being disabled")
	}
	if got.Score != 40 {
		t.Errorf("Score = %d, want 40", got.Score)
	}
}

func TestScoreDeterministic(t *testing.T) {
	in := ScoreInput{
		HasReadme:       true,
		ReadmeWordCount: 123,
		ReadmeSections:  []string{"About", "Usage/Examples"},
		DocsFolders:     []string{"docs"},
		CommentRatio:    3.7,
		Markdown:        models.MarkdownInventory{Count: 2, SectionsFound: []string{"FAQ"}},
	}
	first := Score(in, defaultConfig())
	second := Score(in, defaultConfig())
	if first.Score != second.Score || first.Assessment != second.Assessment {
		t.Errorf("scoring not deterministic: %d/%s vs %d/%s",
			first.Score, first.Assessment, second.Score, second.Assessment)
	}
}

func TestDegradedSummary(t *testing.T) {
	got := DegradedSummary()
	if got.Score != 0 {
		t.Errorf("Score = %d, want 0", got.Score)
	}
	if got.Assessment != models.AssessmentNeedsWork {
		t.Errorf("Assessment = %q, want %q", got.Assessment, models.AssessmentNeedsWork)
	}
	if !containsString(got.Issues, "Failed to analyze documentation") {
		t.Errorf("issues = %v", got.Issues)
	}
	if !IsDegraded(got) {
		t.Error("IsDegraded(DegradedSummary()) = false")
	}

	scored := Score(ScoreInput{}, defaultConfig())
	if IsDegraded(scored) {
		t.Error("IsDegraded reported true for a genuinely scored summary")
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if strings.Contains(s, want) {
			return true
		}
	}
	return false
}

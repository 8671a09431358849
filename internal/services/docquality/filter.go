package docquality

import "github.com/ternarybob/scrutor/internal/models"

// ShouldInclude decides whether a scored repository is admitted to the
// result set.
//
// Two mutually exclusive modes:
//
// Threshold mode (score_threshold.enabled): the overall score must fall
// inside the inclusive [min, max] range; either bound may be absent.
//
// Flag mode: the repository is included when it FAILS any quality bar
// (missing README, README under the word target, no docs folder when one is
// required, comment ratio under target) and excluded when it meets them all.
// These inverted semantics are long-standing behavior that downstream
// consumers rely on; do not flip them without a product decision.
func ShouldInclude(stats *models.DocumentationStats, cfg *models.FilterConfig) bool {
	if cfg == nil || !cfg.Enabled {
		return true
	}

	if cfg.ScoreThreshold.Enabled {
		score := stats.QualitySummary.Score
		if cfg.ScoreThreshold.Min != nil && score < *cfg.ScoreThreshold.Min {
			return false
		}
		if cfg.ScoreThreshold.Max != nil && score > *cfg.ScoreThreshold.Max {
			return false
		}
		return true
	}

	if !stats.HasReadme {
		return true
	}
	if stats.ReadmeWordCount < cfg.MinReadmeWords {
		return true
	}
	if cfg.RequireDocsFolder && len(stats.DocsFolders) == 0 {
		return true
	}
	if stats.CodeCommentRatio < cfg.MinCodeCommentRatio {
		return true
	}

	// Every quality bar met: the repository is dropped.
	return false
}

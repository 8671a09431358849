package docquality

import (
	"strings"

	"github.com/ternarybob/scrutor/internal/models"
)

// MaxSampledFiles bounds how many source files of the dominant language are
// sampled for the comment-ratio estimate.
const MaxSampledFiles = 5

// SampledFile is one source file handed to the comment-ratio estimator.
type SampledFile struct {
	Path    string
	Content string
}

// CommentProfile holds the lexical comment markers for one language.
type CommentProfile struct {
	Single     []string // single-line comment prefixes
	MultiStart string   // multi-line comment opener
	MultiEnd   string   // multi-line comment closer
	Inline     []string // markers valid mid-line, outside string literals
	Doc        []string // documentation comment prefixes
}

// commentProfiles maps lowercase forge language names to their comment
// syntax. Languages not listed fall back to genericProfile.
var commentProfiles = map[string]CommentProfile{
	"go": {
		Single:     []string{"//"},
		MultiStart: "/*",
		MultiEnd:   "*/",
		Inline:     []string{"//"},
	},
	"python": {
		Single:     []string{"#"},
		MultiStart: `"""`,
		MultiEnd:   `"""`,
		Inline:     []string{"#"},
		Doc:        []string{`"""`, "'''"},
	},
	"javascript": {
		Single:     []string{"//"},
		MultiStart: "/*",
		MultiEnd:   "*/",
		Inline:     []string{"//"},
		Doc:        []string{"/**"},
	},
	"typescript": {
		Single:     []string{"//"},
		MultiStart: "/*",
		MultiEnd:   "*/",
		Inline:     []string{"//"},
		Doc:        []string{"/**"},
	},
	"java": {
		Single:     []string{"//"},
		MultiStart: "/*",
		MultiEnd:   "*/",
		Inline:     []string{"//"},
		Doc:        []string{"/**"},
	},
	"c": {
		Single:     []string{"//"},
		MultiStart: "/*",
		MultiEnd:   "*/",
		Inline:     []string{"//"},
	},
	"c++": {
		Single:     []string{"//"},
		MultiStart: "/*",
		MultiEnd:   "*/",
		Inline:     []string{"//"},
		Doc:        []string{"///"},
	},
	"c#": {
		Single:     []string{"//"},
		MultiStart: "/*",
		MultiEnd:   "*/",
		Inline:     []string{"//"},
		Doc:        []string{"///"},
	},
	"rust": {
		Single:     []string{"//"},
		MultiStart: "/*",
		MultiEnd:   "*/",
		Inline:     []string{"//"},
		Doc:        []string{"///", "//!"},
	},
	"ruby": {
		Single:     []string{"#"},
		MultiStart: "=begin",
		MultiEnd:   "=end",
		Inline:     []string{"#"},
	},
	"php": {
		Single:     []string{"//", "#"},
		MultiStart: "/*",
		MultiEnd:   "*/",
		Inline:     []string{"//", "#"},
		Doc:        []string{"/**"},
	},
	"swift": {
		Single:     []string{"//"},
		MultiStart: "/*",
		MultiEnd:   "*/",
		Inline:     []string{"//"},
		Doc:        []string{"///"},
	},
	"kotlin": {
		Single:     []string{"//"},
		MultiStart: "/*",
		MultiEnd:   "*/",
		Inline:     []string{"//"},
		Doc:        []string{"/**"},
	},
	"shell": {
		Single: []string{"#"},
		Inline: []string{"#"},
	},
}

// genericProfile is the fallback for unknown languages.
var genericProfile = CommentProfile{
	Single:     []string{"#", "//"},
	MultiStart: "/*",
	MultiEnd:   "*/",
	Inline:     []string{"#", "//"},
	Doc:        []string{`"""`, "'''"},
}

// ProfileForLanguage returns the comment syntax profile for a forge language
// name (case-insensitive), or the generic fallback.
func ProfileForLanguage(language string) CommentProfile {
	if p, ok := commentProfiles[strings.ToLower(language)]; ok {
		return p
	}
	return genericProfile
}

// EstimateCommentRatio estimates the fraction of comment lines across the
// sampled files, as a percentage. This is a lexical estimate, not a parse:
// false positives and negatives are expected; determinism for identical
// input is guaranteed.
//
// Per file: blank lines are dropped entirely, multi-line comment state is
// tracked within the file (only a line consisting solely of the end marker
// closes an open block), then single-line prefixes, doc prefixes and finally
// inline markers are checked. Inline markers only count when they appear
// outside double-quoted spans, approximated by splitting the line on the
// quote character and inspecting even-indexed segments. Escaped quotes can
// defeat that split; known limitation.
func EstimateCommentRatio(files []SampledFile, language string) models.CommentRatioSample {
	profile := ProfileForLanguage(language)

	sample := models.CommentRatioSample{}
	for i, f := range files {
		if i >= MaxSampledFiles {
			break
		}
		total, comments := countFileComments(f.Content, profile)
		sample.TotalLines += total
		sample.CommentLines += comments
	}

	if sample.TotalLines > 0 {
		sample.Ratio = float64(sample.CommentLines) / float64(sample.TotalLines) * 100
	}
	return sample
}

func countFileComments(content string, profile CommentProfile) (total, comments int) {
	inMulti := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		total++

		if inMulti {
			comments++
			if profile.MultiEnd != "" && trimmed == profile.MultiEnd {
				inMulti = false
			}
			continue
		}

		if profile.MultiStart != "" && strings.HasPrefix(trimmed, profile.MultiStart) {
			comments++
			// A block closed on its opening line never opens state.
			rest := trimmed[len(profile.MultiStart):]
			if profile.MultiEnd == "" || !strings.Contains(rest, profile.MultiEnd) {
				inMulti = true
			}
			continue
		}

		if hasAnyPrefix(trimmed, profile.Single) || hasAnyPrefix(trimmed, profile.Doc) {
			comments++
			continue
		}

		if containsInlineMarker(trimmed, profile.Inline) {
			comments++
		}
	}
	return total, comments
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// containsInlineMarker reports whether any inline marker occurs outside
// double-quoted spans. Splitting on the quote character leaves unquoted text
// at even indexes.
func containsInlineMarker(line string, markers []string) bool {
	if len(markers) == 0 {
		return false
	}
	segments := strings.Split(line, `"`)
	for i := 0; i < len(segments); i += 2 {
		for _, m := range markers {
			if strings.Contains(segments[i], m) {
				return true
			}
		}
	}
	return false
}

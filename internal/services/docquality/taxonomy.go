// Package docquality turns raw repository artifacts (README text, file tree,
// sampled source files, other markdown documents) into a deterministic 0-100
// documentation quality score, and decides repository inclusion from it.
// All calculation functions are stateless and perform no I/O; the Analyzer
// wires them to a forge client.
package docquality

// SectionDefinition maps one canonical documentation section to the header
// phrases that count as it.
type SectionDefinition struct {
	Key      string
	Title    string
	Synonyms []string
}

// sectionTaxonomy is the canonical section table. Slice order is the
// classification tie-break order: a header matching several synonym sets is
// counted under the first entry that contains it. Do not reorder.
// Synonym sets may overlap ("overview" appears under both about and features).
var sectionTaxonomy = []SectionDefinition{
	{
		Key:      "about",
		Title:    "About",
		Synonyms: []string{"about", "overview", "introduction", "intro", "description", "summary", "what is this"},
	},
	{
		Key:      "features",
		Title:    "Features",
		Synonyms: []string{"features", "capabilities", "highlights", "overview", "what it does"},
	},
	{
		Key:      "installation",
		Title:    "Setup/Installation",
		Synonyms: []string{"installation", "install", "setup", "getting started", "quick start", "quickstart", "requirements", "prerequisites"},
	},
	{
		Key:      "usage",
		Title:    "Usage/Examples",
		Synonyms: []string{"usage", "examples", "example", "how to use", "demo", "tutorial", "basic usage"},
	},
	{
		Key:      "api",
		Title:    "API Reference",
		Synonyms: []string{"api", "api reference", "reference", "documentation", "docs"},
	},
	{
		Key:      "configuration",
		Title:    "Configuration",
		Synonyms: []string{"configuration", "config", "options", "settings", "customization"},
	},
	{
		Key:      "contributing",
		Title:    "Contributing",
		Synonyms: []string{"contributing", "contribution", "contribute", "development", "developing"},
	},
	{
		Key:      "testing",
		Title:    "Testing",
		Synonyms: []string{"testing", "tests", "test", "running tests", "running the tests"},
	},
	{
		Key:      "license",
		Title:    "License",
		Synonyms: []string{"license", "licence", "copyright", "legal"},
	},
	{
		Key:      "changelog",
		Title:    "Changelog",
		Synonyms: []string{"changelog", "change log", "history", "release notes", "releases", "versions"},
	},
	{
		Key:      "faq",
		Title:    "FAQ",
		Synonyms: []string{"faq", "frequently asked questions", "questions", "q&a"},
	},
	{
		Key:      "troubleshooting",
		Title:    "Troubleshooting",
		Synonyms: []string{"troubleshooting", "known issues", "common issues", "debugging", "problems"},
	},
	{
		Key:      "support",
		Title:    "Support/Contact",
		Synonyms: []string{"support", "contact", "help", "community", "authors", "acknowledgments", "credits"},
	},
}

// synonymIndex is built once from sectionTaxonomy for O(1) membership checks.
// Maps synonym phrase to the index of the FIRST taxonomy entry containing it,
// preserving the tie-break order.
var synonymIndex = buildSynonymIndex()

func buildSynonymIndex() map[string]int {
	idx := make(map[string]int)
	for i, def := range sectionTaxonomy {
		for _, syn := range def.Synonyms {
			if _, exists := idx[syn]; !exists {
				idx[syn] = i
			}
		}
	}
	return idx
}

// TaxonomySize returns the number of canonical sections.
func TaxonomySize() int {
	return len(sectionTaxonomy)
}

// SectionTitles returns all canonical section titles in taxonomy order.
func SectionTitles() []string {
	titles := make([]string, len(sectionTaxonomy))
	for i, def := range sectionTaxonomy {
		titles[i] = def.Title
	}
	return titles
}

// Classify maps already-lowercased header strings to the set of canonical
// section titles found. Matching is exact synonym membership, no fuzzy
// matching. The returned titles are deduplicated and ordered by taxonomy
// position. Empty input yields an empty result.
func Classify(headers []string) []string {
	found := make(map[int]bool)
	for _, h := range headers {
		if i, ok := synonymIndex[h]; ok {
			found[i] = true
		}
	}

	var titles []string
	for i, def := range sectionTaxonomy {
		if found[i] {
			titles = append(titles, def.Title)
		}
	}
	return titles
}

package docquality

import (
	"context"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/ternarybob/scrutor/internal/interfaces"
	"github.com/ternarybob/scrutor/internal/models"
)

// ContentFetcher resolves a tree path to decoded file content.
type ContentFetcher func(ctx context.Context, path string) (string, error)

var markdownParser = goldmark.New()

// ExtractHeaders returns the normalized (lowercased, trimmed) text of every
// heading in a markdown document. Both ATX headings (1-6 leading '#') and
// setext headings (text underlined with '=' or '-') are recognized, via the
// CommonMark parser.
func ExtractHeaders(content string) []string {
	source := []byte(content)
	doc := markdownParser.Parser().Parse(text.NewReader(source))

	var headers []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			header := strings.ToLower(strings.TrimSpace(string(h.Text(source))))
			if header != "" {
				headers = append(headers, header)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return headers
}

// CountWords counts whitespace-delimited tokens.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// IsMarkdownPath reports whether a tree path names a markdown document.
func IsMarkdownPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown")
}

// ScanMarkdown walks the recursive file tree, reads every markdown document
// and aggregates word counts plus the union of canonical sections found.
// A fetch failure for an individual file skips that file; the scan itself
// never fails.
func ScanMarkdown(ctx context.Context, entries []interfaces.TreeEntry, fetch ContentFetcher) models.MarkdownInventory {
	inventory := models.MarkdownInventory{}
	sections := make(map[string]bool)

	for _, entry := range entries {
		if entry.Type != interfaces.TreeEntryTypeBlob || !IsMarkdownPath(entry.Path) {
			continue
		}

		content, err := fetch(ctx, entry.Path)
		if err != nil {
			continue
		}

		inventory.Count++
		inventory.TotalWords += CountWords(content)
		for _, title := range Classify(ExtractHeaders(content)) {
			sections[title] = true
		}
	}

	// Union in taxonomy order keeps output deterministic.
	for _, title := range SectionTitles() {
		if sections[title] {
			inventory.SectionsFound = append(inventory.SectionsFound, title)
		}
	}
	return inventory
}

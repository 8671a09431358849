package report

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/ternarybob/scrutor/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(template.New("report").Funcs(template.FuncMap{
	"repoPage": repoPageName,
}).ParseFS(templateFS, "templates/*.tmpl"))

// repoPageName is the detail page file name for a repository.
func repoPageName(repo *models.Repository) string {
	name := strings.ReplaceAll(repo.FullName, "/", "-")
	return name + ".html"
}

// writeHTML renders an index page plus one detail page per repository.
func (w *Writer) writeHTML(run *models.ScrapeRun) error {
	indexPath := filepath.Join(w.config.Dir, "index.html")
	if err := renderToFile(indexPath, "index.html.tmpl", run); err != nil {
		return err
	}

	repoDir := filepath.Join(w.config.Dir, "repos")
	if err := os.MkdirAll(repoDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", repoDir, err)
	}
	for _, repo := range run.Repositories {
		path := filepath.Join(repoDir, repoPageName(repo))
		if err := renderToFile(path, "repo.html.tmpl", repo); err != nil {
			return err
		}
	}
	return nil
}

func renderToFile(path, templateName string, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := pageTemplates.ExecuteTemplate(f, templateName, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}

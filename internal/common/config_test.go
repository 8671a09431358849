package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.GitHub.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.GitHub.Timeout)
	}
	if cfg.Scraper.MaxRepos != 50 {
		t.Errorf("MaxRepos = %d, want 50", cfg.Scraper.MaxRepos)
	}
	if cfg.Filter.MinReadmeWords != 200 {
		t.Errorf("MinReadmeWords = %d, want 200", cfg.Filter.MinReadmeWords)
	}
	if cfg.Filter.Enabled {
		t.Error("filter enabled by default")
	}
	if !cfg.Filter.MarkdownScoring.Enabled {
		t.Error("markdown scoring disabled by default")
	}
	if cfg.IsProduction() {
		t.Error("default environment reports production")
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("SCRUTOR_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")

	content := `
environment = "production"

[github]
token = "file-token"

[scraper]
topics = ["golang", "cli"]
max_repos = 5

[scraper.stars]
min = 100

[filter]
enabled = true
min_readme_words = 300
`
	path := filepath.Join(t.TempDir(), "scrutor.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("environment not loaded")
	}
	if cfg.GitHub.Token != "file-token" {
		t.Errorf("Token = %q", cfg.GitHub.Token)
	}
	if len(cfg.Scraper.Topics) != 2 || cfg.Scraper.Topics[0] != "golang" {
		t.Errorf("Topics = %v", cfg.Scraper.Topics)
	}
	if cfg.Scraper.Stars.Min == nil || *cfg.Scraper.Stars.Min != 100 {
		t.Errorf("Stars.Min = %v", cfg.Scraper.Stars.Min)
	}
	if cfg.Filter.MinReadmeWords != 300 {
		t.Errorf("MinReadmeWords = %d, want 300 (file should override default)", cfg.Filter.MinReadmeWords)
	}
	// Untouched defaults survive the merge.
	if cfg.Scraper.MaxRepos != 5 {
		t.Errorf("MaxRepos = %d, want 5", cfg.Scraper.MaxRepos)
	}
	if cfg.GitHub.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want default 30s", cfg.GitHub.Timeout)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("SCRUTOR_GITHUB_TOKEN", "env-token")
	t.Setenv("SCRUTOR_SCRAPER_TOPICS", "rust, zig")
	t.Setenv("SCRUTOR_LOG_LEVEL", "debug")

	content := `
[github]
token = "file-token"

[scraper]
topics = ["golang"]
`
	path := filepath.Join(t.TempDir(), "scrutor.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.GitHub.Token != "env-token" {
		t.Errorf("Token = %q, want env-token", cfg.GitHub.Token)
	}
	if len(cfg.Scraper.Topics) != 2 || cfg.Scraper.Topics[1] != "zig" {
		t.Errorf("Topics = %v", cfg.Scraper.Topics)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsMissingToken(t *testing.T) {
	t.Setenv("SCRUTOR_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")

	content := `
[scraper]
topics = ["golang"]
`
	path := filepath.Join(t.TempDir(), "scrutor.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for missing token")
	}
}

func TestValidateRejectsEmptyTopics(t *testing.T) {
	t.Setenv("SCRUTOR_GITHUB_TOKEN", "token")

	if _, err := LoadFromFile(""); err == nil {
		t.Error("expected error for empty topics")
	}
}

func TestValidateSchedule(t *testing.T) {
	if err := ValidateSchedule("0 6 * * *"); err != nil {
		t.Errorf("valid schedule rejected: %v", err)
	}
	if err := ValidateSchedule("not a cron"); err == nil {
		t.Error("invalid schedule accepted")
	}
	if err := ValidateSchedule("0 6 * * * *"); err == nil {
		t.Error("6-field schedule accepted, want 5-field only")
	}
}

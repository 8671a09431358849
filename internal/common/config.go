package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"

	"github.com/ternarybob/scrutor/internal/models"
)

// Config represents the application configuration.
type Config struct {
	Environment string              `toml:"environment"` // "development" or "production"
	GitHub      GitHubConfig        `toml:"github"`
	Scraper     ScraperConfig       `toml:"scraper"`
	Filter      models.FilterConfig `toml:"filter"`
	Output      OutputConfig        `toml:"output"`
	Storage     StorageConfig       `toml:"storage"`
	Logging     LoggingConfig       `toml:"logging"`
}

// GitHubConfig holds forge API settings.
type GitHubConfig struct {
	Token          string        `toml:"token"`
	BaseURL        string        `toml:"base_url"`         // Override for GitHub Enterprise; empty = api.github.com
	Timeout        time.Duration `toml:"timeout"`          // Per-request HTTP timeout
	RateLimit      int           `toml:"rate_limit"`       // Client-side requests per second
	RateLimitPause time.Duration `toml:"rate_limit_pause"` // Pause when the server quota is exhausted
	ActivityDays   int           `toml:"activity_days"`    // Day window for owner activity summaries (0 disables)
}

// StarRange bounds the star count in search queries. Either bound may be nil.
type StarRange struct {
	Min *int `toml:"min"`
	Max *int `toml:"max"`
}

// ScraperConfig controls what gets scraped.
type ScraperConfig struct {
	Topics   []string  `toml:"topics" validate:"min=1"`
	Stars    StarRange `toml:"stars"`
	MaxRepos int       `toml:"max_repos" validate:"gt=0"`
	Schedule string    `toml:"schedule"` // Cron expression; empty = run once and exit
}

// OutputConfig controls where reports are written.
type OutputConfig struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format" validate:"oneof=json"` // Data file format
	HTML   bool   `toml:"html"`                         // Also render HTML report pages
}

// StorageConfig holds embedded store settings.
type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration.
type BadgerConfig struct {
	Enabled        bool   `toml:"enabled"`
	Path           string `toml:"path"`
	ResetOnStartup bool   `toml:"reset_on_startup"`
}

// LoggingConfig controls the arbor logger.
type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

// NewDefaultConfig creates a configuration with default values.
// Only user-facing settings are exposed in scrutor.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		GitHub: GitHubConfig{
			Timeout:        30 * time.Second,
			RateLimit:      5,
			RateLimitPause: 60 * time.Second,
			ActivityDays:   30,
		},
		Scraper: ScraperConfig{
			Topics:   []string{},
			MaxRepos: 50,
		},
		Filter: models.NewDefaultFilterConfig(),
		Output: OutputConfig{
			Dir:    "./output",
			Format: "json",
			HTML:   true,
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Enabled: true,
				Path:    "./data",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout", "file"},
		},
	}
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for values the scraper cannot run with.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.GitHub.Token == "" {
		return fmt.Errorf("invalid configuration: github token is required (set SCRUTOR_GITHUB_TOKEN or GITHUB_TOKEN)")
	}
	if c.Scraper.Schedule != "" {
		if err := ValidateSchedule(c.Scraper.Schedule); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}
	return nil
}

// ValidateSchedule validates a standard 5-field cron expression.
func ValidateSchedule(schedule string) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", schedule, err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to config.
// Environment variables take precedence over file values.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("SCRUTOR_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if token := os.Getenv("SCRUTOR_GITHUB_TOKEN"); token != "" {
		config.GitHub.Token = token
	} else if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		config.GitHub.Token = token
	}
	if baseURL := os.Getenv("SCRUTOR_GITHUB_BASE_URL"); baseURL != "" {
		config.GitHub.BaseURL = baseURL
	}
	if timeout := os.Getenv("SCRUTOR_GITHUB_TIMEOUT"); timeout != "" {
		if t, err := time.ParseDuration(timeout); err == nil {
			config.GitHub.Timeout = t
		}
	}
	if rateLimit := os.Getenv("SCRUTOR_GITHUB_RATE_LIMIT"); rateLimit != "" {
		if rl, err := strconv.Atoi(rateLimit); err == nil {
			config.GitHub.RateLimit = rl
		}
	}
	if pause := os.Getenv("SCRUTOR_GITHUB_RATE_LIMIT_PAUSE"); pause != "" {
		if p, err := time.ParseDuration(pause); err == nil {
			config.GitHub.RateLimitPause = p
		}
	}
	if days := os.Getenv("SCRUTOR_GITHUB_ACTIVITY_DAYS"); days != "" {
		if d, err := strconv.Atoi(days); err == nil {
			config.GitHub.ActivityDays = d
		}
	}

	if topics := os.Getenv("SCRUTOR_SCRAPER_TOPICS"); topics != "" {
		parsed := []string{}
		for _, t := range strings.Split(topics, ",") {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				parsed = append(parsed, trimmed)
			}
		}
		if len(parsed) > 0 {
			config.Scraper.Topics = parsed
		}
	}
	if maxRepos := os.Getenv("SCRUTOR_SCRAPER_MAX_REPOS"); maxRepos != "" {
		if mr, err := strconv.Atoi(maxRepos); err == nil {
			config.Scraper.MaxRepos = mr
		}
	}
	if schedule := os.Getenv("SCRUTOR_SCRAPER_SCHEDULE"); schedule != "" {
		config.Scraper.Schedule = schedule
	}

	if dir := os.Getenv("SCRUTOR_OUTPUT_DIR"); dir != "" {
		config.Output.Dir = dir
	}
	if badgerPath := os.Getenv("SCRUTOR_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}

	if level := os.Getenv("SCRUTOR_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("SCRUTOR_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}
}

// IsProduction returns true if the environment is set to production.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

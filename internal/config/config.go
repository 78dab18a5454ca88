// Package config provides configuration management for the report
// pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Source kinds, one per bulk extract.
const (
	KindCandidates    = "candidates"
	KindCommittees    = "committees"
	KindContributions = "contributions"
)

// Configuration validation errors.
var (
	ErrNoSources                = errors.New("at least one source is required")
	ErrSourceMissingURLOrFile   = errors.New("either URL or file path is required")
	ErrSourceInvalidKind        = errors.New("kind must be candidates, committees, or contributions")
	ErrSourceKindMissing        = errors.New("a source is required for each extract kind")
	ErrInvalidCycleYear         = errors.New("cycle.year must be a positive even year")
	ErrInvalidMaxAttempts       = errors.New("retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("retry.timeout_sec must be at least 1")
	ErrMissingEmployer          = errors.New("cohort.employer is required")
	ErrMissingOccupation        = errors.New("cohort.occupation_contains is required")
	ErrInvalidTopN              = errors.New("report.top_n must be at least 1")
	ErrMissingOutputDir         = errors.New("report.output_dir is required")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Cycle   CycleConfig   `yaml:"cycle"`
	Retry   RetryPolicy   `yaml:"retry"`
	Cohort  CohortConfig  `yaml:"cohort"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// CycleConfig scopes the run to one two-year election cycle.
type CycleConfig struct {
	Year    int            `yaml:"year"`
	Sources []SourceConfig `yaml:"sources"`
}

// SourceConfig describes one bulk-extract archive.
type SourceConfig struct {
	Kind       string   `yaml:"kind"`
	URL        string   `yaml:"url"`
	BackupURLs []string `yaml:"backup_urls"`
	File       string   `yaml:"file"`
	Member     string   `yaml:"member"`
}

// IsLocalFile returns true if this source uses a local file.
func (s *SourceConfig) IsLocalFile() bool {
	return s.File != ""
}

// GetAllURLs returns all URLs (primary + backups) for a source.
func (s *SourceConfig) GetAllURLs() []string {
	urls := []string{s.URL}
	urls = append(urls, s.BackupURLs...)

	return urls
}

// RetryPolicy defines download retry behavior.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// CohortConfig selects the donor cohorts the reports cover.
type CohortConfig struct {
	Employer           string `yaml:"employer"`
	OccupationContains string `yaml:"occupation_contains"`
}

// ReportConfig defines report output behavior.
type ReportConfig struct {
	TopN       int      `yaml:"top_n"`
	OutputDir  string   `yaml:"output_dir"`
	SourceNote string   `yaml:"source_note"`
	Quarters   []string `yaml:"quarter_labels"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LoadConfig loads configuration from YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Cycle.Year <= 0 || c.Cycle.Year%2 != 0 {
		return ErrInvalidCycleYear
	}

	if len(c.Cycle.Sources) == 0 {
		return ErrNoSources
	}

	seen := map[string]bool{}

	for i, src := range c.Cycle.Sources {
		switch src.Kind {
		case KindCandidates, KindCommittees, KindContributions:
		default:
			return fmt.Errorf("%w: source[%d]", ErrSourceInvalidKind, i)
		}

		if src.URL == "" && src.File == "" {
			return fmt.Errorf("%w: source[%d]", ErrSourceMissingURLOrFile, i)
		}

		seen[src.Kind] = true
	}

	for _, kind := range []string{KindCandidates, KindCommittees, KindContributions} {
		if !seen[kind] {
			return fmt.Errorf("%w: %s", ErrSourceKindMissing, kind)
		}
	}

	if c.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if c.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Cohort.Employer == "" {
		return ErrMissingEmployer
	}

	if c.Cohort.OccupationContains == "" {
		return ErrMissingOccupation
	}

	if c.Report.TopN < 1 {
		return ErrInvalidTopN
	}

	if c.Report.OutputDir == "" {
		return ErrMissingOutputDir
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetSource returns the source for the given extract kind.
func (c *Config) GetSource(kind string) (SourceConfig, bool) {
	for _, src := range c.Cycle.Sources {
		if src.Kind == kind {
			return src, true
		}
	}

	return SourceConfig{}, false
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 1; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	// Cap at max delay
	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the per-request timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// CycleQuarters returns the eight calendar-quarter labels spanning
// the two-year cycle, oldest first, unless the config overrides them.
func (c *Config) CycleQuarters() []string {
	if len(c.Report.Quarters) > 0 {
		return c.Report.Quarters
	}

	labels := make([]string, 0, 8)
	for _, year := range []int{c.Cycle.Year - 1, c.Cycle.Year} {
		for q := 1; q <= 4; q++ {
			labels = append(labels, fmt.Sprintf("%d Q%d", year, q))
		}
	}

	return labels
}

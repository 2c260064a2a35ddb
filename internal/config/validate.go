package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/chancharikmitra/vqascore/internal/vqa"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	validateModel(cfg.Model, collector.add)
	if cfg.Score.Workers < 1 {
		collector.add("score.workers", "must be >= 1")
	}
	return collector.result()
}

func validateModel(model ModelConfig, add func(field, message string)) {
	if model.Name == "" {
		add("model.name", "is required")
	}
	if parsed, err := url.Parse(model.BaseURL); err != nil || parsed.Host == "" ||
		(parsed.Scheme != "http" && parsed.Scheme != "https") {
		add("model.base_url", fmt.Sprintf("invalid URL %q", model.BaseURL))
	}
	if model.TopLogprobs < 1 || model.TopLogprobs > 20 {
		add("model.top_logprobs", "must be between 1 and 20")
	}
	if model.TimeoutSeconds != nil && *model.TimeoutSeconds < 0 {
		add("model.timeout_seconds", "must be >= 0")
	}
	switch vqa.MediaMode(model.Media) {
	case vqa.MediaFileURL, vqa.MediaInline:
	default:
		add("model.media", fmt.Sprintf("unsupported mode %q (expected %s|%s)", model.Media, vqa.MediaFileURL, vqa.MediaInline))
	}
}

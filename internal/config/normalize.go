package config

import (
	"strings"

	"github.com/chancharikmitra/vqascore/internal/vqa"
)

// Defaults applied by Normalize.
const (
	DefaultModelName      = "qwen2.5-vl-7b-cambench"
	DefaultBaseURL        = "http://localhost:8000/v1"
	DefaultAPIKeyEnv      = "VQA_API_KEY"
	DefaultTimeoutSeconds = 120
)

// Normalize fills unset fields with defaults.
func Normalize(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	cfg.Model.Name = strings.TrimSpace(cfg.Model.Name)
	if cfg.Model.Name == "" {
		cfg.Model.Name = DefaultModelName
	}
	cfg.Model.BaseURL = strings.TrimSpace(cfg.Model.BaseURL)
	if cfg.Model.BaseURL == "" {
		cfg.Model.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(cfg.Model.APIKeyEnv) == "" {
		cfg.Model.APIKeyEnv = DefaultAPIKeyEnv
	}
	if cfg.Model.TopLogprobs == 0 {
		cfg.Model.TopLogprobs = vqa.DefaultTopLogprobs
	}
	if cfg.Model.TimeoutSeconds == nil {
		timeout := DefaultTimeoutSeconds
		cfg.Model.TimeoutSeconds = &timeout
	}
	cfg.Model.Media = strings.ToLower(strings.TrimSpace(cfg.Model.Media))
	if cfg.Model.Media == "" {
		cfg.Model.Media = string(vqa.MediaFileURL)
	}
	if cfg.Score.Workers == 0 {
		cfg.Score.Workers = 1
	}
	if cfg.Score.QuestionSuffix == nil {
		suffix := vqa.AnswerSuffix
		cfg.Score.QuestionSuffix = &suffix
	}
}

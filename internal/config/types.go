package config

// Config is the scorer configuration loaded from .vqascore/config.yml.
type Config struct {
	Version int         `yaml:"version"`
	Model   ModelConfig `yaml:"model"`
	Score   ScoreConfig `yaml:"score"`
}

// ModelConfig describes the OpenAI-compatible endpoint serving the VQA model.
type ModelConfig struct {
	Name           string `yaml:"name"`
	BaseURL        string `yaml:"base_url"`
	APIKeyEnv      string `yaml:"api_key_env"`
	TopLogprobs    int    `yaml:"top_logprobs"`
	// TimeoutSeconds bounds each model call; 0 disables the bound.
	TimeoutSeconds *int   `yaml:"timeout_seconds"`
	Media          string `yaml:"media"`
}

// ScoreConfig tunes the scoring loop.
type ScoreConfig struct {
	Workers        int     `yaml:"workers"`
	QuestionSuffix *string `yaml:"question_suffix"`
}

// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-ranker/internal/ranking"
)

// EnvPrefix prefixes every environment override, e.g. RESUME_RANKER_API_KEY
const EnvPrefix = "RESUME_RANKER"

// Config represents the CLI configuration. It is read from an optional JSON or YAML
// file and RESUME_RANKER_* environment variables; command-line flags override both.
type Config struct {
	// Paths
	Job         string `mapstructure:"job" json:"job,omitempty"`                 // Path to job record JSON
	Resumes     string `mapstructure:"resumes" json:"resumes,omitempty"`         // Directory of .txt/.md resumes
	Out         string `mapstructure:"out" json:"out,omitempty"`                 // Path to ranking result JSON
	Calibration string `mapstructure:"calibration" json:"calibration,omitempty"` // Optional score override table

	// Similarity backend. An empty APIKey selects the lexical backend.
	APIKey         string        `mapstructure:"api_key" json:"api_key,omitempty"`
	Provider       string        `mapstructure:"provider" json:"provider,omitempty" validate:"omitempty,oneof=gemini genai"`
	EmbeddingModel string        `mapstructure:"embedding_model" json:"embedding_model,omitempty"`
	RedisAddr      string        `mapstructure:"redis_addr" json:"redis_addr,omitempty" validate:"omitempty,hostname_port"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl" json:"cache_ttl,omitempty" validate:"gte=0"` // 0 keeps entries

	// Scoring
	Concurrency int    `mapstructure:"concurrency" json:"concurrency,omitempty" validate:"gte=0"` // 0 uses every CPU
	SkillMatch  string `mapstructure:"skill_match" json:"skill_match,omitempty" validate:"omitempty,oneof=substring word"`

	Weights ranking.Weights `mapstructure:"weights" json:"weights"`

	// Behavior
	Verbose  bool `mapstructure:"verbose" json:"verbose,omitempty"`     // Debug logging and per-resume reports
	JSONLogs bool `mapstructure:"json_logs" json:"json_logs,omitempty"` // JSON log lines instead of console
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Out:        "ranking.json",
		Provider:   "gemini",
		SkillMatch: "substring",
		Weights:    ranking.DefaultWeights(),
	}
}

// LoadConfig reads configuration from path (optional) and the environment, then validates it.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so that environment variables reach Unmarshal
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("job", d.Job)
	v.SetDefault("resumes", d.Resumes)
	v.SetDefault("out", d.Out)
	v.SetDefault("calibration", d.Calibration)
	v.SetDefault("api_key", d.APIKey)
	v.SetDefault("provider", d.Provider)
	v.SetDefault("embedding_model", d.EmbeddingModel)
	v.SetDefault("redis_addr", d.RedisAddr)
	v.SetDefault("cache_ttl", d.CacheTTL)
	v.SetDefault("concurrency", d.Concurrency)
	v.SetDefault("skill_match", d.SkillMatch)
	v.SetDefault("weights.skills", d.Weights.Skills)
	v.SetDefault("weights.experience", d.Weights.Experience)
	v.SetDefault("weights.education", d.Weights.Education)
	v.SetDefault("weights.semantic_similarity", d.Weights.Semantic)
	v.SetDefault("weights.keyword_relevance", d.Weights.Keyword)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("json_logs", d.JSONLogs)
}

// Validate checks field values and the axis weights.
// Required paths are checked by the commands after flags are merged.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' validation: %w", fe.Field(), fe.Tag(), err)
		}
		return fmt.Errorf("config error: %w", err)
	}

	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Bools cannot distinguish unset from false, so they are not merged.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Resumes == "" {
		result.Resumes = defaults.Resumes
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.Calibration == "" {
		result.Calibration = defaults.Calibration
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}
	if result.SkillMatch == "" {
		result.SkillMatch = defaults.SkillMatch
	}

	// Numeric fields: use default if zero
	if result.CacheTTL == 0 {
		result.CacheTTL = defaults.CacheTTL
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.Weights == (ranking.Weights{}) {
		result.Weights = defaults.Weights
	}

	return result
}

// Package llm provides embedding clients for the Gemini API.
// Two SDKs are supported and selected by Provider.
package llm

import (
	"fmt"
	"strings"
)

// Provider selects the SDK used to reach the embedding API
type Provider string

// Provider constants define supported embedding SDKs
const (
	// ProviderGemini uses github.com/google/generative-ai-go
	ProviderGemini Provider = "gemini"
	// ProviderGenAI uses google.golang.org/genai
	ProviderGenAI Provider = "genai"
)

const (
	// DefaultEmbeddingModel is the model used when none is configured
	DefaultEmbeddingModel = "text-embedding-004"
	// DefaultBatchSize is the largest number of texts sent in one embedding request
	DefaultBatchSize = 100
)

// Config holds the embedding client configuration
type Config struct {
	Provider       Provider
	EmbeddingModel string
	BatchSize      int
}

// DefaultConfig returns the default configuration (Gemini SDK, text-embedding-004)
func DefaultConfig() *Config {
	return &Config{
		Provider:       ProviderGemini,
		EmbeddingModel: DefaultEmbeddingModel,
		BatchSize:      DefaultBatchSize,
	}
}

// ParseProvider converts a configuration value to a Provider. Empty selects ProviderGemini.
func ParseProvider(s string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(s))) {
	case "", ProviderGemini:
		return ProviderGemini, nil
	case ProviderGenAI:
		return ProviderGenAI, nil
	default:
		return "", fmt.Errorf("unknown embedding provider %q (want %q or %q)", s, ProviderGemini, ProviderGenAI)
	}
}

// WithModel returns a copy of the config using model for embeddings
func (c *Config) WithModel(model string) *Config {
	next := *c
	next.EmbeddingModel = model
	return &next
}

// model returns the configured embedding model, or the default
func (c *Config) model() string {
	if m := strings.TrimSpace(c.EmbeddingModel); m != "" {
		return m
	}
	return DefaultEmbeddingModel
}

// batchSize returns the configured batch size, or the default
func (c *Config) batchSize() int {
	if c.BatchSize > 0 {
		return c.BatchSize
	}
	return DefaultBatchSize
}

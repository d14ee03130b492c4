package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genaiapi "google.golang.org/genai"
)

// GenAIEmbedder implements Embedder with the google.golang.org/genai SDK
type GenAIEmbedder struct {
	client *genaiapi.Client
	config *Config
}

// NewGenAIEmbedder creates an embedding client for the Gemini API backend
func NewGenAIEmbedder(ctx context.Context, config *Config, apiKey string) (*GenAIEmbedder, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	if config == nil {
		config = DefaultConfig()
	}

	client, err := genaiapi.NewClient(ctx, &genaiapi.ClientConfig{
		APIKey:  apiKey,
		Backend: genaiapi.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GenAIEmbedder{client: client, config: config}, nil
}

// Embed embeds texts in batches of at most Config.BatchSize
func (e *GenAIEmbedder) Embed(ctx context.Context, texts ...string) ([][]float32, error) {
	cfg := &genaiapi.EmbedContentConfig{TaskType: "SEMANTIC_SIMILARITY"}

	return embedInBatches(texts, e.config.batchSize(), func(chunk []string) ([][]float32, error) {
		contents := make([]*genaiapi.Content, 0, len(chunk))
		for _, t := range chunk {
			contents = append(contents, genaiapi.NewContentFromText(t, genaiapi.RoleUser))
		}

		resp, err := e.client.Models.EmbedContent(ctx, e.config.model(), contents, cfg)
		if err != nil {
			return nil, fmt.Errorf("embed content: %w", err)
		}

		out := make([][]float32, 0, len(resp.Embeddings))
		for _, emb := range resp.Embeddings {
			if emb == nil || len(emb.Values) == 0 {
				return nil, ErrEmptyEmbedding
			}
			out = append(out, emb.Values)
		}
		return out, nil
	})
}

// Model returns the embedding model name
func (e *GenAIEmbedder) Model() string {
	return e.config.model()
}

// Close is a no-op; the genai client holds no closable resources
func (e *GenAIEmbedder) Close() error {
	return nil
}

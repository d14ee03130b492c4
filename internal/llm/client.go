package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Embedder turns texts into embedding vectors
type Embedder interface {
	// Embed returns one vector per text, in input order
	Embed(ctx context.Context, texts ...string) ([][]float32, error)
	// Model returns the embedding model name
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// ErrEmptyEmbedding is returned when the API answers without vector values
var ErrEmptyEmbedding = errors.New("embedding response contained no values")

// NewEmbedder creates an Embedder for the configured provider
func NewEmbedder(ctx context.Context, config *Config, apiKey string) (Embedder, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGenAI:
		return NewGenAIEmbedder(ctx, config, apiKey)
	default:
		return NewGeminiEmbedder(ctx, config, apiKey)
	}
}

// GeminiEmbedder implements Embedder with the generative-ai-go SDK
type GeminiEmbedder struct {
	client *genai.Client
	config *Config
}

// NewGeminiEmbedder creates a new Gemini embedding client
func NewGeminiEmbedder(ctx context.Context, config *Config, apiKey string) (*GeminiEmbedder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("API key is required")
	}

	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{
		client: client,
		config: config,
	}, nil
}

// Embed embeds texts in batches of at most Config.BatchSize
func (e *GeminiEmbedder) Embed(ctx context.Context, texts ...string) ([][]float32, error) {
	model := e.client.EmbeddingModel(e.config.model())
	model.TaskType = genai.TaskTypeSemanticSimilarity

	return embedInBatches(texts, e.config.batchSize(), func(chunk []string) ([][]float32, error) {
		batch := model.NewBatch()
		for _, t := range chunk {
			batch.AddContent(genai.Text(t))
		}

		resp, err := model.BatchEmbedContents(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("failed to embed content: %w", err)
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
func (e *GeminiEmbedder) Model() string {
	return e.config.model()
}

// Close releases resources held by the client
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// embedInBatches splits texts into chunks of size and concatenates the vectors fn returns.
// Each chunk must yield exactly one vector per text.
func embedInBatches(texts []string, size int, fn func(chunk []string) ([][]float32, error)) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	if size <= 0 {
		size = len(texts)
	}

	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += size {
		end := start + size
		if end > len(texts) {
			end = len(texts)
		}

		vectors, err := fn(texts[start:end])
		if err != nil {
			return nil, err
		}
		if len(vectors) != end-start {
			return nil, fmt.Errorf("embedding count mismatch: sent %d texts, got %d vectors", end-start, len(vectors))
		}
		out = append(out, vectors...)
	}
	return out, nil
}

package similarity

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/llm"
)

// Embedding compares texts by cosine similarity of their embedding vectors
type Embedding struct {
	embedder llm.Embedder
	cache    VectorCache
	logger   *zap.Logger
}

// NewEmbedding returns an embedding backend. A nil cache selects a MemoryCache.
func NewEmbedding(embedder llm.Embedder, cache VectorCache, logger *zap.Logger) *Embedding {
	if cache == nil {
		cache = NewMemoryCache()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Embedding{embedder: embedder, cache: cache, logger: logger}
}

// Name returns "embedding"
func (e *Embedding) Name() string {
	return NameEmbedding
}

// Similarity is the rescaled cosine similarity of the two texts' embeddings
func (e *Embedding) Similarity(ctx context.Context, a, b string) float64 {
	if a == "" || b == "" {
		return Neutral
	}

	vectors, err := e.vectors(ctx, a, b)
	if err != nil {
		e.logger.Debug("similarity embedding failed", zap.Error(err))
		return Neutral
	}
	return Rescale(Cosine(vectors[0], vectors[1]))
}

// Relevance is the rescaled cosine similarity of the phrase and text embeddings
func (e *Embedding) Relevance(ctx context.Context, phrase, text string) float64 {
	return e.Similarity(ctx, phrase, text)
}

// RankPhrases orders phrases by cosine similarity to their mean embedding and keeps the top limit.
// Ties keep input order. If embedding fails the first limit phrases are returned.
func (e *Embedding) RankPhrases(ctx context.Context, phrases []string, limit int) []string {
	if limit > len(phrases) {
		limit = len(phrases)
	}
	if limit <= 0 {
		return []string{}
	}

	vectors, err := e.vectors(ctx, phrases...)
	if err != nil {
		e.logger.Debug("phrase embedding failed", zap.Error(err))
		return append([]string(nil), phrases[:limit]...)
	}

	centroid := Mean(vectors)
	order := make([]int, len(phrases))
	scores := make([]float64, len(phrases))
	for i, v := range vectors {
		order[i] = i
		scores[i] = Cosine(v, centroid)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	out := make([]string, 0, limit)
	for _, idx := range order[:limit] {
		out = append(out, phrases[idx])
	}
	return out
}

// Close releases the embedder and, when it holds a connection, the cache
func (e *Embedding) Close() error {
	err := e.embedder.Close()
	if c, ok := e.cache.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// vectors returns one embedding per text, consulting the cache first and
// embedding all misses in a single call
func (e *Embedding) vectors(ctx context.Context, texts ...string) ([][]float32, error) {
	model := e.embedder.Model()
	out := make([][]float32, len(texts))

	var missing []string
	var missingIdx []int
	for i, t := range texts {
		if v, ok := e.cache.Get(ctx, CacheKey(model, t)); ok {
			out[i] = v
			continue
		}
		missing = append(missing, t)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return out, nil
	}

	embedded, err := e.embedder.Embed(ctx, missing...)
	if err != nil {
		return nil, err
	}
	if len(embedded) != len(missing) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(embedded), len(missing))
	}
	for j, v := range embedded {
		out[missingIdx[j]] = v
		e.cache.Set(ctx, CacheKey(model, missing[j]), v)
	}
	return out, nil
}

// Cosine returns the cosine similarity of a and b. Mismatched lengths or zero vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Mean returns the element-wise mean of equal-length vectors
func Mean(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}
	mean := make([]float32, len(vectors[0]))
	for _, v := range vectors {
		for i := range mean {
			if i < len(v) {
				mean[i] += v[i]
			}
		}
	}
	n := float32(len(vectors))
	for i := range mean {
		mean[i] /= n
	}
	return mean
}

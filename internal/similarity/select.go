package similarity

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/llm"
)

// EmbedderFactory constructs an llm.Embedder
type EmbedderFactory func(ctx context.Context, config *llm.Config, apiKey string) (llm.Embedder, error)

// Options controls backend selection
type Options struct {
	APIKey      string
	LLM         *llm.Config
	RedisAddr   string        // Empty keeps vectors in process memory
	CacheTTL    time.Duration // Redis entry lifetime
	NewEmbedder EmbedderFactory
}

const probeText = "resume ranker embedding probe"

// Select chooses the backend for a whole run. Without an API key, or when the
// embedding client cannot be built or fails a probe call, it logs once and
// returns the lexical backend. A Redis failure only downgrades the cache.
// The caller should Close the result when it implements io.Closer.
func Select(ctx context.Context, opts Options, logger *zap.Logger) Backend {
	if logger == nil {
		logger = zap.NewNop()
	}

	if strings.TrimSpace(opts.APIKey) == "" {
		logger.Info("no embedding API key configured, using lexical similarity")
		return NewLexical()
	}

	factory := opts.NewEmbedder
	if factory == nil {
		factory = llm.NewEmbedder
	}

	embedder, err := factory(ctx, opts.LLM, opts.APIKey)
	if err != nil {
		logger.Warn("embedding client unavailable, using lexical similarity", zap.Error(err))
		return NewLexical()
	}

	if _, err := embedder.Embed(ctx, probeText); err != nil {
		logger.Warn("embedding probe failed, using lexical similarity",
			zap.String("model", embedder.Model()),
			zap.Error(err),
		)
		_ = embedder.Close()
		return NewLexical()
	}

	var cache VectorCache = NewMemoryCache()
	if opts.RedisAddr != "" {
		redisCache, err := NewRedisCache(ctx, RedisOptions{Addr: opts.RedisAddr, TTL: opts.CacheTTL}, logger)
		if err != nil {
			logger.Warn("redis vector cache unavailable, using in-memory cache",
				zap.String("addr", opts.RedisAddr),
				zap.Error(err),
			)
		} else {
			cache = redisCache
		}
	}

	logger.Info("using embedding similarity", zap.String("model", embedder.Model()))
	return NewEmbedding(embedder, cache, logger)
}

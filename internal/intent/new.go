package intent

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"smartcars-insurance/pkg/gemini"
	"smartcars-insurance/pkg/log"
)

// Resolver classifies a free-text question into an Intent.
// Resolve never fails: every resolution problem collapses into the
// unknown variant.
type Resolver interface {
	Resolve(ctx context.Context, question string) Intent
}

// GeminiResolver classifies questions with a Gemini call behind a small
// LRU cache. A nil llm means the credential is absent and every question
// resolves to unknown.
type GeminiResolver struct {
	llm   gemini.IGemini
	l     log.Logger
	cache *lru.Cache[string, Intent]
}

var _ Resolver = (*GeminiResolver)(nil)

// New creates a new GeminiResolver. cacheSize <= 0 uses the default.
func New(llm gemini.IGemini, l log.Logger, cacheSize int) *GeminiResolver {
	if cacheSize <= 0 {
		cacheSize = DefaultIntentCacheSize
	}
	cache, _ := lru.New[string, Intent](cacheSize)

	return &GeminiResolver{
		llm:   llm,
		l:     l,
		cache: cache,
	}
}

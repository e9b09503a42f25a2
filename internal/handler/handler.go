package handler

import (
	"github.com/prepforge/prepforge/internal/ai"
	"github.com/prepforge/prepforge/internal/cache"
	"github.com/prepforge/prepforge/internal/fetcher"
	"github.com/prepforge/prepforge/internal/store"
	"go.uber.org/zap"
)

// PageFetcher is the slice of internal/fetcher the import endpoint needs.
type PageFetcher interface {
	Fetch(rawURL, userAgent string) (*fetcher.Result, error)
}

// Handler carries the dependencies shared by all HTTP handlers. Everything
// is injected; no package-level state.
type Handler struct {
	Logger  *zap.Logger
	Store   *store.Store
	Cache   *cache.ReviewCache
	AI      *ai.Generator
	Fetcher PageFetcher
}

package cache

import (
	"sync"
	"time"

	"github.com/karlseguin/ccache/v3"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
)

const defaultMaxEntries = 10000

// Cache entries have no TTL semantics; eviction is purely size-driven.
const noExpiry = 87600 * time.Hour

// LRU is the size-bounded backend built on ccache. Content and asset sets
// are tracked in separate caches so a flood of per-request asset sets cannot
// evict processed content.
type LRU struct {
	content   *ccache.Cache[string]
	assets    *ccache.Cache[[]domain.Asset]
	closeOnce sync.Once
}

// LRUOpt configures an LRU cache.
type LRUOpt func(*lruConfig)

type lruConfig struct {
	maxEntries int64
}

// WithMaxEntries bounds the number of entries kept per key space.
func WithMaxEntries(n int64) LRUOpt {
	return func(c *lruConfig) {
		c.maxEntries = n
	}
}

// NewLRU creates a bounded LRU cache.
func NewLRU(opts ...LRUOpt) *LRU {
	cfg := &lruConfig{maxEntries: defaultMaxEntries}
	for _, opt := range opts {
		opt(cfg)
	}
	return &LRU{
		content: ccache.New(ccache.Configure[string]().MaxSize(cfg.maxEntries)),
		assets:  ccache.New(ccache.Configure[[]domain.Asset]().MaxSize(cfg.maxEntries)),
	}
}

// Name implements ports.Cache.
func (l *LRU) Name() string { return "lru" }

// GetContent implements ports.Cache.
func (l *LRU) GetContent(key string) (string, bool) {
	item := l.content.Get(key)
	if item == nil || item.Expired() {
		return "", false
	}
	return item.Value(), true
}

// PutContent implements ports.Cache.
func (l *LRU) PutContent(key, content string) {
	l.content.Set(key, content, noExpiry)
}

// GetAssets implements ports.Cache.
func (l *LRU) GetAssets(key string) ([]domain.Asset, bool) {
	item := l.assets.Get(key)
	if item == nil || item.Expired() {
		return nil, false
	}
	return cloneAssets(item.Value()), true
}

// PutAssets implements ports.Cache.
func (l *LRU) PutAssets(key string, assets []domain.Asset) {
	l.assets.Set(key, cloneAssets(assets), noExpiry)
}

// Stop releases the cache's background resources.
func (l *LRU) Stop() {
	l.closeOnce.Do(func() {
		l.content.Stop()
		l.assets.Stop()
	})
}

var _ ports.Cache = (*LRU)(nil)

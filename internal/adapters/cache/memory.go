// Package cache implements the content-addressable cache backends.
package cache

import (
	"sync"

	"github.com/bindleio/bindle/internal/core/domain"
	"github.com/bindleio/bindle/internal/core/ports"
)

// Memory is the unbounded in-memory backend: two RWMutex-guarded maps, one
// for processed content and one for resolved asset sets. Entries live until
// the process restarts.
type Memory struct {
	mu      sync.RWMutex
	content map[string]string
	assets  map[string][]domain.Asset
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{
		content: make(map[string]string),
		assets:  make(map[string][]domain.Asset),
	}
}

// Name implements ports.Cache.
func (m *Memory) Name() string { return "memory" }

// GetContent implements ports.Cache.
func (m *Memory) GetContent(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.content[key]
	return content, ok
}

// PutContent implements ports.Cache.
func (m *Memory) PutContent(key, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content[key] = content
}

// GetAssets implements ports.Cache.
func (m *Memory) GetAssets(key string) ([]domain.Asset, bool) {
	m.mu.RLock()
	assets, ok := m.assets[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return cloneAssets(assets), true
}

// PutAssets implements ports.Cache.
func (m *Memory) PutAssets(key string, assets []domain.Asset) {
	cloned := cloneAssets(assets)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[key] = cloned
}

// cloneAssets keeps cached asset sets isolated from caller mutation.
func cloneAssets(assets []domain.Asset) []domain.Asset {
	out := make([]domain.Asset, len(assets))
	for i, a := range assets {
		out[i] = a.Clone()
	}
	return out
}

var _ ports.Cache = (*Memory)(nil)

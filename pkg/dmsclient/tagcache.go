package dmsclient

import (
	"context"
	"sync"
)

// tagCache is the adapter-owned, in-memory tag-name ↔ ID cache.
// Refreshed wholesale at startup and incrementally on tag creation; no
// other component holds tag-ID state.
type tagCache struct {
	client *Client

	mu       sync.RWMutex
	byName   map[string]int
	byID     map[int]string
}

func newTagCache(c *Client) *tagCache {
	return &tagCache{
		client: c,
		byName: make(map[string]int),
		byID:   make(map[int]string),
	}
}

type tagDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type tagListDTO struct {
	Results []tagDTO `json:"results"`
}

func (t *tagCache) refresh(ctx context.Context) error {
	var dto tagListDTO
	if err := t.client.doJSON(ctx, "GET", "/api/tags/?page_size=10000", nil, &dto); err != nil {
		return err
	}
	byName := make(map[string]int, len(dto.Results))
	byID := make(map[int]string, len(dto.Results))
	for _, tag := range dto.Results {
		byName[tag.Name] = tag.ID
		byID[tag.ID] = tag.Name
	}
	t.mu.Lock()
	t.byName = byName
	t.byID = byID
	t.mu.Unlock()
	return nil
}

func (t *tagCache) idForName(name string) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.byName[name]
	return id, ok
}

func (t *tagCache) nameForID(id int) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	name, ok := t.byID[id]
	return name, ok
}

func (t *tagCache) put(id int, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.byName[name] = id
	t.byID[id] = name
}

package bom

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryItemRepository stores BOM items in-memory for scaffolding and tests.
type MemoryItemRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID][]*Item
}

// NewMemoryItemRepository constructs the repository.
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{items: make(map[uuid.UUID][]*Item)}
}

// Put registers the items of a BOM, replacing any previous set.
func (m *MemoryItemRepository) Put(bomID uuid.UUID, items []*Item) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]*Item, 0, len(items))
	for _, item := range items {
		copied = append(copied, cloneItem(item))
	}
	m.items[bomID] = copied
}

// ListByBom returns the BOM's items ordered by position.
func (m *MemoryItemRepository) ListByBom(_ context.Context, bomID uuid.UUID) ([]*Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.items[bomID]
	if !ok {
		return nil, &NotFoundError{Resource: "bom", Key: bomID.String()}
	}
	out := make([]*Item, 0, len(stored))
	for _, item := range stored {
		out = append(out, cloneItem(item))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func cloneItem(src *Item) *Item {
	if src == nil {
		return nil
	}
	copied := *src
	if src.Component != nil {
		component := *src.Component
		copied.Component = &component
	}
	return &copied
}

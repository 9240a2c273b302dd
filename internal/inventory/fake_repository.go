package inventory

import (
	"context"
	"sort"
	"sync"

	"github.com/gameworld/gameworld/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of the inventory
// repository for testing. It mirrors the relational semantics: a shared item
// catalog plus a (player, item) -> quantity ledger, with a mutex standing in
// for the database's row-level atomicity.
type FakeRepository struct {
	mu         sync.Mutex
	items      map[int]*domain.Item
	quantities map[int]map[int]int // playerID -> itemID -> quantity
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		items:      make(map[int]*domain.Item),
		quantities: make(map[int]map[int]int),
	}
}

// SeedItem registers a catalog entry.
func (f *FakeRepository) SeedItem(item *domain.Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID] = item
}

func (f *FakeRepository) GetInventory(ctx context.Context, playerID int) ([]domain.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	owned := f.quantities[playerID]
	result := make([]domain.InventoryItem, 0, len(owned))
	for itemID, qty := range owned {
		item := f.items[itemID]
		result = append(result, domain.InventoryItem{Item: *item, Quantity: qty})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *FakeRepository) AddItem(ctx context.Context, playerID, itemID, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[itemID]; !ok {
		return domain.ErrItemNotFound
	}
	if f.quantities[playerID] == nil {
		f.quantities[playerID] = make(map[int]int)
	}
	f.quantities[playerID][itemID] += quantity
	return nil
}

func (f *FakeRepository) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	return item, nil
}

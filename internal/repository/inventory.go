package repository

import (
	"context"

	"github.com/gameworld/gameworld/internal/domain"
)

// Inventory defines the interface for the inventory ledger
type Inventory interface {
	// GetInventory returns catalog entries joined with quantities; empty
	// slice (not an error) when the player owns nothing.
	GetInventory(ctx context.Context, playerID int) ([]domain.InventoryItem, error)

	// AddItem accumulates quantity onto the (player, item) row, creating it
	// on first acquisition. Must be atomic with respect to concurrent calls
	// for the same key.
	AddItem(ctx context.Context, playerID, itemID, quantity int) error

	// GetItem fetches a catalog entry; nil when the item does not exist.
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)
}

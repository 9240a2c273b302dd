package inventory

import (
	"context"
	"fmt"

	"github.com/gameworld/gameworld/internal/domain"
	"github.com/gameworld/gameworld/internal/logger"
	"github.com/gameworld/gameworld/internal/metrics"
	"github.com/gameworld/gameworld/internal/repository"
)

// Service is the inventory ledger: per-player item quantities keyed by
// (player, item), mutated only by accumulation.
type Service interface {
	GetInventory(ctx context.Context, playerID int) ([]domain.InventoryItem, error)

	// AddItem accumulates, never sets: calling it twice with the same
	// quantity doubles the effect.
	AddItem(ctx context.Context, playerID, itemID, quantity int) error
}

type service struct {
	repo    repository.Inventory
	catalog *catalogCache
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory) Service {
	return &service{
		repo:    repo,
		catalog: newCatalogCache(),
	}
}

func (s *service) GetInventory(ctx context.Context, playerID int) ([]domain.InventoryItem, error) {
	items, err := s.repo.GetInventory(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return items, nil
}

func (s *service) AddItem(ctx context.Context, playerID, itemID, quantity int) error {
	log := logger.FromContext(ctx)

	// Reject before any storage access; no partial mutation on bad input.
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, quantity)
	}

	item, err := s.lookupItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("%w: item %d", domain.ErrItemNotFound, itemID)
	}

	if err := s.repo.AddItem(ctx, playerID, itemID, quantity); err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}

	metrics.ItemsAdded.WithLabelValues(item.Name).Add(float64(quantity))
	log.Info("Item added", "player_id", playerID, "item_id", itemID, "quantity", quantity)
	return nil
}

// lookupItem resolves a catalog entry through the LRU cache. The catalog is
// read-only to this service, so cached entries cannot go stale from our own
// writes.
func (s *service) lookupItem(ctx context.Context, itemID int) (*domain.Item, error) {
	if item, ok := s.catalog.Get(itemID); ok {
		return item, nil
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up item: %w", err)
	}
	if item != nil {
		s.catalog.Set(item)
	}
	return item, nil
}

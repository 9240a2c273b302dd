package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/gameworld/gameworld/internal/database"
	"github.com/gameworld/gameworld/internal/domain"
)

// InventoryRepository implements the inventory ledger for PostgreSQL
type InventoryRepository struct {
	db database.Querier
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db database.Querier) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// GetInventory returns the join of catalog data with the player's entries,
// ordered by item id. A player who owns nothing gets an empty slice.
func (r *InventoryRepository) GetInventory(ctx context.Context, playerID int) ([]domain.InventoryItem, error) {
	query := `
		SELECT i.item_id, i.item_name, i.item_description, i.base_value, inv.quantity
		FROM inventories inv
		JOIN items i ON inv.item_id = i.item_id
		WHERE inv.player_id = $1
		ORDER BY i.item_id
	`

	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, wrapStorageErr("get inventory", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		var it domain.InventoryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.BaseValue, &it.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorageErr("get inventory", err)
	}

	return items, nil
}

// AddItem accumulates quantity onto the (player, item) ledger row, creating
// it on first acquisition. The upsert increments in a single statement so two
// concurrent additions for the same key are both reflected.
func (r *InventoryRepository) AddItem(ctx context.Context, playerID, itemID, quantity int) error {
	query := `
		INSERT INTO inventories (player_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id, item_id)
		DO UPDATE SET quantity = inventories.quantity + EXCLUDED.quantity
	`

	if _, err := r.db.Exec(ctx, query, playerID, itemID, quantity); err != nil {
		if constraint := foreignKeyTarget(err); constraint != "" {
			if strings.Contains(constraint, "item") {
				return fmt.Errorf("add item: %w", domain.ErrItemNotFound)
			}
			return fmt.Errorf("add item: %w", domain.ErrPlayerNotFound)
		}
		return wrapStorageErr("add item", err)
	}
	return nil
}

// GetItem fetches a catalog entry by id. Returns nil when the item does not
// exist.
func (r *InventoryRepository) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	query := `
		SELECT item_id, item_name, item_description, base_value
		FROM items
		WHERE item_id = $1
	`

	var it domain.Item
	err := r.db.QueryRow(ctx, query, itemID).
		Scan(&it.ID, &it.Name, &it.Description, &it.BaseValue)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStorageErr("get item", err)
	}

	return &it, nil
}

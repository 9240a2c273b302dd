package domain

// Item is a catalog entry: static reference data shared across all players
// and read-only to this service.
type Item struct {
	ID          int    `json:"item_id" db:"item_id"`
	Name        string `json:"item_name" db:"item_name"`
	Description string `json:"item_description" db:"item_description"`
	BaseValue   int    `json:"base_value" db:"base_value"`
}

// InventoryItem is one row of a player's inventory: the catalog entry joined
// with the owned quantity.
type InventoryItem struct {
	Item
	Quantity int `json:"quantity" db:"quantity"`
}

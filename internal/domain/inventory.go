package domain

import "time"

type InventoryItem struct {
	ID            string    `json:"id"`
	CatalogItemID uint      `json:"catalogItemId,omitempty"`
	ItemName      string    `json:"itemName"`
	Quantity      int       `json:"quantity"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CatalogItem is one entry of the fixed list of items a user can pick from
// when filling a compartment.
type CatalogItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

package response

import "github.com/vietanh2810/fleet-inventory-api/internal/domain"

type InventoryItems struct {
	Success bool                   `json:"success"`
	Items   []domain.InventoryItem `json:"items"`
}

type InventoryItem struct {
	Success bool                 `json:"success"`
	Item    domain.InventoryItem `json:"item"`
}

type CatalogItems struct {
	Success bool                 `json:"success"`
	Items   []domain.CatalogItem `json:"items"`
}

type Ack struct {
	Success bool `json:"success"`
}

type Analysis struct {
	Success bool                `json:"success"`
	Results domain.VisionResult `json:"results"`
}

type InventoryCheck struct {
	Success         bool                `json:"success"`
	Results         domain.VisionResult `json:"results"`
	InventoryStatus []InventoryStatus   `json:"inventoryStatus"`
}

// InventoryStatus keeps itemsDetected and currentQuantity as separate wire
// fields; both carry the same detected count.
type InventoryStatus struct {
	ItemID          string             `json:"itemId"`
	ItemName        string             `json:"itemName"`
	Quantity        int                `json:"quantity"`
	ItemsDetected   int                `json:"itemsDetected"`
	CurrentQuantity int                `json:"currentQuantity"`
	Status          domain.StockStatus `json:"status" enums:"OutOfStock,LowStock,InStock"`
}

func NewInventoryStatuses(statuses []domain.InventoryStatus) []InventoryStatus {
	out := make([]InventoryStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, InventoryStatus{
			ItemID:          s.ItemID,
			ItemName:        s.ItemName,
			Quantity:        s.Quantity,
			ItemsDetected:   s.Detected,
			CurrentQuantity: s.CurrentQuantity(),
			Status:          s.Status,
		})
	}

	return out
}

package domain

type StockStatus string

const (
	StockStatusOutOfStock StockStatus = "OutOfStock"
	StockStatusLowStock   StockStatus = "LowStock"
	StockStatusInStock    StockStatus = "InStock"
)

// InventoryStatus is the reconciliation outcome for one registry item.
// Detected is both the number of detections and the current quantity;
// no clamping to Quantity is applied.
type InventoryStatus struct {
	ItemID   string      `json:"-"`
	ItemName string      `json:"itemName"`
	Quantity int         `json:"quantity"`
	Detected int         `json:"itemsDetected"`
	Status   StockStatus `json:"status"`
}

func (s InventoryStatus) CurrentQuantity() int {
	return s.Detected
}

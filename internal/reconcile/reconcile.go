// Package reconcile compares what the annotation service saw in a
// compartment photo against the expected inventory.
package reconcile

import (
	"strings"

	"github.com/vietanh2810/fleet-inventory-api/internal/domain"
)

// lowStockRatio is the share of the expected quantity under which an item
// that is still present counts as low stock.
const lowStockRatio = 0.25

type Engine struct {
	matcher Matcher
}

func NewEngine(matcher Matcher) *Engine {
	if matcher == nil {
		matcher = SubstringMatcher{}
	}

	return &Engine{
		matcher: matcher,
	}
}

// Reconcile returns one status per item, in the order of items. It does not
// modify items or result.
func (e *Engine) Reconcile(items []domain.InventoryItem, result domain.VisionResult) []domain.InventoryStatus {
	statuses := make([]domain.InventoryStatus, len(items))
	names := make([]string, len(items))

	for i, item := range items {
		names[i] = strings.ToLower(item.ItemName)
		statuses[i] = domain.InventoryStatus{
			ItemID:   item.ID,
			ItemName: item.ItemName,
			Quantity: item.Quantity,
		}
	}

	if result.Text != "" {
		text := strings.ToLower(result.Text)
		for i := range statuses {
			statuses[i].Detected += e.matcher.CountOccurrences(text, names[i])
		}
	}

	for _, label := range result.Labels {
		description := strings.ToLower(label.Description)
		for i := range statuses {
			if e.matcher.Contains(description, names[i]) {
				statuses[i].Detected++
			}
		}
	}

	for i := range statuses {
		statuses[i].Status = Classify(statuses[i].CurrentQuantity(), statuses[i].Quantity)
	}

	return statuses
}

// Classify maps a current quantity against the expected one. The low stock
// comparison is strict: exactly a quarter of the expected quantity is in stock.
func Classify(current, expected int) domain.StockStatus {
	switch {
	case current == 0:
		return domain.StockStatusOutOfStock
	case float64(current) < float64(expected)*lowStockRatio:
		return domain.StockStatusLowStock
	default:
		return domain.StockStatusInStock
	}
}

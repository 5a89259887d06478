package dao

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInventoryItemNotFound = errors.New("inventory item not found")
)

type InventoryItem struct {
	ID            string
	CatalogItemID uint
	ItemName      string
	Quantity      int
	CreatedAt     time.Time
}

// InventoryDAO keeps the registry in process memory. Items are kept in
// insertion order, which is the order reconciliation reports them in.
type InventoryDAO struct {
	mu    sync.RWMutex
	items []InventoryItem
	now   func() time.Time
}

func NewInventoryDAO() *InventoryDAO {
	return &InventoryDAO{
		now: time.Now,
	}
}

func (d *InventoryDAO) Insert(ctx context.Context, item InventoryItem) (InventoryItem, error) {
	if err := ctx.Err(); err != nil {
		return InventoryItem{}, err
	}

	item.ID = uuid.NewString()
	item.CreatedAt = d.now().UTC()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.items = append(d.items, item)

	return item, nil
}

func (d *InventoryDAO) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i, item := range d.items {
		if item.ID == id {
			d.items = append(d.items[:i:i], d.items[i+1:]...)
			return nil
		}
	}

	return ErrInventoryItemNotFound
}

func (d *InventoryDAO) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.items = nil

	return nil
}

func (d *InventoryDAO) FindByID(ctx context.Context, id string) (InventoryItem, error) {
	if err := ctx.Err(); err != nil {
		return InventoryItem{}, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, item := range d.items {
		if item.ID == id {
			return item, nil
		}
	}

	return InventoryItem{}, ErrInventoryItemNotFound
}

// FindAll returns a copy of the registry; callers may keep it across later writes.
func (d *InventoryDAO) FindAll(ctx context.Context) ([]InventoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	items := make([]InventoryItem, len(d.items))
	copy(items, d.items)

	return items, nil
}

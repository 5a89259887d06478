package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryDAO_InsertKeepsOrder(t *testing.T) {
	d := NewInventoryDAO()
	ctx := context.Background()

	axe, err := d.Insert(ctx, InventoryItem{ItemName: "axe", Quantity: 2})
	require.NoError(t, err)
	kit, err := d.Insert(ctx, InventoryItem{ItemName: "first aid kit", Quantity: 1})
	require.NoError(t, err)

	assert.NotEmpty(t, axe.ID)
	assert.NotEqual(t, axe.ID, kit.ID)

	items, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "axe", items[0].ItemName)
	assert.Equal(t, "first aid kit", items[1].ItemName)
}

func TestInventoryDAO_InsertStampsCreatedAt(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	d := NewInventoryDAO()
	d.now = func() time.Time { return fixed }

	item, err := d.Insert(context.Background(), InventoryItem{ItemName: "axe", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, fixed, item.CreatedAt)
}

func TestInventoryDAO_Delete(t *testing.T) {
	d := NewInventoryDAO()
	ctx := context.Background()

	a, _ := d.Insert(ctx, InventoryItem{ItemName: "a", Quantity: 1})
	b, _ := d.Insert(ctx, InventoryItem{ItemName: "b", Quantity: 1})
	c, _ := d.Insert(ctx, InventoryItem{ItemName: "c", Quantity: 1})

	require.NoError(t, d.Delete(ctx, b.ID))

	items, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, c.ID, items[1].ID)

	err = d.Delete(ctx, b.ID)
	assert.ErrorIs(t, err, ErrInventoryItemNotFound)
}

func TestInventoryDAO_FindAllReturnsCopy(t *testing.T) {
	d := NewInventoryDAO()
	ctx := context.Background()

	a, _ := d.Insert(ctx, InventoryItem{ItemName: "a", Quantity: 1})
	snapshot, err := d.FindAll(ctx)
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, a.ID))
	_, _ = d.Insert(ctx, InventoryItem{ItemName: "b", Quantity: 1})

	require.Len(t, snapshot, 1)
	assert.Equal(t, "a", snapshot[0].ItemName)
}

func TestInventoryDAO_FindByID(t *testing.T) {
	d := NewInventoryDAO()
	ctx := context.Background()

	a, _ := d.Insert(ctx, InventoryItem{ItemName: "a", Quantity: 3})

	found, err := d.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.Quantity)

	_, err = d.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrInventoryItemNotFound)
}

func TestInventoryDAO_DeleteAll(t *testing.T) {
	d := NewInventoryDAO()
	ctx := context.Background()

	_, _ = d.Insert(ctx, InventoryItem{ItemName: "a", Quantity: 1})
	require.NoError(t, d.DeleteAll(ctx))

	items, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestInventoryDAO_CanceledContext(t *testing.T) {
	d := NewInventoryDAO()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Insert(ctx, InventoryItem{ItemName: "a", Quantity: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/fleet-inventory-api/internal/domain"
	"github.com/vietanh2810/fleet-inventory-api/internal/repository/dao"
)

var (
	ErrInventoryItemNotFound = dao.ErrInventoryItemNotFound
)

type InventoryDAO interface {
	Insert(ctx context.Context, item dao.InventoryItem) (dao.InventoryItem, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	FindByID(ctx context.Context, id string) (dao.InventoryItem, error)
	FindAll(ctx context.Context) ([]dao.InventoryItem, error)
}

type InventoryRepository struct {
	dao InventoryDAO
}

func NewInventoryRepository(dao InventoryDAO) *InventoryRepository {
	return &InventoryRepository{
		dao: dao,
	}
}

func (r *InventoryRepository) Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(item))
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *InventoryRepository) DeleteAll(ctx context.Context) error {
	if err := r.dao.DeleteAll(ctx); err != nil {
		return fmt.Errorf("r.dao.DeleteAll -> %w", err)
	}

	return nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id string) (domain.InventoryItem, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *InventoryRepository) FindAll(ctx context.Context) ([]domain.InventoryItem, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return []domain.InventoryItem{}, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	items := make([]domain.InventoryItem, 0, len(found))
	for _, item := range found {
		items = append(items, r.daoToDomain(item))
	}

	return items, nil
}

func (r *InventoryRepository) domainToDao(item domain.InventoryItem) dao.InventoryItem {
	return dao.InventoryItem{
		ID:            item.ID,
		CatalogItemID: item.CatalogItemID,
		ItemName:      item.ItemName,
		Quantity:      item.Quantity,
		CreatedAt:     item.CreatedAt,
	}
}

func (r *InventoryRepository) daoToDomain(item dao.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ID:            item.ID,
		CatalogItemID: item.CatalogItemID,
		ItemName:      item.ItemName,
		Quantity:      item.Quantity,
		CreatedAt:     item.CreatedAt,
	}
}

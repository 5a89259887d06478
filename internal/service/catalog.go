package service

import (
	"errors"

	"github.com/vietanh2810/fleet-inventory-api/internal/domain"
)

var (
	ErrCatalogItemNotFound = errors.New("catalog item not found")
)

// CatalogService serves the fixed list of items a user can pick from.
type CatalogService struct {
	items []domain.CatalogItem
}

func NewCatalogService(items []domain.CatalogItem) *CatalogService {
	copied := make([]domain.CatalogItem, len(items))
	copy(copied, items)

	return &CatalogService{
		items: copied,
	}
}

func (s *CatalogService) ListItems() []domain.CatalogItem {
	items := make([]domain.CatalogItem, len(s.items))
	copy(items, s.items)

	return items
}

func (s *CatalogService) GetItem(id uint) (domain.CatalogItem, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}

	return domain.CatalogItem{}, ErrCatalogItemNotFound
}

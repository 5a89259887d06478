package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vietanh2810/fleet-inventory-api/internal/domain"
	"github.com/vietanh2810/fleet-inventory-api/internal/repository"
)

var (
	ErrInventoryItemNotFound = repository.ErrInventoryItemNotFound
	ErrInvalidInventoryItem  = errors.New("inventory item needs a name and a quantity of at least 1")
)

type InventoryRepository interface {
	Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	FindAll(ctx context.Context) ([]domain.InventoryItem, error)
}

type RegistryObserver interface {
	SetRegistrySize(n int)
}

// InventoryService owns the registry of expected items for a compartment.
type InventoryService struct {
	repo     InventoryRepository
	catalog  *CatalogService
	observer RegistryObserver
}

func NewInventoryService(repo InventoryRepository, catalog *CatalogService, observer RegistryObserver) *InventoryService {
	return &InventoryService{
		repo:     repo,
		catalog:  catalog,
		observer: observer,
	}
}

// AddItem registers an expected item. When catalogItemID is set the name is
// taken from the catalog and itemName is ignored.
func (s *InventoryService) AddItem(ctx context.Context, catalogItemID uint, itemName string, quantity int) (domain.InventoryItem, error) {
	if catalogItemID != 0 {
		catalogItem, err := s.catalog.GetItem(catalogItemID)
		if err != nil {
			return domain.InventoryItem{}, fmt.Errorf("s.catalog.GetItem -> %w", err)
		}
		itemName = catalogItem.Name
	}

	itemName = strings.TrimSpace(itemName)
	if itemName == "" || quantity < 1 {
		return domain.InventoryItem{}, ErrInvalidInventoryItem
	}

	created, err := s.repo.Create(ctx, domain.InventoryItem{
		CatalogItemID: catalogItemID,
		ItemName:      itemName,
		Quantity:      quantity,
	})
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.refreshRegistrySize(ctx)

	return created, nil
}

func (s *InventoryService) RemoveItem(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	s.refreshRegistrySize(ctx)

	return nil
}

func (s *InventoryService) Clear(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("s.repo.DeleteAll -> %w", err)
	}

	s.refreshRegistrySize(ctx)

	return nil
}

// ListItems returns a snapshot of the registry in insertion order.
func (s *InventoryService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return []domain.InventoryItem{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return items, nil
}

func (s *InventoryService) refreshRegistrySize(ctx context.Context) {
	if s.observer == nil {
		return
	}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return
	}
	s.observer.SetRegistrySize(len(items))
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vietanh2810/fleet-inventory-api/internal/domain"
	"github.com/vietanh2810/fleet-inventory-api/internal/metrics"
	"github.com/vietanh2810/fleet-inventory-api/internal/vision"
)

var (
	ErrInvalidImage = vision.ErrInvalidInput
)

type VisionClient interface {
	Annotate(ctx context.Context, img []byte) (domain.VisionResult, error)
}

type Reconciler interface {
	Reconcile(items []domain.InventoryItem, result domain.VisionResult) []domain.InventoryStatus
}

type AnalysisObserver interface {
	ObserveAnalysis(outcome string, elapsed time.Duration)
	ObserveStatuses(statuses []domain.InventoryStatus)
}

type InventoryLister interface {
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
}

type AnalysisService struct {
	vision     VisionClient
	reconciler Reconciler
	inventory  InventoryLister
	observer   AnalysisObserver
}

func NewAnalysisService(vision VisionClient, reconciler Reconciler, inventory InventoryLister, observer AnalysisObserver) *AnalysisService {
	return &AnalysisService{
		vision:     vision,
		reconciler: reconciler,
		inventory:  inventory,
		observer:   observer,
	}
}

// AnalyzeImage runs the image through the annotation service once.
func (s *AnalysisService) AnalyzeImage(ctx context.Context, img []byte) (domain.VisionResult, error) {
	start := time.Now()

	result, err := s.vision.Annotate(ctx, img)
	s.observe(err, time.Since(start))
	if err != nil {
		return domain.VisionResult{}, fmt.Errorf("s.vision.Annotate -> %w", err)
	}

	return result, nil
}

// CheckInventory analyzes img and reconciles the result against the
// registry as it was when the annotation finished.
func (s *AnalysisService) CheckInventory(ctx context.Context, img []byte) (domain.VisionResult, []domain.InventoryStatus, error) {
	result, err := s.AnalyzeImage(ctx, img)
	if err != nil {
		return domain.VisionResult{}, nil, err
	}

	items, err := s.inventory.ListItems(ctx)
	if err != nil {
		return domain.VisionResult{}, nil, fmt.Errorf("s.inventory.ListItems -> %w", err)
	}

	statuses := s.reconciler.Reconcile(items, result)
	if s.observer != nil {
		s.observer.ObserveStatuses(statuses)
	}

	return result, statuses, nil
}

func (s *AnalysisService) observe(err error, elapsed time.Duration) {
	if s.observer == nil {
		return
	}

	outcome := metrics.OutcomeSuccess
	switch {
	case errors.Is(err, vision.ErrInvalidInput):
		outcome = metrics.OutcomeInvalidInput
	case err != nil:
		outcome = metrics.OutcomeUpstream
	}
	s.observer.ObserveAnalysis(outcome, elapsed)
}

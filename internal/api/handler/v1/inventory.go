package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/fleet-inventory-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/fleet-inventory-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/fleet-inventory-api/internal/domain"
	"github.com/vietanh2810/fleet-inventory-api/internal/service"
)

type InventoryService interface {
	AddItem(ctx context.Context, catalogItemID uint, itemName string, quantity int) (domain.InventoryItem, error)
	RemoveItem(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
}

type CatalogService interface {
	ListItems() []domain.CatalogItem
}

type InventoryHandler struct {
	svc     InventoryService
	catalog CatalogService
}

func NewInventoryHandler(svc InventoryService, catalog CatalogService) *InventoryHandler {
	return &InventoryHandler{
		svc:     svc,
		catalog: catalog,
	}
}

// HandleGetCatalog godoc
// @Summary      List selectable items
// @Description  Returns the fixed list of items that can be registered for a compartment
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.CatalogItems
// @Router       /catalog [get]
func (h *InventoryHandler) HandleGetCatalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.CatalogItems{
		Success: true,
		Items:   h.catalog.ListItems(),
	})
}

// HandleGetInventory godoc
// @Summary      List expected inventory
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  response.InventoryItems
// @Failure      500  {object}  response.Err
// @Router       /inventory [get]
func (h *InventoryHandler) HandleGetInventory(ctx *gin.Context) {
	items, err := h.svc.ListItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetInventory -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.InventoryItems{
		Success: true,
		Items:   items,
	})
}

// HandleAddInventoryItem godoc
// @Summary      Register an expected item
// @Description  Adds an item either by catalog ID or by free-form name, with the expected quantity
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateInventoryItemRequest  true  "Item and expected quantity"
// @Success      201    {object}  response.InventoryItem
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /inventory [post]
func (h *InventoryHandler) HandleAddInventoryItem(ctx *gin.Context) {
	var input request.CreateInventoryItemRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.AddItem(ctx.Request.Context(), input.CatalogItemID, input.ItemName, input.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrCatalogItemNotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrCatalogItemNotFound))
			return
		}
		if errors.Is(err, service.ErrInvalidInventoryItem) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidInventoryItem))
			return
		}

		err = fmt.Errorf("HandleAddInventoryItem -> h.svc.AddItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.InventoryItem{
		Success: true,
		Item:    item,
	})
}

// HandleRemoveInventoryItem godoc
// @Summary      Remove an expected item
// @Tags         inventory
// @Produce      json
// @Param        itemID  path      string  true  "Inventory item ID"
// @Success      200     {object}  response.Ack
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /inventory/{itemID} [delete]
func (h *InventoryHandler) HandleRemoveInventoryItem(ctx *gin.Context) {
	itemID := ctx.Param("itemID")

	if err := h.svc.RemoveItem(ctx.Request.Context(), itemID); err != nil {
		if errors.Is(err, service.ErrInventoryItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("inventory item", "id", itemID))
			return
		}

		err = fmt.Errorf("HandleRemoveInventoryItem -> h.svc.RemoveItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Ack{Success: true})
}

// HandleClearInventory godoc
// @Summary      Remove every expected item
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  response.Ack
// @Failure      500  {object}  response.Err
// @Router       /inventory [delete]
func (h *InventoryHandler) HandleClearInventory(ctx *gin.Context) {
	if err := h.svc.Clear(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("HandleClearInventory -> h.svc.Clear -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Ack{Success: true})
}

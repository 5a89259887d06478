package request

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	errMissingItem = errors.New("either catalogItemId or itemName is required")
)

type CreateInventoryItemRequest struct {
	CatalogItemID uint   `json:"catalogItemId" example:"2"`
	ItemName      string `json:"itemName" example:"extinguisher"`
	Quantity      int    `json:"quantity" example:"4"`
}

func (req *CreateInventoryItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ItemName, validation.Length(0, 100), validation.By(req.requireItem)),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}

func (req *CreateInventoryItemRequest) requireItem(interface{}) error {
	if req.CatalogItemID == 0 && strings.TrimSpace(req.ItemName) == "" {
		return errMissingItem
	}

	return nil
}

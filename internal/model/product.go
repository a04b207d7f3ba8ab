package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	CategoryID  uuid.UUID       `json:"categoryId" validate:"uuid_required"`
	SKU         string          `json:"sku" validate:"required"`
	MinStock    int             `json:"minStock" validate:"gte=0"` // Low-stock alert threshold (inclusive)
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price" validate:"decimal_gte0"`
	Barcode     *string         `json:"barcode,omitempty"`
}

// ProductStock pairs a product with its computed stock
type ProductStock struct {
	ProductID uuid.UUID `json:"productId"`
	Stock     int       `json:"stock"`
}

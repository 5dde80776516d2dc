package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductCreate struct {
	Code        string          `json:"code" validate:"required,max=50"`
	Name        string          `json:"name" validate:"required,max=200"`
	Description *string         `json:"description,omitempty"`
	Category    string          `json:"category" validate:"required,max=100"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int             `json:"stock" validate:"gte=0"`
	MinStock    int             `json:"min_stock" validate:"gte=0"`
}

// ProductUpdate carries only the fields present in the request body.
type ProductUpdate struct {
	Code        *string          `json:"code,omitempty" validate:"omitempty,max=50"`
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,max=100"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	MinStock    *int             `json:"min_stock,omitempty" validate:"omitempty,gte=0"`
	Active      *bool            `json:"active,omitempty"`
}

type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	StockStatus string          `json:"stock_status"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ProductFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	LowStock bool   `form:"low_stock"`
	// Available keeps only products that can actually be sold (stock > 0).
	Available bool `form:"available"`
	Page      int  `form:"page,default=1" validate:"gte=1"`
	PageSize  int  `form:"page_size,default=50" validate:"gte=1,lte=200"`
}

type StockAdjust struct {
	// Delta may be negative; the resulting stock must stay >= 0.
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason" validate:"max=255"`
}

type SuggestedCodeResponse struct {
	Code string `json:"code"`
}

type SoldLast7DaysResponse struct {
	ProductIDs []uuid.UUID `json:"product_ids"`
}

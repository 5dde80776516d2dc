package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeCreate registers a stock purchase: the product's stock goes up and
// a movement row records price, quantity and provider.
type IncomeCreate struct {
	ProductID    uuid.UUID       `json:"product_id" validate:"required"`
	Quantity     int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice    decimal.Decimal `json:"unit_price" validate:"required"`
	ProviderName *string         `json:"provider_name,omitempty" validate:"omitempty,max=200"`
	Description  string          `json:"description" validate:"max=255"`
}

type MovementResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Category     string          `json:"category"`
	MovementType string          `json:"movement_type"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	ProviderName *string         `json:"provider_name,omitempty"`
	SaleID       *uuid.UUID      `json:"sale_id,omitempty"`
	SaleNumber   *string         `json:"sale_number,omitempty"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
}

type MovementFilter struct {
	Type     string     `form:"type" validate:"omitempty,oneof=income sale"`
	Category string     `form:"category"`
	Provider string     `form:"provider"`
	Search   string     `form:"search"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	Page     int        `form:"page,default=1" validate:"gte=1"`
	PageSize int        `form:"page_size,default=50" validate:"gte=1,lte=200"`
}

type MovementSummary struct {
	IncomeCount int             `json:"income_count"`
	IncomeTotal decimal.Decimal `json:"income_total"`
	SaleCount   int             `json:"sale_count"`
	SaleTotal   decimal.Decimal `json:"sale_total"`
}

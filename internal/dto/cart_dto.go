package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kioskopos/internal/cart"
)

type CartAddRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartPriceRequest struct {
	Price decimal.Decimal `json:"price" validate:"required"`
}

type CartResponse struct {
	Lines []cart.Line     `json:"lines"`
	Total decimal.Decimal `json:"total"`
	// SuggestedSplit pre-fills the payment form: the full total on cash
	// while the operator has not entered a breakdown.
	SuggestedSplit cart.Split `json:"suggested_split"`
}

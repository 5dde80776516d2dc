package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentEntry struct {
	Method string          `json:"method" validate:"required,oneof=efectivo transferencia qr expensas"`
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// CompleteSaleRequest settles the operator's current cart. Payments may be
// omitted entirely; the sale then defaults to a single all-cash payment.
type CompleteSaleRequest struct {
	Payments     []PaymentEntry  `json:"payments" validate:"omitempty,dive"`
	CustomerName *string         `json:"customer_name,omitempty" validate:"omitempty,max=200"`
	Lot          *string         `json:"lot,omitempty" validate:"omitempty,max=50"`
	Discount     decimal.Decimal `json:"discount"`
}

type SaleItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type SalePaymentResponse struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

type SaleResponse struct {
	ID            uuid.UUID             `json:"id"`
	SaleNumber    string                `json:"sale_number"`
	UserID        uuid.UUID             `json:"user_id"`
	UserName      string                `json:"user_name"`
	ShiftID       uuid.UUID             `json:"shift_id"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	Discount      decimal.Decimal       `json:"discount"`
	Total         decimal.Decimal       `json:"total"`
	PrimaryMethod string                `json:"payment_method"`
	CustomerName  *string               `json:"customer_name,omitempty"`
	Lot           *string               `json:"lot,omitempty"`
	Items         []SaleItemResponse    `json:"items"`
	Payments      []SalePaymentResponse `json:"payments"`
	CreatedAt     time.Time             `json:"created_at"`
}

type SaleFilter struct {
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	UserID   *uuid.UUID `form:"user_id"`
	Page     int        `form:"page,default=1" validate:"gte=1"`
	PageSize int        `form:"page_size,default=50" validate:"gte=1,lte=200"`
}

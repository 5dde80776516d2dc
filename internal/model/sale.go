package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment channels. Sales settle against the first four; "tarjeta" is
// accepted for manual cash-ledger movements only.
const (
	MethodEfectivo      = "efectivo"
	MethodTransferencia = "transferencia"
	MethodQR            = "qr"
	MethodExpensas      = "expensas"
	MethodTarjeta       = "tarjeta"
)

// Sale is an immutable record created exactly once at settlement.
// The payments slice is the authoritative breakdown; any single
// "payment method" shown to consumers is derived on read (PrimaryMethod),
// never persisted.
type Sale struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleNumber   string          `gorm:"uniqueIndex;not null"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null"`
	UserName     string          `gorm:"not null"`
	ShiftID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Discount     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CustomerName *string
	CustomerLot  *string
	CreatedAt    time.Time

	Items    []SaleItem    `gorm:"foreignKey:SaleID"`
	Payments []SalePayment `gorm:"foreignKey:SaleID"`
}

func (Sale) TableName() string { return "sales" }

// PrimaryMethod derives the representative channel for legacy one-method
// consumers: efectivo when any payment line is cash, else the first
// payment's channel.
func (s *Sale) PrimaryMethod() string {
	if len(s.Payments) == 0 {
		return MethodEfectivo
	}
	for _, p := range s.Payments {
		if p.Method == MethodEfectivo {
			return MethodEfectivo
		}
	}
	return s.Payments[0].Method
}

// SaleItem is a line snapshot: product name and price are copied at
// settlement so later catalog edits never rewrite sale history.
type SaleItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductName string          `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (SaleItem) TableName() string { return "sale_items" }

// SalePayment is one channel/amount pair of the settlement breakdown.
type SalePayment struct {
	ID     uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Method string          `gorm:"type:varchar(20);not null"`
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (SalePayment) TableName() string { return "sale_payments" }

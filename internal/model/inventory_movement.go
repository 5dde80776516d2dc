package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MovementIncome = "income"
	MovementSale   = "sale"
)

// InventoryMovement is one row of the append-only inventory log.
// Product name and category are snapshots taken when the row is written.
// Income rows carry a provider; sale rows carry the sale back-reference.
type InventoryMovement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductName string    `gorm:"not null"`
	Category    string    `gorm:"not null;default:''"`
	// MovementType: "income" (stock received) | "sale" (stock sold)
	MovementType string          `gorm:"type:varchar(10);index;not null"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ProviderName *string
	SaleID       *uuid.UUID `gorm:"type:uuid;index"`
	SaleNumber   *string
	Description  string `gorm:"not null;default:''"`
	CreatedAt    time.Time
}

func (InventoryMovement) TableName() string { return "inventory_movements" }

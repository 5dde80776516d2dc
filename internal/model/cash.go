package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TxIncome  = "income"
	TxExpense = "expense"
)

// CategorySale marks cash rows generated automatically by sale settlement.
const CategorySale = "venta"

// Shift is one period of cash-drawer custody by a single operator.
// Estado: "abierta" | "cerrada". Closing records the counted cash and the
// advisory reconciliation result; the counted figure is always accepted.
type Shift struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	UserName    string          `gorm:"not null"`
	OpeningCash decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status      string          `gorm:"type:varchar(20);not null;default:'abierta'"`
	StartDate   time.Time
	EndDate     *time.Time
	// Set at close
	ClosingCash    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	ExpectedCash   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Difference     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Reconciliation *string          `gorm:"type:varchar(20)"` // cuadrada | sobrante | faltante
}

func (Shift) TableName() string { return "shifts" }

// CashTransaction is an immutable event in the cash-drawer ledger.
// One row per non-zero payment channel is appended at sale settlement
// (category "venta"); operators append manual rows for tips, withdrawals
// and adjustments. Rows are never updated or deleted.
type CashTransaction struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShiftID uuid.UUID `gorm:"type:uuid;index;not null"`
	// Type: "income" | "expense"
	Type          string          `gorm:"type:varchar(10);not null"`
	Category      string          `gorm:"not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Description   string          `gorm:"not null;default:''"`
	SaleID        *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt     time.Time       `gorm:"index"`
}

func (CashTransaction) TableName() string { return "cash_transactions" }

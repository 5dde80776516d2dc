package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OpenShiftRequest struct {
	OpeningCash decimal.Decimal `json:"opening_cash" validate:"required"`
}

type CloseShiftRequest struct {
	ClosingCash decimal.Decimal `json:"closing_cash" validate:"required"`
}

type ShiftResponse struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"user_id"`
	UserName       string           `json:"user_name"`
	OpeningCash    decimal.Decimal  `json:"opening_cash"`
	Status         string           `json:"status"`
	StartDate      time.Time        `json:"start_date"`
	EndDate        *time.Time       `json:"end_date,omitempty"`
	ClosingCash    *decimal.Decimal `json:"closing_cash,omitempty"`
	ExpectedCash   *decimal.Decimal `json:"expected_cash,omitempty"`
	Difference     *decimal.Decimal `json:"difference,omitempty"`
	Reconciliation *string          `json:"reconciliation,omitempty"`
}

type TransactionCreate struct {
	Type          string          `json:"type" validate:"required,oneof=income expense"`
	Category      string          `json:"category" validate:"required,max=100"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=efectivo transferencia qr expensas tarjeta"`
	Description   string          `json:"description" validate:"max=255"`
}

type TransactionResponse struct {
	ID            uuid.UUID       `json:"id"`
	ShiftID       uuid.UUID       `json:"shift_id"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Description   string          `json:"description"`
	SaleID        *uuid.UUID      `json:"sale_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// LedgerFilter selects transactions by named period or custom range.
// Custom ranges are inclusive: To is extended to end-of-day in the
// business timezone.
type LedgerFilter struct {
	Period string     `form:"period,default=today" validate:"oneof=today week month previous_month all custom"`
	From   *time.Time `form:"from" time_format:"2006-01-02"`
	To     *time.Time `form:"to" time_format:"2006-01-02"`
}

type LedgerSummary struct {
	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
	Balance      decimal.Decimal `json:"balance"`
	CashIncome   decimal.Decimal `json:"cash_income"`
	CashExpense  decimal.Decimal `json:"cash_expense"`
	InBox        decimal.Decimal `json:"in_box"`
	// Net income minus expense per payment channel, for the dashboard.
	ByMethod map[string]decimal.Decimal `json:"by_method"`
}

type LedgerResponse struct {
	Summary      LedgerSummary         `json:"summary"`
	Transactions []TransactionResponse `json:"transactions"`
}

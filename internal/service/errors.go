package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidState: the operation's precondition does not hold
	// (empty cart, no open shift, shift already closed, inactive product).
	ErrInvalidState = errors.New("operación no permitida en el estado actual")

	// ErrMissingCustomerInfo: non-cash payments must be attributable to a
	// customer name and lot.
	ErrMissingCustomerInfo = errors.New("las ventas con pago no efectivo requieren nombre de cliente y lote")

	// ErrDuplicateCode: the product code is already taken by another product.
	ErrDuplicateCode = errors.New("el código de producto ya existe")

	// ErrNotFound: the referenced entity does not exist.
	ErrNotFound = errors.New("no encontrado")

	// ErrForbidden: the caller's role does not allow the operation.
	ErrForbidden = errors.New("operación no autorizada")
)

// InputError is an operator-facing validation failure detected past DTO
// binding (negative amounts, zero quantities). Handlers answer it with
// 400 and the message verbatim.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

func errInput(msg string) error { return &InputError{Msg: msg} }

// PaymentMismatchError reports that the payment breakdown does not add up
// to the sale total beyond the accepted rounding tolerance.
type PaymentMismatchError struct {
	Paid  decimal.Decimal
	Total decimal.Decimal
}

func (e *PaymentMismatchError) Error() string {
	return fmt.Sprintf("los pagos suman %s pero el total es %s", e.Paid.StringFixed(2), e.Total.StringFixed(2))
}

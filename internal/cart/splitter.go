package cart

import (
	"strings"

	"github.com/shopspring/decimal"

	"kioskopos/internal/model"
)

// paymentEpsilon: channel amounts at or below this are treated as absent
// (keyboard noise / cleared fields), not as real payments.
var paymentEpsilon = decimal.NewFromFloat(0.009)

// Payment is one channel/amount pair of a settlement breakdown.
type Payment struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// Split holds the operator-entered amount per payment channel.
// The zero value means "nothing entered yet".
type Split struct {
	Efectivo      decimal.Decimal `json:"efectivo"`
	Transferencia decimal.Decimal `json:"transferencia"`
	QR            decimal.Decimal `json:"qr"`
	Expensas      decimal.Decimal `json:"expensas"`
}

// ParseAmount reads an operator-typed amount accepting both "." and ","
// as decimal separator. Unparseable input counts as zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Sum is the total entered across the four channels.
func (s *Split) Sum() decimal.Decimal {
	return s.Efectivo.Add(s.Transferencia).Add(s.QR).Add(s.Expensas)
}

// AutoFill applies the default-entry rules when the cart total changes:
// a fresh positive total with nothing entered defaults to all-cash, and a
// total back at zero resets any leftover amounts (cart cleared/abandoned).
func (s *Split) AutoFill(total decimal.Decimal) {
	sum := s.Sum()
	if total.IsPositive() && sum.IsZero() {
		s.Efectivo = total
	}
	if total.IsZero() && !sum.IsZero() {
		*s = Split{}
	}
}

// BuildPayments turns the split into the settlement payment list: channels
// above the epsilon, in fixed order. An empty result falls back to a single
// all-cash payment for the full total, mirroring the entry default.
func (s *Split) BuildPayments(total decimal.Decimal) []Payment {
	candidates := []Payment{
		{Method: model.MethodEfectivo, Amount: s.Efectivo},
		{Method: model.MethodTransferencia, Amount: s.Transferencia},
		{Method: model.MethodQR, Amount: s.QR},
		{Method: model.MethodExpensas, Amount: s.Expensas},
	}
	payments := make([]Payment, 0, len(candidates))
	for _, p := range candidates {
		if p.Amount.GreaterThan(paymentEpsilon) {
			payments = append(payments, p)
		}
	}
	if len(payments) == 0 {
		payments = append(payments, Payment{Method: model.MethodEfectivo, Amount: total})
	}
	return payments
}

// HasNonCash reports whether any payment uses a channel other than cash.
// Non-cash payments must be attributable to a customer/lot.
func HasNonCash(payments []Payment) bool {
	for _, p := range payments {
		if p.Method != model.MethodEfectivo {
			return true
		}
	}
	return false
}

// PaymentsTotal sums the payment list.
func PaymentsTotal(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

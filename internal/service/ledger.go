package service

import (
	"time"

	"github.com/shopspring/decimal"

	"kioskopos/internal/model"
)

// Pure ledger arithmetic over immutable cash transactions. Everything here
// is derived on read; no aggregate is ever stored.

// Closings within this distance of the expected cash count as balanced.
var reconcileTolerance = decimal.NewFromFloat(0.01)

// Reconciliation outcomes recorded on shift close.
const (
	ReconBalanced  = "cuadrada"
	ReconSurplus   = "sobrante"
	ReconShortfall = "faltante"
)

func IncomeTotal(txs []model.CashTransaction) decimal.Decimal {
	return sumWhere(txs, func(t *model.CashTransaction) bool { return t.Type == model.TxIncome })
}

func ExpenseTotal(txs []model.CashTransaction) decimal.Decimal {
	return sumWhere(txs, func(t *model.CashTransaction) bool { return t.Type == model.TxExpense })
}

// Balance is overall income minus expense across all payment channels.
func Balance(txs []model.CashTransaction) decimal.Decimal {
	return IncomeTotal(txs).Sub(ExpenseTotal(txs))
}

func CashIncome(txs []model.CashTransaction) decimal.Decimal {
	return sumWhere(txs, func(t *model.CashTransaction) bool {
		return t.Type == model.TxIncome && t.PaymentMethod == model.MethodEfectivo
	})
}

func CashExpense(txs []model.CashTransaction) decimal.Decimal {
	return sumWhere(txs, func(t *model.CashTransaction) bool {
		return t.Type == model.TxExpense && t.PaymentMethod == model.MethodEfectivo
	})
}

// InBox is the net cash movement of the period, ignoring non-cash channels.
func InBox(txs []model.CashTransaction) decimal.Decimal {
	return CashIncome(txs).Sub(CashExpense(txs))
}

// BalanceByMethod nets income minus expense per payment channel.
func BalanceByMethod(txs []model.CashTransaction) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for i := range txs {
		t := &txs[i]
		cur, ok := out[t.PaymentMethod]
		if !ok {
			cur = decimal.Zero
		}
		if t.Type == model.TxExpense {
			out[t.PaymentMethod] = cur.Sub(t.Amount)
		} else {
			out[t.PaymentMethod] = cur.Add(t.Amount)
		}
	}
	return out
}

// ExpectedCash is what the drawer should physically hold: the opening float
// plus the net cash movement of the shift. Transfers, QR and expensas never
// enter the drawer.
func ExpectedCash(openingCash decimal.Decimal, txs []model.CashTransaction) decimal.Decimal {
	return openingCash.Add(InBox(txs))
}

// Reconcile compares the counted drawer against the expected figure. The
// result is advisory: the counted amount is recorded as-is either way.
func Reconcile(expected, counted decimal.Decimal) (difference decimal.Decimal, outcome string) {
	difference = counted.Sub(expected)
	switch {
	case difference.Abs().LessThan(reconcileTolerance):
		outcome = ReconBalanced
	case difference.IsPositive():
		outcome = ReconSurplus
	default:
		outcome = ReconShortfall
	}
	return difference, outcome
}

func sumWhere(txs []model.CashTransaction, keep func(*model.CashTransaction) bool) decimal.Decimal {
	total := decimal.Zero
	for i := range txs {
		if keep(&txs[i]) {
			total = total.Add(txs[i].Amount)
		}
	}
	return total
}

// PeriodRange resolves a named period to a half-open [from, to) interval in
// the business timezone. Weeks start on Monday. The custom period clamps to
// end-of-day on the "to" date so the range is inclusive.
func PeriodRange(period string, from, to *time.Time, loc *time.Location, now time.Time) (time.Time, time.Time, bool) {
	now = now.In(loc)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch period {
	case "today":
		return startOfDay, startOfDay.AddDate(0, 0, 1), true
	case "week":
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday belongs to the week that started the previous Monday
		}
		monday := startOfDay.AddDate(0, 0, -(weekday - 1))
		return monday, monday.AddDate(0, 0, 7), true
	case "month":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return first, first.AddDate(0, 1, 0), true
	case "previous_month":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return first.AddDate(0, -1, 0), first, true
	case "custom":
		if from == nil || to == nil {
			return time.Time{}, time.Time{}, false
		}
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
		return f, t, true
	default: // "all"
		return time.Time{}, time.Time{}, false
	}
}

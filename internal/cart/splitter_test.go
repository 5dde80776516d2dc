package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kioskopos/internal/cart"
	"kioskopos/internal/model"
)

func TestParseAmountAcceptsComma(t *testing.T) {
	assert.True(t, cart.ParseAmount("1234,56").Equal(decimal.NewFromFloat(1234.56)))
	assert.True(t, cart.ParseAmount("1234.56").Equal(decimal.NewFromFloat(1234.56)))
}

func TestParseAmountGarbageIsZero(t *testing.T) {
	assert.True(t, cart.ParseAmount("abc").IsZero())
	assert.True(t, cart.ParseAmount("").IsZero())
	assert.True(t, cart.ParseAmount("  ").IsZero())
}

func TestAutoFillDefaultsToAllCash(t *testing.T) {
	var s cart.Split
	total := decimal.NewFromInt(2500)

	s.AutoFill(total)

	assert.True(t, s.Efectivo.Equal(total))
	assert.True(t, s.Sum().Equal(total))
}

func TestAutoFillDoesNotOverwriteManualEntry(t *testing.T) {
	s := cart.Split{QR: decimal.NewFromInt(1000)}

	s.AutoFill(decimal.NewFromInt(2500))

	assert.True(t, s.Efectivo.IsZero())
	assert.True(t, s.QR.Equal(decimal.NewFromInt(1000)))
}

func TestAutoFillResetsWhenTotalReturnsToZero(t *testing.T) {
	s := cart.Split{Efectivo: decimal.NewFromInt(2500)}

	s.AutoFill(decimal.Zero)

	assert.True(t, s.Sum().IsZero())
}

func TestBuildPaymentsFiltersEpsilon(t *testing.T) {
	s := cart.Split{
		Efectivo:      decimal.NewFromInt(1000),
		Transferencia: decimal.NewFromFloat(0.009), // keyboard noise
		QR:            decimal.NewFromInt(500),
	}

	payments := s.BuildPayments(decimal.NewFromInt(1500))

	require.Len(t, payments, 2)
	assert.Equal(t, model.MethodEfectivo, payments[0].Method)
	assert.Equal(t, model.MethodQR, payments[1].Method)
}

func TestBuildPaymentsFallbackAllCash(t *testing.T) {
	var s cart.Split
	total := decimal.NewFromInt(3200)

	payments := s.BuildPayments(total)

	require.Len(t, payments, 1)
	assert.Equal(t, model.MethodEfectivo, payments[0].Method)
	assert.True(t, payments[0].Amount.Equal(total))
}

func TestBuildPaymentsFixedOrder(t *testing.T) {
	s := cart.Split{
		Expensas:      decimal.NewFromInt(100),
		Transferencia: decimal.NewFromInt(200),
	}

	payments := s.BuildPayments(decimal.NewFromInt(300))

	require.Len(t, payments, 2)
	assert.Equal(t, model.MethodTransferencia, payments[0].Method)
	assert.Equal(t, model.MethodExpensas, payments[1].Method)
}

func TestHasNonCash(t *testing.T) {
	cash := []cart.Payment{{Method: model.MethodEfectivo, Amount: decimal.NewFromInt(100)}}
	mixed := []cart.Payment{
		{Method: model.MethodEfectivo, Amount: decimal.NewFromInt(100)},
		{Method: model.MethodQR, Amount: decimal.NewFromInt(50)},
	}

	assert.False(t, cart.HasNonCash(cash))
	assert.True(t, cart.HasNonCash(mixed))
}

func TestPaymentsTotal(t *testing.T) {
	payments := []cart.Payment{
		{Method: model.MethodEfectivo, Amount: decimal.NewFromFloat(100.50)},
		{Method: model.MethodQR, Amount: decimal.NewFromFloat(49.50)},
	}
	assert.True(t, cart.PaymentsTotal(payments).Equal(decimal.NewFromInt(150)))
}

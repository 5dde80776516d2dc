package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kioskopos/internal/dto"
	"kioskopos/internal/model"
	"kioskopos/internal/service"
)

type cashFixture struct {
	svc  service.CashService
	user *model.User
	cash *memCashRepo
}

func newCashFixture(t *testing.T) *cashFixture {
	t.Helper()
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)

	user := &model.User{Username: "cajero1", Name: "Cajera Uno", Rol: "cajero", Active: true}
	cash := newMemCashRepo()
	return &cashFixture{
		svc:  service.NewCashService(cash, newMemUserRepo(user), loc),
		user: user,
		cash: cash,
	}
}

func (f *cashFixture) open(t *testing.T, opening int64) *dto.ShiftResponse {
	t.Helper()
	resp, err := f.svc.OpenShift(context.Background(), f.user.ID, dto.OpenShiftRequest{
		OpeningCash: decimal.NewFromInt(opening),
	})
	require.NoError(t, err)
	return resp
}

func TestOpenShift(t *testing.T) {
	f := newCashFixture(t)

	resp := f.open(t, 500)

	assert.Equal(t, "abierta", resp.Status)
	assert.Equal(t, f.user.Name, resp.UserName)
	assert.True(t, resp.OpeningCash.Equal(decimal.NewFromInt(500)))
	assert.Nil(t, resp.ClosingCash)
}

func TestOpenShiftRejectsSecondOpen(t *testing.T) {
	f := newCashFixture(t)
	f.open(t, 500)

	_, err := f.svc.OpenShift(context.Background(), f.user.ID, dto.OpenShiftRequest{
		OpeningCash: decimal.NewFromInt(100),
	})

	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func TestOpenShiftRejectsNegativeOpening(t *testing.T) {
	f := newCashFixture(t)

	_, err := f.svc.OpenShift(context.Background(), f.user.ID, dto.OpenShiftRequest{
		OpeningCash: decimal.NewFromInt(-1),
	})

	assert.Error(t, err)
}

func TestAddTransactionRequiresOpenShift(t *testing.T) {
	f := newCashFixture(t)

	_, err := f.svc.AddTransaction(context.Background(), f.user.ID, dto.TransactionCreate{
		Type:          model.TxIncome,
		Category:      "varios",
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: model.MethodEfectivo,
	})

	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func TestAddTransactionRejectsNonPositiveAmount(t *testing.T) {
	f := newCashFixture(t)
	f.open(t, 500)

	_, err := f.svc.AddTransaction(context.Background(), f.user.ID, dto.TransactionCreate{
		Type:          model.TxExpense,
		Category:      "varios",
		Amount:        decimal.Zero,
		PaymentMethod: model.MethodEfectivo,
	})

	assert.Error(t, err)
}

func TestCloseShiftBalanced(t *testing.T) {
	ctx := context.Background()
	f := newCashFixture(t)
	f.open(t, 500)

	_, err := f.svc.AddTransaction(ctx, f.user.ID, dto.TransactionCreate{
		Type: model.TxIncome, Category: "venta", Amount: decimal.NewFromInt(1200), PaymentMethod: model.MethodEfectivo,
	})
	require.NoError(t, err)
	_, err = f.svc.AddTransaction(ctx, f.user.ID, dto.TransactionCreate{
		Type: model.TxExpense, Category: "proveedor", Amount: decimal.NewFromInt(300), PaymentMethod: model.MethodEfectivo,
	})
	require.NoError(t, err)
	// Non-cash income must not move the expected drawer figure
	_, err = f.svc.AddTransaction(ctx, f.user.ID, dto.TransactionCreate{
		Type: model.TxIncome, Category: "venta", Amount: decimal.NewFromInt(9000), PaymentMethod: model.MethodQR,
	})
	require.NoError(t, err)

	resp, err := f.svc.CloseShift(ctx, f.user.ID, dto.CloseShiftRequest{
		ClosingCash: decimal.NewFromInt(1400),
	})
	require.NoError(t, err)

	assert.Equal(t, "cerrada", resp.Status)
	require.NotNil(t, resp.ExpectedCash)
	assert.True(t, resp.ExpectedCash.Equal(decimal.NewFromInt(1400)))
	require.NotNil(t, resp.Difference)
	assert.True(t, resp.Difference.IsZero())
	require.NotNil(t, resp.Reconciliation)
	assert.Equal(t, service.ReconBalanced, *resp.Reconciliation)
	require.NotNil(t, resp.EndDate)
}

func TestCloseShiftAcceptsShortfallAsCounted(t *testing.T) {
	ctx := context.Background()
	f := newCashFixture(t)
	f.open(t, 500)

	resp, err := f.svc.CloseShift(ctx, f.user.ID, dto.CloseShiftRequest{
		ClosingCash: decimal.NewFromInt(450),
	})
	require.NoError(t, err)

	// The counted figure stands; the gap is only recorded
	require.NotNil(t, resp.ClosingCash)
	assert.True(t, resp.ClosingCash.Equal(decimal.NewFromInt(450)))
	require.NotNil(t, resp.Difference)
	assert.True(t, resp.Difference.Equal(decimal.NewFromInt(-50)))
	require.NotNil(t, resp.Reconciliation)
	assert.Equal(t, service.ReconShortfall, *resp.Reconciliation)
}

func TestCloseShiftWithoutOpen(t *testing.T) {
	f := newCashFixture(t)

	_, err := f.svc.CloseShift(context.Background(), f.user.ID, dto.CloseShiftRequest{
		ClosingCash: decimal.NewFromInt(100),
	})

	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func TestCurrentShiftNotFound(t *testing.T) {
	f := newCashFixture(t)

	_, err := f.svc.CurrentShift(context.Background(), f.user.ID)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestLedgerSummary(t *testing.T) {
	ctx := context.Background()
	f := newCashFixture(t)
	f.open(t, 500)

	for _, c := range []dto.TransactionCreate{
		{Type: model.TxIncome, Category: "venta", Amount: decimal.NewFromInt(1000), PaymentMethod: model.MethodEfectivo},
		{Type: model.TxIncome, Category: "venta", Amount: decimal.NewFromInt(500), PaymentMethod: model.MethodTransferencia},
		{Type: model.TxExpense, Category: "proveedor", Amount: decimal.NewFromInt(200), PaymentMethod: model.MethodEfectivo},
	} {
		_, err := f.svc.AddTransaction(ctx, f.user.ID, c)
		require.NoError(t, err)
	}

	resp, err := f.svc.Ledger(ctx, dto.LedgerFilter{Period: "all"})
	require.NoError(t, err)

	assert.True(t, resp.Summary.IncomeTotal.Equal(decimal.NewFromInt(1500)))
	assert.True(t, resp.Summary.ExpenseTotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, resp.Summary.Balance.Equal(decimal.NewFromInt(1300)))
	assert.True(t, resp.Summary.CashIncome.Equal(decimal.NewFromInt(1000)))
	assert.True(t, resp.Summary.CashExpense.Equal(decimal.NewFromInt(200)))
	assert.True(t, resp.Summary.InBox.Equal(decimal.NewFromInt(800)))
	assert.Len(t, resp.Transactions, 3)
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	f := newCashFixture(t)
	f.open(t, 500)

	_, err := f.svc.AddTransaction(ctx, f.user.ID, dto.TransactionCreate{
		Type:          model.TxExpense,
		Category:      "Proveedor",
		Amount:        decimal.NewFromFloat(1234.50),
		PaymentMethod: model.MethodEfectivo,
		Description:   "Reposición bebidas",
	})
	require.NoError(t, err)

	out, err := f.svc.ExportCSV(ctx, dto.LedgerFilter{Period: "all"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Fecha,Hora,Tipo,Categoría,Monto,Método de Pago,Descripción", lines[0])
	assert.Contains(t, lines[1], "Egreso")
	assert.Contains(t, lines[1], "1234.50")
	assert.Contains(t, lines[1], "efectivo")
	assert.Contains(t, lines[1], "Reposición bebidas")
}

package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kioskopos/internal/dto"
	"kioskopos/internal/model"
	"kioskopos/internal/repository"
	"kioskopos/internal/service"
)

func newProductService(products ...*model.Product) (service.ProductService, *memProductRepo) {
	repo := newMemProductRepo(products...)
	return service.NewProductService(repo, &memSaleRepo{}), repo
}

func TestProductCreateDuplicateCode(t *testing.T) {
	svc, _ := newProductService(&model.Product{Code: "0001", Name: "Coca", Price: decimal.NewFromInt(1500), Active: true})

	_, err := svc.Create(context.Background(), dto.ProductCreate{
		Code: "0001", Name: "Otra Coca", Price: decimal.NewFromInt(1600),
	})

	assert.ErrorIs(t, err, service.ErrDuplicateCode)
}

func TestProductCreate(t *testing.T) {
	svc, _ := newProductService()

	resp, err := svc.Create(context.Background(), dto.ProductCreate{
		Code:     "0042",
		Name:     "Alfajor",
		Category: "Comida",
		Price:    decimal.NewFromInt(800),
		Stock:    20,
		MinStock: 5,
	})
	require.NoError(t, err)

	assert.True(t, resp.Active)
	assert.Equal(t, "high", resp.StockStatus)
}

func TestProductUpdateToTakenCode(t *testing.T) {
	a := &model.Product{Code: "0001", Name: "A", Price: decimal.NewFromInt(100), Active: true}
	b := &model.Product{Code: "0002", Name: "B", Price: decimal.NewFromInt(100), Active: true}
	svc, _ := newProductService(a, b)

	code := "0001"
	_, err := svc.Update(context.Background(), b.ID, dto.ProductUpdate{Code: &code})

	assert.ErrorIs(t, err, service.ErrDuplicateCode)
}

func TestProductUpdateKeepOwnCode(t *testing.T) {
	a := &model.Product{Code: "0001", Name: "A", Price: decimal.NewFromInt(100), Active: true}
	svc, _ := newProductService(a)

	code := "0001"
	name := "A renombrado"
	resp, err := svc.Update(context.Background(), a.ID, dto.ProductUpdate{Code: &code, Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "A renombrado", resp.Name)
}

func TestSuggestedCode(t *testing.T) {
	svc, _ := newProductService(
		&model.Product{Code: "0007", Name: "A", Active: true},
		&model.Product{Code: "0012", Name: "B", Active: true},
		&model.Product{Code: "PROMO1", Name: "C", Active: true}, // non-numeric, ignored
	)

	code, err := svc.SuggestedCode(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "0013", code)
}

func TestSuggestedCodeEmptyCatalog(t *testing.T) {
	svc, _ := newProductService()

	code, err := svc.SuggestedCode(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "0001", code)
}

func TestCategoriesPredefinedFirst(t *testing.T) {
	svc, _ := newProductService(
		&model.Product{Code: "0001", Name: "A", Category: "Golosinas", Active: true},
		&model.Product{Code: "0002", Name: "B", Category: "Bebida", Active: true}, // already predefined
	)

	cats, err := svc.Categories(context.Background())

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(cats), 4)
	assert.Equal(t, []string{"Bebida", "Comida", "Artículos de Deporte"}, cats[:3])
	assert.Contains(t, cats, "Golosinas")
	// No duplicate for the predefined one already in use
	count := 0
	for _, c := range cats {
		if c == "Bebida" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestAdjustStockGuardsNegative(t *testing.T) {
	p := &model.Product{Code: "0001", Name: "A", Stock: 3, Active: true}
	svc, _ := newProductService(p)

	_, err := svc.AdjustStock(context.Background(), p.ID, dto.StockAdjust{Delta: -5, Reason: "rotura"})

	assert.ErrorIs(t, err, repository.ErrStockConflict)
	assert.Equal(t, 3, p.Stock)
}

func TestAdjustStockAppliesDelta(t *testing.T) {
	p := &model.Product{Code: "0001", Name: "A", Stock: 3, Active: true}
	svc, _ := newProductService(p)

	resp, err := svc.AdjustStock(context.Background(), p.ID, dto.StockAdjust{Delta: -3, Reason: "vencidos"})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock)
	assert.Equal(t, "none", resp.StockStatus)
}

func TestProductDeleteIsSoft(t *testing.T) {
	p := &model.Product{Code: "0001", Name: "A", Active: true}
	svc, repo := newProductService(p)

	require.NoError(t, svc.Delete(context.Background(), p.ID))

	stored, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
}

func TestProductGetNotFound(t *testing.T) {
	svc, _ := newProductService()

	_, err := svc.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, service.ErrNotFound)
}

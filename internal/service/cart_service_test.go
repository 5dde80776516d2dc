package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kioskopos/internal/model"
	"kioskopos/internal/service"
)

func TestCartSuggestsAllCashSplit(t *testing.T) {
	ctx := context.Background()
	p := &model.Product{Code: "0001", Name: "Agua", Price: decimal.NewFromInt(1200), Stock: 5, Active: true}
	svc := service.NewCartService(newMemCartStore(), newMemProductRepo(p))

	resp, err := svc.Add(ctx, uuid.New(), p.ID)
	require.NoError(t, err)

	// The payment form pre-fills the whole total on cash
	assert.True(t, resp.SuggestedSplit.Efectivo.Equal(decimal.NewFromInt(1200)))
	assert.True(t, resp.SuggestedSplit.Sum().Equal(resp.Total))
}

func TestCartEmptySuggestsNothing(t *testing.T) {
	svc := service.NewCartService(newMemCartStore(), newMemProductRepo())

	resp, err := svc.Get(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.True(t, resp.SuggestedSplit.Sum().IsZero())
}

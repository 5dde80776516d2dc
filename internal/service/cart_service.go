package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kioskopos/internal/cart"
	"kioskopos/internal/dto"
	"kioskopos/internal/repository"
)

// CartService manages the per-operator cart held in the cart store. Every
// mutation loads, applies the change against current catalog stock, and
// saves back; nothing touches Postgres until settlement.
type CartService interface {
	Get(ctx context.Context, userID uuid.UUID) (*dto.CartResponse, error)
	Add(ctx context.Context, userID, productID uuid.UUID) (*dto.CartResponse, error)
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, qty int) (*dto.CartResponse, error)
	UpdatePrice(ctx context.Context, userID, productID uuid.UUID, price decimal.Decimal) (*dto.CartResponse, error)
	Clear(ctx context.Context, userID uuid.UUID) error

	// Current returns the raw cart for settlement.
	Current(ctx context.Context, userID uuid.UUID) (*cart.Cart, error)
}

type cartService struct {
	store       repository.CartStore
	productRepo repository.ProductRepository
}

func NewCartService(store repository.CartStore, productRepo repository.ProductRepository) CartService {
	return &cartService{store: store, productRepo: productRepo}
}

func (s *cartService) Get(ctx context.Context, userID uuid.UUID) (*dto.CartResponse, error) {
	c, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return cartToResponse(c), nil
}

func (s *cartService) Add(ctx context.Context, userID, productID uuid.UUID) (*dto.CartResponse, error) {
	p, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !p.Active {
		return nil, ErrInvalidState
	}

	c, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := c.Add(p); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, userID, c); err != nil {
		return nil, err
	}
	return cartToResponse(c), nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, qty int) (*dto.CartResponse, error) {
	p, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, ErrNotFound
	}

	c, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := c.UpdateQuantity(productID, qty, p.Stock); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, userID, c); err != nil {
		return nil, err
	}
	return cartToResponse(c), nil
}

func (s *cartService) UpdatePrice(ctx context.Context, userID, productID uuid.UUID, price decimal.Decimal) (*dto.CartResponse, error) {
	c, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := c.UpdatePrice(productID, price); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, userID, c); err != nil {
		return nil, err
	}
	return cartToResponse(c), nil
}

func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.store.Clear(ctx, userID)
}

func (s *cartService) Current(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	return s.store.Load(ctx, userID)
}

func cartToResponse(c *cart.Cart) *dto.CartResponse {
	lines := c.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	total := c.Total()

	var split cart.Split
	split.AutoFill(total)

	return &dto.CartResponse{Lines: lines, Total: total, SuggestedSplit: split}
}

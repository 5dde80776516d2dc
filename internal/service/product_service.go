package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kioskopos/internal/dto"
	"kioskopos/internal/model"
	"kioskopos/internal/repository"
)

type ProductService interface {
	Create(ctx context.Context, req dto.ProductCreate) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req dto.ProductUpdate) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AdjustStock(ctx context.Context, id uuid.UUID, req dto.StockAdjust) (*dto.ProductResponse, error)
	LowStock(ctx context.Context) ([]dto.ProductResponse, error)
	SuggestedCode(ctx context.Context) (string, error)
	SoldLast7Days(ctx context.Context) ([]uuid.UUID, error)
	Categories(ctx context.Context) ([]string, error)
}

type productService struct {
	repo     repository.ProductRepository
	saleRepo repository.SaleRepository
}

func NewProductService(repo repository.ProductRepository, saleRepo repository.SaleRepository) ProductService {
	return &productService{repo: repo, saleRepo: saleRepo}
}

func (s *productService) Create(ctx context.Context, req dto.ProductCreate) (*dto.ProductResponse, error) {
	if _, err := s.repo.FindByCode(ctx, req.Code); err == nil {
		return nil, ErrDuplicateCode
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if req.Price.IsNegative() || req.Cost.IsNegative() {
		return nil, errInput("el precio no puede ser negativo")
	}

	p := &model.Product{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		Active:      true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, int64, error) {
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.ProductResponse, len(products))
	for i := range products {
		resp[i] = productToResponse(&products[i])
	}
	return resp, total, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.ProductUpdate) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if req.Code != nil && *req.Code != p.Code {
		if other, err := s.repo.FindByCode(ctx, *req.Code); err == nil && other.ID != p.ID {
			return nil, ErrDuplicateCode
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		p.Code = *req.Code
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, errInput("el precio no puede ser negativo")
		}
		p.Price = *req.Price
	}
	if req.Cost != nil {
		if req.Cost.IsNegative() {
			return nil, errInput("el costo no puede ser negativo")
		}
		p.Cost = *req.Cost
	}
	if req.MinStock != nil {
		p.MinStock = *req.MinStock
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.SoftDelete(ctx, id)
}

// AdjustStock applies a manual correction. The repository guard rejects any
// delta that would leave the stock negative.
func (s *productService) AdjustStock(ctx context.Context, id uuid.UUID, req dto.StockAdjust) (*dto.ProductResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, ErrNotFound
	}
	if err := s.repo.AdjustStock(ctx, id, req.Delta); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) LowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, len(products))
	for i := range products {
		resp[i] = productToResponse(&products[i])
	}
	return resp, nil
}

// SuggestedCode proposes the next free numeric code, zero-padded to four
// digits ("0001", "0002", ...). Codes with letters are ignored.
func (s *productService) SuggestedCode(ctx context.Context) (string, error) {
	max, err := s.repo.MaxNumericCode(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", max+1), nil
}

// SoldLast7Days lists the products with at least one sale in the last seven
// days, used by the POS to sort frequent items first.
func (s *productService) SoldLast7Days(ctx context.Context) ([]uuid.UUID, error) {
	since := time.Now().AddDate(0, 0, -7)
	return s.saleRepo.SoldProductIDsSince(ctx, since)
}

// Categories merges the predefined set with whatever the catalog already
// uses, predefined first, without duplicates.
func (s *productService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(model.PredefinedCategories))
	out := make([]string, 0, len(model.PredefinedCategories))
	for _, c := range model.PredefinedCategories {
		seen[c] = true
		out = append(out, c)
	}
	for _, p := range products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func productToResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		StockStatus: p.StockStatus(),
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

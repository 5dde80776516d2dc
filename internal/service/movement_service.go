package service

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"kioskopos/internal/dto"
	"kioskopos/internal/model"
	"kioskopos/internal/repository"
)

// DefaultProvider is recorded when an income arrives without a provider.
const DefaultProvider = "Sin especificar"

type MovementService interface {
	// RegisterIncome raises the product's stock and appends the income row
	// in one transaction.
	RegisterIncome(ctx context.Context, req dto.IncomeCreate) (*dto.MovementResponse, error)
	List(ctx context.Context, filter dto.MovementFilter) ([]dto.MovementResponse, int64, error)
	Summary(ctx context.Context, filter dto.MovementFilter) (*dto.MovementSummary, error)
	Providers(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
}

type movementService struct {
	repo        repository.MovementRepository
	productRepo repository.ProductRepository
}

func NewMovementService(repo repository.MovementRepository, productRepo repository.ProductRepository) MovementService {
	return &movementService{repo: repo, productRepo: productRepo}
}

func (s *movementService) RegisterIncome(ctx context.Context, req dto.IncomeCreate) (*dto.MovementResponse, error) {
	if req.Quantity <= 0 {
		return nil, errInput("la cantidad debe ser mayor a cero")
	}
	if req.UnitPrice.IsNegative() {
		return nil, errInput("el precio unitario no puede ser negativo")
	}

	p, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, ErrNotFound
	}

	provider := req.ProviderName
	if provider == nil || *provider == "" {
		d := DefaultProvider
		provider = &d
	}

	mov := &model.InventoryMovement{
		ProductID:    p.ID,
		ProductName:  p.Name,
		Category:     p.Category,
		MovementType: model.MovementIncome,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		TotalAmount:  req.UnitPrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
		ProviderName: provider,
		Description:  req.Description,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.productRepo.IncrementStockTx(tx, p.ID, req.Quantity); err != nil {
			return err
		}
		return s.repo.CreateTx(ctx, tx, mov)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := movementToResponse(mov)
	return &resp, nil
}

func (s *movementService) List(ctx context.Context, filter dto.MovementFilter) ([]dto.MovementResponse, int64, error) {
	movements, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.MovementResponse, len(movements))
	for i := range movements {
		resp[i] = movementToResponse(&movements[i])
	}
	return resp, total, nil
}

// Summary aggregates the filtered movements by type. The filter's paging is
// ignored: totals always cover the whole selection.
func (s *movementService) Summary(ctx context.Context, filter dto.MovementFilter) (*dto.MovementSummary, error) {
	filter.Page = 1
	filter.PageSize = 200
	sum := &dto.MovementSummary{}
	for {
		movements, _, err := s.repo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		for i := range movements {
			m := &movements[i]
			switch m.MovementType {
			case model.MovementIncome:
				sum.IncomeCount++
				sum.IncomeTotal = sum.IncomeTotal.Add(m.TotalAmount)
			case model.MovementSale:
				sum.SaleCount++
				sum.SaleTotal = sum.SaleTotal.Add(m.TotalAmount)
			}
		}
		if len(movements) < filter.PageSize {
			return sum, nil
		}
		filter.Page++
	}
}

func (s *movementService) Providers(ctx context.Context) ([]string, error) {
	return s.repo.DistinctProviders(ctx)
}

func (s *movementService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.DistinctCategories(ctx)
}

func movementToResponse(m *model.InventoryMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		ProductName:  m.ProductName,
		Category:     m.Category,
		MovementType: m.MovementType,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		TotalAmount:  m.TotalAmount,
		ProviderName: m.ProviderName,
		SaleID:       m.SaleID,
		SaleNumber:   m.SaleNumber,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
	}
}

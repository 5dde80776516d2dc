package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"kioskopos/internal/cart"
	"kioskopos/internal/dto"
	"kioskopos/internal/model"
	"kioskopos/internal/repository"
	"kioskopos/internal/worker"
)

// Payments may undershoot or overshoot the total by at most this amount;
// larger differences reject the sale.
var paymentTolerance = decimal.NewFromFloat(0.01)

type SaleService interface {
	// CompleteSale settles the operator's current cart as one atomic unit:
	// sale record, stock decrements, inventory movements and cash-ledger
	// rows all commit together or not at all.
	CompleteSale(ctx context.Context, userID uuid.UUID, req dto.CompleteSaleRequest) (*dto.SaleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, int64, error)
}

type saleService struct {
	repo        repository.SaleRepository
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	cashRepo    repository.CashRepository
	userRepo    repository.UserRepository
	carts       CartService
	dispatcher  *worker.Dispatcher
}

func NewSaleService(
	repo repository.SaleRepository,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	cashRepo repository.CashRepository,
	userRepo repository.UserRepository,
	carts CartService,
	dispatcher *worker.Dispatcher,
) SaleService {
	return &saleService{
		repo:        repo,
		productRepo: productRepo,
		movRepo:     movRepo,
		cashRepo:    cashRepo,
		userRepo:    userRepo,
		carts:       carts,
		dispatcher:  dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *saleService) CompleteSale(ctx context.Context, userID uuid.UUID, req dto.CompleteSaleRequest) (*dto.SaleResponse, error) {
	// 1. Cart must have lines
	c, err := s.carts.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrInvalidState
	}

	// 2. Operator must have an open shift
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	shift, err := s.cashRepo.FindOpenShiftByUser(ctx, userID)
	if err != nil {
		return nil, ErrInvalidState
	}

	subtotal := c.Total()
	discount := req.Discount
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	// 3. Resolve the payment breakdown. Entries at or below the entry
	// epsilon are discarded; an empty breakdown defaults to all-cash.
	payments := resolvePayments(req.Payments, total)

	// 4. Payments must add up to the total within the rounding tolerance
	paid := cart.PaymentsTotal(payments)
	if paid.Sub(total).Abs().GreaterThan(paymentTolerance) {
		return nil, &PaymentMismatchError{Paid: paid, Total: total}
	}

	// 5. Non-cash sales must be attributable. Whitespace-only fields count
	// as absent; the trimmed values are what gets stored.
	customerName := trimField(req.CustomerName)
	lot := trimField(req.Lot)
	if cart.HasNonCash(payments) {
		if customerName == nil || lot == nil {
			return nil, ErrMissingCustomerInfo
		}
	}

	sale := model.Sale{
		SaleNumber:   fmt.Sprintf("V-%d", time.Now().UnixMilli()),
		UserID:       user.ID,
		UserName:     user.Name,
		ShiftID:      shift.ID,
		Subtotal:     subtotal,
		Discount:     discount,
		Total:        total,
		CustomerName: customerName,
		CustomerLot:  lot,
	}
	for _, l := range c.Lines {
		sale.Items = append(sale.Items, model.SaleItem{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Price:       l.Price,
			Subtotal:    l.Subtotal,
		})
	}
	for _, p := range payments {
		sale.Payments = append(sale.Payments, model.SalePayment{
			Method: p.Method,
			Amount: p.Amount,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, &sale); err != nil {
			return err
		}

		for _, l := range c.Lines {
			// Conditional decrement: fails when concurrent sales consumed
			// the stock between cart building and settlement.
			if err := s.productRepo.DecrementStockTx(tx, l.ProductID, l.Quantity); err != nil {
				return fmt.Errorf("producto %s: %w", l.ProductName, err)
			}

			p, err := s.productRepo.FindByID(ctx, l.ProductID)
			category := ""
			if err == nil {
				category = p.Category
			}

			saleID := sale.ID
			saleNum := sale.SaleNumber
			mov := &model.InventoryMovement{
				ProductID:    l.ProductID,
				ProductName:  l.ProductName,
				Category:     category,
				MovementType: model.MovementSale,
				Quantity:     l.Quantity,
				UnitPrice:    l.Price,
				TotalAmount:  l.Subtotal,
				SaleID:       &saleID,
				SaleNumber:   &saleNum,
				Description:  fmt.Sprintf("Venta %s", saleNum),
			}
			if err := s.movRepo.CreateTx(ctx, tx, mov); err != nil {
				return err
			}
		}

		// One ledger row per payment channel
		for _, p := range payments {
			saleID := sale.ID
			cashTx := &model.CashTransaction{
				ShiftID:       shift.ID,
				Type:          model.TxIncome,
				Category:      model.CategorySale,
				Amount:        p.Amount,
				PaymentMethod: p.Method,
				Description:   fmt.Sprintf("Venta %s", sale.SaleNumber),
				SaleID:        &saleID,
			}
			if err := s.cashRepo.CreateTransactionTx(ctx, tx, cashTx); err != nil {
				return err
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Settled: drop the cart. A failure here only leaves a stale cart that
	// the operator clears manually; the sale itself is already committed.
	_ = s.carts.Clear(ctx, userID)

	// Async low-stock alerts, best effort
	if s.dispatcher != nil {
		for _, l := range c.Lines {
			if p, err := s.productRepo.FindByID(ctx, l.ProductID); err == nil && p.Stock <= p.MinStock {
				_ = s.dispatcher.EnqueueStockAlert(ctx, map[string]interface{}{
					"product_id":   p.ID.String(),
					"product_name": p.Name,
					"stock":        p.Stock,
					"min_stock":    p.MinStock,
				})
			}
		}
	}

	resp := saleToResponse(&sale)
	return resp, nil
}

// trimField normalizes an optional identity field: whitespace-only input
// counts as absent.
func trimField(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

// resolvePayments merges the request entries into per-channel amounts and
// applies the entry defaults (epsilon filter, all-cash fallback).
func resolvePayments(entries []dto.PaymentEntry, total decimal.Decimal) []cart.Payment {
	var split cart.Split
	for _, e := range entries {
		switch e.Method {
		case model.MethodEfectivo:
			split.Efectivo = split.Efectivo.Add(e.Amount)
		case model.MethodTransferencia:
			split.Transferencia = split.Transferencia.Add(e.Amount)
		case model.MethodQR:
			split.QR = split.QR.Add(e.Amount)
		case model.MethodExpensas:
			split.Expensas = split.Expensas.Add(e.Amount)
		}
	}
	return split.BuildPayments(total)
}

func (s *saleService) Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return saleToResponse(sale), nil
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, int64, error) {
	sales, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.SaleResponse, len(sales))
	for i := range sales {
		resp[i] = *saleToResponse(&sales[i])
	}
	return resp, total, nil
}

func saleToResponse(sale *model.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		SaleNumber:    sale.SaleNumber,
		UserID:        sale.UserID,
		UserName:      sale.UserName,
		ShiftID:       sale.ShiftID,
		Subtotal:      sale.Subtotal,
		Discount:      sale.Discount,
		Total:         sale.Total,
		PrimaryMethod: sale.PrimaryMethod(),
		CustomerName:  sale.CustomerName,
		Lot:           sale.CustomerLot,
		CreatedAt:     sale.CreatedAt,
	}
	for _, it := range sale.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Subtotal:    it.Subtotal,
		})
	}
	for _, p := range sale.Payments {
		resp.Payments = append(resp.Payments, dto.SalePaymentResponse{
			Method: p.Method,
			Amount: p.Amount,
		})
	}
	return resp
}

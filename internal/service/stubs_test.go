package service_test

// In-memory repository stubs shared by the service tests. They honor the
// same contracts as the GORM implementations (including the conditional
// stock guard) without a database.

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kioskopos/internal/cart"
	"kioskopos/internal/dto"
	"kioskopos/internal/model"
	"kioskopos/internal/repository"
)

// ── ProductRepository ────────────────────────────────────────────────────────

type memProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*model.Product
}

func newMemProductRepo(products ...*model.Product) *memProductRepo {
	r := &memProductRepo{products: make(map[uuid.UUID]*model.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *memProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *memProductRepo) FindByCode(_ context.Context, code string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Active {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memProductRepo) ListActive(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Active {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProductRepo) ListLowStock(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Active && p.Stock <= p.MinStock {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if p, ok := r.products[id]; ok {
		p.Active = false
	}
	return nil
}

func (r *memProductRepo) MaxNumericCode(_ context.Context) (int, error) {
	max := 0
	for _, p := range r.products {
		n := 0
		numeric := len(p.Code) > 0
		for _, ch := range p.Code {
			if ch < '0' || ch > '9' {
				numeric = false
				break
			}
			n = n*10 + int(ch-'0')
		}
		if numeric && n > max {
			max = n
		}
	}
	return max, nil
}

func (r *memProductRepo) AdjustStock(_ context.Context, id uuid.UUID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || p.Stock+delta < 0 {
		return repository.ErrStockConflict
	}
	p.Stock += delta
	return nil
}

func (r *memProductRepo) DecrementStockTx(_ *gorm.DB, id uuid.UUID, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || p.Stock < qty {
		return repository.ErrStockConflict
	}
	p.Stock -= qty
	return nil
}

func (r *memProductRepo) IncrementStockTx(_ *gorm.DB, id uuid.UUID, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		p.Stock += qty
	}
	return nil
}

func (r *memProductRepo) DB() *gorm.DB { return nil }

// ── SaleRepository ───────────────────────────────────────────────────────────

type memSaleRepo struct {
	sales []*model.Sale
}

func (r *memSaleRepo) Create(_ context.Context, _ *gorm.DB, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	r.sales = append(r.sales, s)
	return nil
}

func (r *memSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSaleRepo) FindBySaleNumber(_ context.Context, num string) (*model.Sale, error) {
	for _, s := range r.sales {
		if s.SaleNumber == num {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, int64, error) {
	out := make([]model.Sale, len(r.sales))
	for i, s := range r.sales {
		out[i] = *s
	}
	return out, int64(len(out)), nil
}

func (r *memSaleRepo) SoldProductIDsSince(_ context.Context, since time.Time) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, s := range r.sales {
		if s.CreatedAt.Before(since) {
			continue
		}
		for _, it := range s.Items {
			if !seen[it.ProductID] {
				seen[it.ProductID] = true
				ids = append(ids, it.ProductID)
			}
		}
	}
	return ids, nil
}

func (r *memSaleRepo) DB() *gorm.DB { return nil }

// ── CashRepository ───────────────────────────────────────────────────────────

type memCashRepo struct {
	shifts map[uuid.UUID]*model.Shift
	txs    []model.CashTransaction
}

func newMemCashRepo() *memCashRepo {
	return &memCashRepo{shifts: make(map[uuid.UUID]*model.Shift)}
}

func (r *memCashRepo) CreateShift(_ context.Context, s *model.Shift) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.shifts[s.ID] = s
	return nil
}

func (r *memCashRepo) FindShiftByID(_ context.Context, id uuid.UUID) (*model.Shift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *memCashRepo) FindOpenShiftByUser(_ context.Context, userID uuid.UUID) (*model.Shift, error) {
	for _, s := range r.shifts {
		if s.UserID == userID && s.Status == "abierta" {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memCashRepo) UpdateShift(_ context.Context, s *model.Shift) error {
	r.shifts[s.ID] = s
	return nil
}

func (r *memCashRepo) ListShifts(_ context.Context, limit int) ([]model.Shift, error) {
	var out []model.Shift
	for _, s := range r.shifts {
		out = append(out, *s)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memCashRepo) CreateTransaction(_ context.Context, t *model.CashTransaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now()
	r.txs = append(r.txs, *t)
	return nil
}

func (r *memCashRepo) CreateTransactionTx(ctx context.Context, _ *gorm.DB, t *model.CashTransaction) error {
	return r.CreateTransaction(ctx, t)
}

func (r *memCashRepo) ListByShift(_ context.Context, shiftID uuid.UUID) ([]model.CashTransaction, error) {
	var out []model.CashTransaction
	for _, t := range r.txs {
		if t.ShiftID == shiftID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memCashRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]model.CashTransaction, error) {
	var out []model.CashTransaction
	for _, t := range r.txs {
		if !t.CreatedAt.Before(from) && t.CreatedAt.Before(to) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memCashRepo) ListAll(_ context.Context) ([]model.CashTransaction, error) {
	return append([]model.CashTransaction(nil), r.txs...), nil
}

func (r *memCashRepo) DB() *gorm.DB { return nil }

// ── MovementRepository ───────────────────────────────────────────────────────

type memMovementRepo struct {
	movements []model.InventoryMovement
}

func (r *memMovementRepo) Create(_ context.Context, m *model.InventoryMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movements = append(r.movements, *m)
	return nil
}

func (r *memMovementRepo) CreateTx(ctx context.Context, _ *gorm.DB, m *model.InventoryMovement) error {
	return r.Create(ctx, m)
}

func (r *memMovementRepo) List(_ context.Context, filter dto.MovementFilter) ([]model.InventoryMovement, int64, error) {
	var out []model.InventoryMovement
	for _, m := range r.movements {
		if filter.Type != "" && m.MovementType != filter.Type {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *memMovementRepo) DistinctProviders(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, m := range r.movements {
		if m.ProviderName != nil && !seen[*m.ProviderName] {
			seen[*m.ProviderName] = true
			out = append(out, *m.ProviderName)
		}
	}
	return out, nil
}

func (r *memMovementRepo) DistinctCategories(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, m := range r.movements {
		if m.Category != "" && !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	return out, nil
}

func (r *memMovementRepo) DB() *gorm.DB { return nil }

// ── UserRepository ───────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newMemUserRepo(users ...*model.User) *memUserRepo {
	r := &memUserRepo{users: make(map[uuid.UUID]*model.User)}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

// ── CartStore ────────────────────────────────────────────────────────────────

type memCartStore struct {
	carts map[uuid.UUID]*cart.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[uuid.UUID]*cart.Cart)}
}

func (s *memCartStore) Load(_ context.Context, userID uuid.UUID) (*cart.Cart, error) {
	c, ok := s.carts[userID]
	if !ok {
		return cart.New(), nil
	}
	return c, nil
}

func (s *memCartStore) Save(_ context.Context, userID uuid.UUID, c *cart.Cart) error {
	s.carts[userID] = c
	return nil
}

func (s *memCartStore) Clear(_ context.Context, userID uuid.UUID) error {
	delete(s.carts, userID)
	return nil
}

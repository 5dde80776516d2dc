package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kioskopos/internal/model"
)

type CashRepository interface {
	// Shifts
	CreateShift(ctx context.Context, s *model.Shift) error
	FindShiftByID(ctx context.Context, id uuid.UUID) (*model.Shift, error)
	FindOpenShiftByUser(ctx context.Context, userID uuid.UUID) (*model.Shift, error)
	UpdateShift(ctx context.Context, s *model.Shift) error
	ListShifts(ctx context.Context, limit int) ([]model.Shift, error)

	// Transactions (append-only; no update or delete methods on purpose)
	CreateTransaction(ctx context.Context, t *model.CashTransaction) error
	CreateTransactionTx(ctx context.Context, tx *gorm.DB, t *model.CashTransaction) error
	ListByShift(ctx context.Context, shiftID uuid.UUID) ([]model.CashTransaction, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]model.CashTransaction, error)
	ListAll(ctx context.Context) ([]model.CashTransaction, error)

	DB() *gorm.DB
}

type cashRepo struct{ db *gorm.DB }

func NewCashRepository(db *gorm.DB) CashRepository { return &cashRepo{db: db} }

func (r *cashRepo) DB() *gorm.DB { return r.db }

func (r *cashRepo) CreateShift(ctx context.Context, s *model.Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *cashRepo) FindShiftByID(ctx context.Context, id uuid.UUID) (*model.Shift, error) {
	var s model.Shift
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *cashRepo) FindOpenShiftByUser(ctx context.Context, userID uuid.UUID) (*model.Shift, error) {
	var s model.Shift
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, "abierta").
		Order("start_date DESC").
		First(&s).Error
	return &s, err
}

func (r *cashRepo) UpdateShift(ctx context.Context, s *model.Shift) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *cashRepo) ListShifts(ctx context.Context, limit int) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).Order("start_date DESC").Limit(limit).Find(&shifts).Error
	return shifts, err
}

func (r *cashRepo) CreateTransaction(ctx context.Context, t *model.CashTransaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *cashRepo) CreateTransactionTx(ctx context.Context, tx *gorm.DB, t *model.CashTransaction) error {
	return tx.WithContext(ctx).Create(t).Error
}

func (r *cashRepo) ListByShift(ctx context.Context, shiftID uuid.UUID) ([]model.CashTransaction, error) {
	var txs []model.CashTransaction
	err := r.db.WithContext(ctx).
		Where("shift_id = ?", shiftID).
		Order("created_at ASC").
		Find(&txs).Error
	return txs, err
}

func (r *cashRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]model.CashTransaction, error) {
	var txs []model.CashTransaction
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Find(&txs).Error
	return txs, err
}

func (r *cashRepo) ListAll(ctx context.Context) ([]model.CashTransaction, error) {
	var txs []model.CashTransaction
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&txs).Error
	return txs, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"kioskopos/internal/dto"
	"kioskopos/internal/model"
)

type MovementRepository interface {
	Create(ctx context.Context, m *model.InventoryMovement) error
	CreateTx(ctx context.Context, tx *gorm.DB, m *model.InventoryMovement) error
	List(ctx context.Context, filter dto.MovementFilter) ([]model.InventoryMovement, int64, error)
	DistinctProviders(ctx context.Context) ([]string, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	DB() *gorm.DB
}

type movementRepo struct{ db *gorm.DB }

func NewMovementRepository(db *gorm.DB) MovementRepository { return &movementRepo{db: db} }

func (r *movementRepo) DB() *gorm.DB { return r.db }

func (r *movementRepo) Create(ctx context.Context, m *model.InventoryMovement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movementRepo) CreateTx(ctx context.Context, tx *gorm.DB, m *model.InventoryMovement) error {
	return tx.WithContext(ctx).Create(m).Error
}

func (r *movementRepo) List(ctx context.Context, filter dto.MovementFilter) ([]model.InventoryMovement, int64, error) {
	var movements []model.InventoryMovement
	var total int64

	q := r.db.WithContext(ctx).Model(&model.InventoryMovement{})

	if filter.Type != "" {
		q = q.Where("movement_type = ?", filter.Type)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Provider != "" {
		q = q.Where("provider_name = ?", filter.Provider)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("product_name ILIKE ? OR description ILIKE ?", like, like)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at < ?", *filter.To)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := q.Order("created_at DESC").Offset(offset).Limit(filter.PageSize).Find(&movements).Error
	return movements, total, err
}

func (r *movementRepo) DistinctProviders(ctx context.Context) ([]string, error) {
	var providers []string
	err := r.db.WithContext(ctx).Model(&model.InventoryMovement{}).
		Distinct("provider_name").
		Where("provider_name IS NOT NULL").
		Order("provider_name ASC").
		Pluck("provider_name", &providers).Error
	return providers, err
}

func (r *movementRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&model.InventoryMovement{}).
		Distinct("category").
		Where("category <> ''").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

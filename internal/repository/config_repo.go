package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kioskopos/internal/model"
)

type ConfigRepository interface {
	// Get returns the single configuration row, creating it with defaults
	// on first access.
	Get(ctx context.Context) (*model.Configuration, error)
	Update(ctx context.Context, c *model.Configuration) error
}

type configRepo struct{ db *gorm.DB }

func NewConfigRepository(db *gorm.DB) ConfigRepository { return &configRepo{db: db} }

func (r *configRepo) Get(ctx context.Context) (*model.Configuration, error) {
	var c model.Configuration
	err := r.db.WithContext(ctx).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = model.Configuration{BusinessName: "Kiosco"}
		if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

func (r *configRepo) Update(ctx context.Context, c *model.Configuration) error {
	return r.db.WithContext(ctx).Save(c).Error
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Configuration holds the single-row display settings (business name shown
// in the POS header).
type Configuration struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessName string    `gorm:"not null;default:'Kiosco'"`
	UpdatedAt    time.Time
}

func (Configuration) TableName() string { return "configuration" }

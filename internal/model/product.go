package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Categorías predefinidas del kiosco; los productos también aceptan
// categorías libres cargadas por el operador.
var PredefinedCategories = []string{"Bebida", "Comida", "Artículos de Deporte"}

// Product is a catalog item available for sale.
// Stock is the authoritative available quantity: it is decremented at sale
// settlement and incremented by inventory income movements. Stock edits via
// the product form and product deletion are admin-gated at the router.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code        string    `gorm:"uniqueIndex;not null"`
	Name        string    `gorm:"index;not null"`
	Description *string
	Category    string          `gorm:"not null;default:''"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Cost        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Stock       int             `gorm:"not null;default:0"`
	MinStock    int             `gorm:"not null;default:0"`
	Active      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Product) TableName() string { return "products" }

// StockStatus classifies stock level against the min_stock threshold:
// "none" | "low" | "medium" | "high".
func (p *Product) StockStatus() string {
	switch {
	case p.Stock == 0:
		return "none"
	case p.Stock <= p.MinStock:
		return "low"
	case p.Stock <= p.MinStock*2:
		return "medium"
	default:
		return "high"
	}
}

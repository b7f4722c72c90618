package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string     `json:"name" gorm:"not null;index"`
	Description  string     `json:"description" gorm:"not null"`
	Price        float64    `json:"price" gorm:"type:numeric(12,2);not null;check:price > 0"`
	Stock        int        `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	CategoryID   *uuid.UUID `json:"category_id" gorm:"type:uuid;index"`
	MaterialID   *uuid.UUID `json:"material_id" gorm:"type:uuid;index"`
	DeliveryDays int        `json:"delivery_days" gorm:"default:7"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime;index:idx_products_created,sort:desc"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships. Category and material are soft references: deleting a
	// category or material leaves products pointing at a missing row, so both
	// may resolve to nil.
	Category *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Material *Material      `json:"material,omitempty" gorm:"foreignKey:MaterialID;references:ID"`
	Images   []ProductImage `json:"images" gorm:"foreignKey:ProductID;references:ID"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductImage is one image row belonging to a product. Position preserves the
// admin-supplied ordering; the first image of a set is stored as primary.
type ProductImage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	ImageURL  string    `json:"image_url" gorm:"not null"`
	IsPrimary bool      `json:"is_primary" gorm:"default:false"`
	Position  int       `json:"position" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (pi *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == uuid.Nil {
		pi.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (ProductImage) TableName() string {
	return "product_images"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type UpdateProductRequest struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Price        *float64   `json:"price" binding:"omitempty,gt=0"`
	Stock        *int       `json:"stock" binding:"omitempty,min=0"`
	CategoryID   *uuid.UUID `json:"category_id"`
	MaterialID   *uuid.UUID `json:"material_id"`
	DeliveryDays *int       `json:"delivery_days" binding:"omitempty,min=1"`
}

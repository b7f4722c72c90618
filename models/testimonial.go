package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial is a customer review shown on the storefront. Only rows with
// IsActive set are served publicly; admins create, edit, toggle and delete.
type Testimonial struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	IsActive  bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Testimonial) TableName() string {
	return "testimonials"
}

type TestimonialRequest struct {
	Name     string `json:"name" binding:"required" example:"Nimal Perera"`
	Content  string `json:"content" binding:"required" example:"Beautiful craftsmanship, fast delivery."`
	Rating   int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
	IsActive *bool  `json:"is_active"`
}

type UpdateTestimonialRequest struct {
	Name     *string `json:"name"`
	Content  *string `json:"content"`
	Rating   *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	IsActive *bool   `json:"is_active"`
}

type UpdateTestimonialStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

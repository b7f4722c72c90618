package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ════════════════════════════════════════════════════════════
// Database Models
// ════════════════════════════════════════════════════════════

// Admin represents a back-office user. Every admin carries the "admin" role
// claim in its session token; there is a single vendor, so no finer-grained
// role hierarchy exists.
type Admin struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Name         string     `json:"name" gorm:"not null"`
	PasswordHash string     `json:"-" gorm:"not null"` // Never expose in JSON
	Role         string     `json:"role" gorm:"not null;index"`
	Status       string     `json:"status" gorm:"not null;index"` // active, suspended
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	if a.Status == "" {
		a.Status = "active"
	}
	if a.Role == "" {
		a.Role = RoleAdmin
	}
	return nil
}

func (Admin) TableName() string {
	return "admins"
}

const RoleAdmin = "admin"

// AdminLoginEvent records a successful login for audit purposes.
type AdminLoginEvent struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID    uuid.UUID `json:"admin_id" gorm:"type:uuid;not null;index"`
	AdminEmail string    `json:"admin_email" gorm:"not null"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	DeviceType string    `json:"device_type"` // mobile, tablet, desktop
	Browser    string    `json:"browser"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (e *AdminLoginEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (AdminLoginEvent) TableName() string {
	return "admin_login_events"
}

// ════════════════════════════════════════════════════════════
// Request/Response Models
// ════════════════════════════════════════════════════════════

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@grazie.lk"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type AdminRegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

type AdminLoginResponse struct {
	Admin Admin  `json:"admin"`
	Token string `json:"token"`
}

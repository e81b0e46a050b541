package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
)

// User represents the canonical identity entity.
type User struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	FullName     string          `gorm:"column:full_name;not null"`
	Email        string          `gorm:"column:email;type:text;not null;uniqueIndex"`
	Phone        *string         `gorm:"column:phone;uniqueIndex"`
	PasswordHash string          `gorm:"column:password_hash;not null"`
	Role         enums.UserRole  `gorm:"column:role;not null;default:USER"`
	City         *string         `gorm:"column:city"`
	CarModel     *enums.CarModel `gorm:"column:car_model"`
	CarYear      *int            `gorm:"column:car_year"`
	ProfilePhoto *string         `gorm:"column:profile_photo"`
	LastLoginAt  *time.Time      `gorm:"column:last_login_at"`
	Memberships  []Membership    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

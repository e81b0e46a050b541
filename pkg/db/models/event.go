package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is a club meet or drive announcement.
type Event struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Title            string    `gorm:"column:title;not null"`
	Description      *string   `gorm:"column:description"`
	Location         string    `gorm:"column:location;not null"`
	Date             time.Time `gorm:"column:date;not null"`
	ImageURL         *string   `gorm:"column:image_url"`
	RegistrationLink *string   `gorm:"column:registration_link"`
	IsActive         bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/types"
)

// PartsListing is a classifieds entry for a spare part. Parts skip moderation
// and publish immediately as AVAILABLE.
type PartsListing struct {
	ID                uuid.UUID               `gorm:"column:id;type:uuid;primaryKey"`
	SellerID          uuid.UUID               `gorm:"column:seller_id;type:uuid;not null;index"`
	Title             string                  `gorm:"column:title;not null"`
	Category          enums.PartsCategory     `gorm:"column:category;not null"`
	Description       string                  `gorm:"column:description;not null"`
	Price             int64                   `gorm:"column:price;not null"`
	City              string                  `gorm:"column:city;not null"`
	State             string                  `gorm:"column:state;not null;default:''"`
	Images            types.StringList        `gorm:"column:images;type:text;not null"`
	ContactPreference enums.ContactPreference `gorm:"column:contact_preference;not null"`
	Status            enums.PartsStatus       `gorm:"column:status;not null"`
	ExpiresAt         time.Time               `gorm:"column:expires_at;not null"`
	CreatedAt         time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/types"
)

// Product is a merch catalog entry. Prices are whole rupees; MemberPrice is
// charged when the buyer holds an active membership.
type Product struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;primaryKey"`
	Name        string                `gorm:"column:name;not null"`
	Description string                `gorm:"column:description;not null"`
	Category    enums.ProductCategory `gorm:"column:category;not null"`
	SKU         string                `gorm:"column:sku;uniqueIndex;not null"`
	Price       int64                 `gorm:"column:price;not null"`
	MemberPrice int64                 `gorm:"column:member_price;not null"`
	Images      types.StringList      `gorm:"column:images;type:text;not null"`
	Stock       int                   `gorm:"column:stock;not null;default:0"`
	IsActive    bool                  `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
)

// Order is a completed checkout. PaymentRef is the simulated gateway
// reference recorded at checkout time.
type Order struct {
	ID         uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	UserID     uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index"`
	Status     enums.OrderStatus `gorm:"column:status;not null"`
	Subtotal   int64             `gorm:"column:subtotal;not null"`
	Total      int64             `gorm:"column:total;not null"`
	PaymentRef string            `gorm:"column:payment_ref;not null"`
	Items      []OrderItem       `gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

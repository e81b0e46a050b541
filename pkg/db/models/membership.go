package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
)

// Membership is a paid, time-bounded club membership. A user may accumulate
// several records over the years; only ACTIVE ones grant member privileges.
type Membership struct {
	ID        uuid.UUID              `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID              `gorm:"column:user_id;type:uuid;not null;index"`
	Plan      string                 `gorm:"column:plan;not null"`
	Amount    decimal.Decimal        `gorm:"column:amount;type:numeric(12,2);not null"`
	Status    enums.MembershipStatus `gorm:"column:status;not null"`
	StartsAt  time.Time              `gorm:"column:starts_at;not null"`
	ExpiresAt *time.Time             `gorm:"column:expires_at"`
	CreatedAt time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

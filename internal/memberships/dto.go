package memberships

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
)

// MembershipDTO is the transport shape for a club membership.
type MembershipDTO struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"user_id"`
	Plan      string                 `json:"plan"`
	Amount    decimal.Decimal        `json:"amount"`
	Status    enums.MembershipStatus `json:"status"`
	StartsAt  time.Time              `json:"starts_at"`
	ExpiresAt *time.Time             `json:"expires_at,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// CreateMembershipDTO carries the fields needed to persist a membership.
type CreateMembershipDTO struct {
	UserID    uuid.UUID
	Plan      string
	Amount    decimal.Decimal
	Status    enums.MembershipStatus
	StartsAt  time.Time
	ExpiresAt *time.Time
}

func FromModel(m *models.Membership) *MembershipDTO {
	if m == nil {
		return nil
	}
	return &MembershipDTO{
		ID:        m.ID,
		UserID:    m.UserID,
		Plan:      m.Plan,
		Amount:    m.Amount,
		Status:    m.Status,
		StartsAt:  m.StartsAt,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

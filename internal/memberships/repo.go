package memberships

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
)

// Repository exposes membership persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a memberships repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a membership record.
func (r *Repository) Create(ctx context.Context, dto CreateMembershipDTO) (*models.Membership, error) {
	status := dto.Status
	if status == "" {
		status = enums.MembershipStatusActive
	}
	startsAt := dto.StartsAt
	if startsAt.IsZero() {
		startsAt = time.Now().UTC()
	}
	m := &models.Membership{
		ID:        uuid.New(),
		UserID:    dto.UserID,
		Plan:      dto.Plan,
		Amount:    dto.Amount,
		Status:    status,
		StartsAt:  startsAt,
		ExpiresAt: dto.ExpiresAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// HasActive reports whether the user holds at least one ACTIVE membership.
func (r *Repository) HasActive(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("user_id = ? AND status = ?", userID, enums.MembershipStatusActive).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser returns the user's memberships, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Membership, error) {
	var rows []models.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// CountActive returns how many memberships are currently ACTIVE.
func (r *Repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("status = ?", enums.MembershipStatusActive).
		Count(&count).Error
	return count, err
}

// RevenueSince sums membership amounts created at or after the cutoff.
// Amounts are summed in Go so the arithmetic stays exact across drivers.
func (r *Repository) RevenueSince(ctx context.Context, cutoff time.Time) (decimal.Decimal, error) {
	var rows []models.Membership
	err := r.db.WithContext(ctx).
		Select("amount").
		Where("created_at >= ?", cutoff).
		Find(&rows).Error
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, m := range rows {
		total = total.Add(m.Amount)
	}
	return total, nil
}

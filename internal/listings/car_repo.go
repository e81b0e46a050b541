package listings

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
)

// CarRepository persists car listings.
type CarRepository struct {
	db *gorm.DB
}

// NewCarRepository constructs a car listings repo bound to the provided GORM DB.
func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

// Create inserts a car listing.
func (r *CarRepository) Create(ctx context.Context, listing *models.CarListing) error {
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(listing).Error
}

// FindByID loads a car listing by its UUID.
func (r *CarRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.CarListing, error) {
	var listing models.CarListing
	if err := r.db.WithContext(ctx).First(&listing, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// Approve flips a PENDING listing to APPROVED/ACTIVE. The submission_status
// guard in the WHERE clause makes the transition one-way: the first moderator
// decision wins and any later approve returns zero rows.
func (r *CarRepository) Approve(ctx context.Context, id, adminID uuid.UUID, at, expiresAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.CarListing{}).
		Where("id = ? AND submission_status = ?", id, enums.SubmissionStatusPending).
		Updates(map[string]any{
			"submission_status": enums.SubmissionStatusApproved,
			"status":            enums.CarStatusActive,
			"approved_by_id":    adminID,
			"approved_at":       at,
			"expires_at":        expiresAt,
		})
	return res.RowsAffected, res.Error
}

// Reject flips a PENDING listing to REJECTED, guarded the same way as Approve.
func (r *CarRepository) Reject(ctx context.Context, id uuid.UUID, reason string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.CarListing{}).
		Where("id = ? AND submission_status = ?", id, enums.SubmissionStatusPending).
		Updates(map[string]any{
			"submission_status": enums.SubmissionStatusRejected,
			"status":            enums.CarStatusRejected,
			"rejection_reason":  reason,
		})
	return res.RowsAffected, res.Error
}

// Public returns one page of buyer-visible cars plus the unpaged total.
func (r *CarRepository) Public(ctx context.Context, filters CarFilters, now time.Time) ([]models.CarListing, int64, error) {
	page := filters.Page.Normalize()

	q := r.db.WithContext(ctx).
		Model(&models.CarListing{}).
		Where("status = ? AND submission_status = ? AND expires_at > ?",
			enums.CarStatusActive, enums.SubmissionStatusApproved, now)

	if city := strings.TrimSpace(filters.City); city != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}
	if filters.MinYear > 0 {
		q = q.Where("year >= ?", filters.MinYear)
	}
	if filters.MaxPrice > 0 {
		q = q.Where("asking_price <= ?", filters.MaxPrice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.CarListing
	err := q.Order("is_featured DESC, created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// AdminList returns every car regardless of lifecycle stage, newest first,
// capped at maxRows.
func (r *CarRepository) AdminList(ctx context.Context, maxRows int) ([]models.CarListing, error) {
	var rows []models.CarListing
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(maxRows).
		Find(&rows).Error
	return rows, err
}

// BySeller lists a seller's cars in every state, newest first.
func (r *CarRepository) BySeller(ctx context.Context, sellerID uuid.UUID) ([]models.CarListing, error) {
	var rows []models.CarListing
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// CountPending counts cars awaiting moderation.
func (r *CarRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CarListing{}).
		Where("submission_status = ?", enums.SubmissionStatusPending).
		Count(&count).Error
	return count, err
}

// ExpireDue transitions past-expiry ACTIVE cars to EXPIRED and returns how
// many rows changed.
func (r *CarRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.CarListing{}).
		Where("status = ? AND expires_at <= ?", enums.CarStatusActive, now).
		UpdateColumn("status", enums.CarStatusExpired)
	return res.RowsAffected, res.Error
}

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

// PartsRepository persists parts listings.
type PartsRepository struct {
	db *gorm.DB
}

// NewPartsRepository constructs a parts listings repo bound to the provided GORM DB.
func NewPartsRepository(db *gorm.DB) *PartsRepository {
	return &PartsRepository{db: db}
}

// Create inserts a parts listing.
func (r *PartsRepository) Create(ctx context.Context, listing *models.PartsListing) error {
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(listing).Error
}

// FindByID loads a parts listing by its UUID.
func (r *PartsRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.PartsListing, error) {
	var listing models.PartsListing
	if err := r.db.WithContext(ctx).First(&listing, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// MarkSold flips an AVAILABLE listing to SOLD for the owning seller only.
func (r *PartsRepository) MarkSold(ctx context.Context, id, sellerID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.PartsListing{}).
		Where("id = ? AND seller_id = ? AND status = ?", id, sellerID, enums.PartsStatusAvailable).
		UpdateColumn("status", enums.PartsStatusSold)
	return res.RowsAffected, res.Error
}

// Public returns one page of buyer-visible parts plus the unpaged total.
func (r *PartsRepository) Public(ctx context.Context, filters PartsFilters, now time.Time) ([]models.PartsListing, int64, error) {
	page := filters.Page.Normalize()

	q := r.db.WithContext(ctx).
		Model(&models.PartsListing{}).
		Where("status = ? AND expires_at > ?", enums.PartsStatusAvailable, now)

	if category := strings.TrimSpace(filters.Category); category != "" {
		q = q.Where("category = ?", category)
	}
	if filters.MinPrice > 0 {
		q = q.Where("price >= ?", filters.MinPrice)
	}
	if filters.MaxPrice > 0 {
		q = q.Where("price <= ?", filters.MaxPrice)
	}
	if city := strings.TrimSpace(filters.City); city != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.PartsListing
	err := q.Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// AdminList returns every parts listing, newest first, capped at maxRows.
func (r *PartsRepository) AdminList(ctx context.Context, maxRows int) ([]models.PartsListing, error) {
	var rows []models.PartsListing
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(maxRows).
		Find(&rows).Error
	return rows, err
}

// BySeller lists a seller's parts in every state, newest first.
func (r *PartsRepository) BySeller(ctx context.Context, sellerID uuid.UUID) ([]models.PartsListing, error) {
	var rows []models.PartsListing
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// CountAvailable counts parts currently AVAILABLE.
func (r *PartsRepository) CountAvailable(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PartsListing{}).
		Where("status = ?", enums.PartsStatusAvailable).
		Count(&count).Error
	return count, err
}

// ExpireDue transitions past-expiry AVAILABLE parts to EXPIRED and returns
// how many rows changed.
func (r *PartsRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.PartsListing{}).
		Where("status = ? AND expires_at <= ?", enums.PartsStatusAvailable, now).
		UpdateColumn("status", enums.PartsStatusExpired)
	return res.RowsAffected, res.Error
}

package events

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
)

// Repository persists event announcements.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// Active returns published events, most recent date first.
func (r *Repository) Active(ctx context.Context) ([]models.Event, error) {
	var items []models.Event
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("date DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// All returns every event, hidden ones included.
func (r *Repository) All(ctx context.Context) ([]models.Event, error) {
	var items []models.Event
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

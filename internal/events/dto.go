package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
)

// CreateEventRequest is the admin payload for announcing a club event.
type CreateEventRequest struct {
	Title            string    `json:"title"`
	Description      *string   `json:"description,omitempty"`
	Location         string    `json:"location"`
	Date             time.Time `json:"date"`
	ImageURL         *string   `json:"image_url,omitempty"`
	RegistrationLink *string   `json:"registration_link,omitempty"`
	IsActive         *bool     `json:"is_active,omitempty"`
}

// EventDTO is the transport shape of an event announcement.
type EventDTO struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      *string   `json:"description,omitempty"`
	Location         string    `json:"location"`
	Date             time.Time `json:"date"`
	ImageURL         *string   `json:"image_url,omitempty"`
	RegistrationLink *string   `json:"registration_link,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

func fromModel(e *models.Event) *EventDTO {
	if e == nil {
		return nil
	}
	return &EventDTO{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		Location:         e.Location,
		Date:             e.Date,
		ImageURL:         e.ImageURL,
		RegistrationLink: e.RegistrationLink,
		IsActive:         e.IsActive,
		CreatedAt:        e.CreatedAt,
	}
}

func fromModels(items []models.Event) []EventDTO {
	out := make([]EventDTO, 0, len(items))
	for i := range items {
		out = append(out, *fromModel(&items[i]))
	}
	return out
}

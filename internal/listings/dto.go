package listings

import (
	"time"

	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/pagination"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/types"
)

// Actor identifies the authenticated user performing a listing operation.
type Actor struct {
	ID   uuid.UUID
	Role enums.UserRole
}

// CreateCarRequest is the payload for posting a car for sale.
type CreateCarRequest struct {
	Variant            string   `json:"variant"`
	Year               int      `json:"year"`
	Kilometers         int64    `json:"kilometers"`
	RegistrationNumber string   `json:"registration_number"`
	Ownership          string   `json:"ownership"`
	AskingPrice        int64    `json:"asking_price"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Description        string   `json:"description"`
	Images             []string `json:"images"`
	Modifications      *string  `json:"modifications,omitempty"`
	ServiceHistory     *string  `json:"service_history,omitempty"`
	IsFeatured         bool     `json:"is_featured"`
	IsHotDeal          bool     `json:"is_hot_deal"`
}

// CreatePartsRequest is the payload for posting a spare part.
type CreatePartsRequest struct {
	Title             string   `json:"title"`
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	Price             int64    `json:"price"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Images            []string `json:"images"`
	ContactPreference string   `json:"contact_preference"`
}

// RejectRequest optionally carries the moderator's reason.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// CarFilters narrows the public car view.
type CarFilters struct {
	City     string
	MinYear  int
	MaxPrice int64
	Page     pagination.Params
}

// PartsFilters narrows the public parts view.
type PartsFilters struct {
	Category string
	MinPrice int64
	MaxPrice int64
	City     string
	Search   string
	Page     pagination.Params
}

// CarDTO is the transport shape of a car listing.
type CarDTO struct {
	ID                 uuid.UUID              `json:"id"`
	SellerID           uuid.UUID              `json:"seller_id"`
	Variant            string                 `json:"variant"`
	Year               int                    `json:"year"`
	Kilometers         int64                  `json:"kilometers"`
	RegistrationNumber string                 `json:"registration_number"`
	Ownership          enums.Ownership        `json:"ownership"`
	AskingPrice        int64                  `json:"asking_price"`
	City               string                 `json:"city"`
	State              string                 `json:"state"`
	Description        string                 `json:"description"`
	Images             []string               `json:"images"`
	Modifications      *string                `json:"modifications,omitempty"`
	ServiceHistory     *string                `json:"service_history,omitempty"`
	Status             enums.CarStatus        `json:"status"`
	SubmissionStatus   enums.SubmissionStatus `json:"submission_status"`
	IsFeatured         bool                   `json:"is_featured"`
	IsHotDeal          bool                   `json:"is_hot_deal"`
	ApprovedByID       *uuid.UUID             `json:"approved_by_id,omitempty"`
	ApprovedAt         *time.Time             `json:"approved_at,omitempty"`
	RejectionReason    *string                `json:"rejection_reason,omitempty"`
	ExpiresAt          time.Time              `json:"expires_at"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

// PartsDTO is the transport shape of a parts listing.
type PartsDTO struct {
	ID                uuid.UUID               `json:"id"`
	SellerID          uuid.UUID               `json:"seller_id"`
	Title             string                  `json:"title"`
	Category          enums.PartsCategory     `json:"category"`
	Description       string                  `json:"description"`
	Price             int64                   `json:"price"`
	City              string                  `json:"city"`
	State             string                  `json:"state"`
	Images            []string                `json:"images"`
	ContactPreference enums.ContactPreference `json:"contact_preference"`
	Status            enums.PartsStatus       `json:"status"`
	ExpiresAt         time.Time               `json:"expires_at"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

// CarPage is one page of the public car view.
type CarPage struct {
	Items      []CarDTO         `json:"items"`
	Pagination types.Pagination `json:"pagination"`
}

// PartsPage is one page of the public parts view.
type PartsPage struct {
	Items      []PartsDTO       `json:"items"`
	Pagination types.Pagination `json:"pagination"`
}

// SellerListings groups everything a seller has posted, across both types.
type SellerListings struct {
	Cars  []CarDTO   `json:"cars"`
	Parts []PartsDTO `json:"parts"`
}

func carFromModel(m *models.CarListing) *CarDTO {
	if m == nil {
		return nil
	}
	return &CarDTO{
		ID:                 m.ID,
		SellerID:           m.SellerID,
		Variant:            m.Variant,
		Year:               m.Year,
		Kilometers:         m.Kilometers,
		RegistrationNumber: m.RegistrationNumber,
		Ownership:          m.Ownership,
		AskingPrice:        m.AskingPrice,
		City:               m.City,
		State:              m.State,
		Description:        m.Description,
		Images:             append([]string(nil), m.Images...),
		Modifications:      m.Modifications,
		ServiceHistory:     m.ServiceHistory,
		Status:             m.Status,
		SubmissionStatus:   m.SubmissionStatus,
		IsFeatured:         m.IsFeatured,
		IsHotDeal:          m.IsHotDeal,
		ApprovedByID:       m.ApprovedByID,
		ApprovedAt:         m.ApprovedAt,
		RejectionReason:    m.RejectionReason,
		ExpiresAt:          m.ExpiresAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func carsFromModels(rows []models.CarListing) []CarDTO {
	out := make([]CarDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *carFromModel(&rows[i]))
	}
	return out
}

func partsFromModel(m *models.PartsListing) *PartsDTO {
	if m == nil {
		return nil
	}
	return &PartsDTO{
		ID:                m.ID,
		SellerID:          m.SellerID,
		Title:             m.Title,
		Category:          m.Category,
		Description:       m.Description,
		Price:             m.Price,
		City:              m.City,
		State:             m.State,
		Images:            append([]string(nil), m.Images...),
		ContactPreference: m.ContactPreference,
		Status:            m.Status,
		ExpiresAt:         m.ExpiresAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func partsFromModels(rows []models.PartsListing) []PartsDTO {
	out := make([]PartsDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *partsFromModel(&rows[i]))
	}
	return out
}

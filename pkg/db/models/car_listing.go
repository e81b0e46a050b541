package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/types"
)

// CarListing is a classifieds entry for a whole car. Cars pass through a
// moderation queue before they surface publicly; SubmissionStatus tracks that
// queue while Status tracks availability.
type CarListing struct {
	ID                 uuid.UUID              `gorm:"column:id;type:uuid;primaryKey"`
	SellerID           uuid.UUID              `gorm:"column:seller_id;type:uuid;not null;index"`
	Variant            string                 `gorm:"column:variant;not null"`
	Year               int                    `gorm:"column:year;not null"`
	Kilometers         int64                  `gorm:"column:kilometers;not null"`
	RegistrationNumber string                 `gorm:"column:registration_number;not null"`
	Ownership          enums.Ownership        `gorm:"column:ownership;not null"`
	AskingPrice        int64                  `gorm:"column:asking_price;not null"`
	City               string                 `gorm:"column:city;not null"`
	State              string                 `gorm:"column:state;not null"`
	Description        string                 `gorm:"column:description;not null"`
	Images             types.StringList       `gorm:"column:images;type:text;not null"`
	Modifications      *string                `gorm:"column:modifications"`
	ServiceHistory     *string                `gorm:"column:service_history"`
	Status             enums.CarStatus        `gorm:"column:status;not null"`
	SubmissionStatus   enums.SubmissionStatus `gorm:"column:submission_status;not null"`
	IsFeatured         bool                   `gorm:"column:is_featured;not null;default:false"`
	IsHotDeal          bool                   `gorm:"column:is_hot_deal;not null;default:false"`
	ApprovedByID       *uuid.UUID             `gorm:"column:approved_by_id;type:uuid"`
	ApprovedAt         *time.Time             `gorm:"column:approved_at"`
	RejectionReason    *string                `gorm:"column:rejection_reason"`
	ExpiresAt          time.Time              `gorm:"column:expires_at;not null"`
	CreatedAt          time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
)

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID           uuid.UUID       `json:"id"`
	FullName     string          `json:"full_name"`
	Email        string          `json:"email"`
	Phone        *string         `json:"phone,omitempty"`
	Role         enums.UserRole  `json:"role"`
	City         *string         `json:"city,omitempty"`
	CarModel     *enums.CarModel `json:"car_model,omitempty"`
	CarYear      *int            `json:"car_year,omitempty"`
	ProfilePhoto *string         `json:"profile_photo,omitempty"`
	LastLoginAt  *time.Time      `json:"last_login_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	FullName     string
	Email        string
	Phone        *string
	PasswordHash string
	Role         enums.UserRole
	City         *string
	CarModel     *enums.CarModel
	CarYear      *int
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		Phone:        u.Phone,
		Role:         u.Role,
		City:         u.City,
		CarModel:     u.CarModel,
		CarYear:      u.CarYear,
		ProfilePhoto: u.ProfilePhoto,
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	role := c.Role
	if role == "" {
		role = enums.UserRoleUser
	}

	return &models.User{
		FullName:     c.FullName,
		Email:        c.Email,
		Phone:        c.Phone,
		PasswordHash: c.PasswordHash,
		Role:         role,
		City:         c.City,
		CarModel:     c.CarModel,
		CarYear:      c.CarYear,
	}
}

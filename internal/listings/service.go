package listings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/config"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/pagination"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/types"
)

// DefaultRejectionReason is recorded when a moderator rejects without comment.
const DefaultRejectionReason = "Does not meet listing requirements"

// Service owns the listing lifecycle: gated creation, car moderation,
// filtered query views, and expiry.
type Service interface {
	CreateCar(ctx context.Context, actor Actor, req CreateCarRequest) (*CarDTO, error)
	ApproveCar(ctx context.Context, adminID, carID uuid.UUID) (*CarDTO, error)
	RejectCar(ctx context.Context, carID uuid.UUID, reason string) (*CarDTO, error)
	PublicCars(ctx context.Context, filters CarFilters) (*CarPage, error)
	AdminCars(ctx context.Context) ([]CarDTO, error)

	CreateParts(ctx context.Context, actor Actor, req CreatePartsRequest) (*PartsDTO, error)
	MarkPartSold(ctx context.Context, actor Actor, partID uuid.UUID) (*PartsDTO, error)
	PublicParts(ctx context.Context, filters PartsFilters) (*PartsPage, error)
	AdminParts(ctx context.Context) ([]PartsDTO, error)

	SellerListings(ctx context.Context, sellerID uuid.UUID) (*SellerListings, error)
}

type carRepository interface {
	Create(ctx context.Context, listing *models.CarListing) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.CarListing, error)
	Approve(ctx context.Context, id, adminID uuid.UUID, at, expiresAt time.Time) (int64, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) (int64, error)
	Public(ctx context.Context, filters CarFilters, now time.Time) ([]models.CarListing, int64, error)
	AdminList(ctx context.Context, maxRows int) ([]models.CarListing, error)
	BySeller(ctx context.Context, sellerID uuid.UUID) ([]models.CarListing, error)
}

type partsRepository interface {
	Create(ctx context.Context, listing *models.PartsListing) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.PartsListing, error)
	MarkSold(ctx context.Context, id, sellerID uuid.UUID) (int64, error)
	Public(ctx context.Context, filters PartsFilters, now time.Time) ([]models.PartsListing, int64, error)
	AdminList(ctx context.Context, maxRows int) ([]models.PartsListing, error)
	BySeller(ctx context.Context, sellerID uuid.UUID) ([]models.PartsListing, error)
}

type creationGate interface {
	Permit(ctx context.Context, actor Actor) error
}

type service struct {
	cars  carRepository
	parts partsRepository
	gate  creationGate
	cfg   config.ListingsConfig
	now   func() time.Time
}

// ServiceParams bundles the dependencies required to build a listings service.
type ServiceParams struct {
	CarRepo   carRepository
	PartsRepo partsRepository
	Gate      creationGate
	Config    config.ListingsConfig
}

// NewService constructs the listings service.
func NewService(params ServiceParams) (Service, error) {
	if params.CarRepo == nil {
		return nil, fmt.Errorf("car repository is required")
	}
	if params.PartsRepo == nil {
		return nil, fmt.Errorf("parts repository is required")
	}
	if params.Gate == nil {
		return nil, fmt.Errorf("creation gate is required")
	}
	cfg := params.Config
	if cfg.ExpiryDays <= 0 {
		cfg.ExpiryDays = 90
	}
	if cfg.PublicPageSize <= 0 {
		cfg.PublicPageSize = 12
	}
	if cfg.AdminMaxRows <= 0 {
		cfg.AdminMaxRows = 100
	}
	return &service{
		cars:  params.CarRepo,
		parts: params.PartsRepo,
		gate:  params.Gate,
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *service) expiry(from time.Time) time.Time {
	return from.AddDate(0, 0, s.cfg.ExpiryDays)
}

func (s *service) CreateCar(ctx context.Context, actor Actor, req CreateCarRequest) (*CarDTO, error) {
	if err := s.gate.Permit(ctx, actor); err != nil {
		return nil, err
	}
	if err := validateCar(req); err != nil {
		return nil, err
	}

	ownership, err := enums.ParseOwnership(req.Ownership)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid ownership")
	}

	now := s.now()
	listing := &models.CarListing{
		SellerID:           actor.ID,
		Variant:            strings.TrimSpace(req.Variant),
		Year:               req.Year,
		Kilometers:         req.Kilometers,
		RegistrationNumber: strings.ToUpper(strings.TrimSpace(req.RegistrationNumber)),
		Ownership:          ownership,
		AskingPrice:        req.AskingPrice,
		City:               strings.TrimSpace(req.City),
		State:              strings.TrimSpace(req.State),
		Description:        strings.TrimSpace(req.Description),
		Images:             nonEmptyImages(req.Images),
		Modifications:      req.Modifications,
		ServiceHistory:     req.ServiceHistory,
		Status:             enums.CarStatusPending,
		SubmissionStatus:   enums.SubmissionStatusPending,
		IsFeatured:         req.IsFeatured,
		IsHotDeal:          req.IsHotDeal,
		CreatedAt:          now,
		ExpiresAt:          s.expiry(now),
	}
	if err := s.cars.Create(ctx, listing); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create car listing")
	}
	return carFromModel(listing), nil
}

func (s *service) ApproveCar(ctx context.Context, adminID, carID uuid.UUID) (*CarDTO, error) {
	now := s.now()
	rows, err := s.cars.Approve(ctx, carID, adminID, now, s.expiry(now))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "approve car listing")
	}
	if rows == 0 {
		return nil, s.moderationConflict(ctx, carID)
	}
	return s.loadCar(ctx, carID)
}

func (s *service) RejectCar(ctx context.Context, carID uuid.UUID, reason string) (*CarDTO, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultRejectionReason
	}
	rows, err := s.cars.Reject(ctx, carID, reason)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reject car listing")
	}
	if rows == 0 {
		return nil, s.moderationConflict(ctx, carID)
	}
	return s.loadCar(ctx, carID)
}

// moderationConflict distinguishes a missing listing from one whose
// moderation already concluded.
func (s *service) moderationConflict(ctx context.Context, carID uuid.UUID) error {
	listing, err := s.cars.FindByID(ctx, carID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "listing not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load car listing")
	}
	return pkgerrors.New(pkgerrors.CodeStateConflict, "listing moderation already concluded").
		WithDetails(map[string]any{"submission_status": listing.SubmissionStatus})
}

func (s *service) loadCar(ctx context.Context, carID uuid.UUID) (*CarDTO, error) {
	listing, err := s.cars.FindByID(ctx, carID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "listing not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load car listing")
	}
	return carFromModel(listing), nil
}

func (s *service) PublicCars(ctx context.Context, filters CarFilters) (*CarPage, error) {
	filters.Page.Limit = s.cfg.PublicPageSize
	filters.Page = filters.Page.Normalize()

	rows, total, err := s.cars.Public(ctx, filters, s.now())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "query public cars")
	}
	return &CarPage{
		Items: carsFromModels(rows),
		Pagination: types.Pagination{
			Page:       filters.Page.Page,
			Limit:      filters.Page.Limit,
			Total:      total,
			TotalPages: pagination.TotalPages(total, filters.Page.Limit),
		},
	}, nil
}

func (s *service) AdminCars(ctx context.Context) ([]CarDTO, error) {
	rows, err := s.cars.AdminList(ctx, s.cfg.AdminMaxRows)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "query admin cars")
	}
	return carsFromModels(rows), nil
}

func (s *service) CreateParts(ctx context.Context, actor Actor, req CreatePartsRequest) (*PartsDTO, error) {
	if err := s.gate.Permit(ctx, actor); err != nil {
		return nil, err
	}
	if err := validateParts(req); err != nil {
		return nil, err
	}

	category, err := enums.ParsePartsCategory(req.Category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}
	contact := enums.ContactPreferenceWhatsApp
	if req.ContactPreference != "" {
		contact, err = enums.ParseContactPreference(req.ContactPreference)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid contact preference")
		}
	}

	now := s.now()
	listing := &models.PartsListing{
		SellerID:          actor.ID,
		Title:             strings.TrimSpace(req.Title),
		Category:          category,
		Description:       strings.TrimSpace(req.Description),
		Price:             req.Price,
		City:              strings.TrimSpace(req.City),
		State:             strings.TrimSpace(req.State),
		Images:            nonEmptyImages(req.Images),
		ContactPreference: contact,
		Status:            enums.PartsStatusAvailable,
		CreatedAt:         now,
		ExpiresAt:         s.expiry(now),
	}
	if err := s.parts.Create(ctx, listing); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create parts listing")
	}
	return partsFromModel(listing), nil
}

func (s *service) MarkPartSold(ctx context.Context, actor Actor, partID uuid.UUID) (*PartsDTO, error) {
	rows, err := s.parts.MarkSold(ctx, partID, actor.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mark part sold")
	}
	if rows == 0 {
		listing, err := s.parts.FindByID(ctx, partID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "listing not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load parts listing")
		}
		if listing.SellerID != actor.ID {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only the seller may mark a part sold")
		}
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "listing is not available").
			WithDetails(map[string]any{"status": listing.Status})
	}

	listing, err := s.parts.FindByID(ctx, partID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load parts listing")
	}
	return partsFromModel(listing), nil
}

func (s *service) PublicParts(ctx context.Context, filters PartsFilters) (*PartsPage, error) {
	filters.Page.Limit = s.cfg.PublicPageSize
	filters.Page = filters.Page.Normalize()

	rows, total, err := s.parts.Public(ctx, filters, s.now())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "query public parts")
	}
	return &PartsPage{
		Items: partsFromModels(rows),
		Pagination: types.Pagination{
			Page:       filters.Page.Page,
			Limit:      filters.Page.Limit,
			Total:      total,
			TotalPages: pagination.TotalPages(total, filters.Page.Limit),
		},
	}, nil
}

func (s *service) AdminParts(ctx context.Context) ([]PartsDTO, error) {
	rows, err := s.parts.AdminList(ctx, s.cfg.AdminMaxRows)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "query admin parts")
	}
	return partsFromModels(rows), nil
}

func (s *service) SellerListings(ctx context.Context, sellerID uuid.UUID) (*SellerListings, error) {
	cars, err := s.cars.BySeller(ctx, sellerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "query seller cars")
	}
	parts, err := s.parts.BySeller(ctx, sellerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "query seller parts")
	}
	return &SellerListings{
		Cars:  carsFromModels(cars),
		Parts: partsFromModels(parts),
	}, nil
}

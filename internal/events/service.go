package events

import (
	"context"
	"fmt"
	"strings"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
)

// Service exposes the club event announcements.
type Service interface {
	PublicList(ctx context.Context) ([]EventDTO, error)
	AdminList(ctx context.Context) ([]EventDTO, error)
	Create(ctx context.Context, req CreateEventRequest) (*EventDTO, error)
}

type eventRepository interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	Active(ctx context.Context) ([]models.Event, error)
	All(ctx context.Context) ([]models.Event, error)
}

type service struct {
	repo eventRepository
}

// ServiceParams bundles the dependencies for the events service.
type ServiceParams struct {
	Repo eventRepository
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("event repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) PublicList(ctx context.Context) ([]EventDTO, error) {
	items, err := s.repo.Active(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list events")
	}
	return fromModels(items), nil
}

func (s *service) AdminList(ctx context.Context) ([]EventDTO, error) {
	items, err := s.repo.All(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list events")
	}
	return fromModels(items), nil
}

func (s *service) Create(ctx context.Context, req CreateEventRequest) (*EventDTO, error) {
	if err := validateEvent(req); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	event := &models.Event{
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		Location:         strings.TrimSpace(req.Location),
		Date:             req.Date,
		ImageURL:         req.ImageURL,
		RegistrationLink: req.RegistrationLink,
		IsActive:         isActive,
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create event")
	}
	return fromModel(created), nil
}

func validateEvent(req CreateEventRequest) error {
	fields := map[string]string{}

	if len(strings.TrimSpace(req.Title)) < 3 {
		fields["title"] = "must be at least 3 characters"
	}
	if len(strings.TrimSpace(req.Location)) < 2 {
		fields["location"] = "must be at least 2 characters"
	}
	if req.Date.IsZero() {
		fields["date"] = "is required"
	}

	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(fields)
	}
	return nil
}

package orders

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
)

// Service exposes the buyer-facing order history.
type Service interface {
	MyOrders(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error)
}

type orderRepository interface {
	ByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
}

type service struct {
	repo orderRepository
}

// ServiceParams bundles the dependencies for the order history service.
type ServiceParams struct {
	Repo orderRepository
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("order repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) MyOrders(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing user identity")
	}
	items, err := s.repo.ByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return FromModels(items), nil
}

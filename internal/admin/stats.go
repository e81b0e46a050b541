package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
)

// StatsDTO is the back-office dashboard snapshot.
type StatsDTO struct {
	TotalUsers     int64           `json:"total_users"`
	ActiveMembers  int64           `json:"active_members"`
	AvailableParts int64           `json:"available_parts"`
	PendingCars    int64           `json:"pending_cars"`
	TotalOrders    int64           `json:"total_orders"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
}

// StatsService aggregates platform counters for the admin dashboard.
type StatsService interface {
	Stats(ctx context.Context) (*StatsDTO, error)
}

type userCounter interface {
	CountAll(ctx context.Context) (int64, error)
}

type membershipStats interface {
	CountActive(ctx context.Context) (int64, error)
	RevenueSince(ctx context.Context, cutoff time.Time) (decimal.Decimal, error)
}

type carStats interface {
	CountPending(ctx context.Context) (int64, error)
}

type partsStats interface {
	CountAvailable(ctx context.Context) (int64, error)
}

type orderCounter interface {
	CountAll(ctx context.Context) (int64, error)
}

type statsService struct {
	users       userCounter
	memberships membershipStats
	cars        carStats
	parts       partsStats
	orders      orderCounter
	now         func() time.Time
}

// StatsServiceParams bundles the counters backing the dashboard.
type StatsServiceParams struct {
	Users       userCounter
	Memberships membershipStats
	Cars        carStats
	Parts       partsStats
	Orders      orderCounter
}

func NewStatsService(params StatsServiceParams) (StatsService, error) {
	if params.Users == nil {
		return nil, fmt.Errorf("user counter is required")
	}
	if params.Memberships == nil {
		return nil, fmt.Errorf("membership stats are required")
	}
	if params.Cars == nil {
		return nil, fmt.Errorf("car stats are required")
	}
	if params.Parts == nil {
		return nil, fmt.Errorf("parts stats are required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("order counter is required")
	}
	return &statsService{
		users:       params.Users,
		memberships: params.Memberships,
		cars:        params.Cars,
		parts:       params.Parts,
		orders:      params.Orders,
		now:         func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *statsService) Stats(ctx context.Context) (*StatsDTO, error) {
	stats := &StatsDTO{}
	var err error

	if stats.TotalUsers, err = s.users.CountAll(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count users")
	}
	if stats.ActiveMembers, err = s.memberships.CountActive(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count active members")
	}
	if stats.AvailableParts, err = s.parts.CountAvailable(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count available parts")
	}
	if stats.PendingCars, err = s.cars.CountPending(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count pending cars")
	}
	if stats.TotalOrders, err = s.orders.CountAll(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count orders")
	}

	monthStart := startOfMonth(s.now())
	if stats.MonthlyRevenue, err = s.memberships.RevenueSince(ctx, monthStart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum monthly revenue")
	}
	return stats, nil
}

func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

package cron

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/logger"
)

type listingExpirer interface {
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

// ListingExpiryJobParams configure the classifieds expiry sweep.
type ListingExpiryJobParams struct {
	Logger *logger.Logger
	Cars   listingExpirer
	Parts  listingExpirer
}

// NewListingExpiryJob builds the job that retires listings past their
// expiry date. The public views already filter these out; the sweep keeps
// the stored status honest.
func NewListingExpiryJob(params ListingExpiryJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Cars == nil {
		return nil, fmt.Errorf("car repository required")
	}
	if params.Parts == nil {
		return nil, fmt.Errorf("parts repository required")
	}
	return &listingExpiryJob{
		logg:  params.Logger,
		cars:  params.Cars,
		parts: params.Parts,
		now:   time.Now,
	}, nil
}

type listingExpiryJob struct {
	logg  *logger.Logger
	cars  listingExpirer
	parts listingExpirer
	now   func() time.Time
}

func (j *listingExpiryJob) Name() string { return "listing-expiry" }

func (j *listingExpiryJob) Run(ctx context.Context) error {
	now := j.now().UTC()

	var errs []error
	expiredCars, err := j.cars.ExpireDue(ctx, now)
	if err != nil {
		errs = append(errs, fmt.Errorf("expire cars: %w", err))
	}
	expiredParts, err := j.parts.ExpireDue(ctx, now)
	if err != nil {
		errs = append(errs, fmt.Errorf("expire parts: %w", err))
	}

	logCtx := j.logg.WithFields(ctx, map[string]any{
		"expired_cars":  expiredCars,
		"expired_parts": expiredParts,
	})
	j.logg.Info(logCtx, "listing expiry sweep complete")
	return multierr.Combine(errs...)
}

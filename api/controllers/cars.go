package controllers

import (
	"net/http"
	"strings"

	"github.com/rushjoshburner/PGTC-WEBAPP/api/responses"
	"github.com/rushjoshburner/PGTC-WEBAPP/api/validators"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/listings"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/logger"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/pagination"
)

// CarCreate submits a car listing for moderation.
func CarCreate(svc listings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "listings service unavailable"))
			return
		}

		actor, err := actorFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body listings.CreateCarRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateCar(r.Context(), actor, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// CarPublicList serves the approved, unexpired car classifieds.
func CarPublicList(svc listings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "listings service unavailable"))
			return
		}

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 100000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		minYear, err := validators.ParseQueryInt(r, "minYear", 0, 0, 9999)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		maxPrice, err := validators.ParseQueryInt64(r, "maxPrice", 0)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.PublicCars(r.Context(), listings.CarFilters{
			City:     strings.TrimSpace(r.URL.Query().Get("city")),
			MinYear:  minYear,
			MaxPrice: maxPrice,
			Page:     pagination.Params{Page: page},
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/api/responses"
	"github.com/rushjoshburner/PGTC-WEBAPP/api/validators"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/listings"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/logger"
)

type moderateCarBody struct {
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}

// AdminCarList shows the moderation queue and recent cars regardless of state.
func AdminCarList(svc listings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "listings service unavailable"))
			return
		}

		items, err := svc.AdminCars(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// AdminCarModerate approves or rejects a pending car listing.
func AdminCarModerate(svc listings.Service, logg *logger.Logger) http.HandlerFunc {
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

		carID, err := uuid.Parse(chi.URLParam(r, "carId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid listing id"))
			return
		}

		var body moderateCarBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var result *listings.CarDTO
		switch strings.ToLower(strings.TrimSpace(body.Action)) {
		case "approve":
			result, err = svc.ApproveCar(r.Context(), actor.ID, carID)
		case "reject":
			result, err = svc.RejectCar(r.Context(), carID, body.Reason)
		default:
			err = pkgerrors.New(pkgerrors.CodeValidation, "action must be approve or reject")
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AdminPartsList shows recent part listings regardless of state.
func AdminPartsList(svc listings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "listings service unavailable"))
			return
		}

		items, err := svc.AdminParts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

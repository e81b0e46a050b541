package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/api/responses"
	"github.com/rushjoshburner/PGTC-WEBAPP/api/validators"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/admin"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/logger"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/pagination"
)

// AdminUserList pages through registered members with optional name/email search.
func AdminUserList(svc admin.UsersService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin users service unavailable"))
			return
		}

		query := strings.TrimSpace(r.URL.Query().Get("q"))
		page, err := validators.ParseQueryInt(r, "page", 1, 1, 100000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), query, pagination.Params{Page: page})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AdminUserUpdateRole changes a member's role.
func AdminUserUpdateRole(svc admin.UsersService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin users service unavailable"))
			return
		}

		userID, err := uuid.Parse(chi.URLParam(r, "userId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid user id"))
			return
		}

		var body struct {
			Role string `json:"role"`
		}
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.UpdateRole(r.Context(), userID, body.Role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

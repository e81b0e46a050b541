package controllers

import (
	"net/http"

	"github.com/rushjoshburner/PGTC-WEBAPP/api/responses"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/admin"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/logger"
)

// AdminStats returns the back-office dashboard counters.
func AdminStats(svc admin.StatsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin stats service unavailable"))
			return
		}

		result, err := svc.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

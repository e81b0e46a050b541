package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/api/middleware"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/cart"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/listings"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
)

func actorFromRequest(r *http.Request) (listings.Actor, error) {
	userID, role, err := identityFromRequest(r)
	if err != nil {
		return listings.Actor{}, err
	}
	return listings.Actor{ID: userID, Role: role}, nil
}

func buyerFromRequest(r *http.Request) (cart.Actor, error) {
	userID, role, err := identityFromRequest(r)
	if err != nil {
		return cart.Actor{}, err
	}
	return cart.Actor{ID: userID, Role: role}, nil
}

func identityFromRequest(r *http.Request) (uuid.UUID, enums.UserRole, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, "", pkgerrors.New(pkgerrors.CodeUnauthorized, "missing user identity")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, "", pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid user identity")
	}
	return userID, enums.UserRole(middleware.RoleFromContext(r.Context())), nil
}

func parseBearerToken(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	token := raw
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	if token == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	return token, nil
}

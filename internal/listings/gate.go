package listings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
)

type activeMembershipChecker interface {
	HasActive(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Gate decides whether an actor may create listings. Creation is denied only
// when the actor carries the base USER role and holds no ACTIVE membership.
type Gate struct {
	memberships activeMembershipChecker
}

// NewGate constructs the membership gate.
func NewGate(memberships activeMembershipChecker) (*Gate, error) {
	if memberships == nil {
		return nil, fmt.Errorf("memberships repository is required")
	}
	return &Gate{memberships: memberships}, nil
}

// Permit returns nil when the actor may create listings.
func (g *Gate) Permit(ctx context.Context, actor Actor) error {
	if actor.ID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	if actor.Role != enums.UserRoleUser {
		return nil
	}
	active, err := g.memberships.HasActive(ctx, actor.ID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check membership")
	}
	if !active {
		return pkgerrors.New(pkgerrors.CodeForbidden, "active club membership required to post listings")
	}
	return nil
}

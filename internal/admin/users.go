package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rushjoshburner/PGTC-WEBAPP/internal/users"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/pagination"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/types"
)

const userPageSize = 20

// AdminUserDTO is a directory row with the membership flag resolved.
type AdminUserDTO struct {
	users.UserDTO
	HasActiveMembership bool `json:"has_active_membership"`
}

// UserPage is one page of the member directory.
type UserPage struct {
	Items      []AdminUserDTO   `json:"items"`
	Pagination types.Pagination `json:"pagination"`
}

// UsersService is the back-office member directory.
type UsersService interface {
	List(ctx context.Context, query string, page pagination.Params) (*UserPage, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (*users.UserDTO, error)
}

type adminUserRepository interface {
	Search(ctx context.Context, query string, page pagination.Params) ([]models.User, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role enums.UserRole) error
}

type membershipChecker interface {
	HasActive(ctx context.Context, userID uuid.UUID) (bool, error)
}

type usersService struct {
	repo        adminUserRepository
	memberships membershipChecker
}

// UsersServiceParams bundles the dependencies for the member directory.
type UsersServiceParams struct {
	Repo        adminUserRepository
	Memberships membershipChecker
}

func NewUsersService(params UsersServiceParams) (UsersService, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.Memberships == nil {
		return nil, fmt.Errorf("membership checker is required")
	}
	return &usersService{repo: params.Repo, memberships: params.Memberships}, nil
}

func (s *usersService) List(ctx context.Context, query string, page pagination.Params) (*UserPage, error) {
	page.Limit = userPageSize
	page = page.Normalize()

	rows, total, err := s.repo.Search(ctx, query, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search users")
	}

	items := make([]AdminUserDTO, 0, len(rows))
	for i := range rows {
		active, err := s.memberships.HasActive(ctx, rows[i].ID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check membership")
		}
		items = append(items, AdminUserDTO{
			UserDTO:             *users.FromModel(&rows[i]),
			HasActiveMembership: active,
		})
	}

	return &UserPage{
		Items: items,
		Pagination: types.Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      total,
			TotalPages: pagination.TotalPages(total, page.Limit),
		},
	}, nil
}

func (s *usersService) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*users.UserDTO, error) {
	parsed, err := enums.ParseUserRole(role)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid user role").
			WithDetails(map[string]string{"role": "must be USER, MEMBER, MODERATOR, or ADMIN"})
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup user")
	}

	if err := s.repo.UpdateRole(ctx, id, parsed); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update role")
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload user")
	}
	return users.FromModel(updated), nil
}

package admin

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rushjoshburner/PGTC-WEBAPP/internal/users"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/pagination"
)

type stubMembershipChecker struct {
	active map[uuid.UUID]bool
}

func (s *stubMembershipChecker) HasActive(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.active[userID], nil
}

func newUsersTestService(t *testing.T) (UsersService, *users.Repository, *stubMembershipChecker) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repo := users.NewRepository(conn)
	checker := &stubMembershipChecker{active: map[uuid.UUID]bool{}}
	svc, err := NewUsersService(UsersServiceParams{Repo: repo, Memberships: checker})
	if err != nil {
		t.Fatalf("new users service: %v", err)
	}
	return svc, repo, checker
}

func seedUser(t *testing.T, repo *users.Repository, name, email string) *models.User {
	t.Helper()
	user, err := repo.Create(context.Background(), users.CreateUserDTO{
		FullName:     name,
		Email:        email,
		PasswordHash: "hash",
		Role:         enums.UserRoleUser,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func TestListSearchesAndFlagsMembers(t *testing.T) {
	svc, repo, checker := newUsersTestService(t)
	ctx := context.Background()

	member := seedUser(t, repo, "Arjun Mehta", "arjun@example.com")
	seedUser(t, repo, "Priya Nair", "priya@example.com")
	checker.active[member.ID] = true

	page, err := svc.List(ctx, "arjun", pagination.Params{Page: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("expected 1 match, got %d", len(page.Items))
	}
	if !page.Items[0].HasActiveMembership {
		t.Fatalf("expected membership flag set")
	}
	if page.Pagination.Limit != 20 {
		t.Fatalf("expected page size 20, got %d", page.Pagination.Limit)
	}

	all, err := svc.List(ctx, "", pagination.Params{Page: 1})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all.Items) != 2 || all.Pagination.Total != 2 {
		t.Fatalf("expected 2 users, got %+v", all.Pagination)
	}
}

func TestUpdateRole(t *testing.T) {
	svc, repo, _ := newUsersTestService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "Arjun Mehta", "arjun@example.com")

	updated, err := svc.UpdateRole(ctx, user.ID, "MODERATOR")
	if err != nil {
		t.Fatalf("update role: %v", err)
	}
	if updated.Role != enums.UserRoleModerator {
		t.Fatalf("expected MODERATOR, got %s", updated.Role)
	}

	_, err = svc.UpdateRole(ctx, user.ID, "SUPERUSER")
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown role, got %v", err)
	}

	_, err = svc.UpdateRole(ctx, uuid.New(), "ADMIN")
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

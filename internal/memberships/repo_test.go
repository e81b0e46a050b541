package memberships

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.User{}, &models.Membership{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	u := &models.User{
		ID:           uuid.New(),
		FullName:     "Test Member",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "hash",
		Role:         enums.UserRoleUser,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestHasActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	user := seedUser(t, db)

	active, err := repo.HasActive(ctx, user.ID)
	if err != nil {
		t.Fatalf("has active: %v", err)
	}
	if active {
		t.Fatal("expected no active membership before create")
	}

	if _, err := repo.Create(ctx, CreateMembershipDTO{
		UserID: user.ID,
		Plan:   "annual",
		Amount: decimal.NewFromInt(2500),
		Status: enums.MembershipStatusExpired,
	}); err != nil {
		t.Fatalf("create expired membership: %v", err)
	}

	active, err = repo.HasActive(ctx, user.ID)
	if err != nil {
		t.Fatalf("has active: %v", err)
	}
	if active {
		t.Fatal("expired membership must not count as active")
	}

	if _, err := repo.Create(ctx, CreateMembershipDTO{
		UserID: user.ID,
		Plan:   "annual",
		Amount: decimal.NewFromInt(2500),
	}); err != nil {
		t.Fatalf("create active membership: %v", err)
	}

	active, err = repo.HasActive(ctx, user.ID)
	if err != nil {
		t.Fatalf("has active: %v", err)
	}
	if !active {
		t.Fatal("expected active membership to be found")
	}
}

func TestRevenueSince(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	user := seedUser(t, db)

	old := &models.Membership{
		ID:       uuid.New(),
		UserID:   user.ID,
		Plan:     "annual",
		Amount:   decimal.NewFromInt(1000),
		Status:   enums.MembershipStatusExpired,
		StartsAt: time.Now().AddDate(-1, 0, 0),
	}
	if err := db.Create(old).Error; err != nil {
		t.Fatalf("seed old membership: %v", err)
	}
	// Push it outside the revenue window.
	if err := db.Model(old).UpdateColumn("created_at", time.Now().AddDate(0, -2, 0)).Error; err != nil {
		t.Fatalf("backdate membership: %v", err)
	}

	for _, amount := range []int64{2500, 1500} {
		if _, err := repo.Create(ctx, CreateMembershipDTO{
			UserID: user.ID,
			Plan:   "annual",
			Amount: decimal.NewFromInt(amount),
		}); err != nil {
			t.Fatalf("create membership: %v", err)
		}
	}

	cutoff := time.Now().Add(-time.Hour)
	total, err := repo.RevenueSince(ctx, cutoff)
	if err != nil {
		t.Fatalf("revenue since: %v", err)
	}
	if !total.Equal(decimal.NewFromInt(4000)) {
		t.Fatalf("expected 4000, got %s", total)
	}
}

func TestCountActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	u1 := seedUser(t, db)
	u2 := seedUser(t, db)

	if _, err := repo.Create(ctx, CreateMembershipDTO{UserID: u1.ID, Plan: "annual", Amount: decimal.NewFromInt(2500)}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, CreateMembershipDTO{UserID: u2.ID, Plan: "annual", Amount: decimal.NewFromInt(2500), Status: enums.MembershipStatusCancelled}); err != nil {
		t.Fatalf("create: %v", err)
	}

	count, err := repo.CountActive(ctx)
	if err != nil {
		t.Fatalf("count active: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 active membership, got %d", count)
	}
}

package cart

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/config"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/logger"
	pkgredis "github.com/rushjoshburner/PGTC-WEBAPP/pkg/redis"
)

type stubCatalog struct {
	products map[uuid.UUID]models.Product
}

func (s *stubCatalog) ByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Product, error) {
	out := map[uuid.UUID]models.Product{}
	for _, id := range ids {
		if product, ok := s.products[id]; ok {
			out[id] = product
		}
	}
	return out, nil
}

type stubMemberships struct {
	active map[uuid.UUID]bool
}

func (s *stubMemberships) HasActive(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.active[userID], nil
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := pkgredis.New(context.Background(), config.RedisConfig{
		Address: mr.Addr(),
	}, logger.New(logger.Options{Output: io.Discard}))
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	store, err := NewStore(client, time.Hour)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func seedProduct(catalog *stubCatalog, price, memberPrice int64, active bool) uuid.UUID {
	id := uuid.New()
	catalog.products[id] = models.Product{
		ID:          id,
		Name:        "Club Tee",
		SKU:         "PGTC-TEE",
		Price:       price,
		MemberPrice: memberPrice,
		Images:      []string{"https://cdn.example.com/tee.jpg"},
		IsActive:    active,
	}
	return id
}

func newCartTestService(t *testing.T) (Service, *stubCatalog, *stubMemberships) {
	t.Helper()
	catalog := &stubCatalog{products: map[uuid.UUID]models.Product{}}
	members := &stubMemberships{active: map[uuid.UUID]bool{}}
	svc, err := NewService(ServiceParams{
		Store:       newTestStore(t),
		Catalog:     catalog,
		Memberships: members,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, catalog, members
}

func TestCartLifecycle(t *testing.T) {
	svc, catalog, _ := newCartTestService(t)
	ctx := context.Background()
	actor := Actor{ID: uuid.New(), Role: enums.UserRoleUser}

	tee := seedProduct(catalog, 1499, 1199, true)
	capID := seedProduct(catalog, 799, 699, true)

	quoted, err := svc.Add(ctx, actor, tee, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if quoted.Subtotal != 2998 {
		t.Fatalf("expected subtotal 2998, got %d", quoted.Subtotal)
	}

	if _, err := svc.Add(ctx, actor, capID, 1); err != nil {
		t.Fatalf("add cap: %v", err)
	}

	quoted, err = svc.SetQuantity(ctx, actor, tee, 1)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if quoted.Subtotal != 1499+799 {
		t.Fatalf("expected subtotal %d, got %d", 1499+799, quoted.Subtotal)
	}

	quoted, err = svc.Remove(ctx, actor, capID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(quoted.Items) != 1 || quoted.Items[0].ProductID != tee {
		t.Fatalf("expected only the tee to remain")
	}

	if err := svc.Clear(ctx, actor); err != nil {
		t.Fatalf("clear: %v", err)
	}
	quoted, err = svc.View(ctx, actor)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(quoted.Items) != 0 || quoted.Subtotal != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", quoted)
	}
}

func TestCartSurvivesReload(t *testing.T) {
	svc, catalog, _ := newCartTestService(t)
	ctx := context.Background()
	actor := Actor{ID: uuid.New(), Role: enums.UserRoleUser}

	tee := seedProduct(catalog, 1499, 1199, true)
	if _, err := svc.Add(ctx, actor, tee, 3); err != nil {
		t.Fatalf("add: %v", err)
	}

	quoted, err := svc.View(ctx, actor)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(quoted.Items) != 1 || quoted.Items[0].Quantity != 3 {
		t.Fatalf("expected persisted cart with quantity 3, got %+v", quoted)
	}
}

func TestCartMemberPricing(t *testing.T) {
	svc, catalog, members := newCartTestService(t)
	ctx := context.Background()

	tee := seedProduct(catalog, 1499, 1199, true)

	guest := Actor{ID: uuid.New(), Role: enums.UserRoleUser}
	quoted, err := svc.Add(ctx, guest, tee, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if quoted.MemberPricing || quoted.Subtotal != 1499 {
		t.Fatalf("expected regular pricing, got %+v", quoted)
	}

	paid := Actor{ID: uuid.New(), Role: enums.UserRoleUser}
	members.active[paid.ID] = true
	quoted, err = svc.Add(ctx, paid, tee, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !quoted.MemberPricing || quoted.Subtotal != 1199 {
		t.Fatalf("expected member pricing for active membership, got %+v", quoted)
	}

	lifetime := Actor{ID: uuid.New(), Role: enums.UserRoleMember}
	quoted, err = svc.Add(ctx, lifetime, tee, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !quoted.MemberPricing {
		t.Fatalf("expected member pricing for MEMBER role")
	}
}

func TestCartRejectsBadInput(t *testing.T) {
	svc, catalog, _ := newCartTestService(t)
	ctx := context.Background()
	actor := Actor{ID: uuid.New(), Role: enums.UserRoleUser}

	tee := seedProduct(catalog, 1499, 1199, true)
	retired := seedProduct(catalog, 999, 999, false)

	if _, err := svc.Add(ctx, actor, tee, 0); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error for zero quantity, got %v", err)
	}
	_, err := svc.Add(ctx, actor, uuid.New(), 1)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for unknown product, got %v", err)
	}
	_, err = svc.Add(ctx, actor, retired, 1)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for inactive product, got %v", err)
	}
	_, err = svc.SetQuantity(ctx, actor, tee, 1)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for product missing from cart, got %v", err)
	}
}

func TestQuoteOmitsRetiredProducts(t *testing.T) {
	svc, catalog, _ := newCartTestService(t)
	ctx := context.Background()
	actor := Actor{ID: uuid.New(), Role: enums.UserRoleUser}

	tee := seedProduct(catalog, 1499, 1199, true)
	if _, err := svc.Add(ctx, actor, tee, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	product := catalog.products[tee]
	product.IsActive = false
	catalog.products[tee] = product

	quoted, err := svc.View(ctx, actor)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(quoted.Items) != 0 {
		t.Fatalf("expected retired product omitted from quote, got %+v", quoted.Items)
	}
}

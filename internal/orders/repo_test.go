package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Order{}, &models.OrderItem{}))
	return NewRepository(conn)
}

func TestCreatePersistsItems(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	created, err := repo.Create(ctx, &models.Order{
		UserID:     userID,
		Status:     enums.OrderStatusPaid,
		Subtotal:   2998,
		Total:      2998,
		PaymentRef: "SIM-test",
		Items: []models.OrderItem{
			{ProductID: uuid.New(), Name: "Club Tee", SKU: "PGTC-TEE", UnitPrice: 1499, Quantity: 2},
		},
	})
	require.NoError(t, err)
	if created.ID == uuid.Nil {
		t.Fatalf("expected order id to be assigned")
	}
	if created.Items[0].OrderID != created.ID {
		t.Fatalf("expected item linked to order")
	}

	loaded, err := repo.ByUser(ctx, userID)
	require.NoError(t, err)
	if len(loaded) != 1 || len(loaded[0].Items) != 1 {
		t.Fatalf("expected order with items, got %+v", loaded)
	}
	if loaded[0].Items[0].UnitPrice != 1499 {
		t.Fatalf("expected frozen unit price, got %d", loaded[0].Items[0].UnitPrice)
	}
}

func TestByUserNewestFirstAndScoped(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	userID := uuid.New()

	for i, ref := range []string{"SIM-old", "SIM-new"} {
		order, err := repo.Create(ctx, &models.Order{
			UserID:     userID,
			Status:     enums.OrderStatusPaid,
			PaymentRef: ref,
		})
		require.NoError(t, err)
		backdated := time.Now().UTC().Add(-time.Duration(2-i) * time.Hour)
		require.NoError(t, repo.db.Model(&models.Order{}).
			Where("id = ?", order.ID).
			UpdateColumn("created_at", backdated).Error)
	}
	_, err := repo.Create(ctx, &models.Order{
		UserID:     uuid.New(),
		Status:     enums.OrderStatusPaid,
		PaymentRef: "SIM-other",
	})
	require.NoError(t, err)

	loaded, err := repo.ByUser(ctx, userID)
	require.NoError(t, err)
	if len(loaded) != 2 {
		t.Fatalf("expected 2 orders for user, got %d", len(loaded))
	}
	if loaded[0].PaymentRef != "SIM-new" {
		t.Fatalf("expected newest first, got %s", loaded[0].PaymentRef)
	}

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	if count != 3 {
		t.Fatalf("expected 3 orders total, got %d", count)
	}
}

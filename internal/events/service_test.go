package events

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db/models"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Event{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc, err := NewService(ServiceParams{Repo: NewRepository(conn)})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCreateEventDefaultsActive(t *testing.T) {
	svc := newTestService(t)

	dto, err := svc.Create(context.Background(), CreateEventRequest{
		Title:    "Monsoon Drive",
		Location: "Lonavala",
		Date:     time.Date(2026, 9, 12, 7, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !dto.IsActive {
		t.Fatalf("expected event to default active")
	}
}

func TestCreateEventValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), CreateEventRequest{
		Title:    "GT",
		Location: "X",
	})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := appErr.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", appErr.Details())
	}
	for _, field := range []string{"title", "location", "date"} {
		if _, present := details[field]; !present {
			t.Fatalf("expected error for %s, got %v", field, details)
		}
	}
}

func TestPublicListHidesInactiveAndOrdersByDate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	hidden := false
	seed := []CreateEventRequest{
		{Title: "Track Day", Location: "Chennai", Date: time.Date(2026, 10, 4, 8, 0, 0, 0, time.UTC)},
		{Title: "Monsoon Drive", Location: "Lonavala", Date: time.Date(2026, 9, 12, 7, 0, 0, 0, time.UTC)},
		{Title: "Cancelled Meet", Location: "Pune", Date: time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC), IsActive: &hidden},
	}
	for _, req := range seed {
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("seed %s: %v", req.Title, err)
		}
	}

	public, err := svc.PublicList(ctx)
	if err != nil {
		t.Fatalf("public list: %v", err)
	}
	if len(public) != 2 {
		t.Fatalf("expected 2 active events, got %d", len(public))
	}
	if public[0].Title != "Track Day" {
		t.Fatalf("expected latest date first, got %s", public[0].Title)
	}

	all, err := svc.AdminList(ctx)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events for admin, got %d", len(all))
	}
}

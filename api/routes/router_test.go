package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rushjoshburner/PGTC-WEBAPP/internal/admin"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/auth"
	cartsvc "github.com/rushjoshburner/PGTC-WEBAPP/internal/cart"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/contact"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/events"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/listings"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/orders"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/products"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/users"
	pkgAuth "github.com/rushjoshburner/PGTC-WEBAPP/pkg/auth"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/auth/session"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/config"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/logger"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/pagination"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/redis"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return &auth.LoginResponse{}, nil
}

func (stubAuthService) Refresh(ctx context.Context, req auth.RefreshRequest) (*auth.LoginResponse, error) {
	return &auth.LoginResponse{}, nil
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error {
	return nil
}

type stubRegisterService struct{}

func (stubRegisterService) Register(ctx context.Context, req auth.RegisterRequest) (*users.UserDTO, error) {
	return &users.UserDTO{}, nil
}

type stubListingsService struct{}

func (stubListingsService) CreateCar(ctx context.Context, actor listings.Actor, req listings.CreateCarRequest) (*listings.CarDTO, error) {
	return &listings.CarDTO{}, nil
}

func (stubListingsService) ApproveCar(ctx context.Context, adminID, carID uuid.UUID) (*listings.CarDTO, error) {
	return &listings.CarDTO{}, nil
}

func (stubListingsService) RejectCar(ctx context.Context, carID uuid.UUID, reason string) (*listings.CarDTO, error) {
	return &listings.CarDTO{}, nil
}

func (stubListingsService) PublicCars(ctx context.Context, filters listings.CarFilters) (*listings.CarPage, error) {
	return &listings.CarPage{}, nil
}

func (stubListingsService) AdminCars(ctx context.Context) ([]listings.CarDTO, error) {
	return nil, nil
}

func (stubListingsService) CreateParts(ctx context.Context, actor listings.Actor, req listings.CreatePartsRequest) (*listings.PartsDTO, error) {
	return &listings.PartsDTO{}, nil
}

func (stubListingsService) MarkPartSold(ctx context.Context, actor listings.Actor, partID uuid.UUID) (*listings.PartsDTO, error) {
	return &listings.PartsDTO{}, nil
}

func (stubListingsService) PublicParts(ctx context.Context, filters listings.PartsFilters) (*listings.PartsPage, error) {
	return &listings.PartsPage{}, nil
}

func (stubListingsService) AdminParts(ctx context.Context) ([]listings.PartsDTO, error) {
	return nil, nil
}

func (stubListingsService) SellerListings(ctx context.Context, sellerID uuid.UUID) (*listings.SellerListings, error) {
	return &listings.SellerListings{}, nil
}

type stubProductsService struct{}

func (stubProductsService) Catalog(ctx context.Context, filters products.CatalogFilters) ([]products.ProductDTO, error) {
	return nil, nil
}

func (stubProductsService) AdminList(ctx context.Context) ([]products.ProductDTO, error) {
	return nil, nil
}

func (stubProductsService) Create(ctx context.Context, req products.CreateProductRequest) (*products.ProductDTO, error) {
	return &products.ProductDTO{}, nil
}

type stubCartService struct{}

func (stubCartService) View(ctx context.Context, actor cartsvc.Actor) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{}, nil
}

func (stubCartService) Add(ctx context.Context, actor cartsvc.Actor, productID uuid.UUID, qty int) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{}, nil
}

func (stubCartService) SetQuantity(ctx context.Context, actor cartsvc.Actor, productID uuid.UUID, qty int) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{}, nil
}

func (stubCartService) Remove(ctx context.Context, actor cartsvc.Actor, productID uuid.UUID) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{}, nil
}

func (stubCartService) Clear(ctx context.Context, actor cartsvc.Actor) error {
	return nil
}

type stubCheckoutService struct{}

func (stubCheckoutService) Checkout(ctx context.Context, actor cartsvc.Actor) (*orders.OrderDTO, error) {
	return &orders.OrderDTO{}, nil
}

type stubOrdersService struct{}

func (stubOrdersService) MyOrders(ctx context.Context, userID uuid.UUID) ([]orders.OrderDTO, error) {
	return nil, nil
}

type stubEventsService struct{}

func (stubEventsService) PublicList(ctx context.Context) ([]events.EventDTO, error) {
	return nil, nil
}

func (stubEventsService) AdminList(ctx context.Context) ([]events.EventDTO, error) {
	return nil, nil
}

func (stubEventsService) Create(ctx context.Context, req events.CreateEventRequest) (*events.EventDTO, error) {
	return &events.EventDTO{}, nil
}

type stubContactService struct{}

func (stubContactService) Submit(ctx context.Context, req contact.ContactRequest) error {
	return nil
}

type stubAdminUsersService struct{}

func (stubAdminUsersService) List(ctx context.Context, query string, page pagination.Params) (*admin.UserPage, error) {
	return &admin.UserPage{}, nil
}

func (stubAdminUsersService) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*users.UserDTO, error) {
	return &users.UserDTO{}, nil
}

type stubAdminStatsService struct{}

func (stubAdminStatsService) Stats(ctx context.Context) (*admin.StatsDTO, error) {
	return &admin.StatsDTO{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test"},
		JWT: config.JWTConfig{
			Secret:                 "secret",
			Issuer:                 "issuer",
			ExpirationMinutes:      60,
			RefreshTokenTTLMinutes: 120,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		stubPinger{},
		(*redis.Client)(nil),
		stubSessionChecker{},
		stubAuthService{},
		stubRegisterService{},
		stubListingsService{},
		stubProductsService{},
		stubCartService{},
		stubCheckoutService{},
		stubOrdersService{},
		stubEventsService{},
		stubContactService{},
		stubAdminUsersService{},
		stubAdminStatsService{},
	)
}

func buildToken(t *testing.T, cfg *config.Config, role enums.UserRole) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   role,
		JTI:    session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	router := newTestRouter(testConfig())

	paths := []string{
		"/api/v1/classifieds/cars",
		"/api/v1/classifieds/parts",
		"/api/v1/store/products",
		"/api/v1/events",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, resp.Code)
		}
	}
}

func TestHealthEndpoints(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, resp.Code)
		}
		if env := resp.Header().Get("X-PGTC-Env"); env != "test" {
			t.Fatalf("expected env header for %s got %q", path, env)
		}
	}
}

func TestContactRejectsBadJSON(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload got %d", resp.Code)
	}
}

func TestMemberGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())

	paths := []string{"/api/v1/cart", "/api/v1/orders", "/api/v1/dashboard/listings"}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s without token got %d", path, resp.Code)
		}
	}
}

func TestMemberGroupSucceedsWithJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleUser))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token got %d", resp.Code)
	}
}

func TestAdminGroupRequiresAdminRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	nonAdmin := httptest.NewRequest(http.MethodGet, "/api/admin/v1/stats", nil)
	nonAdmin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleMember))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, nonAdmin)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin got %d", resp.Code)
	}

	adminReq := httptest.NewRequest(http.MethodGet, "/api/admin/v1/stats", nil)
	adminReq.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleAdmin))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, adminReq)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin got %d", resp.Code)
	}
}

func TestModerationRouteGatedToAdmins(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	body := strings.NewReader(`{"action":"approve"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/v1/classifieds/cars/"+uuid.NewString(), body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleUser))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for member moderation attempt got %d", resp.Code)
	}

	body = strings.NewReader(`{"action":"approve"}`)
	req = httptest.NewRequest(http.MethodPatch, "/api/admin/v1/classifieds/cars/"+uuid.NewString(), body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleAdmin))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin moderation got %d", resp.Code)
	}
}

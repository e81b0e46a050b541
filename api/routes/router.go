package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rushjoshburner/PGTC-WEBAPP/api/controllers"
	"github.com/rushjoshburner/PGTC-WEBAPP/api/middleware"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/admin"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/auth"
	cartsvc "github.com/rushjoshburner/PGTC-WEBAPP/internal/cart"
	checkoutsvc "github.com/rushjoshburner/PGTC-WEBAPP/internal/checkout"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/contact"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/events"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/listings"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/orders"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/products"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/auth/session"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/config"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/enums"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/logger"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessionChecker session.AccessSessionChecker,
	authService auth.Service,
	registerService auth.RegisterService,
	listingsService listings.Service,
	productsService products.Service,
	cartService cartsvc.Service,
	checkoutService checkoutsvc.Service,
	ordersService orders.Service,
	eventsService events.Service,
	contactService contact.Service,
	adminUsersService admin.UsersService,
	adminStatsService admin.StatsService,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	var redisPinger redis.Pinger
	if redisClient != nil {
		redisPinger = redisClient
	}
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, redisPinger, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(authService, logg))
			r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.AuthRegister(registerService, logg))
			r.Post("/refresh", controllers.AuthRefresh(authService, logg))
			r.Post("/logout", controllers.AuthLogout(authService, cfg.JWT, logg))
		})

		r.Route("/classifieds", func(r chi.Router) {
			r.Get("/cars", controllers.CarPublicList(listingsService, logg))
			r.Get("/parts", controllers.PartsPublicList(listingsService, logg))
		})
		r.Get("/store/products", controllers.ProductCatalog(productsService, logg))
		r.Get("/events", controllers.EventList(eventsService, logg))
		r.Post("/contact", controllers.ContactSubmit(contactService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))

			r.Post("/classifieds/cars", controllers.CarCreate(listingsService, logg))
			r.Post("/classifieds/parts", controllers.PartsCreate(listingsService, logg))
			r.Post("/classifieds/parts/{partId}/sold", controllers.PartsMarkSold(listingsService, logg))
			r.Get("/dashboard/listings", controllers.DashboardListings(listingsService, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartView(cartService, logg))
				r.Post("/items", controllers.CartAdd(cartService, logg))
				r.Patch("/items/{productId}", controllers.CartSetQuantity(cartService, logg))
				r.Delete("/items/{productId}", controllers.CartRemove(cartService, logg))
				r.Delete("/", controllers.CartClear(cartService, logg))
			})
			r.Post("/checkout", controllers.Checkout(checkoutService, logg))
			r.Get("/orders", controllers.MyOrders(ordersService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))
		r.Use(middleware.RequireRole(string(enums.UserRoleAdmin), logg))

		r.Route("/classifieds", func(r chi.Router) {
			r.Get("/cars", controllers.AdminCarList(listingsService, logg))
			r.Patch("/cars/{carId}", controllers.AdminCarModerate(listingsService, logg))
			r.Get("/parts", controllers.AdminPartsList(listingsService, logg))
		})
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.AdminProductList(productsService, logg))
			r.Post("/", controllers.AdminProductCreate(productsService, logg))
		})
		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.AdminUserList(adminUsersService, logg))
			r.Patch("/{userId}/role", controllers.AdminUserUpdateRole(adminUsersService, logg))
		})
		r.Route("/events", func(r chi.Router) {
			r.Get("/", controllers.AdminEventList(eventsService, logg))
			r.Post("/", controllers.EventCreate(eventsService, logg))
		})
		r.Get("/stats", controllers.AdminStats(adminStatsService, logg))
	})

	return r
}

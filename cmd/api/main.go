package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/rushjoshburner/PGTC-WEBAPP/api/routes"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/admin"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/auth"
	cartsvc "github.com/rushjoshburner/PGTC-WEBAPP/internal/cart"
	checkoutsvc "github.com/rushjoshburner/PGTC-WEBAPP/internal/checkout"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/contact"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/events"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/listings"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/memberships"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/orders"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/products"
	"github.com/rushjoshburner/PGTC-WEBAPP/internal/users"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/auth/session"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/config"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/db"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/logger"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/mailer"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/migrate"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())
	membershipRepo := memberships.NewRepository(dbClient.DB())
	carRepo := listings.NewCarRepository(dbClient.DB())
	partsRepo := listings.NewPartsRepository(dbClient.DB())
	productRepo := products.NewRepository(dbClient.DB())
	orderRepo := orders.NewRepository(dbClient.DB())
	eventRepo := events.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		TxRunner:       dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	gate, err := listings.NewGate(membershipRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create listing gate", err)
		os.Exit(1)
	}

	listingsService, err := listings.NewService(listings.ServiceParams{
		CarRepo:   carRepo,
		PartsRepo: partsRepo,
		Gate:      gate,
		Config:    cfg.Listings,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create listings service", err)
		os.Exit(1)
	}

	productsService, err := products.NewService(products.ServiceParams{Repo: productRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create products service", err)
		os.Exit(1)
	}

	cartStore, err := cartsvc.NewStore(redisClient, 0)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}

	cartService, err := cartsvc.NewService(cartsvc.ServiceParams{
		Store:       cartStore,
		Catalog:     productRepo,
		Memberships: membershipRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		TxRunner:    dbClient,
		CartStore:   cartStore,
		Memberships: membershipRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.ServiceParams{Repo: orderRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	eventsService, err := events.NewService(events.ServiceParams{Repo: eventRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create events service", err)
		os.Exit(1)
	}

	contactService, err := contact.NewService(contact.ServiceParams{
		Sender: mailer.New(cfg.Mail),
		Mail:   cfg.Mail,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create contact service", err)
		os.Exit(1)
	}

	adminUsersService, err := admin.NewUsersService(admin.UsersServiceParams{
		Repo:        userRepo,
		Memberships: membershipRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create admin users service", err)
		os.Exit(1)
	}

	adminStatsService, err := admin.NewStatsService(admin.StatsServiceParams{
		Users:       userRepo,
		Memberships: membershipRepo,
		Cars:        carRepo,
		Parts:       partsRepo,
		Orders:      orderRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create admin stats service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			sessionManager,
			authService,
			registerService,
			listingsService,
			productsService,
			cartService,
			checkoutService,
			ordersService,
			eventsService,
			contactService,
			adminUsersService,
			adminStatsService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"venuebook/internal/config"
	"venuebook/internal/database"
	"venuebook/internal/middleware"
	"venuebook/internal/modules/admin"
	"venuebook/internal/modules/auth"
	"venuebook/internal/modules/booking"
	"venuebook/internal/modules/catalog"
	"venuebook/internal/modules/contact"
	"venuebook/internal/modules/dashboard"
	"venuebook/internal/modules/event"
	jwtsvc "venuebook/internal/pkg/jwt"
	"venuebook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	hallRepo := repository.NewHallRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	eventRepo := repository.NewEventRepository(db)
	contactRepo := repository.NewContactRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	liveHub := admin.NewLiveHub()
	defer liveHub.Close()

	authService := auth.NewService(userRepo, j, cfg.RefreshTTL)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(hallRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, hallRepo, liveHub)
	bookingHandler := booking.NewHandler(bookingService)

	eventService := event.NewService(eventRepo, hallRepo)
	eventHandler := event.NewHandler(eventService)

	contactService := contact.NewService(contactRepo)
	contactHandler := contact.NewHandler(contactService)

	adminService := admin.NewService(bookingRepo, userRepo, hallRepo, liveHub)
	adminHandler := admin.NewHandler(adminService, liveHub)

	dashboardService := dashboard.NewService(bookingRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		eventHandler.RegisterPublicRoutes(v1)
		contactHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
		}

		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
			catalogHandler.RegisterAdminRoutes(adminGroup)
			eventHandler.RegisterAdminRoutes(adminGroup)
			contactHandler.RegisterAdminRoutes(adminGroup)
		}
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bookhub/internal/config"
	"bookhub/internal/database"
	"bookhub/internal/identity"
	"bookhub/internal/middleware"
	"bookhub/internal/modules/booking"
	"bookhub/internal/modules/resource"
	jwtsvc "bookhub/internal/pkg/jwt"
	"bookhub/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatal(err)
	}

	resourceRepo := repository.NewResourceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	identityClient := identity.NewClient(cfg.AuthAPIURL)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	resourceService := resource.NewService(resourceRepo)
	resourceHandler := resource.NewHandler(resourceService)

	bookingService := booking.NewService(bookingRepo, identityClient)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	protected := r.Group("/")
	protected.Use(middleware.Authenticate(j))
	{
		resourceHandler.RegisterRoutes(protected)
		bookingHandler.RegisterRoutes(protected)
	}

	logrus.WithField("addr", cfg.BookingAddr).Info("booking service listening")
	if err := r.Run(cfg.BookingAddr); err != nil {
		logrus.Fatal(err)
	}
}

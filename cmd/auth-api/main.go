package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bookhub/internal/config"
	"bookhub/internal/database"
	"bookhub/internal/middleware"
	"bookhub/internal/modules/auth"
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

	userRepo := repository.NewUserRepository(db)
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	authGroup := r.Group("/auth")
	{
		authHandler.RegisterPublicRoutes(authGroup)

		protected := authGroup.Group("/")
		protected.Use(middleware.Authenticate(j))
		authHandler.RegisterProtectedRoutes(protected)
	}

	logrus.WithField("addr", cfg.AuthAddr).Info("auth service listening")
	if err := r.Run(cfg.AuthAddr); err != nil {
		logrus.Fatal(err)
	}
}

package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hunterjohnstone/honey-discount/internal/config"
	"github.com/hunterjohnstone/honey-discount/internal/database"
	"github.com/hunterjohnstone/honey-discount/internal/middleware"
	"github.com/hunterjohnstone/honey-discount/internal/modules/auth"
	"github.com/hunterjohnstone/honey-discount/internal/modules/promotion"
	"github.com/hunterjohnstone/honey-discount/internal/modules/report"
	"github.com/hunterjohnstone/honey-discount/internal/modules/review"
	jwtsvc "github.com/hunterjohnstone/honey-discount/internal/pkg/jwt"
	"github.com/hunterjohnstone/honey-discount/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	promotionHandler := promotion.NewHandler(promotion.NewService(promotionRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, promotionRepo))
	reportHandler := report.NewHandler(report.NewService(promotionRepo))

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		promotionHandler.RegisterRoutes(v1, nil)
		reviewHandler.RegisterRoutes(v1, nil)

		// protected
		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterRoutes(nil, protected)
			reportHandler.RegisterRoutes(protected)

			merchant := protected.Group("")
			merchant.Use(middleware.RequireRole("merchant", "admin"))
			{
				promotionHandler.RegisterRoutes(nil, merchant)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

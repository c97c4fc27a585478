package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hunterjohnstone/honey-discount/internal/database"
	"github.com/hunterjohnstone/honey-discount/internal/domain"
	"github.com/hunterjohnstone/honey-discount/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "honey.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM product_reviews")
	db.Exec("DELETE FROM products")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	promotions := repository.NewPromotionRepository(db)

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Name:         "Admin",
		Email:        "admin@honeydiscounts.com",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, &admin); err != nil {
		log.Fatal(err)
	}
	log.Println("Admin created: admin@honeydiscounts.com / admin123")

	merchantHash, _ := bcrypt.GenerateFromPassword([]byte("merchant123"), bcrypt.DefaultCost)
	merchant := domain.User{
		Name:         "Corner Cafe",
		Email:        "owner@cornercafe.example",
		PasswordHash: string(merchantHash),
		Role:         domain.RoleMerchant,
	}
	if err := users.Create(ctx, &merchant); err != nil {
		log.Fatal(err)
	}

	memberHash, _ := bcrypt.GenerateFromPassword([]byte("member123"), bcrypt.DefaultCost)
	for i := 1; i <= 3; i++ {
		member := domain.User{
			Name:         fmt.Sprintf("Member %d", i),
			Email:        fmt.Sprintf("member%d@example.com", i),
			PasswordHash: string(memberHash),
			Role:         domain.RoleMember,
		}
		if err := users.Create(ctx, &member); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating promotions...")

	oldPrice := 12.50
	deals := []domain.Promotion{
		{
			Title:       "Two-for-one flat whites",
			Description: "Every weekday before 10am",
			Price:       4.20,
			OldPrice:    &oldPrice,
			Discount:    "50%",
			Category:    "Food & Drink",
			Location:    "Berlin",
			MapLocation: "52.5200,13.4050",
			StartDate:   "2026-08-01",
			EndDate:     "2026-12-31",
			IsActive:    true,
			UserID:      merchant.ID,
		},
		{
			Title:       "Summer bike tune-up",
			Description: "Full service at half price",
			Price:       25.00,
			Discount:    "30%",
			Category:    "Services",
			Location:    "Berlin",
			MapLocation: "52.4862,13.4250",
			StartDate:   "2026-06-01",
			EndDate:     "2026-09-30",
			IsActive:    true,
			UserID:      merchant.ID,
		},
	}
	for i := range deals {
		if err := promotions.Create(ctx, &deals[i]); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed complete")
}

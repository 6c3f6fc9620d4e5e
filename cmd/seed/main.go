package main

import (
	"context"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"venuebook/internal/config"
	"venuebook/internal/database"
	"venuebook/internal/domain"
	"venuebook/internal/modules/auth"
	"venuebook/internal/pkg/money"
	"venuebook/internal/repository"
)

// Seed migrates the schema and provisions the demo catalog plus one admin
// account. Safe to run repeatedly: existing rows are left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := auth.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()
	halls := repository.NewHallRepository(db)
	users := repository.NewUserRepository(db)

	coord := func(v float64) *float64 { return &v }

	demoHalls := []domain.Hall{
		{
			Name:         "Royal Banquet Hall",
			City:         "Bhopal",
			State:        "Madhya Pradesh",
			Location:     "MP Nagar, Zone II",
			Latitude:     coord(23.2599),
			Longitude:    coord(77.4126),
			Capacity:     500,
			PricePerHour: money.FromUnits(2000),
			Description:  "Classic banquet hall for weddings and receptions.",
		},
		{
			Name:         "Star Convention Center",
			City:         "Bhopal",
			State:        "Madhya Pradesh",
			Location:     "Hoshangabad Road",
			Latitude:     coord(23.2336),
			Longitude:    coord(77.4343),
			Capacity:     1200,
			PricePerHour: money.FromUnits(3500),
			Description:  "Large convention space with stage and AV setup.",
		},
	}

	for i := range demoHalls {
		h := &demoHalls[i]
		exists, err := halls.ExistsByName(ctx, h.Name)
		if err != nil {
			log.Fatal(err)
		}
		if exists {
			log.Printf("hall %q already present, skipping", h.Name)
			continue
		}
		if err := halls.Create(ctx, h); err != nil {
			log.Fatal(err)
		}
		log.Printf("hall %q created (id=%d)", h.Name, h.ID)
	}

	adminEmail := envOr("ADMIN_EMAIL", "admin@venuebook.local")
	adminPassword := envOr("ADMIN_PASSWORD", "admin123")

	exists, err := users.ExistsByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatal(err)
	}
	if exists {
		log.Printf("admin %s already present, skipping", adminEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	admin := &domain.User{
		FullName:     "Administrator",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal(err)
	}
	log.Printf("admin created: %s", adminEmail)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

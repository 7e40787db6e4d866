package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/rizkypratama/havenly/config"
	"github.com/rizkypratama/havenly/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@havenly.dev"
	password := "password123"
	username := "demoUser"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash, avatar)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET username=EXCLUDED.username
		RETURNING id
	`, username, email, hash, cfg.DefaultAvatarURL).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s username=%s password=%s\n", id, email, username, password)

	var listingID string
	err = db.QueryRow(`
		INSERT INTO listings (name, description, address, type, bedrooms, bathrooms,
			regular_price, discount_price, offer, parking, furnished, image_urls, user_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12::text[], $13)
		RETURNING id
	`, "Sunny two-bedroom flat", "Bright flat close to the city center with a small balcony.",
		"12 Harbor Street", "rent", 2, 1, 1450.0, 1200.0, true, true, false,
		"{https://cdn.havenly.dev/listings/demo-1.jpg}", id).Scan(&listingID)
	if err != nil {
		log.Fatalf("failed to seed listing: %v", err)
	}
	fmt.Printf("seeded listing: id=%s owner=%s\n", listingID, id)
}

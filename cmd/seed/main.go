package main

import (
	"context"
	"log"
	"time"

	"github.com/E11SH/RENTHUB/internal/auth"
	propertyrepo "github.com/E11SH/RENTHUB/internal/properties/repository"
	userrepo "github.com/E11SH/RENTHUB/internal/users/repository"
	"github.com/E11SH/RENTHUB/pkg/config"
	"github.com/E11SH/RENTHUB/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

const JobName = "seed"

const seedPassword = "password123"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting seed job", "database", cfg.MongoDatabaseName)

	clearCollections(ctx, cfg)

	users := userrepo.NewMongoUserRepository(cfg)
	properties := propertyrepo.NewMongoPropertyRepository(cfg)
	hasher := auth.NewHasher(cfg.BcryptCost)

	hash, err := hasher.Hash(seedPassword)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	seeker := &model.User{
		Name:     "Ahmed Mohamed",
		Email:    "seeker@test.com",
		Password: hash,
		Type:     model.RoleSeeker,
	}
	advertiser := &model.User{
		Name:     "Sara Hassan",
		Email:    "owner@test.com",
		Password: hash,
		Type:     model.RoleAdvertiser,
	}

	for _, user := range []*model.User{seeker, advertiser} {
		if err := users.Create(ctx, user); err != nil {
			log.Fatalf("Failed to seed user %s: %v", user.Email, err)
		}
	}
	cfg.Log.Info("Created test users",
		"seeker", seeker.Email,
		"advertiser", advertiser.Email,
	)

	for _, property := range seedProperties(advertiser.ID) {
		if err := properties.Create(ctx, property); err != nil {
			log.Fatalf("Failed to seed property %q: %v", property.Title, err)
		}
	}
	cfg.Log.Info("Seed completed", "properties", len(seedProperties(advertiser.ID)))
}

func clearCollections(ctx context.Context, cfg *config.Config) {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	for _, name := range []string{userrepo.CollectionName, propertyrepo.CollectionName} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear collection %s: %v", name, err)
		}
	}
	cfg.Log.Info("Cleared existing data")
}

func seedProperties(ownerID string) []*model.Property {
	return []*model.Property{
		{
			Title:       "Cozy Downtown Apartment",
			Location:    "Cairo, Zamalek",
			Price:       5000,
			Area:        85,
			Bedrooms:    2,
			Bathrooms:   1,
			Type:        "Apartment",
			Image:       "images/apartment.png",
			Description: "Beautiful apartment in the heart of Zamalek with stunning Nile views. Fully furnished with modern amenities, close to restaurants and cafes.",
			Owner:       ownerID,
		},
		{
			Title:       "Modern Studio Near University",
			Location:    "Giza, Dokki",
			Price:       3500,
			Area:        45,
			Bedrooms:    1,
			Bathrooms:   1,
			Type:        "Studio",
			Image:       "images/studio.png",
			Description: "Perfect for students! Compact studio apartment just 5 minutes walk from Cairo University. Includes all utilities and high-speed internet.",
			Owner:       ownerID,
		},
		{
			Title:       "Spacious Family Villa",
			Location:    "6th October City",
			Price:       15000,
			Area:        250,
			Bedrooms:    4,
			Bathrooms:   3,
			Type:        "Villa",
			Image:       "images/villa.png",
			Description: "Luxurious villa in a gated community with private garden, swimming pool, and 24/7 security. Perfect for families.",
			Owner:       ownerID,
		},
		{
			Title:       "Luxury Penthouse with View",
			Location:    "New Cairo",
			Price:       20000,
			Area:        200,
			Bedrooms:    3,
			Bathrooms:   2,
			Type:        "Penthouse",
			Image:       "images/penthouse.png",
			Description: "Stunning penthouse with panoramic city views, rooftop terrace, and premium finishes. Located in the most prestigious tower.",
			Owner:       ownerID,
		},
		{
			Title:       "Shared Room for Students",
			Location:    "Cairo, Nasr City",
			Price:       1500,
			Area:        30,
			Bedrooms:    1,
			Bathrooms:   1,
			Type:        "Shared",
			Image:       "images/shared.png",
			Description: "Affordable shared accommodation for students and young professionals. Clean, safe environment with shared kitchen and living areas.",
			Owner:       ownerID,
		},
		{
			Title:       "Industrial Loft Downtown",
			Location:    "Cairo, Downtown",
			Price:       8000,
			Area:        120,
			Bedrooms:    2,
			Bathrooms:   2,
			Type:        "Loft",
			Image:       "images/loft.png",
			Description: "Trendy loft with exposed brick walls, high ceilings, and modern design. Perfect for creative professionals in the city center.",
			Owner:       ownerID,
		},
		{
			Title:       "Elegant Apartment in Maadi",
			Location:    "Cairo, Maadi",
			Price:       6500,
			Area:        95,
			Bedrooms:    2,
			Bathrooms:   1,
			Type:        "Apartment",
			Image:       "images/apartment.png",
			Description: "Charming apartment in the green district of Maadi. Quiet neighborhood with easy access to schools and shopping centers.",
			Owner:       ownerID,
		},
		{
			Title:       "Compact Studio in Heliopolis",
			Location:    "Cairo, Heliopolis",
			Price:       4000,
			Area:        50,
			Bedrooms:    1,
			Bathrooms:   1,
			Type:        "Studio",
			Image:       "images/studio.png",
			Description: "Well-maintained studio in historic Heliopolis. Close to airport and major business districts. Ideal for working professionals.",
			Owner:       ownerID,
		},
	}
}

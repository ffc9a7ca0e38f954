package main

import (
	"github.com/E11SH/RENTHUB/internal/auth"
	bookinghandler "github.com/E11SH/RENTHUB/internal/bookings/handler"
	bookingrepo "github.com/E11SH/RENTHUB/internal/bookings/repository"
	bookingservice "github.com/E11SH/RENTHUB/internal/bookings/service"
	bookingvalidator "github.com/E11SH/RENTHUB/internal/bookings/validator"
	propertyhandler "github.com/E11SH/RENTHUB/internal/properties/handler"
	propertyrepo "github.com/E11SH/RENTHUB/internal/properties/repository"
	propertyservice "github.com/E11SH/RENTHUB/internal/properties/service"
	propertyvalidator "github.com/E11SH/RENTHUB/internal/properties/validator"
	userhandler "github.com/E11SH/RENTHUB/internal/users/handler"
	userrepo "github.com/E11SH/RENTHUB/internal/users/repository"
	userservice "github.com/E11SH/RENTHUB/internal/users/service"
	"github.com/E11SH/RENTHUB/pkg/app"
	"github.com/E11SH/RENTHUB/pkg/cache"
	"github.com/E11SH/RENTHUB/pkg/config"
	"github.com/E11SH/RENTHUB/pkg/contracts"
	"github.com/E11SH/RENTHUB/pkg/events"
)

const ServiceName = "renthub"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	cfg.SetRedis()

	producer := initProducer(cfg)
	handlers := initHandlers(cfg, producer)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, producer, handlers...)
	serverApp.Run()
}

func initProducer(cfg *config.Config) *events.Producer {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka brokers not configured, domain events disabled")
		return nil
	}

	producer, err := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaEventTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create event producer", "error", err)
	}
	cfg.Log.Info("Event producer initialized", "topic", cfg.KafkaEventTopic)
	return producer
}

func initHandlers(cfg *config.Config, producer *events.Producer) []contracts.Handler {
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewHasher(cfg.BcryptCost)
	authmw := auth.NewMiddleware(tokens, cfg.Log)

	propertyCache := cache.New(cfg.Client.Redis, cfg.PropertyCacheTTL, cfg.Log)

	users := userrepo.NewMongoUserRepository(cfg)
	properties := propertyrepo.NewMongoPropertyRepository(cfg)
	bookings := bookingrepo.NewMongoBookingRepository(cfg)

	userSvc := userservice.NewUserService(users, hasher, tokens, producer, cfg)
	propertySvc := propertyservice.NewPropertyService(
		properties,
		bookings,
		propertyvalidator.NewPropertyValidator(),
		propertyCache,
		producer,
		cfg,
	)
	bookingSvc := bookingservice.NewBookingService(
		bookings,
		properties,
		bookingvalidator.NewBookingValidator(),
		producer,
		cfg,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	return []contracts.Handler{
		userhandler.NewUserHandler(userSvc, authmw, cfg.Log),
		propertyhandler.NewPropertyHandler(propertySvc, authmw, cfg.Log),
		bookinghandler.NewBookingHandler(bookingSvc, authmw, cfg.Log),
	}
}

package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "renthub"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "5000"

	DefaultTokenTTL   = 7 * 24 * time.Hour
	DefaultBcryptCost = 10

	// Flat booking fee charged on top of rent and deposit, in the listing's
	// currency unit.
	DefaultBookingFee = 500

	DefaultStaticDir = "./public"

	DefaultPropertyCacheTTL = 1 * time.Minute

	DefaultKafkaEventTopic = "renthub.events"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)

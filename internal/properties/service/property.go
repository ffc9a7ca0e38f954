package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/E11SH/RENTHUB/internal/auth"
	propertieserrors "github.com/E11SH/RENTHUB/internal/properties/errors"
	"github.com/E11SH/RENTHUB/internal/properties/repository"
	"github.com/E11SH/RENTHUB/internal/properties/validator"
	"github.com/E11SH/RENTHUB/pkg/cache"
	"github.com/E11SH/RENTHUB/pkg/config"
	apperrors "github.com/E11SH/RENTHUB/pkg/errors"
	"github.com/E11SH/RENTHUB/pkg/events"
	"github.com/E11SH/RENTHUB/pkg/model"
	"github.com/E11SH/RENTHUB/pkg/sanitizer"
)

const listCacheKey = "properties:all"

func propertyCacheKey(id string) string {
	return fmt.Sprintf("properties:%s", id)
}

// BookingCounter reports how many bookings reference a property. Satisfied
// by the bookings repository.
type BookingCounter interface {
	CountByProperty(ctx context.Context, propertyID string) (int64, error)
}

type PropertyService interface {
	Create(ctx context.Context, identity auth.Identity, property *model.Property) error
	GetAll(ctx context.Context) ([]*model.PropertyWithOwner, error)
	GetByID(ctx context.Context, id string) (*model.PropertyWithOwner, error)
	Update(ctx context.Context, identity auth.Identity, id string, updates *model.PropertyUpdate) (*model.Property, error)
	Delete(ctx context.Context, identity auth.Identity, id string) error
}

type propertyService struct {
	repo      repository.PropertyRepository
	bookings  BookingCounter
	validator *validator.PropertyValidator
	cache     *cache.Cache
	producer  *events.Producer
	cfg       *config.Config
}

func NewPropertyService(
	repo repository.PropertyRepository,
	bookings BookingCounter,
	validator *validator.PropertyValidator,
	cache *cache.Cache,
	producer *events.Producer,
	cfg *config.Config,
) PropertyService {
	return &propertyService{
		repo:      repo,
		bookings:  bookings,
		validator: validator,
		cache:     cache,
		producer:  producer,
		cfg:       cfg,
	}
}

func (s *propertyService) Create(ctx context.Context, identity auth.Identity, property *model.Property) error {
	if identity.Role != model.RoleAdvertiser {
		return apperrors.Forbidden("Only property owners can post properties")
	}

	s.sanitize(property)

	// The owner always comes from the authenticated identity, never from
	// the request body.
	property.ID = ""
	property.Owner = identity.UserID

	if err := s.validator.Validate(property); err != nil {
		s.cfg.Log.Warn("Property validation failed",
			"title", property.Title,
			"owner", property.Owner,
			"error", err,
		)
		return apperrors.Validation("Property validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if err := s.repo.Create(ctx, property); err != nil {
		s.cfg.Log.Error("Failed to create property",
			"title", property.Title,
			"owner", property.Owner,
			"error", err,
		)
		return apperrors.Internal("Failed to create property", err)
	}

	s.cache.Invalidate(ctx, listCacheKey)
	s.producer.Publish(ctx, events.TypePropertyCreated, property.ID, property)

	s.cfg.Log.Info("Property created",
		"id", property.ID,
		"title", property.Title,
		"owner", property.Owner,
	)
	return nil
}

func (s *propertyService) GetAll(ctx context.Context) ([]*model.PropertyWithOwner, error) {
	var cached []*model.PropertyWithOwner
	if s.cache.Get(ctx, listCacheKey, &cached) {
		return cached, nil
	}

	properties, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to get properties", "error", err)
		return nil, apperrors.Internal("Failed to retrieve properties", err)
	}

	s.cache.Set(ctx, listCacheKey, properties)
	return properties, nil
}

func (s *propertyService) GetByID(ctx context.Context, id string) (*model.PropertyWithOwner, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Property ID cannot be empty")
	}

	var cached model.PropertyWithOwner
	if s.cache.Get(ctx, propertyCacheKey(id), &cached) {
		return &cached, nil
	}

	property, err := s.repo.FindByIDWithOwner(ctx, id)
	if err != nil {
		if errors.Is(err, propertieserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Property")
		}
		if errors.Is(err, propertieserrors.ErrInvalidID) {
			return nil, apperrors.NotFound("Property")
		}
		s.cfg.Log.Error("Failed to get property", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve property", err)
	}

	s.cache.Set(ctx, propertyCacheKey(id), property)
	return property, nil
}

func (s *propertyService) Update(ctx context.Context, identity auth.Identity, id string, updates *model.PropertyUpdate) (*model.Property, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Property ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(id, err)
	}

	if existing.Owner != identity.UserID {
		return nil, apperrors.Forbidden("Not authorized")
	}

	s.sanitizeUpdate(updates)
	merged := s.mergePropertyUpdates(existing, updates)

	if err := s.validator.Validate(merged); err != nil {
		s.cfg.Log.Warn("Property validation failed",
			"id", id,
			"error", err,
		)
		return nil, apperrors.Validation("Property validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, propertieserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Property")
		}
		s.cfg.Log.Error("Failed to update property", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update property", err)
	}

	s.cache.Invalidate(ctx, listCacheKey, propertyCacheKey(id))

	s.cfg.Log.Info("Property updated", "id", id, "owner", identity.UserID)
	return merged, nil
}

func (s *propertyService) Delete(ctx context.Context, identity auth.Identity, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Property ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return s.mapLookupError(id, err)
	}

	if existing.Owner != identity.UserID {
		return apperrors.Forbidden("Not authorized")
	}

	// Listings with bookings stay on record so booking history keeps
	// resolving.
	count, err := s.bookings.CountByProperty(ctx, id)
	if err != nil {
		s.cfg.Log.Error("Failed to count bookings for property", "id", id, "error", err)
		return apperrors.Internal("Failed to check property bookings", err)
	}
	if count > 0 {
		return apperrors.Conflict("Property has bookings and cannot be deleted")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, propertieserrors.ErrNotFound) {
			return apperrors.NotFound("Property")
		}
		s.cfg.Log.Error("Failed to delete property", "id", id, "error", err)
		return apperrors.Internal("Failed to delete property", err)
	}

	s.cache.Invalidate(ctx, listCacheKey, propertyCacheKey(id))
	s.producer.Publish(ctx, events.TypePropertyDeleted, id, map[string]string{"_id": id})

	s.cfg.Log.Info("Property deleted", "id", id, "owner", identity.UserID)
	return nil
}

func (s *propertyService) mapLookupError(id string, err error) error {
	if errors.Is(err, propertieserrors.ErrNotFound) || errors.Is(err, propertieserrors.ErrInvalidID) {
		return apperrors.NotFound("Property")
	}
	s.cfg.Log.Error("Failed to look up property", "id", id, "error", err)
	return apperrors.Internal("Failed to retrieve property", err)
}

func (s *propertyService) sanitize(property *model.Property) {
	property.Title = sanitizer.NormalizeTitle(property.Title)
	property.Location = sanitizer.NormalizeLocation(property.Location)
	property.Type = sanitizer.TrimAndNormalize(property.Type)
	property.Image = sanitizer.TrimAndNormalize(property.Image)
	property.Description = sanitizer.TrimAndNormalize(property.Description)
	property.Area = sanitizer.NonNegative(property.Area)
	property.Bedrooms = sanitizer.NonNegative(property.Bedrooms)
	property.Bathrooms = sanitizer.NonNegative(property.Bathrooms)
}

func (s *propertyService) sanitizeUpdate(updates *model.PropertyUpdate) {
	if updates.Title != "" {
		updates.Title = sanitizer.NormalizeTitle(updates.Title)
	}
	if updates.Location != "" {
		updates.Location = sanitizer.NormalizeLocation(updates.Location)
	}
	if updates.Type != "" {
		updates.Type = sanitizer.TrimAndNormalize(updates.Type)
	}
	if updates.Image != "" {
		updates.Image = sanitizer.TrimAndNormalize(updates.Image)
	}
	if updates.Description != "" {
		updates.Description = sanitizer.TrimAndNormalize(updates.Description)
	}
}

func (s *propertyService) mergePropertyUpdates(existing *model.Property, updates *model.PropertyUpdate) *model.Property {
	merged := *existing

	if updates.Title != "" {
		merged.Title = updates.Title
	}
	if updates.Location != "" {
		merged.Location = updates.Location
	}
	if updates.Price != nil {
		merged.Price = *updates.Price
	}
	if updates.Area != nil {
		merged.Area = *updates.Area
	}
	if updates.Bedrooms != nil {
		merged.Bedrooms = *updates.Bedrooms
	}
	if updates.Bathrooms != nil {
		merged.Bathrooms = *updates.Bathrooms
	}
	if updates.Type != "" {
		merged.Type = updates.Type
	}
	if updates.Image != "" {
		merged.Image = updates.Image
	}
	if updates.Description != "" {
		merged.Description = updates.Description
	}

	merged.ID = existing.ID
	merged.Owner = existing.Owner
	merged.CreatedAt = existing.CreatedAt

	return &merged
}

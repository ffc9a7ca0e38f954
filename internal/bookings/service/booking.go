package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/E11SH/RENTHUB/internal/auth"
	"github.com/E11SH/RENTHUB/internal/bookings/repository"
	"github.com/E11SH/RENTHUB/internal/bookings/validator"
	propertieserrors "github.com/E11SH/RENTHUB/internal/properties/errors"
	"github.com/E11SH/RENTHUB/pkg/config"
	apperrors "github.com/E11SH/RENTHUB/pkg/errors"
	"github.com/E11SH/RENTHUB/pkg/events"
	"github.com/E11SH/RENTHUB/pkg/model"
)

// PropertyFinder resolves the booked listing. Satisfied by the properties
// repository.
type PropertyFinder interface {
	FindByID(ctx context.Context, id string) (*model.Property, error)
}

type BookingService interface {
	Create(ctx context.Context, identity auth.Identity, req *model.BookingRequest) (*model.Booking, error)
	GetMyBookings(ctx context.Context, identity auth.Identity) ([]*model.BookingWithProperty, error)
}

type bookingService struct {
	repo       repository.BookingRepository
	properties PropertyFinder
	validator  *validator.BookingValidator
	producer   *events.Producer
	cfg        *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	properties PropertyFinder,
	validator *validator.BookingValidator,
	producer *events.Producer,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:       repo,
		properties: properties,
		validator:  validator,
		producer:   producer,
		cfg:        cfg,
	}
}

// Total is first month's rent plus a two-month security deposit plus the
// flat service fee.
func (s *bookingService) computeTotal(rent int64) int64 {
	return rent + 2*rent + s.cfg.BookingFee
}

func (s *bookingService) Create(ctx context.Context, identity auth.Identity, req *model.BookingRequest) (*model.Booking, error) {
	req.PaymentMethod = strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	req.TransactionID = strings.TrimSpace(req.TransactionID)

	if err := s.validator.ValidateRequest(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed",
			"property", req.PropertyID,
			"user", identity.UserID,
			"error", err,
		)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = "TXN-" + uuid.NewString()
	}

	booking := &model.Booking{
		User:          identity.UserID,
		PaymentMethod: req.PaymentMethod,
		TransactionID: transactionID,
		Status:        model.BookingConfirmed,
	}

	// Price lookup and insert run in one transaction so the charged total
	// always matches the listing as it stood at checkout.
	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		property, err := s.properties.FindByID(sessCtx, req.PropertyID)
		if err != nil {
			if errors.Is(err, propertieserrors.ErrNotFound) || errors.Is(err, propertieserrors.ErrInvalidID) {
				return apperrors.NotFound("Property")
			}
			return fmt.Errorf("failed to load property for booking: %w", err)
		}

		// The price is never taken from the client. A stale or tampered
		// total is rejected rather than silently corrected.
		total := s.computeTotal(property.Price)
		if req.TotalAmount != 0 && req.TotalAmount != total {
			return apperrors.Validation("Booking total does not match the current price", map[string]any{
				"expected": total,
				"received": req.TotalAmount,
			})
		}

		booking.Property = property.ID
		booking.TotalAmount = total

		if err := s.validator.Validate(booking); err != nil {
			return apperrors.Validation("Booking validation failed", map[string]any{
				"error": err.Error(),
			})
		}

		if err := s.repo.Create(sessCtx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		s.cfg.Log.Error("Failed to create booking",
			"property", req.PropertyID,
			"user", identity.UserID,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.producer.Publish(ctx, events.TypeBookingCreated, booking.ID, booking)

	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"property", booking.Property,
		"user", booking.User,
		"total", booking.TotalAmount,
		"payment_method", booking.PaymentMethod,
	)
	return booking, nil
}

func (s *bookingService) GetMyBookings(ctx context.Context, identity auth.Identity) ([]*model.BookingWithProperty, error) {
	bookings, err := s.repo.FindByUser(ctx, identity.UserID)
	if err != nil {
		s.cfg.Log.Error("Failed to get bookings",
			"user", identity.UserID,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	return bookings, nil
}

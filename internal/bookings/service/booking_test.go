package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/E11SH/RENTHUB/internal/auth"
	"github.com/E11SH/RENTHUB/internal/bookings/validator"
	propertieserrors "github.com/E11SH/RENTHUB/internal/properties/errors"
	"github.com/E11SH/RENTHUB/pkg/config"
	mongotx "github.com/E11SH/RENTHUB/pkg/db/mongo"
	apperrors "github.com/E11SH/RENTHUB/pkg/errors"
	"github.com/E11SH/RENTHUB/pkg/logger"
	"github.com/E11SH/RENTHUB/pkg/model"
)

const (
	userID = "507f191e810c19729de860ea"
	propID = "507f1f77bcf86cd799439011"
)

// ────────────────────────────────────────────────
// Mocks
// ────────────────────────────────────────────────

type mockBookingRepository struct {
	createFunc     func(ctx context.Context, booking *model.Booking) error
	findByUserFunc func(ctx context.Context, userID string) ([]*model.BookingWithProperty, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = "507f1f77bcf86cd799439012"
	return nil
}

func (m *mockBookingRepository) FindByUser(ctx context.Context, userID string) ([]*model.BookingWithProperty, error) {
	if m.findByUserFunc != nil {
		return m.findByUserFunc(ctx, userID)
	}
	return []*model.BookingWithProperty{}, nil
}

func (m *mockBookingRepository) CountByProperty(ctx context.Context, propertyID string) (int64, error) {
	return 0, nil
}

func (m *mockBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	// Execute the function with a fake session context
	sessCtx := mongo.NewSessionContext(ctx, nil)
	return fn(sessCtx)
}

type mockPropertyFinder struct {
	findFunc func(ctx context.Context, id string) (*model.Property, error)
}

func (m *mockPropertyFinder) FindByID(ctx context.Context, id string) (*model.Property, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, id)
	}
	return &model.Property{
		ID:       propID,
		Title:    "Sunny Flat",
		Location: "Cairo",
		Price:    12000,
		Owner:    "507f191e810c19729de860eb",
	}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		BookingFee: 500,
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
	}
}

func newTestService(repo *mockBookingRepository, finder *mockPropertyFinder) BookingService {
	if finder == nil {
		finder = &mockPropertyFinder{}
	}
	return NewBookingService(repo, finder, validator.NewBookingValidator(), nil, testConfig())
}

func seeker() auth.Identity {
	return auth.Identity{UserID: userID, Role: model.RoleSeeker}
}

// ────────────────────────────────────────────────
// Create
// ────────────────────────────────────────────────

func TestCreate_ServerComputesTotal(t *testing.T) {
	var stored *model.Booking
	repo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			stored = booking
			booking.ID = "507f1f77bcf86cd799439012"
			return nil
		},
	}
	svc := newTestService(repo, nil)

	booking, err := svc.Create(context.Background(), seeker(), &model.BookingRequest{
		PropertyID:    propID,
		PaymentMethod: model.PaymentCard,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// rent 12000 + deposit 24000 + fee 500
	if booking.TotalAmount != 36500 {
		t.Errorf("expected total 36500, got %d", booking.TotalAmount)
	}
	if stored.User != userID {
		t.Errorf("expected booking user %s, got %s", userID, stored.User)
	}
	if stored.Status != model.BookingConfirmed {
		t.Errorf("expected confirmed status, got %s", stored.Status)
	}
	if !strings.HasPrefix(stored.TransactionID, "TXN-") {
		t.Errorf("expected generated transaction ID, got %q", stored.TransactionID)
	}
}

func TestCreate_MatchingClientTotalAccepted(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, nil)

	booking, err := svc.Create(context.Background(), seeker(), &model.BookingRequest{
		PropertyID:    propID,
		PaymentMethod: model.PaymentCash,
		TotalAmount:   36500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.TotalAmount != 36500 {
		t.Errorf("unexpected total: %d", booking.TotalAmount)
	}
}

func TestCreate_TamperedTotalRejected(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, nil)

	_, err := svc.Create(context.Background(), seeker(), &model.BookingRequest{
		PropertyID:    propID,
		PaymentMethod: model.PaymentCard,
		TotalAmount:   1,
	})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", appErr.HTTPStatus)
	}
	if appErr.Details["expected"] != int64(36500) {
		t.Errorf("expected recomputed total in details, got %v", appErr.Details)
	}
}

func TestCreate_ClientTransactionIDPreserved(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, nil)

	booking, err := svc.Create(context.Background(), seeker(), &model.BookingRequest{
		PropertyID:    propID,
		PaymentMethod: model.PaymentCard,
		TransactionID: "TXN-CLIENT-123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.TransactionID != "TXN-CLIENT-123" {
		t.Errorf("client transaction ID was replaced: %q", booking.TransactionID)
	}
}

func TestCreate_PropertyNotFound(t *testing.T) {
	finder := &mockPropertyFinder{
		findFunc: func(ctx context.Context, id string) (*model.Property, error) {
			return nil, propertieserrors.ErrNotFound
		},
	}
	svc := newTestService(&mockBookingRepository{}, finder)

	_, err := svc.Create(context.Background(), seeker(), &model.BookingRequest{
		PropertyID:    propID,
		PaymentMethod: model.PaymentCard,
	})
	if err == nil {
		t.Fatal("expected not found, got nil")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404, got %d", appErr.HTTPStatus)
	}
	if appErr.Message != "Property not found" {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestCreate_InvalidRequest(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, nil)

	tests := []struct {
		name string
		req  model.BookingRequest
	}{
		{"missing property", model.BookingRequest{PaymentMethod: model.PaymentCard}},
		{"bad property id", model.BookingRequest{PropertyID: "nope", PaymentMethod: model.PaymentCard}},
		{"missing payment method", model.BookingRequest{PropertyID: propID}},
		{"unknown payment method", model.BookingRequest{PropertyID: propID, PaymentMethod: "bitcoin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), seeker(), &tt.req)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if appErr := apperrors.AsAppError(err); appErr.HTTPStatus != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", appErr.HTTPStatus)
			}
		})
	}
}

func TestCreate_PaymentMethodNormalized(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, nil)

	booking, err := svc.Create(context.Background(), seeker(), &model.BookingRequest{
		PropertyID:    propID,
		PaymentMethod: "  Card ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.PaymentMethod != model.PaymentCard {
		t.Errorf("expected normalized payment method, got %q", booking.PaymentMethod)
	}
}

// ────────────────────────────────────────────────
// GetMyBookings
// ────────────────────────────────────────────────

func TestGetMyBookings_ScopedToCaller(t *testing.T) {
	var queriedUser string
	repo := &mockBookingRepository{
		findByUserFunc: func(ctx context.Context, userID string) ([]*model.BookingWithProperty, error) {
			queriedUser = userID
			return []*model.BookingWithProperty{}, nil
		},
	}
	svc := newTestService(repo, nil)

	if _, err := svc.GetMyBookings(context.Background(), seeker()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if queriedUser != userID {
		t.Errorf("expected query for %s, got %s", userID, queriedUser)
	}
}

func TestGetMyBookings_EmptyHistory(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, nil)

	bookings, err := svc.GetMyBookings(context.Background(), seeker())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bookings == nil {
		t.Error("expected empty slice, got nil")
	}
}

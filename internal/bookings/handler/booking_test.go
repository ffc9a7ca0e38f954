package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/E11SH/RENTHUB/internal/auth"
	apperrors "github.com/E11SH/RENTHUB/pkg/errors"
	"github.com/E11SH/RENTHUB/pkg/logger"
	"github.com/E11SH/RENTHUB/pkg/model"
)

// Mock service for testing
type mockBookingService struct {
	createFunc func(ctx context.Context, identity auth.Identity, req *model.BookingRequest) (*model.Booking, error)
	getMyFunc  func(ctx context.Context, identity auth.Identity) ([]*model.BookingWithProperty, error)
}

func (m *mockBookingService) Create(ctx context.Context, identity auth.Identity, req *model.BookingRequest) (*model.Booking, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, identity, req)
	}
	return &model.Booking{
		ID:            "507f1f77bcf86cd799439012",
		Property:      req.PropertyID,
		User:          identity.UserID,
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   36500,
		TransactionID: "TXN-test",
		Status:        model.BookingConfirmed,
	}, nil
}

func (m *mockBookingService) GetMyBookings(ctx context.Context, identity auth.Identity) ([]*model.BookingWithProperty, error) {
	if m.getMyFunc != nil {
		return m.getMyFunc(ctx, identity)
	}
	return []*model.BookingWithProperty{}, nil
}

func newTestHandler(svc *mockBookingService) *BookingHandler {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
	tokens := auth.NewTokens("test-secret", time.Hour)
	return NewBookingHandler(svc, auth.NewMiddleware(tokens, log), log)
}

func withIdentity(r *http.Request) *http.Request {
	ctx := auth.ContextWithIdentity(r.Context(), auth.Identity{
		UserID: "507f191e810c19729de860ea",
		Role:   model.RoleSeeker,
	})
	return r.WithContext(ctx)
}

func TestCreate_ReturnsBooking(t *testing.T) {
	handler := newTestHandler(&mockBookingService{})

	body := `{"propertyId":"507f1f77bcf86cd799439011","paymentMethod":"card"}`
	req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	var resp model.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.TotalAmount != 36500 || resp.Status != model.BookingConfirmed {
		t.Errorf("unexpected booking: %+v", resp)
	}
}

func TestCreate_TamperedTotalRejected(t *testing.T) {
	handler := newTestHandler(&mockBookingService{
		createFunc: func(ctx context.Context, identity auth.Identity, req *model.BookingRequest) (*model.Booking, error) {
			return nil, apperrors.Validation("Booking total does not match the current price", nil)
		},
	})

	body := `{"propertyId":"507f1f77bcf86cd799439011","paymentMethod":"card","totalAmount":1}`
	req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetMy_ReturnsHistory(t *testing.T) {
	handler := newTestHandler(&mockBookingService{
		getMyFunc: func(ctx context.Context, identity auth.Identity) ([]*model.BookingWithProperty, error) {
			return []*model.BookingWithProperty{
				{
					ID:          "507f1f77bcf86cd799439012",
					User:        identity.UserID,
					TotalAmount: 36500,
					Property:    model.Property{ID: "507f1f77bcf86cd799439011", Title: "Sunny Flat"},
				},
			}, nil
		},
	})

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/bookings/my", nil))
	w := httptest.NewRecorder()

	handler.GetMy(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []model.BookingWithProperty
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(resp) != 1 || resp[0].Property.Title != "Sunny Flat" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestRoutes_RequireToken(t *testing.T) {
	handler := newTestHandler(&mockBookingService{})
	router := httprouter.New()
	handler.RegisterRoutes(router)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/bookings"},
		{http.MethodGet, "/api/bookings/my"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}
}

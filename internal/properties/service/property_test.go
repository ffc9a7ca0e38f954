package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/E11SH/RENTHUB/internal/auth"
	propertieserrors "github.com/E11SH/RENTHUB/internal/properties/errors"
	"github.com/E11SH/RENTHUB/internal/properties/validator"
	"github.com/E11SH/RENTHUB/pkg/config"
	apperrors "github.com/E11SH/RENTHUB/pkg/errors"
	"github.com/E11SH/RENTHUB/pkg/logger"
	"github.com/E11SH/RENTHUB/pkg/model"
)

const (
	ownerID  = "507f191e810c19729de860ea"
	otherID  = "507f191e810c19729de860eb"
	propID   = "507f1f77bcf86cd799439011"
	seekerID = "507f191e810c19729de860ec"
)

// ────────────────────────────────────────────────
// Mocks
// ────────────────────────────────────────────────

type mockPropertyRepository struct {
	createFunc            func(ctx context.Context, property *model.Property) error
	findAllFunc           func(ctx context.Context) ([]*model.PropertyWithOwner, error)
	findByIDWithOwnerFunc func(ctx context.Context, id string) (*model.PropertyWithOwner, error)
	findByIDFunc          func(ctx context.Context, id string) (*model.Property, error)
	updateFunc            func(ctx context.Context, id string, property *model.Property) error
	deleteFunc            func(ctx context.Context, id string) error
}

func (m *mockPropertyRepository) Create(ctx context.Context, property *model.Property) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, property)
	}
	property.ID = propID
	return nil
}

func (m *mockPropertyRepository) FindAll(ctx context.Context) ([]*model.PropertyWithOwner, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return []*model.PropertyWithOwner{}, nil
}

func (m *mockPropertyRepository) FindByIDWithOwner(ctx context.Context, id string) (*model.PropertyWithOwner, error) {
	if m.findByIDWithOwnerFunc != nil {
		return m.findByIDWithOwnerFunc(ctx, id)
	}
	return nil, propertieserrors.ErrNotFound
}

func (m *mockPropertyRepository) FindByID(ctx context.Context, id string) (*model.Property, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, propertieserrors.ErrNotFound
}

func (m *mockPropertyRepository) Update(ctx context.Context, id string, property *model.Property) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, property)
	}
	return nil
}

func (m *mockPropertyRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockBookingCounter struct {
	countFunc func(ctx context.Context, propertyID string) (int64, error)
}

func (m *mockBookingCounter) CountByProperty(ctx context.Context, propertyID string) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, propertyID)
	}
	return 0, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
	}
}

func newTestService(repo *mockPropertyRepository, bookings *mockBookingCounter) PropertyService {
	if bookings == nil {
		bookings = &mockBookingCounter{}
	}
	return NewPropertyService(repo, bookings, validator.NewPropertyValidator(), nil, nil, testConfig())
}

func advertiser() auth.Identity {
	return auth.Identity{UserID: ownerID, Role: model.RoleAdvertiser}
}

func validProperty() *model.Property {
	return &model.Property{
		Title:    "Sunny Flat",
		Location: "Cairo",
		Price:    12000,
		Bedrooms: 2,
	}
}

// ────────────────────────────────────────────────
// Create
// ────────────────────────────────────────────────

func TestCreate_SeekerForbidden(t *testing.T) {
	svc := newTestService(&mockPropertyRepository{}, nil)

	err := svc.Create(context.Background(), auth.Identity{UserID: seekerID, Role: model.RoleSeeker}, validProperty())
	if err == nil {
		t.Fatal("expected forbidden, got nil")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.HTTPStatus != http.StatusForbidden {
		t.Errorf("expected 403, got %d", appErr.HTTPStatus)
	}
	if appErr.Message != "Only property owners can post properties" {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestCreate_OwnerComesFromIdentity(t *testing.T) {
	var stored *model.Property
	repo := &mockPropertyRepository{
		createFunc: func(ctx context.Context, property *model.Property) error {
			stored = property
			property.ID = propID
			return nil
		},
	}
	svc := newTestService(repo, nil)

	property := validProperty()
	// A forged owner in the body must be ignored.
	property.Owner = otherID
	property.ID = "attacker-chosen-id"

	if err := svc.Create(context.Background(), advertiser(), property); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stored.Owner != ownerID {
		t.Errorf("expected owner %s, got %s", ownerID, stored.Owner)
	}
	if stored.ID != propID {
		t.Errorf("client-supplied ID was not discarded: %s", stored.ID)
	}
}

func TestCreate_ValidationFailure(t *testing.T) {
	svc := newTestService(&mockPropertyRepository{}, nil)

	tests := []struct {
		name     string
		property *model.Property
	}{
		{"missing title", &model.Property{Location: "Cairo", Price: 1000}},
		{"missing location", &model.Property{Title: "Flat", Price: 1000}},
		{"zero price", &model.Property{Title: "Flat", Location: "Cairo"}},
		{"negative price", &model.Property{Title: "Flat", Location: "Cairo", Price: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(context.Background(), advertiser(), tt.property)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if appErr := apperrors.AsAppError(err); appErr.HTTPStatus != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", appErr.HTTPStatus)
			}
		})
	}
}

// ────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────

func TestUpdate_NonOwnerForbidden(t *testing.T) {
	repo := &mockPropertyRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Property, error) {
			p := validProperty()
			p.ID = propID
			p.Owner = otherID
			return p, nil
		},
	}
	svc := newTestService(repo, nil)

	price := int64(9000)
	_, err := svc.Update(context.Background(), advertiser(), propID, &model.PropertyUpdate{Price: &price})
	if err == nil {
		t.Fatal("expected forbidden, got nil")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.HTTPStatus != http.StatusForbidden {
		t.Errorf("expected 403, got %d", appErr.HTTPStatus)
	}
	if appErr.Message != "Not authorized" {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestUpdate_MergesOnlyProvidedFields(t *testing.T) {
	var updated *model.Property
	repo := &mockPropertyRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Property, error) {
			return &model.Property{
				ID:       propID,
				Title:    "Sunny Flat",
				Location: "Cairo",
				Price:    12000,
				Bedrooms: 2,
				Owner:    ownerID,
			}, nil
		},
		updateFunc: func(ctx context.Context, id string, property *model.Property) error {
			updated = property
			return nil
		},
	}
	svc := newTestService(repo, nil)

	price := int64(9500)
	result, err := svc.Update(context.Background(), advertiser(), propID, &model.PropertyUpdate{
		Price: &price,
		Title: "Renovated Flat",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Price != 9500 || updated.Title != "Renovated Flat" {
		t.Errorf("updates not applied: %+v", updated)
	}
	if updated.Location != "Cairo" || updated.Bedrooms != 2 {
		t.Errorf("untouched fields were clobbered: %+v", updated)
	}
	if updated.Owner != ownerID || updated.ID != propID {
		t.Errorf("identity fields changed: %+v", updated)
	}
	if result.Price != 9500 {
		t.Errorf("returned property does not reflect updates: %+v", result)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(&mockPropertyRepository{}, nil)

	_, err := svc.Update(context.Background(), advertiser(), propID, &model.PropertyUpdate{Title: "New"})
	if appErr := apperrors.AsAppError(err); appErr.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

// ────────────────────────────────────────────────
// Delete
// ────────────────────────────────────────────────

func TestDelete_BlockedWhileBookingsExist(t *testing.T) {
	repo := &mockPropertyRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Property, error) {
			p := validProperty()
			p.ID = propID
			p.Owner = ownerID
			return p, nil
		},
	}
	bookings := &mockBookingCounter{
		countFunc: func(ctx context.Context, propertyID string) (int64, error) {
			return 3, nil
		},
	}
	svc := newTestService(repo, bookings)

	err := svc.Delete(context.Background(), advertiser(), propID)
	if err == nil {
		t.Fatal("expected conflict, got nil")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeConflict {
		t.Errorf("expected CONFLICT, got %v", err)
	}
}

func TestDelete_NonOwnerForbidden(t *testing.T) {
	repo := &mockPropertyRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Property, error) {
			p := validProperty()
			p.ID = propID
			p.Owner = otherID
			return p, nil
		},
	}
	svc := newTestService(repo, nil)

	err := svc.Delete(context.Background(), advertiser(), propID)
	if appErr := apperrors.AsAppError(err); appErr.Message != "Not authorized" {
		t.Errorf("expected ownership rejection, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	deleted := false
	repo := &mockPropertyRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Property, error) {
			p := validProperty()
			p.ID = propID
			p.Owner = ownerID
			return p, nil
		},
		deleteFunc: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	svc := newTestService(repo, nil)

	if err := svc.Delete(context.Background(), advertiser(), propID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("repository delete was not called")
	}
}

// ────────────────────────────────────────────────
// Reads
// ────────────────────────────────────────────────

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&mockPropertyRepository{}, nil)

	_, err := svc.GetByID(context.Background(), propID)
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

func TestGetByID_MalformedIDBehavesAsNotFound(t *testing.T) {
	repo := &mockPropertyRepository{
		findByIDWithOwnerFunc: func(ctx context.Context, id string) (*model.PropertyWithOwner, error) {
			return nil, propertieserrors.ErrInvalidID
		},
	}
	svc := newTestService(repo, nil)

	_, err := svc.GetByID(context.Background(), "not-an-id")
	if appErr := apperrors.AsAppError(err); appErr.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestGetAll_ReturnsEmptySliceNotNil(t *testing.T) {
	svc := newTestService(&mockPropertyRepository{}, nil)

	properties, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if properties == nil {
		t.Error("expected empty slice, got nil")
	}
}

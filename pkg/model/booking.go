package model

import "time"

const (
	PaymentCard = "card"
	PaymentCash = "cash"

	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking is a reservation of a Property by a User. User always holds the
// authenticated requester's ID; the server never trusts a client-supplied
// identity here.
type Booking struct {
	ID            string    `json:"_id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Property      string    `json:"property" bson:"property" validate:"required,mongodb"`
	User          string    `json:"user" bson:"user" validate:"required,mongodb"`
	PaymentMethod string    `json:"paymentMethod" bson:"paymentMethod" validate:"required,oneof=card cash"`
	TotalAmount   int64     `json:"totalAmount" bson:"totalAmount" validate:"required,gt=0"`
	TransactionID string    `json:"transactionId" bson:"transactionId" validate:"required,max=100"`
	Status        string    `json:"status" bson:"status" validate:"required,oneof=pending confirmed cancelled"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// BookingWithProperty is the read shape for a user's booking history, with
// the referenced Property fully resolved.
type BookingWithProperty struct {
	ID            string    `json:"_id" bson:"_id"`
	Property      Property  `json:"property" bson:"property"`
	User          string    `json:"user" bson:"user"`
	PaymentMethod string    `json:"paymentMethod" bson:"paymentMethod"`
	TotalAmount   int64     `json:"totalAmount" bson:"totalAmount"`
	TransactionID string    `json:"transactionId" bson:"transactionId"`
	Status        string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// BookingRequest is the checkout payload. Any user field a client sneaks in
// is ignored; TransactionID is optional and generated server-side when
// absent. TotalAmount is advisory: the server recomputes the total from the
// property's rent and rejects a mismatch.
type BookingRequest struct {
	PropertyID    string `json:"propertyId" validate:"required,mongodb"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=card cash"`
	TotalAmount   int64  `json:"totalAmount" validate:"omitempty,gt=0"`
	TransactionID string `json:"transactionId" validate:"omitempty,max=100"`
}

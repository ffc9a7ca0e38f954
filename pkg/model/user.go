package model

import "time"

const (
	RoleSeeker     = "seeker"
	RoleAdvertiser = "advertiser"
)

// User is an identity record. Password holds the bcrypt hash and is never
// serialized to JSON.
type User struct {
	ID        string    `json:"_id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name      string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Password  string    `json:"-" bson:"password" validate:"required"`
	Type      string    `json:"type" bson:"type" validate:"required,oneof=seeker advertiser"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// PublicUser is the identity shape echoed to clients: login responses and
// resolved property owners. No hash, ever.
type PublicUser struct {
	ID    string `json:"_id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Type  string `json:"type,omitempty" bson:"type,omitempty"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Type:  u.Type,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Type     string `json:"type" validate:"required,oneof=seeker advertiser"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

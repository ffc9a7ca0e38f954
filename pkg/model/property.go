package model

import "time"

// Property is a rental listing. Owner stores the advertiser's user ID;
// read paths resolve it to a PublicUser.
type Property struct {
	ID          string    `json:"_id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Title       string    `json:"title" bson:"title" validate:"required,min=2,max=200"`
	Location    string    `json:"location" bson:"location" validate:"required,min=2,max=200"`
	Price       int64     `json:"price" bson:"price" validate:"required,gt=0"`
	Area        int       `json:"area" bson:"area" validate:"omitempty,gte=0"`
	Bedrooms    int       `json:"bedrooms" bson:"bedrooms" validate:"omitempty,gte=0,lte=50"`
	Bathrooms   int       `json:"bathrooms" bson:"bathrooms" validate:"omitempty,gte=0,lte=50"`
	Type        string    `json:"type" bson:"type" validate:"omitempty,max=50"`
	Image       string    `json:"image" bson:"image" validate:"omitempty,max=500"`
	Description string    `json:"description" bson:"description" validate:"omitempty,max=5000"`
	Owner       string    `json:"owner" bson:"owner" validate:"required,mongodb"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// PropertyWithOwner is the read shape with the owner resolved to name and
// email, as produced by the repository's lookup.
type PropertyWithOwner struct {
	ID          string     `json:"_id" bson:"_id"`
	Title       string     `json:"title" bson:"title"`
	Location    string     `json:"location" bson:"location"`
	Price       int64      `json:"price" bson:"price"`
	Area        int        `json:"area" bson:"area"`
	Bedrooms    int        `json:"bedrooms" bson:"bedrooms"`
	Bathrooms   int        `json:"bathrooms" bson:"bathrooms"`
	Type        string     `json:"type" bson:"type"`
	Image       string     `json:"image" bson:"image"`
	Description string     `json:"description" bson:"description"`
	Owner       PublicUser `json:"owner" bson:"owner"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
}

// PropertyUpdate carries the owner-editable fields. Nil and empty values
// are left untouched on merge.
type PropertyUpdate struct {
	Title       string `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Location    string `json:"location,omitempty" validate:"omitempty,min=2,max=200"`
	Price       *int64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Area        *int   `json:"area,omitempty" validate:"omitempty,gte=0"`
	Bedrooms    *int   `json:"bedrooms,omitempty" validate:"omitempty,gte=0,lte=50"`
	Bathrooms   *int   `json:"bathrooms,omitempty" validate:"omitempty,gte=0,lte=50"`
	Type        string `json:"type,omitempty" validate:"omitempty,max=50"`
	Image       string `json:"image,omitempty" validate:"omitempty,max=500"`
	Description string `json:"description,omitempty" validate:"omitempty,max=5000"`
}

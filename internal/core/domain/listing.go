package domain

import "time"

// ListingStatus is the moderation state assigned to a listing by staff action.
type ListingStatus string

const (
	ListingPending  ListingStatus = "pending"
	ListingApproved ListingStatus = "approved"
	ListingRejected ListingStatus = "rejected"
)

// ListingImage is one entry in a listing's ordered image collection.
type ListingImage struct {
	ID        int    `json:"id"`
	ListingID int    `json:"listing_id"`
	Path      string `json:"path"`
}

// Listing is a property advert owned by a platform user. Categorical
// attributes are foreign-key ids resolved by the backend.
type Listing struct {
	ID            int            `json:"id"`
	UserID        int            `json:"user_id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Status        ListingStatus  `json:"status"`
	Price         float64        `json:"price"`
	Area          float64        `json:"area"`
	FurnitureID   int            `json:"furniture_id"`
	HeatingID     int            `json:"heating_id"`
	HouseTypeID   int            `json:"house_type_id"`
	AgeRangeID    int            `json:"age_range_id"`
	BuildingAgeID int            `json:"building_age_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Images        []ListingImage `json:"images,omitempty"`
}

package domain

import "time"

// User models a platform account as exposed by the admin backend.
// Wire names follow the platform's legacy schema: is_helios is the
// administrator flag, onayli the staff-approval flag.
type User struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	IsAdmin       BoolFlag  `json:"is_helios"`
	Approved      BoolFlag  `json:"onayli"`
	TestCompleted BoolFlag  `json:"character_test_done"`
	CreatedAt     time.Time `json:"created_at"`

	// Optional profile attributes, present on the detail endpoint only.
	Phone           string     `json:"telefon,omitempty"`
	BirthDate       string     `json:"dogum_tarihi,omitempty"`
	Gender          string     `json:"gender,omitempty"`
	CityID          int        `json:"il_id,omitempty"`
	DistrictID      int        `json:"ilce_id,omitempty"`
	ProfilePhotoURL string     `json:"profile_photo_url,omitempty"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

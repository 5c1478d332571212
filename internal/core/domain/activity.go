package domain

import "time"

// LogKind selects which activity feed a log entry belongs to.
type LogKind string

const (
	LogKindUser    LogKind = "user"
	LogKindListing LogKind = "listing"
)

// ActorSnippet is the denormalized user reference carried on a log entry.
type ActorSnippet struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListingSnippet is the denormalized listing reference on listing-kind logs.
type ListingSnippet struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// ActivityLog is an immutable, backend-recorded event describing a state
// change to a user or listing. Action is a free-form tag such as
// "register", "login", "approve" or "delete".
type ActivityLog struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	ListingID int             `json:"listing_id,omitempty"`
	Action    string          `json:"action"`
	CreatedAt time.Time       `json:"created_at"`
	User      *ActorSnippet   `json:"user,omitempty"`
	Listing   *ListingSnippet `json:"listing,omitempty"`
}

// LogFilter narrows an activity-log query. Zero values are omitted from
// the request.
type LogFilter struct {
	UserID    int
	ListingID int
	Action    string
	Limit     int
	Page      int
	PerPage   int
}

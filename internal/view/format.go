// Package view holds shared presentation helpers for the dashboard and
// table render models.
package view

import (
	"fmt"
	"time"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
)

var userActionText = map[string]string{
	"register":       "signed up",
	"update_profile": "updated their profile",
	"delete":         "deleted their account",
	"login":          "logged in",
	"logout":         "logged out",
}

var listingActionText = map[string]string{
	"create":  "published a listing",
	"update":  "updated a listing",
	"delete":  "removed a listing",
	"approve": "listing was approved",
	"reject":  "listing was rejected",
}

// ActionText translates a log entry's action tag into feed copy.
// Unknown tags fall back to the raw tag so new backend events still
// render.
func ActionText(kind domain.LogKind, action string) string {
	var m map[string]string
	switch kind {
	case domain.LogKindListing:
		m = listingActionText
	default:
		m = userActionText
	}
	if s, ok := m[action]; ok {
		return s
	}
	return action
}

// RelativeTime renders when as feed-style copy relative to now.
func RelativeTime(now, when time.Time) string {
	d := now.Sub(when)
	switch {
	case d < time.Minute:
		return "moments ago"
	case d < time.Hour:
		n := int(d.Minutes())
		if n == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", n)
	case d < 24*time.Hour:
		n := int(d.Hours())
		if n == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", n)
	default:
		n := int(d.Hours() / 24)
		if n == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", n)
	}
}

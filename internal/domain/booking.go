package domain

import "regexp"

const (
	// StatusActive is the only status value the backend is observed to emit
	// for live bookings; it is sent verbatim on create.
	StatusActive = "ACTIVE"

	// SystemTag identifies this client in booking payloads.
	SystemTag = "Flatly"

	// DefaultUserID is used when no numeric user id was provided.
	DefaultUserID = 1

	// DefaultUserEmail is the demo fallback when nothing is stored yet.
	DefaultUserEmail = "john.doe@example.com"

	// DateLayout is the calendar-date wire format (no time component).
	DateLayout = "2006-01-02"
)

// Booking is a reservation record exchanged verbatim with the backend.
// Dates are inclusive calendar-date strings in DateLayout.
type Booking struct {
	ID        int64  `json:"id"`
	FlatID    int64  `json:"flatId"`
	UserID    int64  `json:"userId"`
	UserEmail string `json:"userEmail"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
	System    string `json:"system"`
}

// local part, "@", domain, ".", tld-like suffix
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)

func ValidEmail(s string) bool { return emailRe.MatchString(s) }

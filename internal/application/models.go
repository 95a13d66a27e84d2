package application

import "time"

// Identity is the lightweight immutable session value threaded through
// every use-case call: the numeric user id plus the email that screens
// carry between each other. It replaces the original pattern of
// re-querying the id by email on every screen.
type Identity struct {
	UserID int64
	Email  string
}

// Valid reports whether the identity carries both halves.
func (i Identity) Valid() bool {
	return i.UserID > 0 && i.Email != ""
}

// Session pairs a bearer token with the identity it resolves to.
type Session struct {
	Token     string
	Identity  Identity
	ExpiresAt time.Time
}

// Profile is the user-facing view of an account row.
type Profile struct {
	UserID       int64
	Name         string
	Email        string
	ProfileImage string
}

// SignUpInput carries the signup form fields.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// PaymentCard carries the simulated payment form fields. All values arrive
// untrusted from the screen parameter bag.
type PaymentCard struct {
	Number     string
	HolderName string
	Expiry     string // MM/YY
	CVV        string
}

// ReservationInput carries the parameters of the reserve-and-pay flow.
type ReservationInput struct {
	SpotName      string
	Timestamp     string
	DurationHours int
	Card          PaymentCard
}

// ReservationQuote is the computed price shown before payment.
type ReservationQuote struct {
	SpotName      string
	DurationHours int
	PricePerHour  float64
	TotalCost     float64
}

// ReservationView is the reservation row decorated for display.
type ReservationView struct {
	ID        int64
	SpotName  string
	Timestamp string
}

// FeedbackInput carries the feedback form fields.
type FeedbackInput struct {
	Subject string
	Message string
	Rating  float64
}

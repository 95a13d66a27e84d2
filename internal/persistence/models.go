package persistence

// User represents a registered ParkNow account. The Password field holds an
// opaque credential string: argon2id hashes for accounts created by this
// implementation, plaintext for rows written by legacy installations.
type User struct {
	ID           int64
	Name         string
	Email        string
	Password     string
	ProfileImage *string
}

// Reservation records a single parking reservation. SpotID is the display
// name of the spot; spots themselves are not persisted. Timestamp is the
// application-formatted creation time and is stored as supplied.
type Reservation struct {
	ID        int64
	UserID    int64
	SpotID    string
	Timestamp string
}

// FavoriteSpot marks a parking spot as favorited by a user. A user may
// favorite a given spot at most once.
type FavoriteSpot struct {
	ID     int64
	UserID int64
	SpotID string
}

// Feedback captures a user-submitted rating with subject and message. The
// timestamp is assigned by the store at insertion time.
type Feedback struct {
	ID        int64
	UserID    int64
	Subject   string
	Message   string
	Rating    float64
	Timestamp string
}

// Package catalog holds the transient parking spot data supplied to the map
// collaborator. Spots are identified by display name and are never
// persisted; the store only records spot names inside reservations and
// favorites.
package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Spot describes a single parking location.
type Spot struct {
	Name         string
	Latitude     float64
	Longitude    float64
	Availability int
	PricePerHour float64
}

// Snippet renders the marker subtitle shown on the map surface, e.g.
// "Available: 15, Price: 150 LKR/hr".
func (s Spot) Snippet() string {
	return fmt.Sprintf("Available: %d, Price: %s LKR/hr", s.Availability, formatAmount(s.PricePerHour))
}

// NavigationURI builds the deep link handed to the external turn-by-turn
// navigation application.
func (s Spot) NavigationURI() string {
	return "google.navigation:q=" + formatCoordinate(s.Latitude) + "," + formatCoordinate(s.Longitude)
}

// TotalCost computes the price of parking for a whole number of hours.
func (s Spot) TotalCost(hours int) float64 {
	return s.PricePerHour * float64(hours)
}

// Catalog is an immutable set of spots keyed by display name.
type Catalog struct {
	spots  []Spot
	byName map[string]Spot
}

// New builds a catalog from the given spots. Later duplicates by name win.
func New(spots []Spot) *Catalog {
	byName := make(map[string]Spot, len(spots))
	ordered := make([]Spot, len(spots))
	copy(ordered, spots)
	for _, spot := range ordered {
		byName[spot.Name] = spot
	}
	return &Catalog{spots: ordered, byName: byName}
}

// Default returns the catalog of the eight built-in Sri Lanka parking spots.
func Default() *Catalog {
	return New([]Spot{
		{Name: "Colombo Fort Parking", Latitude: 6.9271, Longitude: 79.8612, Availability: 15, PricePerHour: 150},
		{Name: "Galle Face Green Parking", Latitude: 6.8967, Longitude: 79.8660, Availability: 20, PricePerHour: 100},
		{Name: "Nugegoda Urban Parking", Latitude: 6.8650, Longitude: 79.8997, Availability: 10, PricePerHour: 120},
		{Name: "Kandy City Center Parking", Latitude: 7.2906, Longitude: 80.6337, Availability: 8, PricePerHour: 180},
		{Name: "Galle Fort Parking", Latitude: 6.0535, Longitude: 80.2210, Availability: 12, PricePerHour: 130},
		{Name: "Negombo Beach Parking", Latitude: 7.9000, Longitude: 79.8900, Availability: 25, PricePerHour: 90},
		{Name: "Trincomalee Dock Parking", Latitude: 8.5878, Longitude: 81.2152, Availability: 7, PricePerHour: 110},
		{Name: "Jaffna City Parking", Latitude: 9.6615, Longitude: 80.0255, Availability: 18, PricePerHour: 140},
	})
}

// Spots returns all spots in catalog order.
func (c *Catalog) Spots() []Spot {
	out := make([]Spot, len(c.spots))
	copy(out, c.spots)
	return out
}

// ByName looks a spot up by its display name.
func (c *Catalog) ByName(name string) (Spot, bool) {
	spot, ok := c.byName[strings.TrimSpace(name)]
	return spot, ok
}

var (
	snippetPriceRe        = regexp.MustCompile(`Price: (\d+\.?\d*)\s*LKR/hr`)
	snippetAvailabilityRe = regexp.MustCompile(`Available: (\d+)`)
)

// ParseSnippet extracts availability and price-per-hour from a marker
// subtitle. Both fields are optional and untrusted; a missing or malformed
// field leaves the corresponding result at zero with ok=false.
func ParseSnippet(snippet string) (availability int, pricePerHour float64, ok bool) {
	priceMatch := snippetPriceRe.FindStringSubmatch(snippet)
	availMatch := snippetAvailabilityRe.FindStringSubmatch(snippet)
	if priceMatch == nil || availMatch == nil {
		return 0, 0, false
	}

	price, err := strconv.ParseFloat(priceMatch[1], 64)
	if err != nil {
		return 0, 0, false
	}
	avail, err := strconv.Atoi(availMatch[1])
	if err != nil {
		return 0, 0, false
	}

	return avail, price, true
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func formatCoordinate(coord float64) string {
	return strconv.FormatFloat(coord, 'f', -1, 64)
}

package catalog

import (
	"strings"
	"testing"
)

func TestDefaultCatalogContents(t *testing.T) {
	spots := Default().Spots()
	if len(spots) != 8 {
		t.Fatalf("expected 8 built-in spots, got %d", len(spots))
	}

	first := spots[0]
	if first.Name != "Colombo Fort Parking" {
		t.Errorf("expected Colombo Fort Parking first, got %q", first.Name)
	}
	if first.Latitude != 6.9271 || first.Longitude != 79.8612 {
		t.Errorf("unexpected coordinates: %v, %v", first.Latitude, first.Longitude)
	}
	if first.Availability != 15 || first.PricePerHour != 150 {
		t.Errorf("unexpected availability/price: %d, %v", first.Availability, first.PricePerHour)
	}
}

func TestCatalogByName(t *testing.T) {
	catalog := Default()

	spot, ok := catalog.ByName("Galle Face Green Parking")
	if !ok {
		t.Fatalf("expected lookup to succeed")
	}
	if spot.PricePerHour != 100 {
		t.Errorf("unexpected price: %v", spot.PricePerHour)
	}

	// Surrounding whitespace is tolerated.
	if _, ok := catalog.ByName("  Galle Face Green Parking "); !ok {
		t.Errorf("expected whitespace trimmed lookup to succeed")
	}

	if _, ok := catalog.ByName("Nonexistent Parking"); ok {
		t.Errorf("expected unknown name to miss")
	}
}

func TestSpotSnippet(t *testing.T) {
	spot := Spot{Name: "Test", Availability: 15, PricePerHour: 150}
	if got := spot.Snippet(); got != "Available: 15, Price: 150 LKR/hr" {
		t.Fatalf("unexpected snippet: %q", got)
	}

	fractional := Spot{Name: "Test", Availability: 3, PricePerHour: 99.5}
	if got := fractional.Snippet(); got != "Available: 3, Price: 99.5 LKR/hr" {
		t.Fatalf("unexpected snippet: %q", got)
	}
}

func TestParseSnippetRoundTrip(t *testing.T) {
	for _, spot := range Default().Spots() {
		avail, price, ok := ParseSnippet(spot.Snippet())
		if !ok {
			t.Fatalf("failed to parse snippet %q", spot.Snippet())
		}
		if avail != spot.Availability {
			t.Errorf("%s: expected availability %d, got %d", spot.Name, spot.Availability, avail)
		}
		if price != spot.PricePerHour {
			t.Errorf("%s: expected price %v, got %v", spot.Name, spot.PricePerHour, price)
		}
	}
}

func TestParseSnippetMalformed(t *testing.T) {
	cases := []string{
		"",
		"Available: many, Price: lots",
		"Price: 150 LKR/hr",
		"Available: 15",
	}
	for _, snippet := range cases {
		if _, _, ok := ParseSnippet(snippet); ok {
			t.Errorf("expected parse of %q to fail", snippet)
		}
	}
}

func TestNavigationURI(t *testing.T) {
	spot := Spot{Name: "Test", Latitude: 6.9271, Longitude: 79.8612}
	uri := spot.NavigationURI()
	if uri != "google.navigation:q=6.9271,79.8612" {
		t.Fatalf("unexpected navigation uri: %q", uri)
	}
	if !strings.HasPrefix(uri, "google.navigation:q=") {
		t.Fatalf("expected deep link scheme, got %q", uri)
	}
}

func TestTotalCost(t *testing.T) {
	spot := Spot{PricePerHour: 150}
	if got := spot.TotalCost(3); got != 450 {
		t.Fatalf("expected 450, got %v", got)
	}
	if got := spot.TotalCost(0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

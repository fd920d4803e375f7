package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const fareDelta = 1e-9

func TestFare_PerTier(t *testing.T) {
	tests := []struct {
		name     string
		ride     Ride
		expected float64
	}{
		{"base 10 miles", NewRide(1, "A", "B", 10), 25.00},
		{"standard 10 miles", NewStandardRide(2, "A", "B", 10), 21.50},
		{"premium 10 miles", NewPremiumRide(3, "A", "B", 10), 48.00},
		{"base 15 miles", NewRide(101, "Downtown", "Airport", 15), 37.50},
		{"standard 8 miles", NewStandardRide(102, "Mall", "University", 8), 17.50},
		{"standard 5 miles", NewStandardRide(103, "Hotel", "Conference Center", 5), 11.50},
		{"premium 20 miles", NewPremiumRide(105, "Airport", "Resort", 20), 90.00},
		{"base zero distance", NewRide(4, "A", "A", 0), 0},
		{"standard zero distance", NewStandardRide(5, "A", "A", 0), 1.50},
		{"premium zero distance", NewPremiumRide(6, "A", "A", 0), 6.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.ride.Fare(), fareDelta)
		})
	}
}

// Negative distance is accepted without validation and flows straight into
// the formula.
func TestFare_NegativeDistance(t *testing.T) {
	assert.InDelta(t, -25.00, NewRide(1, "A", "B", -10).Fare(), fareDelta)
	assert.InDelta(t, -18.50, NewStandardRide(2, "A", "B", -10).Fare(), fareDelta)
	assert.InDelta(t, -36.00, NewPremiumRide(3, "A", "B", -10).Fare(), fareDelta)
	assert.Equal(t, -10.0, NewRide(1, "A", "B", -10).Distance())
}

func TestMoneyRendering(t *testing.T) {
	ride := NewRide(7, "A", "B", -10)
	assert.Equal(t, "Ride ID: 7, From: A, To: B, Distance: -10.00 miles, Fare: $-25.00", ride.Description())

	driver := NewDriver(1, "Ann", 5)
	driver.AddRide(ride)
	assert.Contains(t, driver.Info(), "Total Earnings: $-25.00")

	rider := NewRider(2, "Ben")
	rider.RequestRide(NewPremiumRide(8, "A", "B", 10))
	assert.Contains(t, rider.Info(), "Total Spending: $48.00")
}

func TestFare_TierOrdering(t *testing.T) {
	for _, distance := range []float64{0, 1, 10} {
		base := Fare(RideTypeBase, distance)
		standard := Fare(RideTypeStandard, distance)
		premium := Fare(RideTypePremium, distance)

		assert.GreaterOrEqual(t, premium, standard, "distance %v", distance)
		assert.GreaterOrEqual(t, premium, base, "distance %v", distance)
	}

	// Standard's flat fee only outweighs Base's higher per-mile rate on
	// short trips.
	for _, distance := range []float64{0, 1} {
		assert.GreaterOrEqual(t, Fare(RideTypeStandard, distance), Fare(RideTypeBase, distance), "distance %v", distance)
	}
}

// Base and Standard cross at 3 miles; beyond that Base costs more.
func TestFare_BaseStandardCrossover(t *testing.T) {
	assert.InDelta(t, 7.50, Fare(RideTypeBase, 3), fareDelta)
	assert.InDelta(t, 7.50, Fare(RideTypeStandard, 3), fareDelta)

	base := Fare(RideTypeBase, 10)
	standard := Fare(RideTypeStandard, 10)
	assert.InDelta(t, 25.00, base, fareDelta)
	assert.InDelta(t, 21.50, standard, fareDelta)
	assert.Greater(t, base, standard)
}

func TestFare_Idempotent(t *testing.T) {
	ride := NewPremiumRide(104, "Luxury Hotel", "Business District", 10)
	first := ride.Fare()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ride.Fare())
		assert.Equal(t, ride.Description(), ride.Description())
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		ride     Ride
		expected string
	}{
		{
			name:     "base has no tag",
			ride:     NewRide(101, "Downtown", "Airport", 15),
			expected: "Ride ID: 101, From: Downtown, To: Airport, Distance: 15.00 miles, Fare: $37.50",
		},
		{
			name:     "standard tag",
			ride:     NewStandardRide(102, "Mall", "University", 8),
			expected: "[STANDARD] Ride ID: 102, From: Mall, To: University, Distance: 8.00 miles, Fare: $17.50",
		},
		{
			name:     "premium tag and surcharge note",
			ride:     NewPremiumRide(104, "Luxury Hotel", "Business District", 10),
			expected: "[PREMIUM] Ride ID: 104, From: Luxury Hotel, To: Business District, Distance: 10.00 miles, Fare: $48.00 (includes luxury surcharge)",
		},
		{
			name:     "fractional distance rounds to two places",
			ride:     NewRide(7, "X", "Y", 3.14159),
			expected: "Ride ID: 7, From: X, To: Y, Distance: 3.14 miles, Fare: $7.85",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ride.Description())
		})
	}
}

func TestRideType(t *testing.T) {
	assert.Equal(t, RideTypeBase, NewRide(1, "A", "B", 1).RideType())
	assert.Equal(t, RideTypeStandard, NewStandardRide(1, "A", "B", 1).RideType())
	assert.Equal(t, RideTypePremium, NewPremiumRide(1, "A", "B", 1).RideType())
	assert.Equal(t, "PREMIUM", string(RideTypePremium))
}

// A slice of rides dispatches on each ride's own tier.
func TestRide_MixedCollection(t *testing.T) {
	rides := []Ride{
		NewRide(1, "A", "B", 10),
		NewStandardRide(2, "A", "B", 10),
		NewPremiumRide(3, "A", "B", 10),
	}

	expected := []float64{25.00, 21.50, 48.00}
	for i, ride := range rides {
		assert.InDelta(t, expected[i], ride.Fare(), fareDelta)
	}
	assert.InDelta(t, 94.50, SumFares(rides), fareDelta)
}

func TestParseRideType(t *testing.T) {
	rt, ok := ParseRideType("STANDARD")
	assert.True(t, ok)
	assert.Equal(t, RideTypeStandard, rt)

	_, ok = ParseRideType("standard")
	assert.False(t, ok)

	_, ok = ParseRideType("LUXURY")
	assert.False(t, ok)
}

func TestNewRideOfType_UnknownFallsBackToBase(t *testing.T) {
	ride := NewRideOfType(RideType("LUXURY"), 9, "A", "B", 2)
	assert.Equal(t, RideTypeBase, ride.RideType())
	assert.InDelta(t, 5.00, ride.Fare(), fareDelta)

	premium := NewRideOfType(RideTypePremium, 10, "A", "B", 10)
	assert.Equal(t, NewPremiumRide(10, "A", "B", 10), premium)
}

// Package entities defines the core domain models for the ride-sharing system.
// These types represent the business concepts (Ride, Driver, Rider) and live
// in the innermost layer of the architecture. They have no dependencies on
// storage, HTTP, or output streams.
//
// Go Learning Note — "internal/" directory:
// Packages under internal/ cannot be imported by code outside this module. Go
// enforces this at the compiler level. This is how Go provides encapsulation
// at the package level.
package entities

import (
	"fmt"

	"ridesharing/pkg/utils"
)

// RideType is the ride tier. It selects the fare formula and the label shown
// in a ride description.
//
// Go Learning Note — Closed Variants Instead of Inheritance:
// Go has no class hierarchy, so "a StandardRide is a Ride" is modeled as a
// single Ride struct carrying a tag. Every behavior that differs per tier is a
// switch over that tag. Adding a tier means adding a constant and a case to
// each switch; the default branches make a forgotten case easy to spot.
type RideType string

const (
	RideTypeBase     RideType = "BASE"
	RideTypeStandard RideType = "STANDARD"
	RideTypePremium  RideType = "PREMIUM"
)

// Tariff constants. These are fixed; there is no configuration surface.
const (
	BasePerMile       = 2.50
	StandardPerMile   = 2.00
	StandardFlatFee   = 1.50
	PremiumPerMile    = 3.50
	PremiumFlatFee    = 5.00
	PremiumSurcharge  = 1.20
	premiumSuffixNote = " (includes luxury surcharge)"
)

// ParseRideType maps a tier label to its RideType. The match is exact.
func ParseRideType(s string) (RideType, bool) {
	switch RideType(s) {
	case RideTypeBase, RideTypeStandard, RideTypePremium:
		return RideType(s), true
	}
	return "", false
}

// Ride is an immutable trip record. Fields are unexported so the only way to
// build one is through the constructors, and the only way to read it is
// through the accessors.
//
// Go Learning Note — Value Types:
// Ride is returned and stored by value. Since nothing can change a Ride after
// construction, every copy is equivalent, and several drivers and riders can
// hold "the same" ride without any pointer sharing or locking.
type Ride struct {
	id       int
	pickup   string
	dropoff  string
	distance float64
	rideType RideType
}

// NewRide creates a base-tier ride. Distance is not validated: a negative
// distance is accepted and yields a negative fare.
func NewRide(id int, pickup, dropoff string, distance float64) Ride {
	return newRide(id, pickup, dropoff, distance, RideTypeBase)
}

// NewStandardRide creates a standard-tier ride.
func NewStandardRide(id int, pickup, dropoff string, distance float64) Ride {
	return newRide(id, pickup, dropoff, distance, RideTypeStandard)
}

// NewPremiumRide creates a premium-tier ride.
func NewPremiumRide(id int, pickup, dropoff string, distance float64) Ride {
	return newRide(id, pickup, dropoff, distance, RideTypePremium)
}

// NewRideOfType creates a ride of the given tier. An unknown tier falls back
// to the base tariff.
func NewRideOfType(rideType RideType, id int, pickup, dropoff string, distance float64) Ride {
	if _, ok := ParseRideType(string(rideType)); !ok {
		rideType = RideTypeBase
	}
	return newRide(id, pickup, dropoff, distance, rideType)
}

func newRide(id int, pickup, dropoff string, distance float64, rideType RideType) Ride {
	return Ride{
		id:       id,
		pickup:   pickup,
		dropoff:  dropoff,
		distance: distance,
		rideType: rideType,
	}
}

func (r Ride) ID() int            { return r.id }
func (r Ride) Pickup() string     { return r.pickup }
func (r Ride) Dropoff() string    { return r.dropoff }
func (r Ride) Distance() float64  { return r.distance }
func (r Ride) RideType() RideType { return r.rideType }

// Fare returns the amount owed for this ride. It is recomputed on every call.
func (r Ride) Fare() float64 {
	return Fare(r.rideType, r.distance)
}

// Description returns the human-readable summary of the ride, with money and
// distance rendered to two decimal places.
func (r Ride) Description() string {
	return Describe(r)
}

// Fare maps a tier and a distance in miles to a fare:
//
//	BASE:     distance * 2.50
//	STANDARD: distance * 2.00 + 1.50
//	PREMIUM:  (distance * 3.50 + 5.00) * 1.20
func Fare(rideType RideType, distance float64) float64 {
	switch rideType {
	case RideTypeStandard:
		return distance*StandardPerMile + StandardFlatFee
	case RideTypePremium:
		return (distance*PremiumPerMile + PremiumFlatFee) * PremiumSurcharge
	default:
		return distance * BasePerMile
	}
}

// Describe renders a ride. Standard and premium rides carry a bracketed tier
// prefix; premium rides also note the luxury surcharge.
//
// Go Learning Note — fmt Verbs:
// %.2f prints a float with exactly two digits after the decimal point and %d
// prints an int. Money goes through utils.FormatMoney so every "$x.xx" in the
// output is rendered the same way.
func Describe(r Ride) string {
	body := fmt.Sprintf("Ride ID: %d, From: %s, To: %s, Distance: %.2f miles, Fare: %s",
		r.id, r.pickup, r.dropoff, r.distance, utils.FormatMoney(r.Fare()))

	switch r.rideType {
	case RideTypeStandard:
		return "[STANDARD] " + body
	case RideTypePremium:
		return "[PREMIUM] " + body + premiumSuffixNote
	default:
		return body
	}
}

// SumFares totals the fares of the given rides in order.
func SumFares(rides []Ride) float64 {
	total := 0.0
	for _, ride := range rides {
		total += ride.Fare()
	}
	return total
}

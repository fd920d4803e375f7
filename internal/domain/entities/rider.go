package entities

import (
	"fmt"

	"ridesharing/pkg/utils"
)

// Rider accumulates the rides it has requested, in insertion order.
type Rider struct {
	id             int
	name           string
	requestedRides []Ride
}

func NewRider(id int, name string) *Rider {
	return &Rider{
		id:   id,
		name: name,
	}
}

func (r *Rider) ID() int      { return r.id }
func (r *Rider) Name() string { return r.name }

// RequestRide appends ride to the history and returns the request event.
func (r *Rider) RequestRide(ride Ride) RideRequested {
	r.requestedRides = append(r.requestedRides, ride)
	return RideRequested{
		RideID:    ride.ID(),
		RiderID:   r.id,
		RiderName: r.name,
	}
}

func (r *Rider) RequestedRides() []Ride {
	return append([]Ride(nil), r.requestedRides...)
}

func (r *Rider) Clone() *Rider {
	c := *r
	c.requestedRides = r.RequestedRides()
	return &c
}

func (r *Rider) NumberOfRequestedRides() int {
	return len(r.requestedRides)
}

// TotalSpending sums the fares of all requested rides.
func (r *Rider) TotalSpending() float64 {
	return SumFares(r.requestedRides)
}

func (r *Rider) Info() string {
	return fmt.Sprintf("Rider ID: %d, Name: %s, Requested Rides: %d, Total Spending: %s",
		r.id, r.name, r.NumberOfRequestedRides(), utils.FormatMoney(r.TotalSpending()))
}

// ListRides returns the ride history descriptions.
func (r *Rider) ListRides() Listing {
	return describeAll("Ride history for "+r.name+":", "No rides requested", r.requestedRides)
}

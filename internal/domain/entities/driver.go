package entities

import (
	"fmt"

	"ridesharing/pkg/utils"
)

// Driver accumulates the rides assigned to it. The ride list only grows, in
// insertion order; there is no removal and no duplicate check.
//
// Go Learning Note — Unexported Fields:
// Lowercase field names are invisible outside the package, so callers cannot
// append to assignedRides directly. All mutation goes through AddRide. This is
// Go's answer to private members: visibility is decided per package, not per
// type.
type Driver struct {
	id            int
	name          string
	rating        float64
	assignedRides []Ride
}

// NewDriver creates a Driver with no assigned rides. Rating is not range
// checked.
//
// Go Learning Note — Pointer vs Value Receivers:
// NewDriver returns *Driver because a driver is mutable: AddRide must change
// the same instance every holder sees. Ride, by contrast, is immutable and is
// passed around by value.
func NewDriver(id int, name string, rating float64) *Driver {
	return &Driver{
		id:     id,
		name:   name,
		rating: rating,
	}
}

func (d *Driver) ID() int         { return d.id }
func (d *Driver) Name() string    { return d.name }
func (d *Driver) Rating() float64 { return d.rating }

// AddRide appends ride to the end of the assigned list and returns the
// assignment event for the caller to publish.
func (d *Driver) AddRide(ride Ride) RideAssigned {
	d.assignedRides = append(d.assignedRides, ride)
	return RideAssigned{
		RideID:     ride.ID(),
		DriverID:   d.id,
		DriverName: d.name,
	}
}

// AssignedRides returns a copy of the assigned rides in insertion order.
//
// Go Learning Note — Defensive Slice Copies:
// Returning d.assignedRides directly would hand the caller the backing array,
// and an append on their side could scribble over ours. append([]Ride(nil), ...)
// allocates a fresh array.
func (d *Driver) AssignedRides() []Ride {
	return append([]Ride(nil), d.assignedRides...)
}

// Clone returns an independent copy of the driver. Repositories hand out
// clones so readers never observe a concurrent AddRide.
func (d *Driver) Clone() *Driver {
	c := *d
	c.assignedRides = d.AssignedRides()
	return &c
}

// NumberOfRides returns how many rides have been assigned.
func (d *Driver) NumberOfRides() int {
	return len(d.assignedRides)
}

// TotalEarnings sums the fares of all assigned rides. Nothing is cached.
func (d *Driver) TotalEarnings() float64 {
	return SumFares(d.assignedRides)
}

// Info returns a one-line summary of the driver.
func (d *Driver) Info() string {
	return fmt.Sprintf("Driver ID: %d, Name: %s, Rating: %.2f stars, Completed Rides: %d, Total Earnings: %s",
		d.id, d.name, d.rating, d.NumberOfRides(), utils.FormatMoney(d.TotalEarnings()))
}

// ListAssignedRides returns the descriptions of the assigned rides.
func (d *Driver) ListAssignedRides() Listing {
	return describeAll("Rides for driver "+d.name+":", "No rides assigned", d.assignedRides)
}

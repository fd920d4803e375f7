package entities

import "fmt"

// EventKind names the state change an Event describes.
type EventKind string

const (
	EventRideAssigned  EventKind = "ride_assigned"
	EventRideRequested EventKind = "ride_requested"
)

// Event is a notification produced by a state change on a Driver or Rider.
// Entities return events rather than printing them; whoever holds the output
// sink decides how to render them.
type Event interface {
	Kind() EventKind
	Message() string
}

// RideAssigned is produced when a ride is added to a driver.
type RideAssigned struct {
	RideID     int    `json:"ride_id"`
	DriverID   int    `json:"driver_id"`
	DriverName string `json:"driver_name"`
}

func (e RideAssigned) Kind() EventKind { return EventRideAssigned }

func (e RideAssigned) Message() string {
	return fmt.Sprintf("Ride %d assigned to driver %s", e.RideID, e.DriverName)
}

// RideRequested is produced when a rider requests a ride.
type RideRequested struct {
	RideID    int    `json:"ride_id"`
	RiderID   int    `json:"rider_id"`
	RiderName string `json:"rider_name"`
}

func (e RideRequested) Kind() EventKind { return EventRideRequested }

func (e RideRequested) Message() string {
	return fmt.Sprintf("Ride %d requested by %s", e.RideID, e.RiderName)
}

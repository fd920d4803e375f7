package demo

import (
	"context"

	"ridesharing/internal/domain/entities"
	"ridesharing/internal/services"
)

// SampleRides returns the five demonstration rides: one base, two standard
// and two premium.
func SampleRides() []entities.Ride {
	return []entities.Ride{
		entities.NewRide(101, "Downtown", "Airport", 15.0),
		entities.NewStandardRide(102, "Mall", "University", 8.0),
		entities.NewStandardRide(103, "Hotel", "Conference Center", 5.0),
		entities.NewPremiumRide(104, "Luxury Hotel", "Business District", 10.0),
		entities.NewPremiumRide(105, "Airport", "Resort", 20.0),
	}
}

func SampleDrivers() []*entities.Driver {
	return []*entities.Driver{
		entities.NewDriver(501, "Alice Johnson", 4.8),
		entities.NewDriver(502, "Bob Smith", 4.5),
		entities.NewDriver(503, "Charlie Brown", 4.9),
	}
}

func SampleRiders() []*entities.Rider {
	return []*entities.Rider{
		entities.NewRider(301, "Emma Wilson"),
		entities.NewRider(302, "David Lee"),
		entities.NewRider(303, "Sarah Davis"),
	}
}

// Pairing links a driver or rider id to a ride id.
type Pairing struct {
	OwnerID int
	RideID  int
}

// SampleAssignments lists driver/ride pairs in the order they are assigned.
func SampleAssignments() []Pairing {
	return []Pairing{
		{501, 101}, {501, 102},
		{502, 103}, {502, 104},
		{503, 105},
	}
}

// SampleRequests lists rider/ride pairs in the order they are requested.
func SampleRequests() []Pairing {
	return []Pairing{
		{301, 101}, {301, 102},
		{302, 103}, {302, 104},
		{303, 105},
	}
}

// SeedCatalog registers the sample rides, drivers and riders.
func SeedCatalog(ctx context.Context, dispatch *services.DispatchService) error {
	for _, ride := range SampleRides() {
		if err := dispatch.RegisterRide(ctx, ride); err != nil {
			return err
		}
	}
	for _, driver := range SampleDrivers() {
		if err := dispatch.RegisterDriver(ctx, driver); err != nil {
			return err
		}
	}
	for _, rider := range SampleRiders() {
		if err := dispatch.RegisterRider(ctx, rider); err != nil {
			return err
		}
	}
	return nil
}

// AssignSampleRides performs SampleAssignments through dispatch.
func AssignSampleRides(ctx context.Context, dispatch *services.DispatchService) error {
	for _, p := range SampleAssignments() {
		if _, err := dispatch.AssignRide(ctx, p.OwnerID, p.RideID); err != nil {
			return err
		}
	}
	return nil
}

// RequestSampleRides performs SampleRequests through dispatch.
func RequestSampleRides(ctx context.Context, dispatch *services.DispatchService) error {
	for _, p := range SampleRequests() {
		if _, err := dispatch.RequestRide(ctx, p.OwnerID, p.RideID); err != nil {
			return err
		}
	}
	return nil
}

// Seed registers the catalog and replays all sample assignments and
// requests. The HTTP server starts from this state.
func Seed(ctx context.Context, dispatch *services.DispatchService) error {
	if err := SeedCatalog(ctx, dispatch); err != nil {
		return err
	}
	if err := AssignSampleRides(ctx, dispatch); err != nil {
		return err
	}
	return RequestSampleRides(ctx, dispatch)
}

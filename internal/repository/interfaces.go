// Package repository declares the storage contracts the services depend on.
// Implementations live in subpackages (memory/ today).
package repository

import (
	"context"
	"ridesharing/internal/domain/entities"
)

// RideRepository is the ride store. Rides are immutable, so there is no
// Update; drivers and riders resolve rides here by id.
type RideRepository interface {
	Create(ctx context.Context, ride entities.Ride) error
	GetByID(ctx context.Context, id int) (entities.Ride, error)
	List(ctx context.Context) ([]entities.Ride, error)
}

type DriverRepository interface {
	Create(ctx context.Context, driver *entities.Driver) error
	GetByID(ctx context.Context, id int) (*entities.Driver, error)
	List(ctx context.Context) ([]*entities.Driver, error)
	AddRide(ctx context.Context, driverID int, ride entities.Ride) (entities.RideAssigned, error)
}

type RiderRepository interface {
	Create(ctx context.Context, rider *entities.Rider) error
	GetByID(ctx context.Context, id int) (*entities.Rider, error)
	List(ctx context.Context) ([]*entities.Rider, error)
	RequestRide(ctx context.Context, riderID int, ride entities.Ride) (entities.RideRequested, error)
}

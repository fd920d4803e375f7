// Package services holds the application logic that sits between the
// entities and the outside world: registering rides, drivers and riders,
// resolving rides by id, and publishing the resulting events.
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"ridesharing/internal/domain/entities"
	"ridesharing/internal/repository"
)

// DispatchService wires rides to drivers and riders. Drivers and riders are
// addressed by id and rides are resolved from the ride store, so no caller
// ever holds a pointer into a repository.
type DispatchService struct {
	rides         repository.RideRepository
	drivers       repository.DriverRepository
	riders        repository.RiderRepository
	notifications *NotificationService
	log           *logrus.Logger
}

func NewDispatchService(
	rides repository.RideRepository,
	drivers repository.DriverRepository,
	riders repository.RiderRepository,
	notifications *NotificationService,
	log *logrus.Logger,
) *DispatchService {
	return &DispatchService{
		rides:         rides,
		drivers:       drivers,
		riders:        riders,
		notifications: notifications,
		log:           log,
	}
}

// RegisterRide adds a ride to the store.
func (s *DispatchService) RegisterRide(ctx context.Context, ride entities.Ride) error {
	if err := s.rides.Create(ctx, ride); err != nil {
		return fmt.Errorf("register ride %d: %w", ride.ID(), err)
	}
	s.log.WithFields(logrus.Fields{
		"ride_id":   ride.ID(),
		"ride_type": ride.RideType(),
	}).Debug("ride registered")
	return nil
}

func (s *DispatchService) RegisterDriver(ctx context.Context, driver *entities.Driver) error {
	if err := s.drivers.Create(ctx, driver); err != nil {
		return fmt.Errorf("register driver %d: %w", driver.ID(), err)
	}
	return nil
}

func (s *DispatchService) RegisterRider(ctx context.Context, rider *entities.Rider) error {
	if err := s.riders.Create(ctx, rider); err != nil {
		return fmt.Errorf("register rider %d: %w", rider.ID(), err)
	}
	return nil
}

// AssignRide appends the stored ride to the driver's assigned list and
// publishes the assignment notification.
func (s *DispatchService) AssignRide(ctx context.Context, driverID, rideID int) (entities.RideAssigned, error) {
	ride, err := s.rides.GetByID(ctx, rideID)
	if err != nil {
		return entities.RideAssigned{}, fmt.Errorf("assign ride %d: %w", rideID, err)
	}

	event, err := s.drivers.AddRide(ctx, driverID, ride)
	if err != nil {
		return entities.RideAssigned{}, fmt.Errorf("assign ride %d to driver %d: %w", rideID, driverID, err)
	}

	s.notifications.Publish(event)
	return event, nil
}

// RequestRide appends the stored ride to the rider's history and publishes
// the request notification.
func (s *DispatchService) RequestRide(ctx context.Context, riderID, rideID int) (entities.RideRequested, error) {
	ride, err := s.rides.GetByID(ctx, rideID)
	if err != nil {
		return entities.RideRequested{}, fmt.Errorf("request ride %d: %w", rideID, err)
	}

	event, err := s.riders.RequestRide(ctx, riderID, ride)
	if err != nil {
		return entities.RideRequested{}, fmt.Errorf("request ride %d for rider %d: %w", rideID, riderID, err)
	}

	s.notifications.Publish(event)
	return event, nil
}

func (s *DispatchService) GetRide(ctx context.Context, rideID int) (entities.Ride, error) {
	return s.rides.GetByID(ctx, rideID)
}

func (s *DispatchService) ListRides(ctx context.Context) ([]entities.Ride, error) {
	return s.rides.List(ctx)
}

// GetDriver returns a snapshot of the driver.
func (s *DispatchService) GetDriver(ctx context.Context, driverID int) (*entities.Driver, error) {
	return s.drivers.GetByID(ctx, driverID)
}

func (s *DispatchService) ListDrivers(ctx context.Context) ([]*entities.Driver, error) {
	return s.drivers.List(ctx)
}

// GetRider returns a snapshot of the rider.
func (s *DispatchService) GetRider(ctx context.Context, riderID int) (*entities.Rider, error) {
	return s.riders.GetByID(ctx, riderID)
}

func (s *DispatchService) ListRiders(ctx context.Context) ([]*entities.Rider, error) {
	return s.riders.List(ctx)
}

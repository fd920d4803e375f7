package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ridesharing/internal/domain/entities"
	"ridesharing/internal/logger"
	"ridesharing/internal/repository"
	"ridesharing/internal/repository/memory"
)

func setupDispatchService() (*DispatchService, *bytes.Buffer) {
	var sink bytes.Buffer
	log := logger.Discard()
	notifications := NewNotificationService(&sink, log)

	service := NewDispatchService(
		memory.NewRideRepository(),
		memory.NewDriverRepository(),
		memory.NewRiderRepository(),
		notifications,
		log,
	)
	return service, &sink
}

func TestDispatchService_AssignRide(t *testing.T) {
	service, sink := setupDispatchService()
	ctx := context.Background()

	require.NoError(t, service.RegisterRide(ctx, entities.NewRide(101, "Downtown", "Airport", 15)))
	require.NoError(t, service.RegisterRide(ctx, entities.NewStandardRide(102, "Mall", "University", 8)))
	require.NoError(t, service.RegisterDriver(ctx, entities.NewDriver(501, "Alice Johnson", 4.8)))

	event, err := service.AssignRide(ctx, 501, 101)
	require.NoError(t, err)
	assert.Equal(t, 101, event.RideID)

	_, err = service.AssignRide(ctx, 501, 102)
	require.NoError(t, err)

	assert.Equal(t, "Ride 101 assigned to driver Alice Johnson\nRide 102 assigned to driver Alice Johnson\n", sink.String())

	driver, err := service.GetDriver(ctx, 501)
	require.NoError(t, err)
	assert.Equal(t, 2, driver.NumberOfRides())
	assert.InDelta(t, 55.00, driver.TotalEarnings(), 1e-9)
}

func TestDispatchService_RequestRide(t *testing.T) {
	service, sink := setupDispatchService()
	ctx := context.Background()

	require.NoError(t, service.RegisterRide(ctx, entities.NewPremiumRide(105, "Airport", "Resort", 20)))
	require.NoError(t, service.RegisterRider(ctx, entities.NewRider(303, "Sarah Davis")))

	event, err := service.RequestRide(ctx, 303, 105)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Davis", event.RiderName)
	assert.Equal(t, "Ride 105 requested by Sarah Davis\n", sink.String())

	rider, err := service.GetRider(ctx, 303)
	require.NoError(t, err)
	assert.InDelta(t, 90.00, rider.TotalSpending(), 1e-9)
}

func TestDispatchService_UnknownIDs(t *testing.T) {
	service, sink := setupDispatchService()
	ctx := context.Background()

	require.NoError(t, service.RegisterRide(ctx, entities.NewRide(1, "A", "B", 1)))
	require.NoError(t, service.RegisterDriver(ctx, entities.NewDriver(1, "D", 5)))
	require.NoError(t, service.RegisterRider(ctx, entities.NewRider(1, "R")))

	_, err := service.AssignRide(ctx, 1, 999)
	assert.ErrorIs(t, err, repository.ErrRideNotFound)

	_, err = service.AssignRide(ctx, 999, 1)
	assert.ErrorIs(t, err, repository.ErrDriverNotFound)

	_, err = service.RequestRide(ctx, 1, 999)
	assert.ErrorIs(t, err, repository.ErrRideNotFound)

	_, err = service.RequestRide(ctx, 999, 1)
	assert.ErrorIs(t, err, repository.ErrRiderNotFound)

	assert.Empty(t, sink.String(), "failed dispatches must not notify")
}

func TestDispatchService_DuplicateRegistration(t *testing.T) {
	service, _ := setupDispatchService()
	ctx := context.Background()

	require.NoError(t, service.RegisterRide(ctx, entities.NewRide(1, "A", "B", 1)))
	err := service.RegisterRide(ctx, entities.NewRide(1, "A", "B", 1))
	assert.ErrorIs(t, err, repository.ErrDuplicateRide)
	assert.Contains(t, err.Error(), "register ride 1")

	require.NoError(t, service.RegisterDriver(ctx, entities.NewDriver(1, "D", 5)))
	assert.ErrorIs(t, service.RegisterDriver(ctx, entities.NewDriver(1, "D", 5)), repository.ErrDuplicateDriver)

	require.NoError(t, service.RegisterRider(ctx, entities.NewRider(1, "R")))
	assert.ErrorIs(t, service.RegisterRider(ctx, entities.NewRider(1, "R")), repository.ErrDuplicateRider)
}

// One stored ride can be assigned to a driver and requested by a rider; both
// see the same fare.
func TestDispatchService_SharedRide(t *testing.T) {
	service, _ := setupDispatchService()
	ctx := context.Background()

	require.NoError(t, service.RegisterRide(ctx, entities.NewPremiumRide(104, "Luxury Hotel", "Business District", 10)))
	require.NoError(t, service.RegisterDriver(ctx, entities.NewDriver(502, "Bob Smith", 4.5)))
	require.NoError(t, service.RegisterRider(ctx, entities.NewRider(302, "David Lee")))

	_, err := service.AssignRide(ctx, 502, 104)
	require.NoError(t, err)
	_, err = service.RequestRide(ctx, 302, 104)
	require.NoError(t, err)

	driver, _ := service.GetDriver(ctx, 502)
	rider, _ := service.GetRider(ctx, 302)
	assert.InDelta(t, 48.00, driver.TotalEarnings(), 1e-9)
	assert.InDelta(t, driver.TotalEarnings(), rider.TotalSpending(), 1e-9)
}

func TestDispatchService_Lists(t *testing.T) {
	service, _ := setupDispatchService()
	ctx := context.Background()

	require.NoError(t, service.RegisterRide(ctx, entities.NewRide(2, "A", "B", 1)))
	require.NoError(t, service.RegisterRide(ctx, entities.NewRide(1, "A", "B", 1)))
	require.NoError(t, service.RegisterDriver(ctx, entities.NewDriver(9, "D", 5)))
	require.NoError(t, service.RegisterRider(ctx, entities.NewRider(8, "R")))

	rides, err := service.ListRides(ctx)
	require.NoError(t, err)
	require.Len(t, rides, 2)
	assert.Equal(t, 1, rides[0].ID())

	drivers, err := service.ListDrivers(ctx)
	require.NoError(t, err)
	assert.Len(t, drivers, 1)

	riders, err := service.ListRiders(ctx)
	require.NoError(t, err)
	assert.Len(t, riders, 1)

	ride, err := service.GetRide(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, ride.ID())
}

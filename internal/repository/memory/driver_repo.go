package memory

import (
	"context"
	"sort"
	"sync"

	"ridesharing/internal/domain/entities"
	"ridesharing/internal/repository"
)

var (
	ErrDriverNotFound  = repository.ErrDriverNotFound
	ErrDuplicateDriver = repository.ErrDuplicateDriver
)

// DriverRepository keeps drivers in memory. Reads return clones; the only
// write path after Create is AddRide, which mutates the stored driver under
// the write lock.
type DriverRepository struct {
	mu      sync.RWMutex
	drivers map[int]*entities.Driver
}

func NewDriverRepository() *DriverRepository {
	return &DriverRepository{
		drivers: make(map[int]*entities.Driver),
	}
}

func (r *DriverRepository) Create(ctx context.Context, driver *entities.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drivers[driver.ID()]; exists {
		return ErrDuplicateDriver
	}
	r.drivers[driver.ID()] = driver.Clone()
	return nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id int) (*entities.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	driver, exists := r.drivers[id]
	if !exists {
		return nil, ErrDriverNotFound
	}
	return driver.Clone(), nil
}

func (r *DriverRepository) List(ctx context.Context) ([]*entities.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	drivers := make([]*entities.Driver, 0, len(r.drivers))
	for _, driver := range r.drivers {
		drivers = append(drivers, driver.Clone())
	}
	sort.Slice(drivers, func(i, j int) bool { return drivers[i].ID() < drivers[j].ID() })
	return drivers, nil
}

// AddRide appends ride to the stored driver and returns the assignment event.
func (r *DriverRepository) AddRide(ctx context.Context, driverID int, ride entities.Ride) (entities.RideAssigned, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	driver, exists := r.drivers[driverID]
	if !exists {
		return entities.RideAssigned{}, ErrDriverNotFound
	}
	return driver.AddRide(ride), nil
}

var _ repository.DriverRepository = (*DriverRepository)(nil)

package memory

import (
	"context"
	"sort"
	"sync"

	"ridesharing/internal/domain/entities"
	"ridesharing/internal/repository"
)

var (
	ErrRideNotFound  = repository.ErrRideNotFound
	ErrDuplicateRide = repository.ErrDuplicateRide
)

// RideRepository is the ride store: an arena of immutable rides keyed by id.
// Drivers and riders never own rides; callers look a ride up here and hand a
// copy to whoever needs it.
//
// Go Learning Note — Storing Values in Maps:
// The map holds entities.Ride values, not pointers. Returning a value from
// GetByID gives the caller its own copy, which is safe because a Ride has no
// mutating methods. A map of pointers would be needed only if entries had to
// be updated in place.
type RideRepository struct {
	mu    sync.RWMutex
	rides map[int]entities.Ride
}

func NewRideRepository() *RideRepository {
	return &RideRepository{
		rides: make(map[int]entities.Ride),
	}
}

// Create stores a ride. Ride ids are assigned by the caller, so a second
// ride with the same id is rejected rather than silently replacing the first.
func (r *RideRepository) Create(ctx context.Context, ride entities.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rides[ride.ID()]; exists {
		return ErrDuplicateRide
	}
	r.rides[ride.ID()] = ride
	return nil
}

func (r *RideRepository) GetByID(ctx context.Context, id int) (entities.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ride, exists := r.rides[id]
	if !exists {
		return entities.Ride{}, ErrRideNotFound
	}
	return ride, nil
}

// List returns every stored ride ordered by id.
//
// Go Learning Note — Map Iteration Order:
// Go randomizes map iteration order on purpose, so code cannot come to
// depend on it. Anything user-visible built from a map should be sorted.
func (r *RideRepository) List(ctx context.Context) ([]entities.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rides := make([]entities.Ride, 0, len(r.rides))
	for _, ride := range r.rides {
		rides = append(rides, ride)
	}
	sort.Slice(rides, func(i, j int) bool { return rides[i].ID() < rides[j].ID() })
	return rides, nil
}

var _ repository.RideRepository = (*RideRepository)(nil)

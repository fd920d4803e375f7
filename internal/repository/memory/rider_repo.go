package memory

import (
	"context"
	"sort"
	"sync"

	"ridesharing/internal/domain/entities"
	"ridesharing/internal/repository"
)

var (
	ErrRiderNotFound  = repository.ErrRiderNotFound
	ErrDuplicateRider = repository.ErrDuplicateRider
)

type RiderRepository struct {
	mu     sync.RWMutex
	riders map[int]*entities.Rider
}

func NewRiderRepository() *RiderRepository {
	return &RiderRepository{
		riders: make(map[int]*entities.Rider),
	}
}

func (r *RiderRepository) Create(ctx context.Context, rider *entities.Rider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.riders[rider.ID()]; exists {
		return ErrDuplicateRider
	}
	r.riders[rider.ID()] = rider.Clone()
	return nil
}

func (r *RiderRepository) GetByID(ctx context.Context, id int) (*entities.Rider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rider, exists := r.riders[id]
	if !exists {
		return nil, ErrRiderNotFound
	}
	return rider.Clone(), nil
}

func (r *RiderRepository) List(ctx context.Context) ([]*entities.Rider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	riders := make([]*entities.Rider, 0, len(r.riders))
	for _, rider := range r.riders {
		riders = append(riders, rider.Clone())
	}
	sort.Slice(riders, func(i, j int) bool { return riders[i].ID() < riders[j].ID() })
	return riders, nil
}

func (r *RiderRepository) RequestRide(ctx context.Context, riderID int, ride entities.Ride) (entities.RideRequested, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rider, exists := r.riders[riderID]
	if !exists {
		return entities.RideRequested{}, ErrRiderNotFound
	}
	return rider.RequestRide(ride), nil
}

var _ repository.RiderRepository = (*RiderRepository)(nil)

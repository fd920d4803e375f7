package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"ridesharing/internal/domain/entities"
	"ridesharing/internal/repository"
	"ridesharing/pkg/utils"
)

// parseID reads an integer path parameter, writing a 400 on failure.
func parseID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// writeError maps repository sentinels to HTTP statuses.
//
// Go Learning Note — errors.Is:
// Services wrap repository errors with fmt.Errorf("...: %w", err), so a plain
// `err == repository.ErrRideNotFound` comparison would fail. errors.Is walks
// the wrap chain and matches the sentinel anywhere inside it.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrRideNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "ride not found"})
	case errors.Is(err, repository.ErrDriverNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
	case errors.Is(err, repository.ErrRiderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "rider not found"})
	case errors.Is(err, repository.ErrDuplicateRide):
		c.JSON(http.StatusConflict, gin.H{"error": "ride id already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// RideResponse is the JSON view of a ride. Money is rounded to cents here,
// at the presentation boundary.
type RideResponse struct {
	ID          int               `json:"id"`
	Type        entities.RideType `json:"type"`
	Pickup      string            `json:"pickup"`
	Dropoff     string            `json:"dropoff"`
	Distance    float64           `json:"distance"`
	Fare        float64           `json:"fare"`
	Description string            `json:"description"`
}

func newRideResponse(ride entities.Ride) RideResponse {
	return RideResponse{
		ID:          ride.ID(),
		Type:        ride.RideType(),
		Pickup:      ride.Pickup(),
		Dropoff:     ride.Dropoff(),
		Distance:    ride.Distance(),
		Fare:        utils.RoundCents(ride.Fare()),
		Description: ride.Description(),
	}
}

func newRideResponses(rides []entities.Ride) []RideResponse {
	out := make([]RideResponse, 0, len(rides))
	for _, ride := range rides {
		out = append(out, newRideResponse(ride))
	}
	return out
}

// AttachRideRequest is the body for assigning or requesting a stored ride.
// RideID is a pointer so that ride 0 is accepted.
type AttachRideRequest struct {
	RideID *int `json:"ride_id" binding:"required"`
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ridesharing/internal/domain/entities"
	"ridesharing/internal/services"
)

type RideHandler struct {
	dispatch *services.DispatchService
}

func NewRideHandler(dispatch *services.DispatchService) *RideHandler {
	return &RideHandler{dispatch: dispatch}
}

// CreateRideRequest is the JSON body for adding a ride to the store. Type
// defaults to BASE. Distance is not validated, matching the entity.
//
// Go Learning Note — Pointer Fields and "required":
// The validator treats the zero value of a plain int as missing, so id 0
// would be rejected. A *int is nil only when the key is absent.
type CreateRideRequest struct {
	ID       *int    `json:"id" binding:"required"`
	Type     string  `json:"type"`
	Pickup   string  `json:"pickup"`
	Dropoff  string  `json:"dropoff"`
	Distance float64 `json:"distance"`
}

// CreateRide handles POST /rides
func (h *RideHandler) CreateRide(c *gin.Context) {
	var req CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rideType := entities.RideTypeBase
	if req.Type != "" {
		parsed, ok := entities.ParseRideType(req.Type)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be BASE, STANDARD or PREMIUM"})
			return
		}
		rideType = parsed
	}

	ride := entities.NewRideOfType(rideType, *req.ID, req.Pickup, req.Dropoff, req.Distance)
	if err := h.dispatch.RegisterRide(c.Request.Context(), ride); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newRideResponse(ride))
}

// ListRides handles GET /rides
func (h *RideHandler) ListRides(c *gin.Context) {
	rides, err := h.dispatch.ListRides(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRideResponses(rides))
}

// GetRide handles GET /rides/:id
func (h *RideHandler) GetRide(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ride, err := h.dispatch.GetRide(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRideResponse(ride))
}

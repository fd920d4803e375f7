package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ridesharing/internal/domain/entities"
	"ridesharing/internal/services"
	"ridesharing/pkg/utils"
)

type RiderHandler struct {
	dispatch *services.DispatchService
}

func NewRiderHandler(dispatch *services.DispatchService) *RiderHandler {
	return &RiderHandler{dispatch: dispatch}
}

type RiderResponse struct {
	ID                     int              `json:"id"`
	Name                   string           `json:"name"`
	NumberOfRequestedRides int              `json:"number_of_requested_rides"`
	TotalSpending          float64          `json:"total_spending"`
	Info                   string           `json:"info"`
	Rides                  []RideResponse   `json:"rides"`
	Listing                entities.Listing `json:"listing"`
}

func newRiderResponse(r *entities.Rider) RiderResponse {
	return RiderResponse{
		ID:                     r.ID(),
		Name:                   r.Name(),
		NumberOfRequestedRides: r.NumberOfRequestedRides(),
		TotalSpending:          utils.RoundCents(r.TotalSpending()),
		Info:                   r.Info(),
		Rides:                  newRideResponses(r.RequestedRides()),
		Listing:                r.ListRides(),
	}
}

// ListRiders handles GET /riders
func (h *RiderHandler) ListRiders(c *gin.Context) {
	riders, err := h.dispatch.ListRiders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]RiderResponse, 0, len(riders))
	for _, r := range riders {
		out = append(out, newRiderResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

// GetRider handles GET /riders/:id
func (h *RiderHandler) GetRider(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	rider, err := h.dispatch.GetRider(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRiderResponse(rider))
}

// RequestRide handles POST /riders/:id/rides
func (h *RiderHandler) RequestRide(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req AttachRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	event, err := h.dispatch.RequestRide(ctx, id, *req.RideID)
	if err != nil {
		writeError(c, err)
		return
	}

	rider, err := h.dispatch.GetRider(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": event.Message(),
		"event":   event,
		"rider":   newRiderResponse(rider),
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ridesharing/internal/domain/entities"
	"ridesharing/internal/services"
	"ridesharing/pkg/utils"
)

// DriverHandler groups the driver endpoints: reading a driver's summary and
// assigning stored rides to it.
type DriverHandler struct {
	dispatch *services.DispatchService
}

func NewDriverHandler(dispatch *services.DispatchService) *DriverHandler {
	return &DriverHandler{dispatch: dispatch}
}

type DriverResponse struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Rating        float64          `json:"rating"`
	NumberOfRides int              `json:"number_of_rides"`
	TotalEarnings float64          `json:"total_earnings"`
	Info          string           `json:"info"`
	Rides         []RideResponse   `json:"rides"`
	Listing       entities.Listing `json:"listing"`
}

func newDriverResponse(d *entities.Driver) DriverResponse {
	return DriverResponse{
		ID:            d.ID(),
		Name:          d.Name(),
		Rating:        d.Rating(),
		NumberOfRides: d.NumberOfRides(),
		TotalEarnings: utils.RoundCents(d.TotalEarnings()),
		Info:          d.Info(),
		Rides:         newRideResponses(d.AssignedRides()),
		Listing:       d.ListAssignedRides(),
	}
}

// ListDrivers handles GET /drivers
func (h *DriverHandler) ListDrivers(c *gin.Context) {
	drivers, err := h.dispatch.ListDrivers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, newDriverResponse(d))
	}
	c.JSON(http.StatusOK, out)
}

// GetDriver handles GET /drivers/:id
func (h *DriverHandler) GetDriver(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	driver, err := h.dispatch.GetDriver(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDriverResponse(driver))
}

// AssignRide handles POST /drivers/:id/rides. The response carries the
// assignment event and the driver as it stands afterwards.
func (h *DriverHandler) AssignRide(c *gin.Context) {
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
	event, err := h.dispatch.AssignRide(ctx, id, *req.RideID)
	if err != nil {
		writeError(c, err)
		return
	}

	driver, err := h.dispatch.GetDriver(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": event.Message(),
		"event":   event,
		"driver":  newDriverResponse(driver),
	})
}

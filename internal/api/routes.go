package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"ridesharing/internal/api/handlers"
	"ridesharing/internal/api/middleware"
)

type Router struct {
	rideHandler         *handlers.RideHandler
	driverHandler       *handlers.DriverHandler
	riderHandler        *handlers.RiderHandler
	notificationHandler *handlers.NotificationHandler
	log                 *logrus.Logger
}

func NewRouter(
	rideHandler *handlers.RideHandler,
	driverHandler *handlers.DriverHandler,
	riderHandler *handlers.RiderHandler,
	notificationHandler *handlers.NotificationHandler,
	log *logrus.Logger,
) *Router {
	return &Router{
		rideHandler:         rideHandler,
		driverHandler:       driverHandler,
		riderHandler:        riderHandler,
		notificationHandler: notificationHandler,
		log:                 log,
	}
}

func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(
		middleware.RequestID(),
		middleware.RequestLogger(r.log),
		middleware.Recovery(r.log),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	rides := engine.Group("/rides")
	{
		rides.GET("", r.rideHandler.ListRides)
		rides.POST("", r.rideHandler.CreateRide)
		rides.GET("/:id", r.rideHandler.GetRide)
	}

	drivers := engine.Group("/drivers")
	{
		drivers.GET("", r.driverHandler.ListDrivers)
		drivers.GET("/:id", r.driverHandler.GetDriver)
		drivers.POST("/:id/rides", r.driverHandler.AssignRide)
	}

	riders := engine.Group("/riders")
	{
		riders.GET("", r.riderHandler.ListRiders)
		riders.GET("/:id", r.riderHandler.GetRider)
		riders.POST("/:id/rides", r.riderHandler.RequestRide)
	}

	engine.GET("/notifications", r.notificationHandler.ListNotifications)
}

package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-premium-backend/controllers"
	"hotel-premium-backend/middleware"
)

// SetupRouter wires every controller into the API surface.
func SetupRouter(
	rc *controllers.RoomController,
	cc *controllers.ClientController,
	gc *controllers.GuestController,
	resc *controllers.ReservationController,
	ec *controllers.ExtrasController,
	ic *controllers.InvoiceController,
	ac *controllers.AuditController,
	origins []string,
	log *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/number/:number", rc.GetRoomByNumber)
			rooms.GET("/:id", rc.GetRoomByID)
			rooms.GET("/:id/minibar", rc.GetMinibar)
			rooms.POST("/:id/minibar/consumptions", rc.RegisterConsumption)
			rooms.GET("/:id/minibar/consumptions", rc.GetConsumptions)
			rooms.GET("/:id/minibar/total", rc.GetMinibarTotal)
		}

		clients := api.Group("/clients")
		{
			clients.POST("", cc.CreateClient)
			clients.GET("", cc.GetClients)
			clients.GET("/:id", cc.GetClientByID)
			clients.PUT("/:id", cc.UpdateClient)
			clients.DELETE("/:id", cc.DeleteClient)
		}

		guests := api.Group("/guests")
		{
			guests.POST("", gc.CreateGuest)
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuestByID)
			guests.PUT("/:id", gc.UpdateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
		}

		reservations := api.Group("/reservations")
		{
			reservations.POST("", resc.CreateReservation)
			reservations.GET("", resc.GetReservations)
			reservations.GET("/:id", resc.GetReservationByID)
			reservations.POST("/:id/confirm", resc.ConfirmReservation)
			reservations.POST("/:id/cancel", resc.CancelReservation)
			reservations.POST("/:id/checkin", resc.CheckIn)
			reservations.POST("/:id/checkout", resc.CheckOut)

			reservations.POST("/:id/services/laundry", ec.AddLaundry)
			reservations.POST("/:id/services/restaurant", ec.AddRestaurant)
			reservations.POST("/:id/services/robes", ec.AddRobeSale)
			reservations.DELETE("/:id/services/:index", ec.RemoveService)
			reservations.GET("/:id/services", ec.GetServices)
			reservations.GET("/:id/services/total", ec.GetServicesTotal)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", ic.GetInvoices)
			invoices.GET("/reservation/:reservationId", ic.GetInvoiceByReservation)
			invoices.GET("/:id", ic.GetInvoiceByID)
			invoices.GET("/:id/view", ic.GetInvoiceView)
		}

		api.GET("/audit", ac.GetEvents)
	}

	return r
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tarak510605/restaurant-ordering-system/handlers"
	"github.com/tarak510605/restaurant-ordering-system/middleware"
)

// Handlers groups everything SetupRoutes wires onto the engine.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Restaurants *handlers.RestaurantHandler
	Orders      *handlers.OrderHandler
	Payments    *handlers.PaymentMethodHandler
}

func SetupRoutes(r *gin.Engine, auth *middleware.Authenticator, h Handlers) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/signup", h.Auth.Register)
		public.POST("/auth/login", h.Auth.Login)
		public.GET("/countries", h.Restaurants.ListCountries)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	api := r.Group("/api")
	api.Use(auth.AuthRequired())
	{
		api.GET("/profile", h.Auth.GetProfile)

		// Restaurants (permission + country scope enforced in the service)
		api.GET("/restaurants", h.Restaurants.ListRestaurants)
		api.GET("/restaurants/:id", h.Restaurants.GetRestaurant)

		// Orders
		api.POST("/orders", h.Orders.PlaceOrder)
		api.GET("/orders", h.Orders.ListOrders)
		api.GET("/orders/:id", h.Orders.GetOrder)
		api.POST("/orders/:id/checkout", h.Orders.Checkout)
		api.POST("/orders/:id/cancel", h.Orders.CancelOrder)

		// Payment methods
		api.GET("/payment-methods", h.Payments.ListPaymentMethods)
		api.POST("/payment-methods", h.Payments.AddPaymentMethod)
		api.PATCH("/payment-methods/:id", h.Payments.UpdatePaymentMethod)
		api.DELETE("/payment-methods/:id", h.Payments.DeletePaymentMethod)
	}
}

package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tarak510605/restaurant-ordering-system/config"
	"github.com/tarak510605/restaurant-ordering-system/handlers"
	"github.com/tarak510605/restaurant-ordering-system/middleware"
	"github.com/tarak510605/restaurant-ordering-system/repository"
	"github.com/tarak510605/restaurant-ordering-system/routes"
	"github.com/tarak510605/restaurant-ordering-system/services"
)

func main() {
	cfg := config.Load()

	if cfg.GinMode == "" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	if cfg.Seed {
		if err := config.Seed(db); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
	}

	// Repositories → services → handlers; the db handle lives here and
	// nowhere else.
	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentMethodRepository(db)

	restaurantSvc := services.NewRestaurantService(restaurantRepo)
	orderSvc := services.NewOrderService(orderRepo, restaurantRepo, paymentRepo)
	paymentSvc := services.NewPaymentMethodService(paymentRepo)

	auth := middleware.NewAuthenticator(cfg.JWTSecret, userRepo)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Ordering System API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍔 Welcome to the Restaurant Ordering System API",
			"health":  "/health",
			"roles":   []string{"Admin", "Manager", "Member"},
		})
	})

	routes.SetupRoutes(r, auth, routes.Handlers{
		Auth:        handlers.NewAuthHandler(userRepo, auth),
		Restaurants: handlers.NewRestaurantHandler(restaurantSvc),
		Orders:      handlers.NewOrderHandler(orderSvc),
		Payments:    handlers.NewPaymentMethodHandler(paymentSvc),
	})

	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

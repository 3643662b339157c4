package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tarak510605/restaurant-ordering-system/middleware"
	"github.com/tarak510605/restaurant-ordering-system/repository"
	"github.com/tarak510605/restaurant-ordering-system/services"
)

type RestaurantHandler struct {
	Restaurants *services.RestaurantService
}

func NewRestaurantHandler(restaurants *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{Restaurants: restaurants}
}

// ListRestaurants returns restaurants visible to the caller's country
// scope, with optional cuisine/search filters.
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	restaurants, err := h.Restaurants.ListRestaurants(identity, repository.RestaurantListFilter{
		Cuisine: c.Query("cuisine"),
		Search:  c.Query("search"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// GetRestaurant returns one restaurant with its menu
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id"})
		return
	}

	restaurant, svcErr := h.Restaurants.GetRestaurant(identity, id)
	if svcErr != nil {
		fail(c, svcErr)
		return
	}
	ok(c, http.StatusOK, gin.H{"restaurant": restaurant})
}

// ListCountries returns active countries (used by signup forms)
func (h *RestaurantHandler) ListCountries(c *gin.Context) {
	countries, err := h.Restaurants.ListCountries()
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"count": len(countries), "countries": countries})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

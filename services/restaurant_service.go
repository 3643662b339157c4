package services

import (
	"github.com/tarak510605/restaurant-ordering-system/access"
	"github.com/tarak510605/restaurant-ordering-system/errs"
	"github.com/tarak510605/restaurant-ordering-system/models"
	"github.com/tarak510605/restaurant-ordering-system/repository"
)

type RestaurantService struct {
	Restaurants *repository.RestaurantRepository
}

func NewRestaurantService(restaurants *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Restaurants: restaurants}
}

// ListRestaurants returns active restaurants the identity may see,
// country-scoped via ScopeFilter.
func (s *RestaurantService) ListRestaurants(identity models.Identity, filter repository.RestaurantListFilter) ([]models.Restaurant, error) {
	if err := access.RequirePermission(identity, access.ActionViewRestaurants); err != nil {
		return nil, err
	}
	restaurants, err := s.Restaurants.List(access.ScopeFilter(identity), filter)
	if err != nil {
		return nil, errs.Internal("failed to list restaurants", err)
	}
	return restaurants, nil
}

// GetRestaurant returns one restaurant with its menu, subject to
// country access.
func (s *RestaurantService) GetRestaurant(identity models.Identity, id uint) (*models.Restaurant, error) {
	if err := access.RequirePermission(identity, access.ActionViewRestaurants); err != nil {
		return nil, err
	}
	restaurant, err := s.Restaurants.FindByID(id)
	if err != nil {
		return nil, errs.Internal("failed to load restaurant", err)
	}
	if restaurant == nil {
		return nil, errs.NotFound("restaurant")
	}
	if err := access.RequireCountryAccess(identity, restaurant.CountryID); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// ListCountries returns the active countries, for signup forms.
func (s *RestaurantService) ListCountries() ([]models.Country, error) {
	countries, err := s.Restaurants.ListCountries()
	if err != nil {
		return nil, errs.Internal("failed to list countries", err)
	}
	return countries, nil
}

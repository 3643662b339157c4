package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tarak510605/restaurant-ordering-system/access"
	"github.com/tarak510605/restaurant-ordering-system/models"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// RestaurantListFilter carries the optional query-string filters on top
// of the mandatory country scope.
type RestaurantListFilter struct {
	Cuisine string
	Search  string
}

// List returns active restaurants inside the given country scope,
// best-rated first.
func (r *RestaurantRepository) List(scope access.Filter, f RestaurantListFilter) ([]models.Restaurant, error) {
	query := r.DB.Preload("Country").Where("is_active = ?", true)
	if !scope.Unrestricted {
		query = query.Where("country_id = ?", scope.CountryID)
	}
	if f.Cuisine != "" {
		query = query.Where("cuisine LIKE ?", "%"+f.Cuisine+"%")
	}
	if f.Search != "" {
		query = query.Where("name LIKE ?", "%"+f.Search+"%")
	}
	var restaurants []models.Restaurant
	if err := query.Order("rating desc").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// FindByID loads one restaurant with its menu. Returns (nil, nil) when
// the row does not exist so callers can map absence to NotFound.
func (r *RestaurantRepository) FindByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.DB.Preload("Country").Preload("MenuItems").First(&restaurant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// FindMenuItem loads one menu item by id.
func (r *RestaurantRepository) FindMenuItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.DB.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListCountries returns the active countries.
func (r *RestaurantRepository) ListCountries() ([]models.Country, error) {
	var countries []models.Country
	if err := r.DB.Where("is_active = ?", true).Order("name").Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tarak510605/restaurant-ordering-system/models"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// FindByID loads a user with role and country, as the auth middleware
// needs to build an identity. Returns (nil, nil) when absent.
func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.DB.Preload("Role").Preload("Country").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail loads a user for login. Returns (nil, nil) when absent.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.DB.Preload("Role").Preload("Country").
		Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user.
func (r *UserRepository) Create(user *models.User) error {
	return r.DB.Create(user).Error
}

// FindRoleByName resolves a role row, with its permission flags, by
// name. Returns (nil, nil) when absent.
func (r *UserRepository) FindRoleByName(name models.RoleName) (*models.Role, error) {
	var role models.Role
	err := r.DB.Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// FindCountry resolves a country by id. Returns (nil, nil) when absent.
func (r *UserRepository) FindCountry(id uint) (*models.Country, error) {
	var country models.Country
	err := r.DB.First(&country, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

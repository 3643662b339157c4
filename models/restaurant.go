package models

import "time"

type Restaurant struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	CountryID   uint       `json:"country_id" gorm:"not null;index"`
	Country     Country    `json:"country,omitempty" gorm:"foreignKey:CountryID"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Cuisine     string     `json:"cuisine"`
	Rating      float64    `json:"rating" gorm:"default:0"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	MenuItems   []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type MenuItem struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	RestaurantID    uint      `json:"restaurant_id" gorm:"not null;index"`
	Name            string    `json:"name" gorm:"not null"`
	Description     string    `json:"description"`
	Price           float64   `json:"price" gorm:"not null;check:price >= 0"`
	Category        string    `json:"category"`
	IsVegetarian    bool      `json:"is_vegetarian" gorm:"default:false"`
	IsAvailable     bool      `json:"is_available" gorm:"default:true"`
	PreparationTime int       `json:"preparation_time_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

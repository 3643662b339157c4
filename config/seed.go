package config

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tarak510605/restaurant-ordering-system/models"
)

// Seed loads demo countries, roles, users, restaurants, menus and
// payment methods. It is a no-op when countries already exist, so
// restarting with SEED=true does not duplicate data.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Country{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed skipped: database already populated")
		return nil
	}

	log.Println("🌱 Seeding database...")

	india := models.Country{Name: "India", Code: "IN", IsActive: true}
	america := models.Country{Name: "America", Code: "US", IsActive: true}
	if err := db.Create(&india).Error; err != nil {
		return err
	}
	if err := db.Create(&america).Error; err != nil {
		return err
	}

	adminRole := models.Role{
		Name:        models.RoleAdmin,
		Description: "Full system access",
		IsActive:    true,
		Permissions: models.Permissions{
			ViewRestaurants:     true,
			CreateOrder:         true,
			Checkout:            true,
			CancelOrder:         true,
			UpdatePaymentMethod: true,
		},
	}
	managerRole := models.Role{
		Name:        models.RoleManager,
		Description: "Manager access with country restrictions",
		IsActive:    true,
		Permissions: models.Permissions{
			ViewRestaurants: true,
			CreateOrder:     true,
			Checkout:        true,
			CancelOrder:     true,
		},
	}
	memberRole := models.Role{
		Name:        models.RoleMember,
		Description: "Basic member access",
		IsActive:    true,
		Permissions: models.Permissions{
			ViewRestaurants: true,
			CreateOrder:     true,
		},
	}
	for _, role := range []*models.Role{&adminRole, &managerRole, &memberRole} {
		if err := db.Create(role).Error; err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	users := []models.User{
		{Name: "Nick Fury", Email: "nick.fury@shield.com", RoleID: adminRole.ID, CountryID: america.ID},
		{Name: "Captain Marvel", Email: "carol.danvers@avengers.com", RoleID: managerRole.ID, CountryID: india.ID},
		{Name: "Captain America", Email: "steve.rogers@avengers.com", RoleID: managerRole.ID, CountryID: america.ID},
		{Name: "Thanos", Email: "thanos@titan.com", RoleID: memberRole.ID, CountryID: india.ID},
		{Name: "Thor", Email: "thor@asgard.com", RoleID: memberRole.ID, CountryID: india.ID},
		{Name: "Travis", Email: "travis@example.com", RoleID: memberRole.ID, CountryID: america.ID},
	}
	for i := range users {
		users[i].PasswordHash = string(hash)
		users[i].IsActive = true
		if err := db.Create(&users[i]).Error; err != nil {
			return err
		}
	}

	restaurants := []models.Restaurant{
		{CountryID: india.ID, Name: "Spice Garden", Description: "Authentic Indian cuisine with traditional flavors",
			Address: "123 MG Road, Mumbai, Maharashtra", Phone: "+91-22-12345678", Email: "contact@spicegarden.in",
			Cuisine: "North Indian", Rating: 4.5, IsActive: true},
		{CountryID: india.ID, Name: "Taj Mahal Restaurant", Description: "Royal dining experience with Mughlai specialties",
			Address: "456 Brigade Road, Bangalore, Karnataka", Phone: "+91-80-87654321", Email: "info@tajmahal.in",
			Cuisine: "Mughlai", Rating: 4.7, IsActive: true},
		{CountryID: india.ID, Name: "Curry House", Description: "South Indian delicacies and coastal cuisine",
			Address: "789 Anna Salai, Chennai, Tamil Nadu", Phone: "+91-44-98765432", Email: "hello@curryhouse.in",
			Cuisine: "South Indian", Rating: 4.3, IsActive: true},
		{CountryID: america.ID, Name: "The American Grill", Description: "Classic American comfort food and BBQ",
			Address: "123 Broadway, New York, NY 10001", Phone: "+1-212-555-0123", Email: "info@americangrill.com",
			Cuisine: "BBQ", Rating: 4.6, IsActive: true},
		{CountryID: america.ID, Name: "Liberty Diner", Description: "All-day breakfast and American classics",
			Address: "456 Market Street, San Francisco, CA 94102", Phone: "+1-415-555-0456", Email: "contact@libertydiner.com",
			Cuisine: "Diner", Rating: 4.4, IsActive: true},
		{CountryID: america.ID, Name: "Burger Paradise", Description: "Gourmet burgers and craft beer",
			Address: "789 Michigan Avenue, Chicago, IL 60611", Phone: "+1-312-555-0789", Email: "hello@burgerparadise.com",
			Cuisine: "Burgers", Rating: 4.2, IsActive: true},
	}
	for i := range restaurants {
		if err := db.Create(&restaurants[i]).Error; err != nil {
			return err
		}
	}

	type menuSeed struct {
		Name       string
		Price      float64
		Category   string
		Vegetarian bool
	}
	menus := map[int][]menuSeed{
		0: {
			{"Butter Chicken", 350, "Main Course", false},
			{"Paneer Tikka Masala", 320, "Main Course", true},
			{"Garlic Naan", 50, "Side Dish", true},
			{"Gulab Jamun", 80, "Dessert", true},
			{"Mango Lassi", 100, "Beverage", true},
		},
		1: {
			{"Hyderabadi Biryani", 400, "Main Course", false},
			{"Mutton Rogan Josh", 450, "Main Course", false},
			{"Dal Makhani", 280, "Main Course", true},
			{"Tandoori Roti", 40, "Side Dish", true},
			{"Kulfi", 90, "Dessert", true},
		},
		2: {
			{"Masala Dosa", 180, "Main Course", true},
			{"Fish Curry", 380, "Main Course", false},
			{"Idli Sambar", 120, "Appetizer", true},
			{"Filter Coffee", 60, "Beverage", true},
		},
		3: {
			{"Ribeye Steak", 35, "Main Course", false},
			{"BBQ Ribs", 28, "Main Course", false},
			{"Caesar Salad", 12, "Appetizer", true},
			{"Apple Pie", 8, "Dessert", true},
			{"Coca Cola", 3, "Beverage", true},
		},
		4: {
			{"Pancake Stack", 14, "Main Course", true},
			{"Eggs Benedict", 16, "Main Course", false},
			{"Bacon & Eggs", 12, "Main Course", false},
			{"Hash Browns", 6, "Side Dish", true},
			{"Orange Juice", 5, "Beverage", true},
		},
		5: {
			{"Classic Cheeseburger", 15, "Main Course", false},
			{"Veggie Burger", 13, "Main Course", true},
			{"French Fries", 5, "Side Dish", true},
			{"Milkshake", 7, "Beverage", true},
		},
	}
	for idx, items := range menus {
		prepTime := 20
		if restaurants[idx].CountryID == america.ID {
			prepTime = 15
		}
		for _, m := range items {
			item := models.MenuItem{
				RestaurantID:    restaurants[idx].ID,
				Name:            m.Name,
				Description:     "Delicious " + m.Name,
				Price:           m.Price,
				Category:        m.Category,
				IsVegetarian:    m.Vegetarian,
				IsAvailable:     true,
				PreparationTime: prepTime,
			}
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		}
	}

	paymentMethods := []models.PaymentMethod{
		{UserID: users[0].ID, Type: models.PaymentTypeCreditCard, CardNumber: "****1234",
			CardHolderName: "Nick Fury", ExpiryMonth: 12, ExpiryYear: 2027, IsDefault: true, IsActive: true},
		{UserID: users[1].ID, Type: models.PaymentTypeUPI, UPIID: "carol@paytm", IsDefault: true, IsActive: true},
		{UserID: users[2].ID, Type: models.PaymentTypeDebitCard, CardNumber: "****5678",
			CardHolderName: "Steve Rogers", ExpiryMonth: 6, ExpiryYear: 2026, IsDefault: true, IsActive: true},
		{UserID: users[3].ID, Type: models.PaymentTypeCashOnDelivery, IsDefault: true, IsActive: true},
		{UserID: users[4].ID, Type: models.PaymentTypeUPI, UPIID: "thor@upi", IsDefault: true, IsActive: true},
		{UserID: users[5].ID, Type: models.PaymentTypeNetBanking, IsDefault: true, IsActive: true},
	}
	for i := range paymentMethods {
		if err := db.Create(&paymentMethods[i]).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Seed complete")
	return nil
}

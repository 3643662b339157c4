package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tarak510605/restaurant-ordering-system/models"
	"github.com/tarak510605/restaurant-ordering-system/repository"
)

// fixture is a fully seeded in-memory database with one restaurant and
// one member per country, plus the service wiring under test.
type fixture struct {
	db *gorm.DB

	orders      *OrderService
	payments    *PaymentMethodService
	restaurants *RestaurantService

	india   models.Country
	america models.Country

	adminUS   models.User // Admin, country US
	managerIN models.User // Manager, country IN
	memberIN  models.User // Member, country IN
	memberUS  models.User // Member, country US

	spiceGarden models.Restaurant // IN
	libertyDine models.Restaurant // US

	butterChicken models.MenuItem // IN, 100
	garlicNaan    models.MenuItem // IN, 50
	staleSamosa   models.MenuItem // IN, unavailable
	pancakes      models.MenuItem // US, 14

	managerCard models.PaymentMethod // managerIN's default
	adminCard   models.PaymentMethod // adminUS's default
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to :memory: would get its own empty
	// database; pin the pool to one connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Country{}, &models.Role{}, &models.User{},
		&models.Restaurant{}, &models.MenuItem{},
		&models.Order{}, &models.OrderItem{}, &models.PaymentMethod{},
	))

	f := &fixture{db: db}

	f.india = models.Country{Name: "India", Code: "IN", IsActive: true}
	f.america = models.Country{Name: "America", Code: "US", IsActive: true}
	require.NoError(t, db.Create(&f.india).Error)
	require.NoError(t, db.Create(&f.america).Error)

	adminRole := models.Role{Name: models.RoleAdmin, IsActive: true, Permissions: models.Permissions{
		ViewRestaurants: true, CreateOrder: true, Checkout: true, CancelOrder: true, UpdatePaymentMethod: true,
	}}
	managerRole := models.Role{Name: models.RoleManager, IsActive: true, Permissions: models.Permissions{
		ViewRestaurants: true, CreateOrder: true, Checkout: true, CancelOrder: true,
	}}
	memberRole := models.Role{Name: models.RoleMember, IsActive: true, Permissions: models.Permissions{
		ViewRestaurants: true, CreateOrder: true,
	}}
	require.NoError(t, db.Create(&adminRole).Error)
	require.NoError(t, db.Create(&managerRole).Error)
	require.NoError(t, db.Create(&memberRole).Error)

	f.adminUS = models.User{Name: "Nick Fury", Email: "fury@test", PasswordHash: "x",
		RoleID: adminRole.ID, Role: adminRole, CountryID: f.america.ID, IsActive: true}
	f.managerIN = models.User{Name: "Carol", Email: "carol@test", PasswordHash: "x",
		RoleID: managerRole.ID, Role: managerRole, CountryID: f.india.ID, IsActive: true}
	f.memberIN = models.User{Name: "Thor", Email: "thor@test", PasswordHash: "x",
		RoleID: memberRole.ID, Role: memberRole, CountryID: f.india.ID, IsActive: true}
	f.memberUS = models.User{Name: "Travis", Email: "travis@test", PasswordHash: "x",
		RoleID: memberRole.ID, Role: memberRole, CountryID: f.america.ID, IsActive: true}
	for _, u := range []*models.User{&f.adminUS, &f.managerIN, &f.memberIN, &f.memberUS} {
		require.NoError(t, db.Create(u).Error)
	}

	f.spiceGarden = models.Restaurant{CountryID: f.india.ID, Name: "Spice Garden", Cuisine: "North Indian", Rating: 4.5, IsActive: true}
	f.libertyDine = models.Restaurant{CountryID: f.america.ID, Name: "Liberty Diner", Cuisine: "Diner", Rating: 4.4, IsActive: true}
	require.NoError(t, db.Create(&f.spiceGarden).Error)
	require.NoError(t, db.Create(&f.libertyDine).Error)

	f.butterChicken = models.MenuItem{RestaurantID: f.spiceGarden.ID, Name: "Butter Chicken", Price: 100, Category: "Main Course", IsAvailable: true}
	f.garlicNaan = models.MenuItem{RestaurantID: f.spiceGarden.ID, Name: "Garlic Naan", Price: 50, Category: "Side Dish", IsAvailable: true}
	f.staleSamosa = models.MenuItem{RestaurantID: f.spiceGarden.ID, Name: "Samosa", Price: 30, Category: "Appetizer", IsAvailable: false}
	f.pancakes = models.MenuItem{RestaurantID: f.libertyDine.ID, Name: "Pancake Stack", Price: 14, Category: "Main Course", IsAvailable: true}
	for _, m := range []*models.MenuItem{&f.butterChicken, &f.garlicNaan, &f.staleSamosa, &f.pancakes} {
		require.NoError(t, db.Create(m).Error)
	}

	f.managerCard = models.PaymentMethod{UserID: f.managerIN.ID, Type: models.PaymentTypeUPI, UPIID: "carol@upi", IsDefault: true, IsActive: true}
	f.adminCard = models.PaymentMethod{UserID: f.adminUS.ID, Type: models.PaymentTypeCreditCard, CardNumber: "****1234", IsDefault: true, IsActive: true}
	require.NoError(t, db.Create(&f.managerCard).Error)
	require.NoError(t, db.Create(&f.adminCard).Error)

	orderRepo := repository.NewOrderRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	paymentRepo := repository.NewPaymentMethodRepository(db)
	f.orders = NewOrderService(orderRepo, restaurantRepo, paymentRepo)
	f.payments = NewPaymentMethodService(paymentRepo)
	f.restaurants = NewRestaurantService(restaurantRepo)

	return f
}

// identity builds a request identity from a seeded user.
func (f *fixture) identity(u models.User) models.Identity {
	return models.Identity{
		UserID:      u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role.Name,
		Permissions: u.Role.Permissions,
		CountryID:   u.CountryID,
	}
}

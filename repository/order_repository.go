package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tarak510605/restaurant-ordering-system/models"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create persists the order together with its line items.
func (r *OrderRepository) Create(order *models.Order) error {
	return r.DB.Create(order).Error
}

// FindByID loads one order with its items. Returns (nil, nil) when the
// row does not exist.
func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("Items").Preload("Restaurant").Preload("PaymentMethod").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderListFilter restricts a listing. UserID zero means all users.
type OrderListFilter struct {
	UserID uint
	Status models.OrderStatus
}

// List returns orders newest-first, joined with their restaurants so
// callers can apply country scoping.
func (r *OrderRepository) List(f OrderListFilter) ([]models.Order, error) {
	query := r.DB.Preload("Items").Preload("Restaurant").Preload("PaymentMethod")
	if f.UserID != 0 {
		query = query.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// TransitionGuarded applies updates to the order only if its status and
// payment status still match the values the caller read. Zero rows
// affected means another transition won the race (or the state moved on)
// and the caller must fail with InvalidState. This is the at-most-one
// guarantee for concurrent transitions on the same order.
func (r *OrderRepository) TransitionGuarded(
	orderID uint,
	fromStatus models.OrderStatus,
	fromPayment models.PaymentStatus,
	updates map[string]any,
) (int64, error) {
	res := r.DB.Model(&models.Order{}).
		Where("id = ? AND status = ? AND payment_status = ?", orderID, fromStatus, fromPayment).
		Updates(updates)
	return res.RowsAffected, res.Error
}

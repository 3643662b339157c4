package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tarak510605/restaurant-ordering-system/models"
)

type PaymentMethodRepository struct {
	DB *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{DB: db}
}

// CreateDefaultExclusive inserts the method; when it is flagged default
// the user's other defaults are cleared first, in the same transaction,
// so there is never more than one default per user.
func (r *PaymentMethodRepository) CreateDefaultExclusive(pm *models.PaymentMethod) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if pm.IsDefault {
			if err := clearDefaults(tx, pm.UserID); err != nil {
				return err
			}
		}
		return tx.Create(pm).Error
	})
}

// SaveDefaultExclusive persists changes to an existing method with the
// same default-exclusivity guarantee as CreateDefaultExclusive.
func (r *PaymentMethodRepository) SaveDefaultExclusive(pm *models.PaymentMethod) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if pm.IsDefault {
			if err := clearDefaults(tx, pm.UserID); err != nil {
				return err
			}
		}
		return tx.Save(pm).Error
	})
}

func clearDefaults(tx *gorm.DB, userID uint) error {
	return tx.Model(&models.PaymentMethod{}).
		Where("user_id = ?", userID).
		Update("is_default", false).Error
}

// FindByID loads one method. Returns (nil, nil) when absent.
func (r *PaymentMethodRepository) FindByID(id uint) (*models.PaymentMethod, error) {
	var pm models.PaymentMethod
	err := r.DB.First(&pm, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

// ListActiveByUser returns the user's active methods, default first,
// newest first after that.
func (r *PaymentMethodRepository) ListActiveByUser(userID uint) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := r.DB.Where("user_id = ? AND is_active = ?", userID, true).
		Order("is_default desc, created_at desc").
		Find(&methods).Error
	if err != nil {
		return nil, err
	}
	return methods, nil
}

// Deactivate soft-deletes the method. Other methods' default flags are
// left untouched.
func (r *PaymentMethodRepository) Deactivate(id uint) error {
	return r.DB.Model(&models.PaymentMethod{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

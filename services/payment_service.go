package services

import (
	"github.com/tarak510605/restaurant-ordering-system/access"
	"github.com/tarak510605/restaurant-ordering-system/errs"
	"github.com/tarak510605/restaurant-ordering-system/models"
	"github.com/tarak510605/restaurant-ordering-system/repository"
)

type PaymentMethodService struct {
	Payments *repository.PaymentMethodRepository
}

func NewPaymentMethodService(payments *repository.PaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{Payments: payments}
}

// PaymentMethodInput describes a new payment method. Card fields and
// UPIID are type-specific; unused ones stay empty.
type PaymentMethodInput struct {
	Type           models.PaymentMethodType `json:"type" binding:"required"`
	CardNumber     string                   `json:"card_number"`
	CardHolderName string                   `json:"card_holder_name"`
	ExpiryMonth    int                      `json:"expiry_month"`
	ExpiryYear     int                      `json:"expiry_year"`
	UPIID          string                   `json:"upi_id"`
	IsDefault      bool                     `json:"is_default"`
}

// PaymentMethodPatch updates an existing method. Nil fields are left
// unchanged.
type PaymentMethodPatch struct {
	Type           *models.PaymentMethodType `json:"type"`
	CardNumber     *string                   `json:"card_number"`
	CardHolderName *string                   `json:"card_holder_name"`
	ExpiryMonth    *int                      `json:"expiry_month"`
	ExpiryYear     *int                      `json:"expiry_year"`
	UPIID          *string                   `json:"upi_id"`
	IsDefault      *bool                     `json:"is_default"`
	IsActive       *bool                     `json:"is_active"`
}

// AddPaymentMethod registers a method for the identity itself. Any
// authenticated user may add their own methods; setting it default
// clears the previous default atomically.
func (s *PaymentMethodService) AddPaymentMethod(identity models.Identity, in PaymentMethodInput) (*models.PaymentMethod, error) {
	if !models.ValidPaymentType(in.Type) {
		return nil, errs.InvalidArgument("unsupported payment method type")
	}
	if err := validateExpiry(in.ExpiryMonth, in.ExpiryYear); err != nil {
		return nil, err
	}

	pm := &models.PaymentMethod{
		UserID:         identity.UserID,
		Type:           in.Type,
		CardNumber:     in.CardNumber,
		CardHolderName: in.CardHolderName,
		ExpiryMonth:    in.ExpiryMonth,
		ExpiryYear:     in.ExpiryYear,
		UPIID:          in.UPIID,
		IsDefault:      in.IsDefault,
		IsActive:       true,
	}
	if err := s.Payments.CreateDefaultExclusive(pm); err != nil {
		return nil, errs.Internal("failed to add payment method", err)
	}
	return pm, nil
}

// UpdatePaymentMethod patches a method. This is an administrative
// operation: it requires the updatePaymentMethod permission regardless
// of who owns the method.
func (s *PaymentMethodService) UpdatePaymentMethod(identity models.Identity, id uint, patch PaymentMethodPatch) (*models.PaymentMethod, error) {
	if err := access.RequirePermission(identity, access.ActionUpdatePaymentMethod); err != nil {
		return nil, err
	}

	pm, err := s.Payments.FindByID(id)
	if err != nil {
		return nil, errs.Internal("failed to load payment method", err)
	}
	if pm == nil {
		return nil, errs.NotFound("payment method")
	}

	if patch.Type != nil {
		if !models.ValidPaymentType(*patch.Type) {
			return nil, errs.InvalidArgument("unsupported payment method type")
		}
		pm.Type = *patch.Type
	}
	if patch.CardNumber != nil {
		pm.CardNumber = *patch.CardNumber
	}
	if patch.CardHolderName != nil {
		pm.CardHolderName = *patch.CardHolderName
	}
	if patch.ExpiryMonth != nil {
		pm.ExpiryMonth = *patch.ExpiryMonth
	}
	if patch.ExpiryYear != nil {
		pm.ExpiryYear = *patch.ExpiryYear
	}
	if err := validateExpiry(pm.ExpiryMonth, pm.ExpiryYear); err != nil {
		return nil, err
	}
	if patch.UPIID != nil {
		pm.UPIID = *patch.UPIID
	}
	if patch.IsDefault != nil {
		pm.IsDefault = *patch.IsDefault
	}
	if patch.IsActive != nil {
		pm.IsActive = *patch.IsActive
	}

	if err := s.Payments.SaveDefaultExclusive(pm); err != nil {
		return nil, errs.Internal("failed to update payment method", err)
	}
	return pm, nil
}

// DeletePaymentMethod soft-deletes a method. Owner or Admin only. No
// other method's default flag is reassigned.
func (s *PaymentMethodService) DeletePaymentMethod(identity models.Identity, id uint) error {
	pm, err := s.Payments.FindByID(id)
	if err != nil {
		return errs.Internal("failed to load payment method", err)
	}
	if pm == nil {
		return errs.NotFound("payment method")
	}
	if !identity.IsAdmin() && pm.UserID != identity.UserID {
		return errs.ForbiddenOwnership("you can only delete your own payment methods")
	}
	if err := s.Payments.Deactivate(pm.ID); err != nil {
		return errs.Internal("failed to delete payment method", err)
	}
	return nil
}

// ListPaymentMethods returns the identity's active methods, default
// first.
func (s *PaymentMethodService) ListPaymentMethods(identity models.Identity) ([]models.PaymentMethod, error) {
	methods, err := s.Payments.ListActiveByUser(identity.UserID)
	if err != nil {
		return nil, errs.Internal("failed to list payment methods", err)
	}
	return methods, nil
}

// SelectDefaultForCheckout picks the method to charge when none is
// explicitly chosen: the active default, else the first active method
// in list order, else nil.
func SelectDefaultForCheckout(methods []models.PaymentMethod) *models.PaymentMethod {
	var firstActive *models.PaymentMethod
	for i := range methods {
		m := &methods[i]
		if !m.IsActive {
			continue
		}
		if m.IsDefault {
			return m
		}
		if firstActive == nil {
			firstActive = m
		}
	}
	return firstActive
}

// validateExpiry range-checks card expiry fields. Zero values mean "not
// a card" and pass.
func validateExpiry(month, year int) error {
	if month != 0 && (month < 1 || month > 12) {
		return errs.InvalidArgument("expiry month must be between 1 and 12")
	}
	if year < 0 {
		return errs.InvalidArgument("expiry year is invalid")
	}
	return nil
}

package models

import "time"

// PaymentMethodType enumerates supported payment instruments
type PaymentMethodType string

const (
	PaymentTypeCreditCard     PaymentMethodType = "Credit Card"
	PaymentTypeDebitCard      PaymentMethodType = "Debit Card"
	PaymentTypeUPI            PaymentMethodType = "UPI"
	PaymentTypeCashOnDelivery PaymentMethodType = "Cash on Delivery"
	PaymentTypeNetBanking     PaymentMethodType = "Net Banking"
)

// ValidPaymentType reports whether t is one of the supported types.
func ValidPaymentType(t PaymentMethodType) bool {
	switch t {
	case PaymentTypeCreditCard, PaymentTypeDebitCard, PaymentTypeUPI,
		PaymentTypeCashOnDelivery, PaymentTypeNetBanking:
		return true
	}
	return false
}

// PaymentMethod stores only a masked card tail, never a full number.
// Deletion is soft: IsActive=false keeps the row for order history.
type PaymentMethod struct {
	ID             uint              `json:"id" gorm:"primaryKey"`
	UserID         uint              `json:"user_id" gorm:"not null;index"`
	Type           PaymentMethodType `json:"type" gorm:"not null"`
	CardNumber     string            `json:"card_number"` // masked tail, e.g. "****1234"
	CardHolderName string            `json:"card_holder_name"`
	ExpiryMonth    int               `json:"expiry_month"`
	ExpiryYear     int               `json:"expiry_year"`
	UPIID          string            `json:"upi_id"`
	IsDefault      bool              `json:"is_default" gorm:"default:false;index"`
	IsActive       bool              `json:"is_active" gorm:"default:true;index"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

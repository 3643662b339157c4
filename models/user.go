package models

import "time"

// RoleName defines allowed roles in the system
type RoleName string

const (
	RoleAdmin   RoleName = "Admin"
	RoleManager RoleName = "Manager"
	RoleMember  RoleName = "Member"
)

// Permissions is the flag set attached to a role row. Flags are stored
// per role instance, not derived from the role name, so a role's
// behavior is exactly what its row says.
type Permissions struct {
	ViewRestaurants     bool `json:"view_restaurants" gorm:"default:false"`
	CreateOrder         bool `json:"create_order" gorm:"default:false"`
	Checkout            bool `json:"checkout" gorm:"default:false"`
	CancelOrder         bool `json:"cancel_order" gorm:"default:false"`
	UpdatePaymentMethod bool `json:"update_payment_method" gorm:"default:false"`
}

type Role struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        RoleName    `json:"name" gorm:"uniqueIndex;not null"`
	Permissions Permissions `json:"permissions" gorm:"embedded;embeddedPrefix:perm_"`
	Description string      `json:"description"`
	IsActive    bool        `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	RoleID       uint      `json:"role_id" gorm:"not null"`
	Role         Role      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CountryID    uint      `json:"country_id" gorm:"not null"`
	Country      Country   `json:"country,omitempty" gorm:"foreignKey:CountryID"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated principal for one request: the user id
// plus everything authorization needs, resolved once by the auth
// middleware. Immutable for the duration of the request.
type Identity struct {
	UserID      uint        `json:"user_id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        RoleName    `json:"role"`
	Permissions Permissions `json:"permissions"`
	CountryID   uint        `json:"country_id"`
}

// IsAdmin reports whether the identity bypasses country scoping and
// ownership checks where an Admin override applies.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

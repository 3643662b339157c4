package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/tarak510605/restaurant-ordering-system/middleware"
	"github.com/tarak510605/restaurant-ordering-system/models"
	"github.com/tarak510605/restaurant-ordering-system/repository"
)

type AuthHandler struct {
	Users *repository.UserRepository
	Auth  *middleware.Authenticator
}

func NewAuthHandler(users *repository.UserRepository, auth *middleware.Authenticator) *AuthHandler {
	return &AuthHandler{Users: users, Auth: auth}
}

type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	CountryID uint   `json:"country_id" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new Member account in the chosen country. Admin
// and Manager accounts are provisioned by seeding, not self-signup.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.Users.FindByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check email"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	country, err := h.Users.FindCountry(req.CountryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check country"})
		return
	}
	if country == nil || !country.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown country"})
		return
	}

	role, err := h.Users.FindRoleByName(models.RoleMember)
	if err != nil || role == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Member role is not configured"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		CountryID:    country.ID,
		IsActive:     true,
	}
	if err := h.Users.Create(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	user.Role = *role
	user.Country = *country

	token, err := h.Auth.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user": gin.H{
			"id":      user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"role":    user.Role.Name,
			"country": user.Country.Code,
		},
	})
}

// Login authenticates a user and returns a JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.FindByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if user == nil || !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.Auth.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":      user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"role":    user.Role.Name,
			"country": user.Country.Code,
		},
	})
}

// GetProfile returns the authenticated identity as resolved by the
// middleware, permission flags included.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	c.JSON(http.StatusOK, gin.H{"user": identity})
}

package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/tarak510605/restaurant-ordering-system/models"
	"github.com/tarak510605/restaurant-ordering-system/repository"
)

const identityKey = "identity"

type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Authenticator issues and verifies tokens and resolves the full
// identity (permission flags and home country included) once per
// request, so services never re-query authorization data.
type Authenticator struct {
	Secret []byte
	Users  *repository.UserRepository
}

func NewAuthenticator(secret []byte, users *repository.UserRepository) *Authenticator {
	return &Authenticator{Secret: secret, Users: users}
}

// GenerateToken creates a signed JWT for a given user
func (a *Authenticator) GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.Secret)
}

// AuthRequired validates the JWT, loads the user with role and country,
// and stores the resulting identity in the request context.
func (a *Authenticator) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return a.Secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		user, err := a.Users.FindByID(claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user"})
			c.Abort()
			return
		}
		if user == nil || !user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found or deactivated"})
			c.Abort()
			return
		}

		c.Set(identityKey, models.Identity{
			UserID:      user.ID,
			Name:        user.Name,
			Email:       user.Email,
			Role:        user.Role.Name,
			Permissions: user.Role.Permissions,
			CountryID:   user.CountryID,
		})
		c.Next()
	}
}

// GetIdentity extracts the resolved identity from context. Only valid
// after AuthRequired has run.
func GetIdentity(c *gin.Context) models.Identity {
	val, _ := c.Get(identityKey)
	identity, _ := val.(models.Identity)
	return identity
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"backend/internal/model"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Context keys set by RequireAuth / RequireRole.
const (
	ContextUserID = "userID"
	ContextClaims = "claims"
	ContextUser   = "currentUser"
)

// TokenTTL is how long an issued access token stays valid.
const TokenTTL = 24 * time.Hour

func GetJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		secret = "default_super_secret_key" // Development fallback only — DO NOT use in production
	}
	return []byte(secret)
}

// GenerateToken issues a signed HS256 token embedding the user id.
func GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(TokenTTL).Unix(),
	})
	return token.SignedString(GetJWTSecret())
}

// ParseToken verifies a token string and returns its claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return GetJWTSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenMalformed
	}
	return claims, nil
}

// RequireAuth validates the bearer token and attaches the decoded claims plus
// the user id to the request context. Expired tokens are reported distinctly
// from malformed ones.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Authorization is missing"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Invalid authorization format. Expected 'Bearer <token>'"))
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Token has expired"))
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Invalid token"))
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Invalid token claims"))
			return
		}

		c.Set(ContextUserID, sub)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// IdentityStore resolves an authenticated user id to its account record.
// Satisfied by repository.UserRepository.
type IdentityStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// RequireRole loads the caller's account and checks its role against the
// allow-list. Must run after RequireAuth. Every authorized request pays one
// user read; there is no caching.
func RequireRole(store IdentityStore, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID, exists := c.Get(ContextUserID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Unauthorized: no user ID found"))
			return
		}

		userID, err := uuid.Parse(rawID.(string))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, response.Error("User not found"))
			return
		}

		user, err := store.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, response.Error("User not found"))
			return
		}

		allowed := false
		for _, role := range allowedRoles {
			if user.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error("Access denied: insufficient permissions"))
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's id from the context.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	rawID, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(rawID.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

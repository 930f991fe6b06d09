package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tr4cking/admin-api/internal/application/service"
	"github.com/tr4cking/admin-api/internal/infrastructure/restclient"
	"github.com/tr4cking/admin-api/internal/presentation/http/dto/response"
	"github.com/tr4cking/admin-api/pkg/apperror"
	"github.com/tr4cking/admin-api/pkg/utils"
)

// AuthMiddleware validates the console JWT and rebinds the clerk's backend
// session onto the request context. A valid token whose backend session has
// expired from the store still fails with 401: the clerk must log in again.
func AuthMiddleware(jwtManager *utils.JWTManager, sessions *service.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		session, ok := sessions.Get(claims.SessionID)
		if !ok {
			response.Error(c, apperror.ErrSessionExpired)
			c.Abort()
			return
		}

		// Every repository call downstream goes through this clerk's
		// backend session.
		ctx := restclient.WithSession(c.Request.Context(), session)
		c.Request = c.Request.WithContext(ctx)

		c.Set("session_id", claims.SessionID)
		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)

		c.Next()
	}
}

// GetSessionID returns the console session id set by AuthMiddleware.
func GetSessionID(c *gin.Context) uuid.UUID {
	sessionIDVal, exists := c.Get("session_id")
	if !exists {
		return uuid.Nil
	}
	sessionID, ok := sessionIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return sessionID
}

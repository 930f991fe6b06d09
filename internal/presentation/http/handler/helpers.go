package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetSessionID extracts the console session ID from the Gin context
func GetSessionID(c *gin.Context) *uuid.UUID {
	sessionIDVal, exists := c.Get("session_id")
	if !exists {
		return nil
	}
	sessionID, ok := sessionIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &sessionID
}

// GetUserID extracts the backend user ID from the Gin context
func GetUserID(c *gin.Context) int64 {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	userID, ok := userIDVal.(int64)
	if !ok {
		return 0
	}
	return userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// GetUserName extracts the user display name from the Gin context
func GetUserName(c *gin.Context) string {
	name, exists := c.Get("user_name")
	if !exists {
		return ""
	}
	return name.(string)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tr4cking/admin-api/internal/application/service"
	"github.com/tr4cking/admin-api/internal/presentation/http/dto/request"
	"github.com/tr4cking/admin-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates the clerk against the backend and opens a console
// session
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login credentials"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"user": gin.H{
			"id":         result.User.ID,
			"first_name": result.User.FirstName,
			"last_name":  result.User.LastName,
			"email":      result.User.Email,
		},
		"access_token": result.Token,
		"token_type":   "Bearer",
	})
}

// Logout ends the console session and the backend session behind it
// @Summary Logout
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	h.authService.Logout(c.Request.Context(), *sessionID)
	response.OK(c, "Logged out successfully", nil)
}

// GetProfile returns the authenticated clerk's identity
// @Summary Get Profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := h.authService.CurrentUser(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved successfully", gin.H{
		"user": gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
		},
	})
}

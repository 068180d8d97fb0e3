package handlers

import (
	"net/http"

	"file-portal-backend/internal/auth"
	"file-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup registers a new account
// @Summary Register a new account
// @Description Create an account with a role and organization. New accounts start with the default upload folders.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body service.SignupRequest true "Signup data"
// @Success 201 {object} service.UserSummary "Successfully created account"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Signup(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login authenticates a user and opens a session
// @Summary Log in
// @Description Exchange credentials for a JWT. Rejected while another session for the same account is still open.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body service.LoginRequest true "Credentials"
// @Success 200 {object} service.LoginResponse "Token and user"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials or session already open"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout closes the authenticated user's session
// @Summary Log out
// @Description Stamp the open session closed so the account can log in again elsewhere.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Failure 400 {object} map[string]interface{} "No open session"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access, please add a valid token"})
		return
	}

	if err := h.authService.Logout(userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

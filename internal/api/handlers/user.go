package handlers

import (
	"net/http"

	"file-portal-backend/internal/database/models"
	apperrors "file-portal-backend/internal/errors"
	"file-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for user administration
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// AddUser creates a user on behalf of an administrator
// @Summary Add a user
// @Description Create a user administratively. ROOT_ADMIN may create any role anywhere; TENANT_ADMIN only USER or TENANT_ADMIN inside its own organization.
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.AddUserRequest true "User data"
// @Success 201 {object} service.UserSummary "Successfully created user"
// @Failure 400 {object} map[string]interface{} "Invalid request body or email already registered"
// @Failure 403 {object} map[string]interface{} "Caller may not create this user"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) AddUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.AddUser(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListUsers lists the users visible to the caller
// @Summary List users
// @Description ROOT_ADMIN sees every non-root user; TENANT_ADMIN sees its own organization. The caller is excluded from the listing.
// @Tags users
// @Produce json
// @Param limit query int false "Number of items to return" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.UsersListResponse "Users"
// @Failure 403 {object} map[string]interface{} "Caller is not an administrator"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	limit, offset := pageParams(c)
	resp, err := h.userService.ListUsers(actor, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListOnlyUsers lists accounts holding the USER role
// @Summary List USER-role accounts
// @Description Same scoping as the general listing, filtered to the USER role.
// @Tags users
// @Produce json
// @Param limit query int false "Number of items to return" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.UsersListResponse "Users"
// @Failure 403 {object} map[string]interface{} "Caller is not an administrator"
// @Security BearerAuth
// @Router /users/only-users [get]
func (h *UserHandler) ListOnlyUsers(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	limit, offset := pageParams(c)
	resp, err := h.userService.ListOnlyUsers(actor, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteUser soft deletes a user
// @Summary Delete a user
// @Description Mark a user deleted. The row stays for audit; the account can no longer log in.
// @Tags users
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} service.UserSummary "Deleted user"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 403 {object} map[string]interface{} "User is outside the caller's scope"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /users/{userId} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.userService.DeleteUser(actor, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

// ResetPassword sets a new password for a managed user
// @Summary Reset a user's password
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param body body resetPasswordRequest true "New password"
// @Success 200 {object} map[string]interface{} "Password updated"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "User is outside the caller's scope"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /users/{userId}/password [put]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.ResetPassword(actor, userID, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

type manageRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ManageRole changes a managed user's role
// @Summary Change a user's role
// @Description Assign a new role within the caller's authority: ROOT_ADMIN assigns anything, TENANT_ADMIN only USER or TENANT_ADMIN.
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param body body manageRoleRequest true "New role"
// @Success 200 {object} service.UserSummary "Updated user"
// @Failure 400 {object} map[string]interface{} "Invalid role"
// @Failure 403 {object} map[string]interface{} "Role outside the caller's authority"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /users/{userId}/role [put]
func (h *UserHandler) ManageRole(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req manageRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.Role(req.Role)
	if !role.IsValid() {
		respondError(c, apperrors.ErrInvalidRole)
		return
	}

	user, err := h.userService.ManageRole(actor, userID, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DisableUser blocks a user from logging in without deleting the account
// @Summary Disable a user
// @Tags users
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} service.UserSummary "Disabled user"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 403 {object} map[string]interface{} "User is outside the caller's scope"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /users/{userId}/disable [put]
func (h *UserHandler) DisableUser(c *gin.Context) {
	h.setDisabled(c, true)
}

// EnableUser lifts a disable
// @Summary Enable a user
// @Tags users
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} service.UserSummary "Enabled user"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 403 {object} map[string]interface{} "User is outside the caller's scope"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /users/{userId}/enable [put]
func (h *UserHandler) EnableUser(c *gin.Context) {
	h.setDisabled(c, false)
}

func (h *UserHandler) setDisabled(c *gin.Context, disabled bool) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var user *service.UserSummary
	if disabled {
		user, err = h.userService.DisableUser(actor, userID)
	} else {
		user, err = h.userService.EnableUser(actor, userID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

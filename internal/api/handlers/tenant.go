package handlers

import (
	"net/http"

	"file-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler handles HTTP requests for tenant accounts
type TenantHandler struct {
	userService *service.UserService
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(userService *service.UserService) *TenantHandler {
	return &TenantHandler{userService: userService}
}

// ListTenants lists tenant-grade accounts across organizations
// @Summary List tenants
// @Description Get all TENANT_ADMIN and TENANT accounts. Restricted to ROOT_ADMIN.
// @Tags tenants
// @Produce json
// @Param limit query int false "Number of items to return" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.UsersListResponse "Tenants"
// @Failure 403 {object} map[string]interface{} "Caller is not ROOT_ADMIN"
// @Security BearerAuth
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	limit, offset := pageParams(c)
	resp, err := h.userService.ListTenants(actor, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

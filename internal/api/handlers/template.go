package handlers

import (
	"encoding/json"
	"net/http"

	"file-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TemplateHandler handles HTTP requests for templates
type TemplateHandler struct {
	templateService *service.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// PromoteGlobalTemplate makes a file the organization's global template
// @Summary Promote a file to global template
// @Description Flag the file as the organization's single global template and copy its object under the designated template prefix, replacing any previous one.
// @Tags templates
// @Produce json
// @Param fileId path string true "File ID (UUID)"
// @Success 200 {object} service.FileResponse "Promoted file"
// @Failure 400 {object} map[string]interface{} "Invalid file ID"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Security BearerAuth
// @Router /files/{fileId}/promote-global-template [put]
func (h *TemplateHandler) PromoteGlobalTemplate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	file, err := h.templateService.PromoteGlobalTemplate(c.Request.Context(), actor, fileID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, file)
}

// GetGlobalTemplate returns the organization's current global template
// @Summary Get the global template
// @Tags templates
// @Produce json
// @Success 200 {object} service.FileResponse "Global template"
// @Failure 404 {object} map[string]interface{} "No global template designated"
// @Security BearerAuth
// @Router /templates/global [get]
func (h *TemplateHandler) GetGlobalTemplate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	file, err := h.templateService.GetGlobalTemplate(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, file)
}

type saveTemplateRequest struct {
	TemplateData json.RawMessage `json:"template_data" binding:"required"`
}

// SaveTemplate upserts a JSON template payload onto a file
// @Summary Save template data
// @Tags templates
// @Accept json
// @Produce json
// @Param fileId path string true "File ID (UUID)"
// @Param body body saveTemplateRequest true "Template payload"
// @Success 200 {object} service.TemplateResponse "Saved template"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller may not edit this file"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Security BearerAuth
// @Router /templates/{fileId} [post]
func (h *TemplateHandler) SaveTemplate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	var req saveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.templateService.SaveTemplate(actor, fileID, req.TemplateData)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTemplate returns the JSON template payload saved on a file
// @Summary Get template data
// @Tags templates
// @Produce json
// @Param fileId path string true "File ID (UUID)"
// @Success 200 {object} service.TemplateResponse "Template payload"
// @Failure 404 {object} map[string]interface{} "File or template not found"
// @Security BearerAuth
// @Router /templates/{fileId} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	resp, err := h.templateService.GetTemplate(actor, fileID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTemplates lists files in the organization's Templates folder
// @Summary List templates
// @Tags templates
// @Produce json
// @Param limit query int false "Number of items to return" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.FilesListResponse "Templates"
// @Security BearerAuth
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	limit, offset := pageParams(c)
	resp, err := h.templateService.ListTemplates(actor, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

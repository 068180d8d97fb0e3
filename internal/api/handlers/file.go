package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"file-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FileHandler handles HTTP requests for file uploads and listings
type FileHandler struct {
	uploadService *service.UploadService
}

// NewFileHandler creates a new file handler
func NewFileHandler(uploadService *service.UploadService) *FileHandler {
	return &FileHandler{uploadService: uploadService}
}

// UploadFile uploads one file into a folder
// @Summary Upload a file
// @Description Multipart-form upload into a named folder. A file with the same name in the same folder of the organization is rejected before any bytes move.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File content"
// @Param folder_name formData string true "Target folder"
// @Param confidential formData bool false "Visible to the uploader only" default(false)
// @Param comment formData string false "Free-text comment"
// @Success 201 {object} service.FileResponse "Uploaded file"
// @Failure 400 {object} map[string]interface{} "Missing file or folder"
// @Failure 409 {object} map[string]interface{} "Duplicate name in folder"
// @Security BearerAuth
// @Router /files/upload [post]
func (h *FileHandler) UploadFile(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confidential, _ := strconv.ParseBool(c.DefaultPostForm("confidential", "false"))

	req := &service.UploadFileRequest{
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Data:         data,
		FolderName:   c.PostForm("folder_name"),
		Confidential: confidential,
		Comment:      c.PostForm("comment"),
	}

	file, err := h.uploadService.UploadFile(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, file)
}

// ListFiles lists the organization's files visible to the caller
// @Summary List visible files
// @Description The caller's own uploads plus the organization's non-confidential files. Files uploaded by administrative roles stay out of the general listing.
// @Tags files
// @Produce json
// @Param limit query int false "Number of items to return" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.FilesListResponse "Files"
// @Security BearerAuth
// @Router /files [get]
func (h *FileHandler) ListFiles(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	limit, offset := pageParams(c)
	resp, err := h.uploadService.ListFiles(actor, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListMyFiles lists the caller's own uploads
// @Summary List my files
// @Description Every upload the caller made, confidential ones included.
// @Tags files
// @Produce json
// @Param limit query int false "Number of items to return" default(50)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.FilesListResponse "Files"
// @Security BearerAuth
// @Router /files/mine [get]
func (h *FileHandler) ListMyFiles(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	limit, offset := pageParams(c)
	resp, err := h.uploadService.ListMyFiles(actor, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetFileURL re-issues a signed download URL
// @Summary Get a fresh download URL
// @Description Signed URLs expire; this returns a fresh one for a file the caller may see.
// @Tags files
// @Produce json
// @Param fileId path string true "File ID (UUID)"
// @Success 200 {object} map[string]interface{} "Signed URL"
// @Failure 400 {object} map[string]interface{} "Invalid file ID"
// @Failure 403 {object} map[string]interface{} "File is not visible to the caller"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Security BearerAuth
// @Router /files/{fileId}/url [get]
func (h *FileHandler) GetFileURL(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	url, err := h.uploadService.FreshURL(c.Request.Context(), actor, fileID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DownloadFile streams a file's content through the backend
// @Summary Download a file
// @Description Stream the file bytes directly, for clients that cannot follow a presigned URL.
// @Tags files
// @Produce octet-stream
// @Param fileId path string true "File ID (UUID)"
// @Success 200 {file} binary "File content"
// @Failure 400 {object} map[string]interface{} "Invalid file ID"
// @Failure 403 {object} map[string]interface{} "File is not visible to the caller"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Security BearerAuth
// @Router /files/{fileId}/download [get]
func (h *FileHandler) DownloadFile(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	rc, file, err := h.uploadService.DownloadFile(c.Request.Context(), actor, fileID)
	if err != nil {
		respondError(c, err)
		return
	}
	defer rc.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", file.FileName),
	}
	c.DataFromReader(http.StatusOK, file.FileSize, file.FileType, rc, extraHeaders)
}

// ListFolders returns the caller's folder names
// @Summary List folders
// @Tags folders
// @Produce json
// @Success 200 {object} map[string]interface{} "Folder names"
// @Security BearerAuth
// @Router /folders [get]
func (h *FileHandler) ListFolders(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	folders, err := h.uploadService.ListFolders(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"folders": folders})
}

type createFolderRequest struct {
	FolderName string `json:"folder_name" binding:"required"`
}

// CreateFolder adds a folder name to the caller's set
// @Summary Create a folder
// @Description Add a folder name to the caller's folder set. Creating an existing folder is a no-op.
// @Tags folders
// @Accept json
// @Produce json
// @Param body body createFolderRequest true "Folder name"
// @Success 201 {object} map[string]interface{} "Folder names after the merge"
// @Failure 400 {object} map[string]interface{} "Missing folder name"
// @Security BearerAuth
// @Router /folders [post]
func (h *FileHandler) CreateFolder(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req createFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	folders, err := h.uploadService.CreateFolder(actor, req.FolderName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"folders": folders})
}

// AddRelatedFile attaches an auxiliary file to an upload
// @Summary Attach a related file
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param fileId path string true "Primary file ID (UUID)"
// @Param file formData file true "Attachment content"
// @Success 201 {object} service.RelatedFileResponse "Attached file"
// @Failure 400 {object} map[string]interface{} "Missing file"
// @Failure 403 {object} map[string]interface{} "Primary file is not visible to the caller"
// @Failure 404 {object} map[string]interface{} "Primary file not found"
// @Security BearerAuth
// @Router /files/{fileId}/related [post]
func (h *FileHandler) AddRelatedFile(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	related, err := h.uploadService.AddRelatedFile(c.Request.Context(), actor, fileID, fileHeader.Filename, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, related)
}

// ListRelatedFiles lists the attachments of a file
// @Summary List related files
// @Tags files
// @Produce json
// @Param fileId path string true "Primary file ID (UUID)"
// @Success 200 {object} map[string]interface{} "Related files"
// @Failure 404 {object} map[string]interface{} "Primary file not found"
// @Security BearerAuth
// @Router /files/{fileId}/related [get]
func (h *FileHandler) ListRelatedFiles(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	related, err := h.uploadService.ListRelatedFiles(actor, fileID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"related_files": related})
}

// DeleteRelatedFile removes an attachment
// @Summary Delete a related file
// @Tags files
// @Produce json
// @Param fileId path string true "Primary file ID (UUID)"
// @Param relatedId path string true "Related file ID (UUID)"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Related file not found"
// @Security BearerAuth
// @Router /files/{fileId}/related/{relatedId} [delete]
func (h *FileHandler) DeleteRelatedFile(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	relatedID, err := uuid.Parse(c.Param("relatedId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid related file ID"})
		return
	}

	if err := h.uploadService.DeleteRelatedFile(c.Request.Context(), actor, relatedID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Related file deleted successfully"})
}

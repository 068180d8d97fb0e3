package repository

import (
	"encoding/json"

	"file-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileUploadRepository handles database operations for file uploads
type FileUploadRepository struct {
	db *gorm.DB
}

// NewFileUploadRepository creates a new file upload repository
func NewFileUploadRepository(db *gorm.DB) *FileUploadRepository {
	return &FileUploadRepository{db: db}
}

// Create creates a new file upload record
func (r *FileUploadRepository) Create(file *models.FileUpload) error {
	return r.db.Create(file).Error
}

// GetByID retrieves a file upload by ID
func (r *FileUploadRepository) GetByID(id uuid.UUID) (*models.FileUpload, error) {
	var file models.FileUpload
	err := r.db.First(&file, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// GetByNameInFolder retrieves a file by name within a user folder of an
// organization. Used for the duplicate check before a multipart session opens.
func (r *FileUploadRepository) GetByNameInFolder(organization, folderName, fileName string) (*models.FileUpload, error) {
	var file models.FileUpload
	err := r.db.First(&file,
		"organization = ? AND folder_name = ? AND file_name = ?",
		organization, folderName, fileName).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// ListVisible retrieves the files of an organization visible to the requester:
// the requester's own files plus non-confidential files whose uploader does
// not hold an administrative role.
func (r *FileUploadRepository) ListVisible(organization string, requesterID uuid.UUID, limit, offset int) ([]models.FileUpload, int64, error) {
	var files []models.FileUpload
	var total int64

	query := r.db.Model(&models.FileUpload{}).
		Joins("JOIN users ON users.id = file_uploads.uploaded_by_id").
		Where("file_uploads.organization = ?", organization).
		Where("file_uploads.uploaded_by_id = ? OR (file_uploads.confidential = ? AND users.role NOT IN ?)",
			requesterID, false, []models.Role{models.RoleRootAdmin, models.RoleTenantAdmin})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Limit(limit).Offset(offset).Find(&files).Error; err != nil {
		return nil, 0, err
	}

	return files, total, nil
}

// ListByUploader retrieves all files uploaded by one user with pagination
func (r *FileUploadRepository) ListByUploader(uploaderID uuid.UUID, limit, offset int) ([]models.FileUpload, int64, error) {
	var files []models.FileUpload
	var total int64

	query := r.db.Model(&models.FileUpload{}).Where("uploaded_by_id = ?", uploaderID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Limit(limit).Offset(offset).Find(&files).Error; err != nil {
		return nil, 0, err
	}

	return files, total, nil
}

// ListByFolder retrieves an organization's files in a named folder
func (r *FileUploadRepository) ListByFolder(organization, folderName string, limit, offset int) ([]models.FileUpload, int64, error) {
	var files []models.FileUpload
	var total int64

	query := r.db.Model(&models.FileUpload{}).
		Where("organization = ? AND folder_name = ?", organization, folderName)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Limit(limit).Offset(offset).Find(&files).Error; err != nil {
		return nil, 0, err
	}

	return files, total, nil
}

// GetGlobalTemplate retrieves the organization's currently designated template
func (r *FileUploadRepository) GetGlobalTemplate(organization string) (*models.FileUpload, error) {
	var file models.FileUpload
	err := r.db.First(&file,
		"organization = ? AND is_global_template = ?", organization, true).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// SwapGlobalTemplate transfers the global-template designation within an
// organization to the named file. Clear-before-set runs inside one
// transaction so at most one designee is ever observable; re-running with
// the same file is safe.
func (r *FileUploadRepository) SwapGlobalTemplate(organization string, fileID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.FileUpload{}).
			Where("organization = ? AND is_global_template = ?", organization, true).
			Update("is_global_template", false).Error; err != nil {
			return err
		}
		res := tx.Model(&models.FileUpload{}).
			Where("id = ? AND organization = ?", fileID, organization).
			Update("is_global_template", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// UpdateTemplateData replaces the structured template payload of a file
func (r *FileUploadRepository) UpdateTemplateData(id uuid.UUID, data json.RawMessage) error {
	return r.db.Model(&models.FileUpload{}).Where("id = ?", id).Update("template_data", data).Error
}

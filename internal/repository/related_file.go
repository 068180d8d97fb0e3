package repository

import (
	"file-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelatedFileRepository handles database operations for related files
type RelatedFileRepository struct {
	db *gorm.DB
}

// NewRelatedFileRepository creates a new related file repository
func NewRelatedFileRepository(db *gorm.DB) *RelatedFileRepository {
	return &RelatedFileRepository{db: db}
}

// Create creates a new related file record
func (r *RelatedFileRepository) Create(related *models.RelatedFile) error {
	return r.db.Create(related).Error
}

// GetByID retrieves a related file by ID
func (r *RelatedFileRepository) GetByID(id uuid.UUID) (*models.RelatedFile, error) {
	var related models.RelatedFile
	err := r.db.First(&related, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &related, nil
}

// ListByPrimaryFileID retrieves the attachments of a primary file
func (r *RelatedFileRepository) ListByPrimaryFileID(primaryFileID uuid.UUID) ([]models.RelatedFile, error) {
	var related []models.RelatedFile
	err := r.db.Where("primary_file_id = ?", primaryFileID).Find(&related).Error
	if err != nil {
		return nil, err
	}
	return related, nil
}

// Delete removes a related file record
func (r *RelatedFileRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.RelatedFile{}, "id = ?", id).Error
}

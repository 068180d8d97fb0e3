package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"file-portal-backend/internal/database/models"
	apperrors "file-portal-backend/internal/errors"
	"file-portal-backend/internal/logger"
	"file-portal-backend/internal/repository"
	"file-portal-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TemplateService manages the per-organization global template and
// template payloads attached to uploads.
type TemplateService struct {
	files repository.FileUploadRepositoryInterface
	store storage.ObjectStore
}

// NewTemplateService creates a new template service
func NewTemplateService(files repository.FileUploadRepositoryInterface, store storage.ObjectStore) *TemplateService {
	return &TemplateService{files: files, store: store}
}

// TemplateResponse is the payload of a saved template
type TemplateResponse struct {
	FileID       uuid.UUID       `json:"file_id"`
	FileName     string          `json:"file_name"`
	TemplateData json.RawMessage `json:"template_data,omitempty"`
}

// PromoteGlobalTemplate makes one file the organization's global template.
// The flag swap is transactional, so at most one file per organization ever
// carries it; the storage copy follows, with any previous template object
// purged first so the designated prefix holds exactly one object.
func (s *TemplateService) PromoteGlobalTemplate(ctx context.Context, actor Actor, fileID uuid.UUID) (*FileResponse, error) {
	file, err := s.files.GetByID(fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, err
	}
	if file.Organization != actor.Organization && actor.Role != models.RoleRootAdmin {
		return nil, apperrors.ErrFileNotVisible
	}

	if err := s.files.SwapGlobalTemplate(file.Organization, file.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, err
	}

	// Purge before copy: a reader hitting the window between the two sees
	// no template rather than a stale one.
	prefix := storage.GlobalTemplatePrefix(file.Organization)
	if err := s.store.DeletePrefix(ctx, prefix); err != nil {
		return nil, fmt.Errorf("purge previous template: %w", err)
	}

	dstKey := storage.GlobalTemplateKey(file.Organization, file.FileName)
	if err := s.store.Copy(ctx, file.StorageKey, dstKey); err != nil {
		return nil, fmt.Errorf("copy template object: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization": file.Organization,
		"file_id":      file.ID,
	}).Info("global template promoted")

	file.IsGlobalTemplate = true
	return fileResponse(file), nil
}

// GetGlobalTemplate returns the organization's current global template
func (s *TemplateService) GetGlobalTemplate(actor Actor) (*FileResponse, error) {
	file, err := s.files.GetGlobalTemplate(actor.Organization)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGlobalTemplateNotFound
		}
		return nil, err
	}
	return fileResponse(file), nil
}

// SaveTemplate upserts a JSON template payload onto a file the actor uploaded
func (s *TemplateService) SaveTemplate(actor Actor, fileID uuid.UUID, data json.RawMessage) (*TemplateResponse, error) {
	file, err := s.files.GetByID(fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, err
	}
	if file.UploadedByID != actor.UserID && !actor.Role.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	if err := s.files.UpdateTemplateData(file.ID, data); err != nil {
		return nil, err
	}

	return &TemplateResponse{FileID: file.ID, FileName: file.FileName, TemplateData: data}, nil
}

// GetTemplate returns the JSON template payload saved on a file
func (s *TemplateService) GetTemplate(actor Actor, fileID uuid.UUID) (*TemplateResponse, error) {
	file, err := s.files.GetByID(fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, err
	}
	if file.Organization != actor.Organization && actor.Role != models.RoleRootAdmin {
		return nil, apperrors.ErrFileNotVisible
	}
	if len(file.TemplateData) == 0 {
		return nil, apperrors.ErrTemplateNotFound
	}

	return &TemplateResponse{FileID: file.ID, FileName: file.FileName, TemplateData: json.RawMessage(file.TemplateData)}, nil
}

// ListTemplates returns files sitting in the organization's Templates folder
func (s *TemplateService) ListTemplates(actor Actor, limit, offset int) (*FilesListResponse, error) {
	limit, offset = normalizePage(limit, offset)

	files, total, err := s.files.ListByFolder(actor.Organization, models.FolderTemplates, limit, offset)
	if err != nil {
		return nil, err
	}
	return &FilesListResponse{Files: fileResponses(files), Total: total, Limit: limit, Offset: offset}, nil
}

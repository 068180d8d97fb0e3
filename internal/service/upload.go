package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"file-portal-backend/internal/database/models"
	apperrors "file-portal-backend/internal/errors"
	"file-portal-backend/internal/logger"
	"file-portal-backend/internal/repository"
	"file-portal-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// partSize is the fixed multipart chunk size (5 MiB, the S3 minimum)
const partSize = 5 * 1024 * 1024

// UploadService orchestrates multipart uploads, folder bookkeeping and
// file visibility.
type UploadService struct {
	files     repository.FileUploadRepositoryInterface
	users     repository.UserRepositoryInterface
	related   repository.RelatedFileRepositoryInterface
	store     storage.ObjectStore
	urlExpiry time.Duration
}

// NewUploadService creates a new upload service
func NewUploadService(
	files repository.FileUploadRepositoryInterface,
	users repository.UserRepositoryInterface,
	related repository.RelatedFileRepositoryInterface,
	store storage.ObjectStore,
	urlExpiry time.Duration,
) *UploadService {
	if urlExpiry == 0 {
		urlExpiry = time.Hour
	}
	return &UploadService{
		files:     files,
		users:     users,
		related:   related,
		store:     store,
		urlExpiry: urlExpiry,
	}
}

// UploadFileRequest carries one file buffer and its target folder
type UploadFileRequest struct {
	FileName     string
	ContentType  string
	Data         []byte
	FolderName   string
	Confidential bool
	Comment      string
}

// FileResponse is the API projection of a FileUpload
type FileResponse struct {
	ID               uuid.UUID       `json:"id"`
	FileName         string          `json:"file_name"`
	FileSize         int64           `json:"file_size"`
	FileType         string          `json:"file_type"`
	UploadedByID     uuid.UUID       `json:"uploaded_by_id"`
	Organization     string          `json:"organization"`
	FolderName       string          `json:"folder_name"`
	Confidential     bool            `json:"confidential"`
	IsGlobalTemplate bool            `json:"is_global_template"`
	FilePath         string          `json:"file_path"`
	TemplateData     json.RawMessage `json:"template_data,omitempty"`
	Comment          string          `json:"comment,omitempty"`
	UploadTimestamp  time.Time       `json:"upload_timestamp"`
}

// FilesListResponse is the response schema for file listings
type FilesListResponse struct {
	Files  []FileResponse `json:"files"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// RelatedFileResponse is the API projection of a RelatedFile
type RelatedFileResponse struct {
	ID            uuid.UUID `json:"id"`
	PrimaryFileID uuid.UUID `json:"primary_file_id"`
	FileName      string    `json:"file_name"`
	FileSize      int64     `json:"file_size"`
	FilePath      string    `json:"file_path"`
}

// UploadFile drives the whole upload: duplicate check, multipart transfer,
// signed URL, metadata row, folder-set union. Exactly one FileUpload row is
// created and exactly one User row updated on success.
func (s *UploadService) UploadFile(ctx context.Context, actor Actor, req *UploadFileRequest) (*FileResponse, error) {
	if req.FolderName == "" {
		return nil, apperrors.ErrFolderMissing
	}
	if len(req.Data) == 0 {
		return nil, apperrors.ErrEmptyFile
	}

	// The duplicate check runs before the multipart session opens so a
	// rejected upload never leaves an orphaned partial object behind.
	if _, err := s.files.GetByNameInFolder(actor.Organization, req.FolderName, req.FileName); err == nil {
		return nil, apperrors.ErrFileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err := s.users.GetByID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	key := storage.UploadKey(actor.Organization, req.FolderName, req.FileName)

	uploadID, err := s.store.InitiateMultipart(ctx, key, req.ContentType)
	if err != nil {
		return nil, fmt.Errorf("initiate upload: %w", err)
	}

	parts, err := s.uploadParts(ctx, key, uploadID, req.Data)
	if err != nil {
		// Abort so no partial session leaks; the first failure surfaces.
		if abortErr := s.store.AbortMultipart(ctx, key, uploadID); abortErr != nil {
			logger.WithContext(ctx).WithField("key", key).Errorf("abort multipart failed: %v", abortErr)
		}
		return nil, err
	}

	info, err := s.store.CompleteMultipart(ctx, key, uploadID, parts)
	if err != nil {
		if abortErr := s.store.AbortMultipart(ctx, key, uploadID); abortErr != nil {
			logger.WithContext(ctx).WithField("key", key).Errorf("abort multipart failed: %v", abortErr)
		}
		return nil, fmt.Errorf("complete upload: %w", err)
	}

	signedURL, err := s.store.PresignGet(ctx, key, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("sign url: %w", err)
	}

	file := &models.FileUpload{
		FileName:        req.FileName,
		FileSize:        info.Size,
		FileType:        req.ContentType,
		UploadedByID:    actor.UserID,
		Organization:    actor.Organization,
		FolderName:      req.FolderName,
		Confidential:    req.Confidential,
		StorageKey:      key,
		FilePath:        signedURL,
		UploadTimestamp: time.Now(),
		Comment:         req.Comment,
	}
	if err := s.files.Create(file); err != nil {
		// Roll the composed object back so storage and metadata stay in step
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("save metadata failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("save metadata: %w", err)
	}

	// Idempotent union: uploading into a known folder leaves the set alone
	merged := user.UploadFolders.Union(req.FolderName)
	if len(merged) != len(user.UploadFolders) {
		if err := s.users.UpdateUploadFolders(user.ID, merged); err != nil {
			return nil, fmt.Errorf("update folders: %w", err)
		}
	}

	return fileResponse(file), nil
}

// uploadParts splits the buffer into fixed-size parts and uploads them
// sequentially, collecting part-number/ETag pairs in part order.
func (s *UploadService) uploadParts(ctx context.Context, key, uploadID string, data []byte) ([]storage.Part, error) {
	var parts []storage.Part
	partNumber := 1
	for offset := 0; offset < len(data); offset += partSize {
		end := offset + partSize
		if end > len(data) {
			end = len(data)
		}
		part, err := s.store.UploadPart(ctx, key, uploadID, partNumber, data[offset:end])
		if err != nil {
			return nil, fmt.Errorf("upload part %d: %w", partNumber, err)
		}
		parts = append(parts, part)
		partNumber++
	}
	return parts, nil
}

// ListFiles returns the organization's files visible to the actor:
// the actor's own uploads plus non-confidential files, with uploads made by
// administrative roles excluded from the general listing.
func (s *UploadService) ListFiles(actor Actor, limit, offset int) (*FilesListResponse, error) {
	limit, offset = normalizePage(limit, offset)

	files, total, err := s.files.ListVisible(actor.Organization, actor.UserID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &FilesListResponse{Files: fileResponses(files), Total: total, Limit: limit, Offset: offset}, nil
}

// ListMyFiles returns the actor's own uploads, confidential ones included
func (s *UploadService) ListMyFiles(actor Actor, limit, offset int) (*FilesListResponse, error) {
	limit, offset = normalizePage(limit, offset)

	files, total, err := s.files.ListByUploader(actor.UserID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &FilesListResponse{Files: fileResponses(files), Total: total, Limit: limit, Offset: offset}, nil
}

// FreshURL re-issues a signed download URL for a file the actor may see
func (s *UploadService) FreshURL(ctx context.Context, actor Actor, fileID uuid.UUID) (string, error) {
	file, err := s.getVisible(actor, fileID)
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, file.StorageKey, s.urlExpiry)
}

// DownloadFile streams a visible file's object content through the backend,
// for callers that cannot follow a presigned URL. The caller closes the reader.
func (s *UploadService) DownloadFile(ctx context.Context, actor Actor, fileID uuid.UUID) (io.ReadCloser, *FileResponse, error) {
	file, err := s.getVisible(actor, fileID)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.store.Get(ctx, file.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch object: %w", err)
	}
	return rc, fileResponse(file), nil
}

// ListFolders returns the actor's folder-name set
func (s *UploadService) ListFolders(actor Actor) ([]string, error) {
	user, err := s.users.GetByID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user.UploadFolders, nil
}

// CreateFolder merges a new folder name into the actor's folder set.
// Creating an existing folder is a no-op, not an error.
func (s *UploadService) CreateFolder(actor Actor, folderName string) ([]string, error) {
	if folderName == "" {
		return nil, apperrors.ErrFolderMissing
	}
	user, err := s.users.GetByID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	merged := user.UploadFolders.Union(folderName)
	if len(merged) != len(user.UploadFolders) {
		if err := s.users.UpdateUploadFolders(user.ID, merged); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// AddRelatedFile attaches an auxiliary file to a primary upload with a
// single-shot put (attachments are small; no multipart session needed).
func (s *UploadService) AddRelatedFile(ctx context.Context, actor Actor, primaryFileID uuid.UUID, fileName string, data []byte, contentType string) (*RelatedFileResponse, error) {
	if len(data) == 0 {
		return nil, apperrors.ErrEmptyFile
	}

	primary, err := s.getVisible(actor, primaryFileID)
	if err != nil {
		return nil, err
	}

	key := storage.RelatedFileKey(primary.Organization, primary.ID.String(), fileName)
	info, err := s.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		return nil, fmt.Errorf("upload related file: %w", err)
	}

	signedURL, err := s.store.PresignGet(ctx, key, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("sign url: %w", err)
	}

	related := &models.RelatedFile{
		PrimaryFileID: primary.ID,
		FileName:      fileName,
		FileSize:      info.Size,
		StorageKey:    key,
		FilePath:      signedURL,
	}
	if err := s.related.Create(related); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("save metadata failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("save metadata: %w", err)
	}

	return relatedResponse(related), nil
}

// ListRelatedFiles returns the attachments of a primary file the actor may see
func (s *UploadService) ListRelatedFiles(actor Actor, primaryFileID uuid.UUID) ([]RelatedFileResponse, error) {
	if _, err := s.getVisible(actor, primaryFileID); err != nil {
		return nil, err
	}

	related, err := s.related.ListByPrimaryFileID(primaryFileID)
	if err != nil {
		return nil, err
	}

	out := make([]RelatedFileResponse, 0, len(related))
	for i := range related {
		out = append(out, *relatedResponse(&related[i]))
	}
	return out, nil
}

// DeleteRelatedFile removes an attachment, object first so a failed object
// delete never leaves a dangling metadata row.
func (s *UploadService) DeleteRelatedFile(ctx context.Context, actor Actor, relatedID uuid.UUID) error {
	related, err := s.related.GetByID(relatedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRelatedFileNotFound
		}
		return err
	}
	if _, err := s.getVisible(actor, related.PrimaryFileID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, related.StorageKey); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return s.related.Delete(relatedID)
}

// getVisible loads a file and enforces single-file visibility: confidential
// files belong to their uploader alone; everything else is organization
// scoped, with ROOT_ADMIN allowed across organizations.
func (s *UploadService) getVisible(actor Actor, fileID uuid.UUID) (*models.FileUpload, error) {
	file, err := s.files.GetByID(fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, err
	}

	if file.UploadedByID == actor.UserID {
		return file, nil
	}
	if file.Confidential {
		return nil, apperrors.ErrFileNotVisible
	}
	if file.Organization != actor.Organization && actor.Role != models.RoleRootAdmin {
		return nil, apperrors.ErrFileNotVisible
	}
	return file, nil
}

func fileResponse(file *models.FileUpload) *FileResponse {
	return &FileResponse{
		ID:               file.ID,
		FileName:         file.FileName,
		FileSize:         file.FileSize,
		FileType:         file.FileType,
		UploadedByID:     file.UploadedByID,
		Organization:     file.Organization,
		FolderName:       file.FolderName,
		Confidential:     file.Confidential,
		IsGlobalTemplate: file.IsGlobalTemplate,
		FilePath:         file.FilePath,
		TemplateData:     file.TemplateData,
		Comment:          file.Comment,
		UploadTimestamp:  file.UploadTimestamp,
	}
}

func fileResponses(files []models.FileUpload) []FileResponse {
	out := make([]FileResponse, 0, len(files))
	for i := range files {
		out = append(out, *fileResponse(&files[i]))
	}
	return out
}

func relatedResponse(related *models.RelatedFile) *RelatedFileResponse {
	return &RelatedFileResponse{
		ID:            related.ID,
		PrimaryFileID: related.PrimaryFileID,
		FileName:      related.FileName,
		FileSize:      related.FileSize,
		FilePath:      related.FilePath,
	}
}

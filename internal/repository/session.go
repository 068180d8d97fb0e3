package repository

import (
	"file-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository handles database operations for sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetByUserID retrieves the session belonging to a user
func (r *SessionRepository) GetByUserID(userID uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := r.db.First(&session, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Update updates a session
func (r *SessionRepository) Update(session *models.Session) error {
	return r.db.Save(session).Error
}

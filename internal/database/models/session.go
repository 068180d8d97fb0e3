package models

import (
	"time"

	"github.com/google/uuid"
)

// Session tracks the single login window of a user. LogoutTimestamp is nil
// while the session is active; a user with an active session cannot log in
// from elsewhere until logout stamps it.
type Session struct {
	BaseModel
	UserID          uuid.UUID  `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	LoginTimestamp  time.Time  `json:"login_timestamp" gorm:"not null"`
	LogoutTimestamp *time.Time `json:"logout_timestamp"`
}

// TableName returns the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// IsActive reports whether the session is still open
func (s *Session) IsActive() bool {
	return s != nil && s.LogoutTimestamp == nil
}

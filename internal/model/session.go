package model

import "time"

// Session is the persistent record behind a session cookie. Redis holds
// a hot copy; this row is the fallback when Redis is unavailable.
type Session struct {
	Token     string    `json:"token" gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:char(36);not null;index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

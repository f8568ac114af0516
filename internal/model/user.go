package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole discriminates which nested aggregate a user detail fetch returns.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleAdmin   UserRole = "admin"
)

// User represents a student, teacher or admin. IDs are opaque strings
// (UUIDs) rather than numeric keys.
type User struct {
	ID            string    `json:"id" gorm:"type:char(36);primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null;index"`
	Email         string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	EmailVerified bool      `json:"email_verified" gorm:"default:false"`
	Image         string    `json:"image,omitempty" gorm:"size:512"`
	Role          UserRole  `json:"role" gorm:"size:50;not null;default:'student';index"`
	PasswordHash  string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate assigns an opaque ID when none was supplied.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

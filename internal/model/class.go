package model

import (
	"time"

	"gorm.io/datatypes"
)

// ClassStatus is the lifecycle state of a class.
type ClassStatus string

const (
	ClassStatusActive   ClassStatus = "active"
	ClassStatusArchived ClassStatus = "archived"
)

// ClassSchedule is one recurring meeting slot, stored inside the
// schedules JSON column.
type ClassSchedule struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// Class is a taught instance of a subject. TeacherID references a user
// that is a teacher by convention; the schema does not enforce the role.
type Class struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	SubjectID   uint           `json:"subject_id" gorm:"not null;index"`
	TeacherID   string         `json:"teacher_id" gorm:"type:char(36);not null;index"`
	Name        string         `json:"name" gorm:"size:255;not null;index"`
	InviteCode  string         `json:"invite_code" gorm:"uniqueIndex;size:12;not null"`
	Capacity    int            `json:"capacity" gorm:"not null;default:30"`
	Status      ClassStatus    `json:"status" gorm:"size:50;not null;default:'active';index"`
	BannerURL   string         `json:"banner_url,omitempty" gorm:"size:512"`
	BannerColor string         `json:"banner_color,omitempty" gorm:"size:20"`
	Schedules   datatypes.JSON `json:"schedules,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	// Relations
	Subject *Subject `json:"subject,omitempty" gorm:"foreignKey:SubjectID"`
	Teacher *User    `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
}

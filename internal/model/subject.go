package model

import "time"

// Subject belongs to exactly one department.
type Subject struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	DepartmentID uint      `json:"department_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"size:255;not null;index"`
	Code         string    `json:"code" gorm:"uniqueIndex;size:20;not null"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	Classes    []Class     `json:"classes,omitempty" gorm:"foreignKey:SubjectID"`
}

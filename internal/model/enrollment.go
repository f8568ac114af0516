package model

import "time"

// Enrollment joins a student to a class. The composite unique index
// rejects duplicate (student, class) pairs at the schema level; the
// service-layer duplicate check alone would race.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StudentID string    `json:"student_id" gorm:"type:char(36);not null;uniqueIndex:idx_enrollment_student_class;index"`
	ClassID   uint      `json:"class_id" gorm:"not null;uniqueIndex:idx_enrollment_student_class;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Student *User  `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Class   *Class `json:"class,omitempty" gorm:"foreignKey:ClassID"`
}

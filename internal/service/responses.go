package service

import (
	"time"

	"academix/internal/repository"
)

// Nested reference shapes shared by the composite detail responses. Each
// detail endpoint assembles these from flat join rows; the folds that
// build them deduplicate by primary key with first-seen-wins semantics.

// DepartmentRef is a department reference inside a nested aggregate.
type DepartmentRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// SubjectRef is a subject reference inside a nested aggregate.
type SubjectRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// TeacherRef is a teacher reference inside a nested aggregate.
type TeacherRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// StudentRef is a deduplicated student identity.
type StudentRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

// ClassSummary is a class reference with whichever joined relations the
// producing query carried; absent joins stay nil and are omitted.
type ClassSummary struct {
	ID         uint           `json:"id"`
	Name       string         `json:"name"`
	InviteCode string         `json:"invite_code,omitempty"`
	Capacity   int            `json:"capacity"`
	Status     string         `json:"status"`
	Subject    *SubjectRef    `json:"subject,omitempty"`
	Department *DepartmentRef `json:"department,omitempty"`
	Teacher    *TeacherRef    `json:"teacher,omitempty"`
}

// EnrollmentSummary is one enrollment with its class, as nested inside a
// student detail response.
type EnrollmentSummary struct {
	ID         uint          `json:"id"`
	EnrolledAt time.Time     `json:"enrolled_at"`
	Class      *ClassSummary `json:"class,omitempty"`
}

func classSummaryFromRow(row repository.ClassRow) ClassSummary {
	out := ClassSummary{
		ID:         row.ClassID,
		Name:       row.ClassName,
		InviteCode: row.InviteCode,
		Capacity:   row.Capacity,
		Status:     row.Status,
	}
	if row.SubjectID != nil {
		out.Subject = &SubjectRef{ID: *row.SubjectID, Name: deref(row.SubjectName), Code: deref(row.SubjectCode)}
	}
	if row.DepartmentID != nil {
		out.Department = &DepartmentRef{ID: *row.DepartmentID, Name: deref(row.DepartmentName), Code: deref(row.DepartmentCode)}
	}
	if row.TeacherID != nil {
		out.Teacher = &TeacherRef{ID: *row.TeacherID, Name: deref(row.TeacherName), Email: deref(row.TeacherEmail)}
	}
	return out
}

func studentRefFromRow(row repository.StudentRow) StudentRef {
	return StudentRef{ID: row.ID, Name: row.Name, Email: row.Email, Image: row.Image}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

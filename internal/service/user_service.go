package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "academix/internal/errors"
	"academix/internal/model"
	"academix/internal/query"
	"academix/internal/repository"
)

const bcryptCost = 10

// TeacherDetail is the nested aggregate returned for role=teacher users.
type TeacherDetail struct {
	User        model.User      `json:"user"`
	Classes     []ClassSummary  `json:"classes"`
	Subjects    []SubjectRef    `json:"subjects"`
	Departments []DepartmentRef `json:"departments"`
	Totals      TeacherTotals   `json:"totals"`
}

// TeacherTotals counts the distinct children of a teacher detail.
type TeacherTotals struct {
	Classes     int `json:"classes"`
	Subjects    int `json:"subjects"`
	Departments int `json:"departments"`
}

// StudentDetail is the nested aggregate returned for role=student users.
// Classes appear only inside enrollments, never as a top-level key; the
// two role branches are structurally distinct types on purpose.
type StudentDetail struct {
	User        model.User          `json:"user"`
	Enrollments []EnrollmentSummary `json:"enrollments"`
	Subjects    []SubjectRef        `json:"subjects"`
	Totals      StudentTotals       `json:"totals"`
}

// StudentTotals counts the distinct children of a student detail. Classes
// counts distinct classes across enrollments.
type StudentTotals struct {
	Enrollments int `json:"enrollments"`
	Classes     int `json:"classes"`
	Subjects    int `json:"subjects"`
}

// CreateUserInput carries the fields accepted by user creation.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Image    string
}

// UserService exposes user domain operations.
type UserService interface {
	List(ctx context.Context, search, role string, p query.Params) ([]model.User, query.Meta, error)
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
	// GetDetail returns *TeacherDetail, *StudentDetail or *model.User
	// depending on the fetched user's role.
	GetDetail(ctx context.Context, id string) (interface{}, error)
}

type userService struct {
	users       repository.UserRepository
	classes     repository.ClassRepository
	enrollments repository.EnrollmentRepository
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository, classes repository.ClassRepository, enrollments repository.EnrollmentRepository) UserService {
	return &userService{users: users, classes: classes, enrollments: enrollments}
}

func (s *userService) List(ctx context.Context, search, role string, p query.Params) ([]model.User, query.Meta, error) {
	f := query.NewFilter().
		Search(search, "name", "email").
		Equal("role", role)
	return s.users.List(ctx, f, p)
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	role := model.UserRole(in.Role)
	if role == "" {
		role = model.RoleStudent
	}
	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		Role:         role,
		Image:        in.Image,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetDetail confirms the user exists, then dispatches on role. Admins and
// any unrecognized role get the bare record.
func (s *userService) GetDetail(ctx context.Context, id string) (interface{}, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	switch user.Role {
	case model.RoleTeacher:
		return s.teacherDetail(ctx, user)
	case model.RoleStudent:
		return s.studentDetail(ctx, user)
	default:
		return user, nil
	}
}

// teacherDetail folds the teacher's class rows into distinct subjects and
// departments. Each child relation keeps its own key map so fan-out in
// one never inflates the other.
func (s *userService) teacherDetail(ctx context.Context, user *model.User) (*TeacherDetail, error) {
	rows, err := s.classes.RowsByTeacher(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	detail := &TeacherDetail{
		User:        *user,
		Classes:     make([]ClassSummary, 0, len(rows)),
		Subjects:    []SubjectRef{},
		Departments: []DepartmentRef{},
	}
	seenSubjects := make(map[uint]bool)
	seenDepartments := make(map[uint]bool)
	for _, row := range rows {
		summary := classSummaryFromRow(row)
		summary.Teacher = nil // redundant under the teacher's own detail
		detail.Classes = append(detail.Classes, summary)
		if row.SubjectID != nil && !seenSubjects[*row.SubjectID] {
			seenSubjects[*row.SubjectID] = true
			detail.Subjects = append(detail.Subjects, *summary.Subject)
		}
		if row.DepartmentID != nil && !seenDepartments[*row.DepartmentID] {
			seenDepartments[*row.DepartmentID] = true
			detail.Departments = append(detail.Departments, *summary.Department)
		}
	}
	detail.Totals = TeacherTotals{
		Classes:     len(detail.Classes),
		Subjects:    len(detail.Subjects),
		Departments: len(detail.Departments),
	}
	return detail, nil
}

// studentDetail folds the student's enrollment rows; distinct subjects
// surface top-level, distinct classes are counted in totals.
func (s *userService) studentDetail(ctx context.Context, user *model.User) (*StudentDetail, error) {
	rows, err := s.enrollments.RowsByStudent(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	detail := &StudentDetail{
		User:        *user,
		Enrollments: make([]EnrollmentSummary, 0, len(rows)),
		Subjects:    []SubjectRef{},
	}
	seenClasses := make(map[uint]bool)
	seenSubjects := make(map[uint]bool)
	for _, row := range rows {
		summary := EnrollmentSummary{ID: row.EnrollmentID, EnrolledAt: row.EnrolledAt}
		if row.ClassID != nil {
			class := ClassSummary{ID: *row.ClassID, Name: deref(row.ClassName), Status: deref(row.ClassStatus)}
			if row.SubjectID != nil {
				class.Subject = &SubjectRef{ID: *row.SubjectID, Name: deref(row.SubjectName), Code: deref(row.SubjectCode)}
			}
			if row.DepartmentID != nil {
				class.Department = &DepartmentRef{ID: *row.DepartmentID, Name: deref(row.DepartmentName), Code: deref(row.DepartmentCode)}
			}
			if row.TeacherID != nil {
				class.Teacher = &TeacherRef{ID: *row.TeacherID, Name: deref(row.TeacherName)}
			}
			summary.Class = &class
			seenClasses[*row.ClassID] = true
		}
		detail.Enrollments = append(detail.Enrollments, summary)
		if row.SubjectID != nil && !seenSubjects[*row.SubjectID] {
			seenSubjects[*row.SubjectID] = true
			detail.Subjects = append(detail.Subjects, SubjectRef{ID: *row.SubjectID, Name: deref(row.SubjectName), Code: deref(row.SubjectCode)})
		}
	}
	detail.Totals = StudentTotals{
		Enrollments: len(detail.Enrollments),
		Classes:     len(seenClasses),
		Subjects:    len(detail.Subjects),
	}
	return detail, nil
}

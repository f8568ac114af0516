package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "academix/internal/errors"
	"academix/internal/model"
	"academix/internal/query"
	"academix/internal/repository"
)

// EnrollmentService exposes enrollment domain operations.
type EnrollmentService interface {
	List(ctx context.Context, studentID string, classID uint, p query.Params) ([]model.Enrollment, query.Meta, error)
	Create(ctx context.Context, studentID string, classID uint) (*model.Enrollment, error)
}

type enrollmentService struct {
	enrollments repository.EnrollmentRepository
	classes     repository.ClassRepository
	users       repository.UserRepository
}

// NewEnrollmentService builds an EnrollmentService.
func NewEnrollmentService(
	enrollments repository.EnrollmentRepository,
	classes repository.ClassRepository,
	users repository.UserRepository,
) EnrollmentService {
	return &enrollmentService{enrollments: enrollments, classes: classes, users: users}
}

func (s *enrollmentService) List(ctx context.Context, studentID string, classID uint, p query.Params) ([]model.Enrollment, query.Meta, error) {
	f := query.NewFilter().
		Equal("student_id", studentID).
		EqualID("class_id", classID)
	return s.enrollments.List(ctx, f, p)
}

// Create enrolls a student after checking referents, duplicates and
// capacity. The duplicate check races with concurrent enrolls; the
// composite unique index is the real guarantee.
func (s *enrollmentService) Create(ctx context.Context, studentID string, classID uint) (*model.Enrollment, error) {
	if _, err := s.users.FindByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	class, err := s.classes.FindByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, err
	}

	exists, err := s.enrollments.Exists(ctx, studentID, classID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	enrolled, err := s.enrollments.CountByClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	if class.Capacity > 0 && enrolled >= int64(class.Capacity) {
		return nil, apperrors.ErrClassFull
	}

	enrollment := &model.Enrollment{StudentID: studentID, ClassID: classID}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyEnrolled
		}
		return nil, err
	}
	return enrollment, nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "academix/internal/errors"
	"academix/internal/model"
	"academix/internal/query"
	"academix/internal/repository"
)

const inviteCodeLength = 10

// ClassDetail is the composite class response: the class joined to its
// subject (and that subject's department), teacher, and the class's
// distinct enrolled students.
type ClassDetail struct {
	Class      ClassSummary   `json:"class"`
	Department *DepartmentRef `json:"department,omitempty"`
	Students   []StudentRef   `json:"students"`
	Totals     ClassTotals    `json:"totals"`
}

// ClassTotals counts the distinct children of a class detail.
type ClassTotals struct {
	Students int `json:"students"`
}

// CreateClassInput carries the fields accepted by class creation. The
// invite code is always generated server-side.
type CreateClassInput struct {
	SubjectID   uint
	TeacherID   string
	Name        string
	Capacity    int
	BannerURL   string
	BannerColor string
	Schedules   []model.ClassSchedule
}

// ClassService exposes class domain operations.
type ClassService interface {
	List(ctx context.Context, search string, subjectID uint, teacherID, status string, p query.Params) ([]model.Class, query.Meta, error)
	Create(ctx context.Context, in CreateClassInput) (*model.Class, error)
	GetDetail(ctx context.Context, id uint) (*ClassDetail, error)
}

type classService struct {
	classes     repository.ClassRepository
	subjects    repository.SubjectRepository
	users       repository.UserRepository
	enrollments repository.EnrollmentRepository
}

// NewClassService builds a ClassService.
func NewClassService(
	classes repository.ClassRepository,
	subjects repository.SubjectRepository,
	users repository.UserRepository,
	enrollments repository.EnrollmentRepository,
) ClassService {
	return &classService{classes: classes, subjects: subjects, users: users, enrollments: enrollments}
}

func (s *classService) List(ctx context.Context, search string, subjectID uint, teacherID, status string, p query.Params) ([]model.Class, query.Meta, error) {
	f := query.NewFilter().
		Search(search, "name").
		EqualID("subject_id", subjectID).
		Equal("teacher_id", teacherID).
		Equal("status", status)
	return s.classes.List(ctx, f, p)
}

func (s *classService) Create(ctx context.Context, in CreateClassInput) (*model.Class, error) {
	if _, err := s.subjects.FindByID(ctx, in.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, in.TeacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	capacity := in.Capacity
	if capacity <= 0 {
		capacity = 30
	}
	class := &model.Class{
		SubjectID:   in.SubjectID,
		TeacherID:   in.TeacherID,
		Name:        in.Name,
		InviteCode:  newInviteCode(),
		Capacity:    capacity,
		Status:      model.ClassStatusActive,
		BannerURL:   in.BannerURL,
		BannerColor: in.BannerColor,
	}
	if len(in.Schedules) > 0 {
		payload, err := json.Marshal(in.Schedules)
		if err != nil {
			return nil, err
		}
		class.Schedules = datatypes.JSON(payload)
	}
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// GetDetail runs one wide join for the class and a grouped query for its
// students; subject and teacher come from the same flat row and are
// surfaced independently.
func (s *classService) GetDetail(ctx context.Context, id uint) (*ClassDetail, error) {
	row, err := s.classes.RowByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, err
	}

	students, err := s.users.DistinctStudentsByClass(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := classSummaryFromRow(*row)
	detail := &ClassDetail{
		Class:      summary,
		Department: summary.Department,
		Students:   make([]StudentRef, 0, len(students)),
	}
	detail.Class.Department = nil
	for _, st := range students {
		detail.Students = append(detail.Students, studentRefFromRow(st))
	}
	detail.Totals = ClassTotals{Students: len(detail.Students)}
	return detail, nil
}

// newInviteCode derives a short random join code. UUIDs are the project's
// randomness source; ten hex characters keep codes typeable.
func newInviteCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:inviteCodeLength])
}

package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "academix/internal/errors"
	"academix/internal/model"
	"academix/internal/query"
	"academix/internal/repository"
)

// SubjectOverview is a subject row with its grouped class count, as
// nested inside a department detail.
type SubjectOverview struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	ClassCount  int64  `json:"class_count"`
}

// DepartmentTotals counts the distinct children of a department detail.
type DepartmentTotals struct {
	Subjects int `json:"subjects"`
	Classes  int `json:"classes"`
	Students int `json:"students"`
}

// DepartmentDetail is the composite department response: the department
// plus its subjects (with class counts), classes and distinct enrolled
// students.
type DepartmentDetail struct {
	Department model.Department  `json:"department"`
	Subjects   []SubjectOverview `json:"subjects"`
	Classes    []ClassSummary    `json:"classes"`
	Students   []StudentRef      `json:"students"`
	Totals     DepartmentTotals  `json:"totals"`
}

// CreateDepartmentInput carries the fields accepted by department creation.
type CreateDepartmentInput struct {
	Code        string
	Name        string
	Description string
}

// DepartmentService exposes department domain operations.
type DepartmentService interface {
	List(ctx context.Context, search string, p query.Params) ([]model.Department, query.Meta, error)
	Create(ctx context.Context, in CreateDepartmentInput) (*model.Department, error)
	GetDetail(ctx context.Context, id uint) (*DepartmentDetail, error)
}

type departmentService struct {
	departments repository.DepartmentRepository
	subjects    repository.SubjectRepository
	classes     repository.ClassRepository
	users       repository.UserRepository
}

// NewDepartmentService builds a DepartmentService.
func NewDepartmentService(
	departments repository.DepartmentRepository,
	subjects repository.SubjectRepository,
	classes repository.ClassRepository,
	users repository.UserRepository,
) DepartmentService {
	return &departmentService{
		departments: departments,
		subjects:    subjects,
		classes:     classes,
		users:       users,
	}
}

func (s *departmentService) List(ctx context.Context, search string, p query.Params) ([]model.Department, query.Meta, error) {
	f := query.NewFilter().Search(search, "name", "code")
	return s.departments.List(ctx, f, p)
}

func (s *departmentService) Create(ctx context.Context, in CreateDepartmentInput) (*model.Department, error) {
	department := &model.Department{
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := s.departments.Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// GetDetail confirms the department exists, then fans out the three
// independent child fetches. All must succeed before a response is
// assembled; a single failure fails the request.
func (s *departmentService) GetDetail(ctx context.Context, id uint) (*DepartmentDetail, error) {
	department, err := s.departments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, err
	}

	var (
		subjectRows []repository.SubjectClassCount
		classRows   []repository.ClassRow
		studentRows []repository.StudentRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		subjectRows, err = s.subjects.WithClassCountsByDepartment(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		classRows, err = s.classes.RowsByDepartment(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		studentRows, err = s.users.DistinctStudentsByDepartment(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := &DepartmentDetail{
		Department: *department,
		Subjects:   make([]SubjectOverview, 0, len(subjectRows)),
		Classes:    make([]ClassSummary, 0, len(classRows)),
		Students:   make([]StudentRef, 0, len(studentRows)),
	}
	for _, row := range subjectRows {
		detail.Subjects = append(detail.Subjects, SubjectOverview{
			ID:          row.ID,
			Name:        row.Name,
			Code:        row.Code,
			Description: row.Description,
			ClassCount:  row.ClassCount,
		})
	}
	// One row per class is expected here, but folding by key keeps the
	// invariant even if the join ever fans out.
	seenClasses := make(map[uint]bool)
	for _, row := range classRows {
		if seenClasses[row.ClassID] {
			continue
		}
		seenClasses[row.ClassID] = true
		summary := classSummaryFromRow(row)
		summary.Department = nil // implied by the enclosing department
		detail.Classes = append(detail.Classes, summary)
	}
	for _, row := range studentRows {
		detail.Students = append(detail.Students, studentRefFromRow(row))
	}
	detail.Totals = DepartmentTotals{
		Subjects: len(detail.Subjects),
		Classes:  len(detail.Classes),
		Students: len(detail.Students),
	}
	return detail, nil
}

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

// SubjectDetail is the composite subject response: the subject with its
// department plus the subject's classes and their teachers.
type SubjectDetail struct {
	Subject model.Subject  `json:"subject"`
	Classes []ClassSummary `json:"classes"`
	Totals  SubjectTotals  `json:"totals"`
}

// SubjectTotals counts the distinct children of a subject detail.
type SubjectTotals struct {
	Classes int `json:"classes"`
}

// CreateSubjectInput carries the fields accepted by subject creation.
type CreateSubjectInput struct {
	DepartmentID uint
	Name         string
	Code         string
	Description  string
}

// SubjectService exposes subject domain operations.
type SubjectService interface {
	List(ctx context.Context, search string, departmentID uint, p query.Params) ([]model.Subject, query.Meta, error)
	Create(ctx context.Context, in CreateSubjectInput) (*model.Subject, error)
	GetDetail(ctx context.Context, id uint) (*SubjectDetail, error)
}

type subjectService struct {
	subjects    repository.SubjectRepository
	departments repository.DepartmentRepository
	classes     repository.ClassRepository
}

// NewSubjectService builds a SubjectService.
func NewSubjectService(
	subjects repository.SubjectRepository,
	departments repository.DepartmentRepository,
	classes repository.ClassRepository,
) SubjectService {
	return &subjectService{subjects: subjects, departments: departments, classes: classes}
}

func (s *subjectService) List(ctx context.Context, search string, departmentID uint, p query.Params) ([]model.Subject, query.Meta, error) {
	f := query.NewFilter().
		Search(search, "name", "code").
		EqualID("department_id", departmentID)
	return s.subjects.List(ctx, f, p)
}

func (s *subjectService) Create(ctx context.Context, in CreateSubjectInput) (*model.Subject, error) {
	if _, err := s.departments.FindByID(ctx, in.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, err
	}
	subject := &model.Subject{
		DepartmentID: in.DepartmentID,
		Name:         in.Name,
		Code:         in.Code,
		Description:  in.Description,
	}
	if err := s.subjects.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *subjectService) GetDetail(ctx context.Context, id uint) (*SubjectDetail, error) {
	subject, err := s.subjects.FindByIDWithDepartment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, err
	}

	rows, err := s.classes.RowsBySubject(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &SubjectDetail{
		Subject: *subject,
		Classes: make([]ClassSummary, 0, len(rows)),
	}
	seen := make(map[uint]bool)
	for _, row := range rows {
		if seen[row.ClassID] {
			continue
		}
		seen[row.ClassID] = true
		summary := classSummaryFromRow(row)
		summary.Subject = nil    // implied by the enclosing subject
		summary.Department = nil // carried on the subject itself
		detail.Classes = append(detail.Classes, summary)
	}
	detail.Totals = SubjectTotals{Classes: len(detail.Classes)}
	return detail, nil
}

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"academix/internal/model"
	"academix/internal/query"
)

// SubjectClassCount is a subject row carrying its grouped class count.
type SubjectClassCount struct {
	ID           uint
	DepartmentID uint
	Name         string
	Code         string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ClassCount   int64
}

// SubjectRepository defines subject persistence operations.
type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	FindByID(ctx context.Context, id uint) (*model.Subject, error)
	FindByIDWithDepartment(ctx context.Context, id uint) (*model.Subject, error)
	List(ctx context.Context, f *query.Filter, p query.Params) ([]model.Subject, query.Meta, error)
	WithClassCountsByDepartment(ctx context.Context, departmentID uint) ([]SubjectClassCount, error)
	Count(ctx context.Context) (int64, error)
}

type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository builds a GORM-backed repository.
func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepository) FindByID(ctx context.Context, id uint) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.WithContext(ctx).First(&subject, id).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepository) FindByIDWithDepartment(ctx context.Context, id uint) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.WithContext(ctx).Preload("Department").First(&subject, id).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepository) List(ctx context.Context, f *query.Filter, p query.Params) ([]model.Subject, query.Meta, error) {
	db := f.Apply(r.db.WithContext(ctx).Model(&model.Subject{})).Order("created_at DESC")
	var subjects []model.Subject
	meta, err := query.Paginate(db, p, &subjects)
	if err != nil {
		return nil, query.Meta{}, err
	}
	return subjects, meta, nil
}

// WithClassCountsByDepartment lists the department's subjects with a
// per-subject class count. The left join keeps class-less subjects in the
// result with a zero count.
func (r *subjectRepository) WithClassCountsByDepartment(ctx context.Context, departmentID uint) ([]SubjectClassCount, error) {
	var rows []SubjectClassCount
	err := r.db.WithContext(ctx).
		Table("subjects").
		Select("subjects.id, subjects.department_id, subjects.name, subjects.code, subjects.description, subjects.created_at, subjects.updated_at, COUNT(classes.id) AS class_count").
		Joins("LEFT JOIN classes ON classes.subject_id = subjects.id").
		Where("subjects.department_id = ?", departmentID).
		Group("subjects.id").
		Order("subjects.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *subjectRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Subject{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

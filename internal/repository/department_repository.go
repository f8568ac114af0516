package repository

import (
	"context"

	"gorm.io/gorm"

	"academix/internal/model"
	"academix/internal/query"
)

// DepartmentRepository defines department persistence operations.
type DepartmentRepository interface {
	Create(ctx context.Context, department *model.Department) error
	FindByID(ctx context.Context, id uint) (*model.Department, error)
	List(ctx context.Context, f *query.Filter, p query.Params) ([]model.Department, query.Meta, error)
	Count(ctx context.Context) (int64, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository builds a GORM-backed repository.
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, department *model.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}

func (r *departmentRepository) FindByID(ctx context.Context, id uint) (*model.Department, error) {
	var department model.Department
	if err := r.db.WithContext(ctx).First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) List(ctx context.Context, f *query.Filter, p query.Params) ([]model.Department, query.Meta, error) {
	db := f.Apply(r.db.WithContext(ctx).Model(&model.Department{})).Order("created_at DESC")
	var departments []model.Department
	meta, err := query.Paginate(db, p, &departments)
	if err != nil {
		return nil, query.Meta{}, err
	}
	return departments, meta, nil
}

func (r *departmentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Department{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

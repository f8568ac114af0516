package repository

import (
	"context"

	"gorm.io/gorm"

	"academix/internal/model"
	"academix/internal/query"
)

// StudentRow is one deduplicated student identity row produced by the
// grouped enrollment joins.
type StudentRow struct {
	ID    string
	Name  string
	Email string
	Image string
}

// RoleCount is one bucket of the users-by-role breakdown.
type RoleCount struct {
	Role  string
	Count int64
}

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, f *query.Filter, p query.Params) ([]model.User, query.Meta, error)
	DistinctStudentsByDepartment(ctx context.Context, departmentID uint) ([]StudentRow, error)
	DistinctStudentsByClass(ctx context.Context, classID uint) ([]StudentRow, error)
	CountByRole(ctx context.Context) ([]RoleCount, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, f *query.Filter, p query.Params) ([]model.User, query.Meta, error) {
	db := f.Apply(r.db.WithContext(ctx).Model(&model.User{})).Order("created_at DESC")
	var users []model.User
	meta, err := query.Paginate(db, p, &users)
	if err != nil {
		return nil, query.Meta{}, err
	}
	return users, meta, nil
}

const studentRowSelect = "users.id, users.name, users.email, users.image"

// DistinctStudentsByDepartment returns each student enrolled in any class
// under any subject of the department exactly once. Grouping by the
// identity columns collapses the enrollment fan-out.
func (r *userRepository) DistinctStudentsByDepartment(ctx context.Context, departmentID uint) ([]StudentRow, error) {
	var rows []StudentRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select(studentRowSelect).
		Joins("JOIN enrollments ON enrollments.student_id = users.id").
		Joins("JOIN classes ON classes.id = enrollments.class_id").
		Joins("JOIN subjects ON subjects.id = classes.subject_id").
		Where("subjects.department_id = ? AND users.role = ?", departmentID, model.RoleStudent).
		Group(studentRowSelect).
		Order("users.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DistinctStudentsByClass returns each student enrolled in the class once.
func (r *userRepository) DistinctStudentsByClass(ctx context.Context, classID uint) ([]StudentRow, error) {
	var rows []StudentRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select(studentRowSelect).
		Joins("JOIN enrollments ON enrollments.student_id = users.id").
		Where("enrollments.class_id = ? AND users.role = ?", classID, model.RoleStudent).
		Group(studentRowSelect).
		Order("users.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *userRepository) CountByRole(ctx context.Context) ([]RoleCount, error) {
	var rows []RoleCount
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

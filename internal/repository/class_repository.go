package repository

import (
	"context"

	"gorm.io/gorm"

	"academix/internal/model"
	"academix/internal/query"
)

// ClassRow is one flat row of a class left-joined to its subject chain
// and teacher. Joined columns are pointers: a nil key means that join
// matched nothing, and the flattener skips it.
type ClassRow struct {
	ClassID        uint
	ClassName      string
	InviteCode     string
	Capacity       int
	Status         string
	SubjectID      *uint
	SubjectName    *string
	SubjectCode    *string
	DepartmentID   *uint
	DepartmentName *string
	DepartmentCode *string
	TeacherID      *string
	TeacherName    *string
	TeacherEmail   *string
}

const classRowSelect = "classes.id AS class_id, classes.name AS class_name, classes.invite_code, classes.capacity, classes.status, " +
	"subjects.id AS subject_id, subjects.name AS subject_name, subjects.code AS subject_code, " +
	"departments.id AS department_id, departments.name AS department_name, departments.code AS department_code, " +
	"teachers.id AS teacher_id, teachers.name AS teacher_name, teachers.email AS teacher_email"

// ClassRepository defines class persistence operations.
type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	FindByID(ctx context.Context, id uint) (*model.Class, error)
	List(ctx context.Context, f *query.Filter, p query.Params) ([]model.Class, query.Meta, error)
	RowsByDepartment(ctx context.Context, departmentID uint) ([]ClassRow, error)
	RowsBySubject(ctx context.Context, subjectID uint) ([]ClassRow, error)
	RowsByTeacher(ctx context.Context, teacherID string) ([]ClassRow, error)
	RowByID(ctx context.Context, id uint) (*ClassRow, error)
	Count(ctx context.Context) (int64, error)
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository builds a GORM-backed repository.
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) FindByID(ctx context.Context, id uint) (*model.Class, error) {
	var class model.Class
	if err := r.db.WithContext(ctx).First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) List(ctx context.Context, f *query.Filter, p query.Params) ([]model.Class, query.Meta, error) {
	db := f.Apply(r.db.WithContext(ctx).Model(&model.Class{})).Order("created_at DESC")
	var classes []model.Class
	meta, err := query.Paginate(db, p, &classes)
	if err != nil {
		return nil, query.Meta{}, err
	}
	return classes, meta, nil
}

func (r *classRepository) rowQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("classes").
		Select(classRowSelect).
		Joins("LEFT JOIN subjects ON subjects.id = classes.subject_id").
		Joins("LEFT JOIN departments ON departments.id = subjects.department_id").
		Joins("LEFT JOIN users AS teachers ON teachers.id = classes.teacher_id")
}

// RowsByDepartment returns flat rows for every class under any subject of
// the department.
func (r *classRepository) RowsByDepartment(ctx context.Context, departmentID uint) ([]ClassRow, error) {
	var rows []ClassRow
	err := r.rowQuery(ctx).
		Where("subjects.department_id = ?", departmentID).
		Order("classes.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RowsBySubject returns flat rows for the subject's classes.
func (r *classRepository) RowsBySubject(ctx context.Context, subjectID uint) ([]ClassRow, error) {
	var rows []ClassRow
	err := r.rowQuery(ctx).
		Where("classes.subject_id = ?", subjectID).
		Order("classes.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RowsByTeacher returns flat rows for every class the teacher teaches.
func (r *classRepository) RowsByTeacher(ctx context.Context, teacherID string) ([]ClassRow, error) {
	var rows []ClassRow
	err := r.rowQuery(ctx).
		Where("classes.teacher_id = ?", teacherID).
		Order("classes.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RowByID returns the single joined row for one class, or
// gorm.ErrRecordNotFound when the class does not exist.
func (r *classRepository) RowByID(ctx context.Context, id uint) (*ClassRow, error) {
	var rows []ClassRow
	err := r.rowQuery(ctx).
		Where("classes.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *classRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Class{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

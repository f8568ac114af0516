package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"academix/internal/model"
	"academix/internal/query"
)

// EnrollmentRow is one flat row of a student's enrollment left-joined
// through class, subject, department and the class teacher.
type EnrollmentRow struct {
	EnrollmentID   uint
	EnrolledAt     time.Time
	ClassID        *uint
	ClassName      *string
	ClassStatus    *string
	SubjectID      *uint
	SubjectName    *string
	SubjectCode    *string
	DepartmentID   *uint
	DepartmentName *string
	DepartmentCode *string
	TeacherID      *string
	TeacherName    *string
}

// EnrollmentRepository defines enrollment persistence operations.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	List(ctx context.Context, f *query.Filter, p query.Params) ([]model.Enrollment, query.Meta, error)
	Exists(ctx context.Context, studentID string, classID uint) (bool, error)
	CountByClass(ctx context.Context, classID uint) (int64, error)
	RowsByStudent(ctx context.Context, studentID string) ([]EnrollmentRow, error)
	Count(ctx context.Context) (int64, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository builds a GORM-backed repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepository) List(ctx context.Context, f *query.Filter, p query.Params) ([]model.Enrollment, query.Meta, error) {
	db := f.Apply(r.db.WithContext(ctx).Model(&model.Enrollment{})).Order("created_at DESC")
	var enrollments []model.Enrollment
	meta, err := query.Paginate(db, p, &enrollments)
	if err != nil {
		return nil, query.Meta{}, err
	}
	return enrollments, meta, nil
}

func (r *enrollmentRepository) Exists(ctx context.Context, studentID string, classID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("student_id = ? AND class_id = ?", studentID, classID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *enrollmentRepository) CountByClass(ctx context.Context, classID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("class_id = ?", classID).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}

// RowsByStudent returns every enrollment of the student as a flat
// left-join row through class, subject, department and teacher.
func (r *enrollmentRepository) RowsByStudent(ctx context.Context, studentID string) ([]EnrollmentRow, error) {
	var rows []EnrollmentRow
	err := r.db.WithContext(ctx).
		Table("enrollments").
		Select("enrollments.id AS enrollment_id, enrollments.created_at AS enrolled_at, "+
			"classes.id AS class_id, classes.name AS class_name, classes.status AS class_status, "+
			"subjects.id AS subject_id, subjects.name AS subject_name, subjects.code AS subject_code, "+
			"departments.id AS department_id, departments.name AS department_name, departments.code AS department_code, "+
			"teachers.id AS teacher_id, teachers.name AS teacher_name").
		Joins("LEFT JOIN classes ON classes.id = enrollments.class_id").
		Joins("LEFT JOIN subjects ON subjects.id = classes.subject_id").
		Joins("LEFT JOIN departments ON departments.id = subjects.department_id").
		Joins("LEFT JOIN users AS teachers ON teachers.id = classes.teacher_id").
		Where("enrollments.student_id = ?", studentID).
		Order("enrollments.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *enrollmentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Enrollment{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"academix/internal/auth"
	"academix/internal/model"
	"academix/internal/query"
	"academix/internal/repository"
)

// Mock repositories shared by the service tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, f *query.Filter, p query.Params) ([]model.User, query.Meta, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, query.Meta{}, args.Error(2)
	}
	return args.Get(0).([]model.User), args.Get(1).(query.Meta), args.Error(2)
}

func (m *MockUserRepository) DistinctStudentsByDepartment(ctx context.Context, departmentID uint) ([]repository.StudentRow, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StudentRow), args.Error(1)
}

func (m *MockUserRepository) DistinctStudentsByClass(ctx context.Context, classID uint) ([]repository.StudentRow, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StudentRow), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context) ([]repository.RoleCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RoleCount), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) Create(ctx context.Context, department *model.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) FindByID(ctx context.Context, id uint) (*model.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Department), args.Error(1)
}

func (m *MockDepartmentRepository) List(ctx context.Context, f *query.Filter, p query.Params) ([]model.Department, query.Meta, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, query.Meta{}, args.Error(2)
	}
	return args.Get(0).([]model.Department), args.Get(1).(query.Meta), args.Error(2)
}

func (m *MockDepartmentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockSubjectRepository struct {
	mock.Mock
}

func (m *MockSubjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}

func (m *MockSubjectRepository) FindByID(ctx context.Context, id uint) (*model.Subject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subject), args.Error(1)
}

func (m *MockSubjectRepository) FindByIDWithDepartment(ctx context.Context, id uint) (*model.Subject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subject), args.Error(1)
}

func (m *MockSubjectRepository) List(ctx context.Context, f *query.Filter, p query.Params) ([]model.Subject, query.Meta, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, query.Meta{}, args.Error(2)
	}
	return args.Get(0).([]model.Subject), args.Get(1).(query.Meta), args.Error(2)
}

func (m *MockSubjectRepository) WithClassCountsByDepartment(ctx context.Context, departmentID uint) ([]repository.SubjectClassCount, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.SubjectClassCount), args.Error(1)
}

func (m *MockSubjectRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockClassRepository struct {
	mock.Mock
}

func (m *MockClassRepository) Create(ctx context.Context, class *model.Class) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockClassRepository) FindByID(ctx context.Context, id uint) (*model.Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Class), args.Error(1)
}

func (m *MockClassRepository) List(ctx context.Context, f *query.Filter, p query.Params) ([]model.Class, query.Meta, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, query.Meta{}, args.Error(2)
	}
	return args.Get(0).([]model.Class), args.Get(1).(query.Meta), args.Error(2)
}

func (m *MockClassRepository) RowsByDepartment(ctx context.Context, departmentID uint) ([]repository.ClassRow, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ClassRow), args.Error(1)
}

func (m *MockClassRepository) RowsBySubject(ctx context.Context, subjectID uint) ([]repository.ClassRow, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ClassRow), args.Error(1)
}

func (m *MockClassRepository) RowsByTeacher(ctx context.Context, teacherID string) ([]repository.ClassRow, error) {
	args := m.Called(ctx, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ClassRow), args.Error(1)
}

func (m *MockClassRepository) RowByID(ctx context.Context, id uint) (*repository.ClassRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ClassRow), args.Error(1)
}

func (m *MockClassRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) Create(ctx context.Context, enrollment *model.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) List(ctx context.Context, f *query.Filter, p query.Params) ([]model.Enrollment, query.Meta, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, query.Meta{}, args.Error(2)
	}
	return args.Get(0).([]model.Enrollment), args.Get(1).(query.Meta), args.Error(2)
}

func (m *MockEnrollmentRepository) Exists(ctx context.Context, studentID string, classID uint) (bool, error) {
	args := m.Called(ctx, studentID, classID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEnrollmentRepository) CountByClass(ctx context.Context, classID uint) (int64, error) {
	args := m.Called(ctx, classID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEnrollmentRepository) RowsByStudent(ctx context.Context, studentID string) ([]repository.EnrollmentRow, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EnrollmentRow), args.Error(1)
}

func (m *MockEnrollmentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreSession(ctx context.Context, sessionID, userID, role string, ttl time.Duration) error {
	args := m.Called(ctx, sessionID, userID, role, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetSession(ctx context.Context, sessionID string) (*auth.SessionRecord, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.SessionRecord), args.Error(1)
}

func (m *MockTokenStore) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// uintPtr and strPtr build the nullable join-row columns in tests.
func uintPtr(v uint) *uint {
	return &v
}

func strPtr(v string) *string {
	return &v
}

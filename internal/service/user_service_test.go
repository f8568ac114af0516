package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "academix/internal/errors"
	"academix/internal/model"
	"academix/internal/repository"
)

func TestUserServiceGetDetailNotFound(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(users, new(MockClassRepository), new(MockEnrollmentRepository))

	_, err := svc.GetDetail(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	users.AssertExpectations(t)
}

func TestUserServiceGetDetailAdminReturnsBareUser(t *testing.T) {
	users := new(MockUserRepository)
	classes := new(MockClassRepository)
	enrollments := new(MockEnrollmentRepository)

	admin := &model.User{ID: "u-admin", Name: "Root", Role: model.RoleAdmin}
	users.On("FindByID", mock.Anything, "u-admin").Return(admin, nil)

	svc := NewUserService(users, classes, enrollments)

	detail, err := svc.GetDetail(context.Background(), "u-admin")
	require.NoError(t, err)
	assert.Equal(t, admin, detail)
	classes.AssertNotCalled(t, "RowsByTeacher", mock.Anything, mock.Anything)
	enrollments.AssertNotCalled(t, "RowsByStudent", mock.Anything, mock.Anything)
}

func TestUserServiceGetDetailTeacherDeduplicates(t *testing.T) {
	users := new(MockUserRepository)
	classes := new(MockClassRepository)

	teacher := &model.User{ID: "t-1", Name: "Grace", Role: model.RoleTeacher}
	users.On("FindByID", mock.Anything, "t-1").Return(teacher, nil)

	// Three classes across two subjects in one department. Distinct
	// subjects and departments must fold independently of class count.
	rows := []repository.ClassRow{
		{
			ClassID: 1, ClassName: "Algorithms A", Capacity: 30, Status: "active",
			SubjectID: uintPtr(10), SubjectName: strPtr("Algorithms"), SubjectCode: strPtr("CS201"),
			DepartmentID: uintPtr(100), DepartmentName: strPtr("Computer Science"), DepartmentCode: strPtr("CS"),
		},
		{
			ClassID: 2, ClassName: "Algorithms B", Capacity: 30, Status: "active",
			SubjectID: uintPtr(10), SubjectName: strPtr("Algorithms"), SubjectCode: strPtr("CS201"),
			DepartmentID: uintPtr(100), DepartmentName: strPtr("Computer Science"), DepartmentCode: strPtr("CS"),
		},
		{
			ClassID: 3, ClassName: "Databases A", Capacity: 25, Status: "active",
			SubjectID: uintPtr(11), SubjectName: strPtr("Databases"), SubjectCode: strPtr("CS305"),
			DepartmentID: uintPtr(100), DepartmentName: strPtr("Computer Science"), DepartmentCode: strPtr("CS"),
		},
	}
	classes.On("RowsByTeacher", mock.Anything, "t-1").Return(rows, nil)

	svc := NewUserService(users, classes, new(MockEnrollmentRepository))

	got, err := svc.GetDetail(context.Background(), "t-1")
	require.NoError(t, err)
	detail, ok := got.(*TeacherDetail)
	require.True(t, ok)

	assert.Len(t, detail.Classes, 3)
	assert.Len(t, detail.Subjects, 2)
	assert.Len(t, detail.Departments, 1)
	assert.Equal(t, TeacherTotals{Classes: 3, Subjects: 2, Departments: 1}, detail.Totals)
	// First-seen order is preserved.
	assert.Equal(t, uint(10), detail.Subjects[0].ID)
	assert.Equal(t, uint(11), detail.Subjects[1].ID)
	// The teacher ref is dropped from classes under their own detail.
	assert.Nil(t, detail.Classes[0].Teacher)
}

func TestUserServiceGetDetailTeacherSkipsNullJoinKeys(t *testing.T) {
	users := new(MockUserRepository)
	classes := new(MockClassRepository)

	teacher := &model.User{ID: "t-2", Role: model.RoleTeacher}
	users.On("FindByID", mock.Anything, "t-2").Return(teacher, nil)

	// A class whose subject was deleted: null join keys contribute no
	// child entries but the class itself still lists.
	rows := []repository.ClassRow{
		{ClassID: 9, ClassName: "Orphaned", Capacity: 30, Status: "archived"},
	}
	classes.On("RowsByTeacher", mock.Anything, "t-2").Return(rows, nil)

	svc := NewUserService(users, classes, new(MockEnrollmentRepository))

	got, err := svc.GetDetail(context.Background(), "t-2")
	require.NoError(t, err)
	detail := got.(*TeacherDetail)

	assert.Len(t, detail.Classes, 1)
	assert.Empty(t, detail.Subjects)
	assert.Empty(t, detail.Departments)
	assert.Equal(t, TeacherTotals{Classes: 1}, detail.Totals)
}

func TestUserServiceGetDetailStudent(t *testing.T) {
	users := new(MockUserRepository)
	enrollments := new(MockEnrollmentRepository)

	student := &model.User{ID: "s-1", Name: "Ada", Role: model.RoleStudent}
	users.On("FindByID", mock.Anything, "s-1").Return(student, nil)

	rows := []repository.EnrollmentRow{
		{
			EnrollmentID: 1,
			ClassID:      uintPtr(1), ClassName: strPtr("Algorithms A"), ClassStatus: strPtr("active"),
			SubjectID: uintPtr(10), SubjectName: strPtr("Algorithms"), SubjectCode: strPtr("CS201"),
			DepartmentID: uintPtr(100), DepartmentName: strPtr("Computer Science"), DepartmentCode: strPtr("CS"),
			TeacherID: strPtr("t-1"), TeacherName: strPtr("Grace"),
		},
		{
			EnrollmentID: 2,
			ClassID:      uintPtr(2), ClassName: strPtr("Algorithms B"), ClassStatus: strPtr("active"),
			SubjectID: uintPtr(10), SubjectName: strPtr("Algorithms"), SubjectCode: strPtr("CS201"),
		},
	}
	enrollments.On("RowsByStudent", mock.Anything, "s-1").Return(rows, nil)

	svc := NewUserService(users, new(MockClassRepository), enrollments)

	got, err := svc.GetDetail(context.Background(), "s-1")
	require.NoError(t, err)
	detail, ok := got.(*StudentDetail)
	require.True(t, ok)

	assert.Len(t, detail.Enrollments, 2)
	require.NotNil(t, detail.Enrollments[0].Class)
	assert.Equal(t, "Algorithms A", detail.Enrollments[0].Class.Name)
	require.NotNil(t, detail.Enrollments[0].Class.Teacher)
	assert.Equal(t, "Grace", detail.Enrollments[0].Class.Teacher.Name)
	// Same subject across two enrollments surfaces once.
	assert.Len(t, detail.Subjects, 1)
	assert.Equal(t, StudentTotals{Enrollments: 2, Classes: 2, Subjects: 1}, detail.Totals)
}

func TestUserServiceCreateDefaultsRoleAndHashesPassword(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Role == model.RoleStudent && u.PasswordHash != "" && u.PasswordHash != "secret"
	})).Return(nil)

	svc := NewUserService(users, new(MockClassRepository), new(MockEnrollmentRepository))

	user, err := svc.Create(context.Background(), CreateUserInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, user.Role)
	users.AssertExpectations(t)
}

package service

import (
	"context"

	"academix/internal/repository"
)

// StatsOverview is the aggregate entity-count response.
type StatsOverview struct {
	Users       int64            `json:"users"`
	UsersByRole map[string]int64 `json:"users_by_role"`
	Departments int64            `json:"departments"`
	Subjects    int64            `json:"subjects"`
	Classes     int64            `json:"classes"`
	Enrollments int64            `json:"enrollments"`
}

// StatsService exposes the stats endpoint's aggregation.
type StatsService interface {
	Overview(ctx context.Context) (*StatsOverview, error)
}

type statsService struct {
	users       repository.UserRepository
	departments repository.DepartmentRepository
	subjects    repository.SubjectRepository
	classes     repository.ClassRepository
	enrollments repository.EnrollmentRepository
}

// NewStatsService builds a StatsService.
func NewStatsService(
	users repository.UserRepository,
	departments repository.DepartmentRepository,
	subjects repository.SubjectRepository,
	classes repository.ClassRepository,
	enrollments repository.EnrollmentRepository,
) StatsService {
	return &statsService{
		users:       users,
		departments: departments,
		subjects:    subjects,
		classes:     classes,
		enrollments: enrollments,
	}
}

func (s *statsService) Overview(ctx context.Context) (*StatsOverview, error) {
	out := &StatsOverview{UsersByRole: map[string]int64{}}

	var err error
	if out.Users, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if out.Departments, err = s.departments.Count(ctx); err != nil {
		return nil, err
	}
	if out.Subjects, err = s.subjects.Count(ctx); err != nil {
		return nil, err
	}
	if out.Classes, err = s.classes.Count(ctx); err != nil {
		return nil, err
	}
	if out.Enrollments, err = s.enrollments.Count(ctx); err != nil {
		return nil, err
	}

	byRole, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	for _, rc := range byRole {
		out.UsersByRole[rc.Role] = rc.Count
	}
	return out, nil
}

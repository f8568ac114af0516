package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"academix/internal/config"
	"academix/internal/db"
	"academix/internal/model"
	"academix/internal/repository"
	"academix/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Department{},
		&model.Subject{},
		&model.Class{},
		&model.Enrollment{},
		&model.Session{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(gormDB)
	departmentRepo := repository.NewDepartmentRepository(gormDB)
	subjectRepo := repository.NewSubjectRepository(gormDB)
	classRepo := repository.NewClassRepository(gormDB)
	enrollmentRepo := repository.NewEnrollmentRepository(gormDB)

	classService := service.NewClassService(classRepo, subjectRepo, userRepo, enrollmentRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, classRepo, userRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	teachers := make([]*model.User, 0, 2)
	for i := 1; i <= 2; i++ {
		teacher := &model.User{
			Name:         fmt.Sprintf("Teacher %d", i),
			Email:        fmt.Sprintf("teacher%d@academix.test", i),
			Role:         model.RoleTeacher,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, teacher); err != nil {
			log.Fatalf("Failed to create teacher: %v", err)
		}
		teachers = append(teachers, teacher)
	}

	students := make([]*model.User, 0, 6)
	for i := 1; i <= 6; i++ {
		student := &model.User{
			Name:         fmt.Sprintf("Student %d", i),
			Email:        fmt.Sprintf("student%d@academix.test", i),
			Role:         model.RoleStudent,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, student); err != nil {
			log.Fatalf("Failed to create student: %v", err)
		}
		students = append(students, student)
	}
	log.Printf("Seeded %d teachers and %d students", len(teachers), len(students))

	departments := []*model.Department{
		{Code: "CS", Name: "Computer Science", Description: "Computing and software"},
		{Code: "MATH", Name: "Mathematics", Description: "Pure and applied mathematics"},
	}
	for _, d := range departments {
		if err := departmentRepo.Create(ctx, d); err != nil {
			log.Fatalf("Failed to create department: %v", err)
		}
	}

	subjects := []*model.Subject{
		{DepartmentID: departments[0].ID, Name: "Algorithms", Code: "CS201"},
		{DepartmentID: departments[0].ID, Name: "Databases", Code: "CS305"},
		{DepartmentID: departments[1].ID, Name: "Linear Algebra", Code: "MATH210"},
	}
	for _, s := range subjects {
		if err := subjectRepo.Create(ctx, s); err != nil {
			log.Fatalf("Failed to create subject: %v", err)
		}
	}
	log.Printf("Seeded %d departments and %d subjects", len(departments), len(subjects))

	classCount := 0
	for i, subject := range subjects {
		teacher := teachers[i%len(teachers)]
		class, err := classService.Create(ctx, service.CreateClassInput{
			SubjectID: subject.ID,
			TeacherID: teacher.ID,
			Name:      fmt.Sprintf("%s Section A", subject.Name),
			Capacity:  30,
			Schedules: []model.ClassSchedule{
				{Day: "monday", StartTime: "09:00", EndTime: "10:30"},
				{Day: "thursday", StartTime: "09:00", EndTime: "10:30"},
			},
		})
		if err != nil {
			log.Fatalf("Failed to create class: %v", err)
		}
		classCount++

		for j, student := range students {
			if j%len(subjects) != i {
				continue
			}
			if _, err := enrollmentService.Create(ctx, student.ID, class.ID); err != nil {
				log.Fatalf("Failed to enroll student: %v", err)
			}
		}
	}
	log.Printf("Seeded %d classes with enrollments", classCount)
	log.Println("Seed completed")
}

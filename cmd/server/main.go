package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"academix/docs"

	"github.com/labstack/echo/v4"

	"academix/internal/auth"
	"academix/internal/cache"
	"academix/internal/config"
	"academix/internal/db"
	"academix/internal/handler"
	"academix/internal/model"
	"academix/internal/repository"
	"academix/internal/router"
	"academix/internal/service"
)

// @title Academic Administration API
// @version 1.0
// @description CRUD API for users, departments, subjects, classes and enrollments with cookie session authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.HideBanner = true

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Department{},
		&model.Subject{},
		&model.Class{},
		&model.Enrollment{},
		&model.Session{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	departmentRepo := repository.NewDepartmentRepository(gormDB)
	subjectRepo := repository.NewSubjectRepository(gormDB)
	classRepo := repository.NewClassRepository(gormDB)
	enrollmentRepo := repository.NewEnrollmentRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)

	// Auth components
	sessionService := auth.NewSessionService(cfg.SessionSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	authService := service.NewAuthService(userRepo, sessionRepo, sessionService, tokenStore)
	userService := service.NewUserService(userRepo, classRepo, enrollmentRepo)
	departmentService := service.NewDepartmentService(departmentRepo, subjectRepo, classRepo, userRepo)
	subjectService := service.NewSubjectService(subjectRepo, departmentRepo, classRepo)
	classService := service.NewClassService(classRepo, subjectRepo, userRepo, enrollmentRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, classRepo, userRepo)
	statsService := service.NewStatsService(userRepo, departmentRepo, subjectRepo, classRepo, enrollmentRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	subjectHandler := handler.NewSubjectHandler(subjectService)
	classHandler := handler.NewClassHandler(classService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	statsHandler := handler.NewStatsHandler(statsService)

	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		departmentHandler,
		subjectHandler,
		classHandler,
		enrollmentHandler,
		statsHandler,
	)

	// Expired session rows accumulate otherwise; reap them hourly.
	reaperCtx, stopReaper := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-reaperCtx.Done():
				return
			case <-ticker.C:
				if n, err := sessionRepo.DeleteExpired(reaperCtx); err == nil && n > 0 {
					log.Printf("reaped %d expired sessions", n)
				}
			}
		}
	}()

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting, then release the DB pool and
	// Redis connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	stopReaper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = cacheClient.Close()
}

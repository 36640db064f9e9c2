// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package server

import (
	"github.com/kursuslab/kursus/internal/adapter/auth"
	"github.com/kursuslab/kursus/internal/adapter/db"
	"github.com/kursuslab/kursus/internal/adapter/transport"
	"github.com/kursuslab/kursus/internal/usecase"
)

import (
	_ "github.com/lib/pq"
)

// Injectors from wire.go:

// InitializeServer sets up the full HTTP server with all dependencies wired.
func InitializeServer() (*Server, error) {
	config, err := NewConfig()
	if err != nil {
		return nil, err
	}
	client, err := NewEntClient(config)
	if err != nil {
		return nil, err
	}
	userRepository := db.NewUserRepository(client)
	courseRepository := db.NewCourseRepository(client)
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := NewTokenManager(config)
	userService := usecase.NewUserService(userRepository, courseRepository, passwordHasher, tokenManager)
	userHandler := transport.NewUserHandler(userService)
	categoryRepository := db.NewCategoryRepository(client)
	provider := NewThumbnailProvider(config)
	courseService := usecase.NewCourseService(courseRepository, categoryRepository, provider)
	catalogHandler := transport.NewCatalogHandler(courseService)
	lessonRepository := db.NewLessonRepository(client)
	enrollmentRepository := db.NewEnrollmentRepository(client)
	lessonService := usecase.NewLessonService(lessonRepository, courseRepository, enrollmentRepository)
	lessonHandler := transport.NewLessonHandler(lessonService)
	favoriteRepository := db.NewFavoriteRepository(client)
	enrollmentService := usecase.NewEnrollmentService(enrollmentRepository, favoriteRepository, courseRepository)
	enrollmentHandler := transport.NewEnrollmentHandler(enrollmentService)
	validator, err := NewProtoValidator()
	if err != nil {
		return nil, err
	}
	handler := NewHTTPHandler(userHandler, catalogHandler, lessonHandler, enrollmentHandler, tokenManager, validator)
	server := NewServer(config, handler, client)
	return server, nil
}

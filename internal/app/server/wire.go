//go:build wireinject

package server

import (
	"github.com/google/wire"

	adapterauth "github.com/kursuslab/kursus/internal/adapter/auth"
	"github.com/kursuslab/kursus/internal/adapter/db"
	"github.com/kursuslab/kursus/internal/adapter/storage/fake"
	adaptertransport "github.com/kursuslab/kursus/internal/adapter/transport"
	"github.com/kursuslab/kursus/internal/core"
	"github.com/kursuslab/kursus/internal/usecase"
)

// InitializeServer sets up the full HTTP server with all dependencies wired.
func InitializeServer() (*Server, error) {
	wire.Build(
		NewConfig,
		NewEntClient,
		wire.Bind(new(core.UserRepository), new(*db.UserRepository)),
		db.NewUserRepository,
		wire.Bind(new(core.CourseRepository), new(*db.CourseRepository)),
		db.NewCourseRepository,
		wire.Bind(new(core.CategoryRepository), new(*db.CategoryRepository)),
		db.NewCategoryRepository,
		wire.Bind(new(core.LessonRepository), new(*db.LessonRepository)),
		db.NewLessonRepository,
		wire.Bind(new(core.EnrollmentRepository), new(*db.EnrollmentRepository)),
		db.NewEnrollmentRepository,
		wire.Bind(new(core.FavoriteRepository), new(*db.FavoriteRepository)),
		db.NewFavoriteRepository,
		wire.Bind(new(core.ThumbnailStore), new(*fake.Provider)),
		NewThumbnailProvider,
		wire.Bind(new(core.TokenIssuer), new(*adapterauth.TokenManager)),
		NewTokenManager,
		wire.Bind(new(core.PasswordHasher), new(*adapterauth.PasswordHasher)),
		adapterauth.NewPasswordHasher,
		wire.Bind(new(core.UserService), new(*usecase.UserService)),
		usecase.NewUserService,
		wire.Bind(new(core.CourseService), new(*usecase.CourseService)),
		usecase.NewCourseService,
		wire.Bind(new(core.LessonService), new(*usecase.LessonService)),
		usecase.NewLessonService,
		wire.Bind(new(core.EnrollmentService), new(*usecase.EnrollmentService)),
		usecase.NewEnrollmentService,
		adaptertransport.NewUserHandler,
		adaptertransport.NewCatalogHandler,
		adaptertransport.NewLessonHandler,
		adaptertransport.NewEnrollmentHandler,
		NewProtoValidator,
		NewHTTPHandler,
		NewServer,
	)
	return nil, nil
}

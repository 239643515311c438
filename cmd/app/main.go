package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnplatform/config"
	"learnplatform/internal/application/usecase"
	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/repository"
	handlers "learnplatform/internal/transport/http"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to DB")
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Course{},
		&domain.Lesson{},
		&domain.UserCourseProgress{},
		&domain.UserLessonProgress{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate DB")
	}

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	authUseCase := usecase.NewAuthUseCase(userRepo)
	catalogUseCase := usecase.NewCatalogUseCase(courseRepo)
	progressUseCase := usecase.NewProgressUseCase(progressRepo)
	adminUseCase := usecase.NewAdminUseCase(courseRepo, lessonRepo)
	guard := usecase.NewGuard(userRepo)

	router := handlers.NewRouter(
		log,
		handlers.NewAuthHandler(authUseCase),
		handlers.NewCourseHandler(catalogUseCase),
		handlers.NewProgressHandler(progressUseCase),
		handlers.NewAdminCourseHandler(adminUseCase),
		handlers.NewAdminLessonHandler(adminUseCase),
		guard,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("API server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to run server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
}

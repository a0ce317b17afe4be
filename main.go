package main

import (
	api "journal-backend/cmd/api"
	authdomain "journal-backend/internal/auth/domain"
	authRepo "journal-backend/internal/auth/repository"
	authUsecase "journal-backend/internal/auth/usecase"
	entrydomain "journal-backend/internal/entry/domain"
	entryRepo "journal-backend/internal/entry/repository"
	entryUsecase "journal-backend/internal/entry/usecase"
	"journal-backend/pkg/config"
	"journal-backend/pkg/database"
	"journal-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel)

	// Initialize database
	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &entrydomain.Entry{}, &entrydomain.Tag{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	entryRepository := entryRepo.NewGormEntryRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	entryUsecaseInstance := entryUsecase.NewEntryUsecase(entryRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, entryUsecaseInstance, cfg, log)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

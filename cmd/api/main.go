package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/hireloft/career-pages-api/internal/auth"
	"github.com/hireloft/career-pages-api/internal/cache"
	"github.com/hireloft/career-pages-api/internal/config"
	"github.com/hireloft/career-pages-api/internal/database"
	"github.com/hireloft/career-pages-api/internal/handler"
	middlewarepkg "github.com/hireloft/career-pages-api/internal/middleware"
	"github.com/hireloft/career-pages-api/internal/repository"
	"github.com/hireloft/career-pages-api/internal/router"
	"github.com/hireloft/career-pages-api/internal/service"
	"github.com/hireloft/career-pages-api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	pageCache := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	usersRepo := repository.NewPGXUsersRepository(pool)
	companiesRepo := repository.NewPGXCompaniesRepository(pool)
	sectionsRepo := repository.NewPGXSectionsRepository(pool)
	jobsRepo := repository.NewPGXJobsRepository(pool)
	applicationsRepo := repository.NewPGXApplicationsRepository(pool)

	objectStore := storage.NewClient(nil, cfg.StorageBaseURL)

	authService := service.NewAuthService(usersRepo, jwtManager)
	companiesService := service.NewCompaniesService(companiesRepo)
	sectionsService := service.NewSectionsService(sectionsRepo, service.DefaultSectionDefaults())
	pagesService := service.NewPagesService(companiesRepo, sectionsRepo, jobsRepo)
	jobsService := service.NewJobsService(companiesRepo, jobsRepo)
	sitemapService := service.NewSitemapService(companiesRepo, jobsRepo, cfg.PublicBaseURL)
	uploadsService := service.NewUploadsService(objectStore)
	applicationsService := service.NewApplicationsService(pagesService, companiesRepo, jobsRepo, applicationsRepo, cfg.PhoneRegion)

	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Companies: handler.NewCompaniesHandler(companiesService),
		Pages:     handler.NewPagesHandler(pagesService, pageCache),
		Sections:  handler.NewSectionsHandler(sectionsService, companiesRepo, pageCache),
		Jobs:      handler.NewJobsHandler(jobsService, applicationsService, pageCache),
		Public:    handler.NewPublicHandler(pagesService, applicationsService, companiesRepo, pageCache, cfg.CacheTTL),
		Sitemap:   handler.NewSitemapHandler(sitemapService, pageCache, cfg.CacheTTL),
		Uploads:   handler.NewUploadsHandler(uploadsService, cfg.UploadBucket),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

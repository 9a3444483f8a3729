// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command portfolio runs the portfolio site API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/portfolio-go/internal/config"
	"github.com/olegiv/portfolio-go/internal/handler"
	"github.com/olegiv/portfolio-go/internal/logging"
	"github.com/olegiv/portfolio-go/internal/middleware"
	"github.com/olegiv/portfolio-go/internal/scheduler"
	"github.com/olegiv/portfolio-go/internal/service"
	"github.com/olegiv/portfolio-go/internal/session"
	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/version"
)

// Build information, set via ldflags at build time.
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

const (
	serverReadTimeout       = 15 * time.Second
	serverReadHeaderTimeout = 5 * time.Second
	serverWriteTimeout      = 60 * time.Second
	serverIdleTimeout       = 60 * time.Second
	shutdownTimeout         = 30 * time.Second
	requestTimeout          = 30 * time.Second

	// uploadsCacheMaxAge is one week. Upload filenames are unique so
	// aggressive caching is safe.
	uploadsCacheMaxAge = 604800

	globalRateLimitRPS   = 20
	globalRateLimitBurst = 40
)

func main() {
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.BoolVar(showVersion, "v", false, "print version information and exit (shorthand)")
	showHelp := flag.Bool("help", false, "print usage information and exit")
	flag.BoolVar(showHelp, "h", false, "print usage information and exit (shorthand)")
	flag.Usage = usage
	flag.Parse()

	if *showHelp {
		usage()
		os.Exit(0)
	}

	info := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	if *showVersion {
		fmt.Printf("portfolio %s\n", info.String())
		os.Exit(0)
	}

	if err := run(info); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Environment variables:
  PORTFOLIO_DB_PATH         SQLite database path (default ./data/portfolio.db)
  PORTFOLIO_SERVER_HOST     Listen host (default localhost)
  PORTFOLIO_SERVER_PORT     Listen port (default 5000)
  PORTFOLIO_ENV             development or production (default development)
  PORTFOLIO_LOG_LEVEL       debug, info, warn or error (default info)
  PORTFOLIO_UPLOADS_DIR     Upload storage directory (default ./uploads)
  PORTFOLIO_ADMIN_PASSWORD  Bootstrap admin password; random if unset
`)
}

func run(info version.Info) error {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(textHandler)
	slog.SetDefault(logger)

	logger.Info("starting portfolio server",
		"version", info.Version,
		"commit", info.GitCommit,
		"env", cfg.Env,
	)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}
	if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
		return fmt.Errorf("creating uploads directory: %w", err)
	}

	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	// Route warnings and errors into the events table now that the
	// schema exists.
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	logger.Info("event log integration enabled", "min_level", "warn")

	ctx := context.Background()
	if err := store.Seed(ctx, db, cfg.AdminPassword); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	sessionManager := session.New(db, cfg.IsDevelopment())

	uploadSvc := service.NewUploadService(db, cfg.UploadsDir)

	sched := scheduler.New(db, uploadSvc, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	globalLimiter := middleware.NewGlobalRateLimiter(globalRateLimitRPS, globalRateLimitBurst)

	h := handler.NewHandler(db, sessionManager, uploadSvc, loginProtection)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.LoadUser(sessionManager, db))
	r.Use(globalLimiter.Middleware())

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", h.Status)

		r.Get("/projects", h.ListProjects)
		r.Get("/projects/{id}", h.GetProject)
		r.Get("/experiences", h.ListExperiences)
		r.Get("/experiences/{id}", h.GetExperience)
		r.Get("/skills", h.ListSkills)
		r.Get("/skills/categories", h.ListSkillCategories)
		r.Get("/skills/{id}", h.GetSkill)
		r.Get("/certifications", h.ListCertifications)
		r.Get("/certifications/{id}", h.GetCertification)
		r.Get("/achievements", h.ListAchievements)
		r.Get("/achievements/{id}", h.GetAchievement)
		r.Get("/hobbies", h.ListHobbies)
		r.Get("/hobbies/{id}", h.GetHobby)
		r.Get("/social-links", h.ListSocialLinks)
		r.Get("/about", h.GetAbout)
		r.Get("/blog", h.ListPublishedBlogPosts)
		r.Get("/blog/{slug}", h.GetPublishedBlogPostBySlug)

		r.Post("/contact", h.SubmitContactMessage)

		r.With(loginProtection.Middleware()).Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Post("/logout", h.Logout)
		r.Get("/user", h.Me)

		r.Route("/admin", func(r chi.Router) {
			// Uploading needs a session; managing content needs admin.
			r.With(middleware.RequireAuth()).Post("/upload", h.UploadFile)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin())

				adminRoutes(r, h)
			})
		})
	})

	r.Get("/resume.pdf", serveResume(cfg.UploadsDir))

	uploadsHandler := middleware.StaticCache(uploadsCacheMaxAge)(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))
	r.Handle("/uploads/*", uploadsHandler)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       serverReadTimeout,
		ReadHeaderTimeout: serverReadHeaderTimeout,
		WriteTimeout:      serverWriteTimeout,
		IdleTimeout:       serverIdleTimeout,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// serveResume serves the site owner's resume as a download. The file lives
// in the uploads directory under a fixed name the orphan sweep leaves alone.
func serveResume(uploadsDir string) http.HandlerFunc {
	path := filepath.Join(uploadsDir, service.ResumeFilename)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="`+service.ResumeFilename+`"`)
		http.ServeFile(w, r, path)
	}
}

func adminRoutes(r chi.Router, h *handler.Handler) {
	r.Post("/projects", h.CreateProject)
	r.Put("/projects/{id}", h.UpdateProject)
	r.Delete("/projects/{id}", h.DeleteProject)

	r.Post("/experiences", h.CreateExperience)
	r.Put("/experiences/{id}", h.UpdateExperience)
	r.Delete("/experiences/{id}", h.DeleteExperience)

	r.Post("/skills", h.CreateSkill)
	r.Put("/skills/{id}", h.UpdateSkill)
	r.Delete("/skills/{id}", h.DeleteSkill)

	r.Post("/certifications", h.CreateCertification)
	r.Put("/certifications/{id}", h.UpdateCertification)
	r.Delete("/certifications/{id}", h.DeleteCertification)

	r.Post("/achievements", h.CreateAchievement)
	r.Put("/achievements/{id}", h.UpdateAchievement)
	r.Delete("/achievements/{id}", h.DeleteAchievement)

	r.Post("/hobbies", h.CreateHobby)
	r.Put("/hobbies/{id}", h.UpdateHobby)
	r.Delete("/hobbies/{id}", h.DeleteHobby)

	r.Post("/social-links", h.CreateSocialLink)
	r.Put("/social-links/{id}", h.UpdateSocialLink)
	r.Delete("/social-links/{id}", h.DeleteSocialLink)

	r.Post("/about", h.UpsertAbout)

	r.Get("/blog", h.ListBlogPosts)
	r.Get("/blog/{id}", h.GetBlogPost)
	r.Post("/blog", h.CreateBlogPost)
	r.Put("/blog/{id}", h.UpdateBlogPost)
	r.Delete("/blog/{id}", h.DeleteBlogPost)

	r.Get("/messages", h.ListContactMessages)
	r.Get("/messages/{id}", h.GetContactMessage)
	r.Put("/messages/{id}/read", h.MarkContactMessageRead)
	r.Put("/messages/{id}/archive", h.ArchiveContactMessage)
	r.Delete("/messages/{id}", h.DeleteContactMessage)

	r.Get("/uploads", h.ListUploads)
	r.Delete("/uploads/{id}", h.DeleteUpload)

	r.Get("/events", h.ListEvents)
}

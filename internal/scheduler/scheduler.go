// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/service"
	"github.com/olegiv/portfolio-go/internal/store"
)

// OrphanMinAge is how long an untracked file must sit in the uploads
// directory before the sweep removes it. Fresh files may belong to an
// upload still in flight.
const OrphanMinAge = 24 * time.Hour

// Scheduler handles scheduled maintenance like orphaned upload cleanup.
type Scheduler struct {
	db      *sql.DB
	uploads *service.UploadService
	cron    *cron.Cron
	logger  *slog.Logger
}

// New creates a new scheduler instance.
func New(db *sql.DB, uploads *service.UploadService, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:      db,
		uploads: uploads,
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start begins the scheduler with a daily orphaned-file sweep.
func (s *Scheduler) Start() error {
	// Run daily at 03:00
	_, err := s.cron.AddFunc("0 3 * * *", func() {
		if err := s.sweepOrphanedUploads(); err != nil {
			s.logger.Error("failed to sweep orphaned uploads", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// sweepOrphanedUploads removes files on disk that no upload record points
// to, and records the sweep in the event log when anything was removed.
func (s *Scheduler) sweepOrphanedUploads() error {
	ctx := context.Background()

	removed, err := s.uploads.SweepOrphans(ctx, OrphanMinAge)
	if err != nil {
		return err
	}

	if removed == 0 {
		return nil
	}

	s.logger.Info("swept orphaned uploads", "removed", removed)

	metadata, _ := json.Marshal(map[string]interface{}{
		"removed": removed,
	})

	_, err = store.New(s.db).CreateEvent(ctx, store.CreateEventParams{
		Level:     model.EventLevelInfo,
		Category:  model.EventCategorySystem,
		Message:   "Removed orphaned upload files",
		UserID:    sql.NullInt64{}, // System action, no user
		Metadata:  string(metadata),
		CreatedAt: time.Now(),
	})
	if err != nil {
		s.logger.Warn("failed to log orphan sweep event", "error", err)
	}

	return nil
}

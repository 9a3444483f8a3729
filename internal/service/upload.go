// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service contains business logic that sits between the HTTP
// handlers and the store.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
)

// Upload limits
const (
	MaxUploadSize    = 5 * 1024 * 1024 // 5MB
	DefaultUploadDir = "./uploads"

	// ThumbnailSize is the square edge of generated image thumbnails.
	ThumbnailSize = 150

	// thumbsSubdir is where image thumbnails live inside the uploads dir.
	thumbsSubdir = "thumbs"

	// ResumeFilename is the fixed name the resume download route serves
	// from the uploads directory. It is placed there manually, so it has
	// no uploads row and must survive the orphan sweep.
	ResumeFilename = "resume.pdf"
)

// Validation errors returned by Upload. Anything else coming out of the
// service is an internal failure.
var (
	ErrFileTooLarge       = errors.New("file exceeds the maximum upload size")
	ErrFileTypeNotAllowed = errors.New("file type is not allowed")
)

// AllowedMimeTypes defines the MIME types that can be uploaded.
var AllowedMimeTypes = map[string]bool{
	model.MimeTypeJPEG: true,
	model.MimeTypePNG:  true,
	model.MimeTypeGIF:  true,
	model.MimeTypeWebP: true,
	model.MimeTypePDF:  true,
}

// UploadService handles stored file operations.
type UploadService struct {
	db        *sql.DB
	uploadDir string
}

// NewUploadService creates a new upload service.
func NewUploadService(db *sql.DB, uploadDir string) *UploadService {
	if uploadDir == "" {
		uploadDir = DefaultUploadDir
	}
	return &UploadService{
		db:        db,
		uploadDir: uploadDir,
	}
}

// Upload validates, stores, and records an uploaded file. The file is written
// to disk first; if the database insert fails the file is removed again.
func (s *UploadService) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader, userID *int64) (store.Upload, error) {
	if header.Size > MaxUploadSize {
		return store.Upload{}, fmt.Errorf("%w (%d bytes maximum)", ErrFileTooLarge, MaxUploadSize)
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mimeTypeFromExtension(header.Filename)
	}
	if !AllowedMimeTypes[mimeType] {
		return store.Upload{}, fmt.Errorf("%w: %s", ErrFileTypeNotAllowed, mimeType)
	}

	filename := fmt.Sprintf("%d-%s%s",
		time.Now().UnixMilli(),
		strings.ReplaceAll(uuid.New().String(), "-", ""),
		strings.ToLower(filepath.Ext(header.Filename)),
	)

	filePath, size, err := s.saveFile(file, filename)
	if err != nil {
		return store.Upload{}, fmt.Errorf("saving file: %w", err)
	}

	if canThumbnail(mimeType) {
		if err := s.createThumbnail(filePath, filename); err != nil {
			// The original is stored; a missing thumbnail is not fatal
			slog.Warn("failed to create thumbnail", "filename", filename, "error", err)
		}
	}

	queries := store.New(s.db)
	upload, err := queries.CreateUpload(ctx, store.CreateUploadParams{
		Filename:     filename,
		OriginalName: filepath.Base(header.Filename),
		MimeType:     mimeType,
		Size:         size,
		URL:          "/uploads/" + filename,
		UploadedBy:   nullInt64FromPtr(userID),
		CreatedAt:    time.Now(),
	})
	if err != nil {
		// Clean up the stored file on error
		_ = os.Remove(filePath)
		_ = os.Remove(s.thumbPath(filename))
		return store.Upload{}, fmt.Errorf("creating upload record: %w", err)
	}

	return upload, nil
}

// Delete removes an upload's files and database record. A missing record is
// a no-op. File removal failures are logged but do not fail the delete, so
// the record never outlives an inconsistent state for the caller.
func (s *UploadService) Delete(ctx context.Context, id int64) error {
	queries := store.New(s.db)

	upload, err := queries.GetUploadByID(ctx, id)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("getting upload: %w", err)
	}

	if err := os.Remove(filepath.Join(s.uploadDir, upload.Filename)); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove upload file",
			"upload_id", upload.ID,
			"filename", upload.Filename,
			"error", err,
		)
	}
	if err := os.Remove(s.thumbPath(upload.Filename)); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove upload thumbnail",
			"upload_id", upload.ID,
			"filename", upload.Filename,
			"error", err,
		)
	}

	if err := queries.DeleteUpload(ctx, upload.ID); err != nil {
		return fmt.Errorf("deleting upload record: %w", err)
	}

	return nil
}

// SweepOrphans removes files from the uploads directory that have no database
// record and are older than minAge. Returns the number of files removed.
func (s *UploadService) SweepOrphans(ctx context.Context, minAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading uploads directory: %w", err)
	}

	queries := store.New(s.db)
	cutoff := time.Now().Add(-minAge)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == ResumeFilename {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		_, err = queries.GetUploadByFilename(ctx, entry.Name())
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return removed, fmt.Errorf("checking upload record: %w", err)
		}

		path := filepath.Join(s.uploadDir, entry.Name())
		if err := os.Remove(path); err != nil {
			slog.Warn("failed to remove orphaned file", "path", path, "error", err)
			continue
		}
		_ = os.Remove(s.thumbPath(entry.Name()))
		slog.Info("removed orphaned upload file", "filename", entry.Name())
		removed++
	}

	return removed, nil
}

// saveFile writes the uploaded file to the uploads directory.
func (s *UploadService) saveFile(file io.Reader, filename string) (string, int64, error) {
	if err := os.MkdirAll(s.uploadDir, 0755); err != nil {
		return "", 0, fmt.Errorf("creating uploads directory: %w", err)
	}

	filePath := filepath.Join(s.uploadDir, filename)
	out, err := os.Create(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("creating file: %w", err)
	}
	defer func() { _ = out.Close() }()

	size, err := io.Copy(out, file)
	if err != nil {
		_ = os.Remove(filePath)
		return "", 0, fmt.Errorf("writing file: %w", err)
	}

	return filePath, size, nil
}

// createThumbnail generates a square thumbnail next to the original.
func (s *UploadService) createThumbnail(filePath, filename string) error {
	img, err := imaging.Open(filePath)
	if err != nil {
		return fmt.Errorf("decoding image: %w", err)
	}

	thumb := imaging.Thumbnail(img, ThumbnailSize, ThumbnailSize, imaging.Lanczos)

	thumbDir := filepath.Join(s.uploadDir, thumbsSubdir)
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		return fmt.Errorf("creating thumbs directory: %w", err)
	}

	if err := imaging.Save(thumb, s.thumbPath(filename)); err != nil {
		return fmt.Errorf("saving thumbnail: %w", err)
	}

	return nil
}

func (s *UploadService) thumbPath(filename string) string {
	return filepath.Join(s.uploadDir, thumbsSubdir, filename)
}

// canThumbnail reports whether a thumbnail can be generated for the MIME type.
// WebP is excluded: it can be served but not re-encoded.
func canThumbnail(mimeType string) bool {
	return model.IsImageMimeType(mimeType) && mimeType != model.MimeTypeWebP
}

func mimeTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return model.MimeTypeJPEG
	case ".png":
		return model.MimeTypePNG
	case ".gif":
		return model.MimeTypeGIF
	case ".webp":
		return model.MimeTypeWebP
	case ".pdf":
		return model.MimeTypePDF
	default:
		return "application/octet-stream"
	}
}

func nullInt64FromPtr(ptr *int64) sql.NullInt64 {
	if ptr != nil {
		return sql.NullInt64{Int64: *ptr, Valid: true}
	}
	return sql.NullInt64{}
}

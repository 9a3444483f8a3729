// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/olegiv/portfolio-go/internal/middleware"
	"github.com/olegiv/portfolio-go/internal/service"
	"github.com/olegiv/portfolio-go/internal/store"
)

// UploadResponse represents a stored file in API responses.
type UploadResponse struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	UploadedBy   *int64    `json:"uploaded_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func storeUploadToResponse(u store.Upload) UploadResponse {
	resp := UploadResponse{
		ID:           u.ID,
		Filename:     u.Filename,
		OriginalName: u.OriginalName,
		MimeType:     u.MimeType,
		Size:         u.Size,
		URL:          u.URL,
		CreatedAt:    u.CreatedAt,
	}
	if u.UploadedBy.Valid {
		resp.UploadedBy = &u.UploadedBy.Int64
	}
	return resp
}

// UploadFile handles POST /api/admin/upload (authenticated). The file comes in
// a multipart form under the "file" field.
func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	// Cap the parsed form slightly above the file limit to leave room
	// for the multipart framing
	if err := r.ParseMultipartForm(service.MaxUploadSize + 1024); err != nil {
		WriteBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteBadRequest(w, "Missing file field", nil)
		return
	}
	defer func() { _ = file.Close() }()

	upload, err := h.uploads.Upload(r.Context(), file, header, middleware.GetUserIDPtr(r))
	if err != nil {
		if errors.Is(err, service.ErrFileTooLarge) || errors.Is(err, service.ErrFileTypeNotAllowed) {
			WriteValidationError(w, map[string]string{"file": err.Error()})
			return
		}
		slog.Error("file upload failed", "error", err)
		WriteInternalError(w, "Failed to store file")
		return
	}

	slog.Info("file uploaded",
		"upload_id", upload.ID,
		"filename", upload.Filename,
		"size", upload.Size,
	)
	WriteCreated(w, storeUploadToResponse(upload))
}

// ListUploads handles GET /api/admin/uploads, newest first.
func (h *Handler) ListUploads(w http.ResponseWriter, r *http.Request) {
	uploads, err := h.queries.ListUploads(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list uploads")
		return
	}

	responses := make([]UploadResponse, 0, len(uploads))
	for _, u := range uploads {
		responses = append(responses, storeUploadToResponse(u))
	}

	WriteSuccess(w, responses, &Meta{Total: int64(len(responses))})
}

// DeleteUpload handles DELETE /api/admin/uploads/{id}. The file and
// thumbnail are removed from disk along with the record.
func (h *Handler) DeleteUpload(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid upload ID", nil)
		return
	}

	if err := h.uploads.Delete(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete upload")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

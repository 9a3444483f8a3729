// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/olegiv/portfolio-go/internal/store"
)

// ContactMessageResponse represents a contact message in API responses.
type ContactMessageResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactRequest represents the request body for submitting a contact message.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func storeContactMessageToResponse(m store.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Read:      m.Read,
		Archived:  m.Archived,
		CreatedAt: m.CreatedAt,
	}
}

// SubmitContactMessage handles POST /api/contact (public).
func (h *Handler) SubmitContactMessage(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	validationErrors := make(map[string]string)
	if req.Name == "" {
		validationErrors["name"] = "Name is required"
	}
	if req.Email == "" {
		validationErrors["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		validationErrors["email"] = "Email is invalid"
	}
	if req.Subject == "" {
		validationErrors["subject"] = "Subject is required"
	}
	if req.Message == "" {
		validationErrors["message"] = "Message is required"
	}
	if len(validationErrors) > 0 {
		WriteValidationError(w, validationErrors)
		return
	}

	message, err := h.queries.CreateContactMessage(r.Context(), store.CreateContactMessageParams{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	})
	if err != nil {
		WriteInternalError(w, "Failed to submit message")
		return
	}

	slog.Info("contact message received", "message_id", message.ID, "subject", message.Subject)
	WriteCreated(w, storeContactMessageToResponse(message))
}

// ListContactMessages handles GET /api/admin/messages, newest first.
func (h *Handler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.queries.ListContactMessages(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list messages")
		return
	}

	responses := make([]ContactMessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, storeContactMessageToResponse(m))
	}

	WriteSuccess(w, responses, &Meta{Total: int64(len(responses))})
}

// GetContactMessage handles GET /api/admin/messages/{id}.
func (h *Handler) GetContactMessage(w http.ResponseWriter, r *http.Request) {
	message, ok := requireEntityByID(w, r, "message", func(id int64) (store.ContactMessage, error) {
		return h.queries.GetContactMessageByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, storeContactMessageToResponse(message), nil)
}

// MarkContactMessageRead handles PUT /api/admin/messages/{id}/read.
func (h *Handler) MarkContactMessageRead(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "message", func(id int64) (store.ContactMessage, error) {
		return h.queries.GetContactMessageByID(r.Context(), id)
	})
	if !ok {
		return
	}

	message, err := h.queries.MarkContactMessageRead(r.Context(), existing.ID)
	if err != nil {
		WriteInternalError(w, "Failed to update message")
		return
	}

	WriteSuccess(w, storeContactMessageToResponse(message), nil)
}

// ArchiveContactMessage handles PUT /api/admin/messages/{id}/archive.
func (h *Handler) ArchiveContactMessage(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "message", func(id int64) (store.ContactMessage, error) {
		return h.queries.GetContactMessageByID(r.Context(), id)
	})
	if !ok {
		return
	}

	message, err := h.queries.ArchiveContactMessage(r.Context(), existing.ID)
	if err != nil {
		WriteInternalError(w, "Failed to update message")
		return
	}

	WriteSuccess(w, storeContactMessageToResponse(message), nil)
}

// DeleteContactMessage handles DELETE /api/admin/messages/{id}.
func (h *Handler) DeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid message ID", nil)
		return
	}

	if err := h.queries.DeleteContactMessage(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete message")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

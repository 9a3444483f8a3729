// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/util"
)

// CertificationResponse represents a certification in API responses.
// IssueDate and ExpiryDate are display strings.
type CertificationResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Issuer        string    `json:"issuer"`
	IssueDate     string    `json:"issue_date"`
	ExpiryDate    *string   `json:"expiry_date,omitempty"`
	Description   *string   `json:"description,omitempty"`
	CredentialID  *string   `json:"credential_id,omitempty"`
	CredentialURL *string   `json:"credential_url,omitempty"`
	ImageURL      *string   `json:"image_url,omitempty"`
	SortOrder     int64     `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
}

// CertificationRequest represents the request body for creating or updating a certification.
type CertificationRequest struct {
	Name          string  `json:"name"`
	Issuer        string  `json:"issuer"`
	IssueDate     string  `json:"issue_date"`
	ExpiryDate    *string `json:"expiry_date,omitempty"`
	Description   *string `json:"description,omitempty"`
	CredentialID  *string `json:"credential_id,omitempty"`
	CredentialURL *string `json:"credential_url,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
	SortOrder     int64   `json:"sort_order"`
}

func storeCertificationToResponse(c store.Certification) CertificationResponse {
	resp := CertificationResponse{
		ID:        c.ID,
		Name:      c.Name,
		Issuer:    c.Issuer,
		IssueDate: c.IssueDate,
		SortOrder: c.SortOrder,
		CreatedAt: c.CreatedAt,
	}
	if c.ExpiryDate.Valid {
		resp.ExpiryDate = &c.ExpiryDate.String
	}
	if c.Description.Valid {
		resp.Description = &c.Description.String
	}
	if c.CredentialID.Valid {
		resp.CredentialID = &c.CredentialID.String
	}
	if c.CredentialURL.Valid {
		resp.CredentialURL = &c.CredentialURL.String
	}
	if c.ImageURL.Valid {
		resp.ImageURL = &c.ImageURL.String
	}
	return resp
}

func (req CertificationRequest) validate() map[string]string {
	errs := make(map[string]string)
	if req.Name == "" {
		errs["name"] = "Name is required"
	}
	if req.Issuer == "" {
		errs["issuer"] = "Issuer is required"
	}
	if req.IssueDate == "" {
		errs["issue_date"] = "Issue date is required"
	}
	return errs
}

// ListCertifications handles GET /api/certifications.
func (h *Handler) ListCertifications(w http.ResponseWriter, r *http.Request) {
	certifications, err := h.queries.ListCertifications(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list certifications")
		return
	}

	responses := make([]CertificationResponse, 0, len(certifications))
	for _, c := range certifications {
		responses = append(responses, storeCertificationToResponse(c))
	}

	WriteSuccess(w, responses, &Meta{Total: int64(len(responses))})
}

// GetCertification handles GET /api/certifications/{id}.
func (h *Handler) GetCertification(w http.ResponseWriter, r *http.Request) {
	certification, ok := requireEntityByID(w, r, "certification", func(id int64) (store.Certification, error) {
		return h.queries.GetCertificationByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, storeCertificationToResponse(certification), nil)
}

// CreateCertification handles POST /api/admin/certifications.
func (h *Handler) CreateCertification(w http.ResponseWriter, r *http.Request) {
	var req CertificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	certification, err := h.queries.CreateCertification(r.Context(), store.CreateCertificationParams{
		Name:          req.Name,
		Issuer:        req.Issuer,
		IssueDate:     req.IssueDate,
		ExpiryDate:    util.NullStringFromPtr(req.ExpiryDate),
		Description:   util.NullStringFromPtr(req.Description),
		CredentialID:  util.NullStringFromPtr(req.CredentialID),
		CredentialURL: util.NullStringFromPtr(req.CredentialURL),
		ImageURL:      util.NullStringFromPtr(req.ImageURL),
		SortOrder:     req.SortOrder,
		CreatedAt:     time.Now(),
	})
	if err != nil {
		WriteInternalError(w, "Failed to create certification")
		return
	}

	WriteCreated(w, storeCertificationToResponse(certification))
}

// UpdateCertification handles PUT /api/admin/certifications/{id}.
func (h *Handler) UpdateCertification(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "certification", func(id int64) (store.Certification, error) {
		return h.queries.GetCertificationByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req CertificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	certification, err := h.queries.UpdateCertification(r.Context(), store.UpdateCertificationParams{
		Name:          req.Name,
		Issuer:        req.Issuer,
		IssueDate:     req.IssueDate,
		ExpiryDate:    util.NullStringFromPtr(req.ExpiryDate),
		Description:   util.NullStringFromPtr(req.Description),
		CredentialID:  util.NullStringFromPtr(req.CredentialID),
		CredentialURL: util.NullStringFromPtr(req.CredentialURL),
		ImageURL:      util.NullStringFromPtr(req.ImageURL),
		SortOrder:     req.SortOrder,
		ID:            existing.ID,
	})
	if err != nil {
		WriteInternalError(w, "Failed to update certification")
		return
	}

	WriteSuccess(w, storeCertificationToResponse(certification), nil)
}

// DeleteCertification handles DELETE /api/admin/certifications/{id}.
func (h *Handler) DeleteCertification(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid certification ID", nil)
		return
	}

	if err := h.queries.DeleteCertification(r.Context(), id); err != nil {
		WriteInternalError(w, "Failed to delete certification")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

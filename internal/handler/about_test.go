// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"testing"
)

func TestGetAboutBeforeFirstWrite(t *testing.T) {
	_, h := testSetup(t)

	w := executeHandler(t, h.GetAbout, newGetRequest(t, "/api/about", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("GetAbout() status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestUpsertAboutCreatesThenUpdates(t *testing.T) {
	_, h := testSetup(t)

	createReq := newJSONRequest(t, http.MethodPost, "/api/admin/about",
		`{"headline":"Engineer","bio":"I build things."}`, nil)
	createW := executeHandler(t, h.UpsertAbout, createReq)
	if createW.Code != http.StatusOK {
		t.Fatalf("UpsertAbout() status = %d, want %d: %s", createW.Code, http.StatusOK, createW.Body.String())
	}
	created := unmarshalData[AboutResponse](t, createW)

	updateReq := newJSONRequest(t, http.MethodPost, "/api/admin/about",
		`{"headline":"Senior Engineer","bio":"Still building.","resume_url":"/uploads/resume.pdf"}`, nil)
	updateW := executeHandler(t, h.UpsertAbout, updateReq)
	if updateW.Code != http.StatusOK {
		t.Fatalf("UpsertAbout() second status = %d, want %d", updateW.Code, http.StatusOK)
	}
	updated := unmarshalData[AboutResponse](t, updateW)

	// Still the same singleton row
	if updated.ID != created.ID {
		t.Errorf("ID changed on upsert: %d -> %d", created.ID, updated.ID)
	}
	if updated.Headline != "Senior Engineer" {
		t.Errorf("Headline = %q, want %q", updated.Headline, "Senior Engineer")
	}
	if updated.ResumeURL == nil || *updated.ResumeURL != "/uploads/resume.pdf" {
		t.Errorf("ResumeURL = %v, want /uploads/resume.pdf", updated.ResumeURL)
	}

	getW := executeHandler(t, h.GetAbout, newGetRequest(t, "/api/about", nil))
	if getW.Code != http.StatusOK {
		t.Fatalf("GetAbout() status = %d, want %d", getW.Code, http.StatusOK)
	}
}

func TestUpsertAboutValidation(t *testing.T) {
	_, h := testSetup(t)

	req := newJSONRequest(t, http.MethodPost, "/api/admin/about", `{"headline":""}`, nil)
	w := executeHandler(t, h.UpsertAbout, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("UpsertAbout() status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	detail := unmarshalError(t, w)
	if detail.Details["headline"] == "" || detail.Details["bio"] == "" {
		t.Errorf("expected headline and bio field errors, got %+v", detail.Details)
	}
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"testing"
)

func TestSocialLinkCRUD(t *testing.T) {
	_, h := testSetup(t)

	createReq := newJSONRequest(t, http.MethodPost, "/api/admin/social-links",
		`{"platform":"GitHub","url":"https://github.com/someone","active":true,"sort_order":1}`, nil)
	createW := executeHandler(t, h.CreateSocialLink, createReq)
	if createW.Code != http.StatusCreated {
		t.Fatalf("CreateSocialLink() status = %d, want %d: %s", createW.Code, http.StatusCreated, createW.Body.String())
	}
	link := unmarshalData[SocialLinkResponse](t, createW)

	updateReq := newJSONRequest(t, http.MethodPut, "/api/admin/social-links/1",
		`{"platform":"GitHub","url":"https://github.com/other","active":false,"sort_order":2}`,
		map[string]string{"id": "1"})
	updateW := executeHandler(t, h.UpdateSocialLink, updateReq)
	if updateW.Code != http.StatusOK {
		t.Fatalf("UpdateSocialLink() status = %d, want %d", updateW.Code, http.StatusOK)
	}
	updated := unmarshalData[SocialLinkResponse](t, updateW)
	if updated.ID != link.ID || updated.URL != "https://github.com/other" || updated.Active {
		t.Errorf("updated link = %+v", updated)
	}

	listW := executeHandler(t, h.ListSocialLinks, newGetRequest(t, "/api/social-links", nil))
	links, _ := unmarshalList[SocialLinkResponse](t, listW)
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1", len(links))
	}

	deleteW := executeHandler(t, h.DeleteSocialLink,
		newDeleteRequest(t, "/api/admin/social-links/1", map[string]string{"id": "1"}))
	if deleteW.Code != http.StatusNoContent {
		t.Fatalf("DeleteSocialLink() status = %d, want %d", deleteW.Code, http.StatusNoContent)
	}
}

func TestCreateSocialLinkRejectsRelativeURL(t *testing.T) {
	_, h := testSetup(t)

	req := newJSONRequest(t, http.MethodPost, "/api/admin/social-links",
		`{"platform":"GitHub","url":"/profile"}`, nil)
	w := executeHandler(t, h.CreateSocialLink, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("CreateSocialLink() status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if detail := unmarshalError(t, w); detail.Details["url"] == "" {
		t.Errorf("expected url field error, got %+v", detail.Details)
	}
}

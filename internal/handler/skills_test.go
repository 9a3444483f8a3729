// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"testing"
)

func createSkillViaAPI(t *testing.T, h *Handler, body string) SkillResponse {
	t.Helper()
	req := newJSONRequest(t, http.MethodPost, "/api/admin/skills", body, nil)
	w := executeHandler(t, h.CreateSkill, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("CreateSkill() status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}
	return unmarshalData[SkillResponse](t, w)
}

func TestCreateSkill(t *testing.T) {
	_, h := testSetup(t)

	skill := createSkillViaAPI(t, h, `{"name":"Go","category":"Programming Languages","proficiency":90}`)
	if skill.Name != "Go" {
		t.Errorf("Name = %q, want %q", skill.Name, "Go")
	}
}

func TestCreateSkillValidation(t *testing.T) {
	_, h := testSetup(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"category":"Other","proficiency":50}`, "name"},
		{"unknown category", `{"name":"Go","category":"Wizardry","proficiency":50}`, "category"},
		{"proficiency too high", `{"name":"Go","category":"Other","proficiency":101}`, "proficiency"},
		{"negative proficiency", `{"name":"Go","category":"Other","proficiency":-1}`, "proficiency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJSONRequest(t, http.MethodPost, "/api/admin/skills", tt.body, nil)
			w := executeHandler(t, h.CreateSkill, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if detail := unmarshalError(t, w); detail.Details[tt.want] == "" {
				t.Errorf("expected %q field error, got %+v", tt.want, detail.Details)
			}
		})
	}
}

func TestListSkillsByCategory(t *testing.T) {
	_, h := testSetup(t)
	createSkillViaAPI(t, h, `{"name":"Go","category":"Programming Languages","proficiency":90}`)
	createSkillViaAPI(t, h, `{"name":"PostgreSQL","category":"Databases","proficiency":80}`)

	req := newGetRequest(t, "/api/skills?category=Databases", nil)
	w := executeHandler(t, h.ListSkills, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ListSkills() status = %d, want %d", w.Code, http.StatusOK)
	}
	skills, _ := unmarshalList[SkillResponse](t, w)
	if len(skills) != 1 || skills[0].Name != "PostgreSQL" {
		t.Errorf("skills = %+v, want only PostgreSQL", skills)
	}
}

func TestListSkillsUnknownCategory(t *testing.T) {
	_, h := testSetup(t)

	req := newGetRequest(t, "/api/skills?category=Wizardry", nil)
	w := executeHandler(t, h.ListSkills, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("ListSkills() status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestListSkillCategories(t *testing.T) {
	_, h := testSetup(t)

	w := executeHandler(t, h.ListSkillCategories, newGetRequest(t, "/api/skills/categories", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("ListSkillCategories() status = %d, want %d", w.Code, http.StatusOK)
	}
	categories := unmarshalData[[]string](t, w)
	if len(categories) != 8 {
		t.Errorf("got %d categories, want 8", len(categories))
	}
}

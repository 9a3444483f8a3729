// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/portfolio-go/internal/model"
)

// sessionSetup builds a handler with an in-memory session store and wraps
// the given handler func with session middleware.
func sessionSetup(t *testing.T) (*Handler, func(http.HandlerFunc) http.Handler) {
	t.Helper()
	db := testDB(t)
	sm := scs.New()
	h := NewHandler(db, sm, nil, nil)
	wrap := func(fn http.HandlerFunc) http.Handler {
		return sm.LoadAndSave(fn)
	}
	return h, wrap
}

func TestLoginSuccess(t *testing.T) {
	h, wrap := sessionSetup(t)
	createTestUser(t, h.db, "alice", "correct-horse-1", model.RoleAdmin)

	req := newJSONRequest(t, http.MethodPost, "/api/login",
		`{"username":"alice","password":"correct-horse-1"}`, nil)
	w := httptest.NewRecorder()
	wrap(h.Login).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Login() status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	user := unmarshalData[UserResponse](t, w)
	if user.Username != "alice" {
		t.Errorf("Username = %q, want %q", user.Username, "alice")
	}
	if user.Role != model.RoleAdmin {
		t.Errorf("Role = %q, want %q", user.Role, model.RoleAdmin)
	}

	if cookies := w.Result().Cookies(); len(cookies) == 0 {
		t.Error("Login() set no session cookie")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h, wrap := sessionSetup(t)
	createTestUser(t, h.db, "alice", "correct-horse-1", model.RoleAdmin)

	req := newJSONRequest(t, http.MethodPost, "/api/login",
		`{"username":"alice","password":"wrong"}`, nil)
	w := httptest.NewRecorder()
	wrap(h.Login).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Login() status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if detail := unmarshalError(t, w); detail.Message != "Invalid username or password" {
		t.Errorf("error message = %q, want generic credentials message", detail.Message)
	}
}

func TestLoginUnknownUserSameError(t *testing.T) {
	h, wrap := sessionSetup(t)

	req := newJSONRequest(t, http.MethodPost, "/api/login",
		`{"username":"nobody","password":"whatever"}`, nil)
	w := httptest.NewRecorder()
	wrap(h.Login).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Login() status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	// Unknown user must be indistinguishable from a bad password
	if detail := unmarshalError(t, w); detail.Message != "Invalid username or password" {
		t.Errorf("error message = %q, want generic credentials message", detail.Message)
	}
}

func TestLoginMissingFields(t *testing.T) {
	h, wrap := sessionSetup(t)

	req := newJSONRequest(t, http.MethodPost, "/api/login", `{"username":"alice"}`, nil)
	w := httptest.NewRecorder()
	wrap(h.Login).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Login() status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	h, wrap := sessionSetup(t)

	req := newJSONRequest(t, http.MethodPost, "/api/logout", ``, nil)
	w := httptest.NewRecorder()
	wrap(h.Logout).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Logout() without session status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestMe(t *testing.T) {
	db, h := testSetup(t)
	user := createTestUser(t, db, "bob", "some-password-1", model.RoleUser)

	req := requestAsUser(newGetRequest(t, "/api/user", nil), user)
	w := executeHandler(t, h.Me, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Me() status = %d, want %d", w.Code, http.StatusOK)
	}
	resp := unmarshalData[UserResponse](t, w)
	if resp.ID != user.ID {
		t.Errorf("ID = %d, want %d", resp.ID, user.ID)
	}
}

func TestMeAnonymous(t *testing.T) {
	_, h := testSetup(t)

	w := executeHandler(t, h.Me, newGetRequest(t, "/api/user", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Me() anonymous status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRegister(t *testing.T) {
	h, wrap := sessionSetup(t)

	req := newJSONRequest(t, http.MethodPost, "/api/register",
		`{"username":"carol","password":"longenough1"}`, nil)
	w := httptest.NewRecorder()
	wrap(h.Register).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Register() status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	user := unmarshalData[UserResponse](t, w)
	if user.Role != model.RoleUser {
		t.Errorf("Role = %q, want %q; registration must never grant admin", user.Role, model.RoleUser)
	}

	// Registration logs the new account in.
	if cookies := w.Result().Cookies(); len(cookies) == 0 {
		t.Error("Register() set no session cookie")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db, h := testSetup(t)
	createTestUser(t, db, "carol", "longenough1", model.RoleUser)

	req := newJSONRequest(t, http.MethodPost, "/api/register",
		`{"username":"carol","password":"longenough1"}`, nil)
	w := executeHandler(t, h.Register, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Register() duplicate status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestRegisterShortPassword(t *testing.T) {
	_, h := testSetup(t)

	req := newJSONRequest(t, http.MethodPost, "/api/register",
		`{"username":"dave","password":"short"}`, nil)
	w := executeHandler(t, h.Register, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Register() status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if detail := unmarshalError(t, w); detail.Details["password"] == "" {
		t.Error("expected password field error")
	}
}

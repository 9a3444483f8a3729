// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/olegiv/portfolio-go/internal/auth"
	"github.com/olegiv/portfolio-go/internal/middleware"
	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/util"
)

// UserResponse represents a user in API responses. The password hash is
// never exposed.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func storeUserToResponse(u store.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
	if u.Email.Valid {
		resp.Email = &u.Email.String
	}
	return resp
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest represents the request body for creating an account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Login handles POST /api/login.
// Failures are reported with a single generic message so usernames cannot
// be probed.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		WriteValidationError(w, map[string]string{
			"credentials": "Username and password are required",
		})
		return
	}

	if h.logins != nil {
		if locked, _ := h.logins.IsAccountLocked(req.Username); locked {
			slog.Warn("login attempt on locked account", "username", req.Username)
			WriteError(w, http.StatusTooManyRequests, "account_locked",
				"Too many failed attempts. Please try again later.", nil)
			return
		}
	}

	user, err := h.queries.GetUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		WriteInternalError(w, "Failed to log in")
		return
	}

	// Run the password check even for unknown users so response timing
	// does not reveal whether the username exists.
	hash := user.PasswordHash
	if hash == "" {
		hash, _ = auth.HashPassword("-")
	}
	match, _ := auth.CheckPassword(req.Password, hash)
	if errors.Is(err, sql.ErrNoRows) || !match {
		if h.logins != nil {
			h.logins.RecordFailedAttempt(req.Username)
		}
		slog.Warn("failed login attempt", "username", req.Username, "remote_addr", r.RemoteAddr)
		WriteUnauthorized(w, "Invalid username or password")
		return
	}

	if h.logins != nil {
		h.logins.RecordSuccessfulLogin(req.Username)
	}

	// Rotate the session token on privilege change
	if err := h.sessions.RenewToken(ctx); err != nil {
		WriteInternalError(w, "Failed to create session")
		return
	}
	h.sessions.Put(ctx, middleware.SessionKeyUserID, user.ID)

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)
	WriteSuccess(w, storeUserToResponse(user), nil)
}

// Logout handles POST /api/logout. Logging out without a session
// succeeds.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if user := middleware.GetUser(r); user != nil {
		slog.Info("user logged out", "user_id", user.ID, "username", user.Username)
	}

	if err := h.sessions.Destroy(ctx); err != nil {
		WriteInternalError(w, "Failed to log out")
		return
	}

	WriteSuccess(w, map[string]string{"status": "logged_out"}, nil)
}

// Me handles GET /api/user and returns the current user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Not authenticated")
		return
	}
	WriteSuccess(w, storeUserToResponse(*user), nil)
}

// Register handles POST /api/register. New accounts always get the
// regular user role; admin accounts come from seeding only.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	validationErrors := make(map[string]string)
	if req.Username == "" {
		validationErrors["username"] = "Username is required"
	}
	if len(req.Password) < 8 {
		validationErrors["password"] = "Password must be at least 8 characters"
	}
	if len(validationErrors) > 0 {
		WriteValidationError(w, validationErrors)
		return
	}

	taken, err := h.queries.CountUsersByUsername(ctx, req.Username)
	if err != nil {
		WriteInternalError(w, "Failed to create account")
		return
	}
	if taken != 0 {
		WriteValidationError(w, map[string]string{"username": "Username already exists"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		WriteInternalError(w, "Failed to create account")
		return
	}

	user, err := h.queries.CreateUser(ctx, store.CreateUserParams{
		Username:     req.Username,
		Email:        util.NullStringFromValue(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         model.RoleUser,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		// A concurrent registration can slip past the availability check
		// and land on the UNIQUE constraint instead
		if store.IsUniqueViolation(err) {
			WriteValidationError(w, map[string]string{"username": "Username already exists"})
			return
		}
		WriteInternalError(w, "Failed to create account")
		return
	}

	// Registration doubles as login for the new account.
	if err := h.sessions.RenewToken(ctx); err != nil {
		WriteInternalError(w, "Failed to create session")
		return
	}
	h.sessions.Put(ctx, middleware.SessionKeyUserID, user.ID)

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	WriteCreated(w, storeUserToResponse(user))
}

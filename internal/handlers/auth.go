package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crucial707/taskdeck/internal/auth"
	"github.com/crucial707/taskdeck/internal/repo"
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	UserRepo *repo.UserRepo
	Issuer   *auth.TokenIssuer
}

// ==========================
// Signup
// ==========================

// Signup registers a user and returns 201 {id, username}. A taken username is
// a 400 and leaves no trace in the database.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username" validate:"required,min=3,max=50"`
		Password string `json:"password" validate:"required,min=6"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid json", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(input); err != nil {
		JSONValidationError(w, "validation failed", validationFields(err), http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		slog.Error("signup: hash password", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	user, err := h.UserRepo.Create(r.Context(), input.Username, hash)
	if err != nil {
		if err == repo.ErrUsernameTaken {
			JSONError(w, "username already registered", http.StatusBadRequest)
			return
		}
		slog.Error("signup: create user", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	slog.Info("user registered", "username", user.Username, "id", user.ID)
	JSON(w, http.StatusCreated, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
	})
}

// ==========================
// Token (login)
// ==========================

// Token implements the password flow: form-encoded username/password in,
// bearer token out. Unknown user and wrong password produce the identical 401.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		JSONError(w, "invalid form", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		JSONError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	user, err := h.UserRepo.GetByUsername(r.Context(), username)
	if err != nil {
		JSONError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		JSONError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.Issuer.Issue(user.Username)
	if err != nil {
		slog.Error("token: issue", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	slog.Info("login", "username", user.Username)
	JSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/deva-sh/keepnotes/internal/accounts"
	"github.com/deva-sh/keepnotes/internal/api/middleware"
	"github.com/deva-sh/keepnotes/internal/utils"
)

// AuthHandler serves signup, login and the current-user endpoint.
type AuthHandler struct {
	accounts *accounts.Manager
}

func NewAuthHandler(mgr *accounts.Manager) *AuthHandler {
	return &AuthHandler{accounts: mgr}
}

// POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Username == "" || input.Email == "" || input.Password == "" {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := h.accounts.Register(input.Username, input.Email, input.Password)
	switch {
	case err == nil:
		utils.WriteJSON(w, http.StatusCreated, user)
	case errors.Is(err, accounts.ErrInvalidEmail):
		utils.WriteError(w, http.StatusBadRequest, "Invalid email address")
	case errors.Is(err, accounts.ErrEmailTaken):
		utils.WriteError(w, http.StatusBadRequest, "Email already registered")
	default:
		utils.WriteError(w, http.StatusInternalServerError, "Registration failed")
	}
}

// POST /login
//
// Form-encoded; the client sends the email in the username field.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	token, err := h.accounts.Authenticate(email, password)
	switch {
	case err == nil:
		utils.WriteJSON(w, http.StatusOK, map[string]string{
			"access_token": token,
			"token_type":   "bearer",
		})
	case errors.Is(err, accounts.ErrInvalidCredentials):
		utils.WriteUnauthorized(w, "Incorrect email or password")
	default:
		utils.WriteError(w, http.StatusInternalServerError, "Login failed")
	}
}

// GET /users/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	utils.WriteJSON(w, http.StatusOK, middleware.UserFrom(r.Context()))
}

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mcdev12/chrono/go/internal/auth"
	"github.com/mcdev12/chrono/go/internal/models"
	"github.com/mcdev12/chrono/go/internal/users"
)

// UsersApp defines what the handlers need from the users application
type UsersApp interface {
	Register(ctx context.Context, req users.RegisterUserRequest) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// AuthHandler serves registration and login
type AuthHandler struct {
	app      UsersApp
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(app UsersApp, secret []byte, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		app:      app,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req users.RegisterUserRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := h.app.Register(r.Context(), req)
	if err != nil {
		AppError(w, err)
		return
	}

	JSONResponse(w, http.StatusCreated, user)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req users.LoginRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := h.app.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		AppError(w, err)
		return
	}

	token, err := auth.GenerateToken(user.ID.String(), h.secret, h.tokenTTL)
	if err != nil {
		AppError(w, err)
		return
	}

	JSONResponse(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me handles GET /auth/me (bearer token required)
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		ErrorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := h.app.GetUser(r.Context(), userID)
	if err != nil {
		AppError(w, err)
		return
	}

	JSONResponse(w, http.StatusOK, user)
}

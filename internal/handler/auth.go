package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/handler/dto"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/service"
)

// AuthHandler handles HTTP requests for registration and sessions.
type AuthHandler struct {
	users    *service.UserService
	sessions *service.SessionService
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users *service.UserService, sessions *service.SessionService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

// Register handles POST /cadastro.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.users.Register(r.Context(), payload); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_registered")

	w.WriteHeader(http.StatusCreated)
}

// Login handles POST /.
// On success the response body is the bare session token string, not a
// JSON document.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	token, err := h.sessions.Login(r.Context(), payload)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("login_succeeded")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(token))
}

// Logout handles POST /logout. Revoking an already-revoked token is
// still a success.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context(), r.Header.Get("Authorization")); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("session_revoked")

	w.WriteHeader(http.StatusOK)
}

// handleServiceError maps service errors to HTTP responses.
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.Is(err, service.ErrPasswordMismatch):
		h.writeError(w, http.StatusBadRequest, "PASSWORD_MISMATCH", "Password and confirmation do not match")
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Errors: validationErr.Messages,
		})
	case errors.Is(err, service.ErrEmailTaken):
		h.writeError(w, http.StatusConflict, "ALREADY_REGISTERED", "Email is already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		// Unknown email and wrong password get the same response so
		// callers cannot probe which one failed.
		h.writeError(w, http.StatusNotFound, "INVALID_CREDENTIALS", "User not found or invalid credentials")
	case errors.Is(err, service.ErrUnauthenticated):
		h.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or missing session token")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *AuthHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// decodePayload decodes a JSON request body into a raw field map.
// An empty body decodes to an empty map so the validator can report
// every missing field; malformed JSON is an error.
func decodePayload(r *http.Request) (map[string]any, error) {
	payload := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return payload, nil
}

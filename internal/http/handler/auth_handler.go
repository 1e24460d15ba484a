package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/valbrand/crm-backend/internal/http/response"
	"github.com/valbrand/crm-backend/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Logout succeeds whether or not the request carries a token; a missing or
// invalid bearer token simply means there is nothing to revoke.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	_ = h.auth.Logout(r.Context(), bearerToken(r))
	response.JSON(w, http.StatusOK, map[string]string{"message": "Sesión cerrada exitosamente"})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	result, err := h.auth.Refresh(r.Context(), bearerToken(r))
	if err != nil {
		writeAuthError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		response.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	// The response body is identical whether or not the address exists.
	_ = h.auth.ForgotPassword(r.Context(), req.Email)
	response.JSON(w, http.StatusOK, map[string]string{
		"message": "Si el email existe, se ha enviado un enlace de recuperación",
	})
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Token == "" || req.NewPassword == "" {
		response.Error(w, http.StatusBadRequest, "token and new_password are required")
		return
	}

	if err := h.auth.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		writeAuthError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Contraseña actualizada exitosamente"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Me(r.Context(), bearerToken(r))
	if err != nil {
		writeAuthError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, user.Profile())
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[7:])
}

func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, "Credenciales incorrectas")
	case errors.Is(err, service.ErrAccountLocked):
		response.Error(w, http.StatusForbidden, "Usuario bloqueado por múltiples intentos fallidos. Intente más tarde.")
	case errors.Is(err, service.ErrAccountInactive):
		response.Error(w, http.StatusForbidden, "Usuario inactivo o suspendido")
	// Missing, malformed, expired, revoked and unknown-subject tokens all
	// surface the same way so callers cannot probe which case they hit.
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrUserNotFound):
		response.Error(w, http.StatusUnauthorized, "Token expirado o inválido")
	case errors.Is(err, service.ErrInvalidResetToken):
		response.Error(w, http.StatusBadRequest, "Token inválido o expirado")
	default:
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-auth-api/common"
	"go-auth-api/logger"
	"go-auth-api/model"
	"go-auth-api/repository"
	"go-auth-api/service"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a new user account with email, username, and password. The username and email must be unique.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.RegisterRequest true "Registration payload"
// @Success      201  {object}  model.User
// @Failure      400  {object}  common.AppError
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	user, err := h.service.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return common.NewAppError(http.StatusBadRequest, "Username already registered", nil)
		case errors.Is(err, repository.ErrDuplicateEmail):
			return common.NewAppError(http.StatusBadRequest, "Email already registered", nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not register user", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
	return nil
}

// Login godoc
// @Summary      Login and get tokens
// @Description  Authenticate with username and password to receive access and refresh tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.LoginRequest true "Login payload"
// @Success      200  {object}  model.TokenResponse
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	tokens, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return common.NewAppError(http.StatusUnauthorized, "Incorrect username or password", nil)
		case errors.Is(err, service.ErrInactiveAccount):
			return common.NewAppError(http.StatusBadRequest, "Inactive user", nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not log in", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tokens)
	return nil
}

// Refresh godoc
// @Summary      Refresh access token
// @Description  Use a valid refresh token to obtain a new access and refresh token pair. The old refresh token is invalidated.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.RefreshRequest true "Refresh payload"
// @Success      200  {object}  model.TokenResponse
// @Failure      401  {object}  common.AppError
// @Router       /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RefreshRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	tokens, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			return common.NewAppError(http.StatusUnauthorized, "Invalid refresh token", nil)
		case errors.Is(err, service.ErrAccountNotFound):
			return common.NewAppError(http.StatusUnauthorized, "User not found", nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not refresh tokens", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tokens)
	return nil
}

// Me godoc
// @Summary      Get current user
// @Description  Retrieve the profile of the currently authenticated user.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.User
// @Failure      401  {object}  common.AppError
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) *common.AppError {
	token, ok := r.Context().Value(BearerTokenKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Could not validate credentials", nil)
	}

	user, err := h.service.GetProfile(token)
	if err != nil {
		return common.NewAppError(http.StatusUnauthorized, "Could not validate credentials", nil)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
	return nil
}

// ChangePassword godoc
// @Summary      Change password
// @Description  Change the password for the currently authenticated user. Requires the current password for verification.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.ChangePasswordRequest true "Password change payload"
// @Success      200  {object}  model.MessageResponse
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError
// @Router       /api/v1/auth/change-password [post]
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) *common.AppError {
	token, ok := r.Context().Value(BearerTokenKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Could not validate credentials", nil)
	}

	var req model.ChangePasswordRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	if err := h.service.ChangePassword(token, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrIncorrectPassword):
			return common.NewAppError(http.StatusBadRequest, "Incorrect current password", nil)
		case errors.Is(err, service.ErrUnauthenticated):
			return common.NewAppError(http.StatusUnauthorized, "Could not validate credentials", nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not change password", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.MessageResponse{Message: "Password updated successfully"})
	return nil
}

// Logout godoc
// @Summary      Logout
// @Description  Logout the current user. Tokens are not invalidated server-side; they age out on their own TTL.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  model.MessageResponse
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	if err := h.service.Logout(); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not log out", err)
	}

	logger.Log.Info("Logout acknowledged")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.MessageResponse{Message: "Successfully logged out"})
	return nil
}

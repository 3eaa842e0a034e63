package handler

import (
	"encoding/json"
	"net/http"

	"viewtube-account-server/internal/config"
	"viewtube-account-server/internal/domain"
	"viewtube-account-server/internal/middleware"
	"viewtube-account-server/internal/service"
	"viewtube-account-server/pkg/response"

	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService *service.UserService
	authService *service.AuthService
	validator   *validator.Validate
	upload      config.UploadConfig
}

func NewUserHandler(userService *service.UserService, authService *service.AuthService, upload config.UploadConfig) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		validator:   validator.New(),
		upload:      upload,
	}
}

func (h *UserHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, user, "Current user fetched successfully")
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, users, "Users fetched successfully")
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req domain.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.authService.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, nil, "Password changed successfully")
}

func (h *UserHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req domain.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	user, err := h.userService.UpdateAccount(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, user, "User details updated successfully")
}

func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, "avatar", func(r *http.Request, userID, path string) (*domain.User, error) {
		return h.userService.UpdateAvatar(r.Context(), userID, path)
	}, "Avatar updated successfully")
}

func (h *UserHandler) UpdateCoverImage(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, "coverImage", func(r *http.Request, userID, path string) (*domain.User, error) {
		return h.userService.UpdateCoverImage(r.Context(), userID, path)
	}, "Cover image updated successfully")
}

func (h *UserHandler) updateImage(w http.ResponseWriter, r *http.Request, field string, update func(*http.Request, string, string) (*domain.User, error), message string) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(h.upload.MaxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	path, err := saveUpload(r, field, h.upload.TempDir)
	if err != nil {
		response.BadRequest(w, "Failed to read uploaded file")
		return
	}
	defer removeTemp(path)

	user, err := update(r, userID, path)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, user, message)
}

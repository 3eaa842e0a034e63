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

type AuthHandler struct {
	authService *service.AuthService
	validator   *validator.Validate
	upload      config.UploadConfig
}

func NewAuthHandler(authService *service.AuthService, upload config.UploadConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator.New(),
		upload:      upload,
	}
}

// Register handles multipart registration: text fields plus a required
// avatar file and an optional coverImage file.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.upload.MaxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := domain.RegisterRequest{
		UserName: r.FormValue("userName"),
		FullName: r.FormValue("fullName"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if err := h.validator.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	avatarPath, err := saveUpload(r, "avatar", h.upload.TempDir)
	if err != nil {
		response.BadRequest(w, "Failed to read avatar file")
		return
	}
	defer removeTemp(avatarPath)

	coverPath, err := saveUpload(r, "coverImage", h.upload.TempDir)
	if err != nil {
		response.BadRequest(w, "Failed to read cover image file")
		return
	}
	defer removeTemp(coverPath)

	user, err := h.authService.Register(r.Context(), &req, avatarPath, coverPath)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, user, "The user is created successfully")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	loginResp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	setSessionCookies(w, loginResp.AccessToken, loginResp.RefreshToken)
	response.Success(w, loginResp, "User logged in successfully")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := h.authService.Logout(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}

	clearSessionCookies(w)
	response.Success(w, nil, "User logged out")
}

// Refresh accepts the refresh token from the cookie or the request body.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token := ""
	if cookie, err := r.Cookie("refreshToken"); err == nil {
		token = cookie.Value
	}
	if token == "" {
		var req domain.RefreshTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			token = req.RefreshToken
		}
	}

	pair, err := h.authService.Refresh(r.Context(), token)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	setSessionCookies(w, pair.AccessToken, pair.RefreshToken)
	response.Success(w, pair, "Access token refreshed")
}

func setSessionCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
	})
}

func clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{"accessToken", "refreshToken"} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
		})
	}
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"viewtube-account-server/internal/domain"
	"viewtube-account-server/internal/repository"
	"viewtube-account-server/internal/storage"
	"viewtube-account-server/pkg/hash"
	"viewtube-account-server/pkg/jwt"

	"github.com/google/uuid"
)

// AuthService orchestrates the session lifecycle: registration, login,
// logout, refresh and password changes. Token rotation always persists the
// new refresh token on the user record, so exactly one refresh token is
// valid per user at any time.
type AuthService struct {
	userRepo      repository.UserRepository
	uploader      storage.Uploader
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(userRepo repository.UserRepository, uploader storage.Uploader, accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		uploader:      uploader,
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// Register creates the account and uploads avatar (required) and cover
// image (optional). The returned projection never carries the password
// hash or refresh token.
func (s *AuthService) Register(ctx context.Context, req *domain.RegisterRequest, avatarPath, coverPath string) (*domain.User, error) {
	for _, field := range []string{req.UserName, req.FullName, req.Email, req.Password} {
		if strings.TrimSpace(field) == "" {
			return nil, ErrMissingFields
		}
	}

	userName := strings.ToLower(strings.TrimSpace(req.UserName))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if exists, err := s.userRepo.UserNameExists(userName); err == nil && exists {
		return nil, ErrDuplicateUser
	}
	if exists, err := s.userRepo.EmailExists(email); err == nil && exists {
		return nil, ErrDuplicateUser
	}

	if avatarPath == "" {
		return nil, ErrMissingAvatar
	}

	avatarURL, err := s.uploader.Upload(ctx, avatarPath)
	if err != nil || avatarURL == "" {
		return nil, ErrUploadFailed
	}

	coverURL := ""
	if coverPath != "" {
		// A failed cover upload is not fatal; the field is optional.
		coverURL, _ = s.uploader.Upload(ctx, coverPath)
	}

	user := &domain.User{
		ID:         uuid.New().String(),
		UserName:   userName,
		Email:      email,
		FullName:   strings.TrimSpace(req.FullName),
		Avatar:     avatarURL,
		CoverImage: coverURL,
		Password:   req.Password,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}

	created, err := s.userRepo.FindByID(user.ID)
	if err != nil {
		return nil, err
	}

	return sanitize(created), nil
}

// Login authenticates by userName or email and rotates the token pair.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	if req.UserName == "" && req.Email == "" {
		return nil, ErrMissingIdentifier
	}

	var user *domain.User
	var err error
	if req.UserName != "" {
		user, err = s.userRepo.FindByUserName(strings.ToLower(req.UserName))
	} else {
		user, err = s.userRepo.FindByEmail(strings.ToLower(req.Email))
	}
	if err != nil {
		return nil, ErrUserNotFound
	}

	if err := hash.Compare(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.rotateTokens(user.ID)
	if err != nil {
		return nil, err
	}

	loggedIn, err := s.userRepo.FindByID(user.ID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	return &domain.LoginResponse{
		User:         sanitize(loggedIn),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout clears the refresh-token slot; every previously issued refresh
// token stops working immediately.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(userID, ""); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// Refresh validates the incoming refresh token, checks it against the
// stored slot (the single-use rotation check) and rotates the pair.
func (s *AuthService) Refresh(ctx context.Context, incomingToken string) (*domain.TokenPair, error) {
	if incomingToken == "" {
		return nil, ErrMissingRefreshToken
	}

	claims, err := jwt.ValidateRefreshToken(incomingToken, s.refreshSecret)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	if user.RefreshToken == "" || incomingToken != user.RefreshToken {
		return nil, ErrRefreshTokenReused
	}

	accessToken, refreshToken, err := s.rotateTokens(user.ID)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ChangePassword verifies the old password before persisting the new one;
// the repository re-hashes on write.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return ErrMissingFields
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}

	if err := hash.Compare(user.Password, oldPassword); err != nil {
		return ErrInvalidOldPassword
	}

	return s.userRepo.UpdatePassword(userID, newPassword)
}

func (s *AuthService) rotateTokens(userID string) (string, string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", "", ErrUserNotFound
	}

	accessToken, err := jwt.GenerateAccessToken(user.ID, user.Email, user.UserName, user.FullName, s.accessTTL, s.accessSecret)
	if err != nil {
		return "", "", ErrTokenGeneration
	}

	refreshToken, err := jwt.GenerateRefreshToken(user.ID, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return "", "", ErrTokenGeneration
	}

	if err := s.userRepo.UpdateRefreshToken(user.ID, refreshToken); err != nil {
		return "", "", ErrTokenGeneration
	}

	return accessToken, refreshToken, nil
}

// sanitize strips the secrets off a user record before it leaves the
// service layer.
func sanitize(user *domain.User) *domain.User {
	user.Password = ""
	user.RefreshToken = ""
	return user
}

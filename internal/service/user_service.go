package service

import (
	"context"
	"errors"
	"strings"

	"viewtube-account-server/internal/domain"
	"viewtube-account-server/internal/repository"
	"viewtube-account-server/internal/storage"
)

// UserService covers profile reads and mutations outside the session
// lifecycle. Every returned projection has password and refresh token
// stripped.
type UserService struct {
	userRepo repository.UserRepository
	uploader storage.Uploader
}

func NewUserService(userRepo repository.UserRepository, uploader storage.Uploader) *UserService {
	return &UserService{
		userRepo: userRepo,
		uploader: uploader,
	}
}

func (s *UserService) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	return sanitize(user), nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		sanitize(user)
	}

	return users, nil
}

func (s *UserService) UpdateAccount(ctx context.Context, userID string, req *domain.UpdateAccountRequest) (*domain.User, error) {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, ErrMissingFields
	}

	if err := s.userRepo.UpdateAccount(userID, strings.TrimSpace(req.FullName), strings.TrimSpace(req.Email)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.GetByID(ctx, userID)
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID, localPath string) (*domain.User, error) {
	if localPath == "" {
		return nil, ErrMissingAvatar
	}

	url, err := s.uploader.Upload(ctx, localPath)
	if err != nil || url == "" {
		return nil, ErrUploadFailed
	}

	if err := s.userRepo.UpdateAvatar(userID, url); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.GetByID(ctx, userID)
}

func (s *UserService) UpdateCoverImage(ctx context.Context, userID, localPath string) (*domain.User, error) {
	if localPath == "" {
		return nil, ErrMissingCoverImage
	}

	url, err := s.uploader.Upload(ctx, localPath)
	if err != nil || url == "" {
		return nil, ErrUploadFailed
	}

	if err := s.userRepo.UpdateCoverImage(userID, url); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.GetByID(ctx, userID)
}

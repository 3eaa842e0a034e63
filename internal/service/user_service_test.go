package service

import (
	"context"
	"errors"
	"testing"

	"viewtube-account-server/internal/domain"
)

func newSeededUserService(uploader *mockUploader) (*UserService, *mockUserRepository) {
	repo := newMockUserRepository()
	repo.Create(&domain.User{
		ID: "user-1", UserName: "frank",
		Email: "frank@example.com", FullName: "Frank F",
		Avatar: "https://cdn.example.com/frank.png", Password: "Password123!",
	})
	return NewUserService(repo, uploader), repo
}

func TestUserService_GetByID(t *testing.T) {
	svc, _ := newSeededUserService(&mockUploader{})

	user, err := svc.GetByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if user.Password != "" || user.RefreshToken != "" {
		t.Error("GetByID() projection leaked password or refreshToken")
	}

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByID() error = %v, want %v", err, ErrUserNotFound)
	}
}

func TestUserService_List(t *testing.T) {
	svc, repo := newSeededUserService(&mockUploader{})
	repo.Create(&domain.User{
		ID: "user-2", UserName: "grace",
		Email: "grace@example.com", FullName: "Grace G", Password: "Password123!",
	})

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("List() returned %d users, want 2", len(users))
	}

	for _, user := range users {
		if user.Password != "" || user.RefreshToken != "" {
			t.Errorf("List() leaked secrets for %s", user.UserName)
		}
	}
}

func TestUserService_UpdateAccount(t *testing.T) {
	tests := []struct {
		name    string
		req     *domain.UpdateAccountRequest
		wantErr error
	}{
		{
			name: "successful update",
			req:  &domain.UpdateAccountRequest{FullName: "Franklin F", Email: "franklin@example.com"},
		},
		{
			name:    "blank fullName",
			req:     &domain.UpdateAccountRequest{FullName: " ", Email: "x@example.com"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "blank email",
			req:     &domain.UpdateAccountRequest{FullName: "Frank F", Email: ""},
			wantErr: ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newSeededUserService(&mockUploader{})

			user, err := svc.UpdateAccount(context.Background(), "user-1", tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UpdateAccount() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("UpdateAccount() error = %v", err)
			}

			if user.FullName != "Franklin F" || user.Email != "franklin@example.com" {
				t.Errorf("UpdateAccount() projection = %+v", user)
			}

			if user.Password != "" {
				t.Error("UpdateAccount() projection leaked password")
			}

			if repo.users["user-1"].FullName != "Franklin F" {
				t.Error("UpdateAccount() did not persist fullName")
			}
		})
	}
}

func TestUserService_UpdateAvatar(t *testing.T) {
	svc, repo := newSeededUserService(&mockUploader{})

	if _, err := svc.UpdateAvatar(context.Background(), "user-1", ""); !errors.Is(err, ErrMissingAvatar) {
		t.Errorf("UpdateAvatar() error = %v, want %v", err, ErrMissingAvatar)
	}

	user, err := svc.UpdateAvatar(context.Background(), "user-1", "/tmp/new-avatar.png")
	if err != nil {
		t.Fatalf("UpdateAvatar() error = %v", err)
	}

	if user.Avatar != "https://cdn.example.com/new-avatar.png" {
		t.Errorf("UpdateAvatar() avatar = %s", user.Avatar)
	}

	if repo.users["user-1"].Avatar != user.Avatar {
		t.Error("UpdateAvatar() did not persist the new URL")
	}

	failSvc, _ := newSeededUserService(&mockUploader{fail: true})
	if _, err := failSvc.UpdateAvatar(context.Background(), "user-1", "/tmp/new-avatar.png"); !errors.Is(err, ErrUploadFailed) {
		t.Errorf("UpdateAvatar() upload failure error = %v, want %v", err, ErrUploadFailed)
	}
}

func TestUserService_UpdateCoverImage(t *testing.T) {
	svc, repo := newSeededUserService(&mockUploader{})

	if _, err := svc.UpdateCoverImage(context.Background(), "user-1", ""); !errors.Is(err, ErrMissingCoverImage) {
		t.Errorf("UpdateCoverImage() error = %v, want %v", err, ErrMissingCoverImage)
	}

	user, err := svc.UpdateCoverImage(context.Background(), "user-1", "/tmp/new-cover.png")
	if err != nil {
		t.Fatalf("UpdateCoverImage() error = %v", err)
	}

	// The coverImage field itself is updated; the avatar is untouched.
	if user.CoverImage != "https://cdn.example.com/new-cover.png" {
		t.Errorf("UpdateCoverImage() coverImage = %s", user.CoverImage)
	}

	if repo.users["user-1"].Avatar != "https://cdn.example.com/frank.png" {
		t.Error("UpdateCoverImage() touched the avatar field")
	}

	if repo.users["user-1"].CoverImage != user.CoverImage {
		t.Error("UpdateCoverImage() did not persist the new URL")
	}
}

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"viewtube-account-server/internal/domain"
	"viewtube-account-server/internal/repository"
	"viewtube-account-server/pkg/hash"
)

// mockUserRepository mirrors the CouchDB repository's write-path behavior:
// Create and UpdatePassword hash, Create lowercases and enforces
// uniqueness.
type mockUserRepository struct {
	users map[string]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *mockUserRepository) Create(user *domain.User) error {
	user.UserName = strings.ToLower(user.UserName)
	user.Email = strings.ToLower(user.Email)

	for _, u := range m.users {
		if u.UserName == user.UserName || u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}

	hashed, err := hash.Hash(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed

	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepository) FindByID(id string) (*domain.User, error) {
	if user, ok := m.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) FindByUserName(userName string) (*domain.User, error) {
	for _, user := range m.users {
		if user.UserName == strings.ToLower(userName) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) FindByEmail(email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == strings.ToLower(email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) List() ([]*domain.User, error) {
	var users []*domain.User
	for _, user := range m.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (m *mockUserRepository) UpdateAccount(id, fullName, email string) error {
	user, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.FullName = fullName
	user.Email = strings.ToLower(email)
	user.UpdatedAt = time.Now()
	return nil
}

func (m *mockUserRepository) UpdateAvatar(id, url string) error {
	user, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.Avatar = url
	return nil
}

func (m *mockUserRepository) UpdateCoverImage(id, url string) error {
	user, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.CoverImage = url
	return nil
}

func (m *mockUserRepository) UpdatePassword(id, newPassword string) error {
	user, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	hashed, err := hash.Hash(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return nil
}

func (m *mockUserRepository) UpdateRefreshToken(id, token string) error {
	user, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.RefreshToken = token
	return nil
}

func (m *mockUserRepository) AppendWatchHistory(id, videoID string) error {
	user, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.WatchHistory = append(user.WatchHistory, videoID)
	return nil
}

func (m *mockUserRepository) UserNameExists(userName string) (bool, error) {
	_, err := m.FindByUserName(userName)
	return err == nil, nil
}

func (m *mockUserRepository) EmailExists(email string) (bool, error) {
	_, err := m.FindByEmail(email)
	return err == nil, nil
}

type mockSubscriptionRepository struct {
	subs []*domain.Subscription
}

func newMockSubscriptionRepository() *mockSubscriptionRepository {
	return &mockSubscriptionRepository{}
}

func (m *mockSubscriptionRepository) Create(sub *domain.Subscription) error {
	m.subs = append(m.subs, sub)
	return nil
}

func (m *mockSubscriptionRepository) Delete(subscriberID, channelID string) error {
	for i, sub := range m.subs {
		if sub.Subscriber == subscriberID && sub.Channel == channelID {
			m.subs = append(m.subs[:i], m.subs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockSubscriptionRepository) Find(subscriberID, channelID string) (*domain.Subscription, error) {
	for _, sub := range m.subs {
		if sub.Subscriber == subscriberID && sub.Channel == channelID {
			return sub, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockSubscriptionRepository) FindByChannel(channelID string) ([]*domain.Subscription, error) {
	var out []*domain.Subscription
	for _, sub := range m.subs {
		if sub.Channel == channelID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (m *mockSubscriptionRepository) FindBySubscriber(subscriberID string) ([]*domain.Subscription, error) {
	var out []*domain.Subscription
	for _, sub := range m.subs {
		if sub.Subscriber == subscriberID {
			out = append(out, sub)
		}
	}
	return out, nil
}

type mockVideoRepository struct {
	videos map[string]*domain.Video
}

func newMockVideoRepository() *mockVideoRepository {
	return &mockVideoRepository{
		videos: make(map[string]*domain.Video),
	}
}

func (m *mockVideoRepository) Create(video *domain.Video) error {
	m.videos[video.ID] = video
	return nil
}

func (m *mockVideoRepository) FindByID(id string) (*domain.Video, error) {
	if video, ok := m.videos[id]; ok {
		return video, nil
	}
	return nil, repository.ErrNotFound
}

type mockUploader struct {
	fail  bool
	calls []string
}

func (m *mockUploader) Upload(ctx context.Context, localPath string) (string, error) {
	if m.fail {
		return "", fmt.Errorf("upload failed")
	}
	m.calls = append(m.calls, localPath)
	return fmt.Sprintf("https://cdn.example.com/%s", filepath.Base(localPath)), nil
}

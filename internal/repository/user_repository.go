package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"viewtube-account-server/internal/domain"
	"viewtube-account-server/pkg/hash"

	"github.com/go-kivik/kivik/v4"
)

type UserRepository interface {
	Create(user *domain.User) error
	FindByID(id string) (*domain.User, error)
	FindByUserName(userName string) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	List() ([]*domain.User, error)
	UpdateAccount(id, fullName, email string) error
	UpdateAvatar(id, url string) error
	UpdateCoverImage(id, url string) error
	UpdatePassword(id, newPassword string) error
	UpdateRefreshToken(id, token string) error
	AppendWatchHistory(id, videoID string) error
	UserNameExists(userName string) (bool, error)
	EmailExists(email string) (bool, error)
}

type userRepository struct {
	client *kivik.Client
	dbName string
}

func NewUserRepository(client *kivik.Client, dbName string) UserRepository {
	return &userRepository{
		client: client,
		dbName: dbName,
	}
}

// Create persists a new user. Password hashing and userName/email
// lowercasing happen here, on the write path, so no caller can bypass them.
func (r *userRepository) Create(user *domain.User) error {
	user.UserName = strings.ToLower(user.UserName)
	user.Email = strings.ToLower(user.Email)

	if exists, err := r.UserNameExists(user.UserName); err != nil {
		return err
	} else if exists {
		return ErrDuplicate
	}
	if exists, err := r.EmailExists(user.Email); err != nil {
		return err
	} else if exists {
		return ErrDuplicate
	}

	hashed, err := hash.Hash(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hashed

	db := r.client.DB(r.dbName)

	docID := fmt.Sprintf("user:%s", user.ID)
	if _, err := db.Put(context.Background(), docID, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) FindByID(id string) (*domain.User, error) {
	db := r.client.DB(r.dbName)

	docID := fmt.Sprintf("user:%s", id)
	row := db.Get(context.Background(), docID)

	var user domain.User
	if err := row.ScanDoc(&user); err != nil {
		return nil, ErrNotFound
	}

	return &user, nil
}

func (r *userRepository) FindByUserName(userName string) (*domain.User, error) {
	return r.findOne(map[string]interface{}{
		"userName": strings.ToLower(userName),
	})
}

func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	return r.findOne(map[string]interface{}{
		"email": strings.ToLower(email),
	})
}

func (r *userRepository) findOne(selector map[string]interface{}) (*domain.User, error) {
	db := r.client.DB(r.dbName)

	query := map[string]interface{}{
		"selector": selector,
		"limit":    1,
	}

	rows := db.Find(context.Background(), query)
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrNotFound
	}

	var user domain.User
	if err := rows.ScanDoc(&user); err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) List() ([]*domain.User, error) {
	db := r.client.DB(r.dbName)

	query := map[string]interface{}{
		"selector": map[string]interface{}{
			"userName": map[string]interface{}{"$exists": true},
		},
	}

	rows := db.Find(context.Background(), query)
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.ScanDoc(&user); err != nil {
			continue
		}
		users = append(users, &user)
	}

	return users, nil
}

func (r *userRepository) UpdateAccount(id, fullName, email string) error {
	return r.updateFields(id, map[string]interface{}{
		"fullName": fullName,
		"email":    strings.ToLower(email),
	})
}

func (r *userRepository) UpdateAvatar(id, url string) error {
	return r.updateFields(id, map[string]interface{}{
		"avatar": url,
	})
}

func (r *userRepository) UpdateCoverImage(id, url string) error {
	return r.updateFields(id, map[string]interface{}{
		"coverImage": url,
	})
}

// UpdatePassword re-hashes on every password write; plaintext never lands
// in the document.
func (r *userRepository) UpdatePassword(id, newPassword string) error {
	hashed, err := hash.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return r.updateFields(id, map[string]interface{}{
		"password": hashed,
	})
}

// UpdateRefreshToken overwrites the single refresh-token slot. An empty
// token clears it, which revokes every outstanding refresh token for the
// user.
func (r *userRepository) UpdateRefreshToken(id, token string) error {
	var value interface{}
	if token != "" {
		value = token
	}

	return r.updateFields(id, map[string]interface{}{
		"refreshToken": value,
	})
}

func (r *userRepository) AppendWatchHistory(id, videoID string) error {
	db := r.client.DB(r.dbName)
	docID := fmt.Sprintf("user:%s", id)

	var existingDoc map[string]interface{}
	row := db.Get(context.Background(), docID)
	if err := row.ScanDoc(&existingDoc); err != nil {
		return ErrNotFound
	}

	history, _ := existingDoc["watchHistory"].([]interface{})
	existingDoc["watchHistory"] = append(history, videoID)
	existingDoc["updatedAt"] = time.Now()

	if _, err := db.Put(context.Background(), docID, existingDoc); err != nil {
		return fmt.Errorf("failed to append watch history: %w", err)
	}

	return nil
}

func (r *userRepository) updateFields(id string, fields map[string]interface{}) error {
	db := r.client.DB(r.dbName)
	docID := fmt.Sprintf("user:%s", id)

	var existingDoc map[string]interface{}
	row := db.Get(context.Background(), docID)
	if err := row.ScanDoc(&existingDoc); err != nil {
		return ErrNotFound
	}

	for k, v := range fields {
		existingDoc[k] = v
	}
	existingDoc["updatedAt"] = time.Now()

	if _, err := db.Put(context.Background(), docID, existingDoc); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (r *userRepository) UserNameExists(userName string) (bool, error) {
	_, err := r.FindByUserName(userName)
	if err != nil {
		if err == ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	_, err := r.FindByEmail(email)
	if err != nil {
		if err == ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

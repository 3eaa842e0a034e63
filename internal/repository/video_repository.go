package repository

import (
	"context"
	"fmt"

	"viewtube-account-server/internal/domain"

	"github.com/go-kivik/kivik/v4"
)

type VideoRepository interface {
	Create(video *domain.Video) error
	FindByID(id string) (*domain.Video, error)
}

type videoRepository struct {
	client *kivik.Client
	dbName string
}

func NewVideoRepository(client *kivik.Client, dbName string) VideoRepository {
	return &videoRepository{
		client: client,
		dbName: dbName,
	}
}

func (r *videoRepository) Create(video *domain.Video) error {
	db := r.client.DB(r.dbName)

	docID := fmt.Sprintf("video:%s", video.ID)
	if _, err := db.Put(context.Background(), docID, video); err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

func (r *videoRepository) FindByID(id string) (*domain.Video, error) {
	db := r.client.DB(r.dbName)

	docID := fmt.Sprintf("video:%s", id)
	row := db.Get(context.Background(), docID)

	var video domain.Video
	if err := row.ScanDoc(&video); err != nil {
		return nil, ErrNotFound
	}

	return &video, nil
}

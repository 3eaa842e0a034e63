package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"viewtube-account-server/internal/domain"
	"viewtube-account-server/internal/repository"

	"github.com/google/uuid"
)

// ChannelService computes the social-graph read models. CouchDB has no
// server-side join pipeline, so the joins run as sequential lookups plus
// in-memory projection; the observable shape matches the store-side
// aggregation it replaces.
type ChannelService struct {
	userRepo  repository.UserRepository
	subRepo   repository.SubscriptionRepository
	videoRepo repository.VideoRepository
}

func NewChannelService(userRepo repository.UserRepository, subRepo repository.SubscriptionRepository, videoRepo repository.VideoRepository) *ChannelService {
	return &ChannelService{
		userRepo:  userRepo,
		subRepo:   subRepo,
		videoRepo: videoRepo,
	}
}

// GetChannelProfile joins subscription edges both ways around the target
// user. viewerID may be empty (anonymous viewer); IsSubscribed is then
// always false.
func (s *ChannelService) GetChannelProfile(ctx context.Context, viewerID, userName string) (*domain.ChannelProfile, error) {
	if strings.TrimSpace(userName) == "" {
		return nil, ErrMissingFields
	}

	user, err := s.userRepo.FindByUserName(strings.ToLower(strings.TrimSpace(userName)))
	if err != nil {
		return nil, ErrChannelNotFound
	}

	subscribers, err := s.subRepo.FindByChannel(user.ID)
	if err != nil {
		return nil, err
	}

	subscribedTo, err := s.subRepo.FindBySubscriber(user.ID)
	if err != nil {
		return nil, err
	}

	isSubscribed := false
	if viewerID != "" {
		for _, sub := range subscribers {
			if sub.Subscriber == viewerID {
				isSubscribed = true
				break
			}
		}
	}

	return &domain.ChannelProfile{
		FullName:                 user.FullName,
		UserName:                 user.UserName,
		Email:                    user.Email,
		SubscribersCount:         len(subscribers),
		ChannelSubscribedToCount: len(subscribedTo),
		IsSubscribed:             isSubscribed,
		Avatar:                   user.Avatar,
		CoverImage:               user.CoverImage,
	}, nil
}

// GetWatchHistory resolves the caller's watchHistory references in stored
// order; the order is meaningful and must survive the join. Dangling video
// references are dropped, matching left-join semantics.
func (s *ChannelService) GetWatchHistory(ctx context.Context, userID string) ([]*domain.VideoWithOwner, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	history := make([]*domain.VideoWithOwner, 0, len(user.WatchHistory))
	for _, videoID := range user.WatchHistory {
		video, err := s.videoRepo.FindByID(videoID)
		if err != nil {
			continue
		}

		var owner domain.VideoOwner
		if ownerUser, err := s.userRepo.FindByID(video.Owner); err == nil {
			owner = domain.VideoOwner{
				FullName: ownerUser.FullName,
				UserName: ownerUser.UserName,
				Avatar:   ownerUser.Avatar,
			}
		}

		history = append(history, &domain.VideoWithOwner{
			ID:          video.ID,
			VideoFile:   video.VideoFile,
			Thumbnail:   video.Thumbnail,
			Title:       video.Title,
			Description: video.Description,
			Duration:    video.Duration,
			Views:       video.Views,
			Owner:       owner,
			CreatedAt:   video.CreatedAt,
		})
	}

	return history, nil
}

// RecordWatch appends a video to the caller's watch history. Appending
// keeps the list in watch order.
func (s *ChannelService) RecordWatch(ctx context.Context, userID, videoID string) error {
	if _, err := s.videoRepo.FindByID(videoID); err != nil {
		return ErrVideoNotFound
	}

	if err := s.userRepo.AppendWatchHistory(userID, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}

// Subscribe creates the subscriber->channel edge. Subscribing twice is a
// no-op.
func (s *ChannelService) Subscribe(ctx context.Context, subscriberID, channelID string) error {
	if subscriberID == channelID {
		return ErrSelfSubscription
	}

	if _, err := s.userRepo.FindByID(channelID); err != nil {
		return ErrChannelNotFound
	}

	if _, err := s.subRepo.Find(subscriberID, channelID); err == nil {
		return nil
	}

	sub := &domain.Subscription{
		ID:         uuid.New().String(),
		Subscriber: subscriberID,
		Channel:    channelID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	return s.subRepo.Create(sub)
}

func (s *ChannelService) Unsubscribe(ctx context.Context, subscriberID, channelID string) error {
	if err := s.subRepo.Delete(subscriberID, channelID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrChannelNotFound
		}
		return err
	}
	return nil
}

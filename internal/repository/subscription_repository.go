package repository

import (
	"context"
	"fmt"

	"viewtube-account-server/internal/domain"

	"github.com/go-kivik/kivik/v4"
)

type SubscriptionRepository interface {
	Create(sub *domain.Subscription) error
	Delete(subscriberID, channelID string) error
	Find(subscriberID, channelID string) (*domain.Subscription, error)
	FindByChannel(channelID string) ([]*domain.Subscription, error)
	FindBySubscriber(subscriberID string) ([]*domain.Subscription, error)
}

type subscriptionRepository struct {
	client *kivik.Client
	dbName string
}

func NewSubscriptionRepository(client *kivik.Client, dbName string) SubscriptionRepository {
	return &subscriptionRepository{
		client: client,
		dbName: dbName,
	}
}

func (r *subscriptionRepository) Create(sub *domain.Subscription) error {
	db := r.client.DB(r.dbName)

	docID := fmt.Sprintf("subscription:%s", sub.ID)
	if _, err := db.Put(context.Background(), docID, sub); err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

func (r *subscriptionRepository) Delete(subscriberID, channelID string) error {
	sub, err := r.Find(subscriberID, channelID)
	if err != nil {
		return err
	}

	db := r.client.DB(r.dbName)
	docID := fmt.Sprintf("subscription:%s", sub.ID)

	var existingDoc map[string]interface{}
	row := db.Get(context.Background(), docID)
	if err := row.ScanDoc(&existingDoc); err != nil {
		return ErrNotFound
	}

	rev, _ := existingDoc["_rev"].(string)
	if _, err := db.Delete(context.Background(), docID, rev); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	return nil
}

func (r *subscriptionRepository) Find(subscriberID, channelID string) (*domain.Subscription, error) {
	db := r.client.DB(r.dbName)

	query := map[string]interface{}{
		"selector": map[string]interface{}{
			"subscriber": subscriberID,
			"channel":    channelID,
		},
		"limit": 1,
	}

	rows := db.Find(context.Background(), query)
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query subscription: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrNotFound
	}

	var sub domain.Subscription
	if err := rows.ScanDoc(&sub); err != nil {
		return nil, fmt.Errorf("failed to scan subscription: %w", err)
	}

	return &sub, nil
}

func (r *subscriptionRepository) FindByChannel(channelID string) ([]*domain.Subscription, error) {
	return r.findAll(map[string]interface{}{
		"channel": channelID,
		"subscriber": map[string]interface{}{
			"$exists": true,
		},
	})
}

func (r *subscriptionRepository) FindBySubscriber(subscriberID string) ([]*domain.Subscription, error) {
	return r.findAll(map[string]interface{}{
		"subscriber": subscriberID,
		"channel": map[string]interface{}{
			"$exists": true,
		},
	})
}

func (r *subscriptionRepository) findAll(selector map[string]interface{}) ([]*domain.Subscription, error) {
	db := r.client.DB(r.dbName)

	query := map[string]interface{}{
		"selector": selector,
	}

	rows := db.Find(context.Background(), query)
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []*domain.Subscription
	for rows.Next() {
		var sub domain.Subscription
		if err := rows.ScanDoc(&sub); err != nil {
			continue
		}
		subs = append(subs, &sub)
	}

	return subs, nil
}

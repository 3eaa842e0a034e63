package domain

import "time"

// Subscription is a directed edge: Subscriber follows Channel. Both sides
// reference User ids.
type Subscription struct {
	ID         string    `json:"id"`
	Subscriber string    `json:"subscriber"`
	Channel    string    `json:"channel"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

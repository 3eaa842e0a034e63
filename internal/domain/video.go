package domain

import "time"

type Video struct {
	ID          string    `json:"id"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VideoOwner is the reduced owner projection embedded in watch-history
// entries.
type VideoOwner struct {
	FullName string `json:"fullName"`
	UserName string `json:"userName"`
	Avatar   string `json:"avatar"`
}

// VideoWithOwner is a watch-history entry: the video document with its
// owner reference resolved.
type VideoWithOwner struct {
	ID          string     `json:"id"`
	VideoFile   string     `json:"videoFile"`
	Thumbnail   string     `json:"thumbnail"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    float64    `json:"duration"`
	Views       int64      `json:"views"`
	Owner       VideoOwner `json:"owner"`
	CreatedAt   time.Time  `json:"createdAt"`
}

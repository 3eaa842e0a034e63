package service

import "errors"

var (
	// Validation failures (400).
	ErrMissingFields     = errors.New("all fields are required")
	ErrMissingIdentifier = errors.New("userName or email is required")
	ErrMissingAvatar     = errors.New("avatar file is required")
	ErrMissingCoverImage = errors.New("cover image file is required")
	ErrUploadFailed      = errors.New("error while uploading the file")
	ErrSelfSubscription  = errors.New("cannot subscribe to your own channel")

	// Conflicts (409).
	ErrDuplicateUser = errors.New("user with this email or userName already exists")

	// Authentication failures (401).
	ErrInvalidCredentials  = errors.New("invalid user credentials")
	ErrInvalidOldPassword  = errors.New("invalid old password")
	ErrMissingRefreshToken = errors.New("unauthorized request")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenReused  = errors.New("refresh token is expired or used")

	// Lookup failures (404).
	ErrUserNotFound    = errors.New("user does not exist")
	ErrChannelNotFound = errors.New("channel does not exist")
	ErrVideoNotFound   = errors.New("video does not exist")

	// Unexpected failures (500).
	ErrTokenGeneration = errors.New("something went wrong while generating access and refresh tokens")
)

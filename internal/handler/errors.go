package handler

import (
	"errors"
	"net/http"

	"viewtube-account-server/internal/service"
	"viewtube-account-server/pkg/response"
)

// writeServiceError maps service sentinel errors onto the response
// envelope. Anything unrecognized is an internal error; the envelope
// contract holds on every failure path.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrMissingIdentifier),
		errors.Is(err, service.ErrMissingAvatar),
		errors.Is(err, service.ErrMissingCoverImage),
		errors.Is(err, service.ErrUploadFailed),
		errors.Is(err, service.ErrSelfSubscription):
		response.BadRequest(w, err.Error())
	case errors.Is(err, service.ErrDuplicateUser):
		response.Conflict(w, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidOldPassword),
		errors.Is(err, service.ErrMissingRefreshToken),
		errors.Is(err, service.ErrInvalidRefreshToken),
		errors.Is(err, service.ErrRefreshTokenReused):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrChannelNotFound),
		errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(w, err.Error())
	default:
		response.InternalError(w, "Something went wrong")
	}
}

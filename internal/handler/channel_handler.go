package handler

import (
	"net/http"

	"viewtube-account-server/internal/middleware"
	"viewtube-account-server/internal/service"
	"viewtube-account-server/pkg/response"

	"github.com/gorilla/mux"
)

type ChannelHandler struct {
	channelService *service.ChannelService
}

func NewChannelHandler(channelService *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{
		channelService: channelService,
	}
}

// GetProfile serves the channel read model. Authentication is optional;
// an anonymous viewer always sees isSubscribed=false.
func (h *ChannelHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userName := mux.Vars(r)["userName"]
	viewerID := middleware.GetUserID(r)

	profile, err := h.channelService.GetChannelProfile(r.Context(), viewerID, userName)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, profile, "User channel fetched successfully")
}

func (h *ChannelHandler) GetWatchHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	history, err := h.channelService.GetWatchHistory(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, history, "Watch history fetched successfully")
}

func (h *ChannelHandler) RecordWatch(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	videoID := mux.Vars(r)["videoId"]
	if err := h.channelService.RecordWatch(r.Context(), userID, videoID); err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, nil, "Video added to watch history")
}

func (h *ChannelHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	channelID := mux.Vars(r)["channelId"]
	if err := h.channelService.Subscribe(r.Context(), userID, channelID); err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, nil, "Subscribed successfully")
}

func (h *ChannelHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	channelID := mux.Vars(r)["channelId"]
	if err := h.channelService.Unsubscribe(r.Context(), userID, channelID); err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, nil, "Unsubscribed successfully")
}

package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/ishpreet36752/Trawell-Backend/internal/models"
	"github.com/ishpreet36752/Trawell-Backend/internal/services"
)

type UserHandler struct {
	connectionService services.ConnectionServiceInterface
	feedService       services.FeedServiceInterface
}

func NewUserHandler(connectionService services.ConnectionServiceInterface, feedService services.FeedServiceInterface) *UserHandler {
	return &UserHandler{
		connectionService: connectionService,
		feedService:       feedService,
	}
}

type ReceivedRequestsResponse struct {
	Requests []models.RequestWithSender `json:"requests"`
}

type ConnectionsResponse struct {
	Connections []models.UserProfile `json:"connections"`
}

func (h *UserHandler) ReceivedRequests(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	requests, err := h.connectionService.ListPendingRequests(r.Context(), user.ID)
	if err != nil {
		log.Printf("Error listing received requests: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, ReceivedRequestsResponse{Requests: requests})
}

func (h *UserHandler) Connections(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	connections, err := h.connectionService.ListConnections(r.Context(), user.ID)
	if err != nil {
		log.Printf("Error listing connections: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, ConnectionsResponse{Connections: connections})
}

func (h *UserHandler) Feed(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	// Absent or junk values come through as zero and fall back to the
	// service's defaults.
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	feed, err := h.feedService.GetFeed(r.Context(), user.ID, page, limit)
	if err != nil {
		log.Printf("Error getting feed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, feed)
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/ishpreet36752/Trawell-Backend/internal/models"
	"github.com/ishpreet36752/Trawell-Backend/internal/services"
)

type ConnectionHandler struct {
	connectionService services.ConnectionServiceInterface
}

func NewConnectionHandler(connectionService services.ConnectionServiceInterface) *ConnectionHandler {
	return &ConnectionHandler{connectionService: connectionService}
}

type SendRequestResponse struct {
	Request *models.ConnectionRequest `json:"request,omitempty"`
	Message string                    `json:"message,omitempty"`
}

type ReviewRequestResponse struct {
	Request *models.RequestWithSender `json:"request,omitempty"`
	Message string                    `json:"message,omitempty"`
}

func (h *ConnectionHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	action := models.RequestStatus(r.PathValue("action"))

	targetID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	request, err := h.connectionService.SendRequest(r.Context(), user.ID, targetID, action)
	if errors.Is(err, services.ErrInvalidAction) {
		writeError(w, http.StatusBadRequest, "Action must be like or pass")
		return
	}
	if errors.Is(err, services.ErrSelfRequest) {
		writeError(w, http.StatusBadRequest, "Cannot send a request to yourself")
		return
	}
	if errors.Is(err, services.ErrTargetNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if errors.Is(err, services.ErrDuplicateRequest) {
		writeError(w, http.StatusConflict, "A request already exists between these users")
		return
	}
	if err != nil {
		log.Printf("Error sending connection request: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, SendRequestResponse{Request: request, Message: "Request sent"})
}

func (h *ConnectionHandler) ReviewRequest(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	decision := models.RequestStatus(r.PathValue("decision"))

	requestID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	reviewed, err := h.connectionService.ReviewRequest(r.Context(), user.ID, requestID, decision)
	if errors.Is(err, services.ErrInvalidAction) {
		writeError(w, http.StatusBadRequest, "Decision must be accept or reject")
		return
	}
	if errors.Is(err, services.ErrRequestNotFound) {
		writeError(w, http.StatusNotFound, "Request not found")
		return
	}
	if errors.Is(err, services.ErrRequestConflict) {
		writeError(w, http.StatusConflict, "Request was already reviewed")
		return
	}
	if err != nil {
		log.Printf("Error reviewing connection request: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	message := "Request accepted"
	if decision == models.RequestStatusReject {
		message = "Request rejected"
	}

	writeJSON(w, http.StatusOK, ReviewRequestResponse{Request: reviewed, Message: message})
}

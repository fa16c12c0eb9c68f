package services

import (
	"github.com/google/uuid"
	"github.com/ishpreet36752/Trawell-Backend/internal/models"
)

// CanSend reports whether actorID may open a connection request toward
// targetID. Self-requests are never allowed.
func CanSend(actorID, targetID uuid.UUID) bool {
	return actorID != targetID
}

// CanReview reports whether actorID may decide req. Only the recipient of a
// still-pending like may review it; callers must surface a failed check as
// a plain not-found so request ids cannot be probed.
func CanReview(actorID uuid.UUID, req *models.ConnectionRequest) bool {
	return req.ToUserID == actorID && req.Status == models.RequestStatusLike
}

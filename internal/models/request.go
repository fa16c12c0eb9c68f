package models

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestStatusLike   RequestStatus = "like"
	RequestStatusPass   RequestStatus = "pass"
	RequestStatusAccept RequestStatus = "accept"
	RequestStatusReject RequestStatus = "reject"
)

// ConnectionRequest is one edge of the social graph. There is at most one
// record per pair of users, regardless of direction, and records are never
// deleted: a pass consumes the pair just like a like does.
type ConnectionRequest struct {
	ID         uuid.UUID     `json:"id"`
	FromUserID uuid.UUID     `json:"from_user_id"`
	ToUserID   uuid.UUID     `json:"to_user_id"`
	Status     RequestStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type RequestWithSender struct {
	ConnectionRequest
	Sender UserProfile `json:"sender"`
}

type FeedPage struct {
	Users []UserProfile `json:"users"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Count int           `json:"count"`
}

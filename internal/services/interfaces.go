package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ishpreet36752/Trawell-Backend/internal/models"
)

// UserServiceInterface defines the contract for user operations.
type UserServiceInterface interface {
	Create(ctx context.Context, params models.CreateUserParams) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, params models.UpdateProfileParams) (*models.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, newPasswordHash string) error
}

// AuthServiceInterface defines the contract for authentication operations.
type AuthServiceInterface interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hash, password string) bool
	GenerateSessionToken() (token string, hash string, err error)
	CreateSession(ctx context.Context, userID uuid.UUID) (token string, err error)
	ValidateSession(ctx context.Context, token string) (*models.User, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteAllUserSessions(ctx context.Context, userID uuid.UUID) error
}

// ConnectionServiceInterface defines the contract for connection request operations.
type ConnectionServiceInterface interface {
	SendRequest(ctx context.Context, actorID, targetID uuid.UUID, action models.RequestStatus) (*models.ConnectionRequest, error)
	ReviewRequest(ctx context.Context, actorID, requestID uuid.UUID, decision models.RequestStatus) (*models.RequestWithSender, error)
	ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]models.RequestWithSender, error)
	ListConnections(ctx context.Context, userID uuid.UUID) ([]models.UserProfile, error)
}

// FeedServiceInterface defines the contract for feed operations.
type FeedServiceInterface interface {
	GetFeed(ctx context.Context, userID uuid.UUID, page, limit int) (*models.FeedPage, error)
}

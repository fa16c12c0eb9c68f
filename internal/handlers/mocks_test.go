package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/ishpreet36752/Trawell-Backend/internal/models"
)

type mockUserService struct {
	CreateFunc         func(ctx context.Context, params models.CreateUserParams) (*models.User, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*models.User, error)
	UpdateProfileFunc  func(ctx context.Context, userID uuid.UUID, params models.UpdateProfileParams) (*models.User, error)
	UpdatePasswordFunc func(ctx context.Context, userID uuid.UUID, newPasswordHash string) error
}

func (m *mockUserService) Create(ctx context.Context, params models.CreateUserParams) (*models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID uuid.UUID, params models.UpdateProfileParams) (*models.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, params)
	}
	return nil, nil
}

func (m *mockUserService) UpdatePassword(ctx context.Context, userID uuid.UUID, newPasswordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, userID, newPasswordHash)
	}
	return nil
}

type mockAuthService struct {
	HashPasswordFunc          func(password string) (string, error)
	VerifyPasswordFunc        func(hash, password string) bool
	GenerateSessionTokenFunc  func() (string, string, error)
	CreateSessionFunc         func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateSessionFunc       func(ctx context.Context, token string) (*models.User, error)
	DeleteSessionFunc         func(ctx context.Context, token string) error
	DeleteAllUserSessionsFunc func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockAuthService) HashPassword(password string) (string, error) {
	if m.HashPasswordFunc != nil {
		return m.HashPasswordFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *mockAuthService) VerifyPassword(hash, password string) bool {
	if m.VerifyPasswordFunc != nil {
		return m.VerifyPasswordFunc(hash, password)
	}
	return hash == "hashed_"+password
}

func (m *mockAuthService) GenerateSessionToken() (string, string, error) {
	if m.GenerateSessionTokenFunc != nil {
		return m.GenerateSessionTokenFunc()
	}
	return "token", "hash", nil
}

func (m *mockAuthService) CreateSession(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, userID)
	}
	return "test_session_token", nil
}

func (m *mockAuthService) ValidateSession(ctx context.Context, token string) (*models.User, error) {
	if m.ValidateSessionFunc != nil {
		return m.ValidateSessionFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockAuthService) DeleteSession(ctx context.Context, token string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, token)
	}
	return nil
}

func (m *mockAuthService) DeleteAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteAllUserSessionsFunc != nil {
		return m.DeleteAllUserSessionsFunc(ctx, userID)
	}
	return nil
}

type mockConnectionService struct {
	SendRequestFunc         func(ctx context.Context, actorID, targetID uuid.UUID, action models.RequestStatus) (*models.ConnectionRequest, error)
	ReviewRequestFunc       func(ctx context.Context, actorID, requestID uuid.UUID, decision models.RequestStatus) (*models.RequestWithSender, error)
	ListPendingRequestsFunc func(ctx context.Context, userID uuid.UUID) ([]models.RequestWithSender, error)
	ListConnectionsFunc     func(ctx context.Context, userID uuid.UUID) ([]models.UserProfile, error)
}

func (m *mockConnectionService) SendRequest(ctx context.Context, actorID, targetID uuid.UUID, action models.RequestStatus) (*models.ConnectionRequest, error) {
	if m.SendRequestFunc != nil {
		return m.SendRequestFunc(ctx, actorID, targetID, action)
	}
	return nil, nil
}

func (m *mockConnectionService) ReviewRequest(ctx context.Context, actorID, requestID uuid.UUID, decision models.RequestStatus) (*models.RequestWithSender, error) {
	if m.ReviewRequestFunc != nil {
		return m.ReviewRequestFunc(ctx, actorID, requestID, decision)
	}
	return nil, nil
}

func (m *mockConnectionService) ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]models.RequestWithSender, error) {
	if m.ListPendingRequestsFunc != nil {
		return m.ListPendingRequestsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockConnectionService) ListConnections(ctx context.Context, userID uuid.UUID) ([]models.UserProfile, error) {
	if m.ListConnectionsFunc != nil {
		return m.ListConnectionsFunc(ctx, userID)
	}
	return nil, nil
}

type mockFeedService struct {
	GetFeedFunc func(ctx context.Context, userID uuid.UUID, page, limit int) (*models.FeedPage, error)
}

func (m *mockFeedService) GetFeed(ctx context.Context, userID uuid.UUID, page, limit int) (*models.FeedPage, error) {
	if m.GetFeedFunc != nil {
		return m.GetFeedFunc(ctx, userID, page, limit)
	}
	return nil, nil
}

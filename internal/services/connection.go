package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ishpreet36752/Trawell-Backend/internal/models"
)

var (
	ErrInvalidAction    = errors.New("invalid action")
	ErrSelfRequest      = errors.New("cannot send a request to yourself")
	ErrTargetNotFound   = errors.New("target user not found")
	ErrDuplicateRequest = errors.New("a request already exists between these users")
	ErrRequestNotFound  = errors.New("request not found")
	ErrRequestConflict  = errors.New("request was modified concurrently")
)

type ConnectionService struct {
	db DB
}

func NewConnectionService(db DB) *ConnectionService {
	return &ConnectionService{db: db}
}

func (s *ConnectionService) SendRequest(ctx context.Context, actorID, targetID uuid.UUID, action models.RequestStatus) (*models.ConnectionRequest, error) {
	if action != models.RequestStatusLike && action != models.RequestStatusPass {
		return nil, ErrInvalidAction
	}

	if !CanSend(actorID, targetID) {
		return nil, ErrSelfRequest
	}

	var targetExists bool
	err := s.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)",
		targetID,
	).Scan(&targetExists)
	if err != nil {
		return nil, fmt.Errorf("checking target user: %w", err)
	}
	if !targetExists {
		return nil, ErrTargetNotFound
	}

	// One record per pair of users, regardless of direction or status. A
	// pass consumes the pair the same way a like does.
	var exists bool
	err = s.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM connection_requests
			WHERE (from_user_id = $1 AND to_user_id = $2)
			   OR (from_user_id = $2 AND to_user_id = $1)
		)`,
		actorID, targetID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking existing request: %w", err)
	}
	if exists {
		return nil, ErrDuplicateRequest
	}

	req := &models.ConnectionRequest{}
	err = s.db.QueryRow(ctx,
		`INSERT INTO connection_requests (from_user_id, to_user_id, status)
		 VALUES ($1, $2, $3)
		 ON CONFLICT DO NOTHING
		 RETURNING id, from_user_id, to_user_id, status, created_at, updated_at`,
		actorID, targetID, action,
	).Scan(&req.ID, &req.FromUserID, &req.ToUserID, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// Lost a race to a concurrent request for the same pair; the unique
		// pair index swallowed the insert.
		return nil, ErrDuplicateRequest
	}
	if err != nil {
		return nil, fmt.Errorf("creating connection request: %w", err)
	}

	return req, nil
}

func (s *ConnectionService) ReviewRequest(ctx context.Context, actorID, requestID uuid.UUID, decision models.RequestStatus) (*models.RequestWithSender, error) {
	if decision != models.RequestStatusAccept && decision != models.RequestStatusReject {
		return nil, ErrInvalidAction
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning review transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	req := &models.ConnectionRequest{}
	err = tx.QueryRow(ctx,
		`SELECT id, from_user_id, to_user_id, status, created_at, updated_at
		 FROM connection_requests
		 WHERE id = $1
		 FOR UPDATE`,
		requestID,
	).Scan(&req.ID, &req.FromUserID, &req.ToUserID, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting connection request: %w", err)
	}

	// A request addressed to someone else or already decided is reported
	// exactly like a missing one, so request ids cannot be probed.
	if !CanReview(actorID, req) {
		return nil, ErrRequestNotFound
	}

	err = tx.QueryRow(ctx,
		`UPDATE connection_requests
		 SET status = $1, updated_at = NOW()
		 WHERE id = $2 AND status = $3
		 RETURNING updated_at`,
		decision, requestID, models.RequestStatusLike,
	).Scan(&req.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRequestConflict
	}
	if err != nil {
		return nil, fmt.Errorf("updating request status: %w", err)
	}
	req.Status = decision

	result := &models.RequestWithSender{ConnectionRequest: *req}
	err = tx.QueryRow(ctx,
		`SELECT id, first_name, last_name, age, gender, image, about
		 FROM users WHERE id = $1`,
		req.FromUserID,
	).Scan(&result.Sender.ID, &result.Sender.FirstName, &result.Sender.LastName,
		&result.Sender.Age, &result.Sender.Gender, &result.Sender.Image, &result.Sender.About)
	if err != nil {
		return nil, fmt.Errorf("getting sender profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing review: %w", err)
	}
	committed = true

	return result, nil
}

func (s *ConnectionService) ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]models.RequestWithSender, error) {
	rows, err := s.db.Query(ctx,
		`SELECT r.id, r.from_user_id, r.to_user_id, r.status, r.created_at, r.updated_at,
		        u.id, u.first_name, u.last_name, u.age, u.gender, u.image, u.about
		 FROM connection_requests r
		 JOIN users u ON r.from_user_id = u.id
		 WHERE r.to_user_id = $1 AND r.status = 'like'
		 ORDER BY r.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing pending requests: %w", err)
	}
	defer rows.Close()

	var requests []models.RequestWithSender
	for rows.Next() {
		var r models.RequestWithSender
		if err := rows.Scan(&r.ID, &r.FromUserID, &r.ToUserID, &r.Status, &r.CreatedAt, &r.UpdatedAt,
			&r.Sender.ID, &r.Sender.FirstName, &r.Sender.LastName, &r.Sender.Age, &r.Sender.Gender,
			&r.Sender.Image, &r.Sender.About); err != nil {
			return nil, fmt.Errorf("scanning pending request: %w", err)
		}
		requests = append(requests, r)
	}

	if requests == nil {
		requests = []models.RequestWithSender{}
	}

	return requests, nil
}

func (s *ConnectionService) ListConnections(ctx context.Context, userID uuid.UUID) ([]models.UserProfile, error) {
	rows, err := s.db.Query(ctx,
		`SELECT u.id, u.first_name, u.last_name, u.age, u.gender, u.image, u.about
		 FROM connection_requests r
		 JOIN users u ON u.id = CASE WHEN r.from_user_id = $1 THEN r.to_user_id ELSE r.from_user_id END
		 WHERE (r.from_user_id = $1 OR r.to_user_id = $1) AND r.status = 'accept'
		 ORDER BY r.updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}
	defer rows.Close()

	var connections []models.UserProfile
	for rows.Next() {
		var p models.UserProfile
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Age, &p.Gender, &p.Image, &p.About); err != nil {
			return nil, fmt.Errorf("scanning connection: %w", err)
		}
		connections = append(connections, p)
	}

	if connections == nil {
		connections = []models.UserProfile{}
	}

	return connections, nil
}

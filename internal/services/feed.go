package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ishpreet36752/Trawell-Backend/internal/models"
)

const (
	feedDefaultLimit = 10
	feedMaxLimit     = 50
)

type FeedService struct {
	db DB
}

func NewFeedService(db DB) *FeedService {
	return &FeedService{db: db}
}

// GetFeed returns one page of candidate profiles for userID. Anyone who
// appears on either side of a connection request involving the user is out
// of the feed permanently, whatever the request's status.
func (s *FeedService) GetFeed(ctx context.Context, userID uuid.UUID, page, limit int) (*models.FeedPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = feedDefaultLimit
	}
	if limit > feedMaxLimit {
		limit = feedMaxLimit
	}
	offset := (page - 1) * limit

	rows, err := s.db.Query(ctx,
		`SELECT from_user_id, to_user_id FROM connection_requests
		 WHERE from_user_id = $1 OR to_user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing requests for feed: %w", err)
	}
	defer rows.Close()

	excluded := []uuid.UUID{userID}
	seen := map[uuid.UUID]struct{}{userID: {}}
	for rows.Next() {
		var fromID, toID uuid.UUID
		if err := rows.Scan(&fromID, &toID); err != nil {
			return nil, fmt.Errorf("scanning request: %w", err)
		}
		if _, ok := seen[fromID]; !ok {
			seen[fromID] = struct{}{}
			excluded = append(excluded, fromID)
		}
		if _, ok := seen[toID]; !ok {
			seen[toID] = struct{}{}
			excluded = append(excluded, toID)
		}
	}
	rows.Close()

	userRows, err := s.db.Query(ctx,
		`SELECT id, first_name, last_name, age, gender, image, about
		 FROM users
		 WHERE NOT (id = ANY($1))
		 ORDER BY created_at, id
		 LIMIT $2 OFFSET $3`,
		excluded, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("listing feed users: %w", err)
	}
	defer userRows.Close()

	var users []models.UserProfile
	for userRows.Next() {
		var p models.UserProfile
		if err := userRows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Age, &p.Gender, &p.Image, &p.About); err != nil {
			return nil, fmt.Errorf("scanning feed user: %w", err)
		}
		users = append(users, p)
	}

	if users == nil {
		users = []models.UserProfile{}
	}

	return &models.FeedPage{
		Users: users,
		Page:  page,
		Limit: limit,
		Count: len(users),
	}, nil
}

package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"mission-service/src/internal/entity"

	"github.com/google/uuid"
)

// RatingRepository keeps ratings in a flat slice. Uniqueness over
// (from, to, mission, direction) is enforced by a linear scan inside the
// creation critical section, which is fine at this scale.
type RatingRepository struct {
	mu      sync.RWMutex
	ratings []*entity.Rating
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{}
}

func (r *RatingRepository) Create(ctx context.Context, rating *entity.Rating) (*entity.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.existsLocked(rating.FromUserID, rating.ToUserID, rating.MissionID, rating.Direction) {
		return nil, ErrDuplicateRating
	}

	now := time.Now()
	if rating.ID == "" {
		rating.ID = uuid.NewString()
	}
	rating.CreatedAt = now
	rating.UpdatedAt = now

	stored := *rating
	r.ratings = append(r.ratings, &stored)

	ratingCopy := stored
	return &ratingCopy, nil
}

func (r *RatingRepository) Exists(ctx context.Context, fromUserID, toUserID, missionID string, direction entity.RatingDirection) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.existsLocked(fromUserID, toUserID, missionID, direction), nil
}

func (r *RatingRepository) ListReceived(ctx context.Context, userID string) ([]entity.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ratings []entity.Rating
	for _, rating := range r.ratings {
		if rating.ToUserID == userID {
			ratings = append(ratings, *rating)
		}
	}
	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].CreatedAt.After(ratings[j].CreatedAt)
	})
	return ratings, nil
}

func (r *RatingRepository) ListAll(ctx context.Context) ([]entity.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ratings := make([]entity.Rating, 0, len(r.ratings))
	for _, rating := range r.ratings {
		ratings = append(ratings, *rating)
	}
	return ratings, nil
}

func (r *RatingRepository) existsLocked(fromUserID, toUserID, missionID string, direction entity.RatingDirection) bool {
	for _, rating := range r.ratings {
		if rating.FromUserID == fromUserID &&
			rating.ToUserID == toUserID &&
			rating.MissionID == missionID &&
			rating.Direction == direction {
			return true
		}
	}
	return false
}

package repository

import (
	"context"
	"testing"

	"mission-service/src/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRating(from, to, mission string, direction entity.RatingDirection, score int) *entity.Rating {
	return &entity.Rating{
		FromUserID: from,
		ToUserID:   to,
		MissionID:  mission,
		Score:      score,
		Direction:  direction,
	}
}

func TestRatingRepositoryCreate(t *testing.T) {
	repo := NewRatingRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, testRating("student-1", "courier-1", "mission-a", entity.RatingDirectionStudentToCourier, 5))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	t.Run("duplicate tuple rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, testRating("student-1", "courier-1", "mission-a", entity.RatingDirectionStudentToCourier, 3))
		assert.ErrorIs(t, err, ErrDuplicateRating)
	})

	t.Run("opposite direction on same mission allowed", func(t *testing.T) {
		_, err := repo.Create(ctx, testRating("student-1", "courier-1", "mission-a", entity.RatingDirectionCourierToStudent, 4))
		assert.NoError(t, err)
	})

	t.Run("same pair on another mission allowed", func(t *testing.T) {
		_, err := repo.Create(ctx, testRating("student-1", "courier-1", "mission-b", entity.RatingDirectionStudentToCourier, 4))
		assert.NoError(t, err)
	})
}

func TestRatingRepositoryExists(t *testing.T) {
	repo := NewRatingRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, testRating("student-1", "courier-1", "mission-a", entity.RatingDirectionStudentToCourier, 5))
	require.NoError(t, err)

	exists, err := repo.Exists(ctx, "student-1", "courier-1", "mission-a", entity.RatingDirectionStudentToCourier)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "student-1", "courier-1", "mission-a", entity.RatingDirectionCourierToStudent)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRatingRepositoryListReceived(t *testing.T) {
	repo := NewRatingRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, testRating("student-1", "courier-1", "mission-a", entity.RatingDirectionStudentToCourier, 5))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testRating("student-2", "courier-1", "mission-b", entity.RatingDirectionStudentToCourier, 4))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testRating("student-1", "courier-2", "mission-c", entity.RatingDirectionStudentToCourier, 3))
	require.NoError(t, err)

	received, err := repo.ListReceived(ctx, "courier-1")
	require.NoError(t, err)
	require.Len(t, received, 2)
	for _, rating := range received {
		assert.Equal(t, "courier-1", rating.ToUserID)
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"mission-service/src/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMission(requesterID string) *entity.Mission {
	return &entity.Mission{
		Title:       "Deliver notes",
		Type:        entity.MissionTypeDelivery,
		Origin:      entity.Location{Latitude: 41.0082, Longitude: 28.9784},
		Reward:      20,
		RequesterID: requesterID,
	}
}

func TestMissionRepositoryCreate(t *testing.T) {
	repo := NewMissionRepository()
	ctx := context.Background()

	mission := newTestMission("student-1")
	mission.Status = entity.MissionStatusCompleted // must be ignored
	courier := "sneaky"
	mission.CourierID = &courier

	created, err := repo.Create(ctx, mission)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.MissionStatusAvailable, created.Status)
	assert.Nil(t, created.CourierID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestMissionRepositoryFindByID(t *testing.T) {
	repo := NewMissionRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestMission("student-1"))
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// returned value is a copy, mutating it must not leak into the store
	found.Title = "tampered"
	again, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deliver notes", again.Title)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMissionRepositoryCompareAndSwapStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("swaps and mutates on match", func(t *testing.T) {
		repo := NewMissionRepository()
		created, err := repo.Create(ctx, newTestMission("student-1"))
		require.NoError(t, err)

		courier := "courier-1"
		ok, err := repo.CompareAndSwapStatus(ctx, created.ID,
			entity.MissionStatusAvailable, entity.MissionStatusAccepted,
			func(m *entity.Mission) { m.CourierID = &courier })
		require.NoError(t, err)
		assert.True(t, ok)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.MissionStatusAccepted, found.Status)
		require.NotNil(t, found.CourierID)
		assert.Equal(t, "courier-1", *found.CourierID)
	})

	t.Run("loses without mutating on status mismatch", func(t *testing.T) {
		repo := NewMissionRepository()
		created, err := repo.Create(ctx, newTestMission("student-1"))
		require.NoError(t, err)

		courier := "loser"
		ok, err := repo.CompareAndSwapStatus(ctx, created.ID,
			entity.MissionStatusInProgress, entity.MissionStatusCompleted,
			func(m *entity.Mission) { m.CourierID = &courier })
		require.NoError(t, err)
		assert.False(t, ok)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.MissionStatusAvailable, found.Status)
		assert.Nil(t, found.CourierID)
	})

	t.Run("exactly one of many racing swaps wins", func(t *testing.T) {
		repo := NewMissionRepository()
		created, err := repo.Create(ctx, newTestMission("student-1"))
		require.NoError(t, err)

		const racers = 32
		var wins int32
		var mu sync.Mutex
		var wg sync.WaitGroup
		for i := 0; i < racers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := repo.CompareAndSwapStatus(ctx, created.ID,
					entity.MissionStatusAvailable, entity.MissionStatusAccepted, nil)
				if err == nil && ok {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins)
	})

	t.Run("unknown mission errors", func(t *testing.T) {
		repo := NewMissionRepository()
		_, err := repo.CompareAndSwapStatus(ctx, "missing",
			entity.MissionStatusAvailable, entity.MissionStatusAccepted, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMissionRepositoryListNearby(t *testing.T) {
	repo := NewMissionRepository()
	ctx := context.Background()

	near := newTestMission("student-1")
	near.Origin = entity.Location{Latitude: 41.0090, Longitude: 28.9790}
	far := newTestMission("student-2")
	far.Origin = entity.Location{Latitude: 39.9334, Longitude: 32.8597}

	nearCreated, err := repo.Create(ctx, near)
	require.NoError(t, err)
	_, err = repo.Create(ctx, far)
	require.NoError(t, err)

	taken := newTestMission("student-3")
	taken.Origin = entity.Location{Latitude: 41.0085, Longitude: 28.9786}
	takenCreated, err := repo.Create(ctx, taken)
	require.NoError(t, err)
	ok, err := repo.CompareAndSwapStatus(ctx, takenCreated.ID,
		entity.MissionStatusAvailable, entity.MissionStatusAccepted, nil)
	require.NoError(t, err)
	require.True(t, ok)

	missions, err := repo.ListNearby(ctx, 41.0082, 28.9784, 5)
	require.NoError(t, err)
	require.Len(t, missions, 1)
	assert.Equal(t, nearCreated.ID, missions[0].ID)
}

func TestMissionRepositoryListUpcoming(t *testing.T) {
	repo := NewMissionRepository()
	ctx := context.Background()
	now := time.Now()

	soon := now.Add(24 * time.Hour)
	late := now.Add(48 * time.Hour)
	past := now.Add(-time.Hour)
	beyond := now.Add(10 * 24 * time.Hour)

	withSchedule := func(requester string, at *time.Time) *entity.Mission {
		m := newTestMission(requester)
		m.ScheduledAt = at
		return m
	}

	second, err := repo.Create(ctx, withSchedule("student-1", &late))
	require.NoError(t, err)
	first, err := repo.Create(ctx, withSchedule("student-1", &soon))
	require.NoError(t, err)
	_, err = repo.Create(ctx, withSchedule("student-1", &past))
	require.NoError(t, err)
	_, err = repo.Create(ctx, withSchedule("student-1", &beyond))
	require.NoError(t, err)
	_, err = repo.Create(ctx, withSchedule("student-1", nil))
	require.NoError(t, err)
	_, err = repo.Create(ctx, withSchedule("someone-else", &soon))
	require.NoError(t, err)

	missions, err := repo.ListUpcoming(ctx, "student-1", now, 7*24*time.Hour)
	require.NoError(t, err)
	require.Len(t, missions, 2)
	assert.Equal(t, first.ID, missions[0].ID)
	assert.Equal(t, second.ID, missions[1].ID)
}

func TestMissionRepositoryCourierStats(t *testing.T) {
	repo := NewMissionRepository()
	ctx := context.Background()

	assign := func(reward float64, final entity.MissionStatus) {
		m := newTestMission("student-1")
		m.Reward = reward
		created, err := repo.Create(ctx, m)
		require.NoError(t, err)
		courier := "courier-1"
		ok, err := repo.CompareAndSwapStatus(ctx, created.ID,
			entity.MissionStatusAvailable, final,
			func(mm *entity.Mission) { mm.CourierID = &courier })
		require.NoError(t, err)
		require.True(t, ok)
	}

	assign(20, entity.MissionStatusCompleted)
	assign(15, entity.MissionStatusCompleted)
	assign(30, entity.MissionStatusInProgress)

	completed, earnings, inProgress, err := repo.CourierStats(ctx, "courier-1")
	require.NoError(t, err)
	assert.Equal(t, 2, completed)
	assert.Equal(t, 35.0, earnings)
	assert.Equal(t, 1, inProgress)

	completed, earnings, inProgress, err = repo.CourierStats(ctx, "courier-2")
	require.NoError(t, err)
	assert.Zero(t, completed)
	assert.Zero(t, earnings)
	assert.Zero(t, inProgress)
}

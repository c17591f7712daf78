package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"mission-service/src/internal/entity"

	"github.com/google/uuid"
)

// MissionRepository is the in-memory mission store. All check-then-mutate
// sequences run inside one critical section so concurrent logical operations
// on the same mission cannot both pass their precondition check.
type MissionRepository struct {
	mu       sync.RWMutex
	missions map[string]*entity.Mission
}

func NewMissionRepository() *MissionRepository {
	return &MissionRepository{
		missions: make(map[string]*entity.Mission),
	}
}

func (r *MissionRepository) Create(ctx context.Context, mission *entity.Mission) (*entity.Mission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if mission.ID == "" {
		mission.ID = uuid.NewString()
	}
	mission.Status = entity.MissionStatusAvailable
	mission.CourierID = nil
	mission.CreatedAt = now
	mission.UpdatedAt = now

	stored := *mission
	r.missions[stored.ID] = &stored
	return copyMission(&stored), nil
}

func (r *MissionRepository) FindByID(ctx context.Context, id string) (*entity.Mission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mission, ok := r.missions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyMission(mission), nil
}

// CompareAndSwapStatus transitions the mission from -> to and applies mutate
// under the store lock. It returns false without mutating when the current
// status no longer equals from, which is how racing callers lose.
func (r *MissionRepository) CompareAndSwapStatus(ctx context.Context, id string, from, to entity.MissionStatus, mutate func(*entity.Mission)) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mission, ok := r.missions[id]
	if !ok {
		return false, ErrNotFound
	}
	if mission.Status != from {
		return false, nil
	}

	mission.Status = to
	mission.UpdatedAt = time.Now()
	if mutate != nil {
		mutate(mission)
	}
	return true, nil
}

func (r *MissionRepository) ListByStatus(ctx context.Context, status entity.MissionStatus) ([]entity.Mission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var missions []entity.Mission
	for _, m := range r.missions {
		if m.Status == status {
			missions = append(missions, *copyMission(m))
		}
	}
	sortMissionsNewestFirst(missions)
	return missions, nil
}

func (r *MissionRepository) ListByParticipant(ctx context.Context, userID string) ([]entity.Mission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var missions []entity.Mission
	for _, m := range r.missions {
		if m.IsParticipant(userID) {
			missions = append(missions, *copyMission(m))
		}
	}
	sortMissionsNewestFirst(missions)
	return missions, nil
}

// ListNearby returns available missions whose origin lies within radiusKm
// (great-circle distance) of the given point.
func (r *MissionRepository) ListNearby(ctx context.Context, lat, lng, radiusKm float64) ([]entity.Mission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	from := entity.Location{Latitude: lat, Longitude: lng}
	var missions []entity.Mission
	for _, m := range r.missions {
		if m.Status != entity.MissionStatusAvailable {
			continue
		}
		if entity.HaversineKm(from, m.Origin) <= radiusKm {
			missions = append(missions, *copyMission(m))
		}
	}
	sortMissionsNewestFirst(missions)
	return missions, nil
}

// ListUpcoming returns the user's missions scheduled inside the forward
// window, ascending by schedule time. Missions without a schedule never
// qualify.
func (r *MissionRepository) ListUpcoming(ctx context.Context, userID string, now time.Time, window time.Duration) ([]entity.Mission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	horizon := now.Add(window)
	var missions []entity.Mission
	for _, m := range r.missions {
		if m.ScheduledAt == nil || !m.IsParticipant(userID) {
			continue
		}
		if m.IsTerminal() {
			continue
		}
		if m.ScheduledAt.Before(now) || m.ScheduledAt.After(horizon) {
			continue
		}
		missions = append(missions, *copyMission(m))
	}
	sort.Slice(missions, func(i, j int) bool {
		return missions[i].ScheduledAt.Before(*missions[j].ScheduledAt)
	})
	return missions, nil
}

// CourierStats aggregates completed count, completed earnings and in-flight
// missions for one courier.
func (r *MissionRepository) CourierStats(ctx context.Context, courierID string) (completed int, earnings float64, inProgress int, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.missions {
		if m.CourierID == nil || *m.CourierID != courierID {
			continue
		}
		switch m.Status {
		case entity.MissionStatusCompleted:
			completed++
			earnings += m.Reward
		case entity.MissionStatusInProgress:
			inProgress++
		}
	}
	return completed, earnings, inProgress, nil
}

func copyMission(m *entity.Mission) *entity.Mission {
	c := *m
	if m.CourierID != nil {
		courier := *m.CourierID
		c.CourierID = &courier
	}
	if m.Destination != nil {
		dest := *m.Destination
		c.Destination = &dest
	}
	if m.ScheduledAt != nil {
		scheduled := *m.ScheduledAt
		c.ScheduledAt = &scheduled
	}
	if m.CompletedAt != nil {
		completed := *m.CompletedAt
		c.CompletedAt = &completed
	}
	return &c
}

func sortMissionsNewestFirst(missions []entity.Mission) {
	sort.Slice(missions, func(i, j int) bool {
		return missions[i].CreatedAt.After(missions[j].CreatedAt)
	})
}

package entity

import (
	"math"
	"time"
)

type MissionStatus string

const (
	MissionStatusAvailable  MissionStatus = "available"
	MissionStatusAccepted   MissionStatus = "accepted"
	MissionStatusInProgress MissionStatus = "in_progress"
	MissionStatusCompleted  MissionStatus = "completed"
	MissionStatusCancelled  MissionStatus = "cancelled"
)

type MissionType string

const (
	MissionTypeDelivery MissionType = "delivery"
	MissionTypePickup   MissionType = "pickup"
	MissionTypeErrand   MissionType = "errand"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Mission is a unit of paid peer work. CourierID is nil while the mission is
// available and fixed once accepted; CompletedAt is set iff the mission is
// completed.
type Mission struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Type              MissionType   `json:"type"`
	Origin            Location      `json:"origin"`
	Destination       *Location     `json:"destination,omitempty"`
	Reward            float64       `json:"reward"`
	EstimatedDuration int           `json:"estimatedDuration"`
	Status            MissionStatus `json:"status"`
	RequesterID       string        `json:"requesterId"`
	CourierID         *string       `json:"courierId,omitempty"`
	ScheduledAt       *time.Time    `json:"scheduledAt,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
	CompletedAt       *time.Time    `json:"completedAt,omitempty"`
}

func (m *Mission) IsTerminal() bool {
	return m.Status == MissionStatusCompleted || m.Status == MissionStatusCancelled
}

// IsParticipant reports whether userID is the requester or the assigned
// courier of the mission.
func (m *Mission) IsParticipant(userID string) bool {
	if m.RequesterID == userID {
		return true
	}
	return m.CourierID != nil && *m.CourierID == userID
}

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two locations in
// kilometers.
func HaversineKm(a, b Location) float64 {
	latA := a.Latitude * math.Pi / 180
	latB := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

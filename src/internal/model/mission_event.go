package model

import "time"

type MissionStatusEvent struct {
	EventID     string    `json:"event_id"`
	MissionID   string    `json:"mission_id"`
	Status      string    `json:"status"`
	RequesterID string    `json:"requester_id"`
	CourierID   *string   `json:"courier_id,omitempty"`
	Reward      float64   `json:"reward"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (e *MissionStatusEvent) GetId() string {
	return e.EventID
}

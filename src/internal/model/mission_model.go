package model

import "time"

type LocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Address   string  `json:"address"`
}

type CreateMissionRequest struct {
	RequesterID       string           `json:"-" validate:"required,max=100"`
	Title             string           `json:"title" validate:"required,max=120"`
	Description       string           `json:"description" validate:"max=2000"`
	Type              string           `json:"type" validate:"required,oneof=delivery pickup errand"`
	Origin            LocationRequest  `json:"origin" validate:"required"`
	Destination       *LocationRequest `json:"destination,omitempty"`
	Reward            float64          `json:"reward" validate:"required,gt=0"`
	EstimatedDuration int              `json:"estimatedDuration" validate:"gte=0"`
	ScheduledAt       *time.Time       `json:"scheduledAt,omitempty"`
}

type GetMissionRequest struct {
	MissionID string `json:"missionId" validate:"required"`
}

type AcceptMissionRequest struct {
	MissionID string `json:"missionId" validate:"required"`
	CourierID string `json:"-" validate:"required"`
}

type StartMissionRequest struct {
	MissionID string `json:"missionId" validate:"required"`
	CourierID string `json:"-" validate:"required"`
}

type CompleteMissionRequest struct {
	MissionID string `json:"missionId" validate:"required"`
	CourierID string `json:"-" validate:"required"`
}

type CancelMissionRequest struct {
	MissionID string `json:"missionId" validate:"required"`
	UserID    string `json:"-" validate:"required"`
}

type ListMissionsRequest struct {
	Status string `json:"status" validate:"required,oneof=available accepted in_progress completed cancelled"`
}

type ParticipantMissionsRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type NearbyMissionsRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	RadiusKm  float64 `json:"radiusKm" validate:"required,gt=0,lte=100"`
}

type UpcomingMissionsRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type CourierStatsRequest struct {
	CourierID string `json:"courierId" validate:"required"`
}

type MissionResponse struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	Description       string           `json:"description,omitempty"`
	Type              string           `json:"type"`
	Origin            LocationRequest  `json:"origin"`
	Destination       *LocationRequest `json:"destination,omitempty"`
	Reward            float64          `json:"reward"`
	EstimatedDuration string           `json:"estimatedDuration,omitempty"`
	Status            string           `json:"status"`
	RequesterID       string           `json:"requesterId"`
	CourierID         *string          `json:"courierId,omitempty"`
	ScheduledAt       *time.Time       `json:"scheduledAt,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
	CompletedAt       *time.Time       `json:"completedAt,omitempty"`
}

type CourierStatsResponse struct {
	CourierID         string  `json:"courierId"`
	CompletedMissions int     `json:"completedMissions"`
	TotalEarnings     float64 `json:"totalEarnings"`
	InProgress        int     `json:"inProgress"`
}

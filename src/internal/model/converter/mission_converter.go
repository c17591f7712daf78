package converter

import (
	"time"

	"mission-service/src/internal/entity"
	"mission-service/src/internal/model"
	"mission-service/src/pkg/utils"

	"github.com/google/uuid"
)

func MissionToResponse(mission *entity.Mission) *model.MissionResponse {
	resp := &model.MissionResponse{
		ID:          mission.ID,
		Title:       mission.Title,
		Description: mission.Description,
		Type:        string(mission.Type),
		Origin:      locationToRequest(mission.Origin),
		Reward:      mission.Reward,
		Status:      string(mission.Status),
		RequesterID: mission.RequesterID,
		CourierID:   mission.CourierID,
		ScheduledAt: mission.ScheduledAt,
		CreatedAt:   mission.CreatedAt,
		UpdatedAt:   mission.UpdatedAt,
		CompletedAt: mission.CompletedAt,
	}
	if mission.EstimatedDuration > 0 {
		resp.EstimatedDuration = utils.FormatDuration(mission.EstimatedDuration)
	}
	if mission.Destination != nil {
		dest := locationToRequest(*mission.Destination)
		resp.Destination = &dest
	}
	return resp
}

func MissionsToResponse(missions []entity.Mission) []model.MissionResponse {
	responses := make([]model.MissionResponse, 0, len(missions))
	for i := range missions {
		responses = append(responses, *MissionToResponse(&missions[i]))
	}
	return responses
}

func MissionToEvent(mission *entity.Mission) *model.MissionStatusEvent {
	return &model.MissionStatusEvent{
		EventID:     uuid.NewString(),
		MissionID:   mission.ID,
		Status:      string(mission.Status),
		RequesterID: mission.RequesterID,
		CourierID:   mission.CourierID,
		Reward:      mission.Reward,
		OccurredAt:  time.Now(),
	}
}

func locationToRequest(loc entity.Location) model.LocationRequest {
	return model.LocationRequest{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Address:   loc.Address,
	}
}

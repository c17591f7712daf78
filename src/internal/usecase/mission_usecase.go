package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mission-service/src/internal/entity"
	"mission-service/src/internal/gateway/messaging"
	"mission-service/src/internal/model"
	"mission-service/src/internal/model/converter"
	"mission-service/src/internal/repository"
	httpError "mission-service/src/pkg/http-error"
	"mission-service/src/pkg/log"
	"mission-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// upcomingWindow is the forward window the upcoming-missions query covers.
const upcomingWindow = 7 * 24 * time.Hour

type MissionUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	MissionRepository *repository.MissionRepository
	WalletRepository  *repository.WalletRepository
	Config            *viper.Viper
	Redis             redis.UniversalClient
	MissionProducer   *messaging.MissionProducer
}

func NewMissionUseCase(
	logger log.Log,
	validate *validator.Validate,
	missionRepository *repository.MissionRepository,
	walletRepository *repository.WalletRepository,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
	missionProducer *messaging.MissionProducer,
) *MissionUseCase {
	return &MissionUseCase{
		Log:               logger,
		Validate:          validate,
		MissionRepository: missionRepository,
		WalletRepository:  walletRepository,
		Config:            cfg,
		Redis:             redisClient,
		MissionProducer:   missionProducer,
	}
}

func (c *MissionUseCase) CreateMission(ctx context.Context, request *model.CreateMissionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("mission-usecase", errObj.Message, "CreateMission", utils.ConvertString(request))
		return result
	}

	mission := &entity.Mission{
		Title:             request.Title,
		Description:       request.Description,
		Type:              entity.MissionType(request.Type),
		Origin:            locationFromRequest(request.Origin),
		Reward:            request.Reward,
		EstimatedDuration: request.EstimatedDuration,
		RequesterID:       request.RequesterID,
		ScheduledAt:       request.ScheduledAt,
	}
	if request.Destination != nil {
		dest := locationFromRequest(*request.Destination)
		mission.Destination = &dest
	}

	created, err := c.MissionRepository.Create(ctx, mission)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("mission-usecase", err.Error(), "CreateMission", "")
		return result
	}

	c.Log.Info("mission-usecase", "mission created", "CreateMission", created.ID)
	c.publishStatusEvent(created)
	result.Data = converter.MissionToResponse(created)
	return result
}

func (c *MissionUseCase) GetMission(ctx context.Context, request *model.GetMissionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	mission, err := c.MissionRepository.FindByID(ctx, request.MissionID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("mission with id %s not found", request.MissionID)
		result.Error = errObj
		c.Log.Error("mission-usecase", errObj.Message, "GetMission", request.MissionID)
		return result
	}

	result.Data = converter.MissionToResponse(mission)
	return result
}

// AcceptMission assigns the courier on an available mission. Two couriers
// racing for the same mission both pass the read check but only one wins
// the compare-and-swap.
func (c *MissionUseCase) AcceptMission(ctx context.Context, request *model.AcceptMissionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	mission, err := c.MissionRepository.FindByID(ctx, request.MissionID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("mission with id %s not found", request.MissionID)
		result.Error = errObj
		c.Log.Error("mission-usecase", errObj.Message, "AcceptMission", request.MissionID)
		return result
	}
	if mission.Status != entity.MissionStatusAvailable {
		errObj := httpError.NewInvalidState()
		errObj.Message = "mission is no longer available"
		result.Error = errObj
		c.Log.Error("mission-usecase", errObj.Message, "AcceptMission", string(mission.Status))
		return result
	}

	courierID := request.CourierID
	ok, err := c.MissionRepository.CompareAndSwapStatus(ctx, request.MissionID,
		entity.MissionStatusAvailable, entity.MissionStatusAccepted,
		func(m *entity.Mission) { m.CourierID = &courierID })
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("mission with id %s not found", request.MissionID)
		result.Error = errObj
		return result
	}
	if !ok {
		errObj := httpError.NewInvalidState()
		errObj.Message = "mission is no longer available"
		result.Error = errObj
		c.Log.Error("mission-usecase", errObj.Message, "AcceptMission", "concurrent-update")
		return result
	}

	mission.Status = entity.MissionStatusAccepted
	mission.CourierID = &courierID
	c.Log.Info("mission-usecase", "mission accepted", "AcceptMission", mission.ID)
	c.publishStatusEvent(mission)
	result.Data = converter.MissionToResponse(mission)
	return result
}

// StartMission moves an accepted mission to in_progress. Only the assigned
// courier may start it.
func (c *MissionUseCase) StartMission(ctx context.Context, request *model.StartMissionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	mission, errObj := c.findForCourier(ctx, request.MissionID, request.CourierID, "StartMission")
	if errObj != nil {
		result.Error = errObj
		return result
	}
	if mission.Status != entity.MissionStatusAccepted {
		stateErr := httpError.NewInvalidState()
		stateErr.Message = fmt.Sprintf("mission cannot be started from status %s", mission.Status)
		result.Error = stateErr
		c.Log.Error("mission-usecase", stateErr.Message, "StartMission", mission.ID)
		return result
	}

	ok, err := c.MissionRepository.CompareAndSwapStatus(ctx, request.MissionID,
		entity.MissionStatusAccepted, entity.MissionStatusInProgress, nil)
	if err != nil || !ok {
		stateErr := httpError.NewInvalidState()
		stateErr.Message = "mission could not be started, it may have been changed or cancelled"
		result.Error = stateErr
		c.Log.Error("mission-usecase", stateErr.Message, "StartMission", "concurrent-update")
		return result
	}

	mission.Status = entity.MissionStatusInProgress
	c.Log.Info("mission-usecase", "mission started", "StartMission", mission.ID)
	c.publishStatusEvent(mission)
	result.Data = converter.MissionToResponse(mission)
	return result
}

// CompleteMission finishes an in-progress mission and, in the same
// operation, credits the courier's wallet with the reward. Only the
// compare-and-swap winner reaches the credit, so the reward is paid once.
func (c *MissionUseCase) CompleteMission(ctx context.Context, request *model.CompleteMissionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	mission, errObj := c.findForCourier(ctx, request.MissionID, request.CourierID, "CompleteMission")
	if errObj != nil {
		result.Error = errObj
		return result
	}
	if mission.Status != entity.MissionStatusInProgress {
		stateErr := httpError.NewInvalidState()
		stateErr.Message = fmt.Sprintf("mission cannot be completed from status %s", mission.Status)
		result.Error = stateErr
		c.Log.Error("mission-usecase", stateErr.Message, "CompleteMission", mission.ID)
		return result
	}

	completedAt := time.Now()
	ok, err := c.MissionRepository.CompareAndSwapStatus(ctx, request.MissionID,
		entity.MissionStatusInProgress, entity.MissionStatusCompleted,
		func(m *entity.Mission) { m.CompletedAt = &completedAt })
	if err != nil || !ok {
		stateErr := httpError.NewInvalidState()
		stateErr.Message = "mission could not be completed, it may have been changed or cancelled"
		result.Error = stateErr
		c.Log.Error("mission-usecase", stateErr.Message, "CompleteMission", "concurrent-update")
		return result
	}

	mission.Status = entity.MissionStatusCompleted
	mission.CompletedAt = &completedAt

	description := fmt.Sprintf("Reward for mission: %s", mission.Title)
	if _, err := c.WalletRepository.CreditEarning(ctx, request.CourierID, mission.Reward, description, &mission.ID); err != nil {
		// The mission is already completed; the missing credit is the only
		// thing to surface.
		c.Log.Error("mission-usecase", fmt.Sprintf("failed to credit reward: %v", err), "CompleteMission", mission.ID)
	}

	c.Log.Info("mission-usecase", "mission completed", "CompleteMission", mission.ID)
	c.publishStatusEvent(mission)
	result.Data = converter.MissionToResponse(mission)
	return result
}

// CancelMission cancels a non-terminal mission. Either participant may
// cancel.
func (c *MissionUseCase) CancelMission(ctx context.Context, request *model.CancelMissionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	mission, err := c.MissionRepository.FindByID(ctx, request.MissionID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("mission with id %s not found", request.MissionID)
		result.Error = errObj
		c.Log.Error("mission-usecase", errObj.Message, "CancelMission", request.MissionID)
		return result
	}
	if !mission.IsParticipant(request.UserID) {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "only the requester or the assigned courier can cancel this mission"
		result.Error = errObj
		c.Log.Error("mission-usecase", errObj.Message, "CancelMission", request.UserID)
		return result
	}
	if mission.IsTerminal() {
		errObj := httpError.NewInvalidState()
		errObj.Message = fmt.Sprintf("mission cannot be cancelled from status %s", mission.Status)
		result.Error = errObj
		c.Log.Error("mission-usecase", errObj.Message, "CancelMission", mission.ID)
		return result
	}

	ok, casErr := c.MissionRepository.CompareAndSwapStatus(ctx, request.MissionID,
		mission.Status, entity.MissionStatusCancelled, nil)
	if casErr != nil || !ok {
		errObj := httpError.NewInvalidState()
		errObj.Message = "mission could not be cancelled, it may have been changed concurrently"
		result.Error = errObj
		c.Log.Error("mission-usecase", errObj.Message, "CancelMission", "concurrent-update")
		return result
	}

	mission.Status = entity.MissionStatusCancelled
	c.Log.Info("mission-usecase", "mission cancelled", "CancelMission", mission.ID)
	c.publishStatusEvent(mission)
	result.Data = converter.MissionToResponse(mission)
	return result
}

func (c *MissionUseCase) ListByStatus(ctx context.Context, request *model.ListMissionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	missions, err := c.MissionRepository.ListByStatus(ctx, entity.MissionStatus(request.Status))
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		return result
	}
	result.Data = converter.MissionsToResponse(missions)
	return result
}

func (c *MissionUseCase) ListByParticipant(ctx context.Context, request *model.ParticipantMissionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	missions, err := c.MissionRepository.ListByParticipant(ctx, request.UserID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		return result
	}
	result.Data = converter.MissionsToResponse(missions)
	return result
}

// NearbyMissions answers the proximity query, caching the rendered result
// in Redis for a short TTL when a client is wired.
func (c *MissionUseCase) NearbyMissions(ctx context.Context, request *model.NearbyMissionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	key := fmt.Sprintf("MISSION:NEARBY:%.3f:%.3f:%.1f", request.Latitude, request.Longitude, request.RadiusKm)
	if c.Redis != nil {
		if cached, err := c.Redis.Get(ctx, key).Result(); err == nil && cached != "" {
			var responses []model.MissionResponse
			if err := json.Unmarshal([]byte(cached), &responses); err == nil {
				result.Data = responses
				return result
			}
		}
	}

	missions, err := c.MissionRepository.ListNearby(ctx, request.Latitude, request.Longitude, request.RadiusKm)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		return result
	}
	responses := converter.MissionsToResponse(missions)

	if c.Redis != nil {
		if data, err := json.Marshal(responses); err == nil {
			ttl := c.Config.GetDuration("cache.nearby_ttl")
			if ttl <= 0 {
				ttl = 30 * time.Second
			}
			if redisErr := c.Redis.Set(ctx, key, data, ttl).Err(); redisErr != nil {
				c.Log.Error("mission-usecase", fmt.Sprintf("failed to cache nearby missions: %v", redisErr), "NearbyMissions", key)
			}
		}
	}

	result.Data = responses
	return result
}

func (c *MissionUseCase) UpcomingMissions(ctx context.Context, request *model.UpcomingMissionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	missions, err := c.MissionRepository.ListUpcoming(ctx, request.UserID, time.Now(), upcomingWindow)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		return result
	}
	result.Data = converter.MissionsToResponse(missions)
	return result
}

func (c *MissionUseCase) CourierStats(ctx context.Context, request *model.CourierStatsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	completed, earnings, inProgress, err := c.MissionRepository.CourierStats(ctx, request.CourierID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		return result
	}
	result.Data = &model.CourierStatsResponse{
		CourierID:         request.CourierID,
		CompletedMissions: completed,
		TotalEarnings:     earnings,
		InProgress:        inProgress,
	}
	return result
}

// findForCourier loads the mission and verifies the acting courier holds it.
func (c *MissionUseCase) findForCourier(ctx context.Context, missionID, courierID, scope string) (*entity.Mission, *httpError.CommonError) {
	mission, err := c.MissionRepository.FindByID(ctx, missionID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("mission with id %s not found", missionID)
		c.Log.Error("mission-usecase", errObj.Message, scope, missionID)
		return nil, errObj
	}
	// No courier yet means the mission never left available: a state
	// problem, not an authorization one.
	if mission.CourierID == nil {
		errObj := httpError.NewInvalidState()
		errObj.Message = fmt.Sprintf("mission has no assigned courier (status %s)", mission.Status)
		c.Log.Error("mission-usecase", errObj.Message, scope, missionID)
		return nil, errObj
	}
	if *mission.CourierID != courierID {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "you are not the assigned courier for this mission"
		c.Log.Error("mission-usecase", errObj.Message, scope, courierID)
		return nil, errObj
	}
	return mission, nil
}

func (c *MissionUseCase) publishStatusEvent(mission *entity.Mission) {
	if c.MissionProducer == nil {
		return
	}
	event := converter.MissionToEvent(mission)
	if err := c.MissionProducer.Send(event); err != nil {
		c.Log.Error("mission-usecase", fmt.Sprintf("failed to publish mission status event: %v", err), "publishStatusEvent", mission.ID)
	}
}

func locationFromRequest(req model.LocationRequest) entity.Location {
	return entity.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
	}
}

package http

import (
	"mission-service/src/internal/delivery/http/middleware"
	"mission-service/src/internal/model"
	"mission-service/src/internal/usecase"
	"mission-service/src/pkg/log"
	"mission-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type MissionController struct {
	Log     log.Log
	UseCase *usecase.MissionUseCase
}

func NewMissionController(useCase *usecase.MissionUseCase, logger log.Log) *MissionController {
	return &MissionController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *MissionController) Create(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.CreateMissionRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("MissionController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.RequesterID = auth.UserID

	result := c.UseCase.CreateMission(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Create Mission", fiber.StatusCreated, ctx)
}

func (c *MissionController) Get(ctx *fiber.Ctx) error {
	request := &model.GetMissionRequest{
		MissionID: ctx.Params("id"),
	}
	result := c.UseCase.GetMission(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Get Mission", fiber.StatusOK, ctx)
}

func (c *MissionController) Accept(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.AcceptMissionRequest{
		MissionID: ctx.Params("id"),
		CourierID: auth.UserID,
	}
	result := c.UseCase.AcceptMission(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Accept Mission", fiber.StatusOK, ctx)
}

func (c *MissionController) Start(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.StartMissionRequest{
		MissionID: ctx.Params("id"),
		CourierID: auth.UserID,
	}
	result := c.UseCase.StartMission(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Start Mission", fiber.StatusOK, ctx)
}

func (c *MissionController) Complete(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.CompleteMissionRequest{
		MissionID: ctx.Params("id"),
		CourierID: auth.UserID,
	}
	result := c.UseCase.CompleteMission(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Complete Mission", fiber.StatusOK, ctx)
}

func (c *MissionController) Cancel(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.CancelMissionRequest{
		MissionID: ctx.Params("id"),
		UserID:    auth.UserID,
	}
	result := c.UseCase.CancelMission(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Cancel Mission", fiber.StatusOK, ctx)
}

func (c *MissionController) List(ctx *fiber.Ctx) error {
	request := &model.ListMissionsRequest{
		Status: ctx.Query("status", "available"),
	}
	result := c.UseCase.ListByStatus(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Missions", fiber.StatusOK, ctx)
}

func (c *MissionController) Mine(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.ParticipantMissionsRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.ListByParticipant(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "My Missions", fiber.StatusOK, ctx)
}

func (c *MissionController) Nearby(ctx *fiber.Ctx) error {
	request := &model.NearbyMissionsRequest{
		Latitude:  ctx.QueryFloat("latitude"),
		Longitude: ctx.QueryFloat("longitude"),
		RadiusKm:  ctx.QueryFloat("radiusKm", 5),
	}
	result := c.UseCase.NearbyMissions(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Nearby Missions", fiber.StatusOK, ctx)
}

func (c *MissionController) Upcoming(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.UpcomingMissionsRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.UpcomingMissions(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Upcoming Missions", fiber.StatusOK, ctx)
}

func (c *MissionController) CourierStats(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.CourierStatsRequest{
		CourierID: auth.UserID,
	}
	result := c.UseCase.CourierStats(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Courier Stats", fiber.StatusOK, ctx)
}

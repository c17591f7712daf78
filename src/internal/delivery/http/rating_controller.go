package http

import (
	"mission-service/src/internal/delivery/http/middleware"
	"mission-service/src/internal/model"
	"mission-service/src/internal/usecase"
	"mission-service/src/pkg/log"
	"mission-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type RatingController struct {
	Log     log.Log
	UseCase *usecase.RatingUseCase
}

func NewRatingController(useCase *usecase.RatingUseCase, logger log.Log) *RatingController {
	return &RatingController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *RatingController) Create(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.CreateRatingRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("RatingController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.FromUserID = auth.UserID

	result := c.UseCase.CreateRating(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Create Rating", fiber.StatusCreated, ctx)
}

func (c *RatingController) Stats(ctx *fiber.Ctx) error {
	request := &model.RatingStatsRequest{
		UserID: ctx.Params("userId"),
	}
	result := c.UseCase.Stats(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Rating Stats", fiber.StatusOK, ctx)
}

func (c *RatingController) CanRate(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.CanRateRequest{
		FromUserID: auth.UserID,
		ToUserID:   ctx.Query("toUserId"),
		MissionID:  ctx.Query("missionId"),
		Direction:  ctx.Query("direction"),
	}
	result := c.UseCase.CanRate(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Can Rate", fiber.StatusOK, ctx)
}

func (c *RatingController) TopRated(ctx *fiber.Ctx) error {
	request := &model.TopRatedRequest{
		Limit: ctx.QueryInt("limit", 10),
	}
	result := c.UseCase.TopRated(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Top Rated", fiber.StatusOK, ctx)
}

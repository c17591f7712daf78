package http

import (
	"mission-service/src/internal/delivery/http/middleware"
	"mission-service/src/internal/model"
	"mission-service/src/internal/usecase"
	"mission-service/src/pkg/log"
	"mission-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type SubscriptionController struct {
	Log     log.Log
	UseCase *usecase.SubscriptionUseCase
}

func NewSubscriptionController(useCase *usecase.SubscriptionUseCase, logger log.Log) *SubscriptionController {
	return &SubscriptionController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *SubscriptionController) Plans(ctx *fiber.Ctx) error {
	result := c.UseCase.ListPlans(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Subscription Plans", fiber.StatusOK, ctx)
}

func (c *SubscriptionController) Get(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.GetSubscriptionRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.GetSubscription(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Get Subscription", fiber.StatusOK, ctx)
}

func (c *SubscriptionController) Subscribe(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.SubscribeRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("SubscriptionController.Subscribe", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.Subscribe(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Subscribe", fiber.StatusCreated, ctx)
}

func (c *SubscriptionController) Cancel(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.CancelSubscriptionRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.Cancel(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Cancel Subscription", fiber.StatusOK, ctx)
}

func (c *SubscriptionController) ToggleAutoRenew(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.ToggleAutoRenewRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.ToggleAutoRenew(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Toggle Auto Renew", fiber.StatusOK, ctx)
}

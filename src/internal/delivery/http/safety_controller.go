package http

import (
	"mission-service/src/internal/delivery/http/middleware"
	"mission-service/src/internal/model"
	"mission-service/src/internal/usecase"
	"mission-service/src/pkg/log"
	"mission-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type SafetyController struct {
	Log     log.Log
	UseCase *usecase.SafetyUseCase
}

func NewSafetyController(useCase *usecase.SafetyUseCase, logger log.Log) *SafetyController {
	return &SafetyController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *SafetyController) CreateReport(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.CreateReportRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("SafetyController.CreateReport", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ReporterID = auth.UserID

	result := c.UseCase.CreateReport(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Create Report", fiber.StatusCreated, ctx)
}

func (c *SafetyController) UpdateReportStatus(ctx *fiber.Ctx) error {
	request := new(model.UpdateReportStatusRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("SafetyController.UpdateReportStatus", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ReportID = ctx.Params("id")

	result := c.UseCase.UpdateReportStatus(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Update Report Status", fiber.StatusOK, ctx)
}

func (c *SafetyController) GetReport(ctx *fiber.Ctx) error {
	result := c.UseCase.GetReport(ctx.Context(), ctx.Params("id"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Get Report", fiber.StatusOK, ctx)
}

func (c *SafetyController) ListReports(ctx *fiber.Ctx) error {
	request := &model.ListReportsRequest{
		Status: ctx.Query("status"),
	}
	result := c.UseCase.ListReports(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Reports", fiber.StatusOK, ctx)
}

func (c *SafetyController) SafetyScore(ctx *fiber.Ctx) error {
	request := &model.SafetyScoreRequest{
		UserID: ctx.Params("userId"),
	}
	result := c.UseCase.GetSafetyScore(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Safety Score", fiber.StatusOK, ctx)
}

func (c *SafetyController) SafeToInteract(ctx *fiber.Ctx) error {
	request := &model.SafetyScoreRequest{
		UserID: ctx.Params("userId"),
	}
	result := c.UseCase.IsSafeToInteract(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Safe To Interact", fiber.StatusOK, ctx)
}

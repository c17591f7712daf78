package http

import (
	"mission-service/src/internal/delivery/http/middleware"
	"mission-service/src/internal/model"
	"mission-service/src/internal/usecase"
	"mission-service/src/pkg/log"
	"mission-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletController struct {
	Log     log.Log
	UseCase *usecase.WalletUseCase
}

func NewWalletController(useCase *usecase.WalletUseCase, logger log.Log) *WalletController {
	return &WalletController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *WalletController) Get(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.GetWalletRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.GetWallet(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Get Wallet", fiber.StatusOK, ctx)
}

func (c *WalletController) Withdraw(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.RequestWithdrawalRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WalletController.Withdraw", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.RequestWithdrawal(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Request Withdrawal", fiber.StatusCreated, ctx)
}

// AddEarning is back-office surface: the credited user comes from the
// request body, not the bearer token.
func (c *WalletController) AddEarning(ctx *fiber.Ctx) error {
	request := new(model.AddEarningRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WalletController.AddEarning", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.AddEarning(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Add Earning", fiber.StatusCreated, ctx)
}

func (c *WalletController) SettleWithdrawal(ctx *fiber.Ctx) error {
	request := new(model.SettleWithdrawalRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WalletController.SettleWithdrawal", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.RequestID = ctx.Params("id")

	result := c.UseCase.SettleWithdrawal(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Settle Withdrawal", fiber.StatusOK, ctx)
}

func (c *WalletController) Transactions(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.TransactionHistoryRequest{
		UserID: auth.UserID,
		Limit:  ctx.QueryInt("limit", 50),
	}
	result := c.UseCase.Transactions(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Transaction History", fiber.StatusOK, ctx)
}

func (c *WalletController) Withdrawals(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.GetWalletRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.WithdrawalRequests(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Withdrawal Requests", fiber.StatusOK, ctx)
}

func (c *WalletController) Stats(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.GetWalletRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.Stats(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Wallet Stats", fiber.StatusOK, ctx)
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mission-service/src/internal/entity"
	"mission-service/src/internal/model"
	"mission-service/src/internal/model/converter"
	"mission-service/src/internal/repository"
	httpError "mission-service/src/pkg/http-error"
	"mission-service/src/pkg/log"
	"mission-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

// TypeSettleWithdrawal is the task a payment-gateway callback consumer
// enqueues to settle a pending withdrawal. Nothing enqueues it
// automatically: a withdrawal stays pending until the back office acts.
const TypeSettleWithdrawal = "wallet:settle-withdrawal"

const defaultMinimumWithdrawal = 10.0

type WalletUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	WalletRepository *repository.WalletRepository
	Config           *viper.Viper
}

func NewWalletUseCase(
	logger log.Log,
	validate *validator.Validate,
	walletRepository *repository.WalletRepository,
	cfg *viper.Viper,
) *WalletUseCase {
	return &WalletUseCase{
		Log:              logger,
		Validate:         validate,
		WalletRepository: walletRepository,
		Config:           cfg,
	}
}

// GetWallet returns the user's wallet, creating a zeroed one on first
// access. It never fails for a valid user id.
func (c *WalletUseCase) GetWallet(ctx context.Context, request *model.GetWalletRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	wallet, err := c.WalletRepository.GetOrCreate(ctx, request.UserID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("wallet-usecase", err.Error(), "GetWallet", request.UserID)
		return result
	}
	result.Data = converter.WalletToResponse(wallet, 0)
	return result
}

// AddEarning credits the wallet, creating it when absent.
func (c *WalletUseCase) AddEarning(ctx context.Context, request *model.AddEarningRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "AddEarning", utils.ConvertString(request))
		return result
	}

	tx, err := c.WalletRepository.CreditEarning(ctx, request.UserID, request.Amount, request.Description, request.MissionID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("wallet-usecase", err.Error(), "AddEarning", request.UserID)
		return result
	}

	c.Log.Info("wallet-usecase", "earning credited", "AddEarning", tx.ID)
	result.Data = converter.TransactionToResponse(tx)
	return result
}

// RequestWithdrawal debits the balance into pending and records a
// back-office withdrawal request. The amount must meet the configured
// minimum and the balance must cover it.
func (c *WalletUseCase) RequestWithdrawal(ctx context.Context, request *model.RequestWithdrawalRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "RequestWithdrawal", utils.ConvertString(request))
		return result
	}

	minimum := defaultMinimumWithdrawal
	if c.Config != nil && c.Config.IsSet("wallet.minimum_withdrawal") {
		minimum = c.Config.GetFloat64("wallet.minimum_withdrawal")
	}
	if request.Amount < minimum {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("minimum withdrawal amount is %.2f", minimum)
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "RequestWithdrawal", request.UserID)
		return result
	}

	withdrawal, err := c.WalletRepository.DebitWithdrawal(ctx, request.UserID, request.Amount, request.BankAccount, request.IBAN)
	if err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = "insufficient balance for this withdrawal"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "RequestWithdrawal", request.UserID)
		return result
	}

	c.Log.Info("wallet-usecase", "withdrawal requested", "RequestWithdrawal", withdrawal.ID)
	result.Data = converter.WithdrawalToResponse(withdrawal)
	return result
}

// SettleWithdrawal is the explicit settlement hook: approve completes the
// withdrawal and reconciles totals, reject fails it and refunds the balance.
func (c *WalletUseCase) SettleWithdrawal(ctx context.Context, request *model.SettleWithdrawalRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	withdrawal, err := c.WalletRepository.SettleWithdrawal(ctx, request.RequestID, request.Approve)
	switch err {
	case nil:
	case repository.ErrNotFound:
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("withdrawal request %s not found", request.RequestID)
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "SettleWithdrawal", request.RequestID)
		return result
	case repository.ErrAlreadySettled:
		errObj := httpError.NewInvalidState()
		errObj.Message = "withdrawal request is not pending"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "SettleWithdrawal", request.RequestID)
		return result
	default:
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("wallet-usecase", err.Error(), "SettleWithdrawal", request.RequestID)
		return result
	}

	c.Log.Info("wallet-usecase", "withdrawal settled", "SettleWithdrawal", withdrawal.ID)
	result.Data = converter.WithdrawalToResponse(withdrawal)
	return result
}

// HandleSettleWithdrawal adapts SettleWithdrawal for the asynq worker, so a
// payment-gateway consumer can settle by enqueueing a task.
func (c *WalletUseCase) HandleSettleWithdrawal(ctx context.Context, task *asynq.Task) error {
	var payload model.SettleWithdrawalRequest
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		c.Log.Error("wallet-usecase", fmt.Sprintf("bad settle-withdrawal payload: %v", err), "HandleSettleWithdrawal", "")
		return fmt.Errorf("unmarshal settle-withdrawal payload: %w", err)
	}
	result := c.SettleWithdrawal(ctx, &payload)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (c *WalletUseCase) Transactions(ctx context.Context, request *model.TransactionHistoryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	txs, err := c.WalletRepository.Transactions(ctx, request.UserID, request.Limit)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		return result
	}
	result.Data = converter.TransactionsToResponse(txs)
	return result
}

func (c *WalletUseCase) WithdrawalRequests(ctx context.Context, request *model.GetWalletRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	requests, err := c.WalletRepository.WithdrawalRequests(ctx, request.UserID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		return result
	}
	result.Data = converter.WithdrawalsToResponse(requests)
	return result
}

// Stats rolls up the wallet: this-month earnings over completed earning
// transactions and completed missions counted as earning transactions that
// reference a mission.
func (c *WalletUseCase) Stats(ctx context.Context, request *model.GetWalletRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	wallet, err := c.WalletRepository.GetOrCreate(ctx, request.UserID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		return result
	}

	now := time.Now()
	var monthEarnings float64
	var completedMissions int
	for i := range wallet.Transactions {
		tx := &wallet.Transactions[i]
		if tx.Type != entity.TransactionTypeEarning || tx.Status != entity.TransactionStatusCompleted {
			continue
		}
		if tx.CreatedAt.Year() == now.Year() && tx.CreatedAt.Month() == now.Month() {
			monthEarnings += tx.Amount
		}
		if tx.MissionID != nil {
			completedMissions++
		}
	}

	result.Data = &model.WalletStatsResponse{
		Balance:           wallet.Balance,
		PendingAmount:     wallet.PendingAmount,
		TotalEarnings:     wallet.TotalEarnings,
		ThisMonthEarnings: monthEarnings,
		CompletedMissions: completedMissions,
	}
	return result
}

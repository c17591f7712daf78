package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"mission-service/src/internal/model"
	"mission-service/src/internal/repository"
	httpError "mission-service/src/pkg/http-error"
	"mission-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWalletFixture(t *testing.T) *WalletUseCase {
	t.Helper()
	return NewWalletUseCase(log.Log{}, validator.New(), repository.NewWalletRepository(), viper.New())
}

func creditTestEarning(t *testing.T, uc *WalletUseCase, userID string, amount float64) {
	t.Helper()
	result := uc.AddEarning(context.Background(), &model.AddEarningRequest{
		UserID: userID,
		Amount: amount,
	})
	require.NoError(t, result.Error)
}

func TestGetWalletCreatesOnFirstAccess(t *testing.T) {
	uc := newWalletFixture(t)
	result := uc.GetWallet(context.Background(), &model.GetWalletRequest{UserID: "user-1"})
	require.NoError(t, result.Error)
	wallet := result.Data.(*model.WalletResponse)
	assert.Equal(t, "user-1", wallet.UserID)
	assert.Zero(t, wallet.Balance)
}

func TestRequestWithdrawal(t *testing.T) {
	ctx := context.Background()

	t.Run("below minimum rejected", func(t *testing.T) {
		uc := newWalletFixture(t)
		creditTestEarning(t, uc, "courier-1", 100)

		result := uc.RequestWithdrawal(ctx, &model.RequestWithdrawalRequest{
			UserID: "courier-1", Amount: 9.99, BankAccount: "TR Bank", IBAN: "TR000001",
		})
		require.Error(t, result.Error)
		assert.Equal(t, httpError.CodeValidationError, errCode(t, result.Error))
	})

	t.Run("exactly the minimum accepted when covered", func(t *testing.T) {
		uc := newWalletFixture(t)
		creditTestEarning(t, uc, "courier-1", 10)

		result := uc.RequestWithdrawal(ctx, &model.RequestWithdrawalRequest{
			UserID: "courier-1", Amount: 10, BankAccount: "TR Bank", IBAN: "TR000001",
		})
		require.NoError(t, result.Error)
		withdrawal := result.Data.(model.WithdrawalRequestResponse)
		assert.Equal(t, "pending", withdrawal.Status)

		wallet := uc.GetWallet(ctx, &model.GetWalletRequest{UserID: "courier-1"}).Data.(*model.WalletResponse)
		assert.Zero(t, wallet.Balance)
		assert.Equal(t, 10.0, wallet.PendingAmount)
	})

	t.Run("insufficient balance rejected", func(t *testing.T) {
		uc := newWalletFixture(t)
		creditTestEarning(t, uc, "courier-1", 5)

		result := uc.RequestWithdrawal(ctx, &model.RequestWithdrawalRequest{
			UserID: "courier-1", Amount: 10, BankAccount: "TR Bank", IBAN: "TR000001",
		})
		require.Error(t, result.Error)
		assert.Equal(t, httpError.CodeValidationError, errCode(t, result.Error))
	})

	t.Run("configured minimum overrides the default", func(t *testing.T) {
		cfg := viper.New()
		cfg.Set("wallet.minimum_withdrawal", 25.0)
		uc := NewWalletUseCase(log.Log{}, validator.New(), repository.NewWalletRepository(), cfg)
		creditTestEarning(t, uc, "courier-1", 100)

		result := uc.RequestWithdrawal(ctx, &model.RequestWithdrawalRequest{
			UserID: "courier-1", Amount: 20, BankAccount: "TR Bank", IBAN: "TR000001",
		})
		require.Error(t, result.Error)
		assert.Equal(t, httpError.CodeValidationError, errCode(t, result.Error))
	})
}

func TestSettleWithdrawalUseCase(t *testing.T) {
	ctx := context.Background()

	request := func(t *testing.T, uc *WalletUseCase) string {
		creditTestEarning(t, uc, "courier-1", 50)
		result := uc.RequestWithdrawal(ctx, &model.RequestWithdrawalRequest{
			UserID: "courier-1", Amount: 30, BankAccount: "TR Bank", IBAN: "TR000001",
		})
		require.NoError(t, result.Error)
		return result.Data.(model.WithdrawalRequestResponse).ID
	}

	t.Run("approve", func(t *testing.T) {
		uc := newWalletFixture(t)
		id := request(t, uc)

		result := uc.SettleWithdrawal(ctx, &model.SettleWithdrawalRequest{RequestID: id, Approve: true})
		require.NoError(t, result.Error)
		assert.Equal(t, "completed", result.Data.(model.WithdrawalRequestResponse).Status)

		wallet := uc.GetWallet(ctx, &model.GetWalletRequest{UserID: "courier-1"}).Data.(*model.WalletResponse)
		assert.Equal(t, 20.0, wallet.Balance)
		assert.Zero(t, wallet.PendingAmount)
		assert.Equal(t, 30.0, wallet.TotalWithdrawals)
	})

	t.Run("reject refunds", func(t *testing.T) {
		uc := newWalletFixture(t)
		id := request(t, uc)

		result := uc.SettleWithdrawal(ctx, &model.SettleWithdrawalRequest{RequestID: id, Approve: false})
		require.NoError(t, result.Error)
		assert.Equal(t, "failed", result.Data.(model.WithdrawalRequestResponse).Status)

		wallet := uc.GetWallet(ctx, &model.GetWalletRequest{UserID: "courier-1"}).Data.(*model.WalletResponse)
		assert.Equal(t, 50.0, wallet.Balance)
		assert.Zero(t, wallet.PendingAmount)
		assert.Zero(t, wallet.TotalWithdrawals)
	})

	t.Run("double settlement fails", func(t *testing.T) {
		uc := newWalletFixture(t)
		id := request(t, uc)

		require.NoError(t, uc.SettleWithdrawal(ctx, &model.SettleWithdrawalRequest{RequestID: id, Approve: true}).Error)
		result := uc.SettleWithdrawal(ctx, &model.SettleWithdrawalRequest{RequestID: id, Approve: true})
		require.Error(t, result.Error)
		assert.Equal(t, httpError.CodeInvalidState, errCode(t, result.Error))
	})

	t.Run("unknown request", func(t *testing.T) {
		uc := newWalletFixture(t)
		result := uc.SettleWithdrawal(ctx, &model.SettleWithdrawalRequest{RequestID: "missing", Approve: true})
		require.Error(t, result.Error)
		assert.Equal(t, httpError.CodeNotFound, errCode(t, result.Error))
	})
}

func TestHandleSettleWithdrawalTask(t *testing.T) {
	ctx := context.Background()
	uc := newWalletFixture(t)
	creditTestEarning(t, uc, "courier-1", 50)
	requested := uc.RequestWithdrawal(ctx, &model.RequestWithdrawalRequest{
		UserID: "courier-1", Amount: 30, BankAccount: "TR Bank", IBAN: "TR000001",
	})
	require.NoError(t, requested.Error)
	id := requested.Data.(model.WithdrawalRequestResponse).ID

	payload, err := json.Marshal(model.SettleWithdrawalRequest{RequestID: id, Approve: true})
	require.NoError(t, err)
	task := asynq.NewTask(TypeSettleWithdrawal, payload)

	require.NoError(t, uc.HandleSettleWithdrawal(ctx, task))

	wallet := uc.GetWallet(ctx, &model.GetWalletRequest{UserID: "courier-1"}).Data.(*model.WalletResponse)
	assert.Equal(t, 30.0, wallet.TotalWithdrawals)

	t.Run("bad payload errors", func(t *testing.T) {
		err := uc.HandleSettleWithdrawal(ctx, asynq.NewTask(TypeSettleWithdrawal, []byte("{")))
		assert.Error(t, err)
	})
}

func TestWalletStats(t *testing.T) {
	uc := newWalletFixture(t)
	ctx := context.Background()

	missionID := "mission-a"
	result := uc.AddEarning(ctx, &model.AddEarningRequest{UserID: "courier-1", Amount: 20, MissionID: &missionID})
	require.NoError(t, result.Error)
	creditTestEarning(t, uc, "courier-1", 15)

	stats := uc.Stats(ctx, &model.GetWalletRequest{UserID: "courier-1"})
	require.NoError(t, stats.Error)
	response := stats.Data.(*model.WalletStatsResponse)
	assert.Equal(t, 35.0, response.Balance)
	assert.Equal(t, 35.0, response.TotalEarnings)
	assert.Equal(t, 35.0, response.ThisMonthEarnings)
	assert.Equal(t, 1, response.CompletedMissions)
}

func TestWalletTransactionsLimit(t *testing.T) {
	uc := newWalletFixture(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		creditTestEarning(t, uc, "courier-1", float64(i+1))
	}

	result := uc.Transactions(ctx, &model.TransactionHistoryRequest{UserID: "courier-1", Limit: 2})
	require.NoError(t, result.Error)
	txs := result.Data.([]model.TransactionResponse)
	require.Len(t, txs, 2)
	assert.Equal(t, 4.0, txs[0].Amount)
}

package repository

import (
	"context"
	"testing"

	"mission-service/src/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ledgerTotal sums the signed audit trail. The invariant under test: the
// sum always reproduces Balance, since a rejected withdrawal nets out
// against its refund entry and a pending one has already left the balance.
func ledgerTotal(wallet *entity.Wallet) float64 {
	var total float64
	for i := range wallet.Transactions {
		total += wallet.Transactions[i].Amount
	}
	return total
}

func TestWalletRepositoryGetOrCreate(t *testing.T) {
	repo := NewWalletRepository()
	ctx := context.Background()

	wallet, err := repo.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", wallet.UserID)
	assert.Zero(t, wallet.Balance)
	assert.Empty(t, wallet.Transactions)
}

func TestWalletRepositoryCreditEarning(t *testing.T) {
	repo := NewWalletRepository()
	ctx := context.Background()
	missionID := "mission-a"

	tx, err := repo.CreditEarning(ctx, "courier-1", 20, "Reward for mission: Deliver notes", &missionID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeEarning, tx.Type)
	assert.Equal(t, entity.TransactionStatusCompleted, tx.Status)
	assert.Equal(t, 20.0, tx.Amount)

	wallet, err := repo.GetOrCreate(ctx, "courier-1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, wallet.Balance)
	assert.Equal(t, 20.0, wallet.TotalEarnings)
	require.Len(t, wallet.Transactions, 1)
	require.NotNil(t, wallet.Transactions[0].MissionID)
	assert.Equal(t, "mission-a", *wallet.Transactions[0].MissionID)
}

func TestWalletRepositoryDebitWithdrawal(t *testing.T) {
	ctx := context.Background()

	t.Run("insufficient balance", func(t *testing.T) {
		repo := NewWalletRepository()
		_, err := repo.CreditEarning(ctx, "courier-1", 5, "small", nil)
		require.NoError(t, err)

		_, err = repo.DebitWithdrawal(ctx, "courier-1", 10, "TR Bank", "TR000001")
		assert.ErrorIs(t, err, ErrInsufficientBalance)

		wallet, err := repo.GetOrCreate(ctx, "courier-1")
		require.NoError(t, err)
		assert.Equal(t, 5.0, wallet.Balance)
		assert.Zero(t, wallet.PendingAmount)
	})

	t.Run("unknown wallet", func(t *testing.T) {
		repo := NewWalletRepository()
		_, err := repo.DebitWithdrawal(ctx, "nobody", 10, "TR Bank", "TR000001")
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("moves balance into pending with audit entry", func(t *testing.T) {
		repo := NewWalletRepository()
		_, err := repo.CreditEarning(ctx, "courier-1", 50, "reward", nil)
		require.NoError(t, err)

		request, err := repo.DebitWithdrawal(ctx, "courier-1", 30, "TR Bank", "TR000001")
		require.NoError(t, err)
		assert.Equal(t, entity.TransactionStatusPending, request.Status)
		assert.Equal(t, 30.0, request.Amount)

		wallet, err := repo.GetOrCreate(ctx, "courier-1")
		require.NoError(t, err)
		assert.Equal(t, 20.0, wallet.Balance)
		assert.Equal(t, 30.0, wallet.PendingAmount)
		require.Len(t, wallet.Transactions, 2)
		assert.Equal(t, entity.TransactionTypeWithdrawal, wallet.Transactions[0].Type)
		assert.Equal(t, -30.0, wallet.Transactions[0].Amount)
	})
}

func TestWalletRepositorySettleWithdrawal(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*WalletRepository, string) {
		repo := NewWalletRepository()
		_, err := repo.CreditEarning(ctx, "courier-1", 50, "reward", nil)
		require.NoError(t, err)
		request, err := repo.DebitWithdrawal(ctx, "courier-1", 30, "TR Bank", "TR000001")
		require.NoError(t, err)
		return repo, request.ID
	}

	t.Run("approve completes and reconciles totals", func(t *testing.T) {
		repo, requestID := setup(t)

		settled, err := repo.SettleWithdrawal(ctx, requestID, true)
		require.NoError(t, err)
		assert.Equal(t, entity.TransactionStatusCompleted, settled.Status)
		assert.NotNil(t, settled.SettledAt)

		wallet, err := repo.GetOrCreate(ctx, "courier-1")
		require.NoError(t, err)
		assert.Equal(t, 20.0, wallet.Balance)
		assert.Zero(t, wallet.PendingAmount)
		assert.Equal(t, 30.0, wallet.TotalWithdrawals)
		assert.Equal(t, 20.0, ledgerTotal(wallet))
	})

	t.Run("reject fails the request and refunds", func(t *testing.T) {
		repo, requestID := setup(t)

		settled, err := repo.SettleWithdrawal(ctx, requestID, false)
		require.NoError(t, err)
		assert.Equal(t, entity.TransactionStatusFailed, settled.Status)

		wallet, err := repo.GetOrCreate(ctx, "courier-1")
		require.NoError(t, err)
		assert.Equal(t, 50.0, wallet.Balance)
		assert.Zero(t, wallet.PendingAmount)
		assert.Zero(t, wallet.TotalWithdrawals)
		// refund transaction appended on top
		assert.Equal(t, entity.TransactionTypeRefund, wallet.Transactions[0].Type)
		assert.Equal(t, 50.0, ledgerTotal(wallet))
	})

	t.Run("second settlement fails", func(t *testing.T) {
		repo, requestID := setup(t)

		_, err := repo.SettleWithdrawal(ctx, requestID, true)
		require.NoError(t, err)
		_, err = repo.SettleWithdrawal(ctx, requestID, false)
		assert.ErrorIs(t, err, ErrAlreadySettled)
	})

	t.Run("unknown request", func(t *testing.T) {
		repo := NewWalletRepository()
		_, err := repo.SettleWithdrawal(ctx, "missing", true)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestWalletRepositoryTransactions(t *testing.T) {
	repo := NewWalletRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.CreditEarning(ctx, "courier-1", float64(i+1), "reward", nil)
		require.NoError(t, err)
	}

	txs, err := repo.Transactions(ctx, "courier-1", 3)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	// newest first
	assert.Equal(t, 5.0, txs[0].Amount)
	assert.Equal(t, 4.0, txs[1].Amount)

	all, err := repo.Transactions(ctx, "courier-1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	none, err := repo.Transactions(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

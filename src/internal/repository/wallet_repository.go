package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"mission-service/src/internal/entity"

	"github.com/google/uuid"
)

// WalletRepository owns wallets, their ledgers and the withdrawal-request
// records. Every balance mutation happens in one critical section together
// with its counter mutation and the appended audit transaction, so no path
// can change the ledger total without leaving an entry.
type WalletRepository struct {
	mu          sync.Mutex
	wallets     map[string]*entity.Wallet
	withdrawals map[string]*entity.WithdrawalRequest
}

func NewWalletRepository() *WalletRepository {
	return &WalletRepository{
		wallets:     make(map[string]*entity.Wallet),
		withdrawals: make(map[string]*entity.WithdrawalRequest),
	}
}

// GetOrCreate returns a snapshot of the user's wallet, creating a zeroed one
// on first access. It never fails.
func (r *WalletRepository) GetOrCreate(ctx context.Context, userID string) (*entity.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wallet := r.getOrCreateLocked(userID)
	return copyWallet(wallet), nil
}

// CreditEarning appends a completed earning transaction and increments
// Balance and TotalEarnings in the same step.
func (r *WalletRepository) CreditEarning(ctx context.Context, userID string, amount float64, description string, missionID *string) (*entity.WalletTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	wallet := r.getOrCreateLocked(userID)

	tx := entity.WalletTransaction{
		ID:          uuid.NewString(),
		Type:        entity.TransactionTypeEarning,
		Amount:      amount,
		Description: description,
		MissionID:   missionID,
		Status:      entity.TransactionStatusCompleted,
		CreatedAt:   now,
		CompletedAt: &now,
	}
	wallet.Transactions = append([]entity.WalletTransaction{tx}, wallet.Transactions...)
	wallet.Balance += amount
	wallet.TotalEarnings += amount
	wallet.LastUpdated = now

	return &tx, nil
}

// DebitWithdrawal checks the balance and, in the same critical section,
// appends a pending withdrawal transaction of -amount, moves the amount from
// Balance to PendingAmount and records the back-office withdrawal request.
// TotalWithdrawals is only reconciled at settlement.
func (r *WalletRepository) DebitWithdrawal(ctx context.Context, userID string, amount float64, bankAccount, iban string) (*entity.WithdrawalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wallet, ok := r.wallets[userID]
	if !ok || wallet.Balance < amount {
		return nil, ErrInsufficientBalance
	}

	now := time.Now()
	tx := entity.WalletTransaction{
		ID:          uuid.NewString(),
		Type:        entity.TransactionTypeWithdrawal,
		Amount:      -amount,
		Description: "withdrawal request",
		Status:      entity.TransactionStatusPending,
		CreatedAt:   now,
	}
	wallet.Transactions = append([]entity.WalletTransaction{tx}, wallet.Transactions...)
	wallet.Balance -= amount
	wallet.PendingAmount += amount
	wallet.LastUpdated = now

	request := &entity.WithdrawalRequest{
		ID:            uuid.NewString(),
		UserID:        userID,
		Amount:        amount,
		BankAccount:   bankAccount,
		IBAN:          iban,
		Status:        entity.TransactionStatusPending,
		TransactionID: tx.ID,
		CreatedAt:     now,
	}
	r.withdrawals[request.ID] = request

	requestCopy := *request
	return &requestCopy, nil
}

// SettleWithdrawal is the payment-gateway settlement hook. Approval flips
// the request and its paired transaction to completed and reconciles
// TotalWithdrawals; rejection flips them to failed and refunds the balance
// through an explicit refund transaction.
func (r *WalletRepository) SettleWithdrawal(ctx context.Context, requestID string, approve bool) (*entity.WithdrawalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.withdrawals[requestID]
	if !ok {
		return nil, ErrNotFound
	}
	if request.Status != entity.TransactionStatusPending {
		return nil, ErrAlreadySettled
	}
	wallet, ok := r.wallets[request.UserID]
	if !ok {
		return nil, ErrNotFound
	}

	now := time.Now()
	if approve {
		request.Status = entity.TransactionStatusCompleted
		r.setTransactionStatusLocked(wallet, request.TransactionID, entity.TransactionStatusCompleted, now)
		wallet.PendingAmount -= request.Amount
		wallet.TotalWithdrawals += request.Amount
	} else {
		request.Status = entity.TransactionStatusFailed
		r.setTransactionStatusLocked(wallet, request.TransactionID, entity.TransactionStatusFailed, now)
		wallet.PendingAmount -= request.Amount
		wallet.Balance += request.Amount
		refund := entity.WalletTransaction{
			ID:          uuid.NewString(),
			Type:        entity.TransactionTypeRefund,
			Amount:      request.Amount,
			Description: "withdrawal rejected",
			Status:      entity.TransactionStatusCompleted,
			CreatedAt:   now,
			CompletedAt: &now,
		}
		wallet.Transactions = append([]entity.WalletTransaction{refund}, wallet.Transactions...)
	}
	request.SettledAt = &now
	wallet.LastUpdated = now

	requestCopy := *request
	settled := now
	requestCopy.SettledAt = &settled
	return &requestCopy, nil
}

func (r *WalletRepository) Transactions(ctx context.Context, userID string, limit int) ([]entity.WalletTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wallet, ok := r.wallets[userID]
	if !ok {
		return nil, nil
	}
	txs := wallet.Transactions
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}
	out := make([]entity.WalletTransaction, len(txs))
	copy(out, txs)
	return out, nil
}

func (r *WalletRepository) WithdrawalRequests(ctx context.Context, userID string) ([]entity.WithdrawalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var requests []entity.WithdrawalRequest
	for _, w := range r.withdrawals {
		if w.UserID == userID {
			requests = append(requests, *w)
		}
	}
	sortWithdrawalsNewestFirst(requests)
	return requests, nil
}

func (r *WalletRepository) getOrCreateLocked(userID string) *entity.Wallet {
	wallet, ok := r.wallets[userID]
	if !ok {
		wallet = &entity.Wallet{
			UserID:      userID,
			LastUpdated: time.Now(),
		}
		r.wallets[userID] = wallet
	}
	return wallet
}

func (r *WalletRepository) setTransactionStatusLocked(wallet *entity.Wallet, txID string, status entity.TransactionStatus, now time.Time) {
	for i := range wallet.Transactions {
		if wallet.Transactions[i].ID == txID {
			wallet.Transactions[i].Status = status
			completed := now
			wallet.Transactions[i].CompletedAt = &completed
			return
		}
	}
}

func copyWallet(w *entity.Wallet) *entity.Wallet {
	c := *w
	c.Transactions = make([]entity.WalletTransaction, len(w.Transactions))
	copy(c.Transactions, w.Transactions)
	return &c
}

func sortWithdrawalsNewestFirst(requests []entity.WithdrawalRequest) {
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}

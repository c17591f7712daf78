package entity

import "time"

type TransactionType string

const (
	TransactionTypeEarning      TransactionType = "earning"
	TransactionTypeWithdrawal   TransactionType = "withdrawal"
	TransactionTypeSubscription TransactionType = "subscription"
	TransactionTypeRefund       TransactionType = "refund"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Wallet holds a user's balance and the append-only ledger backing it.
// Invariant: Balance == TotalEarnings - TotalWithdrawals - PendingAmount
// (minus any refunded amounts already folded back into Balance).
type Wallet struct {
	UserID           string              `json:"userId"`
	Balance          float64             `json:"balance"`
	TotalEarnings    float64             `json:"totalEarnings"`
	TotalWithdrawals float64             `json:"totalWithdrawals"`
	PendingAmount    float64             `json:"pendingAmount"`
	Transactions     []WalletTransaction `json:"transactions"` // newest first
	LastUpdated      time.Time           `json:"lastUpdated"`
}

// WalletTransaction is immutable once appended, except for Status and
// CompletedAt which the owning settlement operation updates.
type WalletTransaction struct {
	ID          string            `json:"id"`
	Type        TransactionType   `json:"type"`
	Amount      float64           `json:"amount"` // signed: negative for debits
	Description string            `json:"description"`
	MissionID   *string           `json:"missionId,omitempty"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
}

// WithdrawalRequest is the back-office record paired with a pending
// withdrawal transaction.
type WithdrawalRequest struct {
	ID            string            `json:"id"`
	UserID        string            `json:"userId"`
	Amount        float64           `json:"amount"`
	BankAccount   string            `json:"bankAccount"`
	IBAN          string            `json:"iban"`
	Status        TransactionStatus `json:"status"`
	TransactionID string            `json:"transactionId"`
	CreatedAt     time.Time         `json:"createdAt"`
	SettledAt     *time.Time        `json:"settledAt,omitempty"`
}

package model

import "time"

type GetWalletRequest struct {
	UserID string `json:"userId" validate:"required,max=100"`
}

type AddEarningRequest struct {
	UserID      string  `json:"userId" validate:"required,max=100"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"max=255"`
	MissionID   *string `json:"missionId,omitempty"`
}

type RequestWithdrawalRequest struct {
	UserID      string  `json:"-" validate:"required,max=100"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	BankAccount string  `json:"bankAccount" validate:"required,max=100"`
	IBAN        string  `json:"iban" validate:"required,max=64"`
}

type SettleWithdrawalRequest struct {
	RequestID string `json:"requestId" validate:"required"`
	Approve   bool   `json:"approve"`
}

type TransactionHistoryRequest struct {
	UserID string `json:"userId" validate:"required,max=100"`
	Limit  int    `json:"limit" validate:"gte=0,lte=500"`
}

type WalletResponse struct {
	UserID           string                `json:"userId"`
	Balance          float64               `json:"balance"`
	TotalEarnings    float64               `json:"totalEarnings"`
	TotalWithdrawals float64               `json:"totalWithdrawals"`
	PendingAmount    float64               `json:"pendingAmount"`
	Transactions     []TransactionResponse `json:"transactions"`
	LastUpdated      time.Time             `json:"lastUpdated"`
}

type TransactionResponse struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description,omitempty"`
	MissionID   *string    `json:"missionId,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type WithdrawalRequestResponse struct {
	ID          string     `json:"id"`
	Amount      float64    `json:"amount"`
	BankAccount string     `json:"bankAccount"`
	IBAN        string     `json:"iban"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	SettledAt   *time.Time `json:"settledAt,omitempty"`
}

type WalletStatsResponse struct {
	Balance           float64 `json:"balance"`
	PendingAmount     float64 `json:"pendingAmount"`
	TotalEarnings     float64 `json:"totalEarnings"`
	ThisMonthEarnings float64 `json:"thisMonthEarnings"`
	CompletedMissions int     `json:"completedMissions"`
}

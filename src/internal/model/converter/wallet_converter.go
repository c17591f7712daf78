package converter

import (
	"mission-service/src/internal/entity"
	"mission-service/src/internal/model"
)

func WalletToResponse(wallet *entity.Wallet, limit int) *model.WalletResponse {
	txs := wallet.Transactions
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}
	return &model.WalletResponse{
		UserID:           wallet.UserID,
		Balance:          wallet.Balance,
		TotalEarnings:    wallet.TotalEarnings,
		TotalWithdrawals: wallet.TotalWithdrawals,
		PendingAmount:    wallet.PendingAmount,
		Transactions:     TransactionsToResponse(txs),
		LastUpdated:      wallet.LastUpdated,
	}
}

func TransactionToResponse(tx *entity.WalletTransaction) model.TransactionResponse {
	return model.TransactionResponse{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Description: tx.Description,
		MissionID:   tx.MissionID,
		Status:      string(tx.Status),
		CreatedAt:   tx.CreatedAt,
		CompletedAt: tx.CompletedAt,
	}
}

func TransactionsToResponse(txs []entity.WalletTransaction) []model.TransactionResponse {
	responses := make([]model.TransactionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, TransactionToResponse(&txs[i]))
	}
	return responses
}

func WithdrawalToResponse(req *entity.WithdrawalRequest) model.WithdrawalRequestResponse {
	return model.WithdrawalRequestResponse{
		ID:          req.ID,
		Amount:      req.Amount,
		BankAccount: req.BankAccount,
		IBAN:        req.IBAN,
		Status:      string(req.Status),
		CreatedAt:   req.CreatedAt,
		SettledAt:   req.SettledAt,
	}
}

func WithdrawalsToResponse(reqs []entity.WithdrawalRequest) []model.WithdrawalRequestResponse {
	responses := make([]model.WithdrawalRequestResponse, 0, len(reqs))
	for i := range reqs {
		responses = append(responses, WithdrawalToResponse(&reqs[i]))
	}
	return responses
}

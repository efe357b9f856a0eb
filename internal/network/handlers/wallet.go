package handlers

import (
	"net/http"

	"github.com/denmor86/paytik/internal/logger"
	"github.com/denmor86/paytik/internal/models"
	"github.com/denmor86/paytik/internal/services"
)

// GetUserBalanceHandler - текущий баланс кошелька
func GetUserBalanceHandler(s services.WalletService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		balance, err := s.GetBalance(r.Context(), alias)
		if err != nil {
			writeError(w, err, "Failed to get user balance:")
			return
		}
		writeJSON(w, http.StatusOK, balance)
	})
}

// DepositHandler - пополнение кошелька (versement)
func DepositHandler(s services.WalletService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		var req models.AmountRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := s.Deposit(r.Context(), alias, req.Amount); err != nil {
			writeError(w, err, "Failed to deposit:")
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// TransferHandler - перевод другому пользователю
func TransferHandler(s services.WalletService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		var req models.TransferRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := s.Transfer(r.Context(), alias, req); err != nil {
			writeError(w, err, "Failed to transfer:")
			return
		}
		logger.Infow("Transfer completed", "from", alias, "to", req.To, "amount", req.Amount.String())
		w.WriteHeader(http.StatusOK)
	})
}

// GetTransactionsHandler - журнал операций пользователя
func GetTransactionsHandler(s services.WalletService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		transactions, err := s.GetTransactions(r.Context(), alias)
		if err != nil {
			writeError(w, err, "Failed to get transactions:")
			return
		}
		if len(transactions) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, transactions)
	})
}

package handlers

import (
	"net/http"

	"github.com/denmor86/paytik/internal/models"
	"github.com/denmor86/paytik/internal/services"
	"github.com/shopspring/decimal"
)

// CreateVaultHandler - создание копилки
func CreateVaultHandler(s services.SavingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		var req models.VaultRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		vault, err := s.CreateVault(r.Context(), alias, req)
		if err != nil {
			writeError(w, err, "Failed to create vault:")
			return
		}
		writeJSON(w, http.StatusCreated, vault)
	})
}

func GetVaultsHandler(s services.SavingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		vaults, err := s.GetVaults(r.Context(), alias)
		if err != nil {
			writeError(w, err, "Failed to get vaults:")
			return
		}
		if len(vaults) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, vaults)
	})
}

// vaultMovementHandler - пополнение копилки или снятие из неё
func vaultMovementHandler(move func(r *http.Request, alias, id string, amount decimal.Decimal) error) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, services.ErrVaultNotFound)
		if !ok {
			return
		}
		var req models.AmountRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := move(r, alias, id, req.Amount); err != nil {
			writeError(w, err, "Failed vault movement:")
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

func VaultDepositHandler(s services.SavingsService) http.HandlerFunc {
	return vaultMovementHandler(func(r *http.Request, alias, id string, amount decimal.Decimal) error {
		return s.DepositVault(r.Context(), alias, id, amount)
	})
}

func VaultWithdrawHandler(s services.SavingsService) http.HandlerFunc {
	return vaultMovementHandler(func(r *http.Request, alias, id string, amount decimal.Decimal) error {
		return s.WithdrawVault(r.Context(), alias, id, amount)
	})
}

// CreateTontineHandler - создание тонтины
func CreateTontineHandler(s services.SavingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		var req models.TontineRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		tontine, err := s.CreateTontine(r.Context(), alias, req)
		if err != nil {
			writeError(w, err, "Failed to create tontine:")
			return
		}
		writeJSON(w, http.StatusCreated, tontine)
	})
}

func GetTontinesHandler(s services.SavingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		tontines, err := s.GetTontines(r.Context(), alias)
		if err != nil {
			writeError(w, err, "Failed to get tontines:")
			return
		}
		if len(tontines) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, tontines)
	})
}

// ContributeTontineHandler - взнос в тонтину, сумма фиксирована при создании
func ContributeTontineHandler(s services.SavingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, services.ErrTontineNotFound)
		if !ok {
			return
		}
		if err := s.ContributeTontine(r.Context(), alias, id); err != nil {
			writeError(w, err, "Failed to contribute tontine:")
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// IssueCardHandler - выпуск виртуальной карты. Полный номер отдаётся только здесь.
func IssueCardHandler(s services.SavingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		card, err := s.IssueCard(r.Context(), alias)
		if err != nil {
			writeError(w, err, "Failed to issue card:")
			return
		}
		writeJSON(w, http.StatusCreated, card)
	})
}

func GetCardHandler(s services.SavingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		card, err := s.GetCard(r.Context(), alias)
		if err != nil {
			writeError(w, err, "Failed to get card:")
			return
		}
		masked := *card
		masked.Number = card.MaskedNumber()
		writeJSON(w, http.StatusOK, masked)
	})
}

func RechargeCardHandler(s services.SavingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		var req models.AmountRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := s.RechargeCard(r.Context(), alias, req.Amount); err != nil {
			writeError(w, err, "Failed to recharge card:")
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

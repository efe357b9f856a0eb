package handlers

import (
	"net/http"

	"github.com/denmor86/paytik/internal/models"
	"github.com/denmor86/paytik/internal/services"
)

// SimulateCreditHandler - расчёт графика и TEG без сохранения заявки
func SimulateCreditHandler(s services.CreditService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.CreditSimulationRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		sim, err := s.Simulate(req.Kind, req.Amount, req.Installments)
		if err != nil {
			writeError(w, err, "Failed to simulate credit:")
			return
		}
		writeJSON(w, http.StatusOK, sim)
	})
}

// SubmitCreditHandler - подача заявки на рассрочку или финансирование
func SubmitCreditHandler(s services.CreditService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		var req models.CreditSubmitRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		credit, err := s.Submit(r.Context(), alias, req)
		if err != nil {
			writeError(w, err, "Failed to submit credit request:")
			return
		}
		writeJSON(w, http.StatusAccepted, credit)
	})
}

// GetCreditsHandler - заявки пользователя
func GetCreditsHandler(s services.CreditService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		credits, err := s.GetCredits(r.Context(), alias)
		if err != nil {
			writeError(w, err, "Failed to get credit requests:")
			return
		}
		if len(credits) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, credits)
	})
}

// GetCreditHandler - заявка пользователя по идентификатору
func GetCreditHandler(s services.CreditService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, services.ErrCreditNotFound)
		if !ok {
			return
		}
		credit, err := s.GetCredit(r.Context(), alias, id)
		if err != nil {
			writeError(w, err, "Failed to get credit request:")
			return
		}
		writeJSON(w, http.StatusOK, credit)
	})
}

// RepayCreditHandler - погашение по одобренной заявке
func RepayCreditHandler(s services.CreditService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, services.ErrCreditNotFound)
		if !ok {
			return
		}
		var req models.RepayRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		credit, err := s.Repay(r.Context(), alias, id, req.Amount)
		if err != nil {
			writeError(w, err, "Failed to repay credit:")
			return
		}
		writeJSON(w, http.StatusOK, credit)
	})
}

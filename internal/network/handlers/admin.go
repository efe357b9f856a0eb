package handlers

import (
	"net/http"

	"github.com/denmor86/paytik/internal/models"
	"github.com/denmor86/paytik/internal/services"
	"github.com/go-chi/chi/v5"
)

// ListUsersHandler - сводка по пользователям
func ListUsersHandler(d services.DirectoryService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		users, err := d.ListUsers(r.Context())
		if err != nil {
			writeError(w, err, "Failed to list users:")
			return
		}
		if len(users) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, users)
	})
}

func GetManagedUserHandler(d services.DirectoryService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := d.GetUser(r.Context(), chi.URLParam(r, "alias"))
		if err != nil {
			writeError(w, err, "Failed to get user:")
			return
		}
		writeJSON(w, http.StatusOK, user)
	})
}

// GetCreditsByStatusHandler - очередь заявок; по умолчанию ожидающие решения
func GetCreditsByStatusHandler(s services.CreditService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")
		if status == "" {
			status = models.CreditStatusReview
		}
		credits, err := s.GetCreditsByStatus(r.Context(), status)
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

// ApproveCreditHandler - одобрение заявки
func ApproveCreditHandler(s services.CreditService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, ok := currentAlias(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, services.ErrCreditNotFound)
		if !ok {
			return
		}
		credit, err := s.Approve(r.Context(), id, admin)
		if err != nil {
			writeError(w, err, "Failed to approve credit request:")
			return
		}
		writeJSON(w, http.StatusOK, credit)
	})
}

// RejectCreditHandler - отклонение заявки, причина необязательна
func RejectCreditHandler(s services.CreditService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, ok := currentAlias(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, services.ErrCreditNotFound)
		if !ok {
			return
		}
		var req models.DecisionRequest
		if !decodeOptionalJSON(w, r, &req) {
			return
		}
		if err := s.Reject(r.Context(), id, admin, req.Reason); err != nil {
			writeError(w, err, "Failed to reject credit request:")
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/denmor86/paytik/internal/helpers"
	"github.com/denmor86/paytik/internal/logger"
	"github.com/denmor86/paytik/internal/services"
	"github.com/denmor86/paytik/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// errorStatus - код ответа для ошибок сервисного слоя
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidAlias),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidPassword),
		errors.Is(err, services.ErrInvalidPINFormat),
		errors.Is(err, services.ErrSelfTransfer),
		errors.Is(err, services.ErrInvalidKind),
		errors.Is(err, services.ErrInvalidInstallments),
		errors.Is(err, services.ErrAmountOutOfRange),
		errors.Is(err, services.ErrInvalidMerchant),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidName),
		errors.Is(err, services.ErrInvalidContribution):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrInvalidPIN):
		return http.StatusForbidden
	case errors.Is(err, services.ErrUserAlreadyExists),
		errors.Is(err, services.ErrCardAlreadyIssued),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrOverpayment):
		return http.StatusConflict
	case errors.Is(err, storage.ErrUserNotFound),
		errors.Is(err, services.ErrCreditNotFound),
		errors.Is(err, services.ErrVaultNotFound),
		errors.Is(err, services.ErrTontineNotFound),
		errors.Is(err, services.ErrCardNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError - ответ с ошибкой; внутренние ошибки наружу не отдаются
func writeError(w http.ResponseWriter, err error, msg string) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err))
		http.Error(w, "Internal Server Error", status)
		return
	}
	logger.Warn(msg, err.Error())
	http.Error(w, err.Error(), status)
}

// writeJSON - сериализация ответа
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
	}
}

// decodeJSON - чтение тела запроса; при ошибке ответ уже отправлен
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Warn("Invalid request format:", zap.Error(err))
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return false
	}
	return true
}

// decodeOptionalJSON - как decodeJSON, но пустое тело допустимо
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Invalid request format:", zap.Error(err))
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return false
	}
	return true
}

// currentAlias - алиас из токена; при ошибке ответ уже отправлен
func currentAlias(w http.ResponseWriter, r *http.Request) (string, bool) {
	alias, err := helpers.GetAlias(r.Context())
	if err != nil {
		logger.Warn("Failed to get alias:", zap.Error(err))
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return alias, true
}

// pathID - идентификатор ресурса из URL. Строка не в формате UUID
// не может принадлежать ни одной записи, ответ 404 уже отправлен.
func pathID(w http.ResponseWriter, r *http.Request, notFound error) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, notFound, "Invalid resource id:")
		return "", false
	}
	return id, true
}

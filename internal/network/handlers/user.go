package handlers

import (
	"net/http"

	"github.com/denmor86/paytik/internal/logger"
	"github.com/denmor86/paytik/internal/models"
	"github.com/denmor86/paytik/internal/services"
)

// RegisterUserHandler - регистрация нового пользователя
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var user models.UserRequest
		if !decodeJSON(w, r, &user) {
			return
		}

		// регистрация в Identity
		if err := i.RegisterUser(r.Context(), user); err != nil {
			writeError(w, err, "Error register user")
			return
		}
		if user.Role == "" {
			user.Role = models.RoleUser
		}

		// Генерация JWT токена для зарегистрированного пользователя
		token, err := i.GenerateJWT(user.Alias, user.Role)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		// Пользователь зарегистрирован и авторизован
		logger.Info("User registered and authenticated", user.Alias)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}

// AuthenticateUserHandle - аутентификация пользователя
func AuthenticateUserHandle(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var user models.UserRequest
		if !decodeJSON(w, r, &user) {
			return
		}
		// аутентификация в Identity
		stored, err := i.AuthenticateUser(r.Context(), user)
		if err != nil {
			writeError(w, err, "Error authenticate user")
			return
		}
		// генерация токена, роль берётся из хранилища, а не из запроса
		token, err := i.GenerateJWT(stored.Alias, stored.Role)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}

		// пользователь прошел авторизацию
		logger.Info("User authenticated", stored.Alias)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}

// SetPinHandler - установка PIN для переводов
func SetPinHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alias, ok := currentAlias(w, r)
		if !ok {
			return
		}
		var req models.PinRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := i.SetPin(r.Context(), alias, req.Pin); err != nil {
			writeError(w, err, "Failed to set pin")
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Роли пользователей
const (
	RoleUser     = "user"
	RoleMerchant = "merchant"
	RoleAdmin    = "admin"
)

// UserRequest - модель для регистрации и аутентификации пользователя, приходит извне
type UserRequest struct {
	Alias    string `json:"alias"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// PinRequest - установка PIN-кода для исходящих переводов
type PinRequest struct {
	Pin string `json:"pin"`
}

// UserData - модель пользователя из хранищища
type UserData struct {
	UserID       string
	Alias        string
	Role         string
	PasswordHash string
	PinHash      string
	Balance      decimal.Decimal
	CreatedAt    time.Time
}

// UserBalance - текущий баланс кошелька
type UserBalance struct {
	Current decimal.Decimal `json:"current"`
}

// ManagedUser - сводная карточка пользователя для администратора.
// Собирается из нескольких таблиц в одном снимке БД.
type ManagedUser struct {
	UserID            string          `json:"id"`
	Alias             string          `json:"alias"`
	Role              string          `json:"role"`
	Balance           decimal.Decimal `json:"balance"`
	TransactionCount  int64           `json:"transaction_count"`
	VaultTotal        decimal.Decimal `json:"vault_total"`
	TontineTotal      decimal.Decimal `json:"tontine_total"`
	CardBalance       decimal.Decimal `json:"card_balance"`
	OutstandingCredit decimal.Decimal `json:"outstanding_credit"`
	CreatedAt         time.Time       `json:"created_at"`
}

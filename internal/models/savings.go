package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VaultData - копилка пользователя
type VaultData struct {
	ID        string          `json:"id"`
	UserID    string          `json:"-"`
	Name      string          `json:"name"`
	Target    decimal.Decimal `json:"target"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// VaultRequest - создание копилки
type VaultRequest struct {
	Name   string          `json:"name"`
	Target decimal.Decimal `json:"target"`
}

// TontineData - тонтина (круговая касса взаимопомощи)
type TontineData struct {
	ID           string          `json:"id"`
	UserID       string          `json:"-"`
	Name         string          `json:"name"`
	Contribution decimal.Decimal `json:"contribution"`
	Balance      decimal.Decimal `json:"balance"`
	Rounds       int             `json:"rounds"`
	CreatedAt    time.Time       `json:"created_at"`
}

// TontineRequest - создание тонтины
type TontineRequest struct {
	Name         string          `json:"name"`
	Contribution decimal.Decimal `json:"contribution"`
}

// CardData - виртуальная карта
type CardData struct {
	ID        string          `json:"id"`
	UserID    string          `json:"-"`
	Number    string          `json:"number"`
	Holder    string          `json:"holder"`
	ExpiresAt time.Time       `json:"expires_at"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// MaskedNumber - номер карты для выдачи: видны только последние 4 цифры
func (c *CardData) MaskedNumber() string {
	if len(c.Number) < 4 {
		return c.Number
	}
	return "**** **** **** " + c.Number[len(c.Number)-4:]
}

// AmountRequest - запрос с одной суммой (пополнение копилки, карты и т.п.)
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// Movement - перемещение средств между кошельком и накопительным счётом
type Movement struct {
	UserID       string
	TargetID     string
	Amount       decimal.Decimal
	Type         string
	Counterparty string
	Reason       string
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типы операций по кошельку
const (
	TransactionSent               = "sent"
	TransactionReceived           = "received"
	TransactionTontine            = "tontine"
	TransactionCardRecharge       = "card_recharge"
	TransactionVersement          = "versement"
	TransactionVault              = "vault"
	TransactionCreditDisbursement = "credit_disbursement"
	TransactionCreditRepayment    = "credit_repayment"
)

// Статусы операций
const (
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// TransactionData - запись журнала операций пользователя
type TransactionData struct {
	ID           string          `json:"id"`
	UserID       string          `json:"-"`
	Type         string          `json:"type"`
	Counterparty string          `json:"counterparty"`
	Reason       string          `json:"reason"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"date"`
}

// TransferRequest - перевод другому пользователю
type TransferRequest struct {
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
	Pin    string          `json:"pin"`
}

// Transfer - перевод между двумя кошельками, проводится одной транзакцией БД
type Transfer struct {
	FromUserID   string
	ToUserID     string
	FromAlias    string
	ToAlias      string
	Amount       decimal.Decimal
	Reason       string
	SentType     string
	ReceivedType string
}

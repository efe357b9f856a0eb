package services

import (
	"context"
	"errors"
	"strings"

	"github.com/denmor86/paytik/internal/logger"
	"github.com/denmor86/paytik/internal/models"
	"github.com/denmor86/paytik/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidPIN        = errors.New("invalid pin")
	ErrSelfTransfer      = errors.New("transfer to self is not allowed")
)

// MaxReasonLength - ограничение на текст назначения платежа
const MaxReasonLength = 140

type WalletService interface {
	GetBalance(ctx context.Context, alias string) (*models.UserBalance, error)
	Deposit(ctx context.Context, alias string, amount decimal.Decimal) error
	Transfer(ctx context.Context, alias string, request models.TransferRequest) error
	GetTransactions(ctx context.Context, alias string) ([]models.TransactionData, error)
}

type Wallet struct {
	Users        storage.UsersStorage
	Transactions storage.TransactionsStorage
}

// Создание сервиса
func NewWallet(users storage.UsersStorage, transactions storage.TransactionsStorage) WalletService {
	return &Wallet{Users: users, Transactions: transactions}
}

// validAmount - сумма положительна и не содержит долей меньше копейки
func validAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Round(2))
}

// GetBalance возващает баланс кошелька пользователя
func (s *Wallet) GetBalance(ctx context.Context, alias string) (*models.UserBalance, error) {
	balance, err := s.Users.GetUserBalance(ctx, alias)
	if err != nil {
		logger.Error("Failed to get user balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// Deposit - пополнение кошелька наличными через агента (versement)
func (s *Wallet) Deposit(ctx context.Context, alias string, amount decimal.Decimal) error {
	if !validAmount(amount) {
		return ErrInvalidAmount
	}
	user, err := s.Users.GetUser(ctx, alias)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err))
		return err
	}
	return s.Transactions.Deposit(ctx, user.UserID, amount, "cash deposit")
}

// Transfer - перевод другому пользователю по алиасу.
// Если у отправителя установлен PIN, он обязателен.
func (s *Wallet) Transfer(ctx context.Context, alias string, request models.TransferRequest) error {
	if !validAmount(request.Amount) {
		return ErrInvalidAmount
	}
	if request.To == alias {
		return ErrSelfTransfer
	}
	from, err := s.Users.GetUser(ctx, alias)
	if err != nil {
		logger.Error("Failed to get sender", zap.Error(err))
		return err
	}
	if from.PinHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(from.PinHash), []byte(request.Pin)) != nil {
			logger.Warn("Invalid pin for transfer", alias)
			return ErrInvalidPIN
		}
	}
	// баланс проверяется ещё раз внутри транзакции, здесь только быстрый отказ
	if from.Balance.LessThan(request.Amount) {
		return ErrInsufficientFunds
	}
	to, err := s.Users.GetUser(ctx, request.To)
	if err != nil {
		logger.Warn("Failed to get receiver", request.To, zap.Error(err))
		return err
	}

	reason := trimReason(request.Reason)

	err = s.Transactions.Transfer(ctx, models.Transfer{
		FromUserID:   from.UserID,
		ToUserID:     to.UserID,
		FromAlias:    from.Alias,
		ToAlias:      to.Alias,
		Amount:       request.Amount,
		Reason:       reason,
		SentType:     models.TransactionSent,
		ReceivedType: models.TransactionReceived,
	})
	if errors.Is(err, storage.ErrInsufficientFunds) {
		return ErrInsufficientFunds
	}
	return err
}

// GetTransactions возвращает журнал операций пользователя
func (s *Wallet) GetTransactions(ctx context.Context, alias string) ([]models.TransactionData, error) {
	user, err := s.Users.GetUser(ctx, alias)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			logger.Warn("User not found", alias)
			return nil, storage.ErrUserNotFound
		}
		logger.Error("Error getting user", zap.Error(err))
		return nil, err
	}

	transactions, err := s.Transactions.GetTransactions(ctx, user.UserID)
	if err != nil {
		logger.Error("Failed to get transactions:", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func trimReason(reason string) string {
	reason = strings.TrimSpace(reason)
	if runes := []rune(reason); len(runes) > MaxReasonLength {
		return string(runes[:MaxReasonLength])
	}
	return reason
}

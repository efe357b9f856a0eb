package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/denmor86/paytik/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	GetTransactions = `SELECT id, user_id, type, counterparty, reason, amount, status, created_at
					   FROM TRANSACTIONS WHERE user_id=$1 ORDER BY created_at DESC;`
)

type TransactionDatabase struct {
	DB *Database
}

// Создание хранилища
func NewTransactionsStorage(db *Database) TransactionsStorage {
	return &TransactionDatabase{DB: db}
}

// Deposit - пополнение кошелька (versement) и запись в журнал в одной транзакции
func (s *TransactionDatabase) Deposit(ctx context.Context, userID string, amount decimal.Decimal, reason string) error {
	return s.DB.InTx(ctx, pgx.ReadCommitted, "Deposit", func(tx pgx.Tx) error {
		if err := credit(ctx, tx, userID, amount); err != nil {
			return err
		}
		return record(ctx, tx, userID, models.TransactionVersement, "", reason, amount, time.Now())
	})
}

// Transfer - списание у отправителя, зачисление получателю и две записи в журнал.
// Либо проходят все четыре изменения, либо ни одного.
func (s *TransactionDatabase) Transfer(ctx context.Context, t models.Transfer) error {
	return s.DB.InTx(ctx, pgx.ReadCommitted, "Transfer", func(tx pgx.Tx) error {
		if err := lockUsers(ctx, tx, t.FromUserID, t.ToUserID); err != nil {
			return err
		}
		if err := debit(ctx, tx, t.FromUserID, t.Amount); err != nil {
			return err
		}
		if err := credit(ctx, tx, t.ToUserID, t.Amount); err != nil {
			return err
		}
		now := time.Now()
		if err := record(ctx, tx, t.FromUserID, t.SentType, t.ToAlias, t.Reason, t.Amount, now); err != nil {
			return err
		}
		return record(ctx, tx, t.ToUserID, t.ReceivedType, t.FromAlias, t.Reason, t.Amount, now)
	})
}

func (s *TransactionDatabase) GetTransactions(ctx context.Context, userID string) ([]models.TransactionData, error) {
	var transactions []models.TransactionData
	rows, err := s.DB.Pool.Query(ctx, GetTransactions, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item models.TransactionData
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Type,
			&item.Counterparty,
			&item.Reason,
			&item.Amount,
			&item.Status,
			&item.CreatedAt,
		)
		if err != nil {
			return transactions, fmt.Errorf("failed scan transaction data: %w", err)
		}
		transactions = append(transactions, item)
	}
	return transactions, rows.Err()
}

package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/denmor86/paytik/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Проводки по балансам пользователей. Вызываются только внутри транзакции.
const (
	DebitUserBalance = `UPDATE USERS
						SET balance = balance - $1
						WHERE id = $2 AND balance >= $1;`
	CreditUserBalance = `UPDATE USERS
						 SET balance = balance + $1
						 WHERE id = $2;`
	LockUsers = `SELECT id FROM USERS WHERE id = ANY($1) ORDER BY id FOR UPDATE;`

	InsertTransaction = `INSERT INTO TRANSACTIONS (id, user_id, type, counterparty, reason, amount, status, created_at)
						 VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
)

// debit - списание с баланса; недостаточно средств, если условие balance >= amount не выполнено
func debit(ctx context.Context, tx pgx.Tx, userID string, amount decimal.Decimal) error {
	tag, err := tx.Exec(ctx, DebitUserBalance, amount, userID)
	if err != nil {
		return fmt.Errorf("debit balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientFunds
	}
	return nil
}

func credit(ctx context.Context, tx pgx.Tx, userID string, amount decimal.Decimal) error {
	tag, err := tx.Exec(ctx, CreditUserBalance, amount, userID)
	if err != nil {
		return fmt.Errorf("credit balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// lockUsers - блокировка строк пользователей в порядке id, чтобы встречные переводы не давали дедлок
func lockUsers(ctx context.Context, tx pgx.Tx, userIDs ...string) error {
	rows, err := tx.Query(ctx, LockUsers, userIDs)
	if err != nil {
		return fmt.Errorf("lock users: %w", err)
	}
	defer rows.Close()
	locked := 0
	for rows.Next() {
		locked++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("lock users: %w", err)
	}
	if locked != len(unique(userIDs)) {
		return ErrUserNotFound
	}
	return nil
}

func unique(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// record - запись в журнал операций
func record(ctx context.Context, tx pgx.Tx, userID, kind, counterparty, reason string, amount decimal.Decimal, at time.Time) error {
	_, err := tx.Exec(ctx, InsertTransaction,
		uuid.New().String(),
		userID,
		kind,
		counterparty,
		reason,
		amount,
		models.TransactionStatusCompleted,
		at,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/paytik/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	InsertUser = `INSERT INTO USERS (id, alias, password, role)
						VALUES ($1, $2, $3, $4)
						ON CONFLICT (alias) DO NOTHING
						RETURNING alias;`
	GetUser = `SELECT id, alias, role, password, pin, balance, created_at FROM USERS WHERE alias=$1;`

	GetUserBalance = `SELECT balance FROM USERS WHERE alias = $1;`
	UpdateUserPin  = `UPDATE USERS SET pin = $1 WHERE id = $2;`

	// сводка по пользователю: баланс, копилки, тонтины, карта и непогашенные кредиты
	selectManagedUsers = `SELECT u.id, u.alias, u.role, u.balance, u.created_at,
							(SELECT COUNT(*) FROM TRANSACTIONS t WHERE t.user_id = u.id),
							(SELECT COALESCE(SUM(v.balance), 0) FROM VAULTS v WHERE v.user_id = u.id),
							(SELECT COALESCE(SUM(tn.balance), 0) FROM TONTINES tn WHERE tn.user_id = u.id),
							(SELECT COALESCE(SUM(c.balance), 0) FROM CARDS c WHERE c.user_id = u.id),
							(SELECT COALESCE(SUM(cr.total_due - cr.repaid_amount), 0) FROM CREDITS cr
								WHERE cr.user_id = u.id AND cr.status = 'approved')
						  FROM USERS u`
	GetManagedUsers = selectManagedUsers + ` ORDER BY u.created_at;`
	GetManagedUser  = selectManagedUsers + ` WHERE u.alias = $1;`
)

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

func (s *UserDatabase) GetUser(ctx context.Context, alias string) (*models.UserData, error) {
	var user models.UserData
	err := s.DB.Pool.QueryRow(ctx, GetUser, alias).Scan(
		&user.UserID,
		&user.Alias,
		&user.Role,
		&user.PasswordHash,
		&user.PinHash,
		&user.Balance,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (s *UserDatabase) AddUser(ctx context.Context, alias string, password string, role string) error {
	var prevAlias string
	userID := uuid.New().String()

	err := s.DB.Pool.QueryRow(ctx, InsertUser, userID, alias, password, role).Scan(&prevAlias)

	// Успешное добавление
	if err == nil {
		return nil
	}
	// ON CONFLICT DO NOTHING не возвращает строк
	if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
		return ErrAlreadyExists
	}
	return fmt.Errorf("failed to add user: %w", err)
}

// GetUserBalance - Получение баланса пользователя
func (s *UserDatabase) GetUserBalance(ctx context.Context, alias string) (*models.UserBalance, error) {
	var current decimal.Decimal

	err := s.DB.Pool.QueryRow(ctx, GetUserBalance, alias).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return &models.UserBalance{Current: current}, nil
}

func (s *UserDatabase) SetPin(ctx context.Context, userID string, pinHash string) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateUserPin, pinHash, userID)
	if err != nil {
		return fmt.Errorf("failed to set pin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetManagedUsers - справочник пользователей для администратора.
// Все подзапросы читаются из одного снимка (REPEATABLE READ).
func (s *UserDatabase) GetManagedUsers(ctx context.Context) ([]models.ManagedUser, error) {
	var users []models.ManagedUser
	err := s.DB.InTx(ctx, pgx.RepeatableRead, "GetManagedUsers", func(tx pgx.Tx) error {
		users = nil
		rows, err := tx.Query(ctx, GetManagedUsers)
		if err != nil {
			return fmt.Errorf("failed to get users: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			user, err := scanManagedUser(rows)
			if err != nil {
				return err
			}
			users = append(users, *user)
		}
		return rows.Err()
	})
	return users, err
}

func (s *UserDatabase) GetManagedUser(ctx context.Context, alias string) (*models.ManagedUser, error) {
	var user *models.ManagedUser
	err := s.DB.InTx(ctx, pgx.RepeatableRead, "GetManagedUser", func(tx pgx.Tx) error {
		var err error
		user, err = scanManagedUser(tx.QueryRow(ctx, GetManagedUser, alias))
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	})
	return user, err
}

func scanManagedUser(row pgx.Row) (*models.ManagedUser, error) {
	var (
		user      models.ManagedUser
		createdAt time.Time
	)
	err := row.Scan(
		&user.UserID,
		&user.Alias,
		&user.Role,
		&user.Balance,
		&createdAt,
		&user.TransactionCount,
		&user.VaultTotal,
		&user.TontineTotal,
		&user.CardBalance,
		&user.OutstandingCredit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed scan managed user: %w", err)
	}
	user.CreatedAt = createdAt
	return &user, nil
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/paytik/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	InsertVault = `INSERT INTO VAULTS (id, user_id, name, target, balance, created_at) VALUES ($1, $2, $3, $4, 0, $5);`
	GetVaults   = `SELECT id, user_id, name, target, balance, created_at FROM VAULTS WHERE user_id=$1 ORDER BY created_at;`
	CreditVault = `UPDATE VAULTS SET balance = balance + $1 WHERE id = $2 AND user_id = $3;`
	DebitVault  = `UPDATE VAULTS SET balance = balance - $1 WHERE id = $2 AND user_id = $3 AND balance >= $1;`
	ExistsVault = `SELECT EXISTS(SELECT 1 FROM VAULTS WHERE id = $1 AND user_id = $2);`

	InsertTontine = `INSERT INTO TONTINES (id, user_id, name, contribution, balance, rounds, created_at) VALUES ($1, $2, $3, $4, 0, 0, $5);`
	GetTontines   = `SELECT id, user_id, name, contribution, balance, rounds, created_at FROM TONTINES WHERE user_id=$1 ORDER BY created_at;`
	// взнос в тонтину всегда равен фиксированной сумме участия
	ContributeTontine = `UPDATE TONTINES SET balance = balance + contribution, rounds = rounds + 1
						 WHERE id = $1 AND user_id = $2
						 RETURNING contribution, name;`

	InsertCard = `INSERT INTO CARDS (id, user_id, number, holder, expires_at, balance, created_at) VALUES ($1, $2, $3, $4, $5, 0, $6);`
	GetCard    = `SELECT id, user_id, number, holder, expires_at, balance, created_at FROM CARDS WHERE user_id=$1;`
	CreditCard = `UPDATE CARDS SET balance = balance + $1 WHERE id = $2 AND user_id = $3;`
)

type SavingsDatabase struct {
	DB *Database
}

// Создание хранилища
func NewSavingsStorage(db *Database) SavingsStorage {
	return &SavingsDatabase{DB: db}
}

func (s *SavingsDatabase) AddVault(ctx context.Context, v models.VaultData) error {
	_, err := s.DB.Pool.Exec(ctx, InsertVault, v.ID, v.UserID, v.Name, v.Target, v.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to add vault: %w", err)
	}
	return nil
}

func (s *SavingsDatabase) GetVaults(ctx context.Context, userID string) ([]models.VaultData, error) {
	var vaults []models.VaultData
	rows, err := s.DB.Pool.Query(ctx, GetVaults, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vaults: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var v models.VaultData
		if err := rows.Scan(&v.ID, &v.UserID, &v.Name, &v.Target, &v.Balance, &v.CreatedAt); err != nil {
			return vaults, fmt.Errorf("failed scan vault data: %w", err)
		}
		vaults = append(vaults, v)
	}
	return vaults, rows.Err()
}

// DepositVault - перевод из кошелька в копилку
func (s *SavingsDatabase) DepositVault(ctx context.Context, m models.Movement) error {
	return s.DB.InTx(ctx, pgx.ReadCommitted, "DepositVault", func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, CreditVault, m.Amount, m.TargetID, m.UserID)
		if err != nil {
			return fmt.Errorf("credit vault: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrVaultNotFound
		}
		if err := debit(ctx, tx, m.UserID, m.Amount); err != nil {
			return err
		}
		return record(ctx, tx, m.UserID, m.Type, m.Counterparty, m.Reason, m.Amount, time.Now())
	})
}

// WithdrawVault - возврат средств из копилки в кошелёк
func (s *SavingsDatabase) WithdrawVault(ctx context.Context, m models.Movement) error {
	return s.DB.InTx(ctx, pgx.ReadCommitted, "WithdrawVault", func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, DebitVault, m.Amount, m.TargetID, m.UserID)
		if err != nil {
			return fmt.Errorf("debit vault: %w", err)
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, ExistsVault, m.TargetID, m.UserID).Scan(&exists); err != nil {
				return fmt.Errorf("check vault: %w", err)
			}
			if !exists {
				return ErrVaultNotFound
			}
			return ErrInsufficientFunds
		}
		if err := credit(ctx, tx, m.UserID, m.Amount); err != nil {
			return err
		}
		return record(ctx, tx, m.UserID, m.Type, m.Counterparty, m.Reason, m.Amount, time.Now())
	})
}

func (s *SavingsDatabase) AddTontine(ctx context.Context, t models.TontineData) error {
	_, err := s.DB.Pool.Exec(ctx, InsertTontine, t.ID, t.UserID, t.Name, t.Contribution, t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to add tontine: %w", err)
	}
	return nil
}

func (s *SavingsDatabase) GetTontines(ctx context.Context, userID string) ([]models.TontineData, error) {
	var tontines []models.TontineData
	rows, err := s.DB.Pool.Query(ctx, GetTontines, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tontines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t models.TontineData
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Contribution, &t.Balance, &t.Rounds, &t.CreatedAt); err != nil {
			return tontines, fmt.Errorf("failed scan tontine data: %w", err)
		}
		tontines = append(tontines, t)
	}
	return tontines, rows.Err()
}

// ContributeTontine - взнос участника: списание фиксированной суммы с кошелька в общий котёл
func (s *SavingsDatabase) ContributeTontine(ctx context.Context, m models.Movement) error {
	return s.DB.InTx(ctx, pgx.ReadCommitted, "ContributeTontine", func(tx pgx.Tx) error {
		var name string
		err := tx.QueryRow(ctx, ContributeTontine, m.TargetID, m.UserID).Scan(&m.Amount, &name)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrTontineNotFound
			}
			return fmt.Errorf("contribute tontine: %w", err)
		}
		if err := debit(ctx, tx, m.UserID, m.Amount); err != nil {
			return err
		}
		return record(ctx, tx, m.UserID, models.TransactionTontine, name, m.Reason, m.Amount, time.Now())
	})
}

func (s *SavingsDatabase) AddCard(ctx context.Context, c models.CardData) error {
	_, err := s.DB.Pool.Exec(ctx, InsertCard, c.ID, c.UserID, c.Number, c.Holder, c.ExpiresAt, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to add card: %w", err)
	}
	return nil
}

func (s *SavingsDatabase) GetCard(ctx context.Context, userID string) (*models.CardData, error) {
	var c models.CardData
	err := s.DB.Pool.QueryRow(ctx, GetCard, userID).Scan(&c.ID, &c.UserID, &c.Number, &c.Holder, &c.ExpiresAt, &c.Balance, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &c, nil
}

// RechargeCard - пополнение виртуальной карты с кошелька
func (s *SavingsDatabase) RechargeCard(ctx context.Context, m models.Movement) error {
	return s.DB.InTx(ctx, pgx.ReadCommitted, "RechargeCard", func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, CreditCard, m.Amount, m.TargetID, m.UserID)
		if err != nil {
			return fmt.Errorf("credit card: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrCardNotFound
		}
		if err := debit(ctx, tx, m.UserID, m.Amount); err != nil {
			return err
		}
		return record(ctx, tx, m.UserID, models.TransactionCardRecharge, m.Counterparty, m.Reason, m.Amount, time.Now())
	})
}

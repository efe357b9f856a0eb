package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/paytik/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	selectCredit = `SELECT c.id, c.kind, c.user_id, u.alias, c.merchant_id, m.alias, c.amount, c.installments,
						c.periodic_rate, c.teg, c.total_due, c.repaid_amount, c.status, c.reason,
						c.score, c.decision, c.plan, c.created_at, c.updated_at
					FROM CREDITS c
					JOIN USERS u ON u.id = c.user_id
					JOIN USERS m ON m.id = c.merchant_id`

	GetCredit          = selectCredit + ` WHERE c.id = $1;`
	GetCredits         = selectCredit + ` WHERE c.user_id = $1 ORDER BY c.created_at DESC;`
	GetCreditsByStatus = selectCredit + ` WHERE c.status = $1 ORDER BY c.created_at;`

	InsertCredit = `INSERT INTO CREDITS (id, kind, user_id, merchant_id, amount, installments, periodic_rate, teg,
						total_due, repaid_amount, status, reason, plan, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14);`

	// выборка не считается попыткой: заявка остаётся pending, пока оценка не даст результат
	ClaimCreditsForAssessment = `UPDATE CREDITS
								SET updated_at = NOW()
								WHERE id IN (
								    SELECT id FROM CREDITS
								    WHERE status = 'pending'
								    ORDER BY created_at
								    LIMIT $1
								    FOR UPDATE SKIP LOCKED
								)
								RETURNING id;`

	// неудачная попытка оценки; после $2 неудач заявка уходит администратору в review
	RecordAssessmentFailure = `UPDATE CREDITS
								SET retry_count = retry_count + 1,
								    status = CASE WHEN retry_count + 1 >= $2 THEN 'review' ELSE status END,
								    reason = CASE WHEN retry_count + 1 >= $2 THEN $3 ELSE reason END,
								    updated_at = NOW()
								WHERE id = $1 AND status = 'pending'
								RETURNING status;`

	UpdateAssessment = `UPDATE CREDITS
						SET status = $1, score = $2, decision = $3, reason = CASE WHEN $4 = '' THEN reason ELSE $4 END,
						    updated_at = NOW()
						WHERE id = $5 AND status = 'pending';`

	LockCredit = `SELECT user_id, merchant_id, amount, total_due, repaid_amount, status
				  FROM CREDITS WHERE id = $1 FOR UPDATE;`

	UpdateCreditStatus = `UPDATE CREDITS SET status = $1, reason = $2, updated_at = NOW() WHERE id = $3;`
	UpdateCreditRepaid = `UPDATE CREDITS SET repaid_amount = $1, status = $2, updated_at = NOW() WHERE id = $3;`
	AppendCreditReason = `UPDATE CREDITS SET reason = CASE WHEN reason = '' THEN $1 ELSE reason || ' | ' || $1 END WHERE id = $2;`
	GetCreditAliases   = `SELECT (SELECT alias FROM USERS WHERE id=$1), (SELECT alias FROM USERS WHERE id=$2);`
)

type CreditDatabase struct {
	DB *Database
}

// Создание хранилища
func NewCreditsStorage(db *Database) CreditsStorage {
	return &CreditDatabase{DB: db}
}

type lockedCredit struct {
	userID     string
	merchantID string
	amount     decimal.Decimal
	totalDue   decimal.Decimal
	repaid     decimal.Decimal
	status     string
}

func lockCredit(ctx context.Context, tx pgx.Tx, id string) (*lockedCredit, error) {
	var c lockedCredit
	err := tx.QueryRow(ctx, LockCredit, id).Scan(&c.userID, &c.merchantID, &c.amount, &c.totalDue, &c.repaid, &c.status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCreditNotFound
		}
		return nil, fmt.Errorf("failed to lock credit: %w", err)
	}
	return &c, nil
}

func (s *CreditDatabase) AddCredit(ctx context.Context, c models.CreditRequest) error {
	plan, err := json.Marshal(c.RepaymentPlan)
	if err != nil {
		return fmt.Errorf("failed to encode repayment plan: %w", err)
	}
	_, err = s.DB.Pool.Exec(ctx, InsertCredit,
		c.ID,
		c.Kind,
		c.UserID,
		c.MerchantID,
		c.Amount,
		c.Installments,
		c.PeriodicRate,
		c.TEG,
		c.TotalDue,
		c.RepaidAmount,
		c.Status,
		c.Reason,
		plan,
		c.RequestDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to add credit: %w", err)
	}
	return nil
}

func (s *CreditDatabase) GetCredit(ctx context.Context, id string) (*models.CreditRequest, error) {
	c, err := scanCredit(s.DB.Pool.QueryRow(ctx, GetCredit, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCreditNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CreditDatabase) GetCredits(ctx context.Context, userID string) ([]models.CreditRequest, error) {
	return s.queryCredits(ctx, GetCredits, userID)
}

func (s *CreditDatabase) GetCreditsByStatus(ctx context.Context, status string) ([]models.CreditRequest, error) {
	return s.queryCredits(ctx, GetCreditsByStatus, status)
}

func (s *CreditDatabase) queryCredits(ctx context.Context, query string, arg string) ([]models.CreditRequest, error) {
	var credits []models.CreditRequest
	rows, err := s.DB.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to get credits: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		c, err := scanCredit(rows)
		if err != nil {
			return credits, err
		}
		credits = append(credits, *c)
	}
	return credits, rows.Err()
}

func scanCredit(row pgx.Row) (*models.CreditRequest, error) {
	var (
		c    models.CreditRequest
		plan []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Kind,
		&c.UserID,
		&c.Alias,
		&c.MerchantID,
		&c.Merchant,
		&c.Amount,
		&c.Installments,
		&c.PeriodicRate,
		&c.TEG,
		&c.TotalDue,
		&c.RepaidAmount,
		&c.Status,
		&c.Reason,
		&c.Score,
		&c.Decision,
		&plan,
		&c.RequestDate,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed scan credit data: %w", err)
	}
	if len(plan) > 0 {
		if err := json.Unmarshal(plan, &c.RepaymentPlan); err != nil {
			return nil, fmt.Errorf("failed decode repayment plan: %w", err)
		}
	}
	return &c, nil
}

func (s *CreditDatabase) ClaimCreditsForAssessment(ctx context.Context, count int) ([]string, error) {
	var ids []string
	rows, err := s.DB.Pool.Query(ctx, ClaimCreditsForAssessment, count)
	if err != nil {
		return nil, fmt.Errorf("failed to claim credits for assessment: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return ids, fmt.Errorf("failed scan credit id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// RecordAssessmentFailure - учёт неудачной попытки оценки, возвращает новый статус заявки
func (s *CreditDatabase) RecordAssessmentFailure(ctx context.Context, id string, maxAttempts int, reason string) (string, error) {
	var status string
	err := s.DB.Pool.QueryRow(ctx, RecordAssessmentFailure, id, maxAttempts, reason).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrStatusConflict
		}
		return "", fmt.Errorf("failed to record assessment failure: %w", err)
	}
	return status, nil
}

// UpdateAssessment - фиксирует результат скоринга, только для заявок в статусе pending
func (s *CreditDatabase) UpdateAssessment(ctx context.Context, id string, status string, a models.Assessment) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateAssessment, status, a.Score, a.Decision, a.Reason, id)
	if err != nil {
		return fmt.Errorf("failed to update assessment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrStatusConflict
	}
	return nil
}

// ApproveCredit - одобрение заявки одной сериализуемой транзакцией:
// продавцу зачисляется сумма покупки, с клиента списывается первый взнос,
// в журналы обоих пишутся операции. Строка заявки блокируется на время проводок.
func (s *CreditDatabase) ApproveCredit(ctx context.Context, a models.Approval) (*models.CreditRequest, error) {
	err := s.DB.InTx(ctx, pgx.Serializable, "ApproveCredit", func(tx pgx.Tx) error {
		c, err := lockCredit(ctx, tx, a.CreditID)
		if err != nil {
			return err
		}
		if c.status != models.CreditStatusReview {
			return ErrStatusConflict
		}
		if a.DownPayment.GreaterThan(c.totalDue) {
			return ErrOverpayment
		}
		var aliases [2]string
		err = tx.QueryRow(ctx, GetCreditAliases, c.userID, c.merchantID).Scan(&aliases[0], &aliases[1])
		if err != nil {
			return fmt.Errorf("failed to get aliases: %w", err)
		}
		if err := lockUsers(ctx, tx, c.userID, c.merchantID); err != nil {
			return err
		}

		now := time.Now()
		reason := "credit " + a.CreditID

		// 1. Продавец получает сумму покупки
		if err := credit(ctx, tx, c.merchantID, c.amount); err != nil {
			return err
		}
		if err := record(ctx, tx, c.merchantID, models.TransactionReceived, aliases[0], reason, c.amount, now); err != nil {
			return err
		}
		// 2. Клиенту фиксируется выдача средств (баланс не меняется, деньги ушли продавцу)
		if err := record(ctx, tx, c.userID, models.TransactionCreditDisbursement, aliases[1], reason, c.amount, now); err != nil {
			return err
		}
		// 3. Первый взнос списывается с клиента
		status := models.CreditStatusApproved
		if a.DownPayment.IsPositive() {
			if err := debit(ctx, tx, c.userID, a.DownPayment); err != nil {
				return err
			}
			if err := record(ctx, tx, c.userID, models.TransactionCreditRepayment, aliases[1], reason, a.DownPayment, now); err != nil {
				return err
			}
			if a.DownPayment.Equal(c.totalDue) {
				status = models.CreditStatusRepaid
			}
		}
		if _, err := tx.Exec(ctx, UpdateCreditRepaid, a.DownPayment, status, a.CreditID); err != nil {
			return fmt.Errorf("failed to update credit: %w", err)
		}
		if _, err := tx.Exec(ctx, AppendCreditReason, "approved by "+a.AdminAlias, a.CreditID); err != nil {
			return fmt.Errorf("failed to update credit reason: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetCredit(ctx, a.CreditID)
}

// RejectCredit - отклонение заявки из статусов pending и review
func (s *CreditDatabase) RejectCredit(ctx context.Context, id string, reason string) error {
	return s.DB.InTx(ctx, pgx.ReadCommitted, "RejectCredit", func(tx pgx.Tx) error {
		c, err := lockCredit(ctx, tx, id)
		if err != nil {
			return err
		}
		if c.status != models.CreditStatusReview && c.status != models.CreditStatusPending {
			return ErrStatusConflict
		}
		_, err = tx.Exec(ctx, UpdateCreditStatus, models.CreditStatusRejected, reason, id)
		if err != nil {
			return fmt.Errorf("failed to reject credit: %w", err)
		}
		return nil
	})
}

// RepayCredit - погашение: списание с клиента, увеличение repaid_amount.
// Сумма погашений никогда не превышает total_due.
func (s *CreditDatabase) RepayCredit(ctx context.Context, id string, userID string, amount decimal.Decimal) (*models.CreditRequest, error) {
	err := s.DB.InTx(ctx, pgx.ReadCommitted, "RepayCredit", func(tx pgx.Tx) error {
		c, err := lockCredit(ctx, tx, id)
		if err != nil {
			return err
		}
		if c.userID != userID {
			return ErrCreditNotFound
		}
		if c.status != models.CreditStatusApproved {
			return ErrStatusConflict
		}
		repaid := c.repaid.Add(amount)
		if repaid.GreaterThan(c.totalDue) {
			return ErrOverpayment
		}
		if err := debit(ctx, tx, userID, amount); err != nil {
			return err
		}
		if err := record(ctx, tx, userID, models.TransactionCreditRepayment, "", "credit "+id, amount, time.Now()); err != nil {
			return err
		}
		status := models.CreditStatusApproved
		if repaid.Equal(c.totalDue) {
			status = models.CreditStatusRepaid
		}
		if _, err := tx.Exec(ctx, UpdateCreditRepaid, repaid, status, id); err != nil {
			if isCheckViolation(err) {
				return ErrOverpayment
			}
			return fmt.Errorf("failed to update repaid amount: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetCredit(ctx, id)
}
